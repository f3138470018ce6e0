package sound

import (
	"github.com/automoto/soundmux/voice"
	"github.com/google/uuid"
)

// Ticket identifies one PlayEffect or PlayUI call. The channel may be reused
// later; ID tells the plays apart.
type Ticket struct {
	Category voice.Category
	Channel  int
	ID       uuid.UUID
}

// Valid is false for the zero Ticket returned on errors.
func (t Ticket) Valid() bool {
	return t.ID != uuid.Nil
}
