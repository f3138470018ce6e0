package config

// Render layers, usable wherever an ecs.LayerID is expected.
const (
	Default = iota
	Overlay
)
