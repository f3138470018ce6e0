package ui

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/automoto/soundmux/components"
	"github.com/automoto/soundmux/mixer"
	"github.com/automoto/soundmux/settings"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// MixerUI is a mouse-driven panel with one row per bus and BGM transport buttons
type MixerUI struct {
	UI   *ebitenui.UI
	Menu *components.SettingsMenuData

	// Callbacks
	OnStep      func(bus mixer.Bus, direction int)
	OnCrossfade func()
	OnStop      func()
	NowPlaying  func() string

	valueLabels map[mixer.Bus]*widget.Label
	nowLabel    *widget.Label

	normalFace text.Face
	smallFace  text.Face
}

// NewMixerUI creates the panel; menu supplies the values shown per bus.
func NewMixerUI(menu *components.SettingsMenuData) *MixerUI {
	mui := &MixerUI{
		Menu:        menu,
		valueLabels: make(map[mixer.Bus]*widget.Label),
	}
	mui.loadFonts()
	mui.buildUI()
	return mui
}

func (mui *MixerUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	mui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
	mui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   10,
	}
}

func (mui *MixerUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 230})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(3),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionEnd,
				VerticalPosition:   widget.AnchorLayoutPositionEnd,
			}),
		),
	)

	panel.AddChild(widget.NewLabel(
		widget.LabelOpts.Text("MIXER", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{200, 200, 255, 255},
		}),
	))
	for _, bus := range mixer.Buses {
		panel.AddChild(mui.buildBusRow(bus))
	}
	panel.AddChild(mui.buildTransportRow())

	rootContainer.AddChild(panel)
	mui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
}

func (mui *MixerUI) buildBusRow(bus mixer.Bus) *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(fmt.Sprintf("%-6s", bus), &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	row.AddChild(mui.stepButton("-", bus, -1))

	mui.valueLabels[bus] = widget.NewLabel(
		widget.LabelOpts.Text(mui.valueText(bus), &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(mui.valueLabels[bus])

	row.AddChild(mui.stepButton("+", bus, +1))
	return row
}

func (mui *MixerUI) stepButton(label string, bus mixer.Bus, direction int) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(20, 16)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{200, 200, 200, 255},
			Hover:   color.RGBA{255, 255, 255, 255},
			Pressed: color.RGBA{150, 150, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if mui.OnStep != nil {
				mui.OnStep(bus, direction)
			}
			mui.UpdateUI()
		}),
	)
}

func (mui *MixerUI) buildTransportRow() *widget.Container {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(mui.transportButton("Next", func() {
		if mui.OnCrossfade != nil {
			mui.OnCrossfade()
		}
	}))
	row.AddChild(mui.transportButton("Stop", func() {
		if mui.OnStop != nil {
			mui.OnStop()
		}
	}))

	mui.nowLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &mui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{180, 255, 180, 255},
		}),
	)
	row.AddChild(mui.nowLabel)
	return row
}

func (mui *MixerUI) transportButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(44, 18)),
		widget.ButtonOpts.Image(mui.buttonImage()),
		widget.ButtonOpts.Text(label, &mui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{255, 255, 200, 255},
			Pressed: color.RGBA{200, 200, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			mui.UpdateUI()
		}),
	)
}

func (mui *MixerUI) buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(color.RGBA{60, 60, 80, 255}),
		Hover:    image.NewNineSliceColor(color.RGBA{80, 80, 100, 255}),
		Pressed:  image.NewNineSliceColor(color.RGBA{40, 40, 60, 255}),
		Disabled: image.NewNineSliceColor(color.RGBA{40, 40, 40, 255}),
	}
}

func (mui *MixerUI) valueText(bus mixer.Bus) string {
	if mui.Menu == nil {
		return "--"
	}
	return fmt.Sprintf("%3.0f", settings.ToSlider(mui.Menu.Setting.Volume(bus)))
}

// UpdateUI refreshes labels from the menu values and the BGM state.
func (mui *MixerUI) UpdateUI() {
	for bus, label := range mui.valueLabels {
		label.Label = mui.valueText(bus)
	}
	if mui.nowLabel != nil && mui.NowPlaying != nil {
		mui.nowLabel.Label = mui.NowPlaying()
	}
}

func (mui *MixerUI) Update() {
	mui.UI.Update()
	mui.UpdateUI()
}
