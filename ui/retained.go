package ui

import (
	"image/color"

	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/fonts"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

const creditsWindow = 12

// RetainedBackend builds an ebitenui widget tree for each screen and lets
// the widgets handle layout, hover and clicks.
type RetainedBackend struct {
	screen *Screen
	UI     *ebitenui.UI

	pending  []Trigger
	refresh  []func(in Input)
	controls map[ItemID]widget.HasWidget // interactive widget per item
	tip      *widget.Label

	credits []*widget.Label
	lines   []string
	frame   int

	titleFace  text.Face
	normalFace text.Face
	boldFace   text.Face
	smallFace  text.Face
}

func NewRetainedBackend() *RetainedBackend {
	fonts.LoadDefaults()
	return &RetainedBackend{
		titleFace:  fonts.MenuTitle.Face(),
		normalFace: fonts.Menu.Face(),
		boldFace:   fonts.MenuBold.Face(),
		smallFace:  fonts.MenuSmall.Face(),
	}
}

func (b *RetainedBackend) Update(s *Screen, in Input) []Trigger {
	if s == nil {
		return nil
	}
	if s != b.screen {
		b.build(s)
	}
	b.pending = b.pending[:0]
	b.UI.Update()
	return b.poll(in)
}

// poll syncs the widgets with their items and collects what changed since
// the last frame.
func (b *RetainedBackend) poll(in Input) []Trigger {
	b.tip.Label = ""
	for _, fn := range b.refresh {
		fn(in)
	}
	if len(b.credits) > 0 {
		b.scrollCredits()
	}
	out := make([]Trigger, len(b.pending))
	copy(out, b.pending)
	b.pending = b.pending[:0]
	return out
}

func (b *RetainedBackend) Draw(dst *ebiten.Image) {
	if b.UI != nil {
		b.UI.Draw(dst)
	}
}

func (b *RetainedBackend) emit(t Trigger) {
	b.pending = append(b.pending, t)
}

func (b *RetainedBackend) build(s *Screen) {
	b.screen = s
	b.refresh = nil
	b.controls = make(map[ItemID]widget.HasWidget)
	b.credits = nil
	b.lines = nil
	b.frame = 0

	root := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Menu.PanelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(int(panelPadding))),
			widget.RowLayoutOpts.Spacing(int(cfg.Menu.MenuItemGap)),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(int(cfg.Menu.PanelWidth), 0),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	panel.AddChild(b.label(s.Title, &b.titleFace, cfg.Menu.TitleColor))
	if s.Note != "" {
		panel.AddChild(b.label(s.Note, &b.smallFace, cfg.Menu.NoteColor))
	}

	var row *widget.Container
	rowGroup := 0
	for _, it := range s.Items {
		if it.Kind == KindSwatch {
			if row == nil || rowGroup != it.Group {
				row = widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
					widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
					widget.RowLayoutOpts.Spacing(int(swatchGap)),
				)))
				rowGroup = it.Group
				panel.AddChild(row)
			}
			row.AddChild(b.swatch(it))
			continue
		}
		row, rowGroup = nil, 0

		if s.Scrolling && it.Kind == KindText {
			b.lines = append(b.lines, it.Caption())
			continue
		}
		panel.AddChild(b.widgetFor(it))
	}

	if s.Scrolling {
		for i := 0; i < creditsWindow; i++ {
			l := b.label("", &b.normalFace, cfg.Menu.TextColorNormal)
			b.credits = append(b.credits, l)
			panel.AddChild(l)
		}
	}

	b.tip = b.label("", &b.smallFace, cfg.Menu.NoteColor)
	panel.AddChild(b.tip)

	root.AddChild(panel)
	b.UI = &ebitenui.UI{Container: root}
}

func (b *RetainedBackend) scrollCredits() {
	b.frame++
	step := b.frame / 30
	n := len(b.lines) + creditsWindow
	for i, l := range b.credits {
		idx := (step+i)%n - creditsWindow
		if idx >= 0 && idx < len(b.lines) {
			l.Label = b.lines[idx]
		} else {
			l.Label = ""
		}
	}
}

func (b *RetainedBackend) label(s string, face *text.Face, clr color.Color) *widget.Label {
	return widget.NewLabel(
		widget.LabelOpts.Text(s, face, &widget.LabelColor{
			Idle:     clr,
			Disabled: cfg.Menu.TextColorDisabled,
		}),
	)
}

func (b *RetainedBackend) widgetFor(it *Item) widget.PreferredSizeLocateableWidget {
	switch it.Kind {
	case KindText:
		l := b.label(it.Caption(), &b.normalFace, cfg.Menu.TextColorNormal)
		if it.Value != nil {
			b.refresh = append(b.refresh, func(Input) { l.Label = it.Caption() })
		}
		return l
	case KindSlider:
		return b.slider(it)
	case KindTextInput:
		return b.textInput(it)
	default:
		return b.button(it)
	}
}

func (b *RetainedBackend) buttonImage(idle color.Color) *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:     image.NewNineSliceColor(idle),
		Hover:    image.NewNineSliceColor(cfg.DarkBlue),
		Pressed:  image.NewNineSliceColor(cfg.LightBlue),
		Disabled: image.NewNineSliceColor(color.RGBA{R: 40, G: 40, B: 50, A: 255}),
	}
}

func (b *RetainedBackend) button(it *Item) *widget.Button {
	face := &b.boldFace
	textColor := cfg.Menu.TextColorNormal
	idle := color.Color(color.RGBA{R: 30, G: 40, B: 70, A: 255})
	if it.Kind == KindLink {
		face = &b.smallFace
		textColor = cfg.Menu.LinkColor
		idle = cfg.Menu.PanelColor
	}

	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(int(cfg.Menu.PanelWidth-2*panelPadding), int(cfg.Menu.MenuItemHeight))),
		widget.ButtonOpts.Image(b.buttonImage(idle)),
		widget.ButtonOpts.Text(it.Caption(), face, &widget.ButtonTextColor{
			Idle:     textColor,
			Hover:    cfg.Menu.TextColorSelected,
			Pressed:  cfg.Menu.TextColorSelected,
			Disabled: cfg.Menu.TextColorDisabled,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			b.emit(Trigger{ID: it.ID})
		}),
	)
	btn.GetWidget().Disabled = it.Disabled
	b.controls[it.ID] = btn

	b.refresh = append(b.refresh, func(in Input) {
		btn.Text().Label = it.Caption()
		over := cursorIn(btn.GetWidget(), in)
		if over && it.Tip != "" {
			b.tip.Label = it.Tip
		}
		if over && in.Secondary && it.Kind == KindOption && !it.Disabled {
			b.emit(Trigger{ID: it.ID, Secondary: true})
		}
	})
	return btn
}

func (b *RetainedBackend) swatch(it *Item) *widget.Button {
	size := int(cfg.Menu.SwatchSize)
	btn := widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(size, size)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:     image.NewNineSliceColor(it.Colour),
			Hover:    image.NewNineSliceColor(it.Colour),
			Pressed:  image.NewNineSliceColor(it.Colour),
			Disabled: image.NewNineSliceColor(cfg.Grey),
		}),
		widget.ButtonOpts.Text("", &b.smallFace, &widget.ButtonTextColor{
			Idle:     cfg.White,
			Disabled: cfg.Menu.TextColorDisabled,
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			b.emit(Trigger{ID: it.ID})
		}),
	)
	btn.GetWidget().Disabled = it.Disabled
	b.controls[it.ID] = btn

	b.refresh = append(b.refresh, func(in Input) {
		mark := ""
		if it.Selected != nil && it.Selected() {
			mark = "X"
		}
		btn.Text().Label = mark
		if cursorIn(btn.GetWidget(), in) && it.Tip != "" {
			b.tip.Label = it.Tip
		}
	})
	return btn
}

func (b *RetainedBackend) slider(it *Item) *widget.Container {
	row := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		widget.RowLayoutOpts.Spacing(8),
	)))
	row.AddChild(b.label(it.Label, &b.normalFace, cfg.Menu.TextColorNormal))

	slider := widget.NewSlider(
		widget.SliderOpts.Direction(widget.DirectionHorizontal),
		widget.SliderOpts.MinMax(0, it.Stops),
		widget.SliderOpts.WidgetOpts(widget.WidgetOpts.MinSize(int(cfg.Menu.SliderWidth), int(cfg.Menu.MenuItemHeight)/2)),
		widget.SliderOpts.Images(
			&widget.SliderTrackImage{
				Idle:  image.NewNineSliceColor(cfg.DarkBlue),
				Hover: image.NewNineSliceColor(cfg.DarkBlue),
			},
			b.buttonImage(cfg.Menu.SliderColor),
		),
		widget.SliderOpts.FixedHandleSize(6),
	)
	last := 0
	if it.Position != nil {
		last = it.Position()
	}
	slider.Current = last
	slider.GetWidget().Disabled = it.Disabled
	b.controls[it.ID] = slider
	row.AddChild(slider)

	b.refresh = append(b.refresh, func(in Input) {
		if slider.Current != last {
			last = slider.Current
			b.emit(Trigger{ID: it.ID, Value: last})
			return
		}
		if it.Position != nil && it.Position() != last {
			last = it.Position()
			slider.Current = last
		}
	})
	return row
}

func (b *RetainedBackend) textInput(it *Item) *widget.Container {
	row := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewRowLayout(
		widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
		widget.RowLayoutOpts.Spacing(6),
	)))
	row.AddChild(b.label(it.Label, &b.normalFace, cfg.Menu.TextColorNormal))

	input := widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(widget.WidgetOpts.MinSize(180, 22)),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.RGBA{R: 50, G: 50, B: 70, A: 255}),
			Disabled: image.NewNineSliceColor(color.RGBA{R: 40, G: 40, B: 50, A: 255}),
		}),
		widget.TextInputOpts.Face(&b.normalFace),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          cfg.White,
			Disabled:      cfg.Menu.TextColorDisabled,
			Caret:         cfg.White,
			DisabledCaret: cfg.Menu.TextColorDisabled,
		}),
		widget.TextInputOpts.Placeholder(it.Placeholder),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(4)),
	)
	last := it.Caption()
	input.SetText(last)
	b.controls[it.ID] = input
	row.AddChild(input)

	b.refresh = append(b.refresh, func(Input) {
		if cur := input.GetText(); cur != last {
			last = cur
			b.emit(Trigger{ID: it.ID, Text: cur})
		}
	})
	return row
}

func cursorIn(w *widget.Widget, in Input) bool {
	r := w.Rect
	return in.CursorX >= r.Min.X && in.CursorX < r.Max.X && in.CursorY >= r.Min.Y && in.CursorY < r.Max.Y
}
