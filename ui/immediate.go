package ui

import (
	"image/color"
	"math"

	cfg "github.com/automoto/warfront/config"
	"github.com/automoto/warfront/fonts"
	"github.com/automoto/warfront/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	panelPadding = 16.0
	swatchGap    = 4.0
	frameTime    = float32(1.0 / 60.0)
)

type slot struct {
	item       *Item
	x, y, w, h float64
	obj        *resolv.Object
}

// ImmediateBackend redraws the whole screen every frame straight from the
// Screen description. Items are hit-tested through a resolv space and can
// be driven entirely from the keyboard or a gamepad.
type ImmediateBackend struct {
	screen *Screen
	slots  []slot
	space  *resolv.Space
	cursor *resolv.Object

	focus       int
	hover       int
	hoverFrames int
	lastX       int
	lastY       int

	open     *gween.Tween
	progress float32
	scroll   float64

	panelX, panelY, panelW, panelH float64
	contentH                       float64
}

func NewImmediateBackend() *ImmediateBackend {
	fonts.LoadDefaults()
	return &ImmediateBackend{focus: -1, hover: -1}
}

func (b *ImmediateBackend) rebuild(s *Screen) {
	b.screen = s
	b.slots = b.slots[:0]
	b.focus = -1
	b.hover = -1
	b.hoverFrames = 0
	b.scroll = 0
	b.open = gween.New(0, 1, cfg.Menu.OpenDuration, ease.OutCubic)
	b.progress = 0

	b.space = resolv.NewSpace(cfg.C.Width, cfg.C.Height, 8, 8)
	b.cursor = resolv.NewObject(0, 0, 1, 1, tags.ResolvCursor)
	b.space.Add(b.cursor)

	b.panelW = cfg.Menu.PanelWidth
	b.panelX = (float64(cfg.C.Width) - b.panelW) / 2
	b.panelY = cfg.Menu.PanelTop

	y := cfg.Menu.MenuStartY
	if s.Note != "" {
		y += cfg.Menu.MenuItemHeight
	}
	left := b.panelX + panelPadding
	right := b.panelX + b.panelW - panelPadding
	rowGroup := 0
	sx := left
	for _, it := range s.Items {
		if it.Kind == KindSwatch {
			size := cfg.Menu.SwatchSize
			if rowGroup != it.Group || sx+size > right {
				if rowGroup != 0 {
					y += size + cfg.Menu.MenuItemGap
				}
				rowGroup = it.Group
				sx = left
			}
			b.place(it, sx, y, size, size)
			sx += size + swatchGap
			continue
		}
		if rowGroup != 0 {
			y += cfg.Menu.SwatchSize + cfg.Menu.MenuItemGap
			rowGroup = 0
		}
		b.place(it, left, y, right-left, cfg.Menu.MenuItemHeight)
		y += cfg.Menu.MenuItemHeight + cfg.Menu.MenuItemGap
	}
	if rowGroup != 0 {
		y += cfg.Menu.SwatchSize + cfg.Menu.MenuItemGap
	}
	b.contentH = y - cfg.Menu.MenuStartY
	b.panelH = math.Min(y+panelPadding, float64(cfg.C.Height)-panelPadding) - b.panelY

	for i := range b.slots {
		if b.slots[i].item.Interactive() {
			b.focus = i
			break
		}
	}
}

func (b *ImmediateBackend) place(it *Item, x, y, w, h float64) {
	sl := slot{item: it, x: x, y: y, w: w, h: h}
	if it.Kind != KindText {
		sl.obj = resolv.NewObject(x, y, w, h, tags.ResolvMenuItem)
		sl.obj.Data = len(b.slots)
		b.space.Add(sl.obj)
	}
	b.slots = append(b.slots, sl)
}

func (b *ImmediateBackend) finishOpen() {
	b.progress = 1
	b.open = nil
}

// hitTest returns the slot under the given point, or -1.
func (b *ImmediateBackend) hitTest(x, y int) int {
	if x < 0 || y < 0 || x >= cfg.C.Width || y >= cfg.C.Height {
		return -1
	}
	b.cursor.X = float64(x)
	b.cursor.Y = float64(y)
	b.cursor.Update()
	check := b.cursor.Check(0, 0, tags.ResolvMenuItem)
	if check == nil {
		return -1
	}
	px, py := float64(x), float64(y)
	for _, obj := range check.Objects {
		if px < obj.X || px >= obj.X+obj.W || py < obj.Y || py >= obj.Y+obj.H {
			continue
		}
		if idx, ok := obj.Data.(int); ok {
			return idx
		}
	}
	return -1
}

func (b *ImmediateBackend) Update(s *Screen, in Input) []Trigger {
	if s == nil {
		return nil
	}
	if s != b.screen {
		b.rebuild(s)
	}
	if b.open != nil {
		var done bool
		b.progress, done = b.open.Update(frameTime)
		if done {
			b.finishOpen()
		}
	}
	if s.Scrolling {
		b.scroll += cfg.Menu.CreditsSpeed
	}

	hit := b.hitTest(in.CursorX, in.CursorY)
	if hit != b.hover {
		b.hover = hit
		b.hoverFrames = 0
	} else {
		b.hoverFrames++
	}
	moved := in.CursorX != b.lastX || in.CursorY != b.lastY
	b.lastX, b.lastY = in.CursorX, in.CursorY
	if moved && hit >= 0 && b.slots[hit].item.Interactive() {
		b.focus = hit
	}

	if b.progress < 1 {
		return nil
	}

	var triggers []Trigger
	if hit >= 0 {
		sl := &b.slots[hit]
		if in.Primary {
			if t, ok := b.activate(sl, false, float64(in.CursorX)); ok {
				triggers = append(triggers, t)
			}
		}
		if in.Secondary {
			if t, ok := b.activate(sl, true, float64(in.CursorX)); ok {
				triggers = append(triggers, t)
			}
		}
	}
	return append(triggers, b.keyboard(in)...)
}

func (b *ImmediateBackend) activate(sl *slot, secondary bool, cursorX float64) (Trigger, bool) {
	it := sl.item
	if !it.Interactive() {
		return Trigger{}, false
	}
	t := Trigger{ID: it.ID, Secondary: secondary}
	switch it.Kind {
	case KindOption:
		return t, true
	case KindSlider:
		if secondary {
			return Trigger{}, false
		}
		tx, tw := sliderTrack(sl)
		t.Value = sliderValue(cursorX-tx, tw, it.Stops)
		return t, true
	case KindTextInput:
		return Trigger{}, false
	default:
		if secondary {
			return Trigger{}, false
		}
		return t, true
	}
}

func (b *ImmediateBackend) keyboard(in Input) []Trigger {
	if in.Up {
		b.moveFocus(-1)
	}
	if in.Down {
		b.moveFocus(1)
	}
	if b.focus < 0 {
		return nil
	}
	it := b.slots[b.focus].item
	if !it.Interactive() {
		return nil
	}

	switch it.Kind {
	case KindOption:
		if in.Select || in.Right {
			return []Trigger{{ID: it.ID}}
		}
		if in.Left {
			return []Trigger{{ID: it.ID, Secondary: true}}
		}
	case KindSlider:
		if in.Right || in.Left {
			return []Trigger{{ID: it.ID, Value: stepSlider(it, in.Right)}}
		}
	case KindTextInput:
		cur := ""
		if it.Text != nil {
			cur = it.Text()
		}
		next := cur + string(in.Chars)
		if in.Backspace && len(next) > 0 {
			r := []rune(next)
			next = string(r[:len(r)-1])
		}
		if next != cur {
			return []Trigger{{ID: it.ID, Text: next}}
		}
	default:
		if in.Left {
			b.moveFocus(-1)
		}
		if in.Right {
			b.moveFocus(1)
		}
		if in.Select {
			return []Trigger{{ID: it.ID}}
		}
	}
	return nil
}

// moveFocus steps to the next interactive slot, wrapping around.
func (b *ImmediateBackend) moveFocus(dir int) {
	n := len(b.slots)
	if n == 0 {
		return
	}
	i := b.focus
	if i < 0 {
		i = 0
	}
	for step := 0; step < n; step++ {
		i = (i + dir + n) % n
		if b.slots[i].item.Interactive() {
			b.focus = i
			return
		}
	}
}

func sliderTrack(sl *slot) (x, w float64) {
	w = math.Min(cfg.Menu.SliderWidth, sl.w/2)
	return sl.x + sl.w - w, w
}

func (b *ImmediateBackend) Draw(dst *ebiten.Image) {
	if b.screen == nil {
		return
	}
	h := float32(b.panelH) * b.progress
	vector.FillRect(dst, float32(b.panelX), float32(b.panelY), float32(b.panelW), h, cfg.Menu.PanelColor, false)
	vector.StrokeRect(dst, float32(b.panelX), float32(b.panelY), float32(b.panelW), h, 2, cfg.Menu.PanelBorderColor, false)
	if b.progress < 1 {
		return
	}

	center := b.panelX + b.panelW/2
	drawText(dst, b.screen.Title, fonts.MenuTitle.Face(), center, cfg.Menu.TitleY-cfg.Menu.MenuItemHeight, cfg.Menu.TitleColor, text.AlignCenter)
	if b.screen.Note != "" {
		drawText(dst, b.screen.Note, fonts.MenuSmall.Face(), center, cfg.Menu.MenuStartY, cfg.Menu.NoteColor, text.AlignCenter)
	}

	for i := range b.slots {
		b.drawSlot(dst, &b.slots[i], i == b.focus)
	}

	if b.hover >= 0 && b.hoverFrames > cfg.Menu.TooltipDelay {
		if tip := b.slots[b.hover].item.Tip; tip != "" {
			b.drawTooltip(dst, tip)
		}
	}
}

func (b *ImmediateBackend) drawSlot(dst *ebiten.Image, sl *slot, focused bool) {
	it := sl.item
	clr := cfg.Menu.TextColorNormal
	switch {
	case it.Disabled:
		clr = cfg.Menu.TextColorDisabled
	case focused:
		clr = cfg.Menu.TextColorSelected
	}
	face := fonts.Menu.Face()

	switch it.Kind {
	case KindText:
		y := sl.y
		if b.screen.Scrolling {
			y = sl.y + b.panelH - math.Mod(b.scroll, b.contentH+b.panelH)
			if y < cfg.Menu.MenuStartY+2*cfg.Menu.MenuItemHeight || y > b.panelY+b.panelH-sl.h {
				return
			}
		}
		drawText(dst, it.Caption(), face, sl.x+sl.w/2, y, cfg.Menu.TextColorNormal, text.AlignCenter)
	case KindButton:
		drawText(dst, it.Caption(), fonts.MenuBold.Face(), sl.x+sl.w/2, sl.y, clr, text.AlignCenter)
	case KindOption:
		drawText(dst, it.Caption(), face, sl.x, sl.y, clr, text.AlignStart)
	case KindLink:
		lc := cfg.Menu.LinkColor
		if focused {
			lc = cfg.Menu.TextColorSelected
		}
		drawText(dst, it.Caption(), fonts.MenuSmall.Face(), sl.x+sl.w/2, sl.y, lc, text.AlignCenter)
	case KindSlider:
		drawText(dst, it.Label, face, sl.x, sl.y, clr, text.AlignStart)
		tx, tw := sliderTrack(sl)
		mid := float32(sl.y + sl.h/2)
		vector.StrokeLine(dst, float32(tx), mid, float32(tx+tw), mid, 2, cfg.Menu.SliderColor, false)
		if it.Stops > 0 && it.Position != nil {
			hx := tx + tw*float64(it.Position())/float64(it.Stops)
			vector.FillRect(dst, float32(hx)-3, mid-6, 6, 12, clr, false)
		}
	case KindSwatch:
		vector.FillRect(dst, float32(sl.x), float32(sl.y), float32(sl.w), float32(sl.h), it.Colour, false)
		if it.Selected != nil && it.Selected() {
			vector.StrokeRect(dst, float32(sl.x)-2, float32(sl.y)-2, float32(sl.w)+4, float32(sl.h)+4, 2, cfg.White, false)
		}
		if focused {
			vector.StrokeRect(dst, float32(sl.x)-4, float32(sl.y)-4, float32(sl.w)+8, float32(sl.h)+8, 1, cfg.Menu.TextColorSelected, false)
		}
	case KindTextInput:
		drawText(dst, it.Label, face, sl.x, sl.y, clr, text.AlignStart)
		bx := sl.x + sl.w/2
		vector.StrokeRect(dst, float32(bx), float32(sl.y), float32(sl.w/2), float32(sl.h), 1, clr, false)
		value := it.Caption()
		vc := cfg.Menu.TextColorNormal
		if value == "" && !focused {
			value, vc = it.Placeholder, cfg.Menu.TextColorDisabled
		} else if focused {
			value += "_"
		}
		drawText(dst, value, face, bx+4, sl.y+2, vc, text.AlignStart)
	}
}

func (b *ImmediateBackend) drawTooltip(dst *ebiten.Image, tip string) {
	face := fonts.MenuSmall.Face()
	w, h := text.Measure(tip, face, 0)
	x := float64(b.lastX) + 12
	y := float64(b.lastY) + 12
	if x+w+8 > float64(cfg.C.Width) {
		x = float64(cfg.C.Width) - w - 8
	}
	vector.FillRect(dst, float32(x), float32(y), float32(w+8), float32(h+6), cfg.BlackOverlay, false)
	drawText(dst, tip, face, x+4, y+3, cfg.White, text.AlignStart)
}

func drawText(dst *ebiten.Image, s string, face text.Face, x, y float64, clr color.Color, align text.Align) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	text.Draw(dst, s, face, op)
}
