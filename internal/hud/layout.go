package hud

import (
	"github.com/Faultbox/portfolio-room/internal/engine/ui2d"
	"github.com/Faultbox/portfolio-room/internal/preset"
)

// Hit is what a point on screen lands on.
type Hit int

const (
	HitNone Hit = iota
	HitItem
	HitMute
	HitPanel
	HitBackdrop
)

const (
	itemWidth   = 120
	itemHeight  = 36
	itemGap     = 8
	margin      = 16
	muteSize    = 24
	panelWidth  = 420
	panelMargin = 24
)

// Layout is the HUD's screen geometry for one frame.
type Layout struct {
	Items []ui2d.Rect
	Mute  ui2d.Rect
	// Panel is the overlay; it is only meaningful when Open is set.
	Panel ui2d.Rect
	Open  bool
}

// Layout computes the HUD geometry for a screen of width x height.
func (h *HUD) Layout(width, height float32) Layout {
	n := len(preset.Targets())
	barWidth := float32(n)*itemWidth + float32(n-1)*itemGap
	x := (width - barWidth) / 2

	l := Layout{
		Items: make([]ui2d.Rect, n),
		Mute:  ui2d.Rect{X: width - margin - muteSize, Y: margin + (itemHeight-muteSize)/2, W: muteSize, H: muteSize},
	}
	for i := range l.Items {
		l.Items[i] = ui2d.Rect{X: x + float32(i)*(itemWidth+itemGap), Y: margin, W: itemWidth, H: itemHeight}
	}

	if _, open := h.Overlay(); open {
		top := float32(margin + itemHeight + margin)
		w := min(panelWidth, width*0.4)
		l.Open = true
		l.Panel = ui2d.Rect{X: width - w - panelMargin, Y: top, W: w, H: max(height-top-panelMargin, 0)}
	}
	return l
}

// HitTest returns what (x, y) lands on and, for HitItem, the item index.
func (l Layout) HitTest(x, y float32) (Hit, int) {
	for i, r := range l.Items {
		if r.Contains(x, y) {
			return HitItem, i
		}
	}
	if l.Mute.Contains(x, y) {
		return HitMute, 0
	}
	if !l.Open {
		return HitNone, 0
	}
	if l.Panel.Contains(x, y) {
		return HitPanel, 0
	}
	return HitBackdrop, 0
}

// Blocks reports whether the HUD covers (x, y), hiding the scene from the pointer.
func (h *HUD) Blocks(x, y, width, height float32) bool {
	hit, _ := h.Layout(width, height).HitTest(x, y)
	return hit != HitNone
}

// Click handles a click at (x, y) and reports whether the HUD consumed it.
func (h *HUD) Click(x, y, width, height float32) bool {
	hit, i := h.Layout(width, height).HitTest(x, y)
	switch hit {
	case HitItem:
		return h.Select(preset.Targets()[i])
	case HitMute:
		return h.HandleKey(KeyMute)
	case HitPanel:
		return true
	case HitBackdrop:
		h.DismissBackdrop()
		return true
	}
	return false
}

// Draw queues the HUD quads on r. The nav item under the pointer is lit.
func (h *HUD) Draw(r *ui2d.Renderer, width, height, pointerX, pointerY float32) {
	l := h.Layout(width, height)

	if l.Open {
		target, _ := h.Overlay()
		r.DrawRect(ui2d.Rect{W: width, H: height}, ui2d.ColorBackdrop)
		r.DrawPanel(l.Panel, ui2d.ColorPanelBg, accent(target))
		r.DrawRect(ui2d.Rect{X: l.Panel.X, Y: l.Panel.Y, W: l.Panel.W, H: 4}, accent(target))
	}

	for i, item := range h.Items() {
		bg, border := itemColors(item, l.Items[i].Contains(pointerX, pointerY))
		r.DrawPanel(l.Items[i], bg, border)
	}

	mute := ui2d.ColorUnmuted
	if h.muter != nil && h.muter.IsMuted() {
		mute = ui2d.ColorMuted
	}
	r.DrawPanel(l.Mute, mute, ui2d.ColorPanelBorder)
}

// itemColors picks a nav item's fill and border.
func itemColors(item Item, hovered bool) (bg, border ui2d.Color) {
	bg, border = ui2d.ColorItemNormal, accent(item.Target)
	if item.Active {
		bg = ui2d.ColorItemActive
	}
	switch {
	case item.Busy:
		bg = bg.Darken(0.4).WithAlpha(0.6)
	case hovered:
		bg = bg.Lighten(0.2)
		border = ui2d.ColorWhite
	}
	return bg, border
}

// accent is the highlight color of a target's nav item and panel.
func accent(t preset.Target) ui2d.Color {
	switch t {
	case preset.About:
		return ui2d.RGB(242, 153, 64)
	case preset.Skills:
		return ui2d.RGB(77, 242, 204)
	case preset.Projects:
		return ui2d.RGB(51, 140, 217)
	case preset.Contact:
		return ui2d.RGB(230, 102, 153)
	}
	return ui2d.ColorPanelBorder
}
