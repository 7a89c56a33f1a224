// Package hud is the navigation bar and overlay portal. It reads the
// interaction store to decide which nav item is highlighted and which
// overlay is shown, and turns key presses into store actions.
package hud

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Faultbox/portfolio-room/internal/interaction"
	"github.com/Faultbox/portfolio-room/internal/logger"
	"github.com/Faultbox/portfolio-room/internal/preset"
)

// BaseTitle is the window title with no overlay open.
const BaseTitle = "Portfolio Room"

// Key is a HUD shortcut.
type Key int

const (
	KeyNone Key = iota
	// KeyNav1..KeyNav4 select the nav items in order.
	KeyNav1
	KeyNav2
	KeyNav3
	KeyNav4
	KeyMute
	KeyEscape
)

// Muter toggles sound.
type Muter interface {
	ToggleMute() bool
	IsMuted() bool
}

// Escaper closes whatever is open.
type Escaper interface {
	HandleEscape() bool
}

// TitleSetter receives the window title.
type TitleSetter interface {
	SetTitle(title string)
}

// Item is one nav entry as it should be drawn this frame.
type Item struct {
	Target preset.Target
	Preset preset.Name
	Label  string
	// Active is set on the item whose overlay is open.
	Active bool
	// Busy is set on every item while the camera is flying.
	Busy bool
}

// HUD drives the nav bar and overlay portal.
type HUD struct {
	store   *interaction.Store
	muter   Muter
	escaper Escaper
	title   TitleSetter

	lastTitle   string
	unsubscribe func()
	log         *zap.Logger
}

// New creates a HUD and starts tracking the store. muter, escaper and title
// may be nil.
func New(store *interaction.Store, muter Muter, escaper Escaper, title TitleSetter) *HUD {
	h := &HUD{
		store:   store,
		muter:   muter,
		escaper: escaper,
		title:   title,
		log:     logger.Named("hud"),
	}
	h.unsubscribe = store.Subscribe(h.onChange)
	h.refreshTitle(store.State())
	return h
}

// Close stops tracking the store.
func (h *HUD) Close() {
	if h.unsubscribe != nil {
		h.unsubscribe()
		h.unsubscribe = nil
	}
}

// Items returns the nav items in display order.
func (h *HUD) Items() []Item {
	st := h.store.State()
	targets := preset.Targets()
	items := make([]Item, 0, len(targets))
	for _, t := range targets {
		name, _ := preset.FromTarget(t)
		items = append(items, Item{
			Target: t,
			Preset: name,
			Label:  Label(t),
			Active: st.ActiveTarget == t,
			Busy:   st.CameraAnimating,
		})
	}
	return items
}

// Overlay returns the overlay that should be shown, if any.
func (h *HUD) Overlay() (preset.Target, bool) {
	t := h.store.ActiveTarget()
	return t, t.IsContent()
}

// Select flies the camera to the preset framing target. The overlay opens
// when the camera arrives.
func (h *HUD) Select(target preset.Target) bool {
	name, ok := preset.FromTarget(target)
	if !ok {
		return false
	}
	h.store.SetCameraPreset(name)
	return true
}

// DismissBackdrop closes the open overlay when its backdrop is clicked.
func (h *HUD) DismissBackdrop() bool {
	if !h.store.ActiveTarget().IsContent() {
		return false
	}
	h.store.CloseOverlay()
	return true
}

// HandleKey applies a shortcut and reports whether it was consumed.
func (h *HUD) HandleKey(k Key) bool {
	switch k {
	case KeyNav1, KeyNav2, KeyNav3, KeyNav4:
		targets := preset.Targets()
		i := int(k - KeyNav1)
		if i >= len(targets) {
			return false
		}
		return h.Select(targets[i])
	case KeyMute:
		if h.muter == nil {
			return false
		}
		muted := h.muter.ToggleMute()
		h.log.Info("sound toggled", zap.Bool("muted", muted))
		h.refreshTitle(h.store.State())
		return true
	case KeyEscape:
		if h.escaper != nil {
			return h.escaper.HandleEscape()
		}
		return h.DismissBackdrop()
	}
	return false
}

// Title returns the window title for state.
func (h *HUD) Title(st interaction.State) string {
	var b strings.Builder
	b.WriteString(BaseTitle)
	if st.ActiveTarget.IsContent() {
		b.WriteString(" | ")
		b.WriteString(Label(st.ActiveTarget))
	}
	if h.muter != nil && h.muter.IsMuted() {
		b.WriteString(" (muted)")
	}
	return b.String()
}

func (h *HUD) onChange(c interaction.Change) {
	if c.Prev.ActiveTarget != c.Next.ActiveTarget {
		if c.Next.ActiveTarget.IsContent() {
			h.log.Info("overlay opened", zap.String("target", string(c.Next.ActiveTarget)))
		} else {
			h.log.Info("overlay closed", zap.String("target", string(c.Prev.ActiveTarget)))
		}
	}
	h.refreshTitle(c.Next)
}

func (h *HUD) refreshTitle(st interaction.State) {
	if h.title == nil {
		return
	}
	title := h.Title(st)
	if title == h.lastTitle {
		return
	}
	h.lastTitle = title
	h.title.SetTitle(title)
}

// Label is the display name of a target.
func Label(t preset.Target) string {
	switch t {
	case preset.About:
		return "About"
	case preset.Skills:
		return "Skills"
	case preset.Projects:
		return "Projects"
	case preset.Contact:
		return "Contact"
	}
	return ""
}
