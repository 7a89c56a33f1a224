package interact

import (
	"go.uber.org/zap"

	"github.com/Faultbox/portfolio-room/internal/engine/audio/cue"
	"github.com/Faultbox/portfolio-room/internal/interaction"
	"github.com/Faultbox/portfolio-room/internal/logger"
	"github.com/Faultbox/portfolio-room/internal/preset"
)

// Cursor switches between the default arrow and the pointing hand.
type Cursor interface {
	SetPointer(pointer bool)
}

// LinkOpener opens a URL outside the application.
type LinkOpener interface {
	Open(url string) error
}

// SoundPlayer plays feedback cues.
type SoundPlayer interface {
	PlaySound(c cue.Cue)
}

// Protocol applies the hover and click rules shared by every object.
type Protocol struct {
	store   *interaction.Store
	cursor  Cursor
	links   LinkOpener
	sound   SoundPlayer
	hovered string // ID of the object that last claimed the hover
	log     *zap.Logger
}

// NewProtocol creates a protocol. cursor, links and sound may be nil.
func NewProtocol(store *interaction.Store, cursor Cursor, links LinkOpener, sound SoundPlayer) *Protocol {
	return &Protocol{
		store:  store,
		cursor: cursor,
		links:  links,
		sound:  sound,
		log:    logger.Named("interact"),
	}
}

// PointerEnter marks o as hovered.
func (p *Protocol) PointerEnter(o *Object) {
	p.hovered = o.ID
	p.setCursor(true)
	p.store.SetHoveredTarget(o.Target)
	p.play(cue.Hover)
}

// PointerLeave restores the cursor and clears the hover, unless another
// object has already claimed it. Objects sharing a target are told apart by ID.
func (p *Protocol) PointerLeave(o *Object) {
	switch p.hovered {
	case o.ID:
		p.hovered = ""
		p.store.SetHoveredTarget(preset.None)
		p.setCursor(false)
	case "":
		p.setCursor(false)
	}
}

// Click performs o's click action.
func (p *Protocol) Click(o *Object) {
	switch o.Kind {
	case ExternalLink:
		p.play(cue.Click)
		p.openLink(o)
	case HoverOnly:
		return
	case DirectOverlay:
		p.play(cue.Click)
		p.store.SetActiveTarget(o.Target)
	case CameraRouted:
		p.play(cue.Click)
		p.store.SetCameraPreset(o.Preset)
	}
	p.log.Debug("object clicked", zap.String("object", o.ID), zap.Stringer("kind", o.Kind))
}

func (p *Protocol) openLink(o *Object) {
	if p.links == nil {
		return
	}
	if err := p.links.Open(o.URL); err != nil {
		p.log.Warn("failed to open link", zap.String("object", o.ID), zap.String("url", o.URL), zap.Error(err))
		return
	}
	p.log.Info("opened link", zap.String("object", o.ID), zap.String("url", o.URL))
}

func (p *Protocol) setCursor(pointer bool) {
	if p.cursor != nil {
		p.cursor.SetPointer(pointer)
	}
}

func (p *Protocol) play(c cue.Cue) {
	if p.sound != nil {
		p.sound.PlaySound(c)
	}
}
