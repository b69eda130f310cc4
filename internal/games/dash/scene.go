package dash

import "github.com/vovakirdan/vector-dash/internal/core"

// ElementKind is the visual class of a placed element.
type ElementKind int

const (
	ElementObstacle ElementKind = iota
	ElementFloating
	ElementCoin
	ElementTrail
	ElementBoostTrail
	ElementSparkle
	ElementFloatText
)

// EffectKind is a one-shot visual cue.
type EffectKind int

const (
	EffectDeath EffectKind = iota
	EffectCoin
	EffectFlipHighlight
	EffectFlipHighlightEnd
	EffectBoostStart
	EffectBoostEnd
	EffectReset
)

func (k EffectKind) String() string {
	switch k {
	case EffectDeath:
		return "death"
	case EffectCoin:
		return "coin"
	case EffectFlipHighlight:
		return "flip"
	case EffectFlipHighlightEnd:
		return "flip-end"
	case EffectBoostStart:
		return "boost"
	case EffectBoostEnd:
		return "boost-end"
	case EffectReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Scene is the sink the round draws into. The round never reads layout
// back from it; collision uses the round's own geometry only.
type Scene interface {
	// Place creates the element or moves it if ref is already placed.
	Place(ref Ref, lane core.PlayerID, kind ElementKind, box core.Rect)
	Remove(ref Ref)
	Transform(id core.PlayerID, pos core.Vec, o Orientation)
	Effect(lane core.PlayerID, kind EffectKind, pos core.Vec)
}

// NopScene discards everything.
type NopScene struct{}

func (NopScene) Place(Ref, core.PlayerID, ElementKind, core.Rect) {}
func (NopScene) Remove(Ref)                                       {}
func (NopScene) Transform(core.PlayerID, core.Vec, Orientation)   {}
func (NopScene) Effect(core.PlayerID, EffectKind, core.Vec)       {}

// Element is a placed scene element.
type Element struct {
	Ref  Ref
	Lane core.PlayerID
	Kind ElementKind
	Box  core.Rect
}

// Avatar is the projected state of one player.
type Avatar struct {
	Pos         core.Vec
	Orientation Orientation
	Boosting    bool
	Dead        bool
	Highlight   bool // flip highlight active on the lane
}

// SceneBuffer is a Scene that keeps the latest projection in memory for a
// renderer to draw. Its contents come only from Scene calls.
type SceneBuffer struct {
	elements map[Ref]Element
	order    []Ref
	avatars  map[core.PlayerID]*Avatar
	effects  []Fired
}

// Fired is an effect recorded by a SceneBuffer.
type Fired struct {
	Lane core.PlayerID
	Kind EffectKind
	Pos  core.Vec
}

// NewSceneBuffer creates an empty buffer.
func NewSceneBuffer() *SceneBuffer {
	return &SceneBuffer{
		elements: make(map[Ref]Element),
		avatars:  make(map[core.PlayerID]*Avatar),
	}
}

func (b *SceneBuffer) Place(ref Ref, lane core.PlayerID, kind ElementKind, box core.Rect) {
	if _, ok := b.elements[ref]; !ok {
		b.order = append(b.order, ref)
	}
	b.elements[ref] = Element{Ref: ref, Lane: lane, Kind: kind, Box: box}
}

func (b *SceneBuffer) Remove(ref Ref) {
	if _, ok := b.elements[ref]; !ok {
		return
	}
	delete(b.elements, ref)
	for i, r := range b.order {
		if r == ref {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break
		}
	}
}

func (b *SceneBuffer) Transform(id core.PlayerID, pos core.Vec, o Orientation) {
	a := b.avatar(id)
	a.Pos = pos
	a.Orientation = o
}

func (b *SceneBuffer) Effect(lane core.PlayerID, kind EffectKind, pos core.Vec) {
	b.effects = append(b.effects, Fired{Lane: lane, Kind: kind, Pos: pos})
	a := b.avatar(lane)
	switch kind {
	case EffectDeath:
		a.Dead = true
	case EffectFlipHighlight:
		a.Highlight = true
	case EffectFlipHighlightEnd:
		a.Highlight = false
	case EffectBoostStart:
		a.Boosting = true
	case EffectBoostEnd:
		a.Boosting = false
	case EffectReset:
		*a = Avatar{}
	}
}

func (b *SceneBuffer) avatar(id core.PlayerID) *Avatar {
	a, ok := b.avatars[id]
	if !ok {
		a = &Avatar{}
		b.avatars[id] = a
	}
	return a
}

// Elements returns the elements in lane in placement order.
func (b *SceneBuffer) Elements(lane core.PlayerID) []Element {
	var out []Element
	for _, ref := range b.order {
		if e := b.elements[ref]; e.Lane == lane {
			out = append(out, e)
		}
	}
	return out
}

// Len returns the number of placed elements.
func (b *SceneBuffer) Len() int {
	return len(b.elements)
}

// Avatar returns the projected state of a player.
func (b *SceneBuffer) Avatar(id core.PlayerID) Avatar {
	if a, ok := b.avatars[id]; ok {
		return *a
	}
	return Avatar{}
}

// DrainEffects returns and clears the effects seen since the last call.
func (b *SceneBuffer) DrainEffects() []Fired {
	out := b.effects
	b.effects = nil
	return out
}
