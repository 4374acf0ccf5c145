package controls

import (
	"github.com/go-gl/mathgl/mgl32"
)

// GestureState identifies the single input gesture currently driving the controls.
type GestureState int

const (
	GestureNone GestureState = iota
	GestureRotate
	GestureDolly
	GesturePan
	GestureTouchRotate
	GestureTouchPan
	GestureTouchDollyPan
	GestureTouchDollyRotate
)

func (s GestureState) String() string {
	switch s {
	case GestureNone:
		return "None"
	case GestureRotate:
		return "Rotate"
	case GestureDolly:
		return "Dolly"
	case GesturePan:
		return "Pan"
	case GestureTouchRotate:
		return "TouchRotate"
	case GestureTouchPan:
		return "TouchPan"
	case GestureTouchDollyPan:
		return "TouchDollyPan"
	case GestureTouchDollyRotate:
		return "TouchDollyRotate"
	default:
		return "Unknown"
	}
}

// rotates reports whether the gesture feeds the rotate channel.
func (s GestureState) rotates() bool {
	return s == GestureRotate || s == GestureTouchRotate || s == GestureTouchDollyRotate
}

// pans reports whether the gesture feeds the pan channel.
func (s GestureState) pans() bool {
	return s == GesturePan || s == GestureTouchPan || s == GestureTouchDollyPan
}

// dollies reports whether the gesture feeds the dolly channel.
func (s GestureState) dollies() bool {
	return s == GestureDolly || s == GestureTouchDollyPan || s == GestureTouchDollyRotate
}

// GestureDelta is what one Advance produced, in pixels.
type GestureDelta struct {
	Rotate mgl32.Vec2
	Pan    mgl32.Vec2
	Dolly  mgl32.Vec2
	// Pinch is the current finger spread over the previous one; 1 means no pinch.
	Pinch float32
}

// track is one start/end/delta channel. start always holds the last consumed point.
type track struct {
	start mgl32.Vec2
	end   mgl32.Vec2
	delta mgl32.Vec2
}

func (t *track) begin(p mgl32.Vec2) {
	t.start = p
	t.end = p
	t.delta = mgl32.Vec2{}
}

func (t *track) advance(p mgl32.Vec2) mgl32.Vec2 {
	t.end = p
	t.delta = t.end.Sub(t.start)
	t.start = t.end
	return t.delta
}

// Gesture tracks the active gesture and its per-channel pixel deltas.
// At most one gesture is active; the zero value is idle.
type Gesture struct {
	state  GestureState
	rotate track
	pan    track
	dolly  track
	spread float32
}

// State returns the active gesture, GestureNone when idle.
func (g *Gesture) State() GestureState {
	return g.state
}

// Begin starts a single-pointer gesture at point, replacing any active gesture.
// Beginning GestureNone is the same as End.
//
// Parameters:
//   - kind: the gesture to start
//   - point: pointer position in pixels
func (g *Gesture) Begin(kind GestureState, point mgl32.Vec2) {
	g.End()
	if kind == GestureNone {
		return
	}
	g.state = kind
	g.rotate.begin(point)
	g.pan.begin(point)
	g.dolly.begin(point)
}

// BeginPair starts a two-pointer gesture. The midpoint drives rotate/pan and the distance
// between the pointers drives the pinch.
//
// Parameters:
//   - kind: the gesture to start
//   - a, b: pointer positions in pixels
func (g *Gesture) BeginPair(kind GestureState, a, b mgl32.Vec2) {
	g.Begin(kind, midpoint(a, b))
	if g.state == GestureNone {
		return
	}
	g.spread = a.Sub(b).Len()
	g.dolly.begin(mgl32.Vec2{0, g.spread})
}

// Advance moves the pointer of the active gesture to point and returns the delta since the
// previous call. Returns false when no gesture is active.
//
// Parameters:
//   - point: pointer position in pixels
//
// Returns:
//   - GestureDelta: per-channel deltas
//   - bool: false when idle
func (g *Gesture) Advance(point mgl32.Vec2) (GestureDelta, bool) {
	d := GestureDelta{Pinch: 1}
	if g.state == GestureNone {
		return d, false
	}
	switch {
	case g.state.rotates():
		d.Rotate = g.rotate.advance(point)
	case g.state.pans():
		d.Pan = g.pan.advance(point)
	}
	if g.state == GestureDolly {
		d.Dolly = g.dolly.advance(point)
	}
	return d, true
}

// AdvancePair moves both pointers of a two-pointer gesture. Returns false when idle.
//
// Parameters:
//   - a, b: pointer positions in pixels
//
// Returns:
//   - GestureDelta: per-channel deltas with Pinch set for dolly gestures
//   - bool: false when idle
func (g *Gesture) AdvancePair(a, b mgl32.Vec2) (GestureDelta, bool) {
	d, ok := g.Advance(midpoint(a, b))
	if !ok {
		return d, false
	}
	if g.state.dollies() && g.state != GestureDolly {
		spread := a.Sub(b).Len()
		g.dolly.advance(mgl32.Vec2{0, spread})
		if g.spread > 0 && spread > 0 {
			d.Pinch = spread / g.spread
		}
		g.spread = spread
	}
	return d, true
}

// End clears the active gesture and its deltas. A no-op when idle.
func (g *Gesture) End() {
	if g.state == GestureNone {
		return
	}
	*g = Gesture{}
}

func midpoint(a, b mgl32.Vec2) mgl32.Vec2 {
	return a.Add(b).Mul(0.5)
}
