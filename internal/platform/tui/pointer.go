package tui

import (
	"github.com/vovakirdan/tui-sketchpad/internal/paint"
)

// Pointer tracks the primary mouse button for drag painting. The engine
// reads it through paint.PointerState.
type Pointer struct {
	held bool
	over bool
	last paint.Coord
}

var _ paint.PointerState = (*Pointer)(nil)

// PrimaryHeld reports whether the left button is down.
func (p *Pointer) PrimaryHeld() bool {
	return p.held
}

func (p *Pointer) press() {
	p.held = true
	p.over = false
}

// release is accepted anywhere on screen, not only over the canvas.
func (p *Pointer) release() {
	p.held = false
	p.over = false
}

// enter records the pointer over c and reports whether it just moved onto
// c. Motion within one multi-column cell enters it only once.
func (p *Pointer) enter(c paint.Coord) bool {
	if p.over && p.last == c {
		return false
	}
	p.over = true
	p.last = c
	return true
}

func (p *Pointer) leave() {
	p.over = false
}

// eventQueue buffers engine notifications until the model drains them.
type eventQueue struct {
	events []paint.Event
}

func (q *eventQueue) push(ev paint.Event) {
	q.events = append(q.events, ev)
}

func (q *eventQueue) take() []paint.Event {
	evs := q.events
	q.events = nil
	return evs
}
