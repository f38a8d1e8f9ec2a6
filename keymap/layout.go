package keymap

import (
	"splitkb/kernel"
	"splitkb/multi"
)

const (
	// StackCapacity bounds the events queued behind an undecided hold-tap.
	StackCapacity = 16
	maxStates     = 64
)

type stateKind uint8

const (
	stateKey stateKind = iota
	stateLayer
	stateCustom
)

type keyState[T any] struct {
	kind  stateKind
	coord Coord
	code  KeyCode
	layer int
	value T
}

type stackedEvent struct {
	ev Event
	at uint32
}

type waitingKey[T any] struct {
	active  bool
	coord   Coord
	ht      *HoldTap[T]
	since   uint32
	elapsed uint32
}

type lastTap struct {
	valid bool
	coord Coord
	at    uint32
}

// Layout tracks pressed keys against a set of layers.
type Layout[T any] struct {
	layers       Layers[T]
	defaultLayer int

	states  []keyState[T]
	stacked *kernel.Mailbox[stackedEvent]
	waiting waitingKey[T]
	tap     lastTap
	now     uint32
	out     multi.Multi[CustomEvent[T]]
	dropped uint32
}

// NewLayout returns a layout resolving through layers, with layer 0 as default.
func NewLayout[T any](layers Layers[T]) *Layout[T] {
	return &Layout[T]{
		layers:  layers,
		states:  make([]keyState[T], 0, maxStates),
		stacked: kernel.NewMailbox[stackedEvent](StackCapacity),
	}
}

// Event queues a physical event. It is applied by a later Tick.
//
// When the queue is full, an undecided hold-tap is forced to Hold and the
// oldest queued event is applied at once to make room.
func (l *Layout[T]) Event(e Event) {
	se := stackedEvent{ev: e, at: l.now}
	if l.stacked.TrySend(se) {
		return
	}
	if l.waiting.active {
		l.resolve(false)
	}
	if old, ok := l.stacked.TryRecv(); ok {
		l.unstack(old)
	}
	l.stacked.TrySend(se)
}

// Tick advances time by one tick. It decides a waiting hold-tap or, when
// nothing waits, applies one queued event.
func (l *Layout[T]) Tick() CustomEvent[T] {
	l.now++
	if l.waiting.active {
		l.waiting.elapsed++
		switch l.decide() {
		case decideTap:
			l.resolve(true)
		case decideHold:
			l.resolve(false)
		}
	} else if se, ok := l.stacked.TryRecv(); ok {
		l.unstack(se)
	}
	ev, _ := l.out.Take()
	return ev
}

type decision uint8

const (
	decideWait decision = iota
	decideTap
	decideHold
)

func (l *Layout[T]) decide() decision {
	w := &l.waiting
	for i := 0; ; i++ {
		se, ok := l.stacked.Peek(i)
		if !ok {
			break
		}
		if se.ev.Coord == w.coord {
			if se.ev.Kind != Release {
				continue
			}
			// Held for the whole timeout is a hold, however late the
			// release is seen.
			if se.at-w.since >= uint32(w.ht.Timeout) {
				return decideHold
			}
			return decideTap
		}
		if se.ev.Kind == Press && w.ht.Config == HoldOnOtherKeyPress {
			return decideHold
		}
	}
	if w.elapsed >= uint32(w.ht.Timeout) {
		return decideHold
	}
	return decideWait
}

func (l *Layout[T]) resolve(tap bool) {
	w := l.waiting
	l.waiting = waitingKey[T]{}
	if tap {
		l.tap = lastTap{valid: true, coord: w.coord, at: l.now}
		l.doAction(w.ht.Tap, w.coord, l.now)
		return
	}
	l.doAction(w.ht.Hold, w.coord, l.now)
}

func (l *Layout[T]) unstack(se stackedEvent) {
	c := se.ev.Coord
	if se.ev.Kind == Release {
		kept := l.states[:0]
		for _, s := range l.states {
			if s.coord != c {
				kept = append(kept, s)
				continue
			}
			if s.kind == stateCustom {
				l.emit(CustomEvent[T]{Kind: CustomRelease, Value: s.value})
			}
		}
		clear(l.states[len(kept):])
		l.states = kept
		return
	}
	l.doAction(l.pressAction(c), c, se.at)
}

// pressAction resolves the action at c through the active layer stack, top
// first. Trans on the default layer resolves to NoOp.
func (l *Layout[T]) pressAction(c Coord) Action[T] {
	for i := len(l.states) - 1; i >= 0; i-- {
		s := l.states[i]
		if s.kind != stateLayer {
			continue
		}
		if a := l.actionAt(s.layer, c); a.Kind != ActTrans {
			return a
		}
	}
	if a := l.actionAt(l.defaultLayer, c); a.Kind != ActTrans {
		return a
	}
	return NoOp[T]()
}

func (l *Layout[T]) actionAt(layer int, c Coord) Action[T] {
	if layer < 0 || layer >= len(l.layers) || int(c.Row) >= Rows || int(c.Col) >= Cols {
		return NoOp[T]()
	}
	return l.layers[layer][c.Row][c.Col]
}

// doAction applies a for a press of c that happened at tick at.
func (l *Layout[T]) doAction(a Action[T], c Coord, at uint32) {
	switch a.Kind {
	case ActKey:
		l.addState(keyState[T]{kind: stateKey, coord: c, code: a.Key})
	case ActKeys:
		for _, k := range a.Keys {
			l.addState(keyState[T]{kind: stateKey, coord: c, code: k})
		}
	case ActLayer:
		l.addState(keyState[T]{kind: stateLayer, coord: c, layer: a.Layer})
	case ActDefaultLayer:
		l.SetDefaultLayer(a.Layer)
	case ActHoldTap:
		ht := a.HoldTap
		if ht.TapHoldInterval > 0 && l.tap.valid && l.tap.coord == c &&
			l.now-l.tap.at < uint32(ht.TapHoldInterval) {
			l.doAction(ht.Tap, c, at)
			return
		}
		var elapsed uint32
		if l.now > at+1 {
			elapsed = l.now - at - 1
		}
		l.waiting = waitingKey[T]{active: true, coord: c, ht: ht, since: at, elapsed: elapsed}
	case ActMultiple:
		for _, sub := range a.Actions {
			l.doAction(sub, c, at)
		}
	case ActCustom:
		l.addState(keyState[T]{kind: stateCustom, coord: c, value: a.Custom})
		l.emit(CustomEvent[T]{Kind: CustomPress, Value: a.Custom})
	}
}

func (l *Layout[T]) emit(ev CustomEvent[T]) {
	if !l.out.Append(ev) {
		l.dropped++
	}
}

func (l *Layout[T]) addState(s keyState[T]) {
	if len(l.states) < cap(l.states) {
		l.states = append(l.states, s)
	}
}

// SetDefaultLayer changes the base layer for future lookups. Out of range
// values are ignored.
func (l *Layout[T]) SetDefaultLayer(n int) {
	if n >= 0 && n < len(l.layers) {
		l.defaultLayer = n
	}
}

// DefaultLayer returns the base layer index.
func (l *Layout[T]) DefaultLayer() int { return l.defaultLayer }

// CurrentLayer returns the most recently activated held layer, or the
// default layer when none is held.
func (l *Layout[T]) CurrentLayer() int {
	for i := len(l.states) - 1; i >= 0; i-- {
		if l.states[i].kind == stateLayer {
			return l.states[i].layer
		}
	}
	return l.defaultLayer
}

// KeyCodes appends the currently pressed key codes to dst.
func (l *Layout[T]) KeyCodes(dst []KeyCode) []KeyCode {
	for _, s := range l.states {
		if s.kind == stateKey {
			dst = append(dst, s.code)
		}
	}
	return dst
}

// Waiting reports whether a hold-tap is undecided.
func (l *Layout[T]) Waiting() bool { return l.waiting.active }

// Dropped returns how many custom events were lost because more were
// pending than Tick could hand out.
func (l *Layout[T]) Dropped() uint32 { return l.dropped }

// Queued returns the number of events not yet applied.
func (l *Layout[T]) Queued() int { return l.stacked.Len() }
