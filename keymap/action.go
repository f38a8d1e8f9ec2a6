// Package keymap resolves key matrix events through a stack of layers into
// pressed key codes and custom events.
//
// The resolver is driven by Tick, once per scan cycle. Physical events are
// queued with Event and replayed one per tick; while a hold-tap key is
// undecided the queue is held back so later keys observe the decision.
package keymap

import "strconv"

// Rows and Cols give the fixed geometry of every layer.
const (
	Rows = 4
	Cols = 14
)

// ActionKind selects the variant of an Action.
type ActionKind uint8

const (
	ActNoOp ActionKind = iota
	ActTrans
	ActKey
	ActKeys
	ActLayer
	ActDefaultLayer
	ActHoldTap
	ActMultiple
	ActCustom
)

func (k ActionKind) String() string {
	switch k {
	case ActNoOp:
		return "noop"
	case ActTrans:
		return "trans"
	case ActKey:
		return "key"
	case ActKeys:
		return "keys"
	case ActLayer:
		return "layer"
	case ActDefaultLayer:
		return "default_layer"
	case ActHoldTap:
		return "hold_tap"
	case ActMultiple:
		return "multiple"
	case ActCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// HoldTapConfig selects how an undecided hold-tap reacts to other keys.
type HoldTapConfig uint8

const (
	// HoldTapDefault decides only on timeout or on release of the key.
	HoldTapDefault HoldTapConfig = iota
	// HoldOnOtherKeyPress decides Hold as soon as another key is pressed.
	HoldOnOtherKeyPress
)

// HoldTap resolves to Tap when released within Timeout ticks, else to Hold.
// A press within TapHoldInterval ticks of the previous tap of the same key
// resolves to Tap at once, so the tap action can be held down.
type HoldTap[T any] struct {
	Timeout         uint16
	Tap             Action[T]
	Hold            Action[T]
	TapHoldInterval uint16
	Config          HoldTapConfig
}

// Action is one cell of a layer.
type Action[T any] struct {
	Kind    ActionKind
	Key     KeyCode
	Keys    []KeyCode
	Layer   int
	HoldTap *HoldTap[T]
	Actions []Action[T]
	Custom  T
}

// NoOp does nothing.
func NoOp[T any]() Action[T] { return Action[T]{Kind: ActNoOp} }

// Trans defers to the next layer down the active stack.
func Trans[T any]() Action[T] { return Action[T]{Kind: ActTrans} }

// K presses one key code.
func K[T any](k KeyCode) Action[T] { return Action[T]{Kind: ActKey, Key: k} }

// M presses several key codes at once, typically modifiers plus a key.
func M[T any](ks ...KeyCode) Action[T] { return Action[T]{Kind: ActKeys, Keys: ks} }

// L activates layer n while the key is held.
func L[T any](n int) Action[T] { return Action[T]{Kind: ActLayer, Layer: n} }

// D sets the default layer to n.
func D[T any](n int) Action[T] { return Action[T]{Kind: ActDefaultLayer, Layer: n} }

// Multiple performs every action for one physical event.
func Multiple[T any](as ...Action[T]) Action[T] { return Action[T]{Kind: ActMultiple, Actions: as} }

// Custom emits a custom event carrying v.
func Custom[T any](v T) Action[T] { return Action[T]{Kind: ActCustom, Custom: v} }

// HT wraps a hold-tap definition.
func HT[T any](ht HoldTap[T]) Action[T] { return Action[T]{Kind: ActHoldTap, HoldTap: &ht} }

func (a Action[T]) String() string {
	switch a.Kind {
	case ActKey:
		return a.Key.String()
	case ActKeys:
		s := ""
		for i, k := range a.Keys {
			if i > 0 {
				s += "+"
			}
			s += k.String()
		}
		return s
	case ActLayer:
		return "l(" + strconv.Itoa(a.Layer) + ")"
	case ActDefaultLayer:
		return "d(" + strconv.Itoa(a.Layer) + ")"
	case ActHoldTap:
		return "ht(" + a.HoldTap.Tap.String() + "," + a.HoldTap.Hold.String() + ")"
	default:
		return a.Kind.String()
	}
}

// Layers is the full keymap, indexed by layer then row then column.
type Layers[T any] [][Rows][Cols]Action[T]
