package proto

import "fmt"

// MenuActionKind is a menu navigation step.
type MenuActionKind uint8

const (
	MenuOpen MenuActionKind = iota + 1
	MenuClose
	MenuUp
	MenuDown
	MenuSelect
	MenuLeft
	MenuRight

	menuEnd
)

func (k MenuActionKind) Valid() bool { return k >= MenuOpen && k < menuEnd }

func (k MenuActionKind) String() string {
	switch k {
	case MenuOpen:
		return "open"
	case MenuClose:
		return "close"
	case MenuUp:
		return "up"
	case MenuDown:
		return "down"
	case MenuSelect:
		return "select"
	case MenuLeft:
		return "left"
	case MenuRight:
		return "right"
	default:
		return "unknown"
	}
}

// MenuAction carries a menu step. Page is only meaningful for MenuOpen sent
// to the peer, where it names the mirrored page to show.
type MenuAction struct {
	Kind MenuActionKind
	Page DisplayedState
}

// LEDMode is an animation mode of the LED engine.
type LEDMode uint8

const (
	LEDOff LEDMode = iota
	LEDWheel
	LEDSolid
	LEDFade

	ledModeEnd
)

func (m LEDMode) Valid() bool { return m < ledModeEnd }

func (m LEDMode) String() string {
	switch m {
	case LEDOff:
		return "off"
	case LEDWheel:
		return "wheel"
	case LEDSolid:
		return "solid"
	case LEDFade:
		return "fade"
	default:
		return "unknown"
	}
}

// LEDActionKind is an operation on the LED engine.
type LEDActionKind uint8

const (
	LEDSetMode LEDActionKind = iota + 1
	LEDIncRed
	LEDDecRed
	LEDIncGreen
	LEDDecGreen
	LEDIncBlue
	LEDDecBlue
	LEDSolidColor
	LEDUpdate
	LEDSleep
	LEDWake

	ledActionEnd
)

func (k LEDActionKind) Valid() bool { return k >= LEDSetMode && k < ledActionEnd }

func (k LEDActionKind) String() string {
	switch k {
	case LEDSetMode:
		return "set_mode"
	case LEDIncRed:
		return "inc_red"
	case LEDDecRed:
		return "dec_red"
	case LEDIncGreen:
		return "inc_green"
	case LEDDecGreen:
		return "dec_green"
	case LEDIncBlue:
		return "inc_blue"
	case LEDDecBlue:
		return "dec_blue"
	case LEDSolidColor:
		return "solid"
	case LEDUpdate:
		return "update"
	case LEDSleep:
		return "sleep"
	case LEDWake:
		return "wake"
	default:
		return "unknown"
	}
}

// LEDAction carries an LED engine operation. Mode is used by LEDSetMode and
// R, G, B by LEDSolidColor.
type LEDAction struct {
	Kind    LEDActionKind
	Mode    LEDMode
	R, G, B uint8
}

// SetMode returns the action selecting mode m.
func SetMode(m LEDMode) LEDAction { return LEDAction{Kind: LEDSetMode, Mode: m} }

// SolidColor returns the action setting the solid colour.
func SolidColor(r, g, b uint8) LEDAction {
	return LEDAction{Kind: LEDSolidColor, R: r, G: g, B: b}
}

// Step returns a payload-free action such as LEDIncRed or LEDUpdate.
func Step(k LEDActionKind) LEDAction { return LEDAction{Kind: k} }

func (a LEDAction) String() string {
	switch a.Kind {
	case LEDSetMode:
		return "set_mode(" + a.Mode.String() + ")"
	case LEDSolidColor:
		return fmt.Sprintf("solid(%d,%d,%d)", a.R, a.G, a.B)
	default:
		return a.Kind.String()
	}
}
