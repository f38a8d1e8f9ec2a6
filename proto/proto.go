// Package proto defines the messages exchanged between the firmware's
// subsystems and between the two halves of the keyboard, together with their
// compact wire encoding.
package proto

// Kind identifies the message variant.
type Kind uint8

const (
	MsgLateInit Kind = iota + 1
	MsgInitTimers
	MsgUsbConnected
	MsgYouArePrimary
	MsgYouAreSecondary
	MsgUpdateDisplay
	MsgMatrixKeyPress
	MsgMatrixKeyRelease
	MsgSecondaryKeyPress
	MsgSecondaryKeyRelease
	MsgPing
	MsgPong
	MsgCmdHeld
	MsgCmdReleased
	MsgCtrlHeld
	MsgCtrlReleased
	MsgCurrentLayer
	MsgSecondaryCurrentLayer
	MsgDisplaySelect
	MsgSecondaryDisplaySelect
	MsgMenu
	MsgSecondaryMenu
	MsgSetDefaultLayer
	MsgLED
	MsgSecondaryLED
	MsgBongo
	MsgSleep
	MsgWake

	kindEnd
)

// Matrix geometry shared by both halves once the secondary's columns are
// mirrored.
const (
	MatrixRows = 4
	MatrixCols = 14
	HalfCols   = 7
)

// Route says where a message produced by a subsystem goes next.
type Route uint8

const (
	// Local messages re-enter the dispatcher on the board that produced them.
	Local Route = iota
	// Remote messages are written to the serial link for the peer board.
	Remote
)

func (r Route) String() string {
	if r == Remote {
		return "remote"
	}
	return "local"
}

// Valid reports whether k names a defined variant.
func (k Kind) Valid() bool { return k >= MsgLateInit && k < kindEnd }

// Route classifies k. Every kind is exactly one of Local or Remote.
func (k Kind) Route() Route {
	switch k {
	case MsgYouAreSecondary,
		MsgSecondaryKeyPress,
		MsgSecondaryKeyRelease,
		MsgSecondaryCurrentLayer,
		MsgSecondaryDisplaySelect,
		MsgSecondaryMenu,
		MsgSecondaryLED,
		MsgBongo,
		MsgPong:
		return Remote
	default:
		return Local
	}
}

func (k Kind) String() string {
	switch k {
	case MsgLateInit:
		return "late_init"
	case MsgInitTimers:
		return "init_timers"
	case MsgUsbConnected:
		return "usb_connected"
	case MsgYouArePrimary:
		return "you_are_primary"
	case MsgYouAreSecondary:
		return "you_are_secondary"
	case MsgUpdateDisplay:
		return "update_display"
	case MsgMatrixKeyPress:
		return "matrix_key_press"
	case MsgMatrixKeyRelease:
		return "matrix_key_release"
	case MsgSecondaryKeyPress:
		return "secondary_key_press"
	case MsgSecondaryKeyRelease:
		return "secondary_key_release"
	case MsgPing:
		return "ping"
	case MsgPong:
		return "pong"
	case MsgCmdHeld:
		return "cmd_held"
	case MsgCmdReleased:
		return "cmd_released"
	case MsgCtrlHeld:
		return "ctrl_held"
	case MsgCtrlReleased:
		return "ctrl_released"
	case MsgCurrentLayer:
		return "current_layer"
	case MsgSecondaryCurrentLayer:
		return "secondary_current_layer"
	case MsgDisplaySelect:
		return "display_select"
	case MsgSecondaryDisplaySelect:
		return "secondary_display_select"
	case MsgMenu:
		return "menu"
	case MsgSecondaryMenu:
		return "secondary_menu"
	case MsgSetDefaultLayer:
		return "set_default_layer"
	case MsgLED:
		return "led"
	case MsgSecondaryLED:
		return "secondary_led"
	case MsgBongo:
		return "bongo"
	case MsgSleep:
		return "sleep"
	case MsgWake:
		return "wake"
	default:
		return "unknown"
	}
}
