package keymap

import "strconv"

// KeyCode is a USB HID keyboard page usage.
type KeyCode uint8

const (
	KeyNone KeyCode = 0x00

	KeyA KeyCode = 0x04 + iota - 1
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyTab
	KeySpace
	KeyMinus
	KeyEqual
	KeyLeftBracket
	KeyRightBracket
	KeyBackslash
	KeyNonUSHash
	KeySemicolon
	KeyQuote
	KeyGrave
	KeyComma
	KeyDot
	KeySlash
	KeyCapsLock
	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12
	KeyPrintScreen
	KeyScrollLock
	KeyPause
	KeyInsert
	KeyHome
	KeyPageUp
	KeyDelete
	KeyEnd
	KeyPageDown
	KeyRight
	KeyLeft
	KeyDown
	KeyUp
)

const (
	KeyMute       KeyCode = 0x7F
	KeyVolumeUp   KeyCode = 0x80
	KeyVolumeDown KeyCode = 0x81
)

// Modifiers occupy 0xE0..0xE7 and map onto bits of the report's first byte.
const (
	KeyLeftCtrl KeyCode = 0xE0 + iota
	KeyLeftShift
	KeyLeftAlt
	KeyLeftGUI
	KeyRightCtrl
	KeyRightShift
	KeyRightAlt
	KeyRightGUI
)

// IsModifier reports whether k is one of the eight modifier usages.
func (k KeyCode) IsModifier() bool { return k >= KeyLeftCtrl && k <= KeyRightGUI }

// ModifierBit returns the report bit for a modifier, or 0.
func (k KeyCode) ModifierBit() uint8 {
	if !k.IsModifier() {
		return 0
	}
	return 1 << (k - KeyLeftCtrl)
}

func (k KeyCode) String() string {
	switch {
	case k >= KeyA && k <= KeyZ:
		return string(rune('a' + k - KeyA))
	case k >= Key1 && k <= Key9:
		return string(rune('1' + k - Key1))
	case k >= KeyF1 && k <= KeyF12:
		return "f" + strconv.Itoa(int(k-KeyF1)+1)
	}
	switch k {
	case KeyNone:
		return "none"
	case Key0:
		return "0"
	case KeyEnter:
		return "enter"
	case KeyEscape:
		return "esc"
	case KeyBackspace:
		return "bspace"
	case KeyTab:
		return "tab"
	case KeySpace:
		return "space"
	case KeyMinus:
		return "minus"
	case KeyEqual:
		return "equal"
	case KeyLeftBracket:
		return "lbracket"
	case KeyRightBracket:
		return "rbracket"
	case KeyBackslash:
		return "bslash"
	case KeyNonUSHash:
		return "nonushash"
	case KeySemicolon:
		return "scolon"
	case KeyQuote:
		return "quote"
	case KeyGrave:
		return "grave"
	case KeyComma:
		return "comma"
	case KeyDot:
		return "dot"
	case KeySlash:
		return "slash"
	case KeyCapsLock:
		return "capslock"
	case KeyPrintScreen:
		return "pscreen"
	case KeyScrollLock:
		return "scrolllock"
	case KeyPause:
		return "pause"
	case KeyInsert:
		return "insert"
	case KeyHome:
		return "home"
	case KeyPageUp:
		return "pgup"
	case KeyDelete:
		return "delete"
	case KeyEnd:
		return "end"
	case KeyPageDown:
		return "pgdown"
	case KeyRight:
		return "right"
	case KeyLeft:
		return "left"
	case KeyDown:
		return "down"
	case KeyUp:
		return "up"
	case KeyMute:
		return "mute"
	case KeyVolumeUp:
		return "volup"
	case KeyVolumeDown:
		return "voldown"
	case KeyLeftCtrl:
		return "lctrl"
	case KeyLeftShift:
		return "lshift"
	case KeyLeftAlt:
		return "lalt"
	case KeyLeftGUI:
		return "lgui"
	case KeyRightCtrl:
		return "rctrl"
	case KeyRightShift:
		return "rshift"
	case KeyRightAlt:
		return "ralt"
	case KeyRightGUI:
		return "rgui"
	default:
		return "0x" + strconv.FormatUint(uint64(k), 16)
	}
}
