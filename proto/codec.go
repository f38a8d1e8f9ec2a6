package proto

import (
	"encoding/binary"
	"errors"
)

// MaxEncodedLen bounds the encoded size of any message.
const MaxEncodedLen = 8

var (
	// ErrShort means the bytes are a valid prefix of a message that has not
	// fully arrived yet.
	ErrShort = errors.New("proto: short message")
	// ErrInvalid means the bytes can never become a valid message.
	ErrInvalid = errors.New("proto: invalid message")
)

// AppendMessage appends the wire encoding of m to dst: one kind byte followed
// by a fixed payload determined by the kind. No length prefix is written.
// A message Decode would reject is not written and dst is returned as is.
func AppendMessage(dst []byte, m Message) []byte {
	start := len(dst)
	dst = appendMessage(dst, m)
	if _, _, err := Decode(dst[start:]); err != nil {
		return dst[:start]
	}
	return dst
}

func appendMessage(dst []byte, m Message) []byte {
	dst = append(dst, byte(m.Kind))
	switch m.Kind {
	case MsgUsbConnected:
		if m.On {
			dst = append(dst, 1)
		} else {
			dst = append(dst, 0)
		}
	case MsgMatrixKeyPress, MsgMatrixKeyRelease, MsgSecondaryKeyPress, MsgSecondaryKeyRelease:
		dst = append(dst, m.Row, m.Col)
	case MsgCurrentLayer, MsgSecondaryCurrentLayer:
		dst = append(dst, byte(m.Layer))
	case MsgDisplaySelect, MsgSecondaryDisplaySelect:
		dst = append(dst, byte(m.Page))
	case MsgMenu:
		dst = append(dst, byte(m.Menu.Kind))
	case MsgSecondaryMenu:
		dst = append(dst, byte(m.Menu.Kind))
		if m.Menu.Kind == MenuOpen {
			dst = append(dst, byte(m.Menu.Page))
		}
	case MsgSetDefaultLayer:
		dst = binary.AppendUvarint(dst, uint64(m.Index))
	case MsgLED, MsgSecondaryLED:
		dst = appendLEDAction(dst, m.LED)
	}
	return dst
}

func appendLEDAction(dst []byte, a LEDAction) []byte {
	dst = append(dst, byte(a.Kind))
	switch a.Kind {
	case LEDSetMode:
		dst = append(dst, byte(a.Mode))
	case LEDSolidColor:
		dst = append(dst, a.R, a.G, a.B)
	}
	return dst
}

// Decode parses one message from the front of b and returns it with the
// number of bytes consumed.
func Decode(b []byte) (Message, int, error) {
	if len(b) == 0 {
		return Message{}, 0, ErrShort
	}
	k := Kind(b[0])
	if !k.Valid() {
		return Message{}, 0, ErrInvalid
	}
	m := Message{Kind: k}
	p := b[1:]

	switch k {
	case MsgUsbConnected:
		if len(p) < 1 {
			return Message{}, 0, ErrShort
		}
		if p[0] > 1 {
			return Message{}, 0, ErrInvalid
		}
		m.On = p[0] == 1
		return m, 2, nil

	case MsgMatrixKeyPress, MsgMatrixKeyRelease, MsgSecondaryKeyPress, MsgSecondaryKeyRelease:
		if len(p) >= 1 && p[0] >= MatrixRows {
			return Message{}, 0, ErrInvalid
		}
		if len(p) < 2 {
			return Message{}, 0, ErrShort
		}
		if p[1] >= MatrixCols {
			return Message{}, 0, ErrInvalid
		}
		m.Row, m.Col = p[0], p[1]
		return m, 3, nil

	case MsgCurrentLayer, MsgSecondaryCurrentLayer:
		if len(p) < 1 {
			return Message{}, 0, ErrShort
		}
		if Layer(p[0]) > LayerMissing {
			return Message{}, 0, ErrInvalid
		}
		m.Layer = Layer(p[0])
		return m, 2, nil

	case MsgDisplaySelect, MsgSecondaryDisplaySelect:
		if len(p) < 1 {
			return Message{}, 0, ErrShort
		}
		if !DisplayedState(p[0]).Valid() {
			return Message{}, 0, ErrInvalid
		}
		m.Page = DisplayedState(p[0])
		return m, 2, nil

	case MsgMenu:
		if len(p) < 1 {
			return Message{}, 0, ErrShort
		}
		mk := MenuActionKind(p[0])
		if !mk.Valid() {
			return Message{}, 0, ErrInvalid
		}
		m.Menu.Kind = mk
		return m, 2, nil

	case MsgSecondaryMenu:
		if len(p) < 1 {
			return Message{}, 0, ErrShort
		}
		switch MenuActionKind(p[0]) {
		case MenuClose:
			m.Menu.Kind = MenuClose
			return m, 2, nil
		case MenuOpen:
			if len(p) < 2 {
				return Message{}, 0, ErrShort
			}
			if !DisplayedState(p[1]).Valid() {
				return Message{}, 0, ErrInvalid
			}
			m.Menu = MenuAction{Kind: MenuOpen, Page: DisplayedState(p[1])}
			return m, 3, nil
		default:
			return Message{}, 0, ErrInvalid
		}

	case MsgSetDefaultLayer:
		v, n := binary.Uvarint(p)
		if n == 0 {
			return Message{}, 0, ErrShort
		}
		if n < 0 || v > 0xFFFF {
			return Message{}, 0, ErrInvalid
		}
		m.Index = uint16(v)
		return m, 1 + n, nil

	case MsgLED, MsgSecondaryLED:
		a, n, err := decodeLEDAction(p)
		if err != nil {
			return Message{}, 0, err
		}
		m.LED = a
		return m, 1 + n, nil

	default:
		return m, 1, nil
	}
}

func decodeLEDAction(p []byte) (LEDAction, int, error) {
	if len(p) < 1 {
		return LEDAction{}, 0, ErrShort
	}
	a := LEDAction{Kind: LEDActionKind(p[0])}
	if !a.Kind.Valid() {
		return LEDAction{}, 0, ErrInvalid
	}
	switch a.Kind {
	case LEDSetMode:
		if len(p) < 2 {
			return LEDAction{}, 0, ErrShort
		}
		a.Mode = LEDMode(p[1])
		if !a.Mode.Valid() {
			return LEDAction{}, 0, ErrInvalid
		}
		return a, 2, nil
	case LEDSolidColor:
		if len(p) < 4 {
			return LEDAction{}, 0, ErrShort
		}
		a.R, a.G, a.B = p[1], p[2], p[3]
		return a, 4, nil
	default:
		return a, 1, nil
	}
}
