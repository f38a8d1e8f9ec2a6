package proto

import "fmt"

// Message is one event on the firmware's bus. It is a tagged union: Kind
// selects which of the remaining fields are meaningful, and constructors leave
// all others zero so messages compare with ==.
type Message struct {
	Kind  Kind
	Row   uint8
	Col   uint8
	On    bool
	Layer Layer
	Page  DisplayedState
	Menu  MenuAction
	LED   LEDAction
	Index uint16
}

// Of returns a message that carries no payload, such as MsgPing.
func Of(k Kind) Message { return Message{Kind: k} }

func UsbConnected(on bool) Message { return Message{Kind: MsgUsbConnected, On: on} }

func MatrixKeyPress(row, col uint8) Message {
	return Message{Kind: MsgMatrixKeyPress, Row: row, Col: col}
}

func MatrixKeyRelease(row, col uint8) Message {
	return Message{Kind: MsgMatrixKeyRelease, Row: row, Col: col}
}

func SecondaryKeyPress(row, col uint8) Message {
	return Message{Kind: MsgSecondaryKeyPress, Row: row, Col: col}
}

func SecondaryKeyRelease(row, col uint8) Message {
	return Message{Kind: MsgSecondaryKeyRelease, Row: row, Col: col}
}

func CurrentLayer(l Layer) Message { return Message{Kind: MsgCurrentLayer, Layer: l} }

func SecondaryCurrentLayer(l Layer) Message {
	return Message{Kind: MsgSecondaryCurrentLayer, Layer: l}
}

func DisplaySelect(p DisplayedState) Message { return Message{Kind: MsgDisplaySelect, Page: p} }

func SecondaryDisplaySelect(p DisplayedState) Message {
	return Message{Kind: MsgSecondaryDisplaySelect, Page: p}
}

func Menu(k MenuActionKind) Message {
	return Message{Kind: MsgMenu, Menu: MenuAction{Kind: k}}
}

// SecondaryMenuOpen asks the peer to show page p until SecondaryMenuClose.
func SecondaryMenuOpen(p DisplayedState) Message {
	return Message{Kind: MsgSecondaryMenu, Menu: MenuAction{Kind: MenuOpen, Page: p}}
}

func SecondaryMenuClose() Message {
	return Message{Kind: MsgSecondaryMenu, Menu: MenuAction{Kind: MenuClose}}
}

func SetDefaultLayer(index int) Message {
	return Message{Kind: MsgSetDefaultLayer, Index: uint16(index)}
}

func LED(a LEDAction) Message { return Message{Kind: MsgLED, LED: a} }

func SecondaryLED(a LEDAction) Message { return Message{Kind: MsgSecondaryLED, LED: a} }

// Route classifies m by its kind.
func (m Message) Route() Route { return m.Kind.Route() }

func (m Message) String() string {
	switch m.Kind {
	case MsgUsbConnected:
		return fmt.Sprintf("%s(%t)", m.Kind, m.On)
	case MsgMatrixKeyPress, MsgMatrixKeyRelease, MsgSecondaryKeyPress, MsgSecondaryKeyRelease:
		return fmt.Sprintf("%s(%d,%d)", m.Kind, m.Row, m.Col)
	case MsgCurrentLayer, MsgSecondaryCurrentLayer:
		return m.Kind.String() + "(" + m.Layer.String() + ")"
	case MsgDisplaySelect, MsgSecondaryDisplaySelect:
		return m.Kind.String() + "(" + m.Page.String() + ")"
	case MsgMenu:
		return m.Kind.String() + "(" + m.Menu.Kind.String() + ")"
	case MsgSecondaryMenu:
		if m.Menu.Kind == MenuOpen {
			return m.Kind.String() + "(open " + m.Menu.Page.String() + ")"
		}
		return m.Kind.String() + "(" + m.Menu.Kind.String() + ")"
	case MsgSetDefaultLayer:
		return fmt.Sprintf("%s(%d)", m.Kind, m.Index)
	case MsgLED, MsgSecondaryLED:
		return m.Kind.String() + "(" + m.LED.String() + ")"
	default:
		return m.Kind.String()
	}
}
