package dispatcher

import (
	"strconv"

	"splitkb/display"
	"splitkb/multi"
	"splitkb/proto"
)

// Bongo counts key presses and draws a cat that swaps paws on each one.
// The primary tells the peer about its presses at most once per display
// tick.
type Bongo struct {
	primary bool
	pending bool
	taps    uint32
}

func NewBongo() *Bongo { return &Bongo{} }

// Taps returns the number of presses seen so far.
func (b *Bongo) Taps() uint32 { return b.taps }

func (b *Bongo) HandleEvent(m proto.Message) multi.Multi[proto.Message] {
	switch m.Kind {
	case proto.MsgYouArePrimary:
		b.primary = true
	case proto.MsgYouAreSecondary:
		b.primary = false
	case proto.MsgMatrixKeyPress:
		b.taps++
		b.pending = b.primary
	case proto.MsgSecondaryKeyPress, proto.MsgBongo:
		b.taps++
	case proto.MsgUpdateDisplay:
		if b.pending {
			b.pending = false
			return multi.Of(proto.Of(proto.MsgBongo))
		}
	}
	return multi.None[proto.Message]()
}

var bongoFrames = [2][3]string{
	{
		` /\_/\`,
		`( o.o )`,
		`_|  /__`,
	},
	{
		` /\_/\`,
		`( -.- )`,
		`__\  |_`,
	},
}

// Render draws the cat in the frame selected by the tap count.
func (b *Bongo) Render(s display.Screen) error {
	s.Clear()
	f := bongoFrames[b.taps%2]
	y := int16(display.LineHeight)
	for _, line := range f {
		s.DrawText(line, 0, y)
		y += display.LineHeight
	}
	s.DrawText("taps:", 0, y+display.LineHeight)
	s.DrawText(strconv.FormatUint(uint64(b.taps), 10), 0, y+2*display.LineHeight)
	return s.Flush()
}
