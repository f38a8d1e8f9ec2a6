package proto

// Layer names one table of the keymap.
type Layer uint8

const (
	LayerDefault Layer = iota
	LayerNumbers
	LayerNavigation
	LayerSymbols
	LayerTabbing
	LayerMenu
	LayerCS
	// LayerMissing is the sentinel for indices outside the keymap.
	LayerMissing
)

// LayerCount is the number of defined layers.
const LayerCount = int(LayerMissing)

// LayerFromIndex converts a keymap layer index. Out of range maps to
// LayerMissing.
func LayerFromIndex(i int) Layer {
	if i < 0 || i >= LayerCount {
		return LayerMissing
	}
	return Layer(i)
}

// Index is the inverse of LayerFromIndex. LayerMissing and anything beyond it
// map to LayerCount.
func (l Layer) Index() int {
	if l >= LayerMissing {
		return LayerCount
	}
	return int(l)
}

func (l Layer) String() string {
	switch l {
	case LayerDefault:
		return "default"
	case LayerNumbers:
		return "numbers"
	case LayerNavigation:
		return "nav"
	case LayerSymbols:
		return "symbols"
	case LayerTabbing:
		return "tabbing"
	case LayerMenu:
		return "menu"
	case LayerCS:
		return "cs"
	default:
		return "missing"
	}
}

// DisplayedState selects the page rendered on a board's display.
type DisplayedState uint8

const (
	DisplayInfo DisplayedState = iota
	DisplayMenu
	DisplayBongo
	DisplayLeds

	displayEnd
)

func (d DisplayedState) Valid() bool { return d < displayEnd }

func (d DisplayedState) String() string {
	switch d {
	case DisplayInfo:
		return "info"
	case DisplayMenu:
		return "menu"
	case DisplayBongo:
		return "bongo"
	case DisplayLeds:
		return "leds"
	default:
		return "unknown"
	}
}
