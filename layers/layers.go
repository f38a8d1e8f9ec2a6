// Package layers is the keyboard's keymap: seven layers over the 4x14
// matrix, with the rotary encoder bound to two thumb positions.
package layers

import (
	"splitkb/custom"
	"splitkb/hid"
	kc "splitkb/keymap"
)

// Action is a keymap cell carrying custom actions.
type Action = kc.Action[custom.Action]

// Layer indices, matching proto.Layer.
const (
	Default = iota
	Numbers
	Navigation
	Symbols
	Tabbing
	Menu
	CS
)

// Encoder positions pressed by the rotary encoder.
var (
	EncoderCW  = kc.Coord{Row: 3, Col: 0}
	EncoderACW = kc.Coord{Row: 3, Col: 1}
)

const holdTimeout = 200

var (
	tr = kc.Trans[custom.Action]()
	no = kc.NoOp[custom.Action]()
)

func k(c kc.KeyCode) Action        { return kc.K[custom.Action](c) }
func l(n int) Action               { return kc.L[custom.Action](n) }
func d(n int) Action               { return kc.D[custom.Action](n) }
func c(a custom.Action) Action     { return kc.Custom(a) }
func s(c kc.KeyCode) Action        { return kc.M[custom.Action](kc.KeyLeftShift, c) }
func m(cs ...kc.KeyCode) Action    { return kc.M[custom.Action](cs...) }
func all(as ...Action) Action      { return kc.Multiple(as...) }
func media(mk hid.MediaKey) Action { return c(custom.Media(mk)) }

// th taps tap and holds hold after holdTimeout ticks.
func th(tap, hold Action) Action {
	return kc.HT(kc.HoldTap[custom.Action]{Timeout: holdTimeout, Tap: tap, Hold: hold})
}

var (
	playPause = media(hid.MediaPlayPause)
	next      = media(hid.MediaNextTrack)
	previous  = media(hid.MediaPrevTrack)

	// The switchers hold Cmd or Ctrl and move to the tabbing layer until
	// the matching end key is released.
	startCmdT  = all(c(custom.Of(custom.HoldCmd)), d(Tabbing), k(kc.KeyTab))
	endCmdT    = all(c(custom.Of(custom.ReleaseCmd)), d(Default))
	startCtrlT = all(c(custom.Of(custom.HoldCtrl)), d(Tabbing), k(kc.KeyTab))
	endCtrlT   = all(c(custom.Of(custom.ReleaseCtrl)), d(Default))
	shiftTab   = s(kc.KeyTab)

	menuOpen   = all(c(custom.Of(custom.MenuOpen)), d(Menu))
	menuClose  = all(c(custom.Of(custom.MenuClose)), d(Default))
	menuUp     = c(custom.Of(custom.MenuUp))
	menuDown   = c(custom.Of(custom.MenuDown))
	menuSelect = c(custom.Of(custom.MenuSelect))
	menuLeft   = c(custom.Of(custom.MenuLeft))
	menuRight  = c(custom.Of(custom.MenuRight))

	enterShift = kc.HT(kc.HoldTap[custom.Action]{
		Timeout: holdTimeout,
		Tap:     k(kc.KeyEnter),
		Hold:    k(kc.KeyRightShift),
		Config:  kc.HoldOnOtherKeyPress,
	})

	tLC = th(k(kc.KeyT), s(kc.KeyLeftBracket))
	nRC = th(k(kc.KeyN), s(kc.KeyRightBracket))
	pLS = th(k(kc.KeyP), k(kc.KeyLeftBracket))
	lRS = th(k(kc.KeyL), k(kc.KeyRightBracket))
	sLB = th(k(kc.KeyS), s(kc.Key9))
	eRB = th(k(kc.KeyE), s(kc.Key0))
	mSC = th(k(kc.KeyM), k(kc.KeySemicolon))
	gCO = th(k(kc.KeyG), s(kc.KeySemicolon))
	bSP = th(k(kc.KeyB), s(kc.KeyQuote))
	jQU = th(k(kc.KeyJ), k(kc.KeyQuote))
	fHS = th(k(kc.KeyF), m(kc.KeyLeftAlt, kc.KeyLeftShift, kc.Key3))
)

// Keymap returns the board's layers.
func Keymap() kc.Layers[custom.Action] {
	return kc.Layers[custom.Action]{
		Default: {
			{k(kc.KeyTab), k(kc.KeyQ), k(kc.KeyW), fHS, pLS, bSP, k(kc.KeyEscape), k(kc.KeyInsert), jQU, lRS, k(kc.KeyU), k(kc.KeyY), k(kc.KeyQuote), k(kc.KeySemicolon)},
			{k(kc.KeyLeftCtrl), k(kc.KeyA), k(kc.KeyR), sLB, tLC, gCO, menuOpen, k(kc.KeyDelete), mSC, nRC, eRB, k(kc.KeyI), k(kc.KeyO), k(kc.KeyBackslash)},
			{k(kc.KeyLeftShift), k(kc.KeyZ), k(kc.KeyX), k(kc.KeyC), k(kc.KeyD), k(kc.KeyV), k(kc.KeyMute), playPause, k(kc.KeyK), k(kc.KeyH), k(kc.KeyComma), k(kc.KeyDot), k(kc.KeySlash), k(kc.KeyRightShift)},
			{k(kc.KeyVolumeUp), k(kc.KeyVolumeDown), k(kc.KeyLeftAlt), k(kc.KeyBackspace), enterShift, k(kc.KeyLeftGUI), l(Numbers), l(Navigation), k(kc.KeyRightGUI), k(kc.KeySpace), k(kc.KeyRightCtrl), k(kc.KeyRightAlt), previous, next},
		},
		Numbers: {
			{tr, k(kc.KeyF1), k(kc.KeyF2), k(kc.KeyF3), k(kc.KeyF4), k(kc.KeyF5), k(kc.KeyF6), k(kc.KeyF7), k(kc.KeyF8), k(kc.KeyF9), k(kc.KeyF10), k(kc.KeyF11), k(kc.KeyF12), tr},
			{tr, k(kc.Key1), k(kc.Key2), k(kc.Key3), k(kc.Key4), k(kc.Key5), no, no, k(kc.Key6), k(kc.Key7), k(kc.Key8), k(kc.Key9), k(kc.Key0), tr},
			{tr, k(kc.KeyGrave), no, no, k(kc.KeyMinus), k(kc.KeyEqual), tr, tr, no, k(kc.KeyLeftBracket), k(kc.KeyRightBracket), no, no, tr},
			{tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr},
		},
		Navigation: {
			{tr, no, no, no, no, no, no, no, no, no, k(kc.KeyUp), no, no, no},
			{tr, k(kc.KeyHome), k(kc.KeyPageUp), k(kc.KeyPageDown), k(kc.KeyEnd), no, no, no, no, k(kc.KeyLeft), k(kc.KeyDown), k(kc.KeyRight), no, no},
			{tr, no, no, no, no, no, startCtrlT, startCmdT, no, no, no, no, no, no},
			{tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr},
		},
		Symbols: {
			{tr, s(kc.KeyF1), s(kc.KeyF2), s(kc.KeyF3), s(kc.KeyF4), s(kc.KeyF5), s(kc.KeyF6), s(kc.KeyF7), s(kc.KeyF8), s(kc.KeyF9), s(kc.KeyF10), s(kc.KeyF11), s(kc.KeyF12), tr},
			{tr, s(kc.Key1), s(kc.Key2), s(kc.Key3), s(kc.Key4), s(kc.Key5), no, no, s(kc.Key6), s(kc.Key7), s(kc.Key8), s(kc.Key9), s(kc.Key0), tr},
			{tr, s(kc.KeyGrave), no, no, s(kc.KeyMinus), s(kc.KeyEqual), tr, tr, no, no, no, no, no, tr},
			{tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr},
		},
		Tabbing: {
			{tr, no, no, no, no, no, no, no, no, no, no, no, no, no},
			{tr, no, no, no, no, no, no, no, no, no, no, no, no, no},
			{tr, no, no, no, no, no, endCtrlT, endCmdT, no, no, no, no, no, no},
			{k(kc.KeyTab), shiftTab, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, k(kc.KeyLeft), k(kc.KeyRight)},
		},
		Menu: {
			{tr, no, no, no, no, no, no, no, no, no, no, no, no, no},
			{tr, no, no, no, no, no, menuClose, no, no, no, no, no, no, no},
			{tr, no, no, no, no, no, menuSelect, no, no, no, no, no, no, no},
			{menuDown, menuUp, tr, tr, tr, tr, tr, tr, tr, tr, tr, tr, menuLeft, menuRight},
		},
		CS: {
			{k(kc.KeyTab), k(kc.KeyF), k(kc.Key3), k(kc.KeyW), k(kc.KeyE), k(kc.KeyR), k(kc.KeyEscape), no, no, no, no, no, no, no},
			{tr, k(kc.KeyLeftShift), k(kc.KeyA), k(kc.KeyS), k(kc.KeyD), k(kc.KeyG), menuOpen, no, no, no, no, no, no, no},
			{tr, k(kc.KeyLeftCtrl), k(kc.KeyX), k(kc.KeyT), k(kc.Key5), k(kc.KeyB), k(kc.KeyMute), no, no, no, no, no, no, no},
			{k(kc.KeyVolumeUp), k(kc.KeyVolumeDown), k(kc.Key1), k(kc.Key2), k(kc.KeySpace), k(kc.Key6), k(kc.Key7), tr, tr, tr, tr, tr, no, no},
		},
	}
}
