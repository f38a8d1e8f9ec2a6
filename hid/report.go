// Package hid builds the USB HID input reports sent to the host: the boot
// keyboard report and the two-byte consumer-control report.
package hid

import (
	"encoding/binary"

	"splitkb/keymap"
)

// KbReportLen is the size of a boot keyboard report.
const KbReportLen = 8

const (
	maxKeys       = 6
	errorRollOver = 0x01
)

// KbReport is a boot protocol keyboard report: modifier bits, a reserved
// byte and six key slots.
type KbReport [KbReportLen]byte

// Pressed adds k to the report. Modifiers set their bit; other keys take the
// next free slot. A seventh key fills every slot with ErrorRollOver.
func (r *KbReport) Pressed(k keymap.KeyCode) {
	if k == keymap.KeyNone {
		return
	}
	if k.IsModifier() {
		r[0] |= k.ModifierBit()
		return
	}
	keys := r[2:]
	for i, c := range keys {
		if c == byte(k) {
			return
		}
		if c == 0 {
			keys[i] = byte(k)
			return
		}
	}
	for i := range keys {
		keys[i] = errorRollOver
	}
}

// Modifiers returns the modifier byte.
func (r *KbReport) Modifiers() uint8 { return r[0] }

// Keys returns the key slots.
func (r *KbReport) Keys() []byte { return r[2:] }

// RolledOver reports whether more than six keys were pressed.
func (r *KbReport) RolledOver() bool { return r[2] == errorRollOver }

// FromKeyCodes builds a report holding every code in ks.
func FromKeyCodes(ks []keymap.KeyCode) KbReport {
	var r KbReport
	for _, k := range ks {
		r.Pressed(k)
	}
	return r
}

// MediaKey is a consumer page usage.
type MediaKey uint16

const (
	MediaRecord      MediaKey = 0xB2
	MediaFastForward MediaKey = 0xB3
	MediaRewind      MediaKey = 0xB4
	MediaNextTrack   MediaKey = 0xB5
	MediaPrevTrack   MediaKey = 0xB6
	MediaStop        MediaKey = 0xB7
	MediaEject       MediaKey = 0xB8
	MediaRandomPlay  MediaKey = 0xB9
	MediaStopEject   MediaKey = 0xCC
	MediaPlayPause   MediaKey = 0xCD
)

func (k MediaKey) String() string {
	switch k {
	case MediaRecord:
		return "record"
	case MediaFastForward:
		return "fast_forward"
	case MediaRewind:
		return "rewind"
	case MediaNextTrack:
		return "next_track"
	case MediaPrevTrack:
		return "prev_track"
	case MediaStop:
		return "stop"
	case MediaEject:
		return "eject"
	case MediaRandomPlay:
		return "random_play"
	case MediaStopEject:
		return "stop_eject"
	case MediaPlayPause:
		return "play_pause"
	default:
		return "unknown"
	}
}

// MediaReport is a consumer-control report holding one usage, high byte
// first. The zero value releases every media key.
type MediaReport [2]byte

// ReportFor returns the report pressing k.
func ReportFor(k MediaKey) MediaReport {
	var r MediaReport
	binary.BigEndian.PutUint16(r[:], uint16(k))
	return r
}

// Usage returns the usage carried by r.
func (r MediaReport) Usage() MediaKey { return MediaKey(binary.BigEndian.Uint16(r[:])) }

// IsRelease reports whether r releases every media key.
func (r MediaReport) IsRelease() bool { return r == MediaReport{} }
