package iface

import "fmt"

// Band is the band nibble of a BSS identifier.
type Band int

const (
	Band24G Band = 0
	Band5G  Band = 1
	Band6G  Band = 2
)

// String returns the short form used in hostapd file names.
func (b Band) String() string {
	switch b {
	case Band24G:
		return "24G"
	case Band5G:
		return "5G"
	case Band6G:
		return "6G"
	default:
		return fmt.Sprintf("Band(%d)", int(b))
	}
}

func (b Band) Valid() bool {
	return b == Band24G || b == Band5G || b == Band6G
}

// BSSIdentifier is the decomposed form of the BSS_IDENTIFIER parameter.
type BSSIdentifier struct {
	Band        Band
	Slot        int
	MultiBSSID  bool
	Transmitter bool
}

// Decompose splits identifier into band (bits 0-3), slot (bits 4-7),
// multi-BSSID flag (bit 8) and transmitter flag (bit 9).
func Decompose(identifier int) BSSIdentifier {
	return BSSIdentifier{
		Band:        Band(identifier & 0x0F),
		Slot:        (identifier & 0xF0) >> 4,
		MultiBSSID:  identifier&0x100 != 0,
		Transmitter: identifier&0x200 != 0,
	}
}

// Key is the allocator id for this BSS: positive and distinct for every
// band/slot pair. The multi-BSSID and transmitter flags do not take part.
func (id BSSIdentifier) Key() int {
	return (int(id.Band)<<4 | id.Slot) + 1
}

// HostapdFileName returns the per-BSS hostapd config name.
func (id BSSIdentifier) HostapdFileName() string {
	return fmt.Sprintf("hostapd_%s_%d.conf", id.Band, id.Slot)
}

// Label is the operational band name carried in the BAND parameter.
func (b Band) Label() string {
	switch b {
	case Band24G:
		return "2.4GHz"
	case Band5G:
		return "5GHz"
	case Band6G:
		return "6GHz"
	}
	return ""
}

// BandOfFreq maps a centre frequency in MHz to its band.
func BandOfFreq(freq int) (Band, bool) {
	switch {
	case freq >= 2401 && freq <= 2495:
		return Band24G, true
	case freq >= 5150 && freq <= 5895:
		return Band5G, true
	case freq >= 5925 && freq <= 7125:
		return Band6G, true
	}
	return 0, false
}
