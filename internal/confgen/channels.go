package confgen

import "fmt"

var ht40Plus = map[int]bool{
	36: true, 44: true, 52: true, 60: true, 100: true, 108: true,
	116: true, 124: true, 132: true, 140: true, 149: true, 157: true,
}

var ht40Minus = map[int]bool{
	40: true, 48: true, 56: true, 64: true, 104: true, 112: true,
	120: true, 128: true, 136: true, 144: true, 153: true, 161: true,
}

// IsHT40Plus reports whether channel pairs with the channel above it.
func IsHT40Plus(channel int) bool { return ht40Plus[channel] }

// IsHT40Minus reports whether channel pairs with the channel below it.
func IsHT40Minus(channel int) bool { return ht40Minus[channel] }

// Channel width classes as written to *_oper_chwidth.
const (
	Width20or40 = 0
	Width80     = 1
	Width160    = 2
)

// CenterIndex returns the center frequency segment index for a 5 GHz
// channel at width class 1 (80 MHz) or 2 (160 MHz).
func CenterIndex(channel, width int) (int, bool) {
	switch width {
	case Width80:
		switch {
		case channel >= 36 && channel <= 48:
			return 42, true
		case channel >= 52 && channel <= 64:
			return 58, true
		case channel >= 100 && channel <= 112:
			return 106, true
		case channel >= 116 && channel <= 128:
			return 122, true
		case channel >= 132 && channel <= 144:
			return 138, true
		case channel >= 149 && channel <= 161:
			return 155, true
		}
	case Width160:
		switch {
		case channel >= 36 && channel <= 64:
			return 50, true
		case channel >= 100 && channel <= 128:
			return 114, true
		}
	}
	return 0, false
}

// ChannelSwitchCenter returns the 80 MHz center frequency and secondary
// channel offset for a chan_switch to channel at freq MHz.
func ChannelSwitchCenter(channel, freq int) (centerFreq, offset int, err error) {
	idx, ok := CenterIndex(channel, Width80)
	if !ok {
		return 0, 0, fmt.Errorf("%w: no 80 MHz center for channel %d", ErrInvalidValue, channel)
	}
	centerFreq = 5000 + idx*5
	offset = -1
	if centerFreq == freq+30 || centerFreq == freq-10 {
		offset = 1
	}
	return centerFreq, offset, nil
}
