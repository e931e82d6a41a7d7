package schema

import "strconv"

// DutType is the ROLE parameter value.
type DutType int

const (
	DutSTA DutType = 1
	DutAP  DutType = 2
	DutP2P DutType = 3
)

func (d DutType) String() string {
	switch d {
	case DutSTA:
		return "STAUT"
	case DutAP:
		return "APUT"
	case DutP2P:
		return "P2PUT"
	default:
		return "DutType(" + strconv.Itoa(int(d)) + ")"
	}
}

// ParseDutType parses the decimal wire form of ROLE.
func ParseDutType(s string) (DutType, bool) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	d := DutType(n)
	switch d {
	case DutSTA, DutAP, DutP2P:
		return d, true
	}
	return 0, false
}

// DebugLevel is the DEBUG_LEVEL parameter value.
type DebugLevel int

const (
	DebugDisable  DebugLevel = 0
	DebugBasic    DebugLevel = 1
	DebugAdvanced DebugLevel = 2
)

// ParseDebugLevel parses the decimal wire form. Unknown values map to DebugDisable.
func ParseDebugLevel(s string) DebugLevel {
	n, err := strconv.Atoi(s)
	if err != nil {
		return DebugDisable
	}
	switch d := DebugLevel(n); d {
	case DebugBasic, DebugAdvanced:
		return d
	}
	return DebugDisable
}

// HostapdFlags returns the hostapd verbosity flags for the level.
func (d DebugLevel) HostapdFlags() string {
	switch d {
	case DebugBasic:
		return "-dK"
	case DebugAdvanced:
		return "-dddK"
	}
	return ""
}

// SupplicantFlags returns the wpa_supplicant verbosity flags for the level.
func (d DebugLevel) SupplicantFlags() string {
	switch d {
	case DebugBasic:
		return "-d"
	case DebugAdvanced:
		return "-ddd"
	}
	return ""
}

// P2PConnType is the P2P_CONN_TYPE parameter value.
type P2PConnType int

const (
	P2PConnJoin P2PConnType = 1
	P2PConnAuth P2PConnType = 2
)
