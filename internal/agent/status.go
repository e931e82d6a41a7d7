package agent

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/danmuck/dutctl/internal/iface"
)

// linkStatus is the subset of a `status` reply used to pick interfaces.
type linkStatus struct {
	Freq int
	SSID string
	Addr string
}

// parseStatus reads the key=value lines printed by `wpa_cli status` and
// `hostapd_cli status`. hostapd reports per-BSS keys with an [n] suffix;
// the first BSS is used.
func parseStatus(out string) linkStatus {
	kv := make(map[string]string)
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(sc.Text()), "=")
		if !ok {
			continue
		}
		if _, seen := kv[key]; !seen {
			kv[key] = value
		}
	}
	var st linkStatus
	st.Freq, _ = strconv.Atoi(kv["freq"])
	st.SSID = first(kv, "ssid", "ssid[0]")
	st.Addr = first(kv, "address", "bssid[0]")
	return st
}

func first(kv map[string]string, keys ...string) string {
	for _, k := range keys {
		if v, ok := kv[k]; ok {
			return v
		}
	}
	return ""
}

// inBand reports whether the status frequency lies in band.
func (st linkStatus) inBand(band iface.Band) bool {
	b, ok := iface.BandOfFreq(st.Freq)
	return ok && b == band
}

// parseBand reads the BAND parameter. Both the display form ("2.4GHz") and
// the enumeration form ("_24GHz") are accepted.
func parseBand(raw string) (iface.Band, bool) {
	switch strings.TrimSpace(raw) {
	case "2.4GHz", "_24GHz":
		return iface.Band24G, true
	case "5GHz", "_5GHz":
		return iface.Band5G, true
	case "6GHz", "_6GHz":
		return iface.Band6G, true
	}
	return 0, false
}
