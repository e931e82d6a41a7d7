package agent

import (
	"bufio"
	"errors"
	"strings"
)

var errCredMissing = errors.New("agent: credential setting missing")

// wscKeys are the credential keys read back after WSC provisioning, in
// reply order: ssid, passphrase, key management.
type wscKeys [3]string

var (
	staCredKeys = wscKeys{"ssid", "psk", "key_mgmt"}
	apCredKeys  = wscKeys{"ssid", "wpa_passphrase", "wpa_key_mgmt"}
)

// readCredentials takes the first value of each key from a hostapd or
// wpa_supplicant file, with surrounding quotes removed. In strict mode a
// missing key is an error; otherwise it reads as empty.
func readCredentials(text string, keys wscKeys, strict bool) ([3]string, error) {
	found := make(map[string]string, len(keys))
	sc := bufio.NewScanner(strings.NewReader(text))
	for sc.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(sc.Text()), "=")
		if !ok {
			continue
		}
		if _, seen := found[key]; seen {
			continue
		}
		found[key] = unquote(value)
	}
	var out [3]string
	for i, k := range keys {
		v, ok := found[k]
		if !ok && strict {
			return out, errCredMissing
		}
		out[i] = v
	}
	return out, nil
}

func unquote(v string) string {
	if len(v) >= 2 && v[0] == '"' {
		if end := strings.IndexByte(v[1:], '"'); end >= 0 {
			return v[1 : end+1]
		}
	}
	return v
}
