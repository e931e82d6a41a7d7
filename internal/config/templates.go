package config

import (
	"fmt"
	"os"
	"strings"
)

// Kinds lists the template formats Template understands.
func Kinds() []string {
	return []string{"toml", "yaml"}
}

func Template(kind string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "toml":
		return tomlTemplate, nil
	case "yaml", "yml":
		return yamlTemplate, nil
	default:
		return "", fmt.Errorf("unknown config kind: %s", kind)
	}
}

func WriteTemplate(path, kind string, overwrite bool) error {
	template, err := Template(kind)
	if err != nil {
		return err
	}
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(template), 0o600)
}

const tomlTemplate = `# band:name pairs (2, 5, 6) or a single interface name
interface = "2:wlan0,5:wlan1"
ip = "0.0.0.0"
port = 9004
admin_addr = "127.0.0.1:9080"
admin_origins = []
log_file = ""
hostapd_dir = "/etc/hostapd"
supplicant_conf = "/etc/wpa_supplicant/wpa_supplicant.conf"
wps_dir = "/tmp"
bridge_name = "br-wlans"
dhcp_server_ip = "192.168.65.1"
p2p_go_intent = 7
`

const yamlTemplate = `# band:name pairs (2, 5, 6) or a single interface name
interface: "2:wlan0,5:wlan1"
ip: "0.0.0.0"
port: 9004
admin_addr: "127.0.0.1:9080"
admin_origins: []
log_file: ""
hostapd_dir: /etc/hostapd
supplicant_conf: /etc/wpa_supplicant/wpa_supplicant.conf
wps_dir: /tmp
bridge_name: br-wlans
dhcp_server_ip: 192.168.65.1
p2p_go_intent: 7
`
