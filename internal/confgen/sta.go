package confgen

import (
	"fmt"
	"strings"

	"github.com/danmuck/dutctl/internal/capset"
)

const staPreamble = "ctrl_interface=/var/run/wpa_supplicant\nap_scan=1\npmf=1\n"

// DefaultCABundle replaces a ca_cert value containing DEFAULT.
const DefaultCABundle = "/etc/ssl/certs/ca-certificates.crt"

// staHeader names are written as global lines ahead of the network block.
var staHeader = map[string]string{
	"sta_sae_groups": "sae_groups",
	"mbo_cell_capa":  "mbo_cell_capa",
	"sae_pwe":        "sae_pwe",
	"update_config":  "update_config",
}

var staQuoted = map[string]bool{
	"sta_ssid":            true,
	"psk":                 true,
	"phase2":              true,
	"phase1":              true,
	"identity":            true,
	"password":            true,
	"ca_cert":             true,
	"server_cert":         true,
	"private_key":         true,
	"client_cert":         true,
	"domain_match":        true,
	"domain_suffix_match": true,
	"pac_file":            true,
}

var staRename = map[string]string{
	"sta_ssid":       "ssid",
	"sta_wep_key0":   "wep_key0",
	"server_cert":    "ca_cert",
	"sta_owe_group":  "owe_group",
	"sta_ieee80211w": "ieee80211w",
}

// serverCertHashes are sha256 digests of the DER form of the test server
// certificates.
var serverCertHashes = map[string]string{
	"rsa_server1_w1_fi.pem":    "a7407d995678712bb7adb4e7a75e89674aba363dea0b8308c63b006329b0de2d",
	"rsa_server1ALT_w1_fi.pem": "79a9d7273368bee41566f79ae9fc84119f7c963cf8cfac5984e2e0adaeafb112",
	"rsa_server2_w1_fi.pem":    "8d0e00b924e30f4595ae7f5ef9f1346e2c3f343dfb1caf1429b3bb6b32a1bf03",
	"rsa_server4_w1_fi.pem":    "2703264d2d06727be661752ff5b57e85f842dc74e18aaa03316e7b2d08db6260",
}

// ServerCertHash maps a known server certificate file to its hash URI.
func ServerCertHash(pem string) (string, error) {
	h, ok := serverCertHashes[pem]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownServerCert, pem)
	}
	return "hash://server/sha256/" + h, nil
}

type staFlags struct {
	transition bool
	owe        bool
	sae        bool
	psk        bool
	pmf        bool
	saeGroups  bool
}

type staState struct {
	caps  capset.Set
	out   BlockBuilder
	flags staFlags
}

var staRules = []func(*staState){
	staSAEGroups,
	staPMF,
}

func (c *Default) CompileSTA(caps capset.Set) (Document, error) {
	st := &staState{caps: caps}
	for _, e := range caps.Entries() {
		if _, ok := staNames[e.Name]; !ok {
			return Document{}, fmt.Errorf("%w: %s", ErrUnknownCapability, e.Name)
		}
		if key, ok := staHeader[e.Name]; ok {
			if e.Name == "sta_sae_groups" {
				st.flags.saeGroups = true
			}
			for _, v := range e.Values {
				st.out.Global(key, v)
			}
		}
	}

	st.out.OpenNetwork()
	for _, e := range caps.Entries() {
		if _, header := staHeader[e.Name]; header {
			continue
		}
		if err := st.entry(e); err != nil {
			return Document{}, err
		}
	}
	for _, rule := range staRules {
		rule(st)
	}

	return Document{
		Role:     RoleSTA,
		FileName: DefaultSupplicantFile,
		Text:     staPreamble + st.out.String(),
	}, nil
}

func (st *staState) entry(e capset.Capability) error {
	f := &st.flags
	for _, v := range e.Values {
		switch e.Name {
		case "key_mgmt":
			f.transition = f.transition || (strings.Contains(v, "WPA-PSK") && strings.Contains(v, "SAE"))
			f.owe = f.owe || strings.Contains(v, "OWE")
			f.sae = f.sae || strings.Contains(v, "SAE")
			f.psk = f.psk || strings.Contains(v, "WPA-PSK")
		case "sta_ieee80211w":
			f.pmf = true
		case "ca_cert":
			if strings.Contains(v, "DEFAULT") {
				v = DefaultCABundle
			}
		case "server_cert":
			h, err := ServerCertHash(v)
			if err != nil {
				return err
			}
			v = h
		}
		key := e.Name
		if renamed, ok := staRename[key]; ok {
			key = renamed
		}
		st.out.Network(key, v, staQuoted[e.Name])
	}
	return nil
}

func staSAEGroups(st *staState) {
	if st.flags.sae && !st.flags.saeGroups {
		st.out.Network("sae_groups", DefaultSAEGroups, false)
	}
}

func staPMF(st *staState) {
	f := st.flags
	if f.pmf {
		return
	}
	switch {
	case f.transition:
		st.out.Network("ieee80211w", "1", false)
	case f.owe, f.sae:
		st.out.Network("ieee80211w", "2", false)
	case f.psk:
		st.out.Network("ieee80211w", "1", false)
	}
}

// CompileSTAWSC builds the document used by STA_ENABLE_WSC: global lines
// followed by the STA WPS settings.
func (c *Default) CompileSTAWSC(caps capset.Set) (Document, error) {
	var b KVBuilder
	for _, e := range caps.Entries() {
		if _, ok := staWSCNames[e.Name]; !ok {
			return Document{}, fmt.Errorf("%w: %s", ErrUnknownCapability, e.Name)
		}
		if _, ok := staHeader[e.Name]; ok {
			for _, v := range e.Values {
				b.Line(e.Name, v)
			}
		}
	}

	mode, ok := caps.Get("wps_enable")
	if !ok {
		return Document{}, fmt.Errorf("%w: no wps_enable", ErrInvalidValue)
	}
	if mode != "1" {
		return Document{}, fmt.Errorf("%w: wps_enable=%q", ErrUnknownWPSMode, mode)
	}
	settings, err := c.wps.Settings(WPSRoleSTA)
	if err != nil {
		return Document{}, err
	}
	if len(settings) == 0 {
		return Document{}, fmt.Errorf("%w: %s settings empty", ErrWPSSettings, WPSRoleSTA)
	}
	for _, s := range settings {
		b.Line(s.Key, s.Value)
	}
	return Document{
		Role:     RoleSTA,
		FileName: DefaultSupplicantFile,
		Text:     staPreamble + b.String(),
	}, nil
}

// ScanDocument is the throwaway supplicant config used to scan before an
// ANQP query when no station is running.
func ScanDocument() Document {
	var b BlockBuilder
	b.Global("ctrl_interface", "/var/run/wpa_supplicant")
	b.Global("ap_scan", "1")
	b.Network("ssid", "Scanning", true)
	return Document{Role: RoleSTA, FileName: DefaultSupplicantFile, Text: b.String()}
}
