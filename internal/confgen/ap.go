package confgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/dutctl/internal/capset"
	"github.com/danmuck/dutctl/internal/iface"
)

// DefaultSAEGroups is written when SAE is in use without explicit groups.
const DefaultSAEGroups = "15 16 17 18 19 20 21"

type apFlags struct {
	sae        bool
	wpa        bool
	owe        bool
	transition bool
	pmf        bool

	hwMode     string
	channel    int
	hasChannel bool

	width    int
	heWidth  bool
	vhtWidth bool
	ac       bool
	ax       bool

	muEDCA    bool
	saeGroups bool
	wps       bool
	mbss      bool
}

type apState struct {
	caps   capset.Set
	target APTarget
	out    KVBuilder
	flags  apFlags
	c      *Default
}

type apRule struct {
	name  string
	apply func(*apState) error
}

// apRules run after the per-entry pass, in this order.
var apRules = []apRule{
	{"pmf", apPMF},
	{"sae", apSAE},
	{"width", apWidth},
	{"mu_edca", apMUEDCA},
	{"wps_rf_bands", apWPSBands},
}

func (c *Default) CompileAP(caps capset.Set, target APTarget) (Document, error) {
	if target.Interface == "" {
		return Document{}, ErrNoInterface
	}
	st := &apState{caps: caps, target: target, c: c}
	if err := st.observe(); err != nil {
		return Document{}, err
	}

	if target.Append {
		st.out.Line("bss", target.Interface)
		st.out.Line("ctrl_interface", "/var/run/hostapd")
	} else {
		st.out.Line("ctrl_interface", "/var/run/hostapd")
		st.out.Line("ctrl_interface_group", "0")
		st.out.Line("interface", target.Interface)
	}

	for _, e := range caps.Entries() {
		if err := st.entry(e); err != nil {
			return Document{}, err
		}
	}
	for _, rule := range apRules {
		if err := rule.apply(st); err != nil {
			return Document{}, fmt.Errorf("%s: %w", rule.name, err)
		}
	}

	return Document{
		Role:      RoleAP,
		FileName:  target.FileName,
		Interface: target.Interface,
		Append:    target.Append,
		Text:      st.out.String(),
	}, nil
}

// observe validates names and collects the feature flags.
func (st *apState) observe() error {
	f := &st.flags
	f.width = Width80
	for _, e := range st.caps.Entries() {
		if _, ok := apNames[e.Name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownCapability, e.Name)
		}
		v := strings.Join(e.Values, " ")
		switch e.Name {
		case "wpa_key_mgmt":
			f.transition = f.transition || (strings.Contains(v, "SAE") && strings.Contains(v, "WPA-PSK"))
			f.owe = f.owe || strings.Contains(v, "OWE")
			f.sae = f.sae || strings.Contains(v, "SAE")
		case "wpa":
			f.wpa = strings.Contains(v, "2")
		case "ieee80211w":
			f.pmf = true
		case "hw_mode":
			f.hwMode = e.Value()
		case "channel":
			n, err := atoi(e.Name, e.Value())
			if err != nil {
				return err
			}
			f.channel, f.hasChannel = n, true
		case "he_oper_chwidth":
			n, err := atoi(e.Name, e.Value())
			if err != nil {
				return err
			}
			f.width, f.heWidth = n, true
		case "vht_oper_chwidth":
			n, err := atoi(e.Name, e.Value())
			if err != nil {
				return err
			}
			f.width, f.vhtWidth = n, true
		case "ieee80211ac":
			f.ac = strings.Contains(v, "1")
		case "ieee80211ax":
			f.ax = strings.Contains(v, "1")
		case "he_mu_edca":
			f.muEDCA = true
		case "sae_groups":
			f.saeGroups = true
		case "bss_identifier":
			f.mbss = true
		case "wps_enable":
			f.wps = true
		}
	}
	return nil
}

func (st *apState) entry(e capset.Capability) error {
	switch e.Name {
	case "bss_identifier", "wsc_config_only":
		return nil
	case "wps_enable":
		return st.wpsEntry(e.Value())
	case "owe_transition_bss_identifier":
		return st.oweTransition(e.Value())
	case "transition_disable":
		n, err := atoi(e.Name, e.Value())
		if err != nil {
			return err
		}
		st.out.Line("transition_disable", fmt.Sprintf("%#x", n))
		return nil
	case "auth_algorithm":
		st.out.Line("auth_algs", e.Value())
		return nil
	case "he_mu_edca":
		st.out.Line("he_mu_edca_qos_info_param_count", e.Value())
		return nil
	}
	for _, v := range e.Values {
		st.out.Line(e.Name, v)
	}
	return nil
}

func (st *apState) wpsEntry(mode string) error {
	if mode != "1" && mode != "2" {
		return fmt.Errorf("%w: wps_enable=%q", ErrUnknownWPSMode, mode)
	}
	settings, err := st.c.wps.Settings(WPSRoleAP)
	if err != nil {
		st.c.log.Error().Err(err).Msg("APUT: failed to get wps settings")
		return nil
	}
	if mode == "2" {
		st.c.log.Info().Msg("APUT configure WPS: OOB")
		for _, s := range settings {
			st.out.Line(s.Key, s.Value)
		}
		return nil
	}
	for _, s := range settings {
		switch {
		case s.OOBOnly():
			if s.Key == "wps_state" {
				st.out.Line("wps_state", "2")
			}
		case s.Common():
			st.out.Line(s.Key, s.Value)
		}
	}
	return nil
}

func (st *apState) oweTransition(raw string) error {
	n, err := atoi("owe_transition_bss_identifier", raw)
	if err != nil {
		return err
	}
	id := iface.Decompose(n)
	name, _ := st.c.alloc.Resolve(id.Band, id.Key())
	if name == "" {
		st.c.log.Error().Int("bss_identifier", n).Msg("cannot find owe transition ifname")
		return nil
	}
	st.out.Line("owe_transition_ifname", name)
	if st.flags.owe {
		st.out.Line("ignore_broadcast_ssid", "1")
	}
	return nil
}

func apPMF(st *apState) error {
	f := st.flags
	if f.pmf {
		return nil
	}
	switch {
	case f.transition:
		st.out.Line("ieee80211w", "1")
	case f.sae, f.owe:
		st.out.Line("ieee80211w", "2")
	case f.wpa:
		st.out.Line("ieee80211w", "1")
	}
	return nil
}

func apSAE(st *apState) error {
	if !st.flags.sae {
		return nil
	}
	st.out.Line("sae_require_mfp", "1")
	if !st.flags.saeGroups {
		st.out.Line("sae_groups", DefaultSAEGroups)
	}
	return nil
}

// apWidth emits the HT40 pairing and, for 80/160 MHz, the center segment.
// Without an explicit width only HT40+ channels are widened; an explicit
// width is never downgraded.
func apWidth(st *apState) error {
	f := st.flags
	if f.hwMode != "a" {
		return nil
	}
	plus := f.hasChannel && IsHT40Plus(f.channel)
	minus := f.hasChannel && IsHT40Minus(f.channel)
	switch {
	case plus:
		st.out.Line("ht_capab", "[HT40+]")
	case minus:
		st.out.Line("ht_capab", "[HT40-]")
	}

	width := f.width
	explicit := f.heWidth || f.vhtWidth
	if !explicit && !plus {
		width = Width20or40
	}
	if width <= Width20or40 || !(f.ac || f.ax) {
		return nil
	}
	center, ok := CenterIndex(f.channel, width)
	if !f.hasChannel || !ok {
		st.c.log.Warn().Int("channel", f.channel).Int("width", width).Msg("no center frequency index for channel")
		return nil
	}
	if f.ac {
		if !f.vhtWidth {
			st.out.Line("vht_oper_chwidth", strconv.Itoa(width))
		}
		st.out.Line("vht_oper_centr_freq_seg0_idx", strconv.Itoa(center))
	}
	if f.ax {
		if !f.heWidth {
			st.out.Line("he_oper_chwidth", strconv.Itoa(width))
		}
		st.out.Line("he_oper_centr_freq_seg0_idx", strconv.Itoa(center))
	}
	return nil
}

var muEDCALines = [][2]string{
	{"he_mu_edca_qos_info_queue_request", "1"},
	{"he_mu_edca_ac_be_aifsn", "0"},
	{"he_mu_edca_ac_be_ecwmin", "15"},
	{"he_mu_edca_ac_be_ecwmax", "15"},
	{"he_mu_edca_ac_be_timer", "255"},
	{"he_mu_edca_ac_bk_aifsn", "0"},
	{"he_mu_edca_ac_bk_aci", "1"},
	{"he_mu_edca_ac_bk_ecwmin", "15"},
	{"he_mu_edca_ac_bk_ecwmax", "15"},
	{"he_mu_edca_ac_bk_timer", "255"},
	{"he_mu_edca_ac_vi_ecwmin", "15"},
	{"he_mu_edca_ac_vi_ecwmax", "15"},
	{"he_mu_edca_ac_vi_aifsn", "0"},
	{"he_mu_edca_ac_vi_aci", "2"},
	{"he_mu_edca_ac_vi_timer", "255"},
	{"he_mu_edca_ac_vo_aifsn", "0"},
	{"he_mu_edca_ac_vo_aci", "3"},
	{"he_mu_edca_ac_vo_ecwmin", "15"},
	{"he_mu_edca_ac_vo_ecwmax", "15"},
	{"he_mu_edca_ac_vo_timer", "255"},
}

func apMUEDCA(st *apState) error {
	if !st.flags.muEDCA {
		return nil
	}
	for _, kv := range muEDCALines {
		st.out.Line(kv[0], kv[1])
	}
	return nil
}

func apWPSBands(st *apState) error {
	f := st.flags
	if !f.wps {
		return nil
	}
	switch {
	case f.mbss:
		st.out.Line("wps_rf_bands", "ag")
	case f.hwMode == "a":
		st.out.Line("wps_rf_bands", "a")
	case f.hwMode == "g":
		st.out.Line("wps_rf_bands", "g")
	}
	return nil
}

func atoi(name, raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("%w: %s=%q", ErrInvalidValue, name, raw)
	}
	return n, nil
}
