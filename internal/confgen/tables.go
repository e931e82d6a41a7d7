package confgen

import "github.com/danmuck/dutctl/internal/protocol/schema"

// APTable projects AP_CONFIGURE and AP_CONFIGURE_WSC parameters.
var APTable = map[schema.Tag]string{
	schema.TagSSID:                       "ssid",
	schema.TagChannel:                    "channel",
	schema.TagWEPKey0:                    "wep_key0",
	schema.TagHWMode:                     "hw_mode",
	schema.TagAuthAlgorithm:              "auth_algorithm",
	schema.TagWEPDefaultKey:              "wep_default_key",
	schema.TagIEEE80211D:                 "ieee80211d",
	schema.TagIEEE80211N:                 "ieee80211n",
	schema.TagIEEE80211AC:                "ieee80211ac",
	schema.TagCountryCode:                "country_code",
	schema.TagWMMEnabled:                 "wmm_enabled",
	schema.TagWPA:                        "wpa",
	schema.TagWPAKeyMgmt:                 "wpa_key_mgmt",
	schema.TagRSNPairwise:                "rsn_pairwise",
	schema.TagWPAPassphrase:              "wpa_passphrase",
	schema.TagWPAPairwise:                "wpa_pairwise",
	schema.TagIEEE80211W:                 "ieee80211w",
	schema.TagIEEE80211H:                 "ieee80211h",
	schema.TagVHTOperChwidth:             "vht_oper_chwidth",
	schema.TagIEEE8021X:                  "ieee8021x",
	schema.TagEAPServer:                  "eap_server",
	schema.TagAuthServerAddr:             "auth_server_addr",
	schema.TagAuthServerPort:             "auth_server_port",
	schema.TagAuthServerSharedSecret:     "auth_server_shared_secret",
	schema.TagMBO:                        "mbo",
	schema.TagMBOCellDataConnPref:        "mbo_cell_data_conn_pref",
	schema.TagBSSTransition:              "bss_transition",
	schema.TagInterworking:               "interworking",
	schema.TagRRMNeighborReport:          "rrm_neighbor_report",
	schema.TagRRMBeaconReport:            "rrm_beacon_report",
	schema.TagCountry3:                   "country3",
	schema.TagMBOCellCapa:                "mbo_cell_capa",
	schema.TagHEOperChwidth:              "he_oper_chwidth",
	schema.TagSAEGroups:                  "sae_groups",
	schema.TagIEEE80211AX:                "ieee80211ax",
	schema.TagSAEPWE:                     "sae_pwe",
	schema.TagTransitionDisable:          "transition_disable",
	schema.TagOWEGroups:                  "owe_groups",
	schema.TagHEMUEDCA:                   "he_mu_edca",
	schema.TagOWETransitionBSSIdentifier: "owe_transition_bss_identifier",
	schema.TagIgnoreBroadcastSSID:        "ignore_broadcast_ssid",
	schema.TagBSSIdentifier:              "bss_identifier",
	schema.TagHE6GOnly:                   "he_6g_only",
	schema.TagWSCConfigOnly:              "wsc_config_only",
	schema.TagWPSEnable:                  "wps_enable",
}

// STATable projects STA_CONFIGURE parameters.
var STATable = map[schema.Tag]string{
	schema.TagSTASAEGroups:      "sta_sae_groups",
	schema.TagMBOCellCapa:       "mbo_cell_capa",
	schema.TagSAEPWE:            "sae_pwe",
	schema.TagSTASSID:           "sta_ssid",
	schema.TagKeyMgmt:           "key_mgmt",
	schema.TagSTAWEPKey0:        "sta_wep_key0",
	schema.TagWEPTxKeyIdx:       "wep_tx_keyidx",
	schema.TagGroup:             "group",
	schema.TagPSK:               "psk",
	schema.TagProto:             "proto",
	schema.TagSTAIEEE80211W:     "sta_ieee80211w",
	schema.TagPairwise:          "pairwise",
	schema.TagEAP:               "eap",
	schema.TagPhase2:            "phase2",
	schema.TagPhase1:            "phase1",
	schema.TagIdentity:          "identity",
	schema.TagPassword:          "password",
	schema.TagCACert:            "ca_cert",
	schema.TagServerCert:        "server_cert",
	schema.TagPrivateKey:        "private_key",
	schema.TagClientCert:        "client_cert",
	schema.TagDomainMatch:       "domain_match",
	schema.TagDomainSuffixMatch: "domain_suffix_match",
	schema.TagPACFile:           "pac_file",
	schema.TagSTAOWEGroup:       "sta_owe_group",
}

// STAWSCTable projects STA_ENABLE_WSC parameters.
var STAWSCTable = map[schema.Tag]string{
	schema.TagUpdateConfig: "update_config",
	schema.TagWPSEnable:    "wps_enable",
}

var (
	apNames     = namesOf(APTable)
	staNames    = namesOf(STATable)
	staWSCNames = namesOf(STAWSCTable)
)

func namesOf(table map[schema.Tag]string) map[string]struct{} {
	out := make(map[string]struct{}, len(table))
	for _, name := range table {
		out[name] = struct{}{}
	}
	return out
}
