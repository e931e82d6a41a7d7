package schema

// Tag is the 2-byte tag of a TLV parameter. The same numeric space is
// interpreted against the request set or the response set depending on the
// message role.
type Tag uint16

// Request tags.
const (
	TagSSID                       Tag = 0x0001
	TagChannel                    Tag = 0x0002
	TagWEPKey0                    Tag = 0x0003
	TagAuthAlgorithm              Tag = 0x0004
	TagWEPDefaultKey              Tag = 0x0005
	TagIEEE80211D                 Tag = 0x0006
	TagIEEE80211N                 Tag = 0x0007
	TagIEEE80211AC                Tag = 0x0008
	TagCountryCode                Tag = 0x0009
	TagWMMEnabled                 Tag = 0x000a
	TagWPA                        Tag = 0x000b
	TagWPAKeyMgmt                 Tag = 0x000c
	TagRSNPairwise                Tag = 0x000d
	TagWPAPassphrase              Tag = 0x000e
	TagWPAPairwise                Tag = 0x000f
	TagIEEE80211H                 Tag = 0x0011
	TagIEEE80211W                 Tag = 0x0012
	TagVHTOperChwidth             Tag = 0x0013
	TagIEEE8021X                  Tag = 0x0015
	TagEAPServer                  Tag = 0x0016
	TagAuthServerAddr             Tag = 0x0017
	TagAuthServerPort             Tag = 0x0018
	TagAuthServerSharedSecret     Tag = 0x0019
	TagInterfaceName              Tag = 0x001a
	TagNewInterfaceName           Tag = 0x001b
	TagFrequency                  Tag = 0x001c
	TagBSSIdentifier              Tag = 0x001d
	TagHWMode                     Tag = 0x001e
	TagVHTOperCentrFreq           Tag = 0x001f
	TagReset                      Tag = 0x0020
	TagAppType                    Tag = 0x0021
	TagAddress                    Tag = 0x0028
	TagSTASSID                    Tag = 0x0035
	TagKeyMgmt                    Tag = 0x0036
	TagSTAWEPKey0                 Tag = 0x0037
	TagWEPTxKeyIdx                Tag = 0x0038
	TagGroup                      Tag = 0x0039
	TagPSK                        Tag = 0x003a
	TagProto                      Tag = 0x003b
	TagSTAIEEE80211W              Tag = 0x003c
	TagPairwise                   Tag = 0x003d
	TagEAP                        Tag = 0x003e
	TagPhase2                     Tag = 0x003f
	TagIdentity                   Tag = 0x0040
	TagPassword                   Tag = 0x0041
	TagCACert                     Tag = 0x0042
	TagPhase1                     Tag = 0x0043
	TagClientCert                 Tag = 0x0044
	TagPrivateKey                 Tag = 0x0045
	TagStaticIP                   Tag = 0x0055
	TagDebugLevel                 Tag = 0x0057
	TagHostapdFileName            Tag = 0x0059
	TagRole                       Tag = 0x005c
	TagBand                       Tag = 0x005d
	TagBSSID                      Tag = 0x005e
	TagPACFile                    Tag = 0x006d
	TagSTASAEGroups               Tag = 0x006e
	TagSAEGroups                  Tag = 0x0071
	TagIEEE80211AX                Tag = 0x0072
	TagHEOperChwidth              Tag = 0x0073
	TagMBO                        Tag = 0x0075
	TagMBOCellDataConnPref        Tag = 0x0076
	TagBSSTransition              Tag = 0x0077
	TagInterworking               Tag = 0x0078
	TagRRMNeighborReport          Tag = 0x0079
	TagRRMBeaconReport            Tag = 0x007a
	TagCountry3                   Tag = 0x007b
	TagMBOCellCapa                Tag = 0x007c
	TagDomainMatch                Tag = 0x007d
	TagDomainSuffixMatch          Tag = 0x007e
	TagMBOAssocDisallow           Tag = 0x007f
	TagDisassocImminent           Tag = 0x0081
	TagBSSTermination             Tag = 0x0082
	TagDisassocTimer              Tag = 0x0083
	TagBSSTerminationTSF          Tag = 0x0084
	TagBSSTerminationDuration     Tag = 0x0085
	TagReassociationRetryDelay    Tag = 0x0086
	TagBTMQueryReasonCode         Tag = 0x0087
	TagCandidateList              Tag = 0x0088
	TagANQPInfoID                 Tag = 0x0089
	TagGASComebackDelay           Tag = 0x008a
	TagSAEPWE                     Tag = 0x008d
	TagOWEGroups                  Tag = 0x008e
	TagSTAOWEGroup                Tag = 0x008f
	TagHEMUEDCA                   Tag = 0x0090
	TagTransitionDisable          Tag = 0x0093
	TagServerCert                 Tag = 0x0099
	TagOWETransitionBSSIdentifier Tag = 0x00a2
	TagHE6GOnly                   Tag = 0x00a6
	TagGOIntent                   Tag = 0x00c6
	TagWSCMethod                  Tag = 0x00c7
	TagPINMethod                  Tag = 0x00c8
	TagPINCode                    Tag = 0x00c9
	TagP2PConnType                Tag = 0x00ca
	TagWPSEnable                  Tag = 0x00cc
	TagUpdateConfig               Tag = 0x00cd
	TagIgnoreBroadcastSSID        Tag = 0x00d1
	TagPersistent                 Tag = 0x00d2
	TagWSCConfigOnly              Tag = 0x00d3
	TagVersionNumber              Tag = 0xb000
	TagRequestID                  Tag = 0xb001
	TagSerialNumber               Tag = 0xb002
	TagNRA                        Tag = 0xb003
	TagCertID                     Tag = 0xb004
	TagRuleSetID                  Tag = 0xb005
	TagLocationGeoArea            Tag = 0xb006
	TagEllipseCenter              Tag = 0xb007
	TagEllipseMajorAxis           Tag = 0xb008
	TagEllipseMinorAxis           Tag = 0xb009
	TagEllipseOrientation         Tag = 0xb00a
	TagLinearpolyBoundary         Tag = 0xb00b
	TagRadialpolyCenter           Tag = 0xb00c
	TagRadialpolyBoundary         Tag = 0xb00d
	TagHeight                     Tag = 0xb00e
	TagHeightType                 Tag = 0xb00f
	TagVerticalUncert             Tag = 0xb010
	TagDeployment                 Tag = 0xb011
	TagFreqRange                  Tag = 0xb012
	TagGlobalOPCL                 Tag = 0xb013
	TagChannelCFI                 Tag = 0xb014
	TagMinDesiredPWR              Tag = 0xb015
	TagVendorEXT                  Tag = 0xb016
	TagAFCServerURL               Tag = 0xb017
	TagAFCTestSSID                Tag = 0xb018
	TagDeviceReset                Tag = 0xb019
	TagSendSpectrumReq            Tag = 0xb01a
	TagPowerCycle                 Tag = 0xb01b
	TagSecurityType               Tag = 0xb01c
	TagAFCWPAPassphrase           Tag = 0xb01d
	TagSendTestFrame              Tag = 0xb01e
	TagBandwidth                  Tag = 0xb01f
	TagAFCCACert                  Tag = 0xb020
)

// Response tags.
const (
	TagMessage            Tag = 0xa000
	TagStatus             Tag = 0xa001
	TagDUTWLANIPAdd       Tag = 0xa002
	TagDUTMACAdd          Tag = 0xa003
	TagAPIVersion         Tag = 0xa004
	TagLoopBackServerPort Tag = 0xa009
	TagWSCPINCode         Tag = 0xa00a
	TagP2PIntentValue     Tag = 0xa00b
	TagWSCSSID            Tag = 0xa00c
	TagWSCWPAKeyMgmt      Tag = 0xa00d
	TagWSCWPAPassphrase   Tag = 0xa00e
	TagOperFreq           Tag = 0xbc00
	TagOperChannel        Tag = 0xbc01
)

var requestTagNames = map[Tag]string{
	TagSSID:                       "SSID",
	TagChannel:                    "CHANNEL",
	TagWEPKey0:                    "WEP_KEY0",
	TagAuthAlgorithm:              "AUTH_ALGORITHM",
	TagWEPDefaultKey:              "WEP_DEFAULT_KEY",
	TagIEEE80211D:                 "IEEE80211_D",
	TagIEEE80211N:                 "IEEE80211_N",
	TagIEEE80211AC:                "IEEE80211_AC",
	TagCountryCode:                "COUNTRY_CODE",
	TagWMMEnabled:                 "WMM_ENABLED",
	TagWPA:                        "WPA",
	TagWPAKeyMgmt:                 "WPA_KEY_MGMT",
	TagRSNPairwise:                "RSN_PAIRWISE",
	TagWPAPassphrase:              "WPA_PASSPHRASE",
	TagWPAPairwise:                "WPA_PAIRWISE",
	TagIEEE80211H:                 "IEEE80211_H",
	TagIEEE80211W:                 "IEEE80211_W",
	TagVHTOperChwidth:             "VHT_OPER_CHWIDTH",
	TagIEEE8021X:                  "IEEE8021_X",
	TagEAPServer:                  "EAP_SERVER",
	TagAuthServerAddr:             "AUTH_SERVER_ADDR",
	TagAuthServerPort:             "AUTH_SERVER_PORT",
	TagAuthServerSharedSecret:     "AUTH_SERVER_SHARED_SECRET",
	TagInterfaceName:              "INTERFACE_NAME",
	TagNewInterfaceName:           "NEW_INTERFACE_NAME",
	TagFrequency:                  "FREQUENCY",
	TagBSSIdentifier:              "BSS_IDENTIFIER",
	TagHWMode:                     "HW_MODE",
	TagVHTOperCentrFreq:           "VHT_OPER_CENTR_FREQ",
	TagReset:                      "RESET",
	TagAppType:                    "APP_TYPE",
	TagAddress:                    "ADDRESS",
	TagSTASSID:                    "STA_SSID",
	TagKeyMgmt:                    "KEY_MGMT",
	TagSTAWEPKey0:                 "STA_WEP_KEY0",
	TagWEPTxKeyIdx:                "WEP_TX_KEYIDX",
	TagGroup:                      "GROUP",
	TagPSK:                        "PSK",
	TagProto:                      "PROTO",
	TagSTAIEEE80211W:              "STA_IEEE80211_W",
	TagPairwise:                   "PAIRWISE",
	TagEAP:                        "EAP",
	TagPhase2:                     "PHASE2",
	TagIdentity:                   "IDENTITY",
	TagPassword:                   "PASSWORD",
	TagCACert:                     "CA_CERT",
	TagPhase1:                     "PHASE1",
	TagClientCert:                 "CLIENT_CERT",
	TagPrivateKey:                 "PRIVATE_KEY",
	TagStaticIP:                   "STATIC_IP",
	TagDebugLevel:                 "DEBUG_LEVEL",
	TagHostapdFileName:            "HOSTAPD_FILE_NAME",
	TagRole:                       "ROLE",
	TagBand:                       "BAND",
	TagBSSID:                      "BSSID",
	TagPACFile:                    "PAC_FILE",
	TagSTASAEGroups:               "STA_SAE_GROUPS",
	TagSAEGroups:                  "SAE_GROUPS",
	TagIEEE80211AX:                "IEEE80211_AX",
	TagHEOperChwidth:              "HE_OPER_CHWIDTH",
	TagMBO:                        "MBO",
	TagMBOCellDataConnPref:        "MBO_CELL_DATA_CONN_PREF",
	TagBSSTransition:              "BSS_TRANSITION",
	TagInterworking:               "INTERWORKING",
	TagRRMNeighborReport:          "RRM_NEIGHBOR_REPORT",
	TagRRMBeaconReport:            "RRM_BEACON_REPORT",
	TagCountry3:                   "COUNTRY3",
	TagMBOCellCapa:                "MBO_CELL_CAPA",
	TagDomainMatch:                "DOMAIN_MATCH",
	TagDomainSuffixMatch:          "DOMAIN_SUFFIX_MATCH",
	TagMBOAssocDisallow:           "MBO_ASSOC_DISALLOW",
	TagDisassocImminent:           "DISASSOC_IMMINENT",
	TagBSSTermination:             "BSS_TERMINATION",
	TagDisassocTimer:              "DISASSOC_TIMER",
	TagBSSTerminationTSF:          "BSS_TERMINATION_TSF",
	TagBSSTerminationDuration:     "BSS_TERMINATION_DURATION",
	TagReassociationRetryDelay:    "REASSOCIATION_RETRY_DELAY",
	TagBTMQueryReasonCode:         "BTMQUERY_REASON_CODE",
	TagCandidateList:              "CANDIDATE_LIST",
	TagANQPInfoID:                 "ANQP_INFO_ID",
	TagGASComebackDelay:           "GAS_COMEBACK_DELAY",
	TagSAEPWE:                     "SAE_PWE",
	TagOWEGroups:                  "OWE_GROUPS",
	TagSTAOWEGroup:                "STA_OWE_GROUP",
	TagHEMUEDCA:                   "HE_MU_EDCA",
	TagTransitionDisable:          "TRANSITION_DISABLE",
	TagServerCert:                 "SERVER_CERT",
	TagOWETransitionBSSIdentifier: "OWE_TRANSITION_BSS_IDENTIFIER",
	TagHE6GOnly:                   "HE_6G_ONLY",
	TagGOIntent:                   "GO_INTENT",
	TagWSCMethod:                  "WSC_METHOD",
	TagPINMethod:                  "PIN_METHOD",
	TagPINCode:                    "PIN_CODE",
	TagP2PConnType:                "P2P_CONN_TYPE",
	TagWPSEnable:                  "WPS_ENABLE",
	TagUpdateConfig:               "UPDATE_CONFIG",
	TagIgnoreBroadcastSSID:        "IGNORE_BROADCAST_SSID",
	TagPersistent:                 "PERSISTENT",
	TagWSCConfigOnly:              "WSC_CONFIG_ONLY",
	TagVersionNumber:              "VERSION_NUMBER",
	TagRequestID:                  "REQUEST_ID",
	TagSerialNumber:               "SERIAL_NUMBER",
	TagNRA:                        "NRA",
	TagCertID:                     "CERT_ID",
	TagRuleSetID:                  "RULE_SET_ID",
	TagLocationGeoArea:            "LOCATION_GEO_AREA",
	TagEllipseCenter:              "ELLIPSE_CENTER",
	TagEllipseMajorAxis:           "ELLIPSE_MAJOR_AXIS",
	TagEllipseMinorAxis:           "ELLIPSE_MINOR_AXIS",
	TagEllipseOrientation:         "ELLIPSE_ORIENTATION",
	TagLinearpolyBoundary:         "LINEARPOLY_BOUNDARY",
	TagRadialpolyCenter:           "RADIALPOLY_CENTER",
	TagRadialpolyBoundary:         "RADIALPOLY_BOUNDARY",
	TagHeight:                     "HEIGHT",
	TagHeightType:                 "HEIGHT_TYPE",
	TagVerticalUncert:             "VERTICAL_UNCERT",
	TagDeployment:                 "DEPLOYMENT",
	TagFreqRange:                  "FREQ_RANGE",
	TagGlobalOPCL:                 "GLOBAL_OPCL",
	TagChannelCFI:                 "CHANNEL_CFI",
	TagMinDesiredPWR:              "MIN_DESIRED_PWR",
	TagVendorEXT:                  "VENDOR_EXT",
	TagAFCServerURL:               "AFC_SERVER_URL",
	TagAFCTestSSID:                "AFC_TEST_SSID",
	TagDeviceReset:                "DEVICE_RESET",
	TagSendSpectrumReq:            "SEND_SPECTRUM_REQ",
	TagPowerCycle:                 "POWER_CYCLE",
	TagSecurityType:               "SECURITY_TYPE",
	TagAFCWPAPassphrase:           "AFC_WPA_PASSPHRASE",
	TagSendTestFrame:              "SEND_TEST_FRAME",
	TagBandwidth:                  "BANDWIDTH",
	TagAFCCACert:                  "AFC_CA_CERT",
}

var responseTagNames = map[Tag]string{
	TagMessage:            "MESSAGE",
	TagStatus:             "STATUS",
	TagDUTWLANIPAdd:       "DUT_WLAN_IP_ADD",
	TagDUTMACAdd:          "DUT_MAC_ADD",
	TagAPIVersion:         "API_VERSION",
	TagLoopBackServerPort: "LOOP_BACK_SERVER_PORT",
	TagWSCPINCode:         "WSC_PIN_CODE",
	TagP2PIntentValue:     "P2P_INTENT_VALUE",
	TagWSCSSID:            "WSC_SSID",
	TagWSCWPAKeyMgmt:      "WSC_WPA_KEY_MGMT",
	TagWSCWPAPassphrase:   "WSC_WPA_PASSPHRASE",
	TagOperFreq:           "OPER_FREQ",
	TagOperChannel:        "OPER_CHANNEL",
}

