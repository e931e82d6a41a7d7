// Package confgen compiles capability sets into hostapd and wpa_supplicant
// configuration text.
//
// Ownership boundary:
// - per-role tag to capability-name tables
// - line builders (key=value and network block)
// - ordered derivation rules (PMF, SAE groups, channel width, MU-EDCA, WPS)
// - channel tables and AP target resolution
//
// Files are not written here; callers persist Document.Text.
package confgen
