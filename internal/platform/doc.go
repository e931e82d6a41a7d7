// Package platform wraps the host the agent drives: hostapd and
// wpa_supplicant processes, their CLIs, IP and bridge plumbing, DHCP and
// configuration files.
//
// Ownership boundary:
// - command execution (Runner)
//
// - daemon lifecycle and control sockets (Daemons)
//
// - interface, address, bridge and DHCP management (Network)
//
// - file persistence (Files)
//
// Handlers only see the interfaces; Linux is the one implementation.
package platform
