// Package iface maps BSS identifiers onto the wireless interfaces the agent
// was started with.
//
// Ownership boundary:
// - interface slot table and BSS id assignment
// - BSS identifier bit decomposition
// - parsing of the -interface option
package iface
