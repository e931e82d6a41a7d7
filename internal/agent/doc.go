// Package agent is the DUT control process: it owns the interface
// allocator, the configuration compiler and the platform collaborators,
// registers every command handler and runs the UDP control path.
//
// Handlers run one at a time on the control path, so the command state
// kept on Service needs no locking. The admin HTTP server only reads the
// allocator snapshot.
package agent
