// Package dispatch maps decoded control messages to command handlers and
// turns every handled datagram into its ACK and RESPONSE replies.
//
// Ownership boundary:
// - command registry (message type to handler and parameter projection)
//
// - parameter projection from TLV params into capability sets
//
// - reply construction, NACK paths and handler panic containment
//
// Handlers live in internal/agent; the codec lives in internal/protocol.
package dispatch
