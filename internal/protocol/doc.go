// Package protocol owns the control-API wire contract.
//
// Ownership boundary:
// - 7-byte message header (version, type, correlation id, reserved)
// - ordered parameter multimap over tlv fields
// - role-dependent tag validation on decode
// - reply message construction (ACK and RESPONSE)
package protocol
