// Package thrift implements the Thrift compact binary protocol and a
// reflection-driven binding layer on top of it.
//
// The package is split into two halves. The low-level half (Reader,
// Writer, Protocol) produces and consumes exact compact-protocol byte
// sequences and enforces the legal ordering of calls with an internal
// state machine. The binding half (Marshal, Unmarshal) drives that
// vocabulary from `thrift:"id,..."` struct tags on Go types, the same way
// the generated code from a Thrift IDL compiler would.
//
// Only the compact protocol is implemented; map encoding and the binary
// and JSON protocols are not.
package thrift
