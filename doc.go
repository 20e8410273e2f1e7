// Package x11wire implements the wire encoding of the X11 core protocol:
// the connection-setup handshake, the structured records nested inside it,
// the per-opcode request and reply shapes, and the framing rules that make
// every record land on a 4-byte boundary.
//
// The package is a pure codec. It knows nothing about sockets, windowing
// state, authentication secrets, or event generation — callers hand it an
// io.Reader/io.Writer pair and a byte order, and get typed values back.
package x11wire
