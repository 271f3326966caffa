// Package sockets is lesson 25: TCP and UDP with package net.
//
// What
//
//   - net.Listen + Accept loop: the anatomy of a TCP server.
//   - net.Dial and the bidirectional conn as an io.ReadWriter.
//   - Read deadlines and os.ErrDeadlineExceeded.
//   - TCPConn knobs: NoDelay, keep-alive, linger.
//   - UDP datagrams via ListenPacket/ReadFrom/WriteTo.
//
// The echo server binds 127.0.0.1:0, so every run picks a free port and
// nothing escapes the machine. Close stops the listener and waits for
// in-flight connections, the miniature of a graceful server shutdown.
package sockets
