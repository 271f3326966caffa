// Package streams is lesson 21: io.Reader and io.Writer composition.
//
// What
//
//   - The two one-method interfaces the whole I/O world plugs into.
//   - Sources and sinks: strings.Reader, bytes.Buffer, io.Discard.
//   - Decorators: io.LimitReader, io.TeeReader, io.MultiWriter, and a
//     hand-written transforming Reader.
//   - io.Pipe for joining writer-shaped producers to reader-shaped
//     consumers without buffering everything.
//   - bufio.Scanner split functions (words, not just lines).
//
// Why
//
//	Files, sockets, HTTP bodies, gzip, JSON decoders: all the same two
//	interfaces. Learn to compose small wrappers and most "streaming"
//	problems stop needing code at all.
package streams
