package sockets

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/katalvlaran/golessons/curriculum"
)

// EchoServer is a line-agnostic TCP echo: every byte a client writes
// comes straight back. It binds a loopback port chosen by the kernel,
// so parallel runs never collide.
type EchoServer struct {
	ln net.Listener
	wg sync.WaitGroup
}

// StartEcho binds 127.0.0.1:0 and starts accepting in the background.
func StartEcho() (*EchoServer, error) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("sockets: listen: %w", err)
	}
	s := &EchoServer{ln: ln}
	s.wg.Add(1)
	go s.acceptLoop()
	return s, nil
}

// Addr is the dialable "host:port" of the listener.
func (s *EchoServer) Addr() string {
	return s.ln.Addr().String()
}

func (s *EchoServer) acceptLoop() {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			// Accept fails with net.ErrClosed once Close runs; that is
			// the shutdown signal, not a fault.
			return
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer conn.Close()
			_, _ = io.Copy(conn, conn)
		}()
	}
}

// Close stops the listener and waits until every in-flight connection
// handler has returned. Connections themselves are closed by their
// clients; Close only refuses new ones.
func (s *EchoServer) Close() error {
	err := s.ln.Close()
	s.wg.Wait()
	if err != nil {
		return fmt.Errorf("sockets: close listener: %w", err)
	}
	return nil
}

// Roundtrip dials addr, sends msg as one newline-terminated line and
// returns the echoed line without its terminator.
func Roundtrip(addr, msg string) (string, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("sockets: dial %s: %w", addr, err)
	}
	defer conn.Close()
	if _, err := fmt.Fprintf(conn, "%s\n", msg); err != nil {
		return "", fmt.Errorf("sockets: write: %w", err)
	}
	line, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("sockets: read echo: %w", err)
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   25,
		Slug:     "sockets",
		Title:    "TCP and UDP sockets",
		Part:     curriculum.PartStdlib,
		Synopsis: "net.Listen/Dial, echo servers, deadlines, TCP options, datagrams",
		Topics:   []string{"net.Listen", "net.Dial", "deadlines", "TCPConn", "UDP"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("TCP and UDP sockets")

	nb.Step("A TCP server is a loop around Accept")
	nb.Say("net.Listen claims a port, Accept blocks until a client dials,")
	nb.Say("and each accepted conn is an io.ReadWriteCloser served on its")
	nb.Say("own goroutine. This one echoes everything back.")
	srv, err := StartEcho()
	if err != nil {
		return err
	}
	defer srv.Close()
	nb.Say("listening on 127.0.0.1 with a kernel-assigned port")

	nb.Step("Dial and talk")
	reply, err := Roundtrip(srv.Addr(), "ping")
	if err != nil {
		return err
	}
	nb.Sayf("Roundtrip(\"ping\") -> %q", reply)
	nb.Say("Dial gives a net.Conn; Fprintf writes to it and bufio reads")
	nb.Say("the answer, exactly like any other reader/writer pair.")

	nb.Step("One connection, many exchanges")
	conn, err := net.Dial("tcp", srv.Addr())
	if err != nil {
		return err
	}
	defer conn.Close()
	rd := bufio.NewReader(conn)
	for _, msg := range []string{"first", "second", "third"} {
		if _, err := fmt.Fprintf(conn, "%s\n", msg); err != nil {
			return err
		}
		line, err := rd.ReadString('\n')
		if err != nil {
			return err
		}
		nb.Sayf("sent %-8q got back %q", msg, strings.TrimSuffix(line, "\n"))
	}

	nb.Step("Deadlines turn a stuck Read into an error")
	nb.Say("The server has nothing more to send, so a plain Read would")
	nb.Say("block forever. A read deadline bounds the wait.")
	if err := conn.SetReadDeadline(time.Now().Add(20 * time.Millisecond)); err != nil {
		return err
	}
	_, err = rd.ReadString('\n')
	nb.Show("is os.ErrDeadlineExceeded", errors.Is(err, os.ErrDeadlineExceeded))
	var netErr net.Error
	nb.Show("net.Error Timeout()", errors.As(err, &netErr) && netErr.Timeout())
	nb.Say("Timeout errors are temporary: clear the deadline and the conn")
	nb.Say("is usable again.")
	if err := conn.SetReadDeadline(time.Time{}); err != nil {
		return err
	}

	nb.Step("TCP-specific knobs live on *net.TCPConn")
	tcp, ok := conn.(*net.TCPConn)
	nb.Show("conn.(*net.TCPConn) ok", ok)
	if ok {
		nb.Show("SetNoDelay(true) err", tcp.SetNoDelay(true))
		nb.Show("SetKeepAlive(true) err", tcp.SetKeepAlive(true))
		nb.Show("SetKeepAlivePeriod(30s)", tcp.SetKeepAlivePeriod(30*time.Second))
	}
	nb.Say("NoDelay disables Nagle batching for latency-sensitive traffic;")
	nb.Say("keep-alive probes detect dead peers behind silent networks.")

	nb.Step("UDP: datagrams, not streams")
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	defer pc.Close()
	client, err := net.Dial("udp", pc.LocalAddr().String())
	if err != nil {
		return err
	}
	defer client.Close()
	if _, err := client.Write([]byte("datagram one")); err != nil {
		return err
	}
	buf := make([]byte, 64)
	n, from, err := pc.ReadFrom(buf)
	if err != nil {
		return err
	}
	nb.Sayf("server ReadFrom -> %q (%d bytes)", string(buf[:n]), n)
	if _, err := pc.WriteTo([]byte("ack"), from); err != nil {
		return err
	}
	n, err = client.Read(buf)
	if err != nil {
		return err
	}
	nb.Sayf("client reply    -> %q", string(buf[:n]))
	nb.Say("No Accept, no connection state: each packet arrives whole,")
	nb.Say("tagged with its sender, and may be lost or reordered en route.")

	nb.Step("Shut down in order")
	nb.Say("Clients close their conns, then the server closes the listener")
	nb.Say("and waits for handlers to drain. Accept reports net.ErrClosed,")
	nb.Say("which the loop treats as the stop signal.")
	if err := conn.Close(); err != nil {
		return err
	}
	if err := srv.Close(); err != nil {
		return err
	}
	nb.Show("server closed cleanly", true)

	nb.Takeaways(
		"a TCP server is Listen, a for/Accept loop, a goroutine per conn",
		"net.Conn is an io.ReadWriteCloser: all the io tooling applies",
		"deadlines are the only way to bound a blocking Read or Write",
		"UDP trades the stream abstraction for cheap, lossy datagrams",
	)
	return nb.Err()
}
