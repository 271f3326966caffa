package sockets_test

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
	"github.com/katalvlaran/golessons/lessons/sockets"
)

func TestLessonMetadata(t *testing.T) {
	l := sockets.Lesson()
	require.NoError(t, l.Validate())
	assert.Equal(t, 25, l.Number)
	assert.Equal(t, "sockets", l.Slug)
	assert.Equal(t, curriculum.PartStdlib, l.Part)
}

func TestEchoRoundtrip(t *testing.T) {
	srv, err := sockets.StartEcho()
	require.NoError(t, err)
	defer srv.Close()

	for _, msg := range []string{"one", "two", "a longer message with spaces"} {
		got, err := sockets.Roundtrip(srv.Addr(), msg)
		require.NoError(t, err)
		assert.Equal(t, msg, got)
	}
}

func TestEchoConcurrentClients(t *testing.T) {
	srv, err := sockets.StartEcho()
	require.NoError(t, err)
	defer srv.Close()

	var wg sync.WaitGroup
	errs := make([]error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			msg := fmt.Sprintf("client-%d", i)
			got, err := sockets.Roundtrip(srv.Addr(), msg)
			if err != nil {
				errs[i] = err
				return
			}
			if got != msg {
				errs[i] = fmt.Errorf("echoed %q, want %q", got, msg)
			}
		}(i)
	}
	wg.Wait()
	for i, err := range errs {
		assert.NoErrorf(t, err, "client %d", i)
	}
}

func TestCloseStopsAccepting(t *testing.T) {
	srv, err := sockets.StartEcho()
	require.NoError(t, err)
	addr := srv.Addr()

	_, err = sockets.Roundtrip(addr, "before close")
	require.NoError(t, err)

	require.NoError(t, srv.Close())

	_, err = sockets.Roundtrip(addr, "after close")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "sockets: dial")
}

func TestReadDeadlineExpires(t *testing.T) {
	srv, err := sockets.StartEcho()
	require.NoError(t, err)
	defer srv.Close()

	conn, err := net.Dial("tcp", srv.Addr())
	require.NoError(t, err)
	defer conn.Close()

	// Nothing was written, so the echo server has nothing to send back.
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(10*time.Millisecond)))
	buf := make([]byte, 1)
	_, err = conn.Read(buf)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrDeadlineExceeded)

	var netErr net.Error
	require.True(t, errors.As(err, &netErr))
	assert.True(t, netErr.Timeout())
}

func TestRunWritesDemonstration(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, sockets.Run(context.Background(), &sb))

	out := sb.String()
	assert.Contains(t, out, "TCP and UDP sockets")
	assert.Contains(t, out, `Roundtrip("ping") -> "ping"`)
	assert.Contains(t, out, `sent "first"  got back "first"`)
	assert.Contains(t, out, "is os.ErrDeadlineExceeded  => true")
	assert.Contains(t, out, `server ReadFrom -> "datagram one" (12 bytes)`)
	assert.Contains(t, out, `client reply    -> "ack"`)
	assert.Contains(t, out, "server closed cleanly      => true")
	assert.Contains(t, out, "Key takeaways:")

	// Ports are kernel-assigned; the transcript must not leak them.
	assert.NotContains(t, out, "127.0.0.1:")
}
