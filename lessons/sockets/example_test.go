package sockets_test

import (
	"fmt"

	"github.com/katalvlaran/golessons/lessons/sockets"
)

// ExampleRoundtrip spins up the loopback echo server and bounces one
// line off it.
func ExampleRoundtrip() {
	srv, err := sockets.StartEcho()
	if err != nil {
		fmt.Println("start:", err)
		return
	}
	defer srv.Close()

	reply, err := sockets.Roundtrip(srv.Addr(), "hello over tcp")
	if err != nil {
		fmt.Println("roundtrip:", err)
		return
	}
	fmt.Println(reply)
	// Output:
	// hello over tcp
}
