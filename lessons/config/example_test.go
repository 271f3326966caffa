package config_test

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/golessons/lessons/config"
)

// ExampleParseFlags parses a flag slice with one override; the rest
// keep their declared defaults.
func ExampleParseFlags() {
	f, err := config.ParseFlags([]string{"-addr", ":9999"})
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	fmt.Println(f.Addr, f.Verbose, f.Timeout)
	// Output:
	// :9999 false 5s
}

// ExampleParseDeployment evaluates an HCL expression against an
// injected variable.
func ExampleParseDeployment() {
	src := `service "api" {
  port = base + 1
}`
	dep, err := config.ParseDeployment(src, map[string]cty.Value{
		"base": cty.NumberIntVal(9000),
	})
	if err != nil {
		fmt.Println("parse:", err)
		return
	}
	fmt.Printf("%s -> %d\n", dep.Services[0].Name, dep.Services[0].Port)
	// Output:
	// api -> 9001
}
