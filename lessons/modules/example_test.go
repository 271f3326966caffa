package modules_test

import (
	"fmt"

	"github.com/katalvlaran/golessons/lessons/modules"
)

// ExampleDescribe prints the module path baked into the test binary.
func ExampleDescribe() {
	info, ok := modules.Describe()
	if !ok {
		fmt.Println("no build info")
		return
	}
	fmt.Println(info.ModulePath)
	// Output:
	// github.com/katalvlaran/golessons
}
