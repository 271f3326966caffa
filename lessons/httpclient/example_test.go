package httpclient_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/katalvlaran/golessons/lessons/httpclient"
)

// ExampleFetch GETs from the local stub and picks one echoed query
// parameter out of the decoded response.
func ExampleFetch() {
	srv := httpclient.StubServer()
	defer srv.Close()

	client := &http.Client{Timeout: 5 * time.Second}
	body, err := httpclient.Fetch(context.Background(), client, srv.URL+"/get?name=ada")
	if err != nil {
		fmt.Println("fetch:", err)
		return
	}

	var out httpclient.GetResponse
	if err := json.Unmarshal(body, &out); err != nil {
		fmt.Println("decode:", err)
		return
	}
	fmt.Println(out.Args["name"])
	// Output:
	// ada
}
