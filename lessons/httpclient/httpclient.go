package httpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"strings"
	"time"

	"resty.dev/v3"

	"github.com/katalvlaran/golessons/curriculum"
)

// EnvTarget names the environment variable that redirects the lesson at
// a live httpbin-compatible base URL.
const EnvTarget = "GOLESSONS_HTTPBIN"

// ErrUnexpectedStatus reports a response outside the 2xx range.
var ErrUnexpectedStatus = errors.New("httpclient: unexpected status")

// GetResponse mirrors the httpbin /get answer: query parameters echoed
// back under "args".
type GetResponse struct {
	Args map[string]string `json:"args"`
}

// PostResponse mirrors the httpbin /post answer: a JSON request body
// echoed back under "json".
type PostResponse struct {
	JSON map[string]any `json:"json"`
}

// Target returns fallback, or the EnvTarget override when it is set.
func Target(fallback string) string {
	if live := os.Getenv(EnvTarget); live != "" {
		return live
	}
	return fallback
}

// StubServer starts an in-process lookalike of the httpbin endpoints the
// lesson uses: /get, /post, /status/{code} and /delay/{seconds}. The
// caller owns the returned server and must Close it.
func StubServer() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/get", func(w http.ResponseWriter, r *http.Request) {
		args := map[string]string{}
		for k, vs := range r.URL.Query() {
			if len(vs) > 0 {
				args[k] = vs[0]
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(GetResponse{Args: args})
	})
	mux.HandleFunc("/post", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(PostResponse{JSON: body})
	})
	mux.HandleFunc("/status/", func(w http.ResponseWriter, r *http.Request) {
		code, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/status/"))
		if err != nil {
			code = http.StatusBadRequest
		}
		w.WriteHeader(code)
	})
	mux.HandleFunc("/delay/", func(w http.ResponseWriter, r *http.Request) {
		secs, err := strconv.Atoi(strings.TrimPrefix(r.URL.Path, "/delay/"))
		if err != nil {
			secs = 1
		}
		select {
		case <-time.After(time.Duration(secs) * time.Second):
		case <-r.Context().Done():
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	return httptest.NewServer(mux)
}

// Fetch performs a GET with the supplied client and returns the body.
// Any status outside 2xx becomes ErrUnexpectedStatus; the body is always
// drained and closed so the connection can be reused.
func Fetch(ctx context.Context, c *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("httpclient: build request: %w", err)
	}
	resp, err := c.Do(req)
	if err != nil {
		return nil, fmt.Errorf("httpclient: GET: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("httpclient: read body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, resp.StatusCode)
	}
	return body, nil
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   26,
		Slug:     "httpclient",
		Title:    "HTTP clients",
		Part:     curriculum.PartStdlib,
		Synopsis: "net/http requests, status handling, resty fluency, timeouts",
		Topics:   []string{"net/http", "httptest", "resty", "JSON APIs", "timeouts"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(ctx context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("HTTP clients")

	srv := StubServer()
	defer srv.Close()
	base := Target(srv.URL)

	nb.Step("Every call is client + request + response")
	nb.Say("http.Client carries policy (timeouts, redirects, transport);")
	nb.Say("the request says what you want; the response must always have")
	nb.Say("its body closed, or the connection leaks.")
	client := &http.Client{Timeout: 5 * time.Second}

	nb.Step("A plain GET with net/http")
	body, err := Fetch(ctx, client, base+"/get?lesson=httpclient")
	if err != nil {
		return err
	}
	var got GetResponse
	if err := json.Unmarshal(body, &got); err != nil {
		return err
	}
	nb.Sayf("args echoed back -> %v", got.Args)
	nb.Say("NewRequestWithContext ties the call to ctx, Do executes it,")
	nb.Say("and the JSON body decodes into an ordinary struct.")

	nb.Step("Non-2xx is data, not an exception")
	_, err = Fetch(ctx, client, base+"/status/404")
	nb.Show("errors.Is(ErrUnexpectedStatus)", errors.Is(err, ErrUnexpectedStatus))
	nb.Sayf("err -> %v", err)
	nb.Say("Do only fails on transport problems; a 404 is a successful")
	nb.Say("exchange. Turning bad statuses into sentinel errors keeps the")
	nb.Say("callers on the errors.Is path they already know.")

	nb.Step("The same calls through resty")
	rc := resty.New().
		SetBaseURL(base).
		SetTimeout(5 * time.Second).
		SetHeader("User-Agent", "golessons/1.0")
	defer rc.Close()
	var viaResty GetResponse
	resp, err := rc.R().
		SetQueryParam("tool", "resty").
		SetResult(&viaResty).
		Get("/get")
	if err != nil {
		return err
	}
	nb.Show("resp.StatusCode()", resp.StatusCode())
	nb.Show("resp.IsSuccess()", resp.IsSuccess())
	nb.Sayf("decoded by SetResult -> %v", viaResty.Args)
	nb.Say("The fluent builder folds query params, headers, marshalling")
	nb.Say("and unmarshalling into one chain.")

	nb.Step("POSTing JSON")
	var echoed PostResponse
	if _, err := rc.R().
		SetBody(map[string]string{"message": "hello json"}).
		SetResult(&echoed).
		Post("/post"); err != nil {
		return err
	}
	nb.Sayf("echoed message -> %q", echoed.JSON["message"])
	nb.Say("A struct or map body is marshalled automatically and the")
	nb.Say("Content-Type header set to application/json.")

	nb.Step("Timeouts end hung calls")
	short, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = Fetch(short, client, base+"/delay/2")
	nb.Show("deadline exceeded", errors.Is(err, context.DeadlineExceeded))
	nb.Say("The server stalls for two seconds, the context allows twenty")
	nb.Say("milliseconds: the client abandons the call instead of hanging.")

	nb.Step("Same lesson, live endpoint")
	nb.Sayf("set %s to a base URL (e.g. https://httpbin.org) and", EnvTarget)
	nb.Say("every call above runs against it; the stub mimics the httpbin")
	nb.Say("contract precisely so the transcript does not change.")
	nb.Show("override active", os.Getenv(EnvTarget) != "")

	nb.Takeaways(
		"always close response bodies; always set some timeout",
		"statuses are data: convert the bad ones to errors yourself",
		"resty trades a little magic for much less per-call boilerplate",
		"httptest stubs make HTTP lessons (and tests) fast and offline",
	)
	return nb.Err()
}
