package serialize

import (
	"bytes"
	"context"
	"encoding/gob"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	gojson "github.com/goccy/go-json"

	"github.com/katalvlaran/golessons/curriculum"
)

// Person is this lesson's record: an account as it crosses the wire. The
// tags are the contract; the Go names are free to follow Go style.
type Person struct {
	FullName string    `json:"full_name"`
	Email    string    `json:"email,omitempty"`
	Admin    bool      `json:"-"`
	JoinedAt time.Time `json:"joined_at"`
}

// Uptime marshals a Duration as its human string ("1h30m0s") instead of
// raw nanoseconds. Implementing the two Marshaler interfaces is how a
// type takes control of its wire form.
type Uptime struct {
	time.Duration
}

func (u Uptime) MarshalJSON() ([]byte, error) {
	return json.Marshal(u.Duration.String())
}

func (u *Uptime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("serialize: uptime: %w", err)
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("serialize: uptime: %w", err)
	}
	u.Duration = d
	return nil
}

// EncodePretty renders v as two-space-indented JSON.
func EncodePretty(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serialize: encode: %w", err)
	}
	return string(data), nil
}

// DecodePersonStrict decodes one Person, rejecting unknown fields so
// schema drift fails loudly instead of silently dropping data.
func DecodePersonStrict(data []byte) (Person, error) {
	var p Person
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&p); err != nil {
		return Person{}, fmt.Errorf("serialize: decode person: %w", err)
	}
	return p, nil
}

// GobRoundTrip encodes v with gob and decodes it back, the in-memory
// version of writing to one process and reading in another.
func GobRoundTrip[T any](v T) (T, error) {
	var buf bytes.Buffer
	var out T
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return out, fmt.Errorf("serialize: gob encode: %w", err)
	}
	if err := gob.NewDecoder(&buf).Decode(&out); err != nil {
		return out, fmt.Errorf("serialize: gob decode: %w", err)
	}
	return out, nil
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   22,
		Slug:     "serialize",
		Title:    "JSON and gob",
		Part:     curriculum.PartStdlib,
		Synopsis: "struct tags, strict decoding, custom marshalers, goccy, gob",
		Topics:   []string{"json", "tags", "omitempty", "Marshaler", "goccy", "gob"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("JSON and gob")

	ada := Person{
		FullName: "Ada Lovelace",
		Email:    "ada@example.org",
		Admin:    true,
		JoinedAt: time.Date(2024, time.March, 15, 14, 30, 45, 0, time.UTC),
	}

	nb.Step("Tags are the wire contract")
	compact, err := json.Marshal(ada)
	if err != nil {
		return err
	}
	nb.Sayf("Marshal -> %s", compact)
	nb.Say("full_name came from the tag, Admin vanished behind \"-\", and")
	nb.Say("time.Time serialised itself as RFC 3339.")

	nb.Step("omitempty trims zero values")
	noEmail := ada
	noEmail.Email = ""
	trimmed, err := json.Marshal(noEmail)
	if err != nil {
		return err
	}
	nb.Sayf("without email -> %s", trimmed)

	nb.Step("Pretty printing")
	pretty, err := EncodePretty(Person{FullName: "Grace Hopper"})
	if err != nil {
		return err
	}
	for _, line := range strings.Split(pretty, "\n") {
		nb.Sayf("%s", line)
	}

	nb.Step("Strict decoding catches schema drift")
	good, err := DecodePersonStrict([]byte(`{"full_name":"Alan Turing","joined_at":"2024-01-01T00:00:00Z"}`))
	if err != nil {
		return err
	}
	nb.Sayf("strict decode ok -> %s, joined %s", good.FullName, good.JoinedAt.Format("2006-01-02"))
	_, err = DecodePersonStrict([]byte(`{"full_name":"Eve","nickname":"Mallory"}`))
	nb.Sayf("unknown field    -> error: %v", err)

	nb.Step("The map[string]any escape hatch")
	var loose map[string]any
	if err := json.Unmarshal([]byte(`{"port": 8080, "debug": true}`), &loose); err != nil {
		return err
	}
	nb.Sayf("port decoded as %T(%v)", loose["port"], loose["port"])
	nb.Say("Untyped JSON numbers always land as float64. Round-tripping")
	nb.Say("int64 ids through any silently loses precision past 2^53.")

	nb.Step("Custom marshalers")
	up := Uptime{90 * time.Minute}
	asJSON, err := json.Marshal(up)
	if err != nil {
		return err
	}
	nb.Sayf("Uptime{90m} -> %s", asJSON)
	var back Uptime
	if err := json.Unmarshal([]byte(`"2h45m"`), &back); err != nil {
		return err
	}
	nb.Sayf(`"2h45m" back -> %v`, back.Duration)

	nb.Step("goccy/go-json: same API, faster engine")
	fast, err := gojson.Marshal(ada)
	if err != nil {
		return err
	}
	nb.Sayf("goccy output identical to stdlib -> %v", bytes.Equal(compact, fast))
	nb.Say("The import swap is the whole migration, which is why services")
	nb.Say("on hot serialisation paths reach for it.")

	nb.Step("gob: binary, self-describing, Go-only")
	clone, err := GobRoundTrip(ada)
	if err != nil {
		return err
	}
	nb.Sayf("round trip preserved name -> %q, admin -> %v", clone.FullName, clone.Admin)
	var gobBuf bytes.Buffer
	if err := gob.NewEncoder(&gobBuf).Encode(ada); err != nil {
		return err
	}
	nb.Sayf("sizes: json=%d bytes, gob=%d bytes", len(compact), gobBuf.Len())
	nb.Say("gob carries type info in-stream and honours no json tags; note")
	nb.Say("it kept Admin. Use it for Go-to-Go plumbing, JSON for the world.")

	nb.Takeaways(
		"tags define the wire name; \"-\" hides, omitempty trims",
		"strict decoders turn schema drift into errors, not data loss",
		"custom marshalers give a type one canonical wire form",
		"goccy swaps in for speed; gob is for Go-only channels",
	)
	return nb.Err()
}
