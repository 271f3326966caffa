package patterns

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/katalvlaran/golessons/curriculum"
)

// ErrNoTable reports a query built without a table name.
var ErrNoTable = errors.New("patterns: query needs a table")

// House is the example subject for functional options. The zero value
// is not meant to be used directly; NewHouse applies the defaults.
type House struct {
	Material string
	Floors   int
	Garage   bool
	Pool     bool
}

// HouseOption mutates a House during construction.
type HouseOption func(*House)

// WithMaterial overrides the default building material.
func WithMaterial(m string) HouseOption {
	return func(h *House) { h.Material = m }
}

// WithFloors sets the floor count. Values below one are ignored.
func WithFloors(n int) HouseOption {
	return func(h *House) {
		if n >= 1 {
			h.Floors = n
		}
	}
}

// WithGarage adds a garage.
func WithGarage() HouseOption {
	return func(h *House) { h.Garage = true }
}

// WithPool adds a pool.
func WithPool() HouseOption {
	return func(h *House) { h.Pool = true }
}

// NewHouse builds a brick single-floor house, then lets each option
// adjust it. Callers pass only what differs from the defaults.
func NewHouse(opts ...HouseOption) House {
	h := House{Material: "brick", Floors: 1}
	for _, opt := range opts {
		opt(&h)
	}
	return h
}

// QueryBuilder accumulates the pieces of a SELECT statement. Each
// method returns the receiver so calls chain; validation waits until
// Build.
type QueryBuilder struct {
	table   string
	columns []string
	wheres  []string
	orderBy string
	limit   int
}

// NewQuery starts a builder for table.
func NewQuery(table string) *QueryBuilder {
	return &QueryBuilder{table: table}
}

// Select names the columns to fetch. Without it, Build emits *.
func (b *QueryBuilder) Select(cols ...string) *QueryBuilder {
	b.columns = append(b.columns, cols...)
	return b
}

// Where adds a condition; multiple conditions are joined with AND.
func (b *QueryBuilder) Where(cond string) *QueryBuilder {
	b.wheres = append(b.wheres, cond)
	return b
}

// OrderBy sets the sort column.
func (b *QueryBuilder) OrderBy(col string) *QueryBuilder {
	b.orderBy = col
	return b
}

// Limit caps the result set. Zero or negative means no limit.
func (b *QueryBuilder) Limit(n int) *QueryBuilder {
	b.limit = n
	return b
}

// Build assembles the statement, or reports what is missing.
func (b *QueryBuilder) Build() (string, error) {
	if strings.TrimSpace(b.table) == "" {
		return "", ErrNoTable
	}
	cols := "*"
	if len(b.columns) > 0 {
		cols = strings.Join(b.columns, ", ")
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "SELECT %s FROM %s", cols, b.table)
	if len(b.wheres) > 0 {
		fmt.Fprintf(&sb, " WHERE %s", strings.Join(b.wheres, " AND "))
	}
	if b.orderBy != "" {
		fmt.Fprintf(&sb, " ORDER BY %s", b.orderBy)
	}
	if b.limit > 0 {
		fmt.Fprintf(&sb, " LIMIT %d", b.limit)
	}
	return sb.String(), nil
}

// Settings is the singleton subject.
type Settings struct {
	AppName  string
	MaxConns int
}

var (
	settingsOnce sync.Once
	settings     *Settings
)

// Defaults returns the process-wide Settings, built lazily on first
// call. Every caller gets the same pointer, even under concurrency.
func Defaults() *Settings {
	settingsOnce.Do(func() {
		settings = &Settings{AppName: "golessons", MaxConns: 16}
	})
	return settings
}

// Bus is a minimal observer: subscribers register per topic and are
// notified synchronously, in subscription order, on the publisher's
// goroutine.
type Bus struct {
	mu   sync.Mutex
	subs map[string][]func(payload string)
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[string][]func(string))}
}

// Subscribe registers fn for topic.
func (b *Bus) Subscribe(topic string, fn func(payload string)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs[topic] = append(b.subs[topic], fn)
}

// Publish delivers payload to every subscriber of topic and returns
// how many were notified. Handlers run outside the lock so they may
// subscribe or publish themselves.
func (b *Bus) Publish(topic, payload string) int {
	b.mu.Lock()
	handlers := make([]func(string), len(b.subs[topic]))
	copy(handlers, b.subs[topic])
	b.mu.Unlock()

	for _, fn := range handlers {
		fn(payload)
	}
	return len(handlers)
}

// Discount is a pricing strategy: it maps a price in cents to the
// discounted price. A plain function type is the whole pattern.
type Discount func(cents int) int

// NoDiscount charges full price.
func NoDiscount() Discount {
	return func(cents int) int { return cents }
}

// Percent takes p percent off.
func Percent(p int) Discount {
	return func(cents int) int { return cents - cents*p/100 }
}

// FlatOff subtracts a fixed amount.
func FlatOff(off int) Discount {
	return func(cents int) int { return cents - off }
}

// Price applies d to base, clamping at zero. A nil strategy means full
// price.
func Price(base int, d Discount) int {
	if d == nil {
		return base
	}
	if p := d(base); p > 0 {
		return p
	}
	return 0
}

// Handler processes a request string into a response string.
type Handler func(req string) string

// Middleware wraps a Handler with extra behavior. This is the
// decorator pattern as every Go HTTP stack ships it.
type Middleware func(Handler) Handler

// Chain wraps h so that the first middleware listed is the outermost:
// Chain(h, a, b) runs a, then b, then h.
func Chain(h Handler, mw ...Middleware) Handler {
	for i := len(mw) - 1; i >= 0; i-- {
		h = mw[i](h)
	}
	return h
}

// WithRoutePrefix rewrites the request path before the inner handler
// sees it.
func WithRoutePrefix(prefix string) Middleware {
	return func(next Handler) Handler {
		return func(req string) string {
			return next(prefix + req)
		}
	}
}

// WithAudit appends every request to log before passing it on.
func WithAudit(log *[]string) Middleware {
	return func(next Handler) Handler {
		return func(req string) string {
			*log = append(*log, req)
			return next(req)
		}
	}
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   36,
		Slug:     "patterns",
		Title:    "Design patterns, Go-shaped",
		Part:     curriculum.PartEngineering,
		Synopsis: "options, builder, singleton, observer, strategy, decorator",
		Topics:   []string{"functional options", "builder", "sync.Once", "observer", "strategy", "middleware"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(ctx context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Design patterns, Go-shaped")

	nb.Step("Functional options beat telescoping constructors")
	basic := NewHouse()
	villa := NewHouse(WithMaterial("stone"), WithFloors(2), WithGarage(), WithPool())
	nb.Sayf("NewHouse()            -> %+v", basic)
	nb.Sayf("NewHouse(stone, 2, garage, pool) -> %+v", villa)
	nb.Say("Each With* returns a closure over the target; the constructor")
	nb.Say("applies defaults first, then the options. Adding a tenth knob")
	nb.Say("changes no call site.")

	nb.Step("Builder: chain freely, validate once")
	query, err := NewQuery("students").
		Select("name", "grade").
		Where("grade >= 90").
		Where("active = 1").
		OrderBy("name").
		Limit(10).
		Build()
	if err != nil {
		return err
	}
	nb.Sayf("Build -> %s", query)
	_, err = NewQuery("  ").Build()
	nb.Show("empty table rejected", errors.Is(err, ErrNoTable))
	nb.Say("Builders earn their keep when construction has many optional")
	nb.Say("parts and an invariant to check at the end.")

	nb.Step("Singleton via sync.Once")
	a := Defaults()
	b := Defaults()
	nb.Show("same instance", a == b)
	nb.Sayf("Defaults() -> %+v", *a)
	nb.Say("Once.Do runs the init closure exactly once, even when many")
	nb.Say("goroutines race to be first. Reach for it sparingly: package")
	nb.Say("globals make testing harder, and often a plain var works.")

	nb.Step("Observer: a topic bus")
	bus := NewBus()
	var welcomes, audits []string
	bus.Subscribe("user.created", func(p string) { welcomes = append(welcomes, "welcome "+p) })
	bus.Subscribe("user.created", func(p string) { audits = append(audits, "audit "+p) })
	bus.Subscribe("user.deleted", func(p string) { audits = append(audits, "audit rm "+p) })
	nb.Show("notified on created", bus.Publish("user.created", "ada"))
	nb.Show("notified on deleted", bus.Publish("user.deleted", "bob"))
	nb.Show("notified on unknown", bus.Publish("invoice.paid", "x"))
	nb.Sayf("welcomes: %v", welcomes)
	nb.Sayf("audits:   %v", audits)

	nb.Step("Strategy is just a function value")
	const base = 2500
	for _, tc := range []struct {
		name string
		d    Discount
	}{
		{"NoDiscount()", NoDiscount()},
		{"Percent(20)", Percent(20)},
		{"FlatOff(600)", FlatOff(600)},
		{"FlatOff(9900)", FlatOff(9900)},
	} {
		nb.Show(tc.name, Price(base, tc.d))
	}
	nb.Say("No interface, no struct hierarchy: the algorithm travels as a")
	nb.Say("value. Define an interface only when strategies carry state.")

	nb.Step("Decorator = middleware")
	var auditLog []string
	handler := Chain(
		func(req string) string { return "handled:" + req },
		WithAudit(&auditLog),
		WithRoutePrefix("v1/"),
	)
	nb.Sayf("handler(\"ping\") -> %s", handler("ping"))
	nb.Sayf("audit log       -> %v", auditLog)
	nb.Say("The audit middleware is outermost, so it sees the request")
	nb.Say("before the prefix rewrite. Order the chain deliberately.")

	nb.Takeaways(
		"options scale to many defaults without N constructors",
		"builders postpone validation to a single Build call",
		"sync.Once gives race-free lazy init; use it rarely",
		"a function type is often the entire strategy pattern",
		"middleware is the decorator pattern with a Go accent",
	)
	return nb.Err()
}
