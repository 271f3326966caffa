package reflection

import (
	"context"
	"errors"
	"fmt"
	"io"
	"reflect"

	"github.com/katalvlaran/golessons/curriculum"
)

var (
	// ErrNotStructPointer means the target was not *struct.
	ErrNotStructPointer = errors.New("reflection: target must be a pointer to struct")
	// ErrUnknownField means no field with that name exists.
	ErrUnknownField = errors.New("reflection: unknown field")
	// ErrUnexported means the field exists but cannot be set from outside.
	ErrUnexported = errors.New("reflection: field is unexported")
	// ErrUnassignable means the value's type does not fit the field.
	ErrUnassignable = errors.New("reflection: value not assignable")
	// ErrUnknownMethod means no method with that name exists.
	ErrUnknownMethod = errors.New("reflection: unknown method")
)

// Person is this lesson's guinea pig: a scoreboard entry. The label tags
// are a private convention read back via reflection, the way json reads
// its own tags. The unexported field is there to be unreachable.
type Person struct {
	Nickname string `label:"nick"`
	Score    int    `label:"points"`
	secret   string
}

// Cheer exists to be found by name at runtime.
func (p Person) Cheer() string {
	return fmt.Sprintf("%s scores %d!", p.Nickname, p.Score)
}

// FieldLabels collects the `label` tag of every tagged field.
func FieldLabels(v any) (map[string]string, error) {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("reflection: want a struct, got %v", t)
	}
	labels := make(map[string]string)
	for i := 0; i < t.NumField(); i++ {
		if tag, ok := t.Field(i).Tag.Lookup("label"); ok {
			labels[t.Field(i).Name] = tag
		}
	}
	return labels, nil
}

// SetField assigns value to the named field of the struct target points
// at. Every failure mode gets its own sentinel; reflection errors found
// at runtime deserve at least that much structure.
func SetField(target any, name string, value any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return ErrNotStructPointer
	}
	f := rv.Elem().FieldByName(name)
	if !f.IsValid() {
		return fmt.Errorf("%w: %s", ErrUnknownField, name)
	}
	if !f.CanSet() {
		return fmt.Errorf("%w: %s", ErrUnexported, name)
	}
	v := reflect.ValueOf(value)
	if !v.IsValid() || !v.Type().AssignableTo(f.Type()) {
		return fmt.Errorf("%w: field %s is %s", ErrUnassignable, name, f.Type())
	}
	f.Set(v)
	return nil
}

// CallByName invokes the named method on v with args, returning the
// results as a slice of any.
func CallByName(v any, method string, args ...any) ([]any, error) {
	m := reflect.ValueOf(v).MethodByName(method)
	if !m.IsValid() {
		return nil, fmt.Errorf("%w: %s on %T", ErrUnknownMethod, method, v)
	}
	if got, want := len(args), m.Type().NumIn(); got != want {
		return nil, fmt.Errorf("reflection: %s takes %d args, got %d", method, want, got)
	}
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		in[i] = reflect.ValueOf(a)
	}
	results := m.Call(in)
	out := make([]any, len(results))
	for i, r := range results {
		out[i] = r.Interface()
	}
	return out, nil
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   24,
		Slug:     "reflection",
		Title:    "Reflection",
		Part:     curriculum.PartStdlib,
		Synopsis: "Type vs Value vs Kind, tags, settability, dynamic calls",
		Topics:   []string{"reflect", "struct tags", "CanSet", "MethodByName", "DeepEqual"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Reflection")

	p := Person{Nickname: "gopher", Score: 97, secret: "hidden"}

	nb.Step("Law 1: from interface value to reflection object")
	t := reflect.TypeOf(p)
	v := reflect.ValueOf(p)
	nb.Sayf("TypeOf  -> %v (Kind %v)", t, t.Kind())
	nb.Sayf("ValueOf(p).Field(1) -> %v", v.Field(1))
	nb.Say("Kind is the structural category (struct, slice, int); Type is")
	nb.Say("the specific named type. Switch on Kind, compare on Type.")

	nb.Step("Walking fields and tags")
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		nb.Sayf("field %-8s type %-6s exported=%-5v tag %q",
			f.Name, f.Type, f.IsExported(), f.Tag.Get("label"))
	}
	labels, err := FieldLabels(p)
	if err != nil {
		return err
	}
	nb.Sayf("FieldLabels -> Nickname=%q Score=%q", labels["Nickname"], labels["Score"])
	nb.Say("This is precisely how encoding/json discovers its field names.")

	nb.Step("Law 3: only addressable values can be set")
	err = SetField(p, "Score", 100) // value copy, not a pointer
	nb.Sayf("SetField(p, ...)        -> %v", errors.Is(err, ErrNotStructPointer))
	if err := SetField(&p, "Score", 100); err != nil {
		return err
	}
	nb.Sayf("SetField(&p, Score,100) -> Score=%d", p.Score)
	err = SetField(&p, "secret", "x")
	nb.Sayf("SetField(&p, secret)    -> unexported: %v", errors.Is(err, ErrUnexported))
	err = SetField(&p, "Score", "ninety")
	nb.Sayf("SetField(&p, Score,str) -> unassignable: %v", errors.Is(err, ErrUnassignable))

	nb.Step("Dynamic method calls")
	out, err := CallByName(p, "Cheer")
	if err != nil {
		return err
	}
	nb.Sayf("CallByName(p, \"Cheer\") -> %v", out[0])
	_, err = CallByName(p, "Dance")
	nb.Sayf("CallByName(p, \"Dance\") -> unknown: %v", errors.Is(err, ErrUnknownMethod))

	nb.Step("DeepEqual compares what == cannot")
	a := map[string][]int{"x": {1, 2}}
	b := map[string][]int{"x": {1, 2}}
	nb.Sayf("reflect.DeepEqual(a, b) -> %v (maps with slice values)", reflect.DeepEqual(a, b))
	nb.Say("Tests lean on it via require.Equal; production code usually")
	nb.Say("wants a hand-written comparison it can keep fast and precise.")

	nb.Step("The bill")
	nb.Say("Reflection defeats inlining, boxes values, and moves type")
	nb.Say("errors to runtime. Keep it inside libraries at the edges of")
	nb.Say("your program, behind APIs that return ordinary typed values.")

	nb.Takeaways(
		"Kind for structure, Type for identity",
		"setting needs a pointer walk: ValueOf(&x).Elem()",
		"tags are just strings until reflection gives them meaning",
		"prefer generated or generic code when reflection tempts you",
	)
	return nb.Err()
}
