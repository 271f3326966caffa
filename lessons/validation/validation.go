package validation

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/golessons/curriculum"
)

// Person is a signup form with its contract written as validate tags.
type Person struct {
	Handle  string   `validate:"required,min=3,max=20,alphanum"`
	Email   string   `validate:"required,email"`
	Age     int      `validate:"gte=13,lte=130"`
	Role    string   `validate:"required,oneof=admin editor viewer"`
	Team    string   `validate:"required,slug"`
	Website string   `validate:"omitempty,url"`
	Tags    []string `validate:"max=5,dive,min=2"`
}

var slugRE = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// NewValidator builds a validator with this package's custom rules
// registered: the "slug" field rule and the Person struct rule that
// admins must be adults.
func NewValidator() (*validator.Validate, error) {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRE.MatchString(fl.Field().String())
	}); err != nil {
		return nil, fmt.Errorf("validation: register slug: %w", err)
	}
	v.RegisterStructValidation(func(sl validator.StructLevel) {
		p := sl.Current().Interface().(Person)
		if p.Role == "admin" && p.Age < 18 {
			sl.ReportError(p.Age, "Age", "Age", "adultadmin", "")
		}
	}, Person{})
	return v, nil
}

var validate = mustValidator()

func mustValidator() *validator.Validate {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}
	return v
}

// Explain flattens a validator error into one message per failing rule,
// in field declaration order. It returns nil for nil errors.
func Explain(err error) []string {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.ActualTag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", e.Field()))
		case "url":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid URL", e.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s long", e.Field(), e.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must be at most %s long", e.Field(), e.Param()))
		case "gte":
			msgs = append(msgs, fmt.Sprintf("%s must be >= %s", e.Field(), e.Param()))
		case "lte":
			msgs = append(msgs, fmt.Sprintf("%s must be <= %s", e.Field(), e.Param()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param()))
		case "alphanum":
			msgs = append(msgs, fmt.Sprintf("%s must be letters and digits only", e.Field()))
		case "slug":
			msgs = append(msgs, fmt.Sprintf("%s must be a lowercase slug", e.Field()))
		case "adultadmin":
			msgs = append(msgs, "admins must be at least 18")
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed rule %q", e.Field(), e.ActualTag()))
		}
	}
	return msgs
}

// CheckPerson validates p and returns human-readable findings, nil when
// the value is clean.
func CheckPerson(p Person) []string {
	return Explain(validate.Struct(p))
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   32,
		Slug:     "validation",
		Title:    "Validation",
		Part:     curriculum.PartEngineering,
		Synopsis: "struct tags, custom rules, struct-level checks, readable errors",
		Topics:   []string{"validator/v10", "struct tags", "custom rules", "dive", "Var"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Validation")

	nb.Step("The contract lives on the type")
	nb.Say("Each field of Person carries its rules in a validate tag:")
	nb.Say("Handle  required,min=3,max=20,alphanum")
	nb.Say("Email   required,email")
	nb.Say("Role    required,oneof=admin editor viewer")
	nb.Say("Team    required,slug (a custom rule, registered below)")
	ok := Person{
		Handle: "gopher42", Email: "gopher@example.com", Age: 29,
		Role: "editor", Team: "runtime-crew", Tags: []string{"go", "tooling"},
	}
	nb.Show("findings for a clean value", CheckPerson(ok))

	nb.Step("A zero value fails loudly and precisely")
	for _, msg := range CheckPerson(Person{}) {
		nb.Sayf("- %s", msg)
	}
	nb.Say("One FieldError per failing field, in declaration order, each")
	nb.Say("knowing its tag and parameter. Explain turns that into prose.")

	nb.Step("Rules stop at the first failure per field")
	bad := Person{
		Handle: "x", Email: "not-an-email", Age: 12,
		Role: "boss", Team: "Growth Team",
	}
	for _, msg := range CheckPerson(bad) {
		nb.Sayf("- %s", msg)
	}
	nb.Say("Handle failed min=3, so alphanum was never evaluated for it.")

	nb.Step("Custom rules read like built-ins")
	nb.Say("RegisterValidation(\"slug\", ...) taught the validator a new")
	nb.Say("word; the Team tag uses it exactly like required or email.")
	spaced := ok
	spaced.Team = "Growth Team"
	nb.Show("Team \"Growth Team\"", CheckPerson(spaced))
	spaced.Team = "growth-team"
	nb.Show("Team \"growth-team\"", CheckPerson(spaced))

	nb.Step("Struct-level rules see the whole value")
	young := ok
	young.Role = "admin"
	young.Age = 17
	nb.Show("17-year-old admin", CheckPerson(young))
	nb.Say("Cross-field invariants (Role vs Age here) cannot hang off a")
	nb.Say("single tag; RegisterStructValidation runs after the field")
	nb.Say("rules and reports through the same error type.")

	nb.Step("dive applies rules to every element")
	tagged := ok
	tagged.Tags = []string{"go", "x"}
	for _, msg := range CheckPerson(tagged) {
		nb.Sayf("- %s", msg)
	}
	nb.Say("max=5 bounds the slice itself; everything after dive runs per")
	nb.Say("element, and the field name carries the index.")

	nb.Step("Var checks bare values")
	nb.Show("Var(\"ada@example.com\", \"email\")", Explain(validate.Var("ada@example.com", "email")))
	nb.Show("Var(\"nope\", \"email\") failed", validate.Var("nope", "email") != nil)
	nb.Say("Handy at the edges: query parameters, headers, CLI input.")

	nb.Takeaways(
		"validation rules belong next to the fields they guard",
		"ValidationErrors is a slice: translate it, do not just print it",
		"custom and struct-level rules keep every check in one pipeline",
		"validate at the boundary, then trust the struct everywhere else",
	)
	return nb.Err()
}
