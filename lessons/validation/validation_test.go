package validation_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
	"github.com/katalvlaran/golessons/lessons/validation"
)

func TestLessonMetadata(t *testing.T) {
	l := validation.Lesson()
	require.NoError(t, l.Validate())
	assert.Equal(t, 32, l.Number)
	assert.Equal(t, "validation", l.Slug)
	assert.Equal(t, curriculum.PartEngineering, l.Part)
}

func validPerson() validation.Person {
	return validation.Person{
		Handle: "gopher42", Email: "gopher@example.com", Age: 29,
		Role: "editor", Team: "runtime-crew", Tags: []string{"go", "tooling"},
	}
}

func TestCleanPersonHasNoFindings(t *testing.T) {
	assert.Nil(t, validation.CheckPerson(validPerson()))
}

func TestZeroPersonFindings(t *testing.T) {
	assert.Equal(t, []string{
		"Handle is required",
		"Email is required",
		"Age must be >= 13",
		"Role is required",
		"Team is required",
	}, validation.CheckPerson(validation.Person{}))
}

func TestFirstFailingRulePerField(t *testing.T) {
	bad := validation.Person{
		Handle: "x", Email: "not-an-email", Age: 12,
		Role: "boss", Team: "Growth Team",
	}
	assert.Equal(t, []string{
		"Handle must be at least 3 long",
		"Email must be a valid email address",
		"Age must be >= 13",
		"Role must be one of: admin editor viewer",
		"Team must be a lowercase slug",
	}, validation.CheckPerson(bad))
}

func TestSlugRule(t *testing.T) {
	v, err := validation.NewValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Var("growth-team", "slug"))
	assert.NoError(t, v.Var("a1", "slug"))
	assert.Error(t, v.Var("Growth Team", "slug"))
	assert.Error(t, v.Var("trailing-", "slug"))
}

func TestAdminsMustBeAdults(t *testing.T) {
	p := validPerson()
	p.Role = "admin"
	p.Age = 17
	assert.Equal(t, []string{"admins must be at least 18"}, validation.CheckPerson(p))

	p.Age = 18
	assert.Nil(t, validation.CheckPerson(p))
}

func TestDiveValidatesElements(t *testing.T) {
	p := validPerson()
	p.Tags = []string{"go", "x"}
	assert.Equal(t, []string{"Tags[1] must be at least 2 long"}, validation.CheckPerson(p))
}

func TestExplainPassthrough(t *testing.T) {
	assert.Nil(t, validation.Explain(nil))
	assert.Equal(t, []string{"boom"}, validation.Explain(errors.New("boom")))
}

func TestRunWritesDemonstration(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, validation.Run(context.Background(), &sb))

	out := sb.String()
	assert.Contains(t, out, "Validation")
	assert.Contains(t, out, "findings for a clean value => []")
	assert.Contains(t, out, "- Handle is required")
	assert.Contains(t, out, "- Role must be one of: admin editor viewer")
	assert.Contains(t, out, "=> [Team must be a lowercase slug]")
	assert.Contains(t, out, "=> [admins must be at least 18]")
	assert.Contains(t, out, "- Tags[1] must be at least 2 long")
	assert.Contains(t, out, `Var("nope", "email") failed => true`)
	assert.Contains(t, out, "Key takeaways:")
}
