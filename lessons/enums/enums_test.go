package enums_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
	"github.com/katalvlaran/golessons/lessons/enums"
)

func TestLessonMetadata(t *testing.T) {
	l := enums.Lesson()
	require.NoError(t, l.Validate())
	assert.Equal(t, 10, l.Number)
	assert.Equal(t, "enums", l.Slug)
	assert.Equal(t, curriculum.PartFundamentals, l.Part)
}

func TestWeekdayValues(t *testing.T) {
	assert.Equal(t, 0, int(enums.Sunday))
	assert.Equal(t, 6, int(enums.Saturday))
	assert.Equal(t, "Wednesday", enums.Wednesday.String())
	assert.Equal(t, "Weekday(-1)", enums.Weekday(-1).String())
}

func TestIsWeekend(t *testing.T) {
	weekend := 0
	for d := enums.Sunday; d <= enums.Saturday; d++ {
		if d.IsWeekend() {
			weekend++
		}
	}
	assert.Equal(t, 2, weekend)
	assert.True(t, enums.Saturday.IsWeekend())
	assert.False(t, enums.Monday.IsWeekend())
}

func TestParseWeekday(t *testing.T) {
	cases := []struct {
		in   string
		want enums.Weekday
	}{
		{"Sunday", enums.Sunday},
		{"friday", enums.Friday},
		{"TUESDAY", enums.Tuesday},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := enums.ParseWeekday(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}

	_, err := enums.ParseWeekday("Caturday")
	assert.ErrorIs(t, err, enums.ErrUnknownWeekday)
	assert.Contains(t, err.Error(), `"Caturday"`)
}

func TestPermissionBits(t *testing.T) {
	p := enums.PermRead.With(enums.PermWrite).With(enums.PermExec)
	assert.Equal(t, "read|write|exec", p.String())
	assert.True(t, p.Has(enums.PermRead|enums.PermExec))

	p = p.Without(enums.PermWrite)
	assert.False(t, p.Has(enums.PermWrite))
	assert.Equal(t, "read|exec", p.String())

	assert.Equal(t, "none", enums.Permission(0).String())
	assert.Equal(t, "read|0x8", (enums.PermRead | enums.Permission(8)).String())
}

func TestRunWritesDemonstration(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, enums.Run(context.Background(), &sb))

	out := sb.String()
	assert.Contains(t, out, "Enums via iota")
	assert.Contains(t, out, "first=0 second=1 fourth=3")
	assert.Contains(t, out, "read|write")
	assert.Contains(t, out, "Key takeaways:")
}
