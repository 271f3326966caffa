// Package curriculum: the Registry assembles Lessons into a validated,
// ordered course and executes them.
package curriculum

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/multierr"
)

// Registry is an ordered, duplicate-free collection of Lessons.
// The zero value is not usable; construct with New or MustNew.
type Registry struct {
	ordered  []Lesson
	byNumber map[int]int    // lesson number → index into ordered
	bySlug   map[string]int // lesson slug → index into ordered
}

// New validates every lesson, rejects duplicates, and returns a Registry
// whose iteration order is ascending by lesson number.
//
// Returns ErrInvalidLesson, ErrDuplicateNumber, or ErrDuplicateSlug
// (wrapped with the offending lesson) on the first violation found.
func New(lessons ...Lesson) (*Registry, error) {
	r := &Registry{
		ordered:  make([]Lesson, 0, len(lessons)),
		byNumber: make(map[int]int, len(lessons)),
		bySlug:   make(map[string]int, len(lessons)),
	}
	for _, l := range lessons {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if _, dup := r.byNumber[l.Number]; dup {
			return nil, fmt.Errorf("%w: %d (%s)", ErrDuplicateNumber, l.Number, l.Slug)
		}
		if _, dup := r.bySlug[l.Slug]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateSlug, l.Slug)
		}
		r.byNumber[l.Number] = len(r.ordered)
		r.bySlug[l.Slug] = len(r.ordered)
		r.ordered = append(r.ordered, l)
	}
	// Stable course order regardless of registration order.
	sort.Slice(r.ordered, func(i, j int) bool { return r.ordered[i].Number < r.ordered[j].Number })
	for i, l := range r.ordered {
		r.byNumber[l.Number] = i
		r.bySlug[l.Slug] = i
	}
	return r, nil
}

// MustNew is New that panics on error. Intended for the golessons binary,
// where a malformed course is a programming mistake, not a runtime state.
func MustNew(lessons ...Lesson) *Registry {
	r, err := New(lessons...)
	if err != nil {
		panic(err)
	}
	return r
}

// Len reports the number of registered lessons.
func (r *Registry) Len() int { return len(r.ordered) }

// All returns the lessons in ascending number order.
// The returned slice is a copy; mutating it does not affect the Registry.
func (r *Registry) All() []Lesson {
	out := make([]Lesson, len(r.ordered))
	copy(out, r.ordered)
	return out
}

// Part returns the lessons belonging to part p, in course order.
func (r *Registry) Part(p Part) []Lesson {
	var out []Lesson
	for _, l := range r.ordered {
		if l.Part == p {
			out = append(out, l)
		}
	}
	return out
}

// Find resolves key, a lesson number ("7") or slug ("pointers"), to its
// Lesson. Returns ErrLessonNotFound if nothing matches.
func (r *Registry) Find(key string) (Lesson, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if n, err := strconv.Atoi(key); err == nil {
		if i, ok := r.byNumber[n]; ok {
			return r.ordered[i], nil
		}
		return Lesson{}, fmt.Errorf("%w: number %d", ErrLessonNotFound, n)
	}
	if i, ok := r.bySlug[key]; ok {
		return r.ordered[i], nil
	}
	return Lesson{}, fmt.Errorf("%w: %q", ErrLessonNotFound, key)
}

// Run resolves key and executes that lesson, writing to w.
// Lesson failures are wrapped with the lesson slug for context.
func (r *Registry) Run(ctx context.Context, w io.Writer, key string) error {
	l, err := r.Find(key)
	if err != nil {
		return err
	}
	if err = l.Run(ctx, w); err != nil {
		return fmt.Errorf("curriculum: lesson %s: %w", l.Slug, err)
	}
	return nil
}

// RunAll executes every lesson in course order, writing to w.
// A failing lesson does not stop the course; failures are aggregated
// with multierr and returned together. Context cancellation stops the
// run immediately and is returned alongside any lesson errors.
func (r *Registry) RunAll(ctx context.Context, w io.Writer) error {
	var errs error
	for _, l := range r.ordered {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return multierr.Append(errs, ctxErr)
		}
		if err := l.Run(ctx, w); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("curriculum: lesson %s: %w", l.Slug, err))
		}
	}
	return errs
}
