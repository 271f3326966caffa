// Package curriculum: Lesson descriptor, Part enumeration, and validation.
package curriculum

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// Sentinel errors for curriculum assembly and lookup.
var (
	// ErrInvalidLesson indicates a Lesson with a missing or malformed field.
	ErrInvalidLesson = errors.New("curriculum: invalid lesson")

	// ErrDuplicateNumber indicates two lessons registered with the same number.
	ErrDuplicateNumber = errors.New("curriculum: duplicate lesson number")

	// ErrDuplicateSlug indicates two lessons registered with the same slug.
	ErrDuplicateSlug = errors.New("curriculum: duplicate lesson slug")

	// ErrLessonNotFound indicates a lookup key that matches no lesson.
	ErrLessonNotFound = errors.New("curriculum: lesson not found")
)

// Part groups lessons into the four arcs of the course.
type Part uint8

// Course parts, in teaching order.
const (
	PartFundamentals Part = iota + 1 // language basics: syntax, types, errors
	PartConcurrency                  // goroutines, channels, coordination
	PartStdlib                       // standard library in practice
	PartEngineering                  // ecosystem libraries and project craft
)

// String returns the human-readable part name used in listings and README.
func (p Part) String() string {
	switch p {
	case PartFundamentals:
		return "Fundamentals"
	case PartConcurrency:
		return "Concurrency"
	case PartStdlib:
		return "Standard library"
	case PartEngineering:
		return "Engineering practice"
	default:
		return fmt.Sprintf("Part(%d)", uint8(p))
	}
}

// known reports whether p is one of the declared parts.
func (p Part) known() bool {
	return p >= PartFundamentals && p <= PartEngineering
}

// RunFunc executes a lesson, writing its annotated demonstration to w.
// Implementations must honor ctx cancellation on any blocking work and
// must not retain w after returning.
type RunFunc func(ctx context.Context, w io.Writer) error

// Lesson describes one self-contained demonstration of a single Go topic.
//
// Number is the position in the curriculum (1-based, unique).
// Slug is the stable lookup key ("pointers", "channels", ...): lowercase
// ASCII letters and digits only.
// Synopsis is the one-line summary shown by `golessons -list` and README.
// Topics enumerates the concrete APIs or keywords the lesson touches.
type Lesson struct {
	Number   int
	Slug     string
	Title    string
	Part     Part
	Synopsis string
	Topics   []string
	Run      RunFunc
}

// Validate reports ErrInvalidLesson (wrapped with the offending detail)
// if any field is missing or malformed.
func (l Lesson) Validate() error {
	if l.Number < 1 {
		return fmt.Errorf("%w: number %d must be >= 1", ErrInvalidLesson, l.Number)
	}
	if l.Slug == "" {
		return fmt.Errorf("%w: lesson %d has empty slug", ErrInvalidLesson, l.Number)
	}
	for _, r := range l.Slug {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return fmt.Errorf("%w: slug %q must be lowercase ASCII letters or digits", ErrInvalidLesson, l.Slug)
		}
	}
	if l.Title == "" {
		return fmt.Errorf("%w: lesson %q has empty title", ErrInvalidLesson, l.Slug)
	}
	if l.Synopsis == "" {
		return fmt.Errorf("%w: lesson %q has empty synopsis", ErrInvalidLesson, l.Slug)
	}
	if !l.Part.known() {
		return fmt.Errorf("%w: lesson %q has unknown part %d", ErrInvalidLesson, l.Slug, l.Part)
	}
	if l.Run == nil {
		return fmt.Errorf("%w: lesson %q has nil Run", ErrInvalidLesson, l.Slug)
	}
	return nil
}

// Ref renders the canonical "NN lesson-slug" reference used in listings.
func (l Lesson) Ref() string {
	return fmt.Sprintf("%02d %s", l.Number, l.Slug)
}
