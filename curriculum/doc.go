// Package curriculum defines the building blocks of the golessons course:
// the Lesson descriptor, the validated Registry that orders lessons into a
// curriculum, and the Notebook writer that renders annotated demonstrations.
//
// What
//
//   - Lesson: one self-contained demonstration of a single Go topic:
//     a number, a slug, a synopsis, and a Run function that prints the
//     annotated walkthrough to an io.Writer.
//   - Registry: an ordered, duplicate-free collection of Lessons with
//     lookup by number or slug and sequential execution helpers.
//   - Notebook: a thin formatting layer over io.Writer so every lesson
//     renders headings, numbered steps, and "key takeaways" the same way.
//
// Why
//
//	Lessons never import each other; the only thing they share is this
//	package. That keeps every lesson runnable (and readable) in isolation
//	while still letting the golessons binary list and execute the whole
//	course in a stable order.
//
// Determinism
//
//	Registry.All and Registry.RunAll iterate in ascending lesson number.
//	Lessons are expected to produce deterministic output by default: sort
//	map keys before printing, use fixed reference times, and prefer
//	in-process servers over live endpoints.
//
// Usage
//
//	reg, err := curriculum.New(hello.Lesson(), pointers.Lesson())
//	if err != nil { ... }
//	if err := reg.Run(ctx, os.Stdout, "pointers"); err != nil { ... }
//
// Errors
//
//   - ErrInvalidLesson    if a Lesson fails validation (bad number, slug,
//     missing title/synopsis/run).
//   - ErrDuplicateNumber  if two Lessons share a number.
//   - ErrDuplicateSlug    if two Lessons share a slug.
//   - ErrLessonNotFound   if Find/Run cannot resolve a key.
package curriculum
