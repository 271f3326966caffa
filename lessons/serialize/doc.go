// Package serialize is lesson 22: JSON and gob.
//
// What
//
//   - struct tags: renaming, omitempty, and "-" for secrets.
//   - Marshal/Unmarshal, MarshalIndent, and strict decoding with
//     DisallowUnknownFields.
//   - The map[string]any escape hatch and its float64 surprise.
//   - Custom MarshalJSON/UnmarshalJSON on a Duration wrapper.
//   - github.com/goccy/go-json as a drop-in faster encoder.
//   - encoding/gob for Go-to-Go binary streams.
//
// The Person here is a fresh definition for this lesson: an account
// record with wire-format concerns, nothing shared with other lessons.
package serialize
