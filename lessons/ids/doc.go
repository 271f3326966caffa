// Package ids is lesson 34: identifiers, encodings and checksums.
package ids
