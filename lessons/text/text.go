package text

import (
	"context"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/katalvlaran/golessons/curriculum"
)

// Reverse returns s with its runes in reverse order. Reversing bytes would
// shred multi-byte UTF-8 sequences; converting to []rune first keeps each
// code point intact.
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// TitleWords upper-cases the first rune of every space-separated word.
// A tiny showcase for strings.Fields + strings.Builder.
func TitleWords(s string) string {
	var b strings.Builder
	for i, word := range strings.Fields(s) {
		if i > 0 {
			b.WriteByte(' ')
		}
		r, size := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(word[size:])
	}
	return b.String()
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   4,
		Slug:     "text",
		Title:    "Strings, bytes, and runes",
		Part:     curriculum.PartFundamentals,
		Synopsis: "immutability, byte vs rune views, strings package, Builder",
		Topics:   []string{"string", "rune", "[]byte", "utf8", "strings", "strings.Builder"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Strings, bytes, and runes")

	const word = "héllo" // the é is two bytes in UTF-8

	nb.Step("len counts bytes, not characters")
	nb.Show("word", word)
	nb.Show("len(word)", len(word))
	nb.Show("utf8.RuneCountInString", utf8.RuneCountInString(word))
	nb.Say("Five characters, six bytes: é is encoded as 0xC3 0xA9.")

	nb.Step("Indexing yields bytes, range yields runes")
	nb.Sayf("word[1] = %#x (just the first byte of é)", word[1])
	for i, r := range word {
		nb.Sayf("byte offset %d: rune %q", i, r)
	}
	nb.Say("Note the offsets jump from 1 to 3: range advances by rune width.")

	nb.Step("Strings are immutable; conversions copy")
	bytes := []byte(word)
	bytes[0] = 'H'
	nb.Sayf("mutated copy -> %s", string(bytes))
	nb.Sayf("original     -> %s (untouched)", word)

	nb.Step("Reversing safely")
	nb.Sayf("Reverse(%q) -> %q", word, Reverse(word))
	nb.Say("Reverse works on []rune. A byte-wise reverse would emit invalid UTF-8.")

	nb.Step("strings package greatest hits")
	s := "  go, go, gadget gophers  "
	nb.Show("TrimSpace", strings.TrimSpace(s))
	nb.Show("Contains(s, \"gadget\")", strings.Contains(s, "gadget"))
	nb.Show("ReplaceAll(go->GO)", strings.ReplaceAll(strings.TrimSpace(s), "go", "GO"))
	nb.Show("Split on \", \"", strings.Split("a, b, c", ", "))
	nb.Show("Join with \"-\"", strings.Join([]string{"a", "b", "c"}, "-"))
	nb.Show("Fields", strings.Fields("one  two\tthree"))
	nb.Show("EqualFold", strings.EqualFold("Gopher", "gOPHER"))
	nb.Show("Repeat", strings.Repeat("na", 4)+" batman")

	nb.Step("Building strings without quadratic copies")
	nb.Say("s += piece reallocates every iteration. strings.Builder appends")
	nb.Say("into a growing buffer and converts once at the end:")
	nb.Sayf("TitleWords(\"from mutex to channel\") -> %q", TitleWords("from mutex to channel"))

	nb.Takeaways(
		"len(s) is bytes; utf8.RuneCountInString(s) is characters",
		"for range walks runes and reports byte offsets",
		"strings are immutable; build with strings.Builder, not +=",
	)
	return nb.Err()
}
