package ids

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"hash/crc32"
	"hash/fnv"
	"io"

	"github.com/google/uuid"
	"github.com/mr-tron/base58"

	"github.com/katalvlaran/golessons/curriculum"
)

// ShortID packs a fresh random UUID into base58: the same 128 bits in
// 22 characters instead of 36, with no lookalike letters.
func ShortID() string {
	id := uuid.New()
	return base58.Encode(id[:])
}

// Fingerprint returns the first 16 hex characters of data's SHA-256,
// enough to tell two payloads apart at a glance and short enough for a
// log line.
func Fingerprint(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])[:16]
}

// Shard maps key onto one of n buckets via FNV-1a. The same key always
// lands on the same shard, which is the entire contract.
func Shard(key string, n int) int {
	if n <= 0 {
		return 0
	}
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(n))
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   34,
		Slug:     "ids",
		Title:    "Identifiers and encodings",
		Part:     curriculum.PartEngineering,
		Synopsis: "UUID v4/v5/v7, hex/base64/base58, checksums and sharding",
		Topics:   []string{"uuid", "base64", "base58", "crc32", "sha256", "fnv"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Identifiers and encodings")

	nb.Step("UUID v4: 122 random bits")
	a, b := uuid.New(), uuid.New()
	nb.Sayf("two fresh ids, e.g. %s...", a.String()[:8])
	nb.Show("a != b", a != b)
	nb.Show("version / variant", fmt.Sprintf("%d / %s", a.Version(), a.Variant()))
	nb.Say("Collisions are not a practical concern: the pool is 2^122.")
	nb.Say("The cost is that v4 ids scatter, which fragments DB indexes.")

	nb.Step("UUID v7: random, but time-ordered")
	first, err := uuid.NewV7()
	if err != nil {
		return err
	}
	second, err := uuid.NewV7()
	if err != nil {
		return err
	}
	nb.Show("first < second", first.String() < second.String())
	nb.Say("The leading 48 bits are a Unix millisecond timestamp, so ids")
	nb.Say("created later sort later. Databases love them as primary keys.")

	nb.Step("UUID v5: deterministic, name-based")
	site := uuid.NewSHA1(uuid.NameSpaceDNS, []byte("example.com"))
	nb.Sayf("NewSHA1(DNS, \"example.com\") -> %s", site)
	nb.Say("Same namespace + same name = same id, on any machine, forever.")
	nb.Say("Use it to derive stable ids from natural keys.")

	nb.Step("Parsing and validating")
	parsed := uuid.MustParse("123e4567-e89b-12d3-a456-426614174000")
	nb.Sayf("MustParse(...) -> version %d", parsed.Version())
	_, err = uuid.Parse("not-a-uuid")
	nb.Sayf("Parse(\"not-a-uuid\") -> %v", err)

	nb.Step("The same bytes, four alphabets")
	word := []byte("golessons")
	nb.Sayf("hex    -> %s", hex.EncodeToString(word))
	tricky := []byte{0xfb, 0xff, 0xfe}
	nb.Sayf("base64 std of fb ff fe -> %s", base64.StdEncoding.EncodeToString(tricky))
	nb.Sayf("base64 url of fb ff fe -> %s", base64.URLEncoding.EncodeToString(tricky))
	nb.Say("The std alphabet's + and / break URLs and filenames; the url")
	nb.Say("alphabet swaps them for - and _.")
	nb.Sayf("base58 of \"hello\" -> %s", base58.Encode([]byte("hello")))
	nb.Say("base58 also drops 0, O, I and l, so ids survive being read")
	nb.Say("aloud or retyped. ShortID() packs a UUID this way:")
	sid := ShortID()
	nb.Sayf("ShortID() -> %d characters, e.g. %s...", len(sid), sid[:4])

	nb.Step("Checksums: cheap integrity, not security")
	nb.Show("crc32 IEEE of \"golessons\"", crc32.ChecksumIEEE(word))
	nb.Sayf("Fingerprint(\"golessons\") -> %s", Fingerprint(word))
	nb.Say("CRC catches transmission damage; SHA-256 resists deliberate")
	nb.Say("tampering. Neither is a password hash.")

	nb.Step("Hashing for placement")
	for _, key := range []string{"user-42", "user-7"} {
		nb.Sayf("Shard(%q, 10) -> %d", key, Shard(key, 10))
	}
	nb.Say("FNV is fast and stable across processes, which is all a")
	nb.Say("shard router needs. Changing n reshuffles almost every key;")
	nb.Say("consistent hashing exists to soften exactly that.")

	nb.Takeaways(
		"v4 for opacity, v7 for index-friendly ordering, v5 for determinism",
		"pick the alphabet for the medium: hex, base64url, base58",
		"checksums detect accidents; only cryptographic hashes resist intent",
		"stable hashing turns any key into a placement decision",
	)
	return nb.Err()
}
