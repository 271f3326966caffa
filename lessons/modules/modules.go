package modules

import (
	"context"
	"io"
	"runtime/debug"

	"github.com/katalvlaran/golessons/curriculum"
)

// Info summarises the build metadata stamped into the running binary.
type Info struct {
	GoVersion  string
	ModulePath string
	Version    string
	DepCount   int
}

// Describe reads the binary's embedded build info. The second result is
// false for binaries built without module support.
func Describe() (Info, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return Info{}, false
	}
	return Info{
		GoVersion:  bi.GoVersion,
		ModulePath: bi.Main.Path,
		Version:    bi.Main.Version,
		DepCount:   len(bi.Deps),
	}, true
}

// FindDep reports the resolved version of one dependency module, if the
// running binary links it.
func FindDep(path string) (string, bool) {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "", false
	}
	for _, dep := range bi.Deps {
		if dep.Path == path {
			if dep.Replace != nil {
				return dep.Replace.Version, true
			}
			return dep.Version, true
		}
	}
	return "", false
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   29,
		Slug:     "modules",
		Title:    "Modules and versioning",
		Part:     curriculum.PartStdlib,
		Synopsis: "go.mod anatomy, semver, minimal version selection, build info",
		Topics:   []string{"go.mod", "go.sum", "semver", "MVS", "ReadBuildInfo"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Modules and versioning")

	nb.Step("go.mod declares identity and needs")
	nb.Say("module  - the import-path prefix everything in the repo hangs off")
	nb.Say("go      - the minimum language version the code relies on")
	nb.Say("require - direct dependencies with their minimum versions")
	nb.Say("replace - local or forked overrides, for development only")
	nb.Say("exclude - versions known to be broken")

	nb.Step("go.sum is a tamper seal, not a lock file")
	nb.Say("It records cryptographic hashes of every module version ever")
	nb.Say("downloaded. The versions themselves are pinned by go.mod plus")
	nb.Say("minimal version selection; go.sum only proves the bytes match.")

	nb.Step("Minimal version selection")
	nb.Say("If A needs x v1.2.0 and B needs x v1.4.0, the build uses")
	nb.Say("v1.4.0: the highest of the minimums, and nothing newer. Builds")
	nb.Say("stay reproducible without a solver or a lock file.")

	nb.Step("Semantic import versioning")
	nb.Say("Major versions after v1 live at a new import path:")
	nb.Say("  github.com/example/lib      (v0, v1)")
	nb.Say("  github.com/example/lib/v2   (v2)")
	nb.Say("Old and new majors can coexist in one build, and an upgrade")
	nb.Say("across majors is a visible, greppable code change.")

	nb.Step("The binary remembers how it was built")
	info, ok := Describe()
	nb.Show("build info available", ok)
	if ok {
		nb.Sayf("module    -> %s", info.ModulePath)
		nb.Sayf("goversion -> %s", info.GoVersion)
		nb.Sayf("deps      -> %d modules linked in", info.DepCount)
	}
	nb.Say("runtime/debug.ReadBuildInfo exposes the module graph, VCS")
	nb.Say("revision and build flags; 'go version -m <binary>' prints the")
	nb.Say("same table from outside.")

	nb.Step("Everyday commands")
	nb.Say("go get example.com/lib@v1.4.0   raise a minimum")
	nb.Say("go get -u ./...                 upgrade within compatibility")
	nb.Say("go mod tidy                     sync go.mod with the imports")
	nb.Say("go mod why example.com/lib      explain why it is in the graph")

	nb.Takeaways(
		"a module is the unit of versioning; packages are the unit of import",
		"MVS picks the highest minimum, so upgrades are always deliberate",
		"breaking changes mean a new major and a new import path",
		"ReadBuildInfo turns any binary into its own SBOM",
	)
	return nb.Err()
}
