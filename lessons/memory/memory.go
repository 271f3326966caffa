package memory

import (
	"context"
	"io"
	"runtime"
	"runtime/debug"
	"sync"
	"unsafe"

	"github.com/katalvlaran/golessons/curriculum"
)

// Snapshot is the slice of runtime.MemStats this lesson cares about.
type Snapshot struct {
	HeapAlloc  uint64 // bytes of live heap objects
	TotalAlloc uint64 // cumulative bytes ever allocated
	NumGC      uint32 // completed GC cycles
	Goroutines int
}

// TakeSnapshot reads the runtime counters. ReadMemStats stops the world
// briefly, which is fine in a lesson and in tests, and worth knowing
// about before sprinkling it through a hot path.
func TakeSnapshot() Snapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	return Snapshot{
		HeapAlloc:  ms.HeapAlloc,
		TotalAlloc: ms.TotalAlloc,
		NumGC:      ms.NumGC,
		Goroutines: runtime.NumGoroutine(),
	}
}

// MakeCounter returns a closure whose counter variable escapes to the
// heap: the stack frame of MakeCounter is gone by the time the closure
// runs, yet n lives on.
func MakeCounter() func() int {
	n := 0
	return func() int {
		n++
		return n
	}
}

// Padded wastes space: the bool fields force padding around the int64.
type Padded struct {
	A bool
	B int64
	C bool
}

// Packed holds the same fields ordered large-to-small.
type Packed struct {
	B int64
	A bool
	C bool
}

// Lesson describes this package to the curriculum.
func Lesson() curriculum.Lesson {
	return curriculum.Lesson{
		Number:   28,
		Slug:     "memory",
		Title:    "Memory and the garbage collector",
		Part:     curriculum.PartStdlib,
		Synopsis: "MemStats, escape analysis, struct layout, sync.Pool, GOGC",
		Topics:   []string{"runtime.MemStats", "escape analysis", "unsafe.Sizeof", "sync.Pool", "SetGCPercent"},
		Run:      Run,
	}
}

// Run prints the annotated demonstration.
func Run(_ context.Context, w io.Writer) error {
	nb := curriculum.NewNotebook(w)
	nb.Heading("Memory and the garbage collector")

	nb.Step("Reading the runtime's own bookkeeping")
	before := TakeSnapshot()
	nb.Sayf("HeapAlloc  ~ %d KiB live on the heap", before.HeapAlloc/1024)
	nb.Sayf("TotalAlloc ~ %d KiB allocated so far", before.TotalAlloc/1024)
	nb.Sayf("NumGC      = %d collections completed", before.NumGC)
	nb.Say("These exact numbers change every run; the trends below do not.")

	nb.Step("Allocation moves the counters")
	chunks := make([][]byte, 4)
	for i := range chunks {
		chunks[i] = make([]byte, 1<<20)
		chunks[i][0] = byte(i)
	}
	after := TakeSnapshot()
	nb.Show("TotalAlloc grew >= 4 MiB", after.TotalAlloc-before.TotalAlloc >= 4<<20)
	nb.Say("TotalAlloc only ever rises; HeapAlloc can fall whenever the")
	nb.Say("collector reclaims garbage between two snapshots.")
	runtime.KeepAlive(chunks)

	nb.Step("Forcing a collection")
	preGC := TakeSnapshot()
	chunks = nil
	runtime.GC()
	postGC := TakeSnapshot()
	nb.Show("forced GC bumped NumGC", postGC.NumGC > preGC.NumGC)
	nb.Say("runtime.GC blocks until a full cycle finishes. Production code")
	nb.Say("almost never calls it; tests and benchmarks sometimes do to")
	nb.Say("settle the heap before measuring.")

	nb.Step("Escape analysis decides stack vs heap")
	counter := MakeCounter()
	nb.Sayf("counter() -> %d, %d, %d", counter(), counter(), counter())
	nb.Say("The closure keeps its n alive after MakeCounter returned, so")
	nb.Say("the compiler moves n to the heap. Values that never outlive")
	nb.Say("their frame stay on the stack and cost nothing to free.")
	nb.Say("See the verdicts with: go build -gcflags=-m ./...")

	nb.Step("Field order changes struct size")
	nb.Sayf("unsafe.Sizeof(Padded{}) -> %d bytes (bool, int64, bool)", unsafe.Sizeof(Padded{}))
	nb.Sayf("unsafe.Sizeof(Packed{}) -> %d bytes (int64, bool, bool)", unsafe.Sizeof(Packed{}))
	nb.Say("The int64 needs 8-byte alignment, so each bool before it drags")
	nb.Say("in 7 bytes of padding. Ordering fields large-to-small packs")
	nb.Say("them tight; it matters at slice-of-millions scale.")

	nb.Step("sync.Pool recycles short-lived buffers")
	pool := sync.Pool{New: func() any { return make([]byte, 0, 1024) }}
	buf := pool.Get().([]byte)
	buf = append(buf, "scratch work"...)
	pool.Put(buf[:0])
	again := pool.Get().([]byte)
	nb.Sayf("second Get capacity -> %d (a recycled buffer, most runs)", cap(again))
	pool.Put(again[:0])
	nb.Say("Pools shave allocations off hot paths between GC cycles. The")
	nb.Say("collector may empty them at any time, so never pool anything")
	nb.Say("that holds state you cannot recreate.")

	nb.Step("Tuning the collector")
	old := debug.SetGCPercent(200)
	debug.SetGCPercent(old)
	nb.Sayf("SetGCPercent(200) returned the previous target (%d), now restored", old)
	nb.Say("GOGC=100 (the default) starts a cycle when the heap doubles.")
	nb.Say("Raising it trades memory for less GC CPU; GOGC=off disables")
	nb.Say("collection entirely. debug.SetMemoryLimit caps the heap.")

	nb.Step("Goroutines are cheap, not free")
	base := runtime.NumGoroutine()
	gate := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-gate
		}()
	}
	grown := runtime.NumGoroutine()
	close(gate)
	wg.Wait()
	nb.Show("parked goroutines visible", grown-base >= 3)
	nb.Say("Each goroutine starts with a few KiB of stack that grows on")
	nb.Say("demand. Thousands are fine; leaking them forever is not.")

	nb.Takeaways(
		"measure with MemStats trends, not single absolute numbers",
		"escape analysis, not the var keyword, decides stack vs heap",
		"order struct fields large-to-small when size matters",
		"sync.Pool helps hot paths; the GC may drain it whenever",
	)
	return nb.Err()
}
