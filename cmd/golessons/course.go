package main

import (
	"github.com/katalvlaran/golessons/curriculum"

	"github.com/katalvlaran/golessons/lessons/channels"
	"github.com/katalvlaran/golessons/lessons/collections"
	"github.com/katalvlaran/golessons/lessons/config"
	"github.com/katalvlaran/golessons/lessons/contexts"
	"github.com/katalvlaran/golessons/lessons/control"
	"github.com/katalvlaran/golessons/lessons/database"
	"github.com/katalvlaran/golessons/lessons/datetime"
	"github.com/katalvlaran/golessons/lessons/enums"
	"github.com/katalvlaran/golessons/lessons/errs"
	"github.com/katalvlaran/golessons/lessons/files"
	"github.com/katalvlaran/golessons/lessons/functions"
	"github.com/katalvlaran/golessons/lessons/futures"
	"github.com/katalvlaran/golessons/lessons/generics"
	"github.com/katalvlaran/golessons/lessons/goroutines"
	"github.com/katalvlaran/golessons/lessons/graphs"
	"github.com/katalvlaran/golessons/lessons/hello"
	"github.com/katalvlaran/golessons/lessons/httpclient"
	"github.com/katalvlaran/golessons/lessons/ids"
	"github.com/katalvlaran/golessons/lessons/interfaces"
	"github.com/katalvlaran/golessons/lessons/logging"
	"github.com/katalvlaran/golessons/lessons/memory"
	"github.com/katalvlaran/golessons/lessons/messaging"
	"github.com/katalvlaran/golessons/lessons/modules"
	"github.com/katalvlaran/golessons/lessons/numbers"
	"github.com/katalvlaran/golessons/lessons/patterns"
	"github.com/katalvlaran/golessons/lessons/pointers"
	"github.com/katalvlaran/golessons/lessons/reflection"
	"github.com/katalvlaran/golessons/lessons/regex"
	"github.com/katalvlaran/golessons/lessons/serialize"
	"github.com/katalvlaran/golessons/lessons/sockets"
	"github.com/katalvlaran/golessons/lessons/streams"
	"github.com/katalvlaran/golessons/lessons/structs"
	"github.com/katalvlaran/golessons/lessons/structures"
	"github.com/katalvlaran/golessons/lessons/text"
	"github.com/katalvlaran/golessons/lessons/unittest"
	"github.com/katalvlaran/golessons/lessons/validation"
	"github.com/katalvlaran/golessons/lessons/variables"
	"github.com/katalvlaran/golessons/lessons/workers"
)

// Course assembles the full curriculum. MustNew panics on duplicate
// numbers or slugs, so a malformed course fails at startup, not at
// lookup time.
func Course() *curriculum.Registry {
	return curriculum.MustNew(
		hello.Lesson(),
		variables.Lesson(),
		numbers.Lesson(),
		text.Lesson(),
		control.Lesson(),
		functions.Lesson(),
		pointers.Lesson(),
		structs.Lesson(),
		interfaces.Lesson(),
		enums.Lesson(),
		collections.Lesson(),
		generics.Lesson(),
		errs.Lesson(),
		contexts.Lesson(),
		datetime.Lesson(),
		goroutines.Lesson(),
		channels.Lesson(),
		workers.Lesson(),
		futures.Lesson(),
		files.Lesson(),
		streams.Lesson(),
		serialize.Lesson(),
		regex.Lesson(),
		reflection.Lesson(),
		sockets.Lesson(),
		httpclient.Lesson(),
		database.Lesson(),
		memory.Lesson(),
		modules.Lesson(),
		logging.Lesson(),
		config.Lesson(),
		validation.Lesson(),
		unittest.Lesson(),
		ids.Lesson(),
		messaging.Lesson(),
		patterns.Lesson(),
		structures.Lesson(),
		graphs.Lesson(),
	)
}
