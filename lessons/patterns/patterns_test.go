package patterns_test

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golessons/curriculum"
	"github.com/katalvlaran/golessons/lessons/patterns"
)

func TestLessonMetadata(t *testing.T) {
	l := patterns.Lesson()
	assert.Equal(t, 36, l.Number)
	assert.Equal(t, "patterns", l.Slug)
	assert.Equal(t, curriculum.PartEngineering, l.Part)
	require.NoError(t, l.Validate())
}

func TestNewHouseDefaults(t *testing.T) {
	h := patterns.NewHouse()
	assert.Equal(t, patterns.House{Material: "brick", Floors: 1}, h)
}

func TestNewHouseOptions(t *testing.T) {
	h := patterns.NewHouse(
		patterns.WithMaterial("stone"),
		patterns.WithFloors(3),
		patterns.WithGarage(),
		patterns.WithPool(),
	)
	assert.Equal(t, patterns.House{Material: "stone", Floors: 3, Garage: true, Pool: true}, h)
}

func TestWithFloorsIgnoresNonsense(t *testing.T) {
	h := patterns.NewHouse(patterns.WithFloors(0), patterns.WithFloors(-2))
	assert.Equal(t, 1, h.Floors)
}

func TestQueryBuilderFullChain(t *testing.T) {
	q, err := patterns.NewQuery("students").
		Select("name", "grade").
		Where("grade >= 90").
		Where("active = 1").
		OrderBy("name").
		Limit(10).
		Build()
	require.NoError(t, err)
	assert.Equal(t,
		"SELECT name, grade FROM students WHERE grade >= 90 AND active = 1 ORDER BY name LIMIT 10",
		q)
}

func TestQueryBuilderDefaults(t *testing.T) {
	q, err := patterns.NewQuery("tasks").Build()
	require.NoError(t, err)
	assert.Equal(t, "SELECT * FROM tasks", q)
}

func TestQueryBuilderNeedsTable(t *testing.T) {
	_, err := patterns.NewQuery("   ").Select("x").Build()
	require.ErrorIs(t, err, patterns.ErrNoTable)
}

func TestDefaultsIsASingleton(t *testing.T) {
	first := patterns.Defaults()

	var wg sync.WaitGroup
	got := make([]*patterns.Settings, 8)
	for i := range got {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = patterns.Defaults()
		}(i)
	}
	wg.Wait()

	for _, s := range got {
		assert.Same(t, first, s)
	}
}

func TestBusPublishCountsAndDelivers(t *testing.T) {
	bus := patterns.NewBus()
	var seen []string
	bus.Subscribe("tick", func(p string) { seen = append(seen, "a:"+p) })
	bus.Subscribe("tick", func(p string) { seen = append(seen, "b:"+p) })

	assert.Equal(t, 2, bus.Publish("tick", "t1"))
	assert.Equal(t, 0, bus.Publish("tock", "ignored"))
	assert.Equal(t, []string{"a:t1", "b:t1"}, seen)
}

func TestDiscountStrategies(t *testing.T) {
	cases := []struct {
		name string
		d    patterns.Discount
		want int
	}{
		{"full price", patterns.NoDiscount(), 2500},
		{"twenty percent", patterns.Percent(20), 2000},
		{"flat six hundred", patterns.FlatOff(600), 1900},
		{"clamped at zero", patterns.FlatOff(9900), 0},
		{"nil means full price", nil, 2500},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, patterns.Price(2500, tc.d))
		})
	}
}

func TestChainOrdersMiddleware(t *testing.T) {
	var audit []string
	h := patterns.Chain(
		func(req string) string { return "handled:" + req },
		patterns.WithAudit(&audit),
		patterns.WithRoutePrefix("v1/"),
	)

	assert.Equal(t, "handled:v1/ping", h("ping"))
	// Audit is outermost, so it logs the request before the rewrite.
	assert.Equal(t, []string{"ping"}, audit)
}

func TestRunWritesDemonstration(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, patterns.Run(context.Background(), &buf))

	out := buf.String()
	assert.Contains(t, out, "Design patterns, Go-shaped")
	assert.Contains(t, out, "empty table rejected       => true")
	assert.Contains(t, out, "same instance              => true")
	assert.Contains(t, out, "notified on created        => 2")
	assert.Contains(t, out, "notified on unknown        => 0")
	assert.Contains(t, out, "Percent(20)                => 2000")
	assert.Contains(t, out, "FlatOff(9900)              => 0")
	assert.Contains(t, out, "handled:v1/ping")
	assert.Contains(t, out, "SELECT name, grade FROM students WHERE grade >= 90 AND active = 1 ORDER BY name LIMIT 10")
}
