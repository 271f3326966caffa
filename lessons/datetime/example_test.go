package datetime_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/golessons/lessons/datetime"
)

// ExampleParseFlexible: the same entry point accepts the layouts real
// config files mix freely.
func ExampleParseFlexible() {
	for _, s := range []string{"2024-03-15T14:30:45Z", "2024-03-15 14:30:45", "2024-03-15"} {
		t, _ := datetime.ParseFlexible(s)
		fmt.Println(t.Format(time.RFC3339))
	}
	// Output:
	// 2024-03-15T14:30:45Z
	// 2024-03-15T14:30:45Z
	// 2024-03-15T00:00:00Z
}

func ExampleAge() {
	born := time.Date(2000, time.June, 1, 0, 0, 0, 0, time.UTC)
	dayBefore := time.Date(2024, time.May, 31, 0, 0, 0, 0, time.UTC)
	dayOf := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)

	fmt.Println(datetime.Age(born, dayBefore))
	fmt.Println(datetime.Age(born, dayOf))
	// Output:
	// 23
	// 24
}

func ExampleNextBusinessDay() {
	friday := time.Date(2024, time.March, 15, 9, 0, 0, 0, time.UTC)
	fmt.Println(datetime.NextBusinessDay(friday).Format("Mon 2006-01-02"))
	// Output:
	// Mon 2024-03-18
}
