// Package datetime is lesson 15: time.Time and time.Duration.
//
// What
//
//   - Constructing instants: Date, Unix, Now, and the monotonic reading
//     hiding inside Now.
//   - The reference layout 2006-01-02 15:04:05: format by example.
//   - Duration literals, parsing, rounding, and arithmetic.
//   - Add vs AddDate (and the month-overflow surprise), Equal vs ==.
//   - Timers and tickers.
//
// Helpers: ParseFlexible tries the layouts config files actually contain,
// Age counts birthdays correctly, NextBusinessDay hops weekends.
package datetime
