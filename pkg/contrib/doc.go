// Package contrib defines the contribution data model shared by all
// pipeline stages.
//
// A [Record] is one calendar day of activity: the date, the raw event
// count, and a quartile intensity level from 0 (none) to 4 (highest).
// Records are produced either by the GitHub client or by the seeded
// [Mock] generator and are never mutated after creation.
//
// The package also provides [Summarize], which derives the aggregate
// statistics (total contributions, active days, year range, longest
// streak) displayed on the rendered board.
package contrib
