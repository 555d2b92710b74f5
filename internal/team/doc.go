// Package team holds the people teamdate tracks.
//
// A [Member] is a display name pinned to a timezone. A [Team] is an ordered
// list of members; declaration order is the default row order when a team is
// rendered member by member. A [Roster] indexes teams by their unique name.
//
// # Lookup
//
// [Roster.Lookup] reports absence with a boolean and never substitutes a
// default team. Resolving the configured default team is the job of the
// config package, which owns the roster once loading succeeds.
//
// # Filtering
//
// [Compile] turns a glob pattern into a [Matcher]. [Team.Filter] keeps the
// members whose name or zone identifier matches, preserving order.
//
// Everything in this package is immutable after construction and safe for
// concurrent use.
package team
