// Package printlog persists the history of sheet builds in SQLite.
//
// Every sheets run records one row per run and one row per label placement,
// so a reprint can answer "which sheet was TS042 on last time" without
// re-deriving anything from the catalog.
package printlog
