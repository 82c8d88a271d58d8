// Package registry maintains the identifier allocation ledgers and produces
// registry snapshots.
//
// The CategoryLedger tracks used numbers per category code and suggests the
// next free slot (first gap scanning from 1, or from a hundreds-block base
// when constrained to a family). The FamilyLedger groups identifiers by
// hundreds block; a family only becomes visible when an anchor candidate
// (number ending 00) exists at a family-index location. Build ties both to a
// catalog scan and emits the full and simplified YAML snapshots.
package registry
