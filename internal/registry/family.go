package registry

import (
	"sort"

	"shelfmark/internal/identifier"
)

// FamilyLedger groups identifiers by hundreds-block family. A family is only
// materialized when an anchor was recorded for its key; membership itself is
// not anchor-gated.
type FamilyLedger struct {
	aliases map[string]string
	members map[string][]identifier.Identifier
}

// NewFamilyLedger returns an empty ledger.
func NewFamilyLedger() *FamilyLedger {
	return &FamilyLedger{
		aliases: make(map[string]string),
		members: make(map[string][]identifier.Identifier),
	}
}

// RecordAnchor marks the family of id as anchored, remembering the anchor
// component's name as the family alias. Call only for anchor candidates found
// at family-index locations.
func (l *FamilyLedger) RecordAnchor(id identifier.Identifier, alias string) {
	l.aliases[id.FamilyKey()] = alias
}

// RecordMember adds id to its family's member list.
func (l *FamilyLedger) RecordMember(id identifier.Identifier) {
	key := id.FamilyKey()
	l.members[key] = append(l.members[key], id)
}

// Anchored reports whether the family key has an anchor.
func (l *FamilyLedger) Anchored(key string) bool {
	_, ok := l.aliases[key]
	return ok
}

// AnchoredKeys returns every anchored family key, sorted.
func (l *FamilyLedger) AnchoredKeys() []string {
	keys := make([]string, 0, len(l.aliases))
	for key := range l.aliases {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Families returns the anchored families with members sorted by numeric
// value. Non-anchored blocks are invisible even when they have members.
func (l *FamilyLedger) Families() map[string]Family {
	families := make(map[string]Family, len(l.aliases))
	for key, alias := range l.aliases {
		members := append([]identifier.Identifier(nil), l.members[key]...)
		sort.Slice(members, func(i, j int) bool {
			return members[i].Number < members[j].Number
		})
		ids := make([]string, len(members))
		var anchor string
		for i, m := range members {
			ids[i] = m.String()
			if anchor == "" {
				anchor = m.AnchorID()
			}
		}
		if anchor == "" {
			// Anchored family with no recorded members cannot happen in
			// practice (the anchor itself is a member), but derive the
			// anchor id from the key shape if it does.
			anchor = key[:len(key)-2] + "00"
		}
		families[key] = Family{
			Key:     key,
			Anchor:  anchor,
			Alias:   alias,
			Members: ids,
		}
	}
	return families
}
