package registry

// Item is one conforming catalog identifier with its parsed decomposition.
type Item struct {
	ID             string `yaml:"id"`
	Name           string `yaml:"name"`
	Category       string `yaml:"category"`
	Number         int    `yaml:"number"`
	Hundreds       int    `yaml:"hundreds"`
	IsFamilyAnchor bool   `yaml:"is_family_anchor"`
	URL            string `yaml:"url"`
	Source         string `yaml:"source"`
}

// Category is the per-code allocation report.
type Category struct {
	Title string `yaml:"title"`
	Count int    `yaml:"count"`
	// UsedNumbers is sorted ascending.
	UsedNumbers []int `yaml:"used_numbers"`
	// NextAny is the category's next free identifier, or nil when all 999
	// slots are used.
	NextAny *string `yaml:"next_any"`
	// NextByFamily maps anchored family keys to the next free identifier
	// inside that family's hundreds block. Exhausted blocks are absent.
	NextByFamily map[string]string `yaml:"next_by_family"`
}

// Family is an anchored hundreds-block family.
type Family struct {
	Key    string `yaml:"key"`
	Anchor string `yaml:"anchor"`
	Alias  string `yaml:"alias"`
	// Members holds every conforming identifier in the block, sorted by
	// numeric value, whether or not the member page is an index.
	Members []string `yaml:"members"`
}

// Snapshot is the full registry output for one run.
type Snapshot struct {
	GeneratedAt string              `yaml:"generated_at"`
	IDs         []Item              `yaml:"ids"`
	Categories  map[string]Category `yaml:"categories"`
	Families    map[string]Family   `yaml:"families"`
	Warnings    []string            `yaml:"warnings"`
}

// SimpleCategory is the reporting-relevant subset of Category.
type SimpleCategory struct {
	Title        string            `yaml:"title"`
	Count        int               `yaml:"count"`
	NextAny      *string           `yaml:"next_any"`
	NextByFamily map[string]string `yaml:"next_by_family"`
}

// SimpleFamily is the reporting-relevant subset of Family.
type SimpleFamily struct {
	Anchor  string   `yaml:"anchor"`
	Alias   string   `yaml:"alias"`
	Members []string `yaml:"members"`
}

// SimpleSnapshot is the human-report subset of Snapshot.
type SimpleSnapshot struct {
	GeneratedAt string                    `yaml:"generated_at"`
	Categories  map[string]SimpleCategory `yaml:"categories"`
	Families    map[string]SimpleFamily   `yaml:"families"`
}

// Simplify projects the snapshot down to its reporting fields.
func (s Snapshot) Simplify() SimpleSnapshot {
	simple := SimpleSnapshot{
		GeneratedAt: s.GeneratedAt,
		Categories:  make(map[string]SimpleCategory, len(s.Categories)),
		Families:    make(map[string]SimpleFamily, len(s.Families)),
	}
	for code, c := range s.Categories {
		simple.Categories[code] = SimpleCategory{
			Title:        c.Title,
			Count:        c.Count,
			NextAny:      c.NextAny,
			NextByFamily: c.NextByFamily,
		}
	}
	for key, f := range s.Families {
		simple.Families[key] = SimpleFamily{
			Anchor:  f.Anchor,
			Alias:   f.Alias,
			Members: f.Members,
		}
	}
	return simple
}
