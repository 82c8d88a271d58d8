// Package catalog reads component entries out of a markdown catalog tree.
//
// Each component is one markdown page with optional YAML front matter (id,
// name, short, use, qr_url) and an optional printer_meta HTML-comment block
// overriding label title, lines, and QR target. Pages named index.md mark
// family-index locations; only those may anchor an identifier family.
//
// The reader is deliberately forgiving: a malformed front matter block
// degrades to an empty record and the identifier falls back to the file stem.
// Only an unreadable catalog root is fatal.
package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"

	"shelfmark/internal/config"
)

// Entry is one catalog page plus everything the registry and label
// subsystems need from it.
type Entry struct {
	ID          string   // explicit front matter id, or the file stem uppercased
	Name        string   // display name
	Short       string   // short description line
	Use         string   // usage note line
	Title       string   // label title override from printer_meta
	Lines       []string // label info line override from printer_meta
	URL         string   // published page URL
	QRURL       string   // QR target, defaults to URL
	Source      string   // path relative to the catalog root
	FamilyIndex bool     // entry lives at a family-index location (index.md)
}

// Reader walks a catalog tree and yields entries in deterministic
// (lexical path) order.
type Reader struct {
	root    string
	baseURL string
	skip    map[string]struct{}
}

// NewReader builds a Reader for the configured catalog root. The output
// directory is skipped when it is nested under the root.
func NewReader(cfg *config.Config) *Reader {
	skip := make(map[string]struct{}, 1)
	if cfg.Paths.OutputDir != "" {
		skip[cfg.Paths.OutputDir] = struct{}{}
	}
	return &Reader{
		root:    cfg.Paths.CatalogDir,
		baseURL: cfg.Site.BaseURL,
		skip:    skip,
	}
}

// Scan reads every markdown page under the root. Unreadable individual files
// are reported as warnings; an unreadable root is an error.
func (r *Reader) Scan() ([]Entry, []string, error) {
	info, err := os.Stat(r.root)
	if err != nil {
		return nil, nil, fmt.Errorf("read catalog root %q: %w", r.root, err)
	}
	if !info.IsDir() {
		return nil, nil, fmt.Errorf("catalog root %q is not a directory", r.root)
	}

	var entries []Entry
	var warnings []string

	// WalkDir visits entries in lexical order, so output order never
	// depends on platform directory enumeration.
	err = filepath.WalkDir(r.root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			warnings = append(warnings, fmt.Sprintf("read-error: %s: %v", path, walkErr))
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if _, skip := r.skip[path]; skip {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".md") {
			return nil
		}

		raw, err := os.ReadFile(path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("read-error: %s: %v", path, err))
			return nil
		}
		rel, err := filepath.Rel(r.root, path)
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("read-error: %s: %v", path, err))
			return nil
		}
		entries = append(entries, r.buildEntry(rel, string(raw)))
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walk catalog root %q: %w", r.root, err)
	}
	return entries, warnings, nil
}

func (r *Reader) buildEntry(rel, text string) Entry {
	fm, body := parseFrontMatter(text)
	meta := parsePrinterMeta(body)

	base := filepath.Base(rel)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	familyIndex := strings.EqualFold(base, "index.md")

	id := strings.TrimSpace(fm.ID)
	if id == "" {
		id = strings.ToUpper(stem)
	}

	name := strings.TrimSpace(fm.Name)
	if name == "" {
		if familyIndex {
			name = filepath.Base(filepath.Dir(rel))
			if name == "." {
				name = stem
			}
		} else {
			name = stem
		}
	}
	name = norm.NFC.String(name)

	url := r.pageURL(rel, familyIndex)
	qrURL := strings.TrimSpace(meta.QRURL)
	if qrURL == "" {
		qrURL = strings.TrimSpace(fm.QRURL)
	}
	if qrURL == "" {
		qrURL = url
	}

	title := norm.NFC.String(strings.TrimSpace(meta.Title))
	if title == "" {
		title = name
	}

	lines := meta.Lines
	if len(lines) == 0 {
		if short := strings.TrimSpace(fm.Short); short != "" {
			lines = append(lines, short)
		}
		if use := strings.TrimSpace(fm.Use); use != "" {
			lines = append(lines, use)
		}
	}

	return Entry{
		ID:          id,
		Name:        name,
		Short:       strings.TrimSpace(fm.Short),
		Use:         strings.TrimSpace(fm.Use),
		Title:       title,
		Lines:       lines,
		URL:         url,
		QRURL:       qrURL,
		Source:      filepath.ToSlash(rel),
		FamilyIndex: familyIndex,
	}
}
