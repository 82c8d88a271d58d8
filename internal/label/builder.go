package label

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"shelfmark/internal/catalog"
	"shelfmark/internal/config"
	"shelfmark/internal/fileutil"
	"shelfmark/internal/sheet"
	"shelfmark/internal/textutil"
)

// InventoryCSVName is the per-label inventory written next to the PNGs.
const InventoryCSVName = "index.csv"

// InventoryRow is one line of the label inventory.
type InventoryRow struct {
	ID       string
	Name     string
	URL      string
	LabelPNG string
}

// Builder renders every printable catalog entry to a PNG in the output
// directory and keeps the inventory of what it produced.
type Builder struct {
	cfg      *config.Config
	renderer *Renderer
	logger   *slog.Logger
}

// NewBuilder returns a Builder writing into cfg.Paths.OutputDir.
func NewBuilder(cfg *config.Config, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{
		cfg:      cfg,
		renderer: NewRenderer(cfg, logger),
		logger:   logger,
	}
}

// BuildAll renders labels for all leaf entries. Family index pages describe
// a block, not a physical part, so they get no label. Entries that fail to
// render are logged and skipped; the build continues.
func (b *Builder) BuildAll(entries []catalog.Entry) ([]InventoryRow, error) {
	if err := os.MkdirAll(b.cfg.Paths.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var rows []InventoryRow
	for _, entry := range entries {
		if entry.FamilyIndex {
			continue
		}
		img, err := b.renderer.Render(entry)
		if err != nil {
			b.logger.Warn("label render failed, skipping", "id", entry.ID, "error", err)
			continue
		}
		name := textutil.SanitizeFileName(entry.ID) + ".png"
		if err := savePNG(filepath.Join(b.cfg.Paths.OutputDir, name), img); err != nil {
			return rows, fmt.Errorf("write label %s: %w", entry.ID, err)
		}
		rows = append(rows, InventoryRow{
			ID:       entry.ID,
			Name:     entry.Name,
			URL:      entry.URL,
			LabelPNG: name,
		})
		b.logger.Debug("label rendered", "id", entry.ID, "file", name)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].ID < rows[j].ID })
	return rows, nil
}

// WriteInventoryCSV writes the label inventory into the output directory.
func (b *Builder) WriteInventoryCSV(rows []InventoryRow) error {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "name", "url", "label_png"}); err != nil {
		return err
	}
	for _, row := range rows {
		if err := w.Write([]string{row.ID, row.Name, row.URL, row.LabelPNG}); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	path := filepath.Join(b.cfg.Paths.OutputDir, InventoryCSVName)
	return fileutil.WriteAtomic(path, buf.Bytes(), 0o644)
}

// LoadArtifacts measures the previously rendered label PNGs for the given
// identifiers. Missing or unreadable files are simply absent from the map;
// the packer reports them as skipped.
func LoadArtifacts(outputDir string, ids []string, logger *slog.Logger) map[string]sheet.Artifact {
	if logger == nil {
		logger = slog.Default()
	}
	arts := make(map[string]sheet.Artifact, len(ids))
	for _, id := range ids {
		path := filepath.Join(outputDir, textutil.SanitizeFileName(id)+".png")
		w, h, err := pngSize(path)
		if err != nil {
			logger.Debug("label artifact unavailable", "id", id, "path", path, "error", err)
			continue
		}
		arts[id] = sheet.Artifact{ID: id, Path: path, Width: w, Height: h}
	}
	return arts
}

func pngSize(path string) (width, height int, err error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		return 0, 0, fmt.Errorf("decode %s: %w", path, err)
	}
	return cfg.Width, cfg.Height, nil
}

func savePNG(path string, img image.Image) error {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return err
	}
	return fileutil.WriteAtomic(path, buf.Bytes(), 0o644)
}
