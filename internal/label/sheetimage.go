package label

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"shelfmark/internal/config"
	"shelfmark/internal/sheet"
)

// Composer pastes rendered label PNGs into sheet images with cut guides.
type Composer struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewComposer returns a Composer writing into cfg.Paths.OutputDir.
func NewComposer(cfg *config.Config, logger *slog.Logger) *Composer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Composer{cfg: cfg, logger: logger}
}

// ComposeAll writes one PNG per sheet and returns the file names written.
func (c *Composer) ComposeAll(sheets []sheet.Sheet, artifacts map[string]sheet.Artifact) ([]string, error) {
	names := make([]string, 0, len(sheets))
	for _, s := range sheets {
		name := s.Name + ".png"
		if err := c.compose(filepath.Join(c.cfg.Paths.OutputDir, name), s, artifacts); err != nil {
			return names, fmt.Errorf("compose %s: %w", name, err)
		}
		names = append(names, name)
		c.logger.Info("sheet written", "sheet", name,
			"labels", s.LabelCount(), "height_px", s.TotalHeight)
	}
	return names, nil
}

func (c *Composer) compose(path string, s sheet.Sheet, artifacts map[string]sheet.Artifact) error {
	width := c.cfg.Label.MaxWidth
	img := image.NewGray(image.Rect(0, 0, width, s.TotalHeight))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	for _, pl := range s.Placements {
		art, ok := artifacts[pl.ID]
		if !ok {
			return fmt.Errorf("placement %s has no artifact", pl.ID)
		}
		labelImg, err := loadPNG(art.Path)
		if err != nil {
			return err
		}
		target := labelImg.Bounds().Sub(labelImg.Bounds().Min).Add(image.Pt(0, pl.OffsetY))
		draw.Draw(img, target, labelImg, labelImg.Bounds().Min, draw.Src)
	}

	sc := c.cfg.Sheet
	if sc.DrawDivider {
		for _, y := range s.DividerYs {
			drawHorizontal(img, y, sc.DividerThickness, width)
		}
	}
	if sc.DrawCutLine {
		drawVertical(img, width-sc.CutLineInset, sc.CutLineWidth, s.TotalHeight)
	}

	return savePNG(path, img)
}

// drawHorizontal paints a divider centered on y spanning the full width.
func drawHorizontal(img *image.Gray, y, thickness, width int) {
	if thickness < 1 {
		thickness = 1
	}
	top := y - thickness/2
	rect := image.Rect(0, top, width, top+thickness)
	draw.Draw(img, rect.Intersect(img.Bounds()), image.NewUniform(color.Gray{Y: 0}), image.Point{}, draw.Src)
}

// drawVertical paints a cut guide centered on x spanning the full height.
func drawVertical(img *image.Gray, x, thickness, height int) {
	if thickness < 1 {
		thickness = 1
	}
	left := x - thickness/2
	rect := image.Rect(left, 0, left+thickness, height)
	draw.Draw(img, rect.Intersect(img.Bounds()), image.NewUniform(color.Gray{Y: 0}), image.Point{}, draw.Src)
}

func loadPNG(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}
