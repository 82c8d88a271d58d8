// Package label renders component label artwork and composes print sheets.
//
// A label is a QR code on the left and a text panel on the right: wrapped
// title, capped info lines, and the identifier code in the bottom corner.
// All labels share the catalog's fixed printable width; height follows the
// QR size. Sheets stack labels at the offsets computed by the sheet package
// and draw a thin divider centered in each gap.
package label

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"shelfmark/internal/catalog"
	"shelfmark/internal/config"
)

const (
	minTextColumnWidth = 120
	titleMaxLines      = 2
)

// Renderer turns catalog entries into label images.
type Renderer struct {
	cfg    *config.Config
	preset config.Preset
	fonts  fontSet
	logger *slog.Logger
}

// NewRenderer builds a Renderer from configuration. Missing font files
// degrade to a builtin bitmap face rather than failing.
func NewRenderer(cfg *config.Config, logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	preset := cfg.LabelPreset()
	return &Renderer{
		cfg:    cfg,
		preset: preset,
		fonts: loadFonts(cfg.Paths.FontsDir,
			preset.TitleFontSize, preset.LineFontSize, preset.SmallFontSize, logger),
		logger: logger,
	}
}

// Render composes the label image for one entry.
func (r *Renderer) Render(entry catalog.Entry) (*image.Gray, error) {
	qrImg, err := r.renderQR(entry.QRURL)
	if err != nil {
		return nil, fmt.Errorf("qr for %s: %w", entry.ID, err)
	}

	lc := r.cfg.Label
	width := lc.MaxWidth
	height := qrImg.Bounds().Dy()

	textX := lc.PaddingLeft + qrImg.Bounds().Dx() + lc.TextLeftGap
	textWidth := width - textX - lc.TextRightPad
	if textWidth < minTextColumnWidth {
		textWidth = minTextColumnWidth
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)
	draw.Draw(img, qrImg.Bounds().Add(image.Pt(lc.PaddingLeft, 0)), qrImg, qrImg.Bounds().Min, draw.Src)

	r.drawTextPanel(img, entry, textX, textWidth, height)
	return img, nil
}

func (r *Renderer) renderQR(url string) (image.Image, error) {
	qr, err := qrcode.New(url, qrcode.Medium)
	if err != nil {
		return nil, err
	}
	return qr.Image(r.preset.QRSize), nil
}

func (r *Renderer) drawTextPanel(img *image.Gray, entry catalog.Entry, x, width, height int) {
	lc := r.cfg.Label

	titleLines := capLines(
		wrapToWidth(entry.Title, r.fonts.title, width),
		titleMaxLines, r.fonts.title, width)

	var bodyLines []string
	for _, line := range entry.Lines {
		bodyLines = append(bodyLines, wrapToWidth(line, r.fonts.line, width)...)
	}
	bodyLines = capLines(bodyLines, lc.MaxInfoLines, r.fonts.line, width)

	y := lc.TopPadding + r.fonts.title.Metrics().Ascent.Ceil()
	for _, line := range titleLines {
		drawString(img, r.fonts.title, line, x, y)
		y += r.preset.TitleSpacing
	}
	y += r.fonts.line.Metrics().Ascent.Ceil() - r.fonts.title.Metrics().Ascent.Ceil()
	for _, line := range bodyLines {
		drawString(img, r.fonts.line, line, x, y)
		y += r.preset.LineSpacing
	}

	// Identifier code pinned to the bottom of the panel.
	codeY := height - lc.BottomPad - r.fonts.small.Metrics().Descent.Ceil()
	drawString(img, r.fonts.small, entry.ID, x, codeY)
}

func drawString(img *image.Gray, face font.Face, s string, x, baseline int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Gray{Y: 0}),
		Face: face,
		Dot:  fixed.P(x, baseline),
	}
	d.DrawString(s)
}
