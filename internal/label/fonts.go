package label

import (
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
)

const (
	regularFontFile = "DejaVuSans.ttf"
	boldFontFile    = "DejaVuSans-Bold.ttf"
)

// fontSet holds the three faces a label uses: bold title, regular body, and
// a small footer face for the identifier code.
type fontSet struct {
	title font.Face
	line  font.Face
	small font.Face
}

// loadFonts builds the faces from the fonts directory, falling back to the
// built-in bitmap face per-slot when a file is missing or unparseable. The
// output stays printable either way.
func loadFonts(dir string, titleSize, lineSize, smallSize float64, logger *slog.Logger) fontSet {
	return fontSet{
		title: loadFace(filepath.Join(dir, boldFontFile), titleSize, logger),
		line:  loadFace(filepath.Join(dir, regularFontFile), lineSize, logger),
		small: loadFace(filepath.Join(dir, regularFontFile), smallSize, logger),
	}
}

func loadFace(path string, size float64, logger *slog.Logger) font.Face {
	data, err := os.ReadFile(path)
	if err != nil {
		logger.Debug("font unavailable, using builtin face", "path", path, "error", err)
		return basicfont.Face7x13
	}
	parsed, err := opentype.Parse(data)
	if err != nil {
		logger.Warn("font unparseable, using builtin face", "path", path, "error", err)
		return basicfont.Face7x13
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		logger.Warn("font face construction failed, using builtin face", "path", path, "error", err)
		return basicfont.Face7x13
	}
	return face
}
