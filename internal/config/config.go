package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	CatalogDir      string `toml:"catalog_dir"`
	OutputDir       string `toml:"output_dir"`
	RegistryPageDir string `toml:"registry_page_dir"`
	FontsDir        string `toml:"fonts_dir"`
	LogDir          string `toml:"log_dir"`
}

// Site contains configuration for the published documentation site.
type Site struct {
	BaseURL string `toml:"base_url"`
}

// Registry contains the closed category set and reporting options.
type Registry struct {
	// Categories maps category codes to human titles. Codes outside this
	// set are tracked for uniqueness but omitted from the category report.
	Categories            map[string]string `toml:"categories"`
	WarnUnknownCategories bool              `toml:"warn_unknown_categories"`
}

// Label contains label artwork sizing.
type Label struct {
	Preset       string `toml:"preset"` // "compact" or "large"
	MaxWidth     int    `toml:"max_width"`
	PaddingLeft  int    `toml:"padding_left"`
	TextLeftGap  int    `toml:"text_left_gap"`
	TextRightPad int    `toml:"text_right_pad"`
	TopPadding   int    `toml:"top_padding"`
	BottomPad    int    `toml:"bottom_padding"`
	MaxInfoLines int    `toml:"max_info_lines"`
}

// Sheet contains sheet packing and cut-guide configuration.
type Sheet struct {
	Policy           string  `toml:"policy"` // "height" or "count"
	MaxHeightMM      float64 `toml:"max_height_mm"`
	DPI              int     `toml:"dpi"`
	FixedCount       int     `toml:"fixed_count"`
	LabelGapPx       int     `toml:"label_gap_px"`
	DrawDivider      bool    `toml:"draw_divider"`
	DividerThickness int     `toml:"divider_thickness"`
	DrawCutLine      bool    `toml:"draw_cut_line"`
	CutLineInset     int     `toml:"cut_line_inset"`
	CutLineWidth     int     `toml:"cut_line_width"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for shelfmark.
//
// Configuration sections by subsystem:
//   - Paths: catalog root, sticker output, report page, fonts, logs
//   - Site: base URL for QR target links
//   - Registry: closed category set and unknown-category reporting
//   - Label: artwork geometry and the sizing preset
//   - Sheet: packing policy, physical height budget, cut guides
//   - Logging: log format and level
//
// The struct is immutable after Load; components receive it by pointer and
// never mutate it.
type Config struct {
	Paths    Paths    `toml:"paths"`
	Site     Site     `toml:"site"`
	Registry Registry `toml:"registry"`
	Label    Label    `toml:"label"`
	Sheet    Sheet    `toml:"sheet"`
	Logging  Logging  `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/shelfmark/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second and third
// return values report the resolved path and whether a file existed there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("shelfmark.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the output and log directories.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.OutputDir, c.Paths.RegistryPageDir, c.Paths.LogDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// MaxSheetHeightPx converts the configured physical height budget to device
// pixels at the configured DPI.
func (c *Config) MaxSheetHeightPx() int {
	return int(math.Round(c.Sheet.MaxHeightMM / 25.4 * float64(c.Sheet.DPI)))
}

// OrderFilePath returns the location of the persisted stable print order.
func (c *Config) OrderFilePath() string {
	return filepath.Join(c.Paths.OutputDir, "label_order.json")
}

// PrintLogPath returns the location of the SQLite print history database.
func (c *Config) PrintLogPath() string {
	return filepath.Join(c.Paths.LogDir, "printlog.db")
}

// LockPath returns the location of the single-runner lock file.
func (c *Config) LockPath() string {
	return filepath.Join(c.Paths.LogDir, "shelfmark.lock")
}

// CreateSample writes the embedded sample configuration to target.
func CreateSample(target string) error {
	return os.WriteFile(target, []byte(sampleConfig), 0o644)
}

// ExpandPath resolves ~ prefixes and returns a cleaned absolute path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
