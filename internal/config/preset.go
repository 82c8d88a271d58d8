package config

// Preset groups the label sizing knobs that change together between the
// compact and large renderings.
type Preset struct {
	QRSize        int
	TitleFontSize float64
	LineFontSize  float64
	SmallFontSize float64
	LineSpacing   int
	TitleSpacing  int
}

var presets = map[string]Preset{
	"large": {
		QRSize:        140,
		TitleFontSize: 20,
		LineFontSize:  16,
		SmallFontSize: 13,
		LineSpacing:   20,
		TitleSpacing:  24,
	},
	"compact": {
		QRSize:        110,
		TitleFontSize: 17,
		LineFontSize:  15,
		SmallFontSize: 12,
		LineSpacing:   18,
		TitleSpacing:  22,
	},
}

// LabelPreset returns the sizing preset selected by label.preset.
func (c *Config) LabelPreset() Preset {
	if p, ok := presets[c.Label.Preset]; ok {
		return p
	}
	return presets[defaultPreset]
}
