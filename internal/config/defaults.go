package config

const (
	defaultCatalogDir      = "~/catalog/docs/components"
	defaultOutputDir       = "~/catalog/docs/components/stickers"
	defaultRegistryPageDir = "~/catalog/docs/registry"
	defaultFontsDir        = "~/catalog/fonts"
	defaultLogDir          = "~/.local/share/shelfmark/logs"
	defaultBaseURL         = "https://example.github.io/electronics-catalog/"
	defaultLogFormat       = "console"
	defaultLogLevel        = "info"
	defaultPreset          = "large"

	// T02-class thermal printer: 58mm paper, ~384 printable dots at 203 dpi.
	defaultMaxWidth     = 384
	defaultPaddingLeft  = 8
	defaultTextLeftGap  = 14
	defaultTextRightPad = 8
	defaultTopPadding   = 4
	defaultBottomPad    = 4
	defaultMaxInfoLines = 5

	defaultSheetPolicy      = "height"
	defaultMaxHeightMM      = 150
	defaultDPI              = 203
	defaultFixedCount       = 4
	defaultLabelGapPx       = 8
	defaultDividerThickness = 1
	defaultCutLineInset     = 6
	defaultCutLineWidth     = 3
)

// defaultCategories is the reference catalog's closed category set.
func defaultCategories() map[string]string {
	return map[string]string{
		"TS":  "Temperature sensors (DS18B20, PT100, MAX31865, etc.)",
		"ENV": "Environmental sensors (BME280/BMP280, SHT4x, TSL2561…)",
		"PS":  "Power supplies/chargers/regulators (buck, LDO, TP4056…)",
		"MC":  "Microcontrollers / dev boards (ESP32, RP2040…)",
		"RF":  "Radios / comms (LoRa, nRF24, ESP-Now modules…)",
		"IO":  "I/O expanders / ADC / DAC / level shifting",
		"AC":  "Actuators (fans, motors, servos, relays, MOSFET boards)",
		"CN":  "Connectors / cables / adapters",
		"PA":  "Passive Components (resistors, capacitors, potentiometers, trim pots)",
		"OT":  "Other / misc",
	}
}

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CatalogDir:      defaultCatalogDir,
			OutputDir:       defaultOutputDir,
			RegistryPageDir: defaultRegistryPageDir,
			FontsDir:        defaultFontsDir,
			LogDir:          defaultLogDir,
		},
		Site: Site{
			BaseURL: defaultBaseURL,
		},
		Registry: Registry{
			Categories:            defaultCategories(),
			WarnUnknownCategories: true,
		},
		Label: Label{
			Preset:       defaultPreset,
			MaxWidth:     defaultMaxWidth,
			PaddingLeft:  defaultPaddingLeft,
			TextLeftGap:  defaultTextLeftGap,
			TextRightPad: defaultTextRightPad,
			TopPadding:   defaultTopPadding,
			BottomPad:    defaultBottomPad,
			MaxInfoLines: defaultMaxInfoLines,
		},
		Sheet: Sheet{
			Policy:           defaultSheetPolicy,
			MaxHeightMM:      defaultMaxHeightMM,
			DPI:              defaultDPI,
			FixedCount:       defaultFixedCount,
			LabelGapPx:       defaultLabelGapPx,
			DrawDivider:      true,
			DividerThickness: defaultDividerThickness,
			DrawCutLine:      false,
			CutLineInset:     defaultCutLineInset,
			CutLineWidth:     defaultCutLineWidth,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
