package catalog

import (
	"regexp"

	"gopkg.in/yaml.v3"
)

// printerMeta is an optional HTML-comment block inside a page body that
// overrides label content:
//
//	<!-- printer_meta:
//	title: Short printer title
//	lines: ["3.3V only", "I2C addr 0x76"]
//	qr_url: https://example.test/override/
//	-->
//	<!-- /printer_meta -->
type printerMeta struct {
	Title string   `yaml:"title"`
	QRURL string   `yaml:"qr_url"`
	Lines []string `yaml:"lines"`
}

var printerMetaRE = regexp.MustCompile(`(?s)<!--\s*printer_meta:(.*?)-->\s*<!--\s*/printer_meta\s*-->`)

// parsePrinterMeta extracts the printer_meta block from a page body.
// A missing or malformed block yields the zero value.
func parsePrinterMeta(body string) printerMeta {
	var meta printerMeta
	m := printerMetaRE.FindStringSubmatch(body)
	if m == nil {
		return meta
	}
	if err := yaml.Unmarshal([]byte(m[1]), &meta); err != nil {
		return printerMeta{}
	}
	return meta
}
