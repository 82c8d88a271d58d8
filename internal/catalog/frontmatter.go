package catalog

import (
	"strings"

	"gopkg.in/yaml.v3"
)

// frontMatter is the subset of page metadata the registry and label
// subsystems consume.
type frontMatter struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Short string `yaml:"short"`
	Use   string `yaml:"use"`
	QRURL string `yaml:"qr_url"`
}

// parseFrontMatter splits text into its YAML front matter and body. A leading
// BOM is stripped and CRLF line endings are tolerated. Missing, unterminated,
// or malformed front matter degrades to an empty record with the full text as
// body.
func parseFrontMatter(text string) (frontMatter, string) {
	text = strings.TrimPrefix(text, "\ufeff")

	var fm frontMatter
	lines := strings.Split(text, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != "---" {
		return fm, text
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(strings.TrimRight(lines[i], "\r")) == "---" {
			closing = i
			break
		}
	}
	if closing == -1 {
		return fm, text
	}

	block := strings.Join(lines[1:closing], "\n")
	body := strings.Join(lines[closing+1:], "\n")

	if err := yaml.Unmarshal([]byte(block), &fm); err != nil {
		return frontMatter{}, text
	}
	return fm, body
}
