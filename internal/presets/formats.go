package presets

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// fileLevel is the on-disk shape shared by the YAML and TOML formats.
type fileLevel struct {
	ID          string   `yaml:"id" toml:"id"`
	Name        string   `yaml:"name" toml:"name"`
	Description string   `yaml:"description,omitempty" toml:"description"`
	Rows        []string `yaml:"rows" toml:"rows"`
}

func (f fileLevel) preset() Preset {
	name := f.Name
	if name == "" {
		name = f.ID
	}
	return Preset{
		ID:          f.ID,
		Name:        name,
		Description: f.Description,
		Rows:        f.Rows,
	}
}

// ParseYAML parses a YAML preset file.
func ParseYAML(data []byte) (Preset, error) {
	var f fileLevel
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Preset{}, fmt.Errorf("yaml unmarshal: %w", err)
	}
	return f.preset(), nil
}

// ParseTOML parses a TOML preset file.
func ParseTOML(data []byte) (Preset, error) {
	var f fileLevel
	if err := toml.Unmarshal(data, &f); err != nil {
		return Preset{}, fmt.Errorf("toml unmarshal: %w", err)
	}
	return f.preset(), nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml", ".toml"}
}

// parseByExtension routes to the correct parser.
func parseByExtension(data []byte, ext string) (Preset, error) {
	switch ext {
	case ".yaml", ".yml":
		return ParseYAML(data)
	case ".toml":
		return ParseTOML(data)
	default:
		return Preset{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
