package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/goccy/go-yaml/parser"

	"jonnyzzz.com/nerdfonts/logging"
)

const sectionKey = "nerdfonts"

// ErrSectionNotFound is returned by ReadSection for a file without a nerdfonts section
var ErrSectionNotFound = errors.New(sectionKey + " section not found")

// ReadSection reads and parses the nerdfonts section of a config file
func ReadSection(configPath string) (*Section, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("configuration file not found: %s", configPath)
		}
		return nil, fmt.Errorf("failed to read configuration file %s: %w", configPath, err)
	}

	var file struct {
		Nerdfonts *Section `yaml:"nerdfonts"`
	}
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML in %s: %w", configPath, err)
	}

	if file.Nerdfonts == nil {
		return nil, fmt.Errorf("%w in %s", ErrSectionNotFound, configPath)
	}
	return file.Nerdfonts, nil
}

// SaveSection creates the config file with the given section, or replaces the
// section of an existing file while preserving its comments and other sections
func SaveSection(configPath string, section *Section) error {
	if _, err := os.Stat(configPath); err != nil {
		if os.IsNotExist(err) {
			return createConfigFile(configPath, section)
		}
		return fmt.Errorf("cannot access %s: %w", configPath, err)
	}
	return updateConfigFile(configPath, section)
}

func createConfigFile(configPath string, section *Section) error {
	yamlBytes, err := yaml.Marshal(map[string]interface{}{
		sectionKey: section,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal section: %w", err)
	}

	header := "# config.yaml - configuration of the nerdfonts tool\n"
	header += "# Keys: base_url, format (zip or tar.xz), buffer_size, timeout, user_agent, refresh_font_cache\n\n"

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create configuration directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(header+string(yamlBytes)), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	logger := logging.GetLogger("config")
	logger.Info().Str("path", configPath).Msg("Created configuration file")
	return nil
}

func updateConfigFile(configPath string, section *Section) error {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to read existing configuration: %w", err)
	}

	file, err := parser.ParseBytes(data, parser.ParseComments)
	if err != nil {
		return fmt.Errorf("failed to parse existing configuration: %w", err)
	}

	path, err := yaml.PathString("$." + sectionKey)
	if err != nil {
		return fmt.Errorf("failed to create path: %w", err)
	}

	if _, err := path.FilterFile(file); err != nil {
		return appendSection(configPath, data, section)
	}

	newYaml, err := yaml.Marshal(section)
	if err != nil {
		return fmt.Errorf("failed to marshal new section: %w", err)
	}

	newFile, err := parser.ParseBytes(newYaml, 0)
	if err != nil {
		return fmt.Errorf("failed to parse new section: %w", err)
	}
	if len(newFile.Docs) == 0 || newFile.Docs[0].Body == nil {
		return fmt.Errorf("new section has no body")
	}

	if err := path.ReplaceWithNode(file, newFile.Docs[0].Body); err != nil {
		return fmt.Errorf("failed to replace %s section: %w", sectionKey, err)
	}

	if err := os.WriteFile(configPath, []byte(file.String()), 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	logger := logging.GetLogger("config")
	logger.Info().Str("path", configPath).Msg("Updated configuration file")
	return nil
}

func appendSection(configPath string, data []byte, section *Section) error {
	yamlBytes, err := yaml.Marshal(map[string]interface{}{
		sectionKey: section,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal section: %w", err)
	}

	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	data = append(data, yamlBytes...)

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write configuration file: %w", err)
	}

	logger := logging.GetLogger("config")
	logger.Info().Str("path", configPath).Msg("Added section to configuration file")
	return nil
}
