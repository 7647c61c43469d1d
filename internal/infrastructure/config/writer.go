package config

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var sectionRegex = regexp.MustCompile(`^(\s*)\[([^\]]+)\]\s*$`)

// Marshal encodes cfg as TOML with sections sorted alphabetically.
func Marshal(cfg *Config) ([]byte, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is nil")
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.SetIndentTables(true)

	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return []byte(sortTOMLSections(buf.String())), nil
}

// WriteConfigOrdered writes the configuration to disk with consistent ordering.
// - Struct fields are written in definition order (go-toml v2 behavior)
// - TOML sections are sorted alphabetically for deterministic output
func WriteConfigOrdered(cfg *Config, path string) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// sortTOMLSections sorts TOML content so sections are in alphabetical order.
// Top-level keys stay first.
func sortTOMLSections(content string) string {
	type section struct {
		header string
		lines  []string
	}

	var sections []section
	var current *section
	var preamble []string

	for _, line := range strings.Split(content, "\n") {
		if match := sectionRegex.FindStringSubmatch(line); match != nil {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &section{header: match[2], lines: []string{line}}
			continue
		}
		if current != nil {
			current.lines = append(current.lines, line)
		} else {
			preamble = append(preamble, line)
		}
	}
	if current != nil {
		sections = append(sections, *current)
	}

	sort.SliceStable(sections, func(i, j int) bool {
		return sections[i].header < sections[j].header
	})

	var result strings.Builder
	for _, line := range preamble {
		if strings.TrimSpace(line) == "" {
			continue
		}
		result.WriteString(line)
		result.WriteString("\n")
	}
	for _, sec := range sections {
		if result.Len() > 0 && !strings.HasSuffix(result.String(), "\n\n") {
			result.WriteString("\n")
		}
		for _, line := range sec.lines {
			if strings.TrimSpace(line) == "" {
				continue
			}
			result.WriteString(line)
			result.WriteString("\n")
		}
	}

	output := strings.TrimRight(result.String(), "\n")
	if output != "" {
		output += "\n"
	}
	return output
}
