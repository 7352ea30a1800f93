// Package theme loads the flavour text shown around each round.
//
// The table is read once at startup from YAML and handed to whoever needs it;
// nothing in it changes afterwards.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/robalobadob/puzzleforge/assets"
)

// Theme is the text set for one theme.
type Theme struct {
	Name        string `yaml:"name"`
	Intro       string `yaml:"intro"`
	RoundLabel  string `yaml:"round_label"`
	HintLabel   string `yaml:"hint_label"`
	SuccessText string `yaml:"success_text"`
	FailText    string `yaml:"fail_text"`
}

// Table maps theme keys to their text.
type Table struct {
	defaultKey string
	themes     map[string]Theme
}

type document struct {
	Default string           `yaml:"default"`
	Themes  map[string]Theme `yaml:"themes"`
}

// Parse decodes a theme YAML document.
func Parse(data []byte) (Table, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Table{}, fmt.Errorf("parse themes yaml: %w", err)
	}
	if len(doc.Themes) == 0 {
		return Table{}, errors.New("themes yaml: no themes defined")
	}
	themes := make(map[string]Theme, len(doc.Themes))
	for k, v := range doc.Themes {
		themes[strings.ToLower(k)] = v
	}
	def := strings.ToLower(doc.Default)
	if _, ok := themes[def]; !ok {
		return Table{}, fmt.Errorf("themes yaml: default theme %q not defined", doc.Default)
	}
	return Table{defaultKey: def, themes: themes}, nil
}

// LoadEmbedded parses the table compiled into the binary.
func LoadEmbedded() (Table, error) {
	data, err := assets.Read(assets.ThemesFile)
	if err != nil {
		return Table{}, fmt.Errorf("read themes: %w", err)
	}
	return Parse(data)
}

// Default is the key used when none is chosen.
func (t Table) Default() string { return t.defaultKey }

// Keys lists the theme keys in a stable order.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t.themes))
	for k := range t.themes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether key names a theme.
func (t Table) Has(key string) bool {
	_, ok := t.themes[strings.ToLower(key)]
	return ok
}

// Get returns the theme for key, or the default theme if key is unknown.
func (t Table) Get(key string) Theme {
	if th, ok := t.themes[strings.ToLower(key)]; ok {
		return th
	}
	return t.themes[t.defaultKey]
}
