package service

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/skyglass/weather-widget/internal/domain"
)

// DefaultBackgroundURL is applied when nothing more specific is configured
// or when a chosen image fails to load.
const DefaultBackgroundURL = "https://images.unsplash.com/photo-1549880338-65ddcdfd017b?ixlib=rb-1.2.1&q=80&w=1080"

// BackgroundEntry is either a single URL for both day and night, or a
// day/night pair. In YAML it is written as a scalar or as {day, night}.
type BackgroundEntry struct {
	URL   string `yaml:"url,omitempty"`
	Day   string `yaml:"day,omitempty"`
	Night string `yaml:"night,omitempty"`
}

// UnmarshalYAML accepts both the scalar and the mapping form
func (e *BackgroundEntry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		e.URL = value.Value
		return nil
	}

	type plain BackgroundEntry
	var p plain
	if err := value.Decode(&p); err != nil {
		return err
	}
	*e = BackgroundEntry(p)
	return nil
}

// resolve picks the day/night variant, else the flat URL
func (e BackgroundEntry) resolve(isDaytime bool) (string, bool) {
	variant := e.Night
	if isDaytime {
		variant = e.Day
	}
	if variant != "" {
		return variant, true
	}
	if e.URL != "" {
		return e.URL, true
	}
	return "", false
}

// BackgroundTable maps normalized condition categories to background images
type BackgroundTable struct {
	Default     string                                   `yaml:"default"`
	Backgrounds map[domain.BackgroundKey]BackgroundEntry `yaml:"backgrounds"`
}

// DefaultBackgrounds returns the built-in hand-curated table
func DefaultBackgrounds() *BackgroundTable {
	const mist = "https://images.unsplash.com/photo-1520146059530-9b48f657e23a?ixlib=rb-1.2.1&q=80&w=1080"

	return &BackgroundTable{
		Default: DefaultBackgroundURL,
		Backgrounds: map[domain.BackgroundKey]BackgroundEntry{
			domain.BackgroundClear: {
				Day:   "https://images.unsplash.com/photo-1558231908-4187e5b22079?ixlib=rb-1.2.1&q=80&w=1080",
				Night: "https://images.unsplash.com/photo-1475274058133-5fb9019277d3?ixlib=rb-1.2.1&q=80&w=1080",
			},
			domain.BackgroundClouds: {
				Day:   "https://images.unsplash.com/photo-1502444330042-d1a2933758a9?ixlib=rb-1.2.1&q=80&w=1080",
				Night: "https://images.unsplash.com/photo-1510443906660-c4bfd0a2f44c?ixlib=rb-1.2.1&q=80&w=1080",
			},
			domain.BackgroundRain: {
				Day:   "https://images.unsplash.com/photo-1549880338-65ddcdfd017b?ixlib=rb-1.2.1&q=80&w=1080",
				Night: "https://images.unsplash.com/photo-1521406606085-f12b62a63750?ixlib=rb-1.2.1&q=80&w=1080",
			},
			domain.BackgroundThunderstorm: {URL: "https://images.unsplash.com/photo-1550401874-845231792942?ixlib=rb-1.2.1&q=80&w=1080"},
			domain.BackgroundSnow:         {URL: "https://images.unsplash.com/photo-1517299321689-526487593c6f?ixlib=rb-1.2.1&q=80&w=1080"},
			domain.BackgroundMist:         {URL: mist},
		},
	}
}

// LoadBackgrounds reads a background table from a YAML file
func LoadBackgrounds(path string) (*BackgroundTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("backgrounds: failed to read %s: %w", path, err)
	}

	var table BackgroundTable
	if err := yaml.Unmarshal(data, &table); err != nil {
		return nil, fmt.Errorf("backgrounds: failed to parse %s: %w", path, err)
	}

	if err := table.validate(); err != nil {
		return nil, fmt.Errorf("backgrounds: invalid table %s: %w", path, err)
	}
	return &table, nil
}

func (t *BackgroundTable) validate() error {
	if t.Default == "" {
		return fmt.Errorf("default background URL is required")
	}
	for key, entry := range t.Backgrounds {
		if !key.Valid() {
			return fmt.Errorf("unknown background key %q", key)
		}
		if entry.URL == "" && entry.Day == "" && entry.Night == "" {
			return fmt.Errorf("background %q has no URL", key)
		}
	}
	return nil
}

// URL selects the image for key: day/night split if available, else the
// entry's single URL, else the table default.
func (t *BackgroundTable) URL(key domain.BackgroundKey, isDaytime bool) string {
	if entry, ok := t.Backgrounds[key]; ok {
		if u, ok := entry.resolve(isDaytime); ok {
			return u
		}
	}
	return t.Default
}

// NormalizeCondition maps a provider condition category to a background key.
// Drizzle shares Rain's images; Fog and Haze share Mist's.
func NormalizeCondition(category string) domain.BackgroundKey {
	// a Caser keeps state, so one per call
	normalized := cases.Title(language.English).String(strings.TrimSpace(category))

	switch normalized {
	case domain.ConditionDrizzle:
		return domain.BackgroundRain
	case domain.ConditionFog, domain.ConditionHaze:
		return domain.BackgroundMist
	}

	key := domain.BackgroundKey(normalized)
	if key.Valid() {
		return key
	}
	return domain.DefaultBackgroundKey
}
