// Package catalog holds the static Career and Difficulty reference tables.
// Both are loaded once from embedded YAML and never mutated at runtime.
package catalog

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/careers.yaml data/difficulties.yaml
var dataFS embed.FS

// Label is a two-language display string.
type Label struct {
	EN string `yaml:"en"`
	ES string `yaml:"es"`
}

// Text returns the label for the given language tag, defaulting to English.
func (l Label) Text(lang string) string {
	if lang == "es" {
		return l.ES
	}
	return l.EN
}

var (
	careers      []Career
	difficulties []Difficulty
)

func init() {
	if err := load(); err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
}

func load() error {
	raw, err := dataFS.ReadFile("data/careers.yaml")
	if err != nil {
		return fmt.Errorf("read careers: %w", err)
	}
	var cf struct {
		Careers []Career `yaml:"careers"`
	}
	if err := yaml.Unmarshal(raw, &cf); err != nil {
		return fmt.Errorf("parse careers: %w", err)
	}
	careers = cf.Careers

	raw, err = dataFS.ReadFile("data/difficulties.yaml")
	if err != nil {
		return fmt.Errorf("read difficulties: %w", err)
	}
	var df struct {
		Difficulties []Difficulty `yaml:"difficulties"`
	}
	if err := yaml.Unmarshal(raw, &df); err != nil {
		return fmt.Errorf("parse difficulties: %w", err)
	}
	difficulties = df.Difficulties

	for _, d := range difficulties {
		t := d.ScoreThresholds
		if !(t.Poor < t.Average && t.Average < t.Good && t.Good < t.Excellent) {
			return fmt.Errorf("difficulty %q: thresholds must be strictly ascending", d.ID)
		}
	}
	return nil
}

// Careers returns the full career catalog in declaration order.
func Careers() []Career {
	return careers
}

// Difficulties returns the full difficulty catalog in declaration order.
func Difficulties() []Difficulty {
	return difficulties
}

// GetCareer looks up a career by its stable identifier.
func GetCareer(id string) (Career, error) {
	for _, c := range careers {
		if c.ID == id {
			return c, nil
		}
	}
	return Career{}, fmt.Errorf("unknown career: %q", id)
}

// GetDifficulty looks up a difficulty by its stable identifier.
func GetDifficulty(id string) (Difficulty, error) {
	for _, d := range difficulties {
		if d.ID == id {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("unknown difficulty: %q", id)
}
