package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"smartdna/internal/domain"
)

// Fixture es una evaluacion completa guardada en YAML.
type Fixture struct {
	Company string         `yaml:"company"`
	Rounds  []FixtureRound `yaml:"rounds"`
	Expect  *Expectation   `yaml:"expect,omitempty"`
}

type FixtureRound struct {
	Round      int    `yaml:"round"`
	Transcript string `yaml:"transcript"`
}

// Expectation son las comprobaciones opcionales del fixture.
type Expectation struct {
	LeadershipStyle string             `yaml:"leadership_style"`
	MinHubScores    map[string]float64 `yaml:"min_hub_scores"`
}

// LoadFixture lee y valida un fixture YAML.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "read fixture %s", path)
	}
	var f Fixture
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, eris.Wrapf(err, "parse fixture %s", path)
	}
	if strings.TrimSpace(f.Company) == "" {
		return nil, eris.Errorf("fixture %s: company is required", path)
	}
	if len(f.Rounds) == 0 {
		return nil, eris.Errorf("fixture %s: no rounds", path)
	}
	if f.Expect != nil {
		for name := range f.Expect.MinHubScores {
			if _, ok := domain.ParseHub(name); !ok {
				return nil, eris.Errorf("fixture %s: unknown hub %q", path, name)
			}
		}
	}
	return &f, nil
}

// Transcripts convierte las rondas al tipo de dominio.
func (f *Fixture) Transcripts() []domain.Transcript {
	out := make([]domain.Transcript, 0, len(f.Rounds))
	for _, r := range f.Rounds {
		out = append(out, domain.Transcript{Round: r.Round, Content: r.Transcript})
	}
	return out
}

// Check compara el perfil con las expectativas y devuelve los fallos.
func (e *Expectation) Check(p domain.DNAProfile) []string {
	if e == nil {
		return nil
	}
	var failures []string
	if e.LeadershipStyle != "" && !strings.EqualFold(e.LeadershipStyle, string(p.LeadershipStyle)) {
		failures = append(failures, fmt.Sprintf("leadership style: want %s, got %s", e.LeadershipStyle, p.LeadershipStyle))
	}
	for name, want := range e.MinHubScores {
		hub, _ := domain.ParseHub(name)
		if got := p.HubAlignments[hub]; got < want {
			failures = append(failures, fmt.Sprintf("hub %s: want >= %.1f, got %.1f", hub, want, got))
		}
	}
	sort.Strings(failures)
	return failures
}
