package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/seqlab/azfclass/internal/marker"
)

// Condition requires a marker to have a specific tested status.
type Condition struct {
	Marker string `yaml:"marker"`
	Status string `yaml:"status"`
}

// Guideline holds the rule parameters that vary between guideline revisions.
// The decision-tree structure itself is fixed; only the AZFbc subtype
// discrimination has shifted across revisions (older protocols keyed it on
// sY116, the 2023 text names the sY105/sY121 boundary pattern), so that rule
// is data rather than code.
type Guideline struct {
	Revision string `yaml:"revision"`

	AZFbc struct {
		// P5DistalP1 and P4DistalP1 are condition lists; a subtype is
		// assigned when every condition in its list holds. Any referenced
		// marker left untested makes the subtype undetermined.
		P5DistalP1 []Condition `yaml:"p5_distal_p1"`
		P4DistalP1 []Condition `yaml:"p4_distal_p1"`
	} `yaml:"azfbc"`
}

// DefaultGuideline returns the EAA/EMQN 2023 rule set.
func DefaultGuideline() Guideline {
	var g Guideline
	g.Revision = "EAA/EMQN 2023"
	g.AZFbc.P5DistalP1 = []Condition{
		{Marker: marker.SY105, Status: "present"},
		{Marker: marker.SY121, Status: "absent"},
	}
	g.AZFbc.P4DistalP1 = []Condition{
		{Marker: marker.SY121, Status: "present"},
	}
	return g
}

// LoadGuideline reads a YAML guideline override from disk.
func LoadGuideline(path string) (Guideline, error) {
	var g Guideline
	data, err := os.ReadFile(path)
	if err != nil {
		return g, err
	}
	if err := yaml.Unmarshal(data, &g); err != nil {
		return g, fmt.Errorf("parse guideline %s: %w", path, err)
	}
	if err := g.validate(); err != nil {
		return g, fmt.Errorf("guideline %s: %w", path, err)
	}
	return g, nil
}

func (g Guideline) validate() error {
	if len(g.AZFbc.P5DistalP1) == 0 || len(g.AZFbc.P4DistalP1) == 0 {
		return fmt.Errorf("azfbc discriminator conditions must not be empty")
	}
	for _, conds := range [][]Condition{g.AZFbc.P5DistalP1, g.AZFbc.P4DistalP1} {
		for _, c := range conds {
			if _, ok := marker.Canonicalize(c.Marker); !ok {
				return fmt.Errorf("unrecognized marker %q", c.Marker)
			}
			if c.Status != "present" && c.Status != "absent" {
				return fmt.Errorf("marker %s: status must be present or absent, got %q", c.Marker, c.Status)
			}
		}
	}
	return nil
}

// want returns the Status a condition requires.
func (c Condition) want() marker.Status {
	if c.Status == "absent" {
		return marker.Absent
	}
	return marker.Present
}
