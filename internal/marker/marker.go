// Package marker holds the STS marker vocabulary of the EAA/EMQN 2023
// guideline (Appendix B) and the Panel built from a sample's present/absent
// calls.
package marker

import "strings"

// Status is the tri-state test result for a single STS marker. A marker that
// was never tested is Unknown, which must never be conflated with Absent: an
// untested locus is not evidence of a deletion.
type Status int

const (
	Unknown Status = iota
	Present
	Absent
)

func (s Status) String() string {
	switch s {
	case Present:
		return "present"
	case Absent:
		return "absent"
	default:
		return "not_tested"
	}
}

// Canonical marker names.
const (
	SY14   = "sY14"
	ZFXZFY = "ZFX/ZFY"

	SY84  = "sY84"
	SY86  = "sY86"
	SY127 = "sY127"
	SY134 = "sY134"
	SY254 = "sY254"
	SY255 = "sY255"

	SY82   = "sY82"
	SY1064 = "sY1064"
	SY1065 = "sY1065"
	SY1182 = "sY1182"
	SY88   = "sY88"
	SY105  = "sY105"
	SY121  = "sY121"
	SY1224 = "sY1224"
	SY1192 = "sY1192"
	SY153  = "sY153"
	SY160  = "sY160"
	SY1291 = "sY1291"
	SY1191 = "sY1191"

	// SY116 is the historical AZFbc P4/P5 discriminator retained for
	// guideline configs that still key on it.
	SY116 = "sY116"
)

// Region names the AZF interval a basic-marker pair probes.
type Region string

const (
	AZFa Region = "AZFa"
	AZFb Region = "AZFb"
	AZFc Region = "AZFc"
)

// Regions in proximal-to-distal order.
var Regions = []Region{AZFa, AZFb, AZFc}

var (
	controlMarkers = []string{SY14, ZFXZFY}

	basicMarkers = map[Region][]string{
		AZFa: {SY84, SY86},
		AZFb: {SY127, SY134},
		AZFc: {SY254, SY255},
	}

	extensionMarkers = []string{
		SY82, SY1064, SY1065, SY1182, SY88,
		SY105, SY121, SY1224, SY1192, SY153,
		SY160,
		SY1291, SY1191,
	}

	// ExpectedPresent lists markers a structurally normal Y chromosome
	// retains; a tested-absent call on one of these contradicts a
	// no-deletion verdict.
	ExpectedPresent = []string{SY14, SY82, SY88, SY105, SY153, SY160, SY1191, ZFXZFY}
)

// synonyms maps lowercased alternate spellings to canonical names. Static by
// design: clinical identifiers are matched exactly, never fuzzily.
var synonyms = map[string]string{
	"zfx/y": ZFXZFY,
}

// canonical maps every lowercased recognized name to its canonical form.
var canonical = map[string]string{}

func init() {
	all := make([]string, 0, 24)
	all = append(all, controlMarkers...)
	for _, r := range Regions {
		all = append(all, basicMarkers[r]...)
	}
	all = append(all, extensionMarkers...)
	all = append(all, SY116)
	for _, name := range all {
		canonical[strings.ToLower(name)] = name
	}
	for alias, name := range synonyms {
		canonical[alias] = name
	}
}

// Canonicalize normalizes a raw marker name to its canonical form. The second
// return is false when the name is not in the guideline vocabulary.
func Canonicalize(raw string) (string, bool) {
	name, ok := canonical[strings.ToLower(strings.TrimSpace(raw))]
	return name, ok
}

// ControlMarkers returns the unconditional control set {sY14, ZFX/ZFY}.
func ControlMarkers() []string {
	return append([]string(nil), controlMarkers...)
}

// BasicMarkers returns the first-step marker pair for a region.
func BasicMarkers(r Region) []string {
	return append([]string(nil), basicMarkers[r]...)
}

// AllBasicMarkers returns the six first-step markers in region order.
func AllBasicMarkers() []string {
	out := make([]string, 0, 6)
	for _, r := range Regions {
		out = append(out, basicMarkers[r]...)
	}
	return out
}

// ExtensionMarkers returns the second-step markers. These are only required
// once the basic analysis indicates a deletion in the corresponding region.
func ExtensionMarkers() []string {
	return append([]string(nil), extensionMarkers...)
}

// AllRequired returns every marker Appendix B expects a complete analysis to
// test: controls, basic and extension sets.
func AllRequired() []string {
	out := ControlMarkers()
	out = append(out, AllBasicMarkers()...)
	out = append(out, extensionMarkers...)
	return out
}
