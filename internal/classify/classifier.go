// Package classify implements the EAA/EMQN 2023 decision tree for
// Y-chromosomal AZF microdeletion classification.
package classify

import (
	"strings"

	"go.uber.org/zap"

	"github.com/seqlab/azfclass/internal/marker"
)

// Classifier walks the guideline decision tree over a marker panel. It holds
// no per-sample state; the same Classifier may classify any number of panels.
type Classifier struct {
	gl  Guideline
	log *zap.Logger
}

// Option configures a Classifier.
type Option func(*Classifier)

// WithLogger installs a logger for rule tracing. Tracing never changes the
// classification.
func WithLogger(l *zap.Logger) Option {
	return func(c *Classifier) { c.log = l }
}

// New returns a Classifier for the given guideline revision.
func New(gl Guideline, opts ...Option) *Classifier {
	c := &Classifier{gl: gl, log: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Classify evaluates the decision tree top-down and returns exactly one
// Result. Rules are ordered by guideline priority; the first terminal rule
// that matches wins. The panel is read, never written.
func (c *Classifier) Classify(p *marker.Panel) (Result, error) {
	// Control markers are required unconditionally.
	if missing := p.Missing(marker.ControlMarkers()); len(missing) > 0 {
		missing = append(missing, p.Missing(marker.AllBasicMarkers())...)
		return Result{}, &MissingMarkersError{Markers: missing}
	}

	// ZFX/ZFY is the internal amplification control; its absence means the
	// assay itself failed.
	if p.StatusOf(marker.ZFXZFY) == marker.Absent {
		return Result{}, &ControlFailureError{Marker: marker.ZFXZFY}
	}

	// Step 1: sY14 (SRY) absent with an intact autosomal/X control signals
	// a 46,XX male or complete Y absence, whatever the other markers say.
	if p.StatusOf(marker.SY14) == marker.Absent {
		c.log.Debug("control rule matched", zap.String("label", string(XXMaleOrYAbsence)))
		return Result{Label: XXMaleOrYAbsence, Prognosis: NotApplicable}, nil
	}

	// Basic markers are required for any deletion/no-deletion verdict.
	if missing := p.Missing(marker.AllBasicMarkers()); len(missing) > 0 {
		return Result{}, &MissingMarkersError{Markers: missing}
	}

	// Step 2: sY254 and sY255 both sit inside the DAZ cluster; a true AZFc
	// deletion removes both. Discordance is assay failure, not biology.
	if p.StatusOf(marker.SY254) != p.StatusOf(marker.SY255) {
		c.log.Debug("methodological discordance", zap.String("sY254", p.StatusOf(marker.SY254).String()),
			zap.String("sY255", p.StatusOf(marker.SY255).String()))
		return Result{
			Label:     MethodologicalError,
			Prognosis: NotApplicable,
			Notes:     []string{"sY254 and sY255 discordant; repeat analysis before reporting"},
		}, nil
	}

	// Step 3: region deletion booleans from the basic marker pairs.
	azfa := c.regionDeleted(p, marker.AZFa)
	azfb := c.regionDeleted(p, marker.AZFb)
	azfc := c.regionDeleted(p, marker.AZFc)
	c.log.Debug("basic analysis", zap.Bool("AZFa", azfa), zap.Bool("AZFb", azfb), zap.Bool("AZFc", azfc))

	switch {
	case azfa && azfb && azfc:
		return Result{
			Label:     CompleteAZFabc,
			Prognosis: NotPossible,
			Notes:     []string{"associated karyotype abnormalities common; karyotype analysis recommended"},
		}, nil
	case azfb && azfc:
		return c.classifyAZFbc(p), nil
	case azfa && !azfb && !azfc:
		return c.classifyAZFa(p), nil
	case azfb && !azfa && !azfc:
		return c.classifyAZFb(p), nil
	case azfc && !azfa && !azfb:
		return c.classifyAZFc(p), nil
	case azfa || azfb || azfc:
		// AZFa combined with a single other region has no guideline
		// category; NAHR does not produce it, so flag for manual review.
		return Result{
			Label:     Unclassified,
			Prognosis: Undetermined,
			Notes:     []string{"deletion pattern outside the guideline decision tree; manual review required"},
		}, nil
	}

	// No complete deletion. gr/gr is a partial AZFc deletion and can only be
	// called when the AZFc basic markers are retained, so it is checked here
	// and never after a complete AZFc verdict.
	if p.StatusOf(marker.SY1291) == marker.Absent && p.StatusOf(marker.SY1191) == marker.Present {
		c.log.Debug("gr/gr pattern matched")
		return Result{
			Label:     GrGrDeletion,
			Prognosis: NotApplicable,
			Notes: []string{
				"population-specific risk factor for impaired spermatogenesis",
				"increased germ-cell-tumor risk; transmitted to male offspring",
			},
		}, nil
	}

	res := Result{Label: NoDeletion, Prognosis: NotApplicable}
	if inconsistent := expectedPresentButAbsent(p); len(inconsistent) > 0 {
		res.Notes = append(res.Notes,
			"inconsistent data: expected-present markers tested absent: "+strings.Join(inconsistent, ", "))
	}
	return res, nil
}

// regionDeleted reports whether both basic markers of a region are absent.
// Callers guarantee the basic markers are in the panel.
func (c *Classifier) regionDeleted(p *marker.Panel, r marker.Region) bool {
	for _, m := range marker.BasicMarkers(r) {
		if p.StatusOf(m) != marker.Absent {
			return false
		}
	}
	return true
}

// classifyAZFbc discriminates the combined AZFb+AZFc deletion subtype using
// the guideline's boundary conditions.
func (c *Classifier) classifyAZFbc(p *marker.Panel) Result {
	p5Match, p5Unknown := evalConditions(p, c.gl.AZFbc.P5DistalP1)
	p4Match, p4Unknown := evalConditions(p, c.gl.AZFbc.P4DistalP1)

	var res Result
	switch {
	case p5Unknown || p4Unknown:
		res = Result{
			Label:     AZFbcUndetermined,
			Prognosis: Undetermined,
			Notes:     []string{"extension analysis required to distinguish P5/distal P1 from P4/distal P1"},
		}
	case p5Match:
		res = Result{Label: CompleteAZFbcP5P1, Prognosis: VirtuallyImpossible}
	case p4Match:
		res = Result{Label: CompleteAZFbcP4P1, Prognosis: MayBePositive}
	default:
		res = Result{
			Label:     AZFbcUndetermined,
			Prognosis: Undetermined,
			Notes:     []string{"boundary markers match neither P5 nor P4 pattern; manual review recommended"},
		}
	}

	if p.StatusOf(marker.SY160) == marker.Absent {
		res.Notes = append(res.Notes, "sY160 absent: deletion extends into the terminal region")
	}
	c.log.Debug("AZFbc subtype", zap.String("label", string(res.Label)))
	return res
}

// classifyAZFa handles the isolated AZFa deletion. The guideline treats every
// confirmed complete AZFa deletion the same for prognosis, so boundary
// findings only qualify the result.
func (c *Classifier) classifyAZFa(p *marker.Panel) Result {
	res := Result{Label: CompleteAZFa, Prognosis: NotPossible}

	proxTested := p.Has(marker.SY82) && p.Has(marker.SY1064)
	distTested := p.Has(marker.SY88) && (p.Has(marker.SY1065) || p.Has(marker.SY1182))
	if !proxTested || !distTested {
		res.Notes = append(res.Notes, "extension analysis recommended to confirm deletion boundaries")
		return res
	}

	proxTypical := p.StatusOf(marker.SY82) == marker.Present && p.StatusOf(marker.SY1064) == marker.Absent
	distTypical := p.StatusOf(marker.SY88) == marker.Present &&
		(p.StatusOf(marker.SY1065) == marker.Absent || p.StatusOf(marker.SY1182) == marker.Absent)
	if !proxTypical || !distTypical {
		res.Notes = append(res.Notes, "atypical deletion boundary pattern; confirm by alternative method")
	}
	return res
}

// classifyAZFb handles the isolated AZFb deletion. sY1192 carries the TESE
// prognosis per the 2023 guideline update.
func (c *Classifier) classifyAZFb(p *marker.Panel) Result {
	var res Result
	switch p.StatusOf(marker.SY1192) {
	case marker.Absent:
		res = Result{Label: CompleteAZFbP5P1, Prognosis: VirtuallyImpossible}
	case marker.Present:
		res = Result{Label: PartialAZFb, Prognosis: Possible}
	default:
		res = Result{
			Label:     AZFbUndetermined,
			Prognosis: Undetermined,
			Notes:     []string{"sY1192 not tested: mandatory for TESE prognosis per the 2023 guideline update"},
		}
	}

	// sY1224 is variable across AZFb deletions; record it when tested.
	if st := p.StatusOf(marker.SY1224); st != marker.Unknown {
		res.Notes = append(res.Notes, "sY1224 "+st.String()+" (variable marker)")
	}
	c.log.Debug("AZFb subtype", zap.String("label", string(res.Label)))
	return res
}

// classifyAZFc handles the isolated AZFc deletion. sY160 separates the
// common b2/b4 deletion from a terminal deletion.
func (c *Classifier) classifyAZFc(p *marker.Panel) Result {
	switch p.StatusOf(marker.SY160) {
	case marker.Present:
		return Result{Label: CompleteAZFcB2B4, Prognosis: FiftyPercent}
	case marker.Absent:
		return Result{
			Label:     TerminalAZFc,
			Prognosis: Undetermined,
			Notes:     []string{"requires karyotype analysis for 46,XY/45,X mosaicism"},
		}
	default:
		return Result{
			Label:     AZFcUndetermined,
			Prognosis: Undetermined,
			Notes:     []string{"sY160 not tested: terminal status undetermined"},
		}
	}
}

// evalConditions checks a condition list against the panel. matched is true
// when every condition holds; unknown is true when any referenced marker was
// not tested (in which case matched is meaningless and must not be used).
func evalConditions(p *marker.Panel, conds []Condition) (matched, unknown bool) {
	matched = true
	for _, cond := range conds {
		name, _ := marker.Canonicalize(cond.Marker)
		st := p.StatusOf(name)
		if st == marker.Unknown {
			return false, true
		}
		if st != cond.want() {
			matched = false
		}
	}
	return matched, false
}

// expectedPresentButAbsent lists markers that should be retained on a
// structurally normal Y but were tested absent.
func expectedPresentButAbsent(p *marker.Panel) []string {
	var out []string
	for _, m := range marker.ExpectedPresent {
		if p.StatusOf(m) == marker.Absent {
			out = append(out, m)
		}
	}
	return out
}
