// Package report renders classification results for the terminal.
package report

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/seqlab/azfclass/internal/classify"
	"github.com/seqlab/azfclass/internal/marker"
)

// Style palette
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#8B5CF6"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#14B8A6"))

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F97316"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E"))
)

// Plain renders the terse single-line output: the label, with the TESE
// prognosis appended when it carries information.
func Plain(res classify.Result) string {
	if res.Prognosis == classify.NotApplicable || res.Prognosis == "" {
		return string(res.Label)
	}
	return fmt.Sprintf("%s (TESE: %s)", res.Label, res.Prognosis)
}

// Render produces the full clinical report: classification, marker summary,
// recommendations, notes and untested-marker warnings.
func Render(p *marker.Panel, res classify.Result, revision string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Y-CHROMOSOMAL MICRODELETION ANALYSIS REPORT"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Report ID: %s", uuid.NewString())))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Guideline: %s", revision)))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("CLASSIFICATION"))
	b.WriteString("\n  " + labelStyle.Render(string(res.Label)) + "\n")
	if res.Prognosis != "" {
		b.WriteString(fmt.Sprintf("  TESE prognosis: %s\n", res.Prognosis))
	}
	b.WriteString("\n")

	writeMarkerSummary(&b, p)
	writeRecommendations(&b, res.Label)
	writeNotes(&b, p, res)
	writeUntested(&b, p)

	return b.String()
}

func writeMarkerSummary(b *strings.Builder, p *marker.Panel) {
	b.WriteString(sectionStyle.Render("MARKER SUMMARY"))
	b.WriteString("\n  Control:\n")
	for _, m := range marker.ControlMarkers() {
		writeMarkerLine(b, p, m, "    ")
	}
	for _, r := range marker.Regions {
		fmt.Fprintf(b, "  %s:\n", r)
		for _, m := range marker.BasicMarkers(r) {
			writeMarkerLine(b, p, m, "    ")
		}
	}
	b.WriteString("  Extension:\n")
	for _, m := range marker.ExtensionMarkers() {
		if p.Has(m) {
			writeMarkerLine(b, p, m, "    ")
		}
	}
	b.WriteString("\n")
}

func writeMarkerLine(b *strings.Builder, p *marker.Panel, m, indent string) {
	st := p.StatusOf(m)
	line := fmt.Sprintf("%s%-8s %s", indent, m, st)
	if st == marker.Unknown {
		line = dimStyle.Render(line)
	}
	b.WriteString(line + "\n")
}

func writeRecommendations(b *strings.Builder, label classify.Label) {
	recs := Recommendations(label)
	if len(recs) == 0 {
		return
	}
	b.WriteString(sectionStyle.Render("CLINICAL RECOMMENDATIONS"))
	b.WriteString("\n")
	for _, r := range recs {
		b.WriteString("  - " + r + "\n")
	}
	b.WriteString("\n")
}

func writeNotes(b *strings.Builder, p *marker.Panel, res classify.Result) {
	notes := append(append([]string(nil), res.Notes...), p.Notes...)
	if len(notes) == 0 {
		return
	}
	b.WriteString(sectionStyle.Render("NOTES"))
	b.WriteString("\n")
	for _, n := range notes {
		b.WriteString("  - " + n + "\n")
	}
	b.WriteString("\n")
}

func writeUntested(b *strings.Builder, p *marker.Panel) {
	missing := p.Missing(marker.AllRequired())
	if len(missing) == 0 {
		return
	}
	b.WriteString(warnStyle.Render("WARNING: markers not tested"))
	b.WriteString("\n")
	for _, m := range missing {
		b.WriteString("  - " + m + "\n")
	}
	b.WriteString(dimStyle.Render("Complete testing is recommended for accurate diagnosis."))
	b.WriteString("\n")
}
