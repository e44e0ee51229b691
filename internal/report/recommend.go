package report

import "github.com/seqlab/azfclass/internal/classify"

// recommendations maps each classification to its clinical follow-up advice.
// Static lookup; the wording follows the guideline's counseling sections.
var recommendations = map[classify.Label][]string{
	classify.NoDeletion: {
		"No Y-chromosomal microdeletion detected",
		"Consider other causes of infertility",
	},
	classify.XXMaleOrYAbsence: {
		"Karyotype confirmation recommended",
		"TESE not possible",
		"Genetic counseling recommended",
	},
	classify.MethodologicalError: {
		"Repeat the multiplex PCR analysis before reporting",
	},
	classify.CompleteAZFa: {
		"TESE not recommended (sperm retrieval not possible)",
		"Consider sperm donation or adoption",
	},
	classify.CompleteAZFbP5P1: {
		"TESE not recommended (sperm retrieval virtually impossible)",
		"Consider sperm donation or adoption",
	},
	classify.PartialAZFb: {
		"TESE may be attempted",
		"Genetic counseling mandatory (deletion transmitted to male offspring)",
	},
	classify.AZFbUndetermined: {
		"Complete extension analysis (sY1192) before TESE counseling",
	},
	classify.CompleteAZFcB2B4: {
		"TESE may be attempted (approximately 50% success rate)",
		"Genetic counseling mandatory (deletion transmitted to male offspring)",
		"Consider karyotype analysis to rule out 46,XY/45,X mosaicism",
	},
	classify.TerminalAZFc: {
		"Karyotype analysis strongly recommended",
		"Check for 46,XY/45,X mosaicism",
	},
	classify.AZFcUndetermined: {
		"Test sY160 to establish terminal status before counseling",
	},
	classify.GrGrDeletion: {
		"Population-specific risk factor for impaired spermatogenesis",
		"Increased risk for testicular germ cell tumors",
		"Will be transmitted to male offspring",
	},
	classify.CompleteAZFbcP5P1: {
		"TESE not recommended (sperm retrieval virtually impossible)",
		"Consider sperm donation or adoption",
	},
	classify.CompleteAZFbcP4P1: {
		"TESE may be attempted; counsel on low retrieval odds",
		"Genetic counseling mandatory",
	},
	classify.AZFbcUndetermined: {
		"Complete extension analysis to resolve the deletion subtype",
	},
	classify.CompleteAZFabc: {
		"TESE not recommended (sperm retrieval not possible)",
		"Karyotype analysis recommended",
		"Consider sperm donation or adoption",
	},
	classify.Unclassified: {
		"Manual review by a clinical geneticist required",
	},
}

// Recommendations returns the clinical advice for a label, or nil when the
// label carries none.
func Recommendations(label classify.Label) []string {
	return recommendations[label]
}
