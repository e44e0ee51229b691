package classify

// Label is the classification outcome. The set is closed and fixed by the
// EAA/EMQN 2023 guideline; samples never produce labels outside it.
type Label string

const (
	NoDeletion          Label = "NO_DELETION_DETECTED"
	XXMaleOrYAbsence    Label = "46,XX_MALE_OR_COMPLETE_Y_CHROMOSOME_ABSENCE"
	MethodologicalError Label = "METHODOLOGICAL_ERROR"
	CompleteAZFa        Label = "COMPLETE_AZFA_DELETION"
	CompleteAZFbP5P1    Label = "COMPLETE_AZFB_DELETION_P5/PROXIMAL_P1"
	PartialAZFb         Label = "PARTIAL_AZFB_DELETION"
	AZFbUndetermined    Label = "AZFB_DELETION_SUBTYPE_UNDETERMINED"
	CompleteAZFcB2B4    Label = "COMPLETE_AZFC_DELETION_B2/B4"
	TerminalAZFc        Label = "TERMINAL_AZFC_DELETION"
	AZFcUndetermined    Label = "AZFC_DELETION_SUBTYPE_UNDETERMINED"
	GrGrDeletion        Label = "PARTIAL_AZFC_GR/GR_DELETION"
	CompleteAZFbcP5P1   Label = "COMPLETE_AZFBC_DELETION_P5/DISTAL_P1"
	CompleteAZFbcP4P1   Label = "COMPLETE_AZFBC_DELETION_P4/DISTAL_P1"
	AZFbcUndetermined   Label = "COMPLETE_AZFBC_DELETION_SUBTYPE_UNDETERMINED"
	CompleteAZFabc      Label = "COMPLETE_AZFABC_DELETION"

	// Unclassified covers deletion combinations outside the guideline tree,
	// e.g. AZFa together with exactly one other region. Manual review.
	Unclassified Label = "UNCLASSIFIED_DELETION_PATTERN"
)

// Prognosis is the TESE (testicular sperm extraction) outlook tied to a
// classification.
type Prognosis string

const (
	NotPossible         Prognosis = "not_possible"
	VirtuallyImpossible Prognosis = "virtually_impossible"
	Possible            Prognosis = "possible"
	FiftyPercent        Prognosis = "approximately_50_percent"
	MayBePositive       Prognosis = "may_be_positive"
	Undetermined        Prognosis = "undetermined"
	NotApplicable       Prognosis = "not_applicable"
)

// Result is the immutable outcome of classifying one panel.
type Result struct {
	Label     Label
	Prognosis Prognosis

	// Notes carries diagnostic observations that qualify the label without
	// changing it: missing extension markers, atypical boundary patterns,
	// follow-up recommendations.
	Notes []string
}
