package classify

import (
	"fmt"
	"strings"
)

// MissingMarkersError means one or more control or basic-stage markers were
// not tested. Classification cannot proceed; every missing marker is named at
// once so the input can be fixed in a single pass.
type MissingMarkersError struct {
	Markers []string
}

func (e *MissingMarkersError) Error() string {
	return fmt.Sprintf("required markers not tested: %s", strings.Join(e.Markers, ", "))
}

// ControlFailureError means the ZFX/ZFY internal control is absent. That is a
// technical failure of the assay or a sample problem, not a biological
// finding, so no classification is attempted.
type ControlFailureError struct {
	Marker string
}

func (e *ControlFailureError) Error() string {
	return fmt.Sprintf("control marker %s absent: technical failure or sample issue, results cannot be validated", e.Marker)
}
