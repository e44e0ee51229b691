package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/seqlab/azfclass/internal/classify"
	"github.com/seqlab/azfclass/internal/marker"
	"github.com/seqlab/azfclass/internal/report"
)

// runClassify reads the marker file, builds the panel and either validates
// completeness or walks the classification tree.
func runClassify(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	validateOnly, _ := cmd.Flags().GetBool("validate-only")
	guidelinePath, _ := cmd.Flags().GetString("guideline")
	debug, _ := cmd.Flags().GetBool("debug")

	log := zap.NewNop()
	if debug {
		var err error
		if log, err = zap.NewDevelopment(); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer log.Sync() //nolint:errcheck
	}

	rows, err := marker.ReadFile(args[0])
	if err != nil {
		return err
	}
	panel, err := marker.Build(rows)
	if err != nil {
		return fmt.Errorf("parse markers: %w", err)
	}
	log.Debug("panel built", zap.Int("markers", panel.Len()))

	if validateOnly {
		return validateCompleteness(cmd, panel)
	}

	gl := classify.DefaultGuideline()
	if guidelinePath != "" {
		if gl, err = classify.LoadGuideline(guidelinePath); err != nil {
			return err
		}
		log.Debug("guideline override loaded", zap.String("revision", gl.Revision))
	}

	res, err := classify.New(gl, classify.WithLogger(log)).Classify(panel)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if verbose {
		fmt.Fprint(out, report.Render(panel, res, gl.Revision))
	} else {
		fmt.Fprintln(out, report.Plain(res))
	}
	return nil
}

// validateCompleteness prints every guideline marker missing from the panel.
func validateCompleteness(cmd *cobra.Command, panel *marker.Panel) error {
	out := cmd.OutOrStdout()
	missing := panel.Missing(marker.AllRequired())
	if len(missing) == 0 {
		fmt.Fprintln(out, "All required markers are present.")
		return nil
	}
	fmt.Fprintf(out, "Missing %d required markers:\n", len(missing))
	for _, m := range missing {
		fmt.Fprintf(out, "  - %s\n", m)
	}
	return fmt.Errorf("%d required markers missing", len(missing))
}
