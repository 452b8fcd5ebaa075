package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gogyro/internal/diagram"
	"github.com/alexiusacademia/gogyro/internal/logger"
)

var (
	periodBV       float64
	periodAge      float64
	periodRelation string
)

var periodCmd = &cobra.Command{
	Use:   "period",
	Short: "Rotation period from B-V color and age",
	Long: `Calculate the rotation period (days) expected for a star of
a given B-V color and age (Myr).

Relations:
  angus2015  P = A^0.55 * 0.4 * (B-V - 0.45)^0.31
  mm09e2     P = sqrt(A) * sqrt(B-V - 0.5) - 0.15 * (B-V - 0.5)
  mm09e3     P = A^0.52 * 0.77 * (B-V - 0.4)^0.6

Colors bluer than a relation's limit give an undefined period.

Examples:
  # The Sun
  gogyro period --bv 0.65 --age 4600

  # Compare every relation
  gogyro period --bv 0.9 --age 625 --relation all`,
	RunE: runPeriod,
}

func init() {
	rootCmd.AddCommand(periodCmd)

	periodCmd.Flags().Float64VarP(&periodBV, "bv", "b", 0, "B-V color index [required]")
	periodCmd.Flags().Float64VarP(&periodAge, "age", "a", 0, "Age (Myr) [required]")
	periodCmd.Flags().StringVarP(&periodRelation, "relation", "r", "", "Relation ID or 'all' (default from config: angus2015)")

	periodCmd.MarkFlagRequired("bv")
	periodCmd.MarkFlagRequired("age")
}

func runPeriod(cmd *cobra.Command, args []string) error {
	relations, err := selectRelations(cmd, periodRelation)
	if err != nil {
		return err
	}
	logger.L().Debug("period.input", "bv", periodBV, "age", periodAge, "relations", len(relations))

	out := cmd.OutOrStdout()
	printHeader(out, "GYROCHRONOLOGY ROTATION PERIOD")

	printSection(out, "INPUT:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  B-V:\t%.3f\n", periodBV)
	fmt.Fprintf(w, "  Age:\t%.1f Myr\n", periodAge)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "ROTATION PERIOD:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Relation\tSource\tP (days)\tNote\n")
	fmt.Fprintf(w, "  ────────\t──────\t────────\t────\n")
	for _, r := range relations {
		p := r.Period(periodBV, periodAge)
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", r.ID, r.Citation, num(p, 2), domainNote(r, periodBV))
	}
	w.Flush()
	fmt.Fprintln(out)

	first := relations[0]
	fmt.Fprint(out, diagram.DrawSummaryBox("ROTATION PERIOD", []string{
		fmt.Sprintf("P = %s days (%s)", num(first.Period(periodBV, periodAge), 2), first.ID),
	}))
	fmt.Fprintln(out)
	return nil
}
