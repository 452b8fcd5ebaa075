package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gogyro/internal/diagram"
	"github.com/alexiusacademia/gogyro/internal/logger"
)

var (
	ageBV       float64
	agePeriod   float64
	ageRelation string
)

var ageCmd = &cobra.Command{
	Use:   "age",
	Short: "Gyrochronological age from B-V color and rotation period",
	Long: `Estimate a star's age (Myr) from its B-V color and rotation
period (days) by inverting an age-period relation.

Examples:
  gogyro age --bv 0.65 --period 25
  gogyro age --bv 1.1 --period 12 --relation all`,
	RunE: runAge,
}

func init() {
	rootCmd.AddCommand(ageCmd)

	ageCmd.Flags().Float64VarP(&ageBV, "bv", "b", 0, "B-V color index [required]")
	ageCmd.Flags().Float64VarP(&agePeriod, "period", "p", 0, "Rotation period (days) [required]")
	ageCmd.Flags().StringVarP(&ageRelation, "relation", "r", "", "Relation ID or 'all' (default from config: angus2015)")

	ageCmd.MarkFlagRequired("bv")
	ageCmd.MarkFlagRequired("period")
}

func runAge(cmd *cobra.Command, args []string) error {
	relations, err := selectRelations(cmd, ageRelation)
	if err != nil {
		return err
	}
	logger.L().Debug("age.input", "bv", ageBV, "period", agePeriod, "relations", len(relations))

	out := cmd.OutOrStdout()
	printHeader(out, "GYROCHRONOLOGICAL AGE")

	printSection(out, "INPUT:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  B-V:\t%.3f\n", ageBV)
	fmt.Fprintf(w, "  Period:\t%.2f days\n", agePeriod)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "AGE:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Relation\tSource\tAge (Myr)\tAge (Gyr)\tNote\n")
	fmt.Fprintf(w, "  ────────\t──────\t─────────\t─────────\t────\n")
	for _, r := range relations {
		a := r.Age(ageBV, agePeriod)
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\n", r.ID, r.Citation, num(a, 1), num(a/1000, 3), ageDomainNote(r, ageBV))
	}
	w.Flush()
	fmt.Fprintln(out)

	first := relations[0]
	fmt.Fprint(out, diagram.DrawSummaryBox("GYRO AGE", []string{
		fmt.Sprintf("Age = %s Myr (%s)", num(first.Age(ageBV, agePeriod), 1), first.ID),
	}))
	fmt.Fprintln(out)
	return nil
}
