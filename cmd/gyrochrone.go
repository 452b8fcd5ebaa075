package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gogyro/internal/diagram"
	"github.com/alexiusacademia/gogyro/internal/logger"
	"github.com/alexiusacademia/gogyro/vec"
)

var (
	gyrochroneAges       []float64
	gyrochroneBVMin      float64
	gyrochroneBVMax      float64
	gyrochroneSteps      int
	gyrochroneRelation   string
	gyrochroneASCII      bool
	gyrochroneExportFile string
)

var gyrochroneCmd = &cobra.Command{
	Use:   "gyrochrone",
	Short: "Tabulate or plot period vs B-V at fixed ages",
	Long: `Evaluate an age-period relation over a grid of B-V colors,
one curve (gyrochrone) per age.

Examples:
  gogyro gyrochrone --ages 100,600,4600
  gogyro gyrochrone --relation mm09e3 --diagram
  gogyro gyrochrone --ages 600 --bv-min 0.5 --bv-max 1.5 -o hyades.svg`,
	RunE: runGyrochrone,
}

func init() {
	rootCmd.AddCommand(gyrochroneCmd)

	gyrochroneCmd.Flags().Float64SliceVar(&gyrochroneAges, "ages", []float64{100, 600, 4600}, "Ages (Myr), comma separated")
	gyrochroneCmd.Flags().Float64Var(&gyrochroneBVMin, "bv-min", 0.5, "Bluest B-V of the grid")
	gyrochroneCmd.Flags().Float64Var(&gyrochroneBVMax, "bv-max", 1.4, "Reddest B-V of the grid")
	gyrochroneCmd.Flags().IntVarP(&gyrochroneSteps, "steps", "n", 10, "Number of grid points")
	gyrochroneCmd.Flags().StringVarP(&gyrochroneRelation, "relation", "r", "", "Relation ID (default from config: angus2015)")

	// Diagram options
	gyrochroneCmd.Flags().BoolVar(&gyrochroneASCII, "diagram", false, "Show ASCII chart")
	gyrochroneCmd.Flags().StringVarP(&gyrochroneExportFile, "output", "o", "", "Export chart to file (png, svg, pdf)")
}

func runGyrochrone(cmd *cobra.Command, args []string) error {
	if gyrochroneSteps < 2 {
		return fmt.Errorf("--steps must be at least 2")
	}
	if gyrochroneBVMax <= gyrochroneBVMin {
		return fmt.Errorf("--bv-max must be greater than --bv-min")
	}
	if len(gyrochroneAges) == 0 {
		return fmt.Errorf("--ages needs at least one age")
	}

	relations, err := selectRelations(cmd, gyrochroneRelation)
	if err != nil {
		return err
	}
	if len(relations) != 1 {
		return fmt.Errorf("gyrochrone needs a single relation, not 'all'")
	}
	rel := relations[0]

	bv := vec.Span(gyrochroneBVMin, gyrochroneBVMax, gyrochroneSteps)
	series := diagram.Gyrochrones(rel, gyrochroneAges, bv)
	logger.L().Debug("gyrochrone.grid", "relation", rel.ID, "ages", gyrochroneAges, "points", len(bv))

	out := cmd.OutOrStdout()
	printHeader(out, "GYROCHRONES - "+strings.ToUpper(rel.ID))
	fmt.Fprintf(out, "  %s: %s\n", rel.Citation, rel.Description)
	fmt.Fprintln(out)

	printSection(out, "ROTATION PERIOD (days):")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  B-V\t")
	for _, s := range series {
		fmt.Fprintf(w, "%s\t", s.Label)
	}
	fmt.Fprintln(w)
	for i, b := range bv {
		fmt.Fprintf(w, "  %.3f\t", b)
		for _, s := range series {
			fmt.Fprintf(w, "%s\t", num(s.Y[i], 2))
		}
		fmt.Fprintln(w)
	}
	w.Flush()
	fmt.Fprintln(out)

	if gyrochroneASCII {
		chart, err := diagram.DrawASCIICurves(series, diagram.ASCIIOptions{
			Caption: fmt.Sprintf("P (days) vs B-V, %s", rel.ID),
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(out, chart)
	}

	if gyrochroneExportFile != "" {
		name, err := diagram.ExportCurves(series, nil, diagram.PlotOptions{
			Title:  "Gyrochrones (" + rel.ID + ")",
			XLabel: "B-V",
			YLabel: "Rotation period (days)",
		}, gyrochroneExportFile)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", name)
	}
	return nil
}
