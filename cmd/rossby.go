package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gogyro/gyro"
	"github.com/alexiusacademia/gogyro/internal/diagram"
	"github.com/alexiusacademia/gogyro/internal/logger"
)

var (
	rossbyBV     float64
	rossbyTeff   float64
	rossbyPeriod float64
	rossbyModel  string
	rossbyLogg   float64
	rossbyFeH    float64
)

var rossbyCmd = &cobra.Command{
	Use:   "rossby",
	Short: "Rossby number from rotation period and turnover time",
	Long: `Calculate the Rossby number Ro = P / tau from a rotation
period and a convective turnover time computed from --bv or --teff.

Examples:
  gogyro rossby --bv 0.65 --period 25.4
  gogyro rossby --teff 4500 --period 30 --model all`,
	RunE: runRossby,
}

func init() {
	rootCmd.AddCommand(rossbyCmd)

	rossbyCmd.Flags().Float64VarP(&rossbyBV, "bv", "b", 0, "B-V color index")
	rossbyCmd.Flags().Float64VarP(&rossbyTeff, "teff", "t", 0, "Effective temperature (K)")
	rossbyCmd.Flags().Float64VarP(&rossbyPeriod, "period", "p", 0, "Rotation period (days) [required]")
	rossbyCmd.Flags().StringVarP(&rossbyModel, "model", "m", "", "Model ID or 'all' (default from config: noyes1984)")
	addPhotometryFlags(rossbyCmd, &rossbyLogg, &rossbyFeH)

	rossbyCmd.MarkFlagRequired("period")
}

func runRossby(cmd *cobra.Command, args []string) error {
	models, err := selectModels(cmd, rossbyModel)
	if err != nil {
		return err
	}
	p := photometryParams(cmd, rossbyLogg, rossbyFeH)
	bv, teff, err := colorAndTemperature(cmd, rossbyBV, rossbyTeff, p)
	if err != nil {
		return err
	}
	logger.L().Debug("rossby.input", "bv", bv, "teff", teff, "period", rossbyPeriod)

	out := cmd.OutOrStdout()
	printHeader(out, "ROSSBY NUMBER")

	printSection(out, "INPUT:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  B-V:\t%.3f\n", bv)
	fmt.Fprintf(w, "  Teff:\t%.0f K\n", teff)
	fmt.Fprintf(w, "  Period:\t%.2f days\n", rossbyPeriod)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "ROSSBY NUMBER:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Model\tτ (days)\tRo\n")
	fmt.Fprintf(w, "  ─────\t────────\t──\n")
	var lines []string
	for _, m := range models {
		tau := tauFor(m, bv, teff)
		ro := gyro.Rossby(rossbyPeriod, tau)
		fmt.Fprintf(w, "  %s\t%s\t%s\n", m.ID, num(tau, 3), num(ro, 3))
		lines = append(lines, fmt.Sprintf("Ro = %s (%s)", num(ro, 3), m.ID))
	}
	w.Flush()
	fmt.Fprintln(out)

	fmt.Fprint(out, diagram.DrawSummaryBox("ROSSBY NUMBER", lines))
	fmt.Fprintln(out)
	return nil
}
