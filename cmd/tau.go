package cmd

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gogyro/convection"
	"github.com/alexiusacademia/gogyro/internal/logger"
	"github.com/alexiusacademia/gogyro/photometry"
)

var (
	tauBV    float64
	tauTeff  float64
	tauModel string
	tauLogg  float64
	tauFeH   float64
)

var tauCmd = &cobra.Command{
	Use:   "tau",
	Short: "Convective turnover timescale",
	Long: `Calculate the convective turnover timescale tau (days).

Models:
  noyes1984        Noyes et al. (1984) Eqn 4, from B-V
  wright2011       Wright et al. (2011) Table 2 fit, from B-V
  cranmersaar2011  Cranmer & Saar (2011) Eqn 36, from Teff

Give --bv, --teff or both. The missing one is converted with the
Sekiguchi & Fukugita (2000) calibration using --logg and --feh.

Examples:
  gogyro tau --bv 0.65
  gogyro tau --teff 5778 --model all`,
	RunE: runTau,
}

func init() {
	rootCmd.AddCommand(tauCmd)

	tauCmd.Flags().Float64VarP(&tauBV, "bv", "b", 0, "B-V color index")
	tauCmd.Flags().Float64VarP(&tauTeff, "teff", "t", 0, "Effective temperature (K)")
	tauCmd.Flags().StringVarP(&tauModel, "model", "m", "", "Model ID or 'all' (default from config: noyes1984)")
	addPhotometryFlags(tauCmd, &tauLogg, &tauFeH)
}

// colorAndTemperature returns B-V and Teff from whichever of --bv and
// --teff were given, converting the other.
func colorAndTemperature(cmd *cobra.Command, bv, teff float64, p photometry.Params) (float64, float64, error) {
	hasBV := cmd.Flags().Changed("bv")
	hasTeff := cmd.Flags().Changed("teff")

	switch {
	case hasBV && hasTeff:
		return bv, teff, nil
	case hasBV:
		return bv, photometry.BV2Teff(bv, p), nil
	case hasTeff:
		return photometry.Teff2BV(teff, p), teff, nil
	}
	return 0, 0, errors.New("provide --bv or --teff")
}

func runTau(cmd *cobra.Command, args []string) error {
	models, err := selectModels(cmd, tauModel)
	if err != nil {
		return err
	}
	p := photometryParams(cmd, tauLogg, tauFeH)
	bv, teff, err := colorAndTemperature(cmd, tauBV, tauTeff, p)
	if err != nil {
		return err
	}
	logger.L().Debug("tau.input", "bv", bv, "teff", teff, "logg", p.Logg, "feh", p.FeH)

	out := cmd.OutOrStdout()
	printHeader(out, "CONVECTIVE TURNOVER TIMESCALE")

	printSection(out, "INPUT:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  B-V:\t%.3f\n", bv)
	fmt.Fprintf(w, "  Teff:\t%.0f K\n", teff)
	w.Flush()
	fmt.Fprintln(out)

	printSection(out, "TURNOVER TIME:")
	w = tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Model\tSource\tInput\tτ (days)\n")
	fmt.Fprintf(w, "  ─────\t──────\t─────\t────────\n")
	for _, m := range models {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", m.ID, m.Citation, m.Input, num(tauFor(m, bv, teff), 3))
	}
	w.Flush()
	fmt.Fprintln(out)
	return nil
}

func tauFor(m convection.Model, bv, teff float64) float64 {
	if m.Input == convection.Temperature {
		return m.Tau(teff)
	}
	return m.Tau(bv)
}
