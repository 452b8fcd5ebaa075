package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gogyro/internal/catalog"
	"github.com/alexiusacademia/gogyro/internal/diagram"
	"github.com/alexiusacademia/gogyro/vec"
)

var (
	catalogFile       string
	catalogRelation   string
	catalogModel      string
	catalogLogg       float64
	catalogFeH        float64
	catalogExportFile string
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Derive missing quantities for a list of stars",
	Long: `Read stars from a YAML or JSON file and fill in whatever is
missing: B-V or Teff from the other, age from period or period
from age, then the turnover time and Rossby number.

Logg and [Fe/H] come from the star, then the catalog, then the
--logg/--feh flags or config.

Example YAML file:
name: Hyades sample
feh: 0.13
stars:
  - name: vB 17
    bv: 0.70
    period: 8.2
  - name: vB 65
    teff: 5200
    age: 625

Examples:
  gogyro catalog -f hyades.yaml
  gogyro catalog -f hyades.yaml --relation mm09e3 -o hyades.png`,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)

	catalogCmd.Flags().StringVarP(&catalogFile, "file", "f", "", "Path to catalog YAML or JSON file [required]")
	catalogCmd.Flags().StringVarP(&catalogRelation, "relation", "r", "", "Age-period relation ID (default from config: angus2015)")
	catalogCmd.Flags().StringVarP(&catalogModel, "model", "m", "", "Turnover time model ID (default from config: noyes1984)")
	addPhotometryFlags(catalogCmd, &catalogLogg, &catalogFeH)
	catalogCmd.Flags().StringVarP(&catalogExportFile, "output", "o", "", "Export period vs B-V chart with gyrochrones (png, svg, pdf)")

	catalogCmd.MarkFlagRequired("file")
}

// catalogAges are the gyrochrones drawn behind exported catalogs.
var catalogAges = []float64{100, 600, 1000, 4600}

func runCatalog(cmd *cobra.Command, args []string) error {
	cat, err := catalog.LoadFromFile(catalogFile)
	if err != nil {
		return fmt.Errorf("loading catalog: %w", err)
	}

	relations, err := selectRelations(cmd, catalogRelation)
	if err != nil {
		return err
	}
	models, err := selectModels(cmd, catalogModel)
	if err != nil {
		return err
	}
	if len(relations) != 1 || len(models) != 1 {
		return fmt.Errorf("catalog needs a single relation and model, not 'all'")
	}

	res, err := cat.Derive(catalog.Options{
		Relation: relations[0],
		Model:    models[0],
		Params:   photometryParams(cmd, catalogLogg, catalogFeH),
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printHeader(out, "STAR CATALOG")
	if cat.Name != "" {
		fmt.Fprintf(out, "  Catalog: %s\n", cat.Name)
	}
	if cat.Description != "" {
		fmt.Fprintf(out, "  Description: %s\n", cat.Description)
	}
	fmt.Fprintf(out, "  Relation: %s   Turnover model: %s\n", res.Relation, res.Model)
	fmt.Fprintln(out)

	printSection(out, "STARS:")
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Star\tB-V\tTeff (K)\tP (d)\tAge (Myr)\tτ (d)\tRo\n")
	fmt.Fprintf(w, "  ────\t───\t────────\t─────\t─────────\t─────\t──\n")
	var warnings int
	for _, s := range res.Stars {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\t%s\t%s\t%s\n", s.Name,
			mark(num(s.BV, 3), s.BVSource),
			mark(num(s.Teff, 0), s.TeffSource),
			mark(num(s.Period, 2), s.PeriodSource),
			mark(num(s.Age, 0), s.AgeSource),
			num(s.Tau, 2),
			num(s.Rossby, 3))
		warnings += len(s.Warnings)
	}
	w.Flush()
	fmt.Fprintln(out, "  * derived")
	fmt.Fprintln(out)

	if warnings > 0 {
		printSection(out, "WARNINGS:")
		for _, s := range res.Stars {
			for _, msg := range s.Warnings {
				fmt.Fprintf(out, "  ⚠ %s: %s\n", s.Name, msg)
			}
		}
		fmt.Fprintln(out)
	}

	if catalogExportFile != "" {
		points := diagram.Series{Label: "stars"}
		for _, s := range res.Stars {
			points.X = append(points.X, s.BV)
			points.Y = append(points.Y, s.Period)
		}
		curves := diagram.Gyrochrones(relations[0], catalogAges, vec.Span(0.4, 1.6, 121))

		name, err := diagram.ExportCurves(curves, &points, diagram.PlotOptions{
			Title:  fmt.Sprintf("%s (%s)", cat.Name, res.Relation),
			XLabel: "B-V",
			YLabel: "Rotation period (days)",
			LogY:   true,
		}, catalogExportFile)
		if err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Fprintf(out, "Diagram exported to: %s\n", name)
	}
	return nil
}

func mark(s string, src catalog.Source) string {
	if src == catalog.Derived {
		return s + "*"
	}
	if src == catalog.Unknown {
		return "-"
	}
	return s
}
