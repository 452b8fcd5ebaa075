package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexiusacademia/gogyro/convection"
	"github.com/alexiusacademia/gogyro/gyro"
	"github.com/alexiusacademia/gogyro/photometry"
)

const rule = "───────────────────────────────────────────────────────────────"

// selectRelations resolves a --relation value, falling back to the config
// when the flag was not given. "all" selects every relation.
func selectRelations(cmd *cobra.Command, id string) ([]gyro.Relation, error) {
	if !cmd.Flags().Changed("relation") {
		id = cfg.Relation
	}
	if strings.EqualFold(id, "all") {
		return gyro.Relations, nil
	}
	r, err := gyro.LookupRelation(id)
	if err != nil {
		return nil, fmt.Errorf("%w (choose from %s or all)", err, strings.Join(gyro.RelationIDs(), ", "))
	}
	return []gyro.Relation{r}, nil
}

// selectModels resolves a --model value the same way.
func selectModels(cmd *cobra.Command, id string) ([]convection.Model, error) {
	if !cmd.Flags().Changed("model") {
		id = cfg.TauModel
	}
	if strings.EqualFold(id, "all") {
		return convection.Models, nil
	}
	m, err := convection.LookupModel(id)
	if err != nil {
		return nil, fmt.Errorf("%w (choose from %s or all)", err, strings.Join(convection.ModelIDs(), ", "))
	}
	return []convection.Model{m}, nil
}

// photometryParams merges --logg and --feh over the config.
func photometryParams(cmd *cobra.Command, logg, feh float64) photometry.Params {
	p := cfg.Params()
	if cmd.Flags().Changed("logg") {
		p.Logg = logg
	}
	if cmd.Flags().Changed("feh") {
		p.FeH = feh
	}
	return p
}

func addPhotometryFlags(cmd *cobra.Command, logg, feh *float64) {
	cmd.Flags().Float64Var(logg, "logg", photometry.DefaultLogg, "Surface gravity log g (cgs)")
	cmd.Flags().Float64Var(feh, "feh", photometry.DefaultFeH, "Metallicity [Fe/H] (dex)")
}

func printHeader(out io.Writer, title string) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintf(out, "     %s\n", title)
	fmt.Fprintln(out, "═══════════════════════════════════════════════════════════════")
	fmt.Fprintln(out)
}

func printSection(out io.Writer, title string) {
	fmt.Fprintln(out, title)
	fmt.Fprintln(out, rule)
}

// num formats v with the given precision, or "undefined" for NaN and Inf.
func num(v float64, prec int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "undefined"
	}
	return fmt.Sprintf("%.*f", prec, v)
}

func domainNote(r gyro.Relation, bv float64) string {
	if r.InDomain(bv) {
		return ""
	}
	op := ">"
	if r.InclusiveMin {
		op = "≥"
	}
	return fmt.Sprintf("⚠ needs B-V %s %.2f", op, r.MinBV)
}

func ageDomainNote(r gyro.Relation, bv float64) string {
	if r.AgeInDomain(bv) {
		return ""
	}
	return fmt.Sprintf("⚠ needs B-V > %.2f", r.MinBV)
}
