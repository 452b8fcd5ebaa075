package catalog_test

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gogyro/convection"
	"github.com/alexiusacademia/gogyro/gyro"
	"github.com/alexiusacademia/gogyro/internal/catalog"
	"github.com/alexiusacademia/gogyro/photometry"
)

func f(v float64) *float64 { return &v }

func defaultOptions(t *testing.T) catalog.Options {
	t.Helper()
	rel, err := gyro.LookupRelation(gyro.DefaultRelation)
	require.NoError(t, err)
	m, err := convection.LookupModel(convection.DefaultModel)
	require.NoError(t, err)
	return catalog.Options{Relation: rel, Model: m, Params: photometry.DefaultParams()}
}

func TestLoadFromFile_JSON(t *testing.T) {
	c, err := catalog.LoadFromFile(filepath.Join("testdata", "sun.json"))
	require.NoError(t, err)
	require.Len(t, c.Stars, 1)
	assert.Equal(t, 0.65, *c.Stars[0].BV)
	assert.Nil(t, c.Stars[0].Teff)
}

func TestLoadFromFile_YAML(t *testing.T) {
	c, err := catalog.LoadFromFile(filepath.Join("testdata", "hyades.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "Hyades sample", c.Name)
	require.NotNil(t, c.FeH)
	assert.Equal(t, 0.13, *c.FeH)
	assert.Len(t, c.Stars, 4)
}

func TestLoadFromFile_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := catalog.LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	txt := filepath.Join(dir, "stars.txt")
	require.NoError(t, os.WriteFile(txt, []byte("x"), 0o644))
	_, err = catalog.LoadFromFile(txt)
	assert.ErrorContains(t, err, "unsupported file type")

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("name: nothing\n"), 0o644))
	_, err = catalog.LoadFromFile(empty)
	var verr *catalog.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name string
		star catalog.Star
		msg  string
	}{
		{"no name", catalog.Star{BV: f(0.6)}, "must have a name"},
		{"no photometry", catalog.Star{Name: "a"}, "needs bv or teff"},
		{"bad teff", catalog.Star{Name: "a", Teff: f(-1)}, "teff must be positive"},
		{"bad period", catalog.Star{Name: "a", BV: f(0.6), Period: f(0)}, "period must be positive"},
		{"bad age", catalog.Star{Name: "a", BV: f(0.6), Age: f(-5)}, "age must be positive"},
		{"nan teff", catalog.Star{Name: "a", Teff: f(math.NaN())}, "teff must be finite"},
		{"nan period", catalog.Star{Name: "a", BV: f(0.6), Period: f(math.NaN())}, "period must be finite"},
		{"inf age", catalog.Star{Name: "a", BV: f(0.6), Age: f(math.Inf(1))}, "age must be finite"},
		{"nan bv", catalog.Star{Name: "a", BV: f(math.NaN())}, "bv must be finite"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cat := catalog.Catalog{Stars: []catalog.Star{c.star}}
			assert.ErrorContains(t, cat.Validate(), c.msg)
		})
	}
}

func TestDerive_Sun(t *testing.T) {
	cat := catalog.Catalog{Stars: []catalog.Star{{Name: "Sun", BV: f(0.65), Age: f(4600)}}}

	res, err := cat.Derive(defaultOptions(t))
	require.NoError(t, err)
	require.Len(t, res.Stars, 1)
	assert.Equal(t, "angus2015", res.Relation)
	assert.Equal(t, "noyes1984", res.Model)

	sun := res.Stars[0]
	assert.Equal(t, catalog.Given, sun.BVSource)
	assert.Equal(t, catalog.Derived, sun.TeffSource)
	assert.Equal(t, catalog.Derived, sun.PeriodSource)
	assert.InDelta(t, 5699.65, sun.Teff, 0.05)
	assert.InDelta(t, 25.1129, sun.Period, 1e-3)
	assert.InDelta(t, 11.9878, sun.Tau, 1e-3)
	assert.InDelta(t, sun.Period/sun.Tau, sun.Rossby, 1e-12)
	assert.Empty(t, sun.Warnings)
}

func TestDerive_Hyades(t *testing.T) {
	cat, err := catalog.LoadFromFile(filepath.Join("testdata", "hyades.yaml"))
	require.NoError(t, err)

	opts := defaultOptions(t)
	res, err := cat.Derive(opts)
	require.NoError(t, err)
	require.Len(t, res.Stars, 4)

	// period given: age comes from the inverse relation
	vb17 := res.Stars[0]
	assert.Equal(t, catalog.Derived, vb17.AgeSource)
	assert.InEpsilon(t, gyro.Angus2015Age(0.70, 8.2), vb17.Age, 1e-12)
	assert.Equal(t, photometry.Params{Logg: 4.3, FeH: 0.13}, vb17.Params, "catalog [Fe/H] applies")

	// teff only: color from Teff2BV with catalog metallicity
	vb65 := res.Stars[1]
	assert.Equal(t, catalog.Derived, vb65.BVSource)
	assert.InDelta(t, photometry.Teff2BV(5200, vb65.Params), vb65.BV, 1e-12)
	assert.InDelta(t, gyro.Angus2015(vb65.BV, 625), vb65.Period, 1e-12)

	// nothing rotational known: period, age and Rossby stay NaN
	vb99 := res.Stars[2]
	assert.Equal(t, 4.6, vb99.Params.Logg)
	assert.Equal(t, catalog.Unknown, vb99.PeriodSource)
	assert.True(t, math.IsNaN(vb99.Period))
	assert.True(t, math.IsNaN(vb99.Rossby))
	assert.False(t, math.IsNaN(vb99.Tau))

	// too blue for Angus: NaN period plus warnings, not an error
	hot := res.Stars[3]
	assert.True(t, math.IsNaN(hot.Period))
	require.Len(t, hot.Warnings, 2)
	assert.Contains(t, hot.Warnings[0], "outside the angus2015 domain")
	assert.Contains(t, hot.Warnings[1], "period is undefined")
}

func TestDerive_TemperatureModel(t *testing.T) {
	opts := defaultOptions(t)
	m, err := convection.LookupModel("cranmersaar2011")
	require.NoError(t, err)
	opts.Model = m

	cat := catalog.Catalog{Stars: []catalog.Star{{Name: "K dwarf", Teff: f(4500), Period: f(30)}}}
	res, err := cat.Derive(opts)
	require.NoError(t, err)

	k := res.Stars[0]
	assert.InDelta(t, convection.CranmerSaar2011Eqn36(4500), k.Tau, 1e-12)
	assert.InDelta(t, 30/k.Tau, k.Rossby, 1e-12)
}

func TestDerive_InvalidCatalog(t *testing.T) {
	_, err := (&catalog.Catalog{}).Derive(defaultOptions(t))
	var verr *catalog.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDerive_NeedsRelationAndModel(t *testing.T) {
	cat := catalog.Catalog{Stars: []catalog.Star{{Name: "Sun", BV: f(0.65)}}}
	_, err := cat.Derive(catalog.Options{})
	assert.ErrorContains(t, err, "needs a relation")
}

func TestDerive_MM09e2AgeAtColorFloor(t *testing.T) {
	opts := defaultOptions(t)
	rel, err := gyro.LookupRelation("mm09e2")
	require.NoError(t, err)
	opts.Relation = rel

	cat := catalog.Catalog{Stars: []catalog.Star{
		{Name: "edge", BV: f(0.50), Period: f(10)},
		{Name: "blue", BV: f(0.45), Period: f(10)},
	}}
	res, err := cat.Derive(opts)
	require.NoError(t, err)

	for _, s := range res.Stars {
		assert.Equal(t, catalog.Derived, s.AgeSource, s.Name)
		assert.True(t, math.IsNaN(s.Age), "%s age = %v", s.Name, s.Age)
		require.Len(t, s.Warnings, 2, s.Name)
		assert.Contains(t, s.Warnings[0], "outside the mm09e2 domain")
		assert.Contains(t, s.Warnings[1], "age is undefined")
	}
}

func TestLoadFromFile_RejectsYAMLNaN(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nan.yaml")
	body := "name: bad\nstars:\n  - name: x\n    bv: 0.7\n    period: .nan\n"
	require.NoError(t, os.WriteFile(file, []byte(body), 0o644))

	_, err := catalog.LoadFromFile(file)
	var verr *catalog.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "period must be finite")
}
