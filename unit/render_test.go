package unit_test

import (
	"testing"

	"github.com/go-logr/logr/funcr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/united/dimension"
	"github.com/katalvlaran/united/unit"
)

// TestRender_Scenarios checks rendering under the electric profile.
func TestRender_Scenarios(t *testing.T) {
	electric := unit.WithProfile(dimension.ElectricProfile())
	cases := []struct {
		num, den []string
		want     string
	}{
		{[]string{"s"}, nil, "s"},
		{[]string{"V", "A"}, nil, "W"},
		{nil, []string{"V", "A"}, "1/W"},
		{[]string{"V"}, []string{"A"}, "Ω"},
		{[]string{"m", "m", "kg"}, []string{"s", "s", "s", "A"}, "V"},
		{nil, []string{"Ω"}, "1/Ω"},
		{nil, []string{"A", "s"}, "1/C"},
		{[]string{"F"}, []string{"C"}, "1/V"},
		{[]string{"V", "s"}, nil, "Wb"},
		{[]string{"m", "kg"}, []string{"s", "s"}, "N"},
		{[]string{"N"}, []string{"m", "m"}, "Pa"},
		{[]string{"W", "s"}, nil, "J"},
		{[]string{"C"}, []string{"V"}, "s/Ω"},
		{[]string{"Ω"}, []string{"s"}, "Ω/s"},
	}
	for _, tc := range cases {
		t.Run(tc.want, func(t *testing.T) {
			u := mustNew(t, tc.num, tc.den, electric)
			assert.Equal(t, tc.want, u.String(), "%v/%v", tc.num, tc.den)
		})
	}
}

// TestRender_Format covers the fraction layout rules.
func TestRender_Format(t *testing.T) {
	cases := []struct {
		num, den []string
		want     string
	}{
		{nil, nil, "1"},
		{[]string{"kg", "m", "m"}, nil, "kg*m*m"},
		{nil, []string{"s"}, "1/s"},
		{nil, []string{"s", "s"}, "1/(s*s)"},
		{[]string{"m"}, []string{"s"}, "m/s"},
		{[]string{"m"}, []string{"s", "s"}, "m/(s*s)"},
		{[]string{"s", "s"}, []string{"m"}, "(s*s)/m"},
		{[]string{"cd"}, []string{"m", "m"}, "cd/(m*m)"},
		{[]string{"K"}, []string{"mol"}, "K/mol"},
		{[]string{"J", "s"}, nil, "(m*m*kg)/s"},
	}
	for _, tc := range cases {
		u := mustNew(t, tc.num, tc.den)
		assert.Equal(t, tc.want, u.String(), "%v/%v", tc.num, tc.den)
	}
}

// TestRender_ProfileSensitivity shows the same shape rendering differently.
func TestRender_ProfileSensitivity(t *testing.T) {
	cases := []struct {
		name     string
		num, den []string
		def      string
		electric string
		mechanic string
	}{
		{"TeslaMetre", []string{"kg", "m"}, []string{"s", "s", "A"}, "N/A", "m*T", "N/A"},
		{"VoltPerMetre", []string{"V"}, []string{"m"}, "N/C", "(m*T)/s", "N/C"},
		{"Resistance", []string{"V"}, []string{"A"}, "Ω", "Ω", "J/(A*C)"},
		{"Voltage", []string{"V"}, nil, "V", "V", "J/C"},
		{"Power", []string{"V", "A"}, nil, "W", "W", "J/s"},
		{"Force", []string{"N"}, nil, "N", "N", "N"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u := mustNew(t, tc.num, tc.den)
			assert.Equal(t, tc.def, u.String(), "default")
			assert.Equal(t, tc.electric, u.Render(unit.WithProfile(dimension.ElectricProfile())), "electric")
			assert.Equal(t, tc.mechanic, u.Render(unit.WithProfile(dimension.MechanicProfile())), "mechanic")
			// the reduced shape does not depend on the profile
			m := mustNew(t, tc.num, tc.den, unit.WithProfile(dimension.MechanicProfile()))
			assert.True(t, u.Equal(m))
		})
	}
}

// TestRender_Idempotent verifies repeated rendering yields the same string.
func TestRender_Idempotent(t *testing.T) {
	u := mustNew(t, []string{"F", "H", "A"}, []string{"m"})
	first := u.Render()
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, u.Render())
	}
	assert.Equal(t, first, u.String())
}

// TestRender_ShortSymbols checks the ASCII spelling of Ω.
func TestRender_ShortSymbols(t *testing.T) {
	u := mustNew(t, []string{"V"}, []string{"A"})
	assert.Equal(t, "Ω", u.String())
	assert.Equal(t, "O", u.Render(unit.WithShortSymbols()))

	g := mustNew(t, nil, []string{"O"}, unit.WithShortSymbols())
	assert.Equal(t, "1/O", g.String())
	assert.Equal(t, "s/O", mustNew(t, []string{"C"}, []string{"V"}, unit.WithShortSymbols()).String())
}

// TestRender_EmptyProfile renders plain base dimensions.
func TestRender_EmptyProfile(t *testing.T) {
	u := mustNew(t, []string{"V", "A"}, nil, unit.WithProfile(dimension.Profile{}))
	assert.Equal(t, "(m*m*kg)/(s*s*s)", u.String())
}

// TestRender_CustomProfileTerminates chains custom rules whose results feed
// other rules.
func TestRender_CustomProfileTerminates(t *testing.T) {
	p, err := dimension.NewCustomProfile("area",
		dimension.Rule{Numerators: []dimension.Symbol{M, M}, Result: "m2", Reciprocal: true},
		dimension.Rule{Numerators: []dimension.Symbol{"m2", "m2"}, Result: "m4", Reciprocal: true},
	)
	require.NoError(t, err)

	m := mustNew(t, []string{"m"}, nil, unit.WithProfile(p))
	assert.Equal(t, "m4", m.Pow(4).String())
	assert.Equal(t, "m*m4", m.Pow(5).String())
	assert.Equal(t, "1/m4", m.Pow(-4).String())
}

// TestRender_NonReciprocalRule ensures the reverse match honours the flag.
func TestRender_NonReciprocalRule(t *testing.T) {
	fwd, err := dimension.NewCustomProfile("charge",
		dimension.Rule{Numerators: []dimension.Symbol{A, S}, Result: "Q"},
	)
	require.NoError(t, err)

	q := mustNew(t, []string{"A", "s"}, nil, unit.WithProfile(fwd))
	assert.Equal(t, "Q", q.String())
	assert.Equal(t, "1/(A*s)", q.Reciprocal().String())
}

// TestRender_GreedyAppendOrder checks remaining symbols keep their order and
// rewrite results are appended: V·A·A becomes A*W.
func TestRender_GreedyAppendOrder(t *testing.T) {
	u := mustNew(t, []string{"V", "A", "A"}, nil)
	assert.Equal(t, "A*W", u.String())
}

// TestRender_RestartFromTopPriority checks that after a rewrite the next
// pass starts again at the first rule. Rule 1 produces X; rule 0 must then
// win over rule 2, although rule 2 comes right after rule 1.
func TestRender_RestartFromTopPriority(t *testing.T) {
	p, err := dimension.NewCustomProfile("restart",
		dimension.Rule{Numerators: []dimension.Symbol{"X", M}, Result: "Z"},
		dimension.Rule{Numerators: []dimension.Symbol{S, KG}, Result: "X"},
		dimension.Rule{Numerators: []dimension.Symbol{"X", A}, Result: "W2"},
	)
	require.NoError(t, err)

	u := mustNew(t, []string{"s", "kg", "m", "A"}, nil, unit.WithProfile(p))
	assert.Equal(t, "A*Z", u.String())
	assert.NotEqual(t, "m*W2", u.String(), "scan must not continue after rule 1")
}

// TestRender_LoggerTrace captures the rewrite trace.
func TestRender_LoggerTrace(t *testing.T) {
	var lines []string
	log := funcr.New(func(prefix, args string) {
		lines = append(lines, args)
	}, funcr.Options{Verbosity: 1})

	u := mustNew(t, []string{"V", "A"}, nil, unit.WithLogger(log))
	require.Equal(t, "W", u.String())
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"msg"="rewrite"`)
	assert.Contains(t, lines[0], `"rule"=5`)
	assert.Contains(t, lines[0], `"result"="W"`)
	assert.Contains(t, lines[0], `"side"="numerator"`)
	assert.Contains(t, lines[1], `"msg"="fixed point"`)
	assert.Contains(t, lines[1], `"passes"=2`)

	lines = nil
	_ = u.Reciprocal()
	require.NotEmpty(t, lines)
	assert.Contains(t, lines[0], `"side"="denominator"`)
}
