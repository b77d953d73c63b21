package dimension_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/united/dimension"
)

// results extracts the result symbols of a profile in priority order.
func results(p dimension.Profile) string {
	var sb strings.Builder
	for i, r := range p.Rules() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(string(r.Result))
	}

	return sb.String()
}

func TestBuiltinProfiles(t *testing.T) {
	assert.Equal(t, []string{"default", "electric", "mechanic"}, dimension.ProfileNames())

	def := dimension.DefaultProfile()
	assert.Equal(t, dimension.ProfileDefault, def.Name())
	assert.Equal(t, 15, def.Len())
	assert.Equal(t, "Ω V F S H W Wb J N T Pa Ω W J C", results(def))

	assert.Equal(t, "Ω V F S H Wb T C Ω W W J N Pa J", results(dimension.ElectricProfile()))
	assert.Equal(t, "N Pa J J W Ω V F S H Wb T Ω W C", results(dimension.MechanicProfile()))

	for _, name := range dimension.ProfileNames() {
		p, err := dimension.ProfileByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, p.Name())
		assert.Equal(t, 15, p.Len(), "%s must be a permutation of the table", name)
	}

	_, err := dimension.ProfileByName("thermal")
	assert.ErrorIs(t, err, dimension.ErrUnknownProfile)
}

func TestNewProfile(t *testing.T) {
	p, err := dimension.NewProfile("coulomb-first", 14, 0)
	require.NoError(t, err)
	assert.Equal(t, "C Ω", results(p))
	assert.Equal(t, dimension.Coulomb, p.Rule(0).Result)

	cases := []struct {
		name  string
		pname string
		order []int
		err   error
	}{
		{"EmptyName", "", []int{0}, dimension.ErrEmptyProfileName},
		{"Negative", "x", []int{-1}, dimension.ErrRuleIndex},
		{"TooLarge", "x", []int{15}, dimension.ErrRuleIndex},
		{"Duplicate", "x", []int{3, 3}, dimension.ErrDuplicateRule},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := dimension.NewProfile(tc.pname, tc.order...)
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNewCustomProfile(t *testing.T) {
	dif := dimension.Rule{
		Numerators:   []dimension.Symbol{dimension.Metre, dimension.Metre},
		Denominators: []dimension.Symbol{dimension.Second},
		Result:       "Dif",
	}
	p, err := dimension.NewCustomProfile("diffusion", dif)
	require.NoError(t, err)
	require.Equal(t, 1, p.Len())
	assert.False(t, p.Rules()[0].Reciprocal)

	_, err = dimension.NewCustomProfile("bad", dimension.Rule{Numerators: []dimension.Symbol{"s"}, Result: "x"})
	assert.ErrorIs(t, err, dimension.ErrDegenerateRule)

	_, err = dimension.NewCustomProfile("")
	assert.ErrorIs(t, err, dimension.ErrEmptyProfileName)
}

// TestProfile_ZeroValue ensures the zero Profile is usable and empty.
func TestProfile_ZeroValue(t *testing.T) {
	var p dimension.Profile
	assert.Equal(t, "", p.Name())
	assert.Equal(t, 0, p.Len())
	assert.Empty(t, p.Rules())
}
