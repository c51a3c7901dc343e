//go:build property

package props

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genValue produces values across all three kinds.
func genValue() gopter.Gen {
	return gen.OneGenOf(
		gen.Bool().Map(func(b bool) Value { return BoolValue(b) }),
		gen.Float64Range(-1e6, 1e6).Map(func(n float64) Value { return NumValue(n) }),
		gen.AlphaString().Map(func(s string) Value { return StrValue(s) }),
	)
}

// TestValueAlgebraProperties validates the laws of lenient value arithmetic.
func TestValueAlgebraProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(1357)
	parameters.MinSuccessfulTests = 200

	properties := gopter.NewProperties(parameters)

	// Property: arithmetic always yields a numeric value
	properties.Property("arithmetic closes over numbers", prop.ForAll(
		func(a, b Value) bool {
			return a.Add(b).Kind() == KindNum &&
				a.Sub(b).Kind() == KindNum &&
				a.Mul(b).Kind() == KindNum &&
				a.Div(b).Kind() == KindNum
		},
		genValue(), genValue(),
	))

	// Property: addition is commutative under the act-as-zero rule
	properties.Property("addition commutes", prop.ForAll(
		func(a, b Value) bool {
			return a.Add(b).Equal(b.Add(a))
		},
		genValue(), genValue(),
	))

	// Property: non-numeric operands behave exactly like zero for Add/Sub/Mul
	properties.Property("non-numbers act as zero", prop.ForAll(
		func(a Value, s string) bool {
			str := StrValue(s)
			zero := NumValue(0)
			return a.Add(str).Equal(a.Add(zero)) &&
				a.Sub(str).Equal(a.Sub(zero)) &&
				a.Mul(str).Equal(a.Mul(zero))
		},
		genValue(), gen.AlphaString(),
	))

	// Property: dividing by a non-number leaves the dividend unchanged
	properties.Property("division by non-number is identity", prop.ForAll(
		func(n float64, b bool) bool {
			return NumValue(n).Div(BoolValue(b)).Equal(NumValue(n))
		},
		gen.Float64Range(-1e6, 1e6), gen.Bool(),
	))

	// Property: equality is reflexive except for NaN, and kind-exclusive
	properties.Property("equality is reflexive and kind-exclusive", prop.ForAll(
		func(a Value) bool {
			if !a.Equal(a) {
				return false
			}
			switch a.Kind() {
			case KindBool:
				return !a.Equal(NumValue(0)) && !a.Equal(StrValue(""))
			case KindNum:
				return !a.Equal(BoolValue(false)) && !a.Equal(StrValue(""))
			default:
				return !a.Equal(BoolValue(false)) && !a.Equal(NumValue(0))
			}
		},
		genValue(),
	))

	// Property: Compare is antisymmetric within a kind
	properties.Property("compare is antisymmetric", prop.ForAll(
		func(a, b float64) bool {
			x, okX := NumValue(a).Compare(NumValue(b))
			y, okY := NumValue(b).Compare(NumValue(a))
			return okX && okY && x == -y
		},
		gen.Float64Range(-1e6, 1e6), gen.Float64Range(-1e6, 1e6),
	))

	properties.TestingRun(t)
}

// TestPropsRoundTripProperties validates store/read coherence.
func TestPropsRoundTripProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.Rng.Seed(2468)
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	// Property: last write wins and Lookup sees exactly what was set
	properties.Property("set then lookup returns the value", prop.ForAll(
		func(name string, v Value) bool {
			p := New()
			p.Set(name, BoolValue(true))
			p.Set(name, v)
			got, ok := p.Lookup(name)
			return ok && got.Equal(v)
		},
		gen.Identifier(), genValue(),
	))

	// Property: Names is always sorted
	properties.Property("names are sorted", prop.ForAll(
		func(names []string) bool {
			p := New()
			for _, n := range names {
				p.Set(n, NumValue(1))
			}
			got := p.Names()
			for i := 1; i < len(got); i++ {
				if got[i-1] > got[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.Identifier()),
	))

	properties.TestingRun(t)
}
