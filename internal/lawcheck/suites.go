package lawcheck

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/laws"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// Optic kinds a suite can exercise.
const (
	KindLens   = "lens"
	KindPrism  = "prism"
	KindAffine = "affine"
	KindIso    = "iso"
)

// Suite is a named group of law properties for one optic.
type Suite struct {
	Name   string
	Kind   string
	define func(*gopter.Properties)
}

// NewSuite creates a suite whose properties are added by define.
func NewSuite(name, kind string, define func(*gopter.Properties)) Suite {
	return Suite{Name: name, Kind: kind, define: define}
}

var builtin = []Suite{
	NewSuite("decimal", KindPrism, decimalSuite),
	NewSuite("either-zip", KindPrism, eitherZipSuite),
	NewSuite("map-at", KindLens, mapAtSuite),
	NewSuite("option-some", KindPrism, optionSomeSuite),
	NewSuite("pair-swap", KindIso, pairSwapSuite),
	NewSuite("pair-zip", KindLens, pairZipSuite),
	NewSuite("slice-index", KindAffine, sliceIndexSuite),
}

// Suites returns the built-in suites ordered by name.
func Suites() []Suite {
	return slices.Clone(builtin)
}

// Lookup resolves suite names against the built-in registry. An empty list
// selects every suite.
func Lookup(names []string) ([]Suite, error) {
	if len(names) == 0 {
		return Suites(), nil
	}
	selected := make([]Suite, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(builtin, func(s Suite) bool { return s.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
		}
		selected = append(selected, builtin[i])
	}
	return selected, nil
}

func mapAtSuite(p *gopter.Properties) {
	at := optics.At[string, int]("k")
	eqWhole := laws.MapEq[string](laws.Equal[int]())
	eqPart := laws.OptionEq(laws.Equal[int]())
	whole := gen.MapOf(gen.OneConstOf("k", "j", "x"), gen.Int())

	p.Property("SetGet", prop.ForAll(
		func(m map[string]int, some bool, v int) bool {
			return laws.LensSetGet(at, eqPart, m, functional.FromPair(v, some))
		},
		whole, gen.Bool(), gen.Int(),
	))
	p.Property("GetSet", prop.ForAll(
		func(m map[string]int) bool {
			return laws.LensGetSet(at, eqWhole, m)
		},
		whole,
	))
	p.Property("SetSet", prop.ForAll(
		func(m map[string]int, some bool, v int) bool {
			return laws.LensSetSet(at, eqWhole, m, functional.FromPair(v, some))
		},
		whole, gen.Bool(), gen.Int(),
	))
}

func sliceIndexSuite(p *gopter.Properties) {
	eq := laws.SliceEq(laws.Equal[int]())
	whole := gen.SliceOf(gen.Int())
	index := gen.IntRange(0, 8)

	p.Property("TrySetTryGet", prop.ForAll(
		func(s []int, i, v int) bool {
			return laws.AffineTrySetTryGet(optics.Index[int](i), laws.Equal[int](), s, v)
		},
		whole, index, gen.Int(),
	))
	p.Property("TryGetTrySet", prop.ForAll(
		func(s []int, i int) bool {
			return laws.AffineTryGetTrySet(optics.Index[int](i), eq, s)
		},
		whole, index,
	))
	p.Property("TrySetTrySet", prop.ForAll(
		func(s []int, i, v int) bool {
			return laws.AffineTrySetTrySet(optics.Index[int](i), eq, s, v)
		},
		whole, index, gen.Int(),
	))
	p.Property("TryModify", prop.ForAll(
		func(s []int, i, v int) bool {
			return laws.AffineTryModify(optics.Index[int](i), eq, s, func(n int) int { return n ^ v })
		},
		whole, index, gen.Int(),
	))
}

func optionSomeSuite(p *gopter.Properties) {
	some := optics.SomePrism[int]()
	eq := laws.OptionEq(laws.Equal[int]())

	p.Property("InjectTryGet", prop.ForAll(
		func(v int) bool {
			return laws.PrismInjectTryGet(some, laws.Equal[int](), v)
		},
		gen.Int(),
	))
	p.Property("TryGetInject", prop.ForAll(
		func(present bool, v int) bool {
			return laws.PrismTryGetInject(some, eq, functional.FromPair(v, present))
		},
		gen.Bool(), gen.Int(),
	))
	p.Property("TryModify", prop.ForAll(
		func(present bool, v, d int) bool {
			return laws.PrismTryModify(some, eq, functional.FromPair(v, present), func(n int) int { return n - d })
		},
		gen.Bool(), gen.Int(), gen.Int(),
	))
}

func eitherOf(left bool, l int, r string) functional.Either[int, string] {
	if left {
		return functional.Left[int, string](l)
	}
	return functional.Right[int](r)
}

func eitherZipSuite(p *gopter.Properties) {
	zipped := optics.ZipPrism(optics.LeftPrism[int, string](), optics.RightPrism[int, string]())
	eq := laws.EitherEq(laws.Equal[int](), laws.Equal[string]())

	p.Property("InjectTryGet", prop.ForAll(
		func(left bool, l int, r string) bool {
			return laws.PrismInjectTryGet(zipped, eq, eitherOf(left, l, r))
		},
		gen.Bool(), gen.Int(), gen.AlphaString(),
	))
	p.Property("TryGetInject", prop.ForAll(
		func(left bool, l int, r string) bool {
			return laws.PrismTryGetInject(zipped, eq, eitherOf(left, l, r))
		},
		gen.Bool(), gen.Int(), gen.AlphaString(),
	))
}

func pairZipSuite(p *gopter.Properties) {
	zipped := optics.ZipLens(optics.First[int, string](), optics.Second[int, string]())
	eq := laws.PairEq(laws.Equal[int](), laws.Equal[string]())

	p.Property("SetGet", prop.ForAll(
		func(a int, b string, c int, d string) bool {
			return laws.LensSetGet(zipped, eq, functional.NewPair(a, b), functional.NewPair(c, d))
		},
		gen.Int(), gen.AlphaString(), gen.Int(), gen.AlphaString(),
	))
	p.Property("GetSet", prop.ForAll(
		func(a int, b string) bool {
			return laws.LensGetSet(zipped, eq, functional.NewPair(a, b))
		},
		gen.Int(), gen.AlphaString(),
	))
	p.Property("SetSet", prop.ForAll(
		func(a int, b string, c int, d string) bool {
			return laws.LensSetSet(zipped, eq, functional.NewPair(a, b), functional.NewPair(c, d))
		},
		gen.Int(), gen.AlphaString(), gen.Int(), gen.AlphaString(),
	))
}

func pairSwapSuite(p *gopter.Properties) {
	swap := optics.NewIso(functional.Pair[int, string].Swap, functional.Pair[string, int].Swap)

	p.Property("FromTo", prop.ForAll(
		func(a int, b string) bool {
			return laws.IsoFromTo(swap, laws.PairEq(laws.Equal[int](), laws.Equal[string]()), functional.NewPair(a, b))
		},
		gen.Int(), gen.AlphaString(),
	))
	p.Property("ToFrom", prop.ForAll(
		func(b string, a int) bool {
			return laws.IsoToFrom(swap, laws.PairEq(laws.Equal[string](), laws.Equal[int]()), functional.NewPair(b, a))
		},
		gen.AlphaString(), gen.Int(),
	))
}

func decimalSuite(p *gopter.Properties) {
	decimal := optics.Decimal()
	whole := gen.OneGenOf(
		gen.AnyString(),
		gen.NumString(),
		gen.Int().Map(strconv.Itoa),
	)

	p.Property("InjectTryGet", prop.ForAll(
		func(n int) bool {
			return laws.PrismInjectTryGet(decimal, laws.Equal[int](), n)
		},
		gen.Int(),
	))
	p.Property("TryGetInject", prop.ForAll(
		func(s string) bool {
			return laws.PrismTryGetInject(decimal, laws.Equal[string](), s)
		},
		whole,
	))
	p.Property("TryModify", prop.ForAll(
		func(s string, d int) bool {
			return laws.PrismTryModify(decimal, laws.Equal[string](), s, func(n int) int { return n + d })
		},
		whole, gen.IntRange(-1000, 1000),
	))
}
