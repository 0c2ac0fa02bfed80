package optics_test

import (
	"strconv"
	"testing"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/functional"
	"github.com/authcorp/optics/laws"
	"github.com/authcorp/optics/opticstest"
	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

// Couple is Product with the fields swapped.
type Couple struct {
	Left  int
	Right int
}

func productCouple() optics.Iso[Product[int, int], Couple] {
	return optics.NewIso(
		func(p Product[int, int]) Couple { return Couple{Left: p.Right, Right: p.Left} },
		func(c Couple) Product[int, int] { return Product[int, int]{Left: c.Right, Right: c.Left} },
	)
}

func coupleProduct() optics.Iso[Couple, Product[int, int]] {
	return productCouple().Invert()
}

func productGen() *rapid.Generator[Product[int, int]] {
	return rapid.Custom(func(t *rapid.T) Product[int, int] {
		return Product[int, int]{Left: rapid.Int().Draw(t, "l"), Right: rapid.Int().Draw(t, "r")}
	})
}

func coupleGen() *rapid.Generator[Couple] {
	return rapid.Custom(func(t *rapid.T) Couple {
		return Couple{Left: rapid.Int().Draw(t, "l"), Right: rapid.Int().Draw(t, "r")}
	})
}

func TestComposedIsoLaws(t *testing.T) {
	composed := optics.ComposeAdapter(productCouple(), coupleProduct())

	assert.Equal(t, Product[int, int]{Left: 1, Right: 2}, composed.From(Product[int, int]{Left: 1, Right: 2}))

	opticstest.CheckIsoLaws(t, composed, opticstest.Case[Product[int, int], Product[int, int]]{
		Whole:   productGen(),
		Part:    productGen(),
		EqWhole: laws.Equal[Product[int, int]](),
		EqPart:  laws.Equal[Product[int, int]](),
	})
	opticstest.CheckIsoLaws(t, productCouple(), opticstest.Case[Product[int, int], Couple]{
		Whole:   productGen(),
		Part:    coupleGen(),
		EqWhole: laws.Equal[Product[int, int]](),
		EqPart:  laws.Equal[Couple](),
	})
}

func TestAdapterOperations(t *testing.T) {
	iso := productCouple()
	p := Product[int, int]{Left: 1, Right: 2}

	t.Run("Invert swaps directions", func(t *testing.T) {
		assert.Equal(t, iso.To(Couple{Left: 5, Right: 6}), iso.Invert().From(Couple{Left: 5, Right: 6}))
		assert.Equal(t, iso.From(p), iso.Invert().To(p))
	})

	t.Run("Under conjugates a whole transform", func(t *testing.T) {
		bumpLeft := func(p Product[int, int]) Product[int, int] { p.Left++; return p }
		// Couple.Right mirrors Product.Left.
		assert.Equal(t, Couple{Left: 1, Right: 11}, iso.Under(bumpLeft)(Couple{Left: 1, Right: 10}))
	})

	t.Run("Modify", func(t *testing.T) {
		assert.Equal(t, Product[int, int]{Left: 1, Right: 20},
			iso.Modify(p, func(c Couple) Couple { c.Left *= 10; return c }))
	})

	t.Run("ToLens ignores the current whole on set", func(t *testing.T) {
		l := iso.ToLens()
		assert.Equal(t, Couple{Left: 2, Right: 1}, l.Get(p))
		assert.Equal(t, Product[int, int]{Left: 8, Right: 9}, l.Set(p, Couple{Left: 9, Right: 8}))
		opticstest.CheckLensLaws(t, l, opticstest.Case[Product[int, int], Couple]{
			Whole:   productGen(),
			Part:    coupleGen(),
			EqWhole: laws.Equal[Product[int, int]](),
			EqPart:  laws.Equal[Couple](),
		})
	})

	t.Run("ToPrism always matches", func(t *testing.T) {
		pr := iso.ToPrism()
		assert.True(t, pr.IsCase(p))
		assert.Equal(t, functional.Some(Couple{Left: 2, Right: 1}), pr.TryGet(p))
		assert.Equal(t, p, pr.Inject(Couple{Left: 2, Right: 1}))
	})

	t.Run("ToAffine never fails", func(t *testing.T) {
		a := iso.ToAffine()
		assert.Equal(t, functional.Some(Product[int, int]{Left: 4, Right: 3}), a.TrySet(p, Couple{Left: 3, Right: 4}))
	})

	t.Run("adapter composes with a lens after widening", func(t *testing.T) {
		l := optics.Compose(iso.ToLens(), optics.NewLens(
			func(c Couple) int { return c.Left },
			func(c Couple, n int) Couple { c.Left = n; return c },
		))
		assert.Equal(t, 2, l.Get(p))
		assert.Equal(t, Product[int, int]{Left: 1, Right: 7}, l.Set(p, 7))
	})

	t.Run("identity", func(t *testing.T) {
		id := optics.IdentityIso[string]()
		assert.Equal(t, "x", id.From("x"))
		assert.Equal(t, "y", id.To("y"))
	})
}

func TestTypeChangingAdapter(t *testing.T) {
	a := optics.NewAdapter(
		func(n int) string { return strconv.Itoa(n) },
		func(s string) []byte { return []byte(s) },
	)
	assert.Equal(t, "12", a.From(12))
	assert.Equal(t, []byte("12"), a.Modify(12, func(s string) string { return s }))

	inv := a.Invert()
	assert.Equal(t, "3", inv.To(3))
	assert.Equal(t, []byte("x"), inv.From("x"))
}

func TestZipIso(t *testing.T) {
	number := optics.IdentityIso[int]()
	text := optics.NewIso(
		strconv.Itoa,
		func(s string) int { n, _ := strconv.Atoi(s); return n },
	)
	zipped := optics.ZipIso(number, text)

	assert.Equal(t, functional.NewPair(21, "21"), zipped.From(21))
	assert.Equal(t, 21, zipped.To(functional.NewPair(21, "ignored")))

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.Int().Draw(t, "n")
		if !laws.IsoFromTo(zipped, laws.Equal[int](), n) {
			t.Fatalf("FromTo violated for %d", n)
		}
	})
}
