package opticstest

import (
	"testing"

	"github.com/authcorp/optics"
	"github.com/authcorp/optics/laws"
	"pgregory.net/rapid"
)

// Case describes the samples and equalities a law check draws on.
type Case[S, A any] struct {
	Whole   *rapid.Generator[S]
	Part    *rapid.Generator[A]
	EqWhole laws.Eq[S]
	EqPart  laws.Eq[A]
}

// CheckLensLaws runs SetGet, GetSet and SetSet for l as subtests.
func CheckLensLaws[S, A any](t *testing.T, l optics.Lens[S, A], c Case[S, A]) {
	t.Helper()

	t.Run("SetGet", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			whole := c.Whole.Draw(t, "whole")
			part := c.Part.Draw(t, "part")
			if !laws.LensSetGet(l, c.EqPart, whole, part) {
				t.Fatalf("SetGet violated for whole=%v part=%v", whole, part)
			}
		})
	})
	t.Run("GetSet", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			whole := c.Whole.Draw(t, "whole")
			if !laws.LensGetSet(l, c.EqWhole, whole) {
				t.Fatalf("GetSet violated for whole=%v", whole)
			}
		})
	})
	t.Run("SetSet", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			whole := c.Whole.Draw(t, "whole")
			part := c.Part.Draw(t, "part")
			if !laws.LensSetSet(l, c.EqWhole, whole, part) {
				t.Fatalf("SetSet violated for whole=%v part=%v", whole, part)
			}
		})
	})
}

// CheckPrismLaws runs InjectTryGet and TryGetInject for p as subtests.
func CheckPrismLaws[S, A any](t *testing.T, p optics.Prism[S, A], c Case[S, A]) {
	t.Helper()

	t.Run("InjectTryGet", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			part := c.Part.Draw(t, "part")
			if !laws.PrismInjectTryGet(p, c.EqPart, part) {
				t.Fatalf("InjectTryGet violated for part=%v", part)
			}
		})
	})
	t.Run("TryGetInject", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			whole := c.Whole.Draw(t, "whole")
			if !laws.PrismTryGetInject(p, c.EqWhole, whole) {
				t.Fatalf("TryGetInject violated for whole=%v", whole)
			}
		})
	})
}

// CheckAffineLaws runs TrySetTryGet, TryGetTrySet and TrySetTrySet for a as
// subtests.
func CheckAffineLaws[S, A any](t *testing.T, a optics.Affine[S, A], c Case[S, A]) {
	t.Helper()

	t.Run("TrySetTryGet", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			whole := c.Whole.Draw(t, "whole")
			part := c.Part.Draw(t, "part")
			if !laws.AffineTrySetTryGet(a, c.EqPart, whole, part) {
				t.Fatalf("TrySetTryGet violated for whole=%v part=%v", whole, part)
			}
		})
	})
	t.Run("TryGetTrySet", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			whole := c.Whole.Draw(t, "whole")
			if !laws.AffineTryGetTrySet(a, c.EqWhole, whole) {
				t.Fatalf("TryGetTrySet violated for whole=%v", whole)
			}
		})
	})
	t.Run("TrySetTrySet", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			whole := c.Whole.Draw(t, "whole")
			part := c.Part.Draw(t, "part")
			if !laws.AffineTrySetTrySet(a, c.EqWhole, whole, part) {
				t.Fatalf("TrySetTrySet violated for whole=%v part=%v", whole, part)
			}
		})
	})
}

// CheckIsoLaws runs FromTo and ToFrom for i as subtests.
func CheckIsoLaws[S, A any](t *testing.T, i optics.Iso[S, A], c Case[S, A]) {
	t.Helper()

	t.Run("FromTo", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			whole := c.Whole.Draw(t, "whole")
			if !laws.IsoFromTo(i, c.EqWhole, whole) {
				t.Fatalf("FromTo violated for whole=%v", whole)
			}
		})
	})
	t.Run("ToFrom", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			part := c.Part.Draw(t, "part")
			if !laws.IsoToFrom(i, c.EqPart, part) {
				t.Fatalf("ToFrom violated for part=%v", part)
			}
		})
	})
}
