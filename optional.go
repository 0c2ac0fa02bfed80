package optics

import "github.com/authcorp/optics/functional"

// ComposeOptional chains a lens onto an optional part with a lens into that
// part. Reading through an absent outer part yields None. Writing Some
// starts from def when the outer part is absent. Writing None clears the
// outer part, the only layer that can represent absence.
func ComposeOptional[S, A, B any](outer Lens[S, functional.Option[A]], inner Lens[A, B], def A) Lens[S, functional.Option[B]] {
	return Lens[S, functional.Option[B]]{
		get: func(s S) functional.Option[B] {
			return functional.MapOption(outer.get(s), inner.get)
		},
		set: func(s S, ob functional.Option[B]) S {
			b, ok := ob.Get()
			if !ok {
				return outer.set(s, functional.None[A]())
			}
			base := outer.get(s).UnwrapOr(def)
			return outer.set(s, functional.Some(inner.set(base, b)))
		},
	}
}

// ComposeOptionalFlat is ComposeOptional for an inner lens whose focus is
// itself optional. Writing None clears the inner layer only: a present
// outer part stays present with its inner part cleared, and an absent
// outer part stays absent.
func ComposeOptionalFlat[S, A, B any](outer Lens[S, functional.Option[A]], inner Lens[A, functional.Option[B]], def A) Lens[S, functional.Option[B]] {
	return Lens[S, functional.Option[B]]{
		get: func(s S) functional.Option[B] {
			return functional.FlatMapOption(outer.get(s), inner.get)
		},
		set: func(s S, ob functional.Option[B]) S {
			current := outer.get(s)
			if ob.IsNone() {
				a, ok := current.Get()
				if !ok {
					return outer.set(s, current)
				}
				return outer.set(s, functional.Some(inner.set(a, ob)))
			}
			base := current.UnwrapOr(def)
			return outer.set(s, functional.Some(inner.set(base, ob)))
		},
	}
}
