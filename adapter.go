package optics

import "github.com/authcorp/optics/functional"

// Adapter establishes a one-to-one relationship between wholes and parts.
// Specialised to S=T, A=B it is an isomorphism and must round-trip both ways.
type Adapter[S, T, A, B any] struct {
	from func(S) A
	to   func(B) T
}

// Iso is an Adapter that does not change types.
type Iso[S, A any] = Adapter[S, S, A, A]

// NewAdapter creates an adapter from a pair of total functions.
func NewAdapter[S, T, A, B any](from func(S) A, to func(B) T) Adapter[S, T, A, B] {
	return Adapter[S, T, A, B]{from: from, to: to}
}

// NewIso creates an isomorphism from a function and its inverse.
func NewIso[S, A any](from func(S) A, to func(A) S) Iso[S, A] {
	return Iso[S, A]{from: from, to: to}
}

// IdentityIso is the isomorphism of a type with itself.
func IdentityIso[S any]() Iso[S, S] {
	return NewIso(func(s S) S { return s }, func(s S) S { return s })
}

// From maps a whole to its part.
func (a Adapter[S, T, A, B]) From(source S) A {
	return a.from(source)
}

// To maps a part back to a whole.
func (a Adapter[S, T, A, B]) To(value B) T {
	return a.to(value)
}

// Invert swaps the two directions. Only lawful when a is an isomorphism.
func (a Adapter[S, T, A, B]) Invert() Adapter[B, A, T, S] {
	return Adapter[B, A, T, S]{from: a.to, to: a.from}
}

// Under turns a transform of wholes into a transform of parts:
// to, then transform, then from.
func (a Adapter[S, T, A, B]) Under(transform func(T) S) func(B) A {
	return func(b B) A {
		return a.from(transform(a.to(b)))
	}
}

// Modify maps the part of source through fn and rebuilds the whole.
func (a Adapter[S, T, A, B]) Modify(source S, fn func(A) B) T {
	return a.to(fn(a.from(source)))
}

// TryGet always succeeds.
func (a Adapter[S, T, A, B]) TryGet(source S) functional.Option[A] {
	return functional.Some(a.from(source))
}

// TrySet always succeeds and ignores source.
func (a Adapter[S, T, A, B]) TrySet(_ S, value B) functional.Option[T] {
	return functional.Some(a.to(value))
}

// ToLens widens the adapter into a lens whose setter discards the current
// whole and rebuilds it from the part. No information is lost because the
// part determines the whole.
func (a Adapter[S, T, A, B]) ToLens() PLens[S, T, A, B] {
	to := a.to
	return PLens[S, T, A, B]{
		get: a.from,
		set: func(_ S, b B) T { return to(b) },
	}
}

// ToPrism widens the adapter into a prism that always matches.
func (a Adapter[S, T, A, B]) ToPrism() PPrism[S, T, A, B] {
	from := a.from
	return PPrism[S, T, A, B]{
		tryGet: func(s S) functional.Option[A] { return functional.Some(from(s)) },
		inject: a.to,
	}
}

// ToAffine widens the adapter into an affine that never fails.
func (a Adapter[S, T, A, B]) ToAffine() PAffine[S, T, A, B] {
	return a.ToLens().ToAffine()
}

// ComposeAdapter chains two adapters: outer.from then inner.from on the way
// in, inner.to then outer.to on the way out.
func ComposeAdapter[S, T, A, B, C, D any](outer Adapter[S, T, A, B], inner Adapter[A, B, C, D]) Adapter[S, T, C, D] {
	return Adapter[S, T, C, D]{
		from: func(s S) C {
			return inner.from(outer.from(s))
		},
		to: func(d D) T {
			return outer.to(inner.to(d))
		},
	}
}

// ZipIso pairs two isomorphisms over the same whole. The whole is rebuilt
// from the first component alone, so the result is only an isomorphism
// when both parts carry the same information.
func ZipIso[S, A, B any](first Iso[S, A], second Iso[S, B]) Iso[S, functional.Pair[A, B]] {
	return Iso[S, functional.Pair[A, B]]{
		from: func(s S) functional.Pair[A, B] {
			return functional.NewPair(first.from(s), second.from(s))
		},
		to: func(p functional.Pair[A, B]) S {
			return first.to(p.First)
		},
	}
}
