package optics

import "github.com/authcorp/optics/functional"

// PAffine focuses on a part that may be missing, where writing may also be
// refused when the whole is not in a suitable shape. It is the weakest
// optic: every other kind converts into it.
type PAffine[S, T, A, B any] struct {
	tryGet func(S) functional.Option[A]
	trySet func(S, B) functional.Option[T]
}

// Affine is a PAffine that does not change types.
type Affine[S, A any] = PAffine[S, S, A, A]

// NewAffine creates an affine from tryGet and trySet functions.
func NewAffine[S, A any](tryGet func(S) functional.Option[A], trySet func(S, A) functional.Option[S]) Affine[S, A] {
	return Affine[S, A]{tryGet: tryGet, trySet: trySet}
}

// NewPAffine creates a type-changing affine.
func NewPAffine[S, T, A, B any](tryGet func(S) functional.Option[A], trySet func(S, B) functional.Option[T]) PAffine[S, T, A, B] {
	return PAffine[S, T, A, B]{tryGet: tryGet, trySet: trySet}
}

// TryGet attempts to read the focused value.
func (a PAffine[S, T, A, B]) TryGet(source S) functional.Option[A] {
	return a.tryGet(source)
}

// TrySet attempts to write the focused value.
func (a PAffine[S, T, A, B]) TrySet(source S, value B) functional.Option[T] {
	return a.trySet(source, value)
}

// TryModify reads the focus, maps it through fn and writes it back.
// It fails if either the read or the write fails.
func (a PAffine[S, T, A, B]) TryModify(source S, fn func(A) B) functional.Option[T] {
	v, ok := a.tryGet(source).Get()
	if !ok {
		return functional.None[T]()
	}
	return a.trySet(source, fn(v))
}

// ToAffine returns a itself.
func (a PAffine[S, T, A, B]) ToAffine() PAffine[S, T, A, B] {
	return a
}

// SetAffine writes value, or returns source unchanged when the write fails.
func SetAffine[S, A any](a Affine[S, A], source S, value A) S {
	return a.trySet(source, value).UnwrapOr(source)
}

// OverAffine applies fn to the focus, or returns source unchanged when the
// read or the write fails.
func OverAffine[S, A any](a Affine[S, A], source S, fn func(A) A) S {
	return a.TryModify(source, fn).UnwrapOr(source)
}

// ComposeAffine creates an affine focusing deeper. Reading and writing both
// stop at the first failure.
func ComposeAffine[S, T, A, B, C, D any](outer PAffine[S, T, A, B], inner PAffine[A, B, C, D]) PAffine[S, T, C, D] {
	return PAffine[S, T, C, D]{
		tryGet: func(s S) functional.Option[C] {
			return functional.FlatMapOption(outer.tryGet(s), inner.tryGet)
		},
		trySet: func(s S, d D) functional.Option[T] {
			a, ok := outer.tryGet(s).Get()
			if !ok {
				return functional.None[T]()
			}
			b, ok := inner.trySet(a, d).Get()
			if !ok {
				return functional.None[T]()
			}
			return outer.trySet(s, b)
		},
	}
}

// ComposeLensPrism focuses through a lens and then into one case of the
// lensed part.
func ComposeLensPrism[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PPrism[A, B, C, D]) PAffine[S, T, C, D] {
	return ComposeAffine(outer.ToAffine(), inner.ToAffine())
}

// ComposePrismLens focuses into one case and then through a lens on it.
func ComposePrismLens[S, T, A, B, C, D any](outer PPrism[S, T, A, B], inner PLens[A, B, C, D]) PAffine[S, T, C, D] {
	return ComposeAffine(outer.ToAffine(), inner.ToAffine())
}

// ZipAffine combines two affines over the same whole. TryGet succeeds only
// when both do. TrySet always succeeds: each component is written in turn,
// keeping the previous whole for a component whose write fails.
func ZipAffine[S, A, B any](first Affine[S, A], second Affine[S, B]) Affine[S, functional.Pair[A, B]] {
	return Affine[S, functional.Pair[A, B]]{
		tryGet: func(s S) functional.Option[functional.Pair[A, B]] {
			return functional.ZipOption(first.tryGet(s), second.tryGet(s))
		},
		trySet: func(s S, p functional.Pair[A, B]) functional.Option[S] {
			return functional.Some(SetAffine(second, SetAffine(first, s, p.First), p.Second))
		},
	}
}

// Index focuses on the element at position i of a slice. Both directions
// fail when i is out of bounds. Writing replaces the element in a copy;
// neighbours keep their positions and the input slice is not modified.
func Index[T any](i int) Affine[[]T, T] {
	return Affine[[]T, T]{
		tryGet: func(s []T) functional.Option[T] {
			if i < 0 || i >= len(s) {
				return functional.None[T]()
			}
			return functional.Some(s[i])
		},
		trySet: func(s []T, v T) functional.Option[[]T] {
			if i < 0 || i >= len(s) {
				return functional.None[[]T]()
			}
			result := make([]T, len(s))
			copy(result, s)
			result[i] = v
			return functional.Some(result)
		},
	}
}
