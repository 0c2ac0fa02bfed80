package optics

import "github.com/authcorp/optics/functional"

// PLens focuses on a part that is always present. Set never mutates its
// input and always returns a new whole.
type PLens[S, T, A, B any] struct {
	get func(S) A
	set func(S, B) T
}

// Lens is a PLens that does not change types.
type Lens[S, A any] = PLens[S, S, A, A]

// NewLens creates a lens from get and set functions.
func NewLens[S, A any](get func(S) A, set func(S, A) S) Lens[S, A] {
	return Lens[S, A]{get: get, set: set}
}

// NewPLens creates a type-changing lens.
func NewPLens[S, T, A, B any](get func(S) A, set func(S, B) T) PLens[S, T, A, B] {
	return PLens[S, T, A, B]{get: get, set: set}
}

// Get retrieves the focused value.
func (l PLens[S, T, A, B]) Get(source S) A {
	return l.get(source)
}

// Set returns a new structure with the focused value replaced.
func (l PLens[S, T, A, B]) Set(source S, value B) T {
	return l.set(source, value)
}

// Modify applies a function to the focused value.
// It is exactly Set(source, fn(Get(source))).
func (l PLens[S, T, A, B]) Modify(source S, fn func(A) B) T {
	return l.set(source, fn(l.get(source)))
}

// TryGet always succeeds.
func (l PLens[S, T, A, B]) TryGet(source S) functional.Option[A] {
	return functional.Some(l.get(source))
}

// TrySet always succeeds.
func (l PLens[S, T, A, B]) TrySet(source S, value B) functional.Option[T] {
	return functional.Some(l.set(source, value))
}

// ToAffine widens the lens into an affine that never fails.
func (l PLens[S, T, A, B]) ToAffine() PAffine[S, T, A, B] {
	return PAffine[S, T, A, B]{
		tryGet: l.TryGet,
		trySet: l.TrySet,
	}
}

// Compose creates a lens focusing deeper: the inner set is applied to the
// outer part and the result is written back through the outer set.
func Compose[S, T, A, B, C, D any](outer PLens[S, T, A, B], inner PLens[A, B, C, D]) PLens[S, T, C, D] {
	return PLens[S, T, C, D]{
		get: func(s S) C {
			return inner.get(outer.get(s))
		},
		set: func(s S, d D) T {
			return outer.set(s, inner.set(outer.get(s), d))
		},
	}
}

// IdentityLens focuses on the whole itself.
func IdentityLens[S any]() Lens[S, S] {
	return Lens[S, S]{
		get: func(s S) S { return s },
		set: func(_ S, s S) S { return s },
	}
}

// First focuses on the first element of a pair.
func First[A, B any]() Lens[functional.Pair[A, B], A] {
	return Lens[functional.Pair[A, B], A]{
		get: func(p functional.Pair[A, B]) A { return p.First },
		set: func(p functional.Pair[A, B], a A) functional.Pair[A, B] {
			return functional.NewPair(a, p.Second)
		},
	}
}

// Second focuses on the second element of a pair.
func Second[A, B any]() Lens[functional.Pair[A, B], B] {
	return Lens[functional.Pair[A, B], B]{
		get: func(p functional.Pair[A, B]) B { return p.Second },
		set: func(p functional.Pair[A, B], b B) functional.Pair[A, B] {
			return functional.NewPair(p.First, b)
		},
	}
}

// At focuses on the value stored under key, or its absence. Setting Some
// inserts or replaces the entry and setting None deletes it. The lens is
// total: a missing key is a valid focus, not a failure.
func At[K comparable, V any](key K) Lens[map[K]V, functional.Option[V]] {
	return Lens[map[K]V, functional.Option[V]]{
		get: func(m map[K]V) functional.Option[V] {
			v, ok := m[key]
			return functional.FromPair(v, ok)
		},
		set: func(m map[K]V, opt functional.Option[V]) map[K]V {
			result := make(map[K]V, len(m)+1)
			for k, v := range m {
				result[k] = v
			}
			if v, ok := opt.Get(); ok {
				result[key] = v
			} else {
				delete(result, key)
			}
			return result
		},
	}
}

// ZipLens combines two lenses over the same whole into a lens onto the pair
// of their parts. Set writes first, then second; the lenses must focus on
// disjoint parts for the result to be lawful.
func ZipLens[S, A, B any](first Lens[S, A], second Lens[S, B]) Lens[S, functional.Pair[A, B]] {
	return Lens[S, functional.Pair[A, B]]{
		get: func(s S) functional.Pair[A, B] {
			return functional.NewPair(first.get(s), second.get(s))
		},
		set: func(s S, p functional.Pair[A, B]) S {
			return second.set(first.set(s, p.First), p.Second)
		},
	}
}

// ZipLens3 is ZipLens for three lenses.
func ZipLens3[S, A, B, C any](first Lens[S, A], second Lens[S, B], third Lens[S, C]) Lens[S, functional.Triple[A, B, C]] {
	return Lens[S, functional.Triple[A, B, C]]{
		get: func(s S) functional.Triple[A, B, C] {
			return functional.NewTriple(first.get(s), second.get(s), third.get(s))
		},
		set: func(s S, t functional.Triple[A, B, C]) S {
			return third.set(second.set(first.set(s, t.First), t.Second), t.Third)
		},
	}
}
