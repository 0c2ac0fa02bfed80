package optics

import "github.com/authcorp/optics/functional"

// BoundLens is a lens paired with the whole it was bound to. The whole is
// captured by value at bind time; later changes to the caller's variable do
// not affect it. Wholes holding maps or slices share their backing storage
// unless bound with BindCopy.
type BoundLens[S, A any] struct {
	value S
	lens  Lens[S, A]
}

// Bind pairs l with source.
func Bind[S, A any](l Lens[S, A], source S) BoundLens[S, A] {
	return BoundLens[S, A]{value: source, lens: l}
}

// BindCopy pairs l with clone(source), for wholes that share storage.
func BindCopy[S, A any](l Lens[S, A], source S, clone func(S) S) BoundLens[S, A] {
	return BoundLens[S, A]{value: clone(source), lens: l}
}

// Unmodified returns the bound whole.
func (b BoundLens[S, A]) Unmodified() S {
	return b.value
}

// Get returns the focused part of the bound whole.
func (b BoundLens[S, A]) Get() A {
	return b.lens.get(b.value)
}

// Set returns a copy of the bound whole with the part replaced.
func (b BoundLens[S, A]) Set(part A) S {
	return b.lens.set(b.value, part)
}

// Over returns a copy of the bound whole with fn applied to the part.
func (b BoundLens[S, A]) Over(fn func(A) A) S {
	return b.lens.Modify(b.value, fn)
}

// ShouldEq returns the bound whole untouched when its part already equals
// required according to eq, and sets the part otherwise.
func (b BoundLens[S, A]) ShouldEq(required A, eq func(A, A) bool) S {
	if eq(b.Get(), required) {
		return b.value
	}
	return b.Set(required)
}

// Should is ShouldEq for comparable parts.
func Should[S any, A comparable](b BoundLens[S, A], required A) S {
	return b.ShouldEq(required, func(x, y A) bool { return x == y })
}

// BoundPrism is a prism paired with the whole it was bound to, captured by
// value at bind time.
type BoundPrism[S, A any] struct {
	value S
	prism Prism[S, A]
}

// BindPrism pairs p with source.
func BindPrism[S, A any](p Prism[S, A], source S) BoundPrism[S, A] {
	return BoundPrism[S, A]{value: source, prism: p}
}

// Unmodified returns the bound whole.
func (b BoundPrism[S, A]) Unmodified() S {
	return b.value
}

// TryGet returns the focused part when the bound whole is in the focused case.
func (b BoundPrism[S, A]) TryGet() functional.Option[A] {
	return b.prism.tryGet(b.value)
}

// IsCase reports whether the bound whole is in the focused case.
func (b BoundPrism[S, A]) IsCase() bool {
	return b.prism.IsCase(b.value)
}

// Inject builds a new whole from part, ignoring the bound whole.
func (b BoundPrism[S, A]) Inject(part A) S {
	return b.prism.inject(part)
}

// Set replaces the part, or returns the bound whole when it does not match.
func (b BoundPrism[S, A]) Set(part A) S {
	return SetPrism(b.prism, b.value, part)
}

// TryOver applies fn to the part, or returns None when the bound whole does
// not match.
func (b BoundPrism[S, A]) TryOver(fn func(A) A) functional.Option[S] {
	return b.prism.TryModify(b.value, fn)
}

// Over applies fn to the part, or returns the bound whole when it does not
// match.
func (b BoundPrism[S, A]) Over(fn func(A) A) S {
	return OverPrism(b.prism, b.value, fn)
}
