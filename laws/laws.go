// Package laws provides the round-trip laws every optic kind must obey, as
// pure predicates over a single sample.
//
// The library cannot enforce these laws at compile time. Run the predicates
// over representative data (package opticstest drives them with rapid) to
// validate hand-written optics.
//
// A lens is well-behaved when it satisfies SetGet and GetSet, and very
// well-behaved when it also satisfies SetSet. A prism is well-behaved when
// it satisfies InjectTryGet and TryGetInject. Affine laws mirror the lens
// laws over optional results, holding vacuously when an operation fails.
package laws

import (
	"github.com/authcorp/optics"
	"github.com/authcorp/optics/functional"
)

// LensSetGet: getting what was just set yields the set value.
func LensSetGet[S, A any](l optics.Lens[S, A], eq Eq[A], whole S, part A) bool {
	return eq(l.Get(l.Set(whole, part)), part)
}

// LensGetSet: setting what was just got leaves the whole unchanged.
func LensGetSet[S, A any](l optics.Lens[S, A], eq Eq[S], whole S) bool {
	return eq(l.Set(whole, l.Get(whole)), whole)
}

// LensSetSet: setting twice is the same as setting once.
func LensSetSet[S, A any](l optics.Lens[S, A], eq Eq[S], whole S, part A) bool {
	once := l.Set(whole, part)
	return eq(l.Set(once, part), once)
}

// LensModify: Modify(fn) equals Set of fn applied to Get.
func LensModify[S, A any](l optics.Lens[S, A], eq Eq[S], whole S, fn func(A) A) bool {
	return eq(l.Modify(whole, fn), l.Set(whole, fn(l.Get(whole))))
}

// PrismInjectTryGet: matching an injected part yields that part.
func PrismInjectTryGet[S, A any](p optics.Prism[S, A], eq Eq[A], part A) bool {
	got, ok := p.TryGet(p.Inject(part)).Get()
	return ok && eq(got, part)
}

// PrismTryGetInject: injecting a matched part rebuilds the original whole.
// Holds vacuously when whole does not match.
func PrismTryGetInject[S, A any](p optics.Prism[S, A], eq Eq[S], whole S) bool {
	part, ok := p.TryGet(whole).Get()
	if !ok {
		return true
	}
	return eq(p.Inject(part), whole)
}

// PrismTryModify: TryModify(fn) equals injecting fn of the matched part.
func PrismTryModify[S, A any](p optics.Prism[S, A], eq Eq[S], whole S, fn func(A) A) bool {
	expected := functional.MapOption(p.TryGet(whole), func(a A) S { return p.Inject(fn(a)) })
	return OptionEq(eq)(p.TryModify(whole, fn), expected)
}

// AffineTrySetTryGet: reading back a successful write yields the written
// part.
func AffineTrySetTryGet[S, A any](a optics.Affine[S, A], eq Eq[A], whole S, part A) bool {
	updated, ok := a.TrySet(whole, part).Get()
	if !ok {
		return true
	}
	return OptionEq(eq)(a.TryGet(updated), functional.Some(part))
}

// AffineTryGetTrySet: writing back a successful read leaves the whole
// unchanged.
func AffineTryGetTrySet[S, A any](a optics.Affine[S, A], eq Eq[S], whole S) bool {
	part, ok := a.TryGet(whole).Get()
	if !ok {
		return true
	}
	return OptionEq(eq)(a.TrySet(whole, part), functional.Some(whole))
}

// AffineTrySetTrySet: writing twice is the same as writing once.
func AffineTrySetTrySet[S, A any](a optics.Affine[S, A], eq Eq[S], whole S, part A) bool {
	once := a.TrySet(whole, part)
	twice := functional.FlatMapOption(once, func(s S) functional.Option[S] { return a.TrySet(s, part) })
	return OptionEq(eq)(twice, once)
}

// AffineTryModify: TryModify(fn) equals a write of fn applied to the read.
func AffineTryModify[S, A any](a optics.Affine[S, A], eq Eq[S], whole S, fn func(A) A) bool {
	expected := functional.FlatMapOption(a.TryGet(whole), func(v A) functional.Option[S] {
		return a.TrySet(whole, fn(v))
	})
	return OptionEq(eq)(a.TryModify(whole, fn), expected)
}

// IsoFromTo: mapping a whole there and back yields the whole.
func IsoFromTo[S, A any](i optics.Iso[S, A], eq Eq[S], whole S) bool {
	return eq(i.To(i.From(whole)), whole)
}

// IsoToFrom: mapping a part back and there yields the part.
func IsoToFrom[S, A any](i optics.Iso[S, A], eq Eq[A], part A) bool {
	return eq(i.From(i.To(part)), part)
}

// LensAssociative: (l1∘l2)∘l3 and l1∘(l2∘l3) agree on get and on set.
func LensAssociative[S, A, B, C any](l1 optics.Lens[S, A], l2 optics.Lens[A, B], l3 optics.Lens[B, C], eqS Eq[S], eqC Eq[C], whole S, part C) bool {
	left := optics.Compose(optics.Compose(l1, l2), l3)
	right := optics.Compose(l1, optics.Compose(l2, l3))
	return eqC(left.Get(whole), right.Get(whole)) &&
		eqS(left.Set(whole, part), right.Set(whole, part))
}

// PrismAssociative: (p1∘p2)∘p3 and p1∘(p2∘p3) agree on tryGet and inject.
func PrismAssociative[S, A, B, C any](p1 optics.Prism[S, A], p2 optics.Prism[A, B], p3 optics.Prism[B, C], eqS Eq[S], eqC Eq[C], whole S, part C) bool {
	left := optics.ComposePrism(optics.ComposePrism(p1, p2), p3)
	right := optics.ComposePrism(p1, optics.ComposePrism(p2, p3))
	return OptionEq(eqC)(left.TryGet(whole), right.TryGet(whole)) &&
		eqS(left.Inject(part), right.Inject(part))
}

// AffineAssociative: (a1∘a2)∘a3 and a1∘(a2∘a3) agree on tryGet and trySet.
func AffineAssociative[S, A, B, C any](a1 optics.Affine[S, A], a2 optics.Affine[A, B], a3 optics.Affine[B, C], eqS Eq[S], eqC Eq[C], whole S, part C) bool {
	left := optics.ComposeAffine(optics.ComposeAffine(a1, a2), a3)
	right := optics.ComposeAffine(a1, optics.ComposeAffine(a2, a3))
	return OptionEq(eqC)(left.TryGet(whole), right.TryGet(whole)) &&
		OptionEq(eqS)(left.TrySet(whole, part), right.TrySet(whole, part))
}
