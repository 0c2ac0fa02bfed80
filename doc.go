// Package optics provides composable accessors for reading and updating
// nested immutable values.
//
// Four optic kinds are offered, from strongest to weakest:
//
//   - [Adapter] (and its same-type alias [Iso]): a lossless two-way transform.
//   - [PLens] ([Lens]): a total getter paired with a total setter.
//   - [PPrism] ([Prism]): a partial getter for one case of a sum type, with a
//     total injection back into the whole.
//   - [PAffine] ([Affine]): a partial getter paired with a partial setter.
//
// Each kind is parameterised by S (source), T (target), A (focus read) and
// B (focus written). The aliases fix S=T and A=B, which is the usual
// in-place style update where neither the whole nor the part change type.
//
// Stronger kinds widen into weaker ones with ToLens, ToPrism and ToAffine.
// Every kind satisfies [Optic], so any of them can be handled as an affine.
//
// Composition is spelled with functions because Go methods cannot declare
// their own type parameters:
//
//	street := optics.Compose(personAddress, addressStreet)
//	updated := street.Set(person, "Main St")
//
// Composing keeps the weakest kind in the chain: [Compose] for lenses,
// [ComposePrism] for prisms, [ComposeAffine] for affines, and
// [ComposeLensPrism] / [ComposePrismLens] when the two meet.
//
// Failures are reported as [functional.None], never as errors or panics.
// The same-type helpers [SetAffine], [OverAffine], [SetPrism] and
// [OverPrism] fall back to the unchanged whole instead.
//
// Optics hold no mutable state and may be shared freely across goroutines.
// Law predicates for validating custom optics live in package laws.
package optics
