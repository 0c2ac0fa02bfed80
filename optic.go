package optics

import "github.com/authcorp/optics/functional"

// Optic is the capability shared by every optic kind: a possibly failing
// read of the focus and a possibly failing write of a new focus.
// Total kinds always answer with Some.
type Optic[S, T, A, B any] interface {
	TryGet(source S) functional.Option[A]
	TrySet(source S, value B) functional.Option[T]
	ToAffine() PAffine[S, T, A, B]
}

var (
	_ Optic[int, int, int, int] = Adapter[int, int, int, int]{}
	_ Optic[int, int, int, int] = PLens[int, int, int, int]{}
	_ Optic[int, int, int, int] = PPrism[int, int, int, int]{}
	_ Optic[int, int, int, int] = PAffine[int, int, int, int]{}
)
