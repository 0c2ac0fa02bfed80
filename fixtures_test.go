package optics_test

import (
	"github.com/authcorp/optics"
	"github.com/authcorp/optics/functional"
	"pgregory.net/rapid"
)

type Person struct {
	Name    string
	Age     int
	Address Address
}

type Address struct {
	Street string
	City   string
}

func PersonNameLens() optics.Lens[Person, string] {
	return optics.NewLens(
		func(p Person) string { return p.Name },
		func(p Person, name string) Person { p.Name = name; return p },
	)
}

func PersonAgeLens() optics.Lens[Person, int] {
	return optics.NewLens(
		func(p Person) int { return p.Age },
		func(p Person, age int) Person { p.Age = age; return p },
	)
}

func PersonAddressLens() optics.Lens[Person, Address] {
	return optics.NewLens(
		func(p Person) Address { return p.Address },
		func(p Person, addr Address) Person { p.Address = addr; return p },
	)
}

func AddressCityLens() optics.Lens[Address, string] {
	return optics.NewLens(
		func(a Address) string { return a.City },
		func(a Address, city string) Address { a.City = city; return a },
	)
}

func AddressStreetLens() optics.Lens[Address, string] {
	return optics.NewLens(
		func(a Address) string { return a.Street },
		func(a Address, street string) Address { a.Street = street; return a },
	)
}

// Product is a two-field record used to build nested wholes.
type Product[L, R comparable] struct {
	Left  L
	Right R
}

func LeftLens[L, R comparable]() optics.Lens[Product[L, R], L] {
	return optics.NewLens(
		func(p Product[L, R]) L { return p.Left },
		func(p Product[L, R], l L) Product[L, R] { p.Left = l; return p },
	)
}

func RightLens[L, R comparable]() optics.Lens[Product[L, R], R] {
	return optics.NewLens(
		func(p Product[L, R]) R { return p.Right },
		func(p Product[L, R], r R) Product[L, R] { p.Right = r; return p },
	)
}

type (
	inner = Product[int, int]
	mid   = Product[inner, int]
	outer = Product[int, mid]
)

func outerGen() *rapid.Generator[outer] {
	return rapid.Custom(func(t *rapid.T) outer {
		return outer{
			Left: rapid.Int().Draw(t, "l1"),
			Right: mid{
				Left:  inner{Left: rapid.Int().Draw(t, "l3"), Right: rapid.Int().Draw(t, "r3")},
				Right: rapid.Int().Draw(t, "r2"),
			},
		}
	})
}

// Shape is a closed sum type with two cases.
type Shape interface{ isShape() }

type Circle struct{ Radius int }

type Square struct{ Side int }

func (Circle) isShape() {}
func (Square) isShape() {}

func CirclePrism() optics.Prism[Shape, Circle] {
	return optics.NewPrism(
		func(s Shape) functional.Option[Circle] {
			c, ok := s.(Circle)
			return functional.FromPair(c, ok)
		},
		func(c Circle) Shape { return c },
	)
}

func SquarePrism() optics.Prism[Shape, Square] {
	return optics.NewPrism(
		func(s Shape) functional.Option[Square] {
			sq, ok := s.(Square)
			return functional.FromPair(sq, ok)
		},
		func(sq Square) Shape { return sq },
	)
}

func RadiusLens() optics.Lens[Circle, int] {
	return optics.NewLens(
		func(c Circle) int { return c.Radius },
		func(c Circle, r int) Circle { c.Radius = r; return c },
	)
}

func shapeGen() *rapid.Generator[Shape] {
	return rapid.Custom(func(t *rapid.T) Shape {
		n := rapid.IntRange(0, 1000).Draw(t, "n")
		if rapid.Bool().Draw(t, "circle") {
			return Circle{Radius: n}
		}
		return Square{Side: n}
	})
}

func shapeEq(x, y Shape) bool { return x == y }
