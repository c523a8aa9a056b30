package either

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestMapFunctorLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("MapRight with identity preserves the value", prop.ForAll(
		func(n int) bool {
			e := Right[string](n)
			mapped := MapRight(e, func(x int) int { return x })
			return Equal(e, mapped)
		},
		gen.Int(),
	))

	properties.Property("MapRight leaves a left value untouched", prop.ForAll(
		func(s string) bool {
			e := Left[string, int](s)
			mapped := MapRight(e, func(x int) int { return x * 2 })
			return mapped.IsLeft() && mapped.LeftValue() == s
		},
		gen.AnyString(),
	))

	properties.Property("MapRight composes", prop.ForAll(
		func(n, addend, multiplier int) bool {
			e := Right[string](n)
			f := func(x int) int { return x + addend }
			g := func(x int) int { return x * multiplier }
			composed := MapRight(MapRight(e, f), g)
			fused := MapRight(e, func(x int) int { return g(f(x)) })
			return Equal(composed, fused)
		},
		gen.Int(), gen.Int(), gen.Int(),
	))

	properties.TestingRun(t)
}

func TestFlatMapMonadLaws(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("left identity law", prop.ForAll(
		func(n int) bool {
			f := func(x int) Either[string, int] { return Right[string](x * 2) }
			bound := FlatMapRight(Right[string](n), f)
			return Equal(bound, f(n))
		},
		gen.Int(),
	))

	properties.Property("right identity law", prop.ForAll(
		func(n int) bool {
			e := Right[string](n)
			bound := FlatMapRight(e, Right[string, int])
			return Equal(bound, e)
		},
		gen.Int(),
	))

	properties.Property("associativity law", prop.ForAll(
		func(n int, viaLeft bool) bool {
			e := Right[string](n)
			f := func(x int) Either[string, int] {
				if viaLeft {
					return Left[string, int]("stop")
				}
				return Right[string](x + 1)
			}
			g := func(x int) Either[string, int] { return Right[string](x * 2) }

			nested := FlatMapRight(FlatMapRight(e, f), g)
			flat := FlatMapRight(e, func(x int) Either[string, int] {
				return FlatMapRight(f(x), g)
			})
			return Equal(nested, flat)
		},
		gen.Int(), gen.Bool(),
	))

	properties.TestingRun(t)
}

func TestFoldRoundTrip(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)

	properties.Property("folding back into constructors reproduces the value", prop.ForAll(
		func(n int, s string, isRight bool) bool {
			var e Either[string, int]
			if isRight {
				e = Right[string](n)
			} else {
				e = Left[string, int](s)
			}
			rebuilt := Fold(e, Left[string, int], Right[string, int])
			return Equal(e, rebuilt)
		},
		gen.Int(), gen.AnyString(), gen.Bool(),
	))

	properties.TestingRun(t)
}
