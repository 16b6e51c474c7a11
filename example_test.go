package matches_test

import (
	"fmt"

	"matches"
)

type Shape struct {
	Kind  string
	Sides int
}

func ExampleMatches() {
	fmt.Println(matches.Matches(matches.Some(4), "Some(1..=9)"))
	fmt.Println(matches.Matches(Shape{Kind: "square", Sides: 4}, `Shape{Sides: 3 | 4, ..}`))
	// Output:
	// true
	// true
}

func ExampleUnwrap() {
	sides := matches.Unwrap(Shape{Kind: "hex", Sides: 6}, "Shape{Sides: n, ..} if n > 2",
		func(b matches.Bindings) int { return matches.Get[int](b, "n") })

	fmt.Println(sides)
	// Output: 6
}

func ExampleOptional() {
	first := matches.Optional([]string{"a", "b"}, "[s, ..]",
		func(b matches.Bindings) string { return matches.Get[string](b, "s") })

	fmt.Println(first.OrElse("none"))
	// Output: a
}

func ExampleCheck() {
	err := matches.Check(matches.None[int](), "Some ( _ )")
	fmt.Println(err)

	err = matches.Check(matches.None[int](), "Some(_)", "bad value: {0}", 42)
	fmt.Println(err)
	// Output:
	// assertion failed: `Some(_)` does not match `None`
	// bad value: 42
}
