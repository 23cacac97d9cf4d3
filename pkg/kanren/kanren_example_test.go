package kanren_test

import (
	"fmt"

	"github.com/pythological/kanren/pkg/kanren"
)

func Example() {
	x := kanren.NewVar("x")
	results, err := kanren.Run(-1, x, kanren.Eq(x, 5))
	if err != nil {
		panic(err)
	}
	fmt.Println(results)
	// Output: [5]
}

func Example_disjunction() {
	x := kanren.NewVar("x")
	results, err := kanren.Run(-1, x, kanren.Lany(
		kanren.Eq(x, "a"),
		kanren.Eq(x, "b"),
		kanren.Eq(x, "c"),
	))
	if err != nil {
		panic(err)
	}
	fmt.Println(results)
	// Output: [a b c]
}

func Example_appendo() {
	out := kanren.NewVar("out")
	results, err := kanren.Run(-1, out, kanren.Appendo(
		kanren.List(1, 2),
		kanren.List(3, 4),
		out,
	))
	if err != nil {
		panic(err)
	}
	fmt.Println(kanren.Reify(results[0]))
	// Output: (1 2 3 4)
}

func Example_relation() {
	parent := kanren.NewRelation("parent", 2)
	if err := parent.AddFact("alice", "bob"); err != nil {
		panic(err)
	}
	if err := parent.AddFact("bob", "carol"); err != nil {
		panic(err)
	}

	grandparent := kanren.NewVar("grandparent")
	grandchild := kanren.NewVar("grandchild")
	middle := kanren.NewVar("middle")

	results, err := kanren.Run(-1, kanren.List(grandparent, grandchild), kanren.Lall(
		parent.Goal(grandparent, middle),
		parent.Goal(middle, grandchild),
	))
	if err != nil {
		panic(err)
	}
	fmt.Println(kanren.Reify(results[0]))
	// Output: (alice carol)
}
