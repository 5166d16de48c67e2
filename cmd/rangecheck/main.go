// Command rangecheck builds a handful of int64 ranges from flag-provided
// bounds and prints predicate and operation results. It exercises
// pkg/rangeval and pkg/multirange end to end without a database.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/henderiw/rangedb/pkg/element"
	"github.com/henderiw/rangedb/pkg/multirange"
	"github.com/henderiw/rangedb/pkg/rangeval"
)

func main() {
	var aLower, aUpper, bLower, bUpper int64
	flag.Int64Var(&aLower, "a-lower", 1, "lower bound of range A (inclusive)")
	flag.Int64Var(&aUpper, "a-upper", 10, "upper bound of range A (exclusive)")
	flag.Int64Var(&bLower, "b-lower", 5, "lower bound of range B (inclusive)")
	flag.Int64Var(&bUpper, "b-upper", 15, "upper bound of range B (exclusive)")
	flag.Parse()

	cap := element.Int{}

	a, err := rangeval.New(cap, aLower, aUpper)
	if err != nil {
		log.Fatalf("rangecheck: building A: %v", err)
	}
	b, err := rangeval.New(cap, bLower, bUpper)
	if err != nil {
		log.Fatalf("rangecheck: building B: %v", err)
	}

	fmt.Printf("A = %s\n", a.String())
	fmt.Printf("B = %s\n", b.String())
	fmt.Printf("A overlaps B: %v\n", rangeval.Overlaps(a, b))
	fmt.Printf("A adjacent B: %v\n", rangeval.Adjacent(a, b))
	fmt.Printf("A left of B: %v\n", rangeval.Left(a, b))

	union, err := rangeval.Union(a, b)
	if err != nil {
		fmt.Printf("A union B: error: %v\n", err)
	} else {
		fmt.Printf("A union B: %s\n", union.String())
	}

	inter := rangeval.Intersection(a, b)
	fmt.Printf("A intersect B: %s\n", inter.String())

	diff, err := rangeval.Difference(a, b)
	if err != nil {
		fmt.Printf("A difference B: %v\n", err)
	} else {
		fmt.Printf("A difference B: %s\n", diff.String())
	}

	mr := multirange.New(cap, a, b)
	fmt.Printf("multirange(A, B) normalized: %s\n", mr.String())
}
