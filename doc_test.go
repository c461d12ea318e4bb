package moneybag_test

import (
	"errors"
	"fmt"

	"github.com/govalues/moneybag"
)

// In this example, a levy of 3 livres and 5 soliduses is collected from
// each of 12 villages, and the total is compared against the worth of
// the treasury.
func Example_levyCollection() {
	due := moneybag.New(3, 5, 0)

	total, err := due.Mul(12)
	if err != nil {
		panic(err)
	}

	treasury := moneybag.New(40, 0, 0)

	fmt.Printf("Each village owes %v\n", due)
	fmt.Printf("The levy brings in %v\n", total)
	fmt.Printf("It is worth %d deniers\n", total)
	fmt.Printf("The treasury is richer: %v\n", moneybag.ValueOf(treasury).Cmp(moneybag.ValueOf(total)) > 0)

	// Output:
	// Each village owes (3 livres, 5 soliduses, 0 deniers)
	// The levy brings in (36 livres, 60 soliduses, 0 deniers)
	// It is worth 9360 deniers
	// The treasury is richer: true
}

func ExampleNew() {
	fmt.Println(moneybag.New(1, 2, 3))
	// Output: (1 livre, 2 soliduses, 3 deniers)
}

func ExampleParse() {
	m, err := moneybag.Parse("(1 livre, 2 soliduses, 3 deniers)")
	if err != nil {
		panic(err)
	}
	fmt.Println(m.SolidusNumber())
	// Output: 2
}

func ExampleMoneybag_Add() {
	a := moneybag.New(1, 2, 3)
	b := moneybag.New(4, 5, 6)
	sum, err := a.Add(b)
	if err != nil {
		panic(err)
	}
	fmt.Println(sum)
	// Output: (5 livres, 7 soliduses, 9 deniers)
}

func ExampleMoneybag_Sub() {
	a := moneybag.New(0, 5, 0)
	b := moneybag.New(0, 6, 0)
	_, err := a.Sub(b)
	fmt.Println(errors.Is(err, moneybag.ErrRange))
	fmt.Println(a)
	// Output:
	// true
	// (0 livres, 5 soliduses, 0 deniers)
}

func ExampleMoneybag_Mul() {
	m := moneybag.New(1, 2, 3)
	double, err := m.Mul(2)
	if err != nil {
		panic(err)
	}
	fmt.Println(double)
	// Output: (2 livres, 4 soliduses, 6 deniers)
}

func ExampleMoneybag_Cmp() {
	fmt.Println(moneybag.New(2, 2, 3).Cmp(moneybag.New(1, 2, 3)))
	fmt.Println(moneybag.New(1, 2, 3).Cmp(moneybag.New(1, 2, 3)))
	fmt.Println(moneybag.Livre.Cmp(moneybag.Solidus))
	// Output:
	// greater
	// equal
	// unordered
}

func ExampleValueOf() {
	fmt.Println(moneybag.ValueOf(moneybag.New(1, 2, 3)))
	// Output: 267
}

func ExampleValue_Cmp() {
	v := moneybag.ValueOf(moneybag.Livre)
	w := moneybag.ValueOf(moneybag.New(0, 19, 11))
	fmt.Println(v.Cmp(w))
	// Output: 1
}

func ExampleValue_CmpDeniers() {
	v := moneybag.ValueOf(moneybag.Solidus)
	fmt.Println(v.CmpDeniers(12))
	// Output: 0
}

func ExampleValue_Decimal() {
	d, err := moneybag.ValueOf(moneybag.New(1, 2, 3)).Decimal()
	if err != nil {
		panic(err)
	}
	fmt.Println(d)
	// Output: 267
}
