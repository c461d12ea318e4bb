/*
Package moneybag implements monetary amounts in a historical
three-denomination currency of livres, soliduses, and deniers.
One livre is worth 20 soliduses or 240 deniers, and one solidus is worth
12 deniers; the rates are fixed properties of the monetary system.

# Representation

The package consists of two main types: Moneybag and Value.
A Moneybag holds three independent coin counters, one per denomination,
each ranging over the full uint64 range.
A Value is the total worth of a bag counted in deniers, backed by a
128-bit unsigned integer so that even a bag filled to the brim in every
denomination converts without overflow.

Both types are immutable: every operation returns a new result and leaves
its operands untouched, which also makes them safe for concurrent use by
multiple goroutines.

# Arithmetic

Bags support coin-wise addition, subtraction, and multiplication by a
scalar factor.
All arithmetic is checked at the width of the counters themselves: an
operation that would push a counter above math.MaxUint64, or below zero,
returns an error wrapping [ErrRange] and produces no result.
Because operands are plain values, a failed operation cannot leave a bag
partially modified.

# Ordering

Coin-wise comparison of bags is a partial order.
One bag is smaller than another only if it has at most as many coins of
every denomination; bags such as (1 livre) and (1 solidus) are therefore
unordered, and [Moneybag.Cmp] reports this outcome explicitly instead of
forcing a decision.
Values, in contrast, are totally ordered, and [Value.Cmp] follows the
usual three-way convention.

# Conversions

A Value is obtained from a bag with [ValueOf], or constructed directly
from a raw number of deniers.
For interoperability with the [decimal] package, values convert to and
from [decimal.Decimal] as exact integer numbers of deniers.
Both types render to strings, marshal to JSON, text, and binary forms,
and can be stored in an SQL database via the driver interfaces.

[decimal]: https://pkg.go.dev/github.com/govalues/decimal
*/
package moneybag
