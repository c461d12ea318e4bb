package moneybag

import (
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	num "github.com/shabbyrobe/go-num"
)

var errInvalidValue = errors.New("invalid value")

// Value type represents the total worth of a bag expressed as a single
// non-negative count of deniers, the smallest denomination.
// Its zero value corresponds to a worth of 0 deniers.
//
// Value is backed by a 128-bit unsigned integer, which is wide enough to
// hold the worth of any bag: even at maximal coin counts the conversion
// formula livres*240 + soliduses*12 + deniers stays below 2^72.
// Unlike bags, values are totally ordered.
// Value is designed to be safe for concurrent use by multiple goroutines.
type Value struct {
	deniers num.U128
}

// NewValue returns a value worth the given number of deniers.
func NewValue(deniers uint64) Value {
	return Value{deniers: num.U128From64(deniers)}
}

// ValueOf returns the total worth of bag m in deniers, converting livres
// and soliduses at the fixed rates [DeniersPerLivre] and [DeniersPerSolidus].
// The conversion is exact for every possible bag and never fails.
func ValueOf(m Moneybag) Value {
	v := num.U128From64(m.livres).Mul64(DeniersPerLivre)
	v = v.Add(num.U128From64(m.soliduses).Mul64(DeniersPerSolidus))
	v = v.Add64(m.deniers)
	return Value{deniers: v}
}

// NewValueFromDecimal converts a decimal number of deniers to a value.
// See also method [Value.Decimal].
//
// NewValueFromDecimal returns an error if the decimal is negative or has
// significant digits after the decimal point.
func NewValueFromDecimal(d decimal.Decimal) (Value, error) {
	if d.IsNeg() {
		return Value{}, fmt.Errorf("converting decimal %v: %w: negative deniers", d, errInvalidValue)
	}
	if !d.IsInt() {
		return Value{}, fmt.Errorf("converting decimal %v: %w: fractional deniers", d, errInvalidValue)
	}
	v, err := ParseValue(d.Trim(0).String())
	if err != nil {
		return Value{}, fmt.Errorf("converting decimal %v: %w", d, err)
	}
	return v, nil
}

// ParseValue converts a base-10 digit string to a value.
//
// ParseValue returns an error if the string contains anything other than
// decimal digits or if the number does not fit into 128 bits.
func ParseValue(s string) (Value, error) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return Value{}, fmt.Errorf("parsing value %q: %w: unexpected character %q", s, errInvalidValue, s[i])
		}
	}
	u, accurate, err := num.U128FromString(s)
	if err != nil {
		return Value{}, fmt.Errorf("parsing value %q: %w", s, errInvalidValue)
	}
	if !accurate {
		return Value{}, fmt.Errorf("parsing value %q: %w: number out of range", s, errInvalidValue)
	}
	return Value{deniers: u}, nil
}

// MustParseValue is like [ParseValue] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding values.
func MustParseValue(s string) Value {
	v, err := ParseValue(s)
	if err != nil {
		panic(fmt.Sprintf("ParseValue(%q) failed: %v", s, err))
	}
	return v
}

// Decimal converts the value to a decimal number of deniers.
// The conversion is always exact.
// See also constructor [NewValueFromDecimal].
//
// Decimal returns an error if the value has more than [decimal.MaxPrec]
// digits.
func (v Value) Decimal() (decimal.Decimal, error) {
	d, err := decimal.Parse(v.String())
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v to %T: %w", v, decimal.Decimal{}, err)
	}
	return d, nil
}

// IsZero returns:
//
//	true  if v = 0
//	false otherwise
func (v Value) IsZero() bool {
	return v.deniers.IsZero()
}

// Cmp compares values and returns:
//
//	-1 if v < w
//	 0 if v = w
//	+1 if v > w
//
// See also method [Value.CmpDeniers].
func (v Value) Cmp(w Value) int {
	return v.deniers.Cmp(w.deniers)
}

// CmpDeniers compares the value with a raw number of deniers and returns:
//
//	-1 if v < deniers
//	 0 if v = deniers
//	+1 if v > deniers
//
// See also method [Value.Cmp].
func (v Value) CmpDeniers(deniers uint64) int {
	return v.deniers.Cmp64(deniers)
}

// Equal returns:
//
//	true  if v.Cmp(w) is 0
//	false otherwise
func (v Value) Equal(w Value) bool {
	return v.Cmp(w) == 0
}

// EqualDeniers returns:
//
//	true  if v.CmpDeniers(deniers) is 0
//	false otherwise
func (v Value) EqualDeniers(deniers uint64) bool {
	return v.CmpDeniers(deniers) == 0
}

// Min returns the smaller value.
func (v Value) Min(w Value) Value {
	if v.Cmp(w) <= 0 {
		return v
	}
	return w
}

// Max returns the larger value.
func (v Value) Max(w Value) Value {
	if v.Cmp(w) >= 0 {
		return v
	}
	return w
}

// String implements the [fmt.Stringer] interface and returns the number of
// deniers as a plain base-10 digit string with no sign, no separators, and
// no leading zeros.
// The zero value renders as "0".
// See also method [Value.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (v Value) String() string {
	return v.deniers.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description      |
//	| ---------- | ------- | ---------------- |
//	| %s, %v, %d | 267     | Worth in deniers |
//	| %q         | "267"   | Quoted worth     |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (v Value) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 's', 'S', 'v', 'V', 'd', 'D':
		text = v.String()
	case 'q', 'Q':
		text = "\"" + v.String() + "\""
	default:
		writeBadVerb(state, verb, "moneybag.Value", v.String())
		return
	}
	writePadded(state, text)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// UnmarshalJSON accepts the number of deniers either as a JSON number or
// as a JSON string.
// See also constructor [ParseValue].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (v *Value) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*v, err = ParseValue(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Value{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a JSON string, as the number of deniers can
// exceed the integer range supported by JSON implementations.
// See also method [Value.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (v Value) MarshalJSON() ([]byte, error) {
	s := v.String()
	text := make([]byte, 0, len(s)+2)
	text = append(text, '"')
	text = append(text, s...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseValue].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (v *Value) UnmarshalText(text []byte) error {
	var err error
	*v, err = ParseValue(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Value{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends a base-10 digit string.
// See also method [Value.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (v Value) AppendText(text []byte) ([]byte, error) {
	return append(text, v.String()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns a base-10 digit string.
// See also method [Value.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (v Value) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (v *Value) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*v, err = ParseValue(value)
	case []byte:
		*v, err = ParseValue(string(value))
	case int64:
		if value < 0 {
			err = fmt.Errorf("%w: negative deniers", errInvalidValue)
		} else {
			*v = NewValue(uint64(value))
		}
	case nil:
		err = fmt.Errorf("%T does not support null values", Value{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Value{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (v Value) Value() (driver.Value, error) {
	return v.String(), nil
}
