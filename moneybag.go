package moneybag

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrRange is returned when an arithmetic operation would take one of the
// coin counters outside its representable range, either by exceeding
// [math.MaxUint64] or by dropping below zero.
var ErrRange = errors.New("coin count out of range")

var errInvalidBag = errors.New("invalid moneybag")

// Fixed exchange rates between the three denominations.
// These ratios are part of the monetary system itself and are never
// configurable.
const (
	// DeniersPerSolidus is the number of deniers in one solidus.
	DeniersPerSolidus = 12
	// SolidusesPerLivre is the number of soliduses in one livre.
	SolidusesPerLivre = 20
	// DeniersPerLivre is the number of deniers in one livre.
	DeniersPerLivre = DeniersPerSolidus * SolidusesPerLivre
)

// Moneybag type represents a bag of livre, solidus, and denier coins.
// Each denomination is counted independently over the full uint64 range.
// Its zero value corresponds to the empty bag "(0 livres, 0 soliduses, 0 deniers)".
// Moneybag is designed to be safe for concurrent use by multiple goroutines.
type Moneybag struct {
	livres    uint64 // number of livre coins
	soliduses uint64 // number of solidus coins
	deniers   uint64 // number of denier coins
}

// Single-coin bags, useful as building blocks for larger amounts.
var (
	Livre   = New(1, 0, 0)
	Solidus = New(0, 1, 0)
	Denier  = New(0, 0, 1)
)

// New returns a bag containing the given number of livre, solidus,
// and denier coins.
func New(livres, soliduses, deniers uint64) Moneybag {
	return Moneybag{livres: livres, soliduses: soliduses, deniers: deniers}
}

// Parse converts a string to a bag.
// The input string must consist of three comma-separated coin counts in
// livre, solidus, denier order, optionally surrounded by parentheses.
// The denomination may be written in either its singular or plural form,
// regardless of the count:
//
//	(1 livre, 2 soliduses, 3 deniers)
//	1 livre, 2 soliduses, 3 deniers
//	1 livres, 2 solidus, 3 denier
//
// Parse returns an error if the string does not represent a valid bag.
func Parse(s string) (Moneybag, error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "(") && strings.HasSuffix(t, ")") {
		t = t[1 : len(t)-1]
	}
	parts := strings.Split(t, ",")
	if len(parts) != 3 {
		return Moneybag{}, fmt.Errorf("parsing moneybag %q: %w: expected 3 coin counts, got %v", s, errInvalidBag, len(parts))
	}
	livres, err := parseCoin(parts[0], "livre", "livres")
	if err != nil {
		return Moneybag{}, fmt.Errorf("parsing moneybag %q: %w", s, err)
	}
	soliduses, err := parseCoin(parts[1], "solidus", "soliduses")
	if err != nil {
		return Moneybag{}, fmt.Errorf("parsing moneybag %q: %w", s, err)
	}
	deniers, err := parseCoin(parts[2], "denier", "deniers")
	if err != nil {
		return Moneybag{}, fmt.Errorf("parsing moneybag %q: %w", s, err)
	}
	return New(livres, soliduses, deniers), nil
}

// parseCoin parses a single "<count> <denomination>" segment.
func parseCoin(s, singular, plural string) (uint64, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: expected \"<count> %v(s)\", got %q", errInvalidBag, singular, strings.TrimSpace(s))
	}
	if fields[1] != singular && fields[1] != plural {
		return 0, fmt.Errorf("%w: expected %v count, got %q", errInvalidBag, singular, fields[1])
	}
	n, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid %v count %q", errInvalidBag, singular, fields[0])
	}
	return n, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding bags.
func MustParse(s string) Moneybag {
	m, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return m
}

// LivreNumber returns the number of livre coins in the bag.
func (m Moneybag) LivreNumber() uint64 {
	return m.livres
}

// SolidusNumber returns the number of solidus coins in the bag.
func (m Moneybag) SolidusNumber() uint64 {
	return m.soliduses
}

// DenierNumber returns the number of denier coins in the bag.
func (m Moneybag) DenierNumber() uint64 {
	return m.deniers
}

// IsZero returns:
//
//	true  if the bag contains no coins
//	false otherwise
func (m Moneybag) IsZero() bool {
	return m == Moneybag{}
}

// Add returns the coin-wise sum of bags m and b.
// Neither operand is modified.
//
// Add returns an error if any of the resulting coin counts would exceed
// [math.MaxUint64].
func (m Moneybag) Add(b Moneybag) (Moneybag, error) {
	c, ok := m.add(b)
	if !ok {
		return Moneybag{}, fmt.Errorf("computing [%v + %v]: %w", m, b, ErrRange)
	}
	return c, nil
}

func (m Moneybag) add(b Moneybag) (Moneybag, bool) {
	if b.livres > math.MaxUint64-m.livres ||
		b.soliduses > math.MaxUint64-m.soliduses ||
		b.deniers > math.MaxUint64-m.deniers {
		return Moneybag{}, false
	}
	return New(m.livres+b.livres, m.soliduses+b.soliduses, m.deniers+b.deniers), true
}

// Sub returns the coin-wise difference between bags m and b.
// Neither operand is modified.
//
// Sub returns an error if any coin count of bag b exceeds the corresponding
// coin count of bag m, as no count may become negative.
func (m Moneybag) Sub(b Moneybag) (Moneybag, error) {
	c, ok := m.sub(b)
	if !ok {
		return Moneybag{}, fmt.Errorf("computing [%v - %v]: %w", m, b, ErrRange)
	}
	return c, nil
}

func (m Moneybag) sub(b Moneybag) (Moneybag, bool) {
	if b.livres > m.livres || b.soliduses > m.soliduses || b.deniers > m.deniers {
		return Moneybag{}, false
	}
	return New(m.livres-b.livres, m.soliduses-b.soliduses, m.deniers-b.deniers), true
}

// Mul returns bag m with each coin count multiplied by factor times.
// The receiver is not modified.
// Multiplication is commutative: m.Mul(n) contains the same coins as
// n bags of m added together.
//
// Mul returns an error if any of the resulting coin counts would exceed
// [math.MaxUint64].
// Multiplying by 0 always succeeds and yields the empty bag.
func (m Moneybag) Mul(times uint64) (Moneybag, error) {
	c, ok := m.mul(times)
	if !ok {
		return Moneybag{}, fmt.Errorf("computing [%v * %v]: %w", m, times, ErrRange)
	}
	return c, nil
}

func (m Moneybag) mul(times uint64) (Moneybag, bool) {
	if times > 0 {
		if m.livres > math.MaxUint64/times ||
			m.soliduses > math.MaxUint64/times ||
			m.deniers > math.MaxUint64/times {
			return Moneybag{}, false
		}
	}
	return New(m.livres*times, m.soliduses*times, m.deniers*times), true
}

// Ordering is the result of comparing two bags.
// Unlike a three-way comparison, it has a fourth outcome, [Unordered],
// since coin-wise comparison of bags is a partial order: a bag with more
// livres but fewer soliduses is neither smaller nor larger than the other.
type Ordering int8

const (
	// Less indicates that no coin count of the left bag exceeds the
	// corresponding count of the right bag, and the bags differ.
	Less Ordering = iota - 1
	// Equal indicates that all three coin counts match.
	Equal
	// Greater indicates that no coin count of the right bag exceeds the
	// corresponding count of the left bag, and the bags differ.
	Greater
	// Unordered indicates that each bag exceeds the other in at least
	// one coin count.
	Unordered
)

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (o Ordering) String() string {
	switch o {
	case Less:
		return "less"
	case Equal:
		return "equal"
	case Greater:
		return "greater"
	case Unordered:
		return "unordered"
	}
	return "ordering(" + strconv.FormatInt(int64(o), 10) + ")"
}

// Cmp compares bags coin-wise and returns:
//
//	Less      if every coin count of m is at most that of b, and m != b
//	Equal     if all three coin counts match
//	Greater   if every coin count of m is at least that of b, and m != b
//	Unordered otherwise
//
// Equality is checked before coin-wise domination, so identical bags always
// compare as Equal, never as Greater or Less.
// See also methods [Moneybag.Equal], [Moneybag.LessOrEqual], [Moneybag.GreaterOrEqual].
func (m Moneybag) Cmp(b Moneybag) Ordering {
	switch {
	case m == b:
		return Equal
	case m.livres >= b.livres && m.soliduses >= b.soliduses && m.deniers >= b.deniers:
		return Greater
	case m.livres <= b.livres && m.soliduses <= b.soliduses && m.deniers <= b.deniers:
		return Less
	}
	return Unordered
}

// Equal returns:
//
//	true  if m.Cmp(b) is Equal
//	false otherwise
func (m Moneybag) Equal(b Moneybag) bool {
	return m.Cmp(b) == Equal
}

// LessOrEqual returns:
//
//	true  if m.Cmp(b) is Less or Equal
//	false otherwise
//
// Note that !m.LessOrEqual(b) does not imply m.GreaterOrEqual(b),
// as the bags may be unordered.
func (m Moneybag) LessOrEqual(b Moneybag) bool {
	o := m.Cmp(b)
	return o == Less || o == Equal
}

// GreaterOrEqual returns:
//
//	true  if m.Cmp(b) is Greater or Equal
//	false otherwise
//
// Note that !m.GreaterOrEqual(b) does not imply m.LessOrEqual(b),
// as the bags may be unordered.
func (m Moneybag) GreaterOrEqual(b Moneybag) bool {
	o := m.Cmp(b)
	return o == Greater || o == Equal
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the bag, for example "(1 livre, 2 soliduses, 3 deniers)".
// Each denomination is written in its singular form when its count is
// exactly 1 and in its plural form otherwise.
// See also method [Moneybag.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Moneybag) String() string {
	buf := make([]byte, 0, 48)
	buf = append(buf, '(')
	buf = appendCoin(buf, m.livres, "livre", "livres")
	buf = append(buf, ", "...)
	buf = appendCoin(buf, m.soliduses, "solidus", "soliduses")
	buf = append(buf, ", "...)
	buf = appendCoin(buf, m.deniers, "denier", "deniers")
	buf = append(buf, ')')
	return string(buf)
}

func appendCoin(buf []byte, count uint64, singular, plural string) []byte {
	buf = strconv.AppendUint(buf, count, 10)
	buf = append(buf, ' ')
	if count == 1 {
		return append(buf, singular...)
	}
	return append(buf, plural...)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example                               | Description        |
//	| ------ | ------------------------------------- | ------------------ |
//	| %s, %v | (1 livre, 2 soliduses, 3 deniers)     | Bag                |
//	| %q     | "(1 livre, 2 soliduses, 3 deniers)"   | Quoted bag         |
//	| %d     | 267                                   | Worth in deniers   |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Moneybag) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 's', 'S', 'v', 'V':
		text = m.String()
	case 'q', 'Q':
		text = "\"" + m.String() + "\""
	case 'd', 'D':
		text = ValueOf(m).String()
	default:
		writeBadVerb(state, verb, "moneybag.Moneybag", m.String())
		return
	}
	writePadded(state, text)
}

// writePadded writes text to the formatting state, honoring the width and
// the '-' flag.
func writePadded(state fmt.State, text string) {
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > len(text) {
		if state.Flag('-') {
			tspaces = w - len(text)
		} else {
			lspaces = w - len(text)
		}
	}

	buf := make([]byte, 0, lspaces+len(text)+tspaces)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, text...)
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}

	//nolint:errcheck
	state.Write(buf)
}

// writeBadVerb reports an unsupported formatting verb the way the fmt
// package does for unknown verbs.
func writeBadVerb(state fmt.State, verb rune, typeName, text string) {
	buf := make([]byte, 0, len(typeName)+len(text)+8)
	buf = append(buf, '%', '!')
	buf = append(buf, byte(verb))
	buf = append(buf, '(')
	buf = append(buf, typeName...)
	buf = append(buf, '=')
	buf = append(buf, text...)
	buf = append(buf, ')')

	//nolint:errcheck
	state.Write(buf)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [Parse].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Moneybag) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) >= 2 && text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	var err error
	*m, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Moneybag{}, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns the canonical parenthesized form.
// See also method [Moneybag.String].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Moneybag) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 50)
	text = append(text, '"')
	text = append(text, m.String()...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (m *Moneybag) UnmarshalText(text []byte) error {
	var err error
	*m, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Moneybag{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// AppendText always appends the canonical parenthesized form.
// See also method [Moneybag.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (m Moneybag) AppendText(text []byte) ([]byte, error) {
	return append(text, m.String()...), nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText always returns the canonical parenthesized form.
// See also method [Moneybag.String].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (m Moneybag) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (m *Moneybag) UnmarshalBinary(data []byte) error {
	var err error
	*m, err = Parse(string(data))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Moneybag{}, err)
	}
	return nil
}

// AppendBinary implements the [encoding.BinaryAppender] interface.
// AppendBinary always appends the canonical parenthesized form.
// See also method [Moneybag.String].
//
// [encoding.BinaryAppender]: https://pkg.go.dev/encoding#BinaryAppender
func (m Moneybag) AppendBinary(data []byte) ([]byte, error) {
	return append(data, m.String()...), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// MarshalBinary always returns the canonical parenthesized form.
// See also method [Moneybag.String].
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (m Moneybag) MarshalBinary() ([]byte, error) {
	return []byte(m.String()), nil
}

// Scan implements the [sql.Scanner] interface.
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (m *Moneybag) Scan(value any) error {
	var err error
	switch value := value.(type) {
	case string:
		*m, err = Parse(value)
	case []byte:
		*m, err = Parse(string(value))
	case nil:
		err = fmt.Errorf("%T does not support null values, use %T or *%T", Moneybag{}, NullMoneybag{}, Moneybag{})
	default:
		err = fmt.Errorf("type %T is not supported", value)
	}
	if err != nil {
		err = fmt.Errorf("converting from %T to %T: %w", value, Moneybag{}, err)
	}
	return err
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (m Moneybag) Value() (driver.Value, error) {
	return m.String(), nil
}

// NullMoneybag represents a bag that can be null.
// Its zero value is null.
// NullMoneybag is not thread-safe.
type NullMoneybag struct {
	Moneybag Moneybag
	Valid    bool
}

// Scan implements the [sql.Scanner] interface.
// See also method [Moneybag.Scan].
//
// [sql.Scanner]: https://pkg.go.dev/database/sql#Scanner
func (n *NullMoneybag) Scan(value any) error {
	if value == nil {
		n.Moneybag = Moneybag{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Moneybag.Scan(value)
}

// Value implements the [driver.Valuer] interface.
// See also method [Moneybag.Value].
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (n NullMoneybag) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.Moneybag.Value()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Moneybag.UnmarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (n *NullMoneybag) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		n.Moneybag = Moneybag{}
		n.Valid = false
		return nil
	}
	n.Valid = true
	return n.Moneybag.UnmarshalJSON(text)
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Moneybag.MarshalJSON].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (n NullMoneybag) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return n.Moneybag.MarshalJSON()
}
