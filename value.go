package nbtgo

// Value is a single node in an NBT tree: a primitive, an array, a list, or
// a compound. The set of implementations is closed and mirrors the wire
// format's thirteen type identifiers (TagEnd has no value form; it appears
// only as the terminator closing a compound).
type Value interface {
	// ID returns the one-byte type identifier written before this value.
	ID() TagID
}

type (
	Byte      int8
	Short     int16
	Int       int32
	Long      int64
	Float     float32
	Double    float64
	ByteArray []int8
	String    string
	IntArray  []int32
	LongArray []int64
)

func (Byte) ID() TagID      { return TagByte }
func (Short) ID() TagID     { return TagShort }
func (Int) ID() TagID       { return TagInt }
func (Long) ID() TagID      { return TagLong }
func (Float) ID() TagID     { return TagFloat }
func (Double) ID() TagID    { return TagDouble }
func (ByteArray) ID() TagID { return TagByteArray }
func (String) ID() TagID    { return TagString }
func (IntArray) ID() TagID  { return TagIntArray }
func (LongArray) ID() TagID { return TagLongArray }

// List is an ordered sequence of values that all share one element type
// identifier. The element type is written once on the wire; elements are
// encoded bare. An empty list keeps whatever element type it was declared
// with.
type List struct {
	elem  TagID
	items []Value
}

// NewList builds a list with the given element type, rejecting any element
// whose identifier disagrees.
func NewList(elem TagID, items ...Value) (List, error) {
	if !elem.valid() {
		return List{}, ErrUnknownTag
	}
	l := List{elem: elem, items: items}
	if err := l.validate(); err != nil {
		return List{}, err
	}
	return l, nil
}

func (l List) ID() TagID { return TagList }

// ElemType returns the declared element type identifier.
func (l List) ElemType() TagID { return l.elem }

func (l List) Len() int { return len(l.items) }

// At returns the i'th element. It panics if i is out of range, matching
// slice indexing.
func (l List) At(i int) Value { return l.items[i] }

// Append adds a value, rejecting it if its identifier differs from the
// list's declared element type.
func (l *List) Append(v Value) error {
	if v == nil {
		return ErrNilValue
	}
	if v.ID() != l.elem {
		return ErrHeterogeneousList
	}
	l.items = append(l.items, v)
	return nil
}

func (l List) validate() error {
	for _, it := range l.items {
		if it == nil {
			return ErrNilValue
		}
		if it.ID() != l.elem {
			return ErrHeterogeneousList
		}
	}
	return nil
}

// Compound is a mapping of names to values. It is a lightweight wrapper
// around a map[string]Value that records key insertion order, so a decoded
// document re-encodes its entries in wire order.
type Compound struct {
	m    map[string]Value
	keys []string
}

func NewCompound() *Compound {
	return &Compound{m: make(map[string]Value)}
}

func (c *Compound) ID() TagID { return TagCompound }

// Set stores value under name. Setting an existing name replaces the value
// and keeps the name's original position. Lists are re-validated for
// homogeneity on every Set, so a malformed list is rejected at the API
// boundary rather than at encode time.
func (c *Compound) Set(name string, value Value) error {
	if value == nil {
		return ErrNilValue
	}
	if l, ok := value.(List); ok {
		if err := l.validate(); err != nil {
			return err
		}
	}
	if _, exists := c.m[name]; !exists {
		c.keys = append(c.keys, name)
	}
	c.m[name] = value
	return nil
}

// Get returns the value stored under name. Absence is a normal outcome,
// reported by the boolean, not an error.
func (c *Compound) Get(name string) (Value, bool) {
	v, ok := c.m[name]
	return v, ok
}

func (c *Compound) Len() int { return len(c.m) }

// Keys returns the entry names in insertion order. The returned slice is
// shared with the compound and must not be modified.
func (c *Compound) Keys() []string { return c.keys }
