package wire

import "github.com/elliotchance/orderedmap/v3"

// Object is a decoded message: synthetic keys mapped to Nodes in the order
// the keys first appeared on the wire. A nil *Object behaves as empty.
type Object struct {
	m *orderedmap.OrderedMap[string, Node]
}

// NewObject returns an empty Object.
func NewObject() *Object {
	return &Object{m: orderedmap.NewOrderedMap[string, Node]()}
}

// Len returns the number of distinct keys.
func (o *Object) Len() int {
	if o == nil || o.m == nil {
		return 0
	}
	return o.m.Len()
}

// Get returns the Node stored under key.
func (o *Object) Get(key string) (Node, bool) {
	if o == nil || o.m == nil {
		return Node{}, false
	}
	return o.m.Get(key)
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	if o == nil || o.m == nil {
		return false
	}
	return o.m.Has(key)
}

// Set stores v under key, replacing any previous value in place.
func (o *Object) Set(key string, v Node) {
	if o.m == nil {
		o.m = orderedmap.NewOrderedMap[string, Node]()
	}
	o.m.Set(key, v)
}

// Add stores v under key following the repeated-field rule: the first
// occurrence is kept as a scalar, the second promotes it to a two-element
// array, and later occurrences append to that array.
func (o *Object) Add(key string, v Node) {
	if o.m == nil {
		o.m = orderedmap.NewOrderedMap[string, Node]()
	}
	existing, ok := o.m.Get(key)
	if !ok {
		o.m.Set(key, v)
		return
	}
	if existing.kind != ArrayKind {
		existing = Array(existing)
	}
	existing.arr = append(existing.arr, v)
	o.m.Set(key, existing)
}

// Keys returns the keys in insertion order.
func (o *Object) Keys() []string {
	if o == nil || o.m == nil {
		return nil
	}
	keys := make([]string, 0, o.m.Len())
	for k := range o.m.Keys() {
		keys = append(keys, k)
	}
	return keys
}

// Range calls fn for each entry in insertion order until fn returns false.
func (o *Object) Range(fn func(key string, v Node) bool) {
	if o == nil || o.m == nil {
		return
	}
	for k, v := range o.m.AllFromFront() {
		if !fn(k, v) {
			return
		}
	}
}

// Uint returns the varint stored under key.
func (o *Object) Uint(key string) (uint64, bool) {
	n, ok := o.Get(key)
	if !ok {
		return 0, false
	}
	return n.AsUint()
}

// Int64 returns the varint stored under key when it fits in an int64.
func (o *Object) Int64(key string) (int64, bool) {
	n, ok := o.Get(key)
	if !ok {
		return 0, false
	}
	return n.AsInt64()
}

// Float64 returns the numeric value stored under key.
func (o *Object) Float64(key string) (float64, bool) {
	n, ok := o.Get(key)
	if !ok {
		return 0, false
	}
	return n.AsFloat64()
}

// String returns the text stored under key.
func (o *Object) String(key string) (string, bool) {
	n, ok := o.Get(key)
	if !ok {
		return "", false
	}
	return n.AsString()
}

// Object returns the nested message stored under key. A repeated key
// holds an array and is not an object.
func (o *Object) Object(key string) (*Object, bool) {
	n, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	return n.AsObject()
}

// Array returns the elements of a repeated key.
func (o *Object) Array(key string) ([]Node, bool) {
	n, ok := o.Get(key)
	if !ok {
		return nil, false
	}
	return n.AsArray()
}

// Flag returns the boolean encoded as a varint under key, where only 1 is true.
func (o *Object) Flag(key string) (bool, bool) {
	v, ok := o.Int64(key)
	if !ok {
		return false, false
	}
	return v == 1, true
}

// Path walks nested objects along keys and returns the final object.
func (o *Object) Path(keys ...string) (*Object, bool) {
	cur := o
	for _, k := range keys {
		next, ok := cur.Object(k)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}

// Seconds returns the epoch seconds of a Timestamp message stored under
// key (field 1 of the nested message).
func (o *Object) Seconds(key string) (int64, bool) {
	ts, ok := o.Object(key)
	if !ok {
		return 0, false
	}
	return ts.Int64(FieldKey(IntPrefix, 1))
}
