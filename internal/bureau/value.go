package bureau

import (
	"bytes"
	"encoding/json"
)

// Value is the normalized form of a bureau report node: a plain string leaf,
// an ordered object of child values, or a list materialized when sibling
// tags collide.
type Value interface {
	isValue()
}

// Leaf is a plain text value.
type Leaf string

func (Leaf) isValue() {}

// List is an ordered sequence of values, produced when two or more siblings
// share a tag.
type List []Value

func (List) isValue() {}

// Object is a mapping of tag/attribute names to values that preserves
// first-occurrence key order. Replacing a key keeps its original position.
type Object struct {
	values map[string]Value
	keys   []string
}

func (*Object) isValue() {}

// NewObject returns an empty ordered object.
func NewObject() *Object {
	return &Object{values: make(map[string]Value)}
}

// Set inserts or replaces a key. A new key goes to the end; an existing key
// keeps its position.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get returns the value for key and whether it exists.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Keys returns the keys in first-occurrence order.
func (o *Object) Keys() []string {
	return o.keys
}

// Len returns the number of keys.
func (o *Object) Len() int {
	return len(o.keys)
}

// MarshalJSON emits the object with keys in first-occurrence order so the
// interim documents are byte-stable across runs.
func (o *Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range o.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(o.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
