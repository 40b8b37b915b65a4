package attr

import (
	"encoding/json"
	"fmt"
)

// Record is the ordered result of a single collection call: attribute keys
// mapped to values, remembering insertion order. A record is created fresh
// per call and never reused or cached. Writing a key that is already present
// replaces its value without duplicating the entry, so every key appears in
// the record at most once.
//
// A Record is not safe for concurrent mutation; concurrent collections each
// get their own.
type Record struct {
	order  []Key
	values map[Key]Value
}

// Entry pairs a key with its value for iteration and wire encoding.
type Entry struct {
	Key   Key
	Value Value
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{values: make(map[Key]Value)}
}

// Set stores value under key, appending the key on first write.
func (r *Record) Set(key Key, value Value) {
	if _, exists := r.values[key]; !exists {
		r.order = append(r.order, key)
	}
	r.values[key] = value
}

// Get returns the value stored under key.
func (r *Record) Get(key Key) (Value, bool) {
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key is present.
func (r *Record) Has(key Key) bool {
	_, ok := r.values[key]
	return ok
}

// Len returns the number of attributes in the record.
func (r *Record) Len() int {
	return len(r.order)
}

// Keys returns the keys in insertion order.
func (r *Record) Keys() []Key {
	keys := make([]Key, len(r.order))
	copy(keys, r.order)
	return keys
}

// Entries returns the key/value pairs in insertion order.
func (r *Record) Entries() []Entry {
	entries := make([]Entry, 0, len(r.order))
	for _, k := range r.order {
		entries = append(entries, Entry{Key: k, Value: r.values[k]})
	}
	return entries
}

type entryJSON struct {
	Key   Key             `json:"key"`
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the entry as {"key", "type", "value"}.
func (e Entry) MarshalJSON() ([]byte, error) {
	payload, err := e.Value.marshalPayload()
	if err != nil {
		return nil, fmt.Errorf("attribute %s: %w", e.Key, err)
	}
	return json.Marshal(entryJSON{Key: e.Key, Type: e.Value.Kind().String(), Value: payload})
}

// UnmarshalJSON decodes the {"key", "type", "value"} form.
func (e *Entry) UnmarshalJSON(data []byte) error {
	var aux entryJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	kind, ok := kindFromName(aux.Type)
	if !ok {
		return fmt.Errorf("attribute %s: unknown value type %q", aux.Key, aux.Type)
	}
	e.Key = aux.Key
	return e.Value.unmarshalPayload(kind, aux.Value)
}

// MarshalJSON encodes the record as an array of entries so insertion order
// survives the wire; a JSON object would lose it.
func (r *Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.Entries())
}

// UnmarshalJSON decodes an entry array back into an ordered record.
func (r *Record) UnmarshalJSON(data []byte) error {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	r.order = nil
	r.values = make(map[Key]Value, len(entries))
	for _, e := range entries {
		r.Set(e.Key, e.Value)
	}
	return nil
}
