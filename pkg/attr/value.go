package attr

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

// Kind discriminates the variants of a Value.
type Kind int

const (
	// KindInvalid is the zero Value.
	KindInvalid Kind = iota

	// KindBool is a boolean flag (e.g. standard:is-hidden).
	KindBool

	// KindString is printable text, free of control bytes and backslashes
	// (see EscapeValue).
	KindString

	// KindSize is a byte count (e.g. standard:size).
	KindSize

	// KindTime is a file timestamp.
	KindTime

	// KindMode is a permission/mode bit set (e.g. unix:mode).
	KindMode

	// KindUnimplemented marks a requested built-in field the collector does
	// not compute yet. The key stays in the record so callers see the field
	// was honored rather than silently dropped.
	KindUnimplemented
)

var kindNames = map[Kind]string{
	KindInvalid:       "invalid",
	KindBool:          "bool",
	KindString:        "string",
	KindSize:          "size",
	KindTime:          "time",
	KindMode:          "mode",
	KindUnimplemented: "unimplemented",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

func kindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return KindInvalid, false
}

// Value is a tagged union over the attribute value variants. The zero Value
// is invalid; construct values with Bool, String, Size, Timestamp, Mode or
// Unimplemented.
type Value struct {
	kind Kind
	b    bool
	s    string
	u    uint64
	t    time.Time
}

// Bool returns a boolean value.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// String returns a text value. The collector only stores escaped text (see
// EscapeValue); arbitrary callers are trusted to do the same.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Size returns a byte-count value.
func Size(n uint64) Value { return Value{kind: KindSize, u: n} }

// Timestamp returns a file-time value.
func Timestamp(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Mode returns a mode-bits value.
func Mode(m uint32) Value { return Value{kind: KindMode, u: uint64(m)} }

// Unimplemented returns the placeholder for a field that is requested but not
// computed yet.
func Unimplemented() Value { return Value{kind: KindUnimplemented} }

// Kind reports which variant the value holds.
func (v Value) Kind() Kind { return v.kind }

// IsUnimplemented reports whether the value is the placeholder variant.
func (v Value) IsUnimplemented() bool { return v.kind == KindUnimplemented }

// AsBool returns the boolean payload, with ok false for other kinds.
func (v Value) AsBool() (value, ok bool) { return v.b, v.kind == KindBool }

// AsString returns the text payload, with ok false for other kinds.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsSize returns the byte-count payload, with ok false for other kinds.
func (v Value) AsSize() (uint64, bool) { return v.u, v.kind == KindSize }

// AsTime returns the timestamp payload, with ok false for other kinds.
func (v Value) AsTime() (time.Time, bool) { return v.t, v.kind == KindTime }

// AsMode returns the mode payload, with ok false for other kinds.
func (v Value) AsMode() (uint32, bool) { return uint32(v.u), v.kind == KindMode }

// String renders the value for humans: timestamps as RFC 3339, modes in
// octal, sizes as plain byte counts.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindString:
		return v.s
	case KindSize:
		return strconv.FormatUint(v.u, 10)
	case KindTime:
		return v.t.Format(time.RFC3339)
	case KindMode:
		return fmt.Sprintf("%04o", v.u)
	case KindUnimplemented:
		return "unimplemented"
	default:
		return "invalid"
	}
}

// marshalPayload returns the JSON encoding of the variant payload, or nil for
// variants without one.
func (v Value) marshalPayload() (json.RawMessage, error) {
	switch v.kind {
	case KindBool:
		return json.Marshal(v.b)
	case KindString:
		return json.Marshal(v.s)
	case KindSize, KindMode:
		return json.Marshal(v.u)
	case KindTime:
		return json.Marshal(v.t.Format(time.RFC3339Nano))
	case KindUnimplemented:
		return nil, nil
	default:
		return nil, fmt.Errorf("cannot marshal %s attribute value", v.kind)
	}
}

func (v *Value) unmarshalPayload(kind Kind, raw json.RawMessage) error {
	switch kind {
	case KindBool:
		var b bool
		if err := json.Unmarshal(raw, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case KindString:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		*v = String(s)
	case KindSize:
		var n uint64
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		*v = Size(n)
	case KindMode:
		var n uint32
		if err := json.Unmarshal(raw, &n); err != nil {
			return err
		}
		*v = Mode(n)
	case KindTime:
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		t, err := time.Parse(time.RFC3339Nano, s)
		if err != nil {
			return err
		}
		*v = Timestamp(t)
	case KindUnimplemented:
		*v = Unimplemented()
	default:
		return fmt.Errorf("cannot unmarshal %s attribute value", kind)
	}
	return nil
}

type valueJSON struct {
	Type  string          `json:"type"`
	Value json.RawMessage `json:"value,omitempty"`
}

// MarshalJSON encodes the value as {"type": ..., "value": ...}; the
// unimplemented variant carries no value.
func (v Value) MarshalJSON() ([]byte, error) {
	payload, err := v.marshalPayload()
	if err != nil {
		return nil, err
	}
	return json.Marshal(valueJSON{Type: v.kind.String(), Value: payload})
}

// UnmarshalJSON decodes the {"type", "value"} form produced by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var aux valueJSON
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	kind, ok := kindFromName(aux.Type)
	if !ok {
		return fmt.Errorf("unknown attribute value type %q", aux.Type)
	}
	return v.unmarshalPayload(kind, aux.Value)
}
