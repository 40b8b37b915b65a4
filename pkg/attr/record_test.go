package attr

import (
	"encoding/json"
	"testing"
)

func TestRecord_OrderAndLookup(t *testing.T) {
	r := NewRecord()
	r.Set(KeyName, String("report.pdf"))
	r.Set(KeyIsHidden, Bool(false))
	r.Set(XattrKey("user.comment"), String("quarterly"))

	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}

	wantOrder := []Key{KeyName, KeyIsHidden, XattrKey("user.comment")}
	for i, k := range r.Keys() {
		if k != wantOrder[i] {
			t.Errorf("Keys()[%d] = %q, want %q", i, k, wantOrder[i])
		}
	}

	v, ok := r.Get(KeyIsHidden)
	if !ok {
		t.Fatal("Get(KeyIsHidden) missing")
	}
	if hidden, _ := v.AsBool(); hidden {
		t.Error("is-hidden = true, want false")
	}
	if r.Has(KeySELinuxContext) {
		t.Error("Has(selinux:context) = true for absent key")
	}
}

func TestRecord_SetSameKeyKeepsSingleEntry(t *testing.T) {
	r := NewRecord()
	r.Set(KeyName, String("a"))
	r.Set(KeyName, String("b"))

	if r.Len() != 1 {
		t.Fatalf("Len() = %d after double Set, want 1", r.Len())
	}
	v, _ := r.Get(KeyName)
	if s, _ := v.AsString(); s != "b" {
		t.Errorf("value after double Set = %q, want %q", s, "b")
	}

	count := 0
	for _, k := range r.Keys() {
		if k == KeyName {
			count++
		}
	}
	if count != 1 {
		t.Errorf("key appears %d times in Keys(), want 1", count)
	}
}

func TestRecord_JSONRoundTripKeepsOrder(t *testing.T) {
	r := NewRecord()
	r.Set(KeyName, String(".bashrc"))
	r.Set(KeyIsHidden, Bool(true))
	r.Set(KeySize, Size(220))
	r.Set(KeyMIMEType, Unimplemented())

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	var got Record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got.Len() != r.Len() {
		t.Fatalf("round-trip Len() = %d, want %d", got.Len(), r.Len())
	}
	origKeys := r.Keys()
	for i, k := range got.Keys() {
		if k != origKeys[i] {
			t.Errorf("round-trip Keys()[%d] = %q, want %q", i, k, origKeys[i])
		}
	}
	v, ok := got.Get(KeyMIMEType)
	if !ok || !v.IsUnimplemented() {
		t.Errorf("round-trip mime-type = %v, %v, want unimplemented", v, ok)
	}
}

func TestRecord_MarshalIsArray(t *testing.T) {
	r := NewRecord()
	r.Set(KeyName, String("x"))

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	if len(data) == 0 || data[0] != '[' {
		t.Errorf("record JSON = %s, want an array", data)
	}
}
