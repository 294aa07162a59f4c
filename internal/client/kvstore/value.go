package kvstore

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// ValueKind tags a stored value with the decoder that must be used to read
// it back. The tag is persisted next to the payload; decoding with a
// different kind than the one stored never silently succeeds.
type ValueKind string

const (
	KindString ValueKind = "string"
	KindNumber ValueKind = "number"
	KindBool   ValueKind = "boolean"
	KindObject ValueKind = "object"
)

// Value is a tagged union of the four supported kinds: the kind chosen at
// write time determines the exact decoding function at read time.
type Value struct {
	kind ValueKind
	raw  string
}

func StringValue(s string) Value {
	return Value{kind: KindString, raw: s}
}

func NumberValue(n float64) Value {
	return Value{kind: KindNumber, raw: strconv.FormatFloat(n, 'g', -1, 64)}
}

func BoolValue(b bool) Value {
	return Value{kind: KindBool, raw: strconv.FormatBool(b)}
}

// ObjectValue serializes v to JSON. Returns an error for values that cannot
// be marshalled (channels, funcs, cyclic structures).
func ObjectValue(v any) (Value, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return Value{}, fmt.Errorf("encode object: %w", err)
	}
	return Value{kind: KindObject, raw: string(raw)}, nil
}

func (v Value) Kind() ValueKind { return v.kind }

// AsString returns the string payload. ok is false when the value was not
// stored as a string.
func (v Value) AsString() (string, bool) {
	if v.kind != KindString {
		return "", false
	}
	return v.raw, true
}

// AsNumber returns the numeric payload. ok is false on a kind mismatch or
// an unparseable payload.
func (v Value) AsNumber() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	n, err := strconv.ParseFloat(v.raw, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// AsBool returns the boolean payload. ok is false on a kind mismatch or a
// corrupted payload.
func (v Value) AsBool() (bool, bool) {
	if v.kind != KindBool {
		return false, false
	}
	b, err := strconv.ParseBool(v.raw)
	if err != nil {
		return false, false
	}
	return b, true
}

// DecodeObject unmarshals an object payload into out. Returns false on a
// kind mismatch or a JSON decoding failure.
func (v Value) DecodeObject(out any) bool {
	if v.kind != KindObject {
		return false
	}
	return json.Unmarshal([]byte(v.raw), out) == nil
}

// validKind reports whether a tag read back from storage is one we know how
// to decode. Unknown tags are treated as absence, never guessed at.
func validKind(k ValueKind) bool {
	switch k {
	case KindString, KindNumber, KindBool, KindObject:
		return true
	default:
		return false
	}
}
