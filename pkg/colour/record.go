package colour

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a serialized colour lacks a channel.
	ErrMissingField = errors.New("missing field")

	// ErrFieldType is returned when a channel is not a number.
	ErrFieldType = errors.New("field is not a number")
)

// FieldError names the channel that failed to decode.
type FieldError struct {
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("colour %s: %v", e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

// Record is the serialized form of a colour.
type Record struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

var recordFields = [4]string{"red", "green", "blue", "alpha"}

// Encode captures the four channels of c.
func Encode(c Components) Record {
	return Record{Red: c.Red(), Green: c.Green(), Blue: c.Blue(), Alpha: c.Alpha()}
}

// Decode rebuilds a colour from r, clamping every channel.
func Decode(r Record) RGBA {
	return New(r.Red, r.Green, r.Blue, r.Alpha)
}

// DecodeMap rebuilds a colour from a keyed record such as the result of
// decoding JSON into map[string]any. All four keys must be present and
// numeric.
func DecodeMap(m map[string]any) (RGBA, error) {
	var ch [4]float64
	for i, field := range recordFields {
		v, ok := m[field]
		if !ok {
			return RGBA{}, &FieldError{Field: field, Err: ErrMissingField}
		}
		f, ok := toFloat(v)
		if !ok {
			return RGBA{}, &FieldError{Field: field, Err: fmt.Errorf("%w: got %T", ErrFieldType, v)}
		}
		ch[i] = f
	}
	return New(ch[0], ch[1], ch[2], ch[3]), nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}

func unmarshalRecord(data []byte) (Record, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return Record{}, fmt.Errorf("failed to decode colour: %w", err)
	}

	var ch [4]float64
	for i, field := range recordFields {
		v, ok := raw[field]
		if !ok {
			return Record{}, &FieldError{Field: field, Err: ErrMissingField}
		}
		if bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return Record{}, &FieldError{Field: field, Err: fmt.Errorf("%w: null", ErrFieldType)}
		}
		if err := json.Unmarshal(v, &ch[i]); err != nil {
			return Record{}, &FieldError{Field: field, Err: fmt.Errorf("%w: %s", ErrFieldType, v)}
		}
	}
	return Record{Red: ch[0], Green: ch[1], Blue: ch[2], Alpha: ch[3]}, nil
}

// MarshalJSON implements json.Marshaler.
func (c RGBA) MarshalJSON() ([]byte, error) {
	return json.Marshal(Encode(c))
}

// UnmarshalJSON implements json.Unmarshaler. Channels are clamped.
func (c *RGBA) UnmarshalJSON(data []byte) error {
	r, err := unmarshalRecord(data)
	if err != nil {
		return err
	}
	*c = Decode(r)
	return nil
}

// MarshalJSON implements json.Marshaler. Alpha is written as 1.
func (c RGB) MarshalJSON() ([]byte, error) {
	return json.Marshal(Encode(c))
}

// UnmarshalJSON implements json.Unmarshaler. Alpha must be present but is
// discarded.
func (c *RGB) UnmarshalJSON(data []byte) error {
	r, err := unmarshalRecord(data)
	if err != nil {
		return err
	}
	*c = NewRGB(r.Red, r.Green, r.Blue)
	return nil
}
