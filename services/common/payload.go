package common

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"strconv"
	"strings"
)

// Payload is a loosely typed JSON object. Fields are read defensively,
// a missing or mistyped field never fails the request by itself.
type Payload map[string]any

// ReadPayload decodes r into a Payload. Anything that is not a JSON object
// yields an empty payload.
func ReadPayload(r io.Reader) Payload {
	if r == nil {
		return Payload{}
	}
	data, err := io.ReadAll(r)
	if err != nil || len(bytes.TrimSpace(data)) == 0 {
		return Payload{}
	}
	d := json.NewDecoder(bytes.NewReader(data))
	d.UseNumber()
	var p Payload
	if err := d.Decode(&p); err != nil || p == nil {
		return Payload{}
	}
	return p
}

// Text returns the field rendered as a string, "" when missing.
func (p Payload) Text(key string) string {
	switch v := p[key].(type) {
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		return ""
	}
}

// TextOr returns the trimmed field, or def when the trimmed field is empty.
func (p Payload) TextOr(key, def string) string {
	s := strings.TrimSpace(p.Text(key))
	if s == "" {
		return def
	}
	return s
}

// Int coerces the field to an integer. Zero and unparsable values yield def.
func (p Payload) Int(key string, def int) int {
	var n int
	switch v := p[key].(type) {
	case json.Number:
		if i, err := v.Int64(); err == nil {
			n = int(i)
		} else if f, err := v.Float64(); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			n = int(f)
		}
	case string:
		if i, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			n = i
		}
	}
	if n == 0 {
		return def
	}
	return n
}

// Strings returns the string items of an array field.
func (p Payload) Strings(key string) []string {
	items, ok := p[key].([]any)
	if !ok {
		return nil
	}
	var res []string
	for _, it := range items {
		if s, ok := it.(string); ok {
			res = append(res, s)
		}
	}
	return res
}
