package fixturefile

import (
	"bytes"
	"strconv"
	"strings"
)

// The provider feed mixes numbers, numeric strings and nulls for the same key.
// The scalar types below decode any of those shapes and fall back to zero
// instead of failing the whole file.

// Int decodes like parseInt: a leading optional sign followed by digits.
type Int int64

func (v *Int) UnmarshalJSON(data []byte) error {
	*v = 0
	raw, quoted := unquote(data)
	if raw == "" {
		return nil
	}
	if !quoted {
		if f, err := strconv.ParseFloat(raw, 64); err == nil {
			*v = Int(int64(f))
			return nil
		}
	}
	*v = Int(leadingInt(raw))
	return nil
}

func (v Int) Int64() int64 { return int64(v) }
func (v Int) Int() int { return int(v) }

// Float decodes a number or a numeric string with an optional trailing suffix.
type Float float64

func (v *Float) UnmarshalJSON(data []byte) error {
	*v = 0
	raw, _ := unquote(data)
	if raw == "" {
		return nil
	}
	*v = Float(leadingFloat(raw))
	return nil
}

func (v Float) Float64() float64 { return float64(v) }

// Text decodes a string, or the literal text of a number or bool.
type Text string

func (v *Text) UnmarshalJSON(data []byte) error {
	raw, quoted := unquote(data)
	if !quoted && raw == "null" {
		raw = ""
	}
	*v = Text(raw)
	return nil
}

func (v Text) String() string { return string(v) }

// Flag is true for true, "true", 1 and "1".
type Flag bool

func (v *Flag) UnmarshalJSON(data []byte) error {
	raw, _ := unquote(data)
	switch strings.ToLower(raw) {
	case "true", "1":
		*v = true
	default:
		*v = false
	}
	return nil
}

func (v Flag) Bool() bool { return bool(v) }

// Strict is true only for the JSON literal true.
type Strict bool

func (v *Strict) UnmarshalJSON(data []byte) error {
	*v = Strict(bytes.Equal(bytes.TrimSpace(data), []byte("true")))
	return nil
}

func (v Strict) Bool() bool { return bool(v) }

// Cell keeps one raw element of a heterogeneous array and converts on demand.
type Cell []byte

func (c *Cell) UnmarshalJSON(data []byte) error {
	*c = append((*c)[:0], data...)
	return nil
}

func (c Cell) Int() int64 {
	var v Int
	_ = v.UnmarshalJSON(c)
	return int64(v)
}

func (c Cell) Float() float64 {
	var v Float
	_ = v.UnmarshalJSON(c)
	return float64(v)
}

func (c Cell) Text() string {
	var v Text
	_ = v.UnmarshalJSON(c)
	return string(v)
}

func unquote(data []byte) (string, bool) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) >= 2 && trimmed[0] == '"' && trimmed[len(trimmed)-1] == '"' {
		if s, err := strconv.Unquote(string(trimmed)); err == nil {
			return strings.TrimSpace(s), true
		}
		return strings.TrimSpace(string(trimmed[1 : len(trimmed)-1])), true
	}
	if len(trimmed) == 0 || string(trimmed) == "null" {
		return "", false
	}
	return string(trimmed), false
}

func leadingInt(raw string) int64 {
	end := numberPrefix(raw, false)
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseInt(raw[:end], 10, 64)
	if err != nil {
		return 0
	}
	return v
}

func leadingFloat(raw string) float64 {
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	end := numberPrefix(raw, true)
	if end == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(raw[:end], 64)
	if err != nil {
		return 0
	}
	return v
}

func numberPrefix(raw string, fraction bool) int {
	i := 0
	if i < len(raw) && (raw[i] == '-' || raw[i] == '+') {
		i++
	}
	digits := 0
	for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
		i++
		digits++
	}
	if fraction && i < len(raw) && raw[i] == '.' {
		i++
		for i < len(raw) && raw[i] >= '0' && raw[i] <= '9' {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	return i
}
