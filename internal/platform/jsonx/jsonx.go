// Package jsonx tolera los payloads que mandan los formularios del dashboard:
// números como string, "" en lugar de null y fechas con o sin hora.
package jsonx

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const DateLayout = "2006-01-02"

func isNull(raw json.RawMessage) bool {
	s := bytes.TrimSpace(raw)
	return len(s) == 0 || bytes.Equal(s, []byte("null"))
}

// scalar devuelve el texto del valor (string sin comillas o número tal cual).
func scalar(raw json.RawMessage) (string, bool, error) {
	if isNull(raw) {
		return "", false, nil
	}
	s := bytes.TrimSpace(raw)
	switch s[0] {
	case '"':
		var out string
		if err := json.Unmarshal(s, &out); err != nil {
			return "", false, err
		}
		out = strings.TrimSpace(out)
		return out, out != "", nil
	case '{', '[':
		return "", false, fmt.Errorf("expected scalar, got %s", s)
	default:
		return string(s), true, nil
	}
}

// String acepta string, número o null. null => "".
func String(raw json.RawMessage) (string, error) {
	s, _, err := scalar(raw)
	return s, err
}

// OptString es como String pero distingue ausente/vacío (nil).
func OptString(raw json.RawMessage) (*string, error) {
	s, ok, err := scalar(raw)
	if err != nil || !ok {
		return nil, err
	}
	return &s, nil
}

// Int64 acepta número o string numérico. ok=false si vino null/"".
func Int64(raw json.RawMessage) (int64, bool, error) {
	s, ok, err := scalar(raw)
	if err != nil || !ok {
		return 0, false, err
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		// "3.0" llega de algunos selects numéricos
		d, derr := decimal.NewFromString(s)
		if derr != nil || !d.IsInteger() {
			return 0, false, fmt.Errorf("invalid integer %q", s)
		}
		n = d.IntPart()
	}
	return n, true, nil
}

// Decimal acepta número o string numérico. null/"" => Valid=false.
func Decimal(raw json.RawMessage) (decimal.NullDecimal, error) {
	s, ok, err := scalar(raw)
	if err != nil || !ok {
		return decimal.NullDecimal{}, err
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.NullDecimal{}, fmt.Errorf("invalid number %q", s)
	}
	return decimal.NewNullDecimal(d), nil
}

// Date acepta YYYY-MM-DD o RFC3339. null/"" => nil.
func Date(raw json.RawMessage) (*time.Time, error) {
	s, ok, err := scalar(raw)
	if err != nil || !ok {
		return nil, err
	}
	return ParseDate(s)
}

func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD)", s)
	}
	d := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return &d, nil
}

// FormatDate serializa una fecha como YYYY-MM-DD (nil => nil).
func FormatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(DateLayout)
	return &s
}

// Number serializa un decimal como número JSON (no string). Invalid => nil.
func Number(d decimal.NullDecimal) *json.Number {
	if !d.Valid {
		return nil
	}
	n := json.Number(d.Decimal.String())
	return &n
}
