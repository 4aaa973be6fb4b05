// internal/models/common.go
package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/decibell/store-backend/internal/storage"
)

// Enums
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Product status is free-form in the store; these two values drive behavior.
const (
	ProductStatusInStock  = "Em estoque"
	ProductStatusFeatured = "Em destaque"
)

// Fallback sentinels applied when a stored field is missing or unreadable.
const (
	UnknownProductName = "Nome Indisponível"
	AnonymousUsername  = "Usuário Anônimo"
	UnknownFilterName  = "Desconhecido"
	DefaultFilterType  = "geral"
)

// TimeFormat is the sortable on-disk representation for every timestamp field.
const TimeFormat = time.RFC3339

// DecodeError reports a row that cannot be decoded at all. Only the identity
// field produces one: every other field falls back to a default, but a row
// without a usable id breaks the repository invariants.
type DecodeError struct {
	Table string
	Field string
	Err   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode %s row: bad %s: %v", e.Table, e.Field, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func decodeID(table string, row storage.Row) (int, error) {
	raw, ok := row["id"]
	if !ok || raw == "" {
		return 0, &DecodeError{Table: table, Field: "id", Err: fmt.Errorf("missing value")}
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &DecodeError{Table: table, Field: "id", Err: err}
	}
	return id, nil
}

func fallbackString(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

func fallbackInt(s string, def int) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func fallbackFloat(s string, def float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return f
}

// fallbackTime parses a stored timestamp, defaulting to now for anything
// unreadable so a damaged row still decodes.
func fallbackTime(s string) time.Time {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return time.Now().UTC().Truncate(time.Second)
	}
	return t
}

func encodeTime(t time.Time) string {
	return t.UTC().Format(TimeFormat)
}

// List-valued fields are stored as a JSON array embedded in one CSV field.
// Anything unparsable decodes as an empty list rather than failing the row.

func decodeStringList(s string) []string {
	var out []string
	if s == "" {
		return []string{}
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func decodeIntList(s string) []int {
	var out []int
	if s == "" {
		return []int{}
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil || out == nil {
		return []int{}
	}
	return out
}

func encodeStringList(v []string) string {
	if v == nil {
		v = []string{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func encodeIntList(v []int) string {
	if v == nil {
		v = []int{}
	}
	b, _ := json.Marshal(v)
	return string(b)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}
