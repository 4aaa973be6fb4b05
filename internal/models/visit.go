// internal/models/visit.go
package models

import (
	"time"

	"github.com/decibell/store-backend/internal/storage"
)

// Visit is an append-only (timestamp, session) pair. It has no surrogate key:
// visits are only ever read in aggregate.
type Visit struct {
	Timestamp time.Time `json:"timestamp"`
	SessionID string    `json:"session_id"`
}

func (v *Visit) EncodeRow() storage.Row {
	return storage.Row{
		"timestamp":  encodeTime(v.Timestamp),
		"session_id": v.SessionID,
	}
}

// DecodeVisit returns false for rows with a missing session id or an
// unparsable timestamp; the aggregations skip them instead of erroring.
func DecodeVisit(row storage.Row) (*Visit, bool) {
	if row["session_id"] == "" {
		return nil, false
	}
	ts, err := time.Parse(TimeFormat, row["timestamp"])
	if err != nil {
		return nil, false
	}
	return &Visit{Timestamp: ts, SessionID: row["session_id"]}, true
}
