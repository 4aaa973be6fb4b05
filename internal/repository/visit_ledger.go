// internal/repository/visit_ledger.go
package repository

import (
	"fmt"
	"time"

	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/storage"
)

// VisitLedger records storefront visits and aggregates them for the admin
// dashboard. The table is append-only; rows with a missing session id or an
// unparsable timestamp are skipped by every read path.
type VisitLedger struct {
	table *storage.Table

	// now is swappable so aggregation tests can pin the clock.
	now func() time.Time
}

func NewVisitLedger(store *storage.Store) *VisitLedger {
	return &VisitLedger{table: store.Visits, now: func() time.Time { return time.Now().UTC() }}
}

// Bucket is one labelled slot of a visits-by-period series. Buckets with zero
// visits are present with count 0, never omitted.
type Bucket struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

var windowDurations = map[string]time.Duration{
	"24h": 24 * time.Hour,
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"12m": 365 * 24 * time.Hour,
}

// Record appends one visit for the given session. O(1): prior rows are never
// rewritten.
func (l *VisitLedger) Record(sessionID string) error {
	visit := models.Visit{Timestamp: l.now(), SessionID: sessionID}
	return l.table.Append(visit.EncodeRow())
}

// CountInWindow counts distinct session ids seen within the trailing window.
// The window start is inclusive.
func (l *VisitLedger) CountInWindow(window string) (int, error) {
	duration, ok := windowDurations[window]
	if !ok {
		return 0, fmt.Errorf("unknown visit window %q", window)
	}

	now := l.now()
	start := now.Add(-duration)
	sessions := make(map[string]struct{})
	for _, visit := range l.visits() {
		if visit.Timestamp.Before(start) || visit.Timestamp.After(now) {
			continue
		}
		sessions[visit.SessionID] = struct{}{}
	}
	return len(sessions), nil
}

// BucketedCounts returns a fixed-length series of distinct-session counts:
// 7 daily buckets (DD/MM), 7 weekly buckets labelled by week start (DD/MM),
// 12 monthly buckets (MM/YYYY) or 5 yearly buckets (YYYY), oldest first.
func (l *VisitLedger) BucketedCounts(period string) ([]Bucket, error) {
	starts, labels, width, err := l.bucketLayout(period)
	if err != nil {
		return nil, err
	}

	sessions := make([]map[string]struct{}, len(starts))
	for i := range sessions {
		sessions[i] = make(map[string]struct{})
	}

	for _, visit := range l.visits() {
		for i, start := range starts {
			end := bucketEnd(start, width)
			if !visit.Timestamp.Before(start) && visit.Timestamp.Before(end) {
				sessions[i][visit.SessionID] = struct{}{}
				break
			}
		}
	}

	buckets := make([]Bucket, len(starts))
	for i := range starts {
		buckets[i] = Bucket{Date: labels[i], Count: len(sessions[i])}
	}
	return buckets, nil
}

type bucketWidth int

const (
	widthDay bucketWidth = iota
	widthWeek
	widthMonth
	widthYear
)

func (l *VisitLedger) bucketLayout(period string) ([]time.Time, []string, bucketWidth, error) {
	now := l.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	switch period {
	case "day":
		starts := make([]time.Time, 7)
		labels := make([]string, 7)
		for i := 0; i < 7; i++ {
			day := today.AddDate(0, 0, -(6 - i))
			starts[i] = day
			labels[i] = day.Format("02/01")
		}
		return starts, labels, widthDay, nil
	case "week":
		starts := make([]time.Time, 7)
		labels := make([]string, 7)
		for i := 0; i < 7; i++ {
			// Latest bucket covers the 7 days ending today.
			start := today.AddDate(0, 0, -6-7*(6-i))
			starts[i] = start
			labels[i] = start.Format("02/01")
		}
		return starts, labels, widthWeek, nil
	case "month":
		firstOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
		starts := make([]time.Time, 12)
		labels := make([]string, 12)
		for i := 0; i < 12; i++ {
			month := firstOfMonth.AddDate(0, -(11 - i), 0)
			starts[i] = month
			labels[i] = month.Format("01/2006")
		}
		return starts, labels, widthMonth, nil
	case "year":
		firstOfYear := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
		starts := make([]time.Time, 5)
		labels := make([]string, 5)
		for i := 0; i < 5; i++ {
			year := firstOfYear.AddDate(-(4 - i), 0, 0)
			starts[i] = year
			labels[i] = year.Format("2006")
		}
		return starts, labels, widthYear, nil
	default:
		return nil, nil, 0, fmt.Errorf("unknown visit period %q", period)
	}
}

func bucketEnd(start time.Time, width bucketWidth) time.Time {
	switch width {
	case widthDay:
		return start.AddDate(0, 0, 1)
	case widthWeek:
		return start.AddDate(0, 0, 7)
	case widthMonth:
		return start.AddDate(0, 1, 0)
	default:
		return start.AddDate(1, 0, 0)
	}
}

func (l *VisitLedger) visits() []*models.Visit {
	rows := l.table.ReadAll()
	visits := make([]*models.Visit, 0, len(rows))
	for _, row := range rows {
		visit, ok := models.DecodeVisit(row)
		if !ok {
			continue
		}
		visits = append(visits, visit)
	}
	return visits
}
