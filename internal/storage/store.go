// internal/storage/store.go
package storage

import (
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Field order matters: it is written verbatim as each table's header row.
var (
	UserFields    = []string{"id", "username", "email", "password_hash", "role", "profile_picture", "date_joined", "address", "city", "state", "zip_code"}
	ProductFields = []string{"id", "name", "brand", "price", "status", "images", "description", "specs", "seller_id", "filters"}
	ReviewFields  = []string{"id", "rating", "comment", "media_url", "date_posted", "user_id", "product_id"}
	FilterFields  = []string{"id", "name", "type"}
	VisitFields   = []string{"timestamp", "session_id"}
)

// Store bundles the flat-file tables living under one data folder.
type Store struct {
	Users    *Table
	Products *Table
	Reviews  *Table
	Filters  *Table
	Visits   *Table
}

// Open binds the tables under dataDir and vivifies each file so the folder is
// fully usable from the first request.
func Open(dataDir string) *Store {
	s := &Store{
		Users:    NewTable(filepath.Join(dataDir, "users.csv"), UserFields),
		Products: NewTable(filepath.Join(dataDir, "products.csv"), ProductFields),
		Reviews:  NewTable(filepath.Join(dataDir, "reviews.csv"), ReviewFields),
		Filters:  NewTable(filepath.Join(dataDir, "filters.csv"), FilterFields),
		Visits:   NewTable(filepath.Join(dataDir, "visits.csv"), VisitFields),
	}

	for _, t := range []*Table{s.Users, s.Products, s.Reviews, s.Filters, s.Visits} {
		t.ReadAll()
	}

	logrus.WithField("data_dir", dataDir).Info("Flat-file store opened")
	return s
}
