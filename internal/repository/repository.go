// internal/repository/repository.go
//
// Typed CRUD façades over the flat-file tables. Every mutation is a full
// read-modify-write of the backing file; reads decode each row through the
// entity codec and skip rows the codec rejects instead of failing the call.
package repository

import (
	"errors"
	"strconv"

	"github.com/decibell/store-backend/internal/storage"
)

var ErrNotFound = errors.New("record not found")

// rowHasID compares a raw row's id against a numeric id the way the store
// does everywhere else: by parsed value, not by string. Rows with an
// unparsable id never match and are left untouched by updates and deletes.
func rowHasID(row storage.Row, id int) bool {
	n, err := strconv.Atoi(row["id"])
	return err == nil && n == id
}
