// internal/repository/user_repository.go
package repository

import (
	"github.com/sirupsen/logrus"

	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/storage"
)

type UserRepository struct {
	table *storage.Table
}

func NewUserRepository(store *storage.Store) *UserRepository {
	return &UserRepository{table: store.Users}
}

// GetAll returns every decodable user in file order.
func (r *UserRepository) GetAll() []*models.User {
	rows := r.table.ReadAll()
	users := make([]*models.User, 0, len(rows))
	for _, row := range rows {
		user, err := models.DecodeUser(row)
		if err != nil {
			logrus.WithError(err).Warn("Skipping undecodable user row")
			continue
		}
		users = append(users, user)
	}
	return users
}

// GetByID scans for the first row with a matching id. Duplicate ids are not
// expected but tolerated: the first match wins.
func (r *UserRepository) GetByID(id int) (*models.User, error) {
	for _, user := range r.GetAll() {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, ErrNotFound
}

// GetByEmail is the secondary lookup used by login. Case-sensitive equality.
func (r *UserRepository) GetByEmail(email string) (*models.User, error) {
	for _, user := range r.GetAll() {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, ErrNotFound
}

// Save upserts by id: an existing row is replaced in place, anything else is
// appended under a freshly assigned id. The id is never changed by an update.
func (r *UserRepository) Save(user *models.User) error {
	rows := r.table.ReadAll()

	if user.ID != 0 {
		for i, row := range rows {
			if rowHasID(row, user.ID) {
				rows[i] = user.EncodeRow()
				return r.table.WriteAll(rows)
			}
		}
	}

	user.ID = r.table.NextID()
	rows = append(rows, user.EncodeRow())
	return r.table.WriteAll(rows)
}

// Delete removes every row matching id, preserving survivor order. It reports
// whether anything was removed.
func (r *UserRepository) Delete(id int) (bool, error) {
	rows := r.table.ReadAll()
	survivors := rows[:0]
	removed := false
	for _, row := range rows {
		if rowHasID(row, id) {
			removed = true
			continue
		}
		survivors = append(survivors, row)
	}
	if !removed {
		return false, nil
	}
	return true, r.table.WriteAll(survivors)
}

// NextID exposes identity assignment for callers that pre-allocate ids.
func (r *UserRepository) NextID() int {
	return r.table.NextID()
}
