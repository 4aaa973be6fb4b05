// internal/repository/repository_test.go
package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/storage"
)

func newTestStore(t *testing.T) *storage.Store {
	t.Helper()
	return storage.Open(t.TempDir())
}

func TestUserSaveAssignsSequentialIDs(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	first := &models.User{Username: "ana", Email: "ana@example.com", DateJoined: time.Now().UTC().Truncate(time.Second)}
	second := &models.User{Username: "bia", Email: "bia@example.com", DateJoined: time.Now().UTC().Truncate(time.Second)}

	require.NoError(t, repo.Save(first))
	require.NoError(t, repo.Save(second))

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestUserSaveUpdatesInPlace(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	user := &models.User{Username: "ana", Email: "ana@example.com", DateJoined: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, repo.Save(user))

	user.Email = "ana.silva@example.com"
	require.NoError(t, repo.Save(user))

	users := repo.GetAll()
	require.Len(t, users, 1)
	assert.Equal(t, "ana.silva@example.com", users[0].Email)
	assert.Equal(t, 1, users[0].ID)
}

func TestUserSaveIgnoresUnknownID(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	user := &models.User{ID: 42, Username: "ana", Email: "ana@example.com", DateJoined: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, repo.Save(user))

	// An id that is not in the table gets replaced by a fresh one.
	assert.Equal(t, 1, user.ID)
}

func TestUserGetByEmail(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	user := &models.User{Username: "ana", Email: "ana@example.com", DateJoined: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, repo.Save(user))

	found, err := repo.GetByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	_, err = repo.GetByEmail("Ana@example.com")
	assert.ErrorIs(t, err, ErrNotFound, "email lookup is case-sensitive")
}

func TestDeleteNeverReusesIDs(t *testing.T) {
	repo := NewUserRepository(newTestStore(t))

	for _, name := range []string{"ana", "bia", "clara"} {
		require.NoError(t, repo.Save(&models.User{Username: name, Email: name + "@example.com", DateJoined: time.Now().UTC().Truncate(time.Second)}))
	}

	removed, err := repo.Delete(2)
	require.NoError(t, err)
	assert.True(t, removed)

	// Survivors keep their order.
	users := repo.GetAll()
	require.Len(t, users, 2)
	assert.Equal(t, []int{1, 3}, []int{users[0].ID, users[1].ID})

	// Deleting the highest id must not free it either: the next insert gets a
	// fresh id above every id ever assigned.
	removed, err = repo.Delete(3)
	require.NoError(t, err)
	assert.True(t, removed)

	dora := &models.User{Username: "dora", Email: "dora@example.com", DateJoined: time.Now().UTC().Truncate(time.Second)}
	require.NoError(t, repo.Save(dora))
	assert.Equal(t, 4, dora.ID)

	removed, err = repo.Delete(99)
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestProductLifecycle(t *testing.T) {
	repo := NewProductRepository(newTestStore(t))

	cable := &models.Product{Name: "Cabo P10", Brand: "Santo Angelo", Price: 89.9, Status: models.ProductStatusInStock}
	phone := &models.Product{Name: "Fone HD-25", Brand: "Sennheiser", Price: 1299.9, Status: models.ProductStatusFeatured, Filters: []int{2}}

	require.NoError(t, repo.Save(cable))
	require.NoError(t, repo.Save(phone))
	assert.Equal(t, 1, cable.ID)
	assert.Equal(t, 2, phone.ID)

	cable.Price = 79.9
	require.NoError(t, repo.Save(cable))

	got, err := repo.GetByID(1)
	require.NoError(t, err)
	assert.Equal(t, 79.9, got.Price)

	featured := repo.GetFeatured()
	require.Len(t, featured, 1)
	assert.Equal(t, "Fone HD-25", featured[0].Name)

	removed, err := repo.Delete(1)
	require.NoError(t, err)
	assert.True(t, removed)

	_, err = repo.GetByID(1)
	assert.ErrorIs(t, err, ErrNotFound)

	// New inserts continue above the historical max.
	mic := &models.Product{Name: "Microfone SM58", Brand: "Shure", Price: 699.0, Status: models.ProductStatusInStock}
	require.NoError(t, repo.Save(mic))
	assert.Equal(t, 3, mic.ID)
}

func TestProductBrandsDistinctFirstSeen(t *testing.T) {
	repo := NewProductRepository(newTestStore(t))

	for _, p := range []*models.Product{
		{Name: "Fone HD-25", Brand: "Sennheiser"},
		{Name: "Microfone SM58", Brand: "Shure"},
		{Name: "Fone HD-600", Brand: "Sennheiser"},
	} {
		require.NoError(t, repo.Save(p))
	}

	assert.Equal(t, []string{"Sennheiser", "Shure"}, repo.Brands())
}

func TestReviewsByProduct(t *testing.T) {
	repo := NewReviewRepository(newTestStore(t))

	for _, r := range []*models.Review{
		{Rating: 5, Comment: "Excelente", UserID: 1, ProductID: 7, DatePosted: time.Now().UTC().Truncate(time.Second)},
		{Rating: 3, Comment: "Razoável", UserID: 2, ProductID: 8, DatePosted: time.Now().UTC().Truncate(time.Second)},
		{Rating: 4, Comment: "Bom custo", UserID: 2, ProductID: 7, DatePosted: time.Now().UTC().Truncate(time.Second)},
	} {
		require.NoError(t, repo.Save(r))
	}

	reviews := repo.GetByProductID(7)
	require.Len(t, reviews, 2)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, 4, reviews[1].Rating)
}

func TestFilterListOrdered(t *testing.T) {
	repo := NewFilterRepository(newTestStore(t))

	for _, f := range []*models.Filter{
		{Name: "Preto", Type: "color"},
		{Name: "Sennheiser", Type: "brand"},
		{Name: "Promoção", Type: "campanha"},
		{Name: "Bluetooth", Type: "connectivity"},
		{Name: "Shure", Type: "brand"},
	} {
		require.NoError(t, repo.Save(f))
	}

	ordered := repo.ListOrdered()
	types := make([]string, len(ordered))
	for i, f := range ordered {
		types[i] = f.Type
	}
	assert.Equal(t, []string{"brand", "brand", "color", "connectivity", "campanha"}, types)
	// Stored order survives within a type.
	assert.Equal(t, "Sennheiser", ordered[0].Name)
	assert.Equal(t, "Shure", ordered[1].Name)
}

func TestGetAllSkipsUndecodableRows(t *testing.T) {
	store := newTestStore(t)
	repo := NewUserRepository(store)

	require.NoError(t, store.Users.WriteAll([]storage.Row{
		{"id": "1", "username": "ana", "email": "ana@example.com"},
		{"id": "corrupt", "username": "ghost"},
		{"id": "2", "username": "bia", "email": "bia@example.com"},
	}))

	users := repo.GetAll()
	require.Len(t, users, 2)
	assert.Equal(t, "ana", users[0].Username)
	assert.Equal(t, "bia", users[1].Username)
}
