// internal/router/router_test.go
package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/decibell/store-backend/internal/config"
	"github.com/decibell/store-backend/internal/models"
	"github.com/decibell/store-backend/internal/repository"
	"github.com/decibell/store-backend/internal/storage"
	"github.com/decibell/store-backend/internal/utils"
)

func newTestServer(t *testing.T) (*gin.Engine, *storage.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Environment: "test",
		JWT: config.JWTConfig{
			SecretKey:       "test-secret",
			AccessTokenTTL:  1,
			RefreshTokenTTL: 24,
		},
		Upload: config.UploadConfig{
			Dir:     t.TempDir(),
			BaseURL: "http://localhost:8080/uploads",
		},
	}
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	store := storage.Open(t.TempDir())
	r, err := SetupRouter(cfg, store)
	require.NoError(t, err)
	return r, store
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var envelope map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestStorefrontEndToEnd(t *testing.T) {
	r, store := newTestServer(t)

	w := doJSON(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// Register a shopper and an admin.
	w = doJSON(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": "joana_s",
		"email":    "joana@example.com",
		"password": "Str0ngPass",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	envelope := decodeEnvelope(t, w)
	shopperToken := envelope["data"].(map[string]interface{})["access_token"].(string)

	admin := &models.User{
		Username:   "admin",
		Email:      "admin@example.com",
		Role:       models.RoleAdmin,
		DateJoined: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, admin.SetPassword("Adm1nPass"))
	require.NoError(t, repository.NewUserRepository(store).Save(admin))

	w = doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "Adm1nPass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	envelope = decodeEnvelope(t, w)
	adminToken := envelope["data"].(map[string]interface{})["access_token"].(string)

	// Shoppers cannot reach the admin surface.
	w = doJSON(t, r, http.MethodPost, "/api/admin/products", shopperToken, gin.H{
		"name": "Fone HD-25", "brand": "Sennheiser", "price": 1299.9, "status": "Em destaque",
	})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/admin/products", adminToken, gin.H{
		"name": "Fone HD-25", "brand": "Sennheiser", "price": 1299.9, "status": "Em destaque",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Public catalog sees it, and the GET sets a visit session cookie.
	w = doJSON(t, r, http.MethodGet, "/api/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	envelope = decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])
	assert.Len(t, envelope["data"], 1)

	var sessionCookie *http.Cookie
	for _, cookie := range w.Result().Cookies() {
		if cookie.Name == "session_id" {
			sessionCookie = cookie
		}
	}
	require.NotNil(t, sessionCookie, "public GET sets the visit session cookie")
	assert.NotEmpty(t, sessionCookie.Value)

	visits := store.Visits.ReadAll()
	require.Len(t, visits, 1)
	assert.Equal(t, sessionCookie.Value, visits[0]["session_id"])

	w = doJSON(t, r, http.MethodGet, "/api/products/featured", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	envelope = decodeEnvelope(t, w)
	assert.Len(t, envelope["data"], 1)

	// A review posted by the shopper shows up on the product page.
	w = doJSON(t, r, http.MethodPost, "/api/products/1/reviews", shopperToken, gin.H{
		"rating": 5, "comment": "Som excelente",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doJSON(t, r, http.MethodGet, "/api/products/1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	envelope = decodeEnvelope(t, w)
	data := envelope["data"].(map[string]interface{})
	assert.Len(t, data["reviews"], 1)
	assert.Equal(t, 5.0, data["average_rating"])

	// Admin dashboard counts what happened above.
	w = doJSON(t, r, http.MethodGet, "/api/admin/stats?period=day", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	envelope = decodeEnvelope(t, w)
	stats := envelope["data"].(map[string]interface{})
	assert.Equal(t, 2.0, stats["total_users"])
	assert.Equal(t, 1.0, stats["total_products"])
	assert.Len(t, stats["visits_by_period"], 7)

	w = doJSON(t, r, http.MethodGet, "/api/admin/stats?period=decade", adminToken, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unauthenticated access to protected routes is rejected.
	w = doJSON(t, r, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminFilters(t *testing.T) {
	r, store := newTestServer(t)

	admin := &models.User{
		Username:   "admin2",
		Email:      "admin2@example.com",
		Role:       models.RoleAdmin,
		DateJoined: time.Now().UTC().Truncate(time.Second),
	}
	require.NoError(t, admin.SetPassword("Adm1nPass"))
	require.NoError(t, repository.NewUserRepository(store).Save(admin))

	w := doJSON(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "admin2@example.com", "password": "Adm1nPass",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	token := decodeEnvelope(t, w)["data"].(map[string]interface{})["access_token"].(string)

	w = doJSON(t, r, http.MethodPost, "/api/admin/filters", token, gin.H{"name": "Sennheiser", "type": "brand"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	// Duplicate names conflict.
	w = doJSON(t, r, http.MethodPost, "/api/admin/filters", token, gin.H{"name": "Sennheiser", "type": "brand"})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/filters", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeEnvelope(t, w)["data"], 1)

	w = doJSON(t, r, http.MethodDelete, "/api/admin/filters/1", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
