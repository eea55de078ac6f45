package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"ding-dong-api/config"
	"ding-dong-api/dao"
	"ding-dong-api/handlers"
	"ding-dong-api/routes"
	"ding-dong-api/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newTestAPI(t *testing.T) (*gin.Engine, *dao.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := config.InitDB(config.Config{
		DBPath: filepath.Join(t.TempDir(), "test.db"),
	})
	require.NoError(t, err)

	store := dao.NewStore(db)
	sessions := session.NewManager(db, bcrypt.MinCost)
	h := handlers.New(store, sessions, zap.NewNop())

	r := gin.New()
	routes.SetupRoutes(r, h, sessions)
	return r, store
}

// doJSON fires a request and decodes the response body into a generic map.
func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) (int, map[string]any) {
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
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var resp map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	}
	return rec.Code, resp
}

func registerAnn(t *testing.T, r *gin.Engine) map[string]any {
	t.Helper()
	code, resp := doJSON(t, r, http.MethodPost, "/register/", "", gin.H{
		"name":     "Ann",
		"username": "ann1",
		"email":    "a@x.com",
		"password": "pw",
	})
	require.Equal(t, http.StatusOK, code)
	return resp
}

func data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()
	require.Equal(t, true, resp["success"])
	d, ok := resp["data"].(map[string]any)
	require.True(t, ok)
	return d
}

func TestRegisterLoginFlow(t *testing.T) {
	r, _ := newTestAPI(t)

	reg := registerAnn(t, r)
	require.NotEmpty(t, reg["session_token"])
	require.NotEmpty(t, reg["update_token"])
	require.NotEmpty(t, reg["session_expiration"])
	assert.NotEqual(t, reg["session_token"], reg["update_token"])

	// Login rotates the session: a fresh pair comes back.
	code, login := doJSON(t, r, http.MethodPost, "/login/", "", gin.H{
		"email":    "a@x.com",
		"password": "pw",
	})
	require.Equal(t, http.StatusOK, code)
	assert.NotEqual(t, reg["session_token"], login["session_token"])
	assert.NotEqual(t, reg["update_token"], login["update_token"])

	code, resp := doJSON(t, r, http.MethodPost, "/login/", "", gin.H{
		"email":    "a@x.com",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Incorrect email or password.", resp["error"])

	code, resp = doJSON(t, r, http.MethodPost, "/register/", "", gin.H{
		"name":     "Ann",
		"username": "ann1",
		"email":    "a@x.com",
		"password": "pw",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "User already exists.", resp["error"])
}

func TestRegisterValidation(t *testing.T) {
	r, _ := newTestAPI(t)

	code, resp := doJSON(t, r, http.MethodPost, "/register/", "", gin.H{
		"name":  "Ann",
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "Invalid name, username, email or password.", resp["error"])
}

func TestSecretEndpoint(t *testing.T) {
	r, _ := newTestAPI(t)
	reg := registerAnn(t, r)

	code, resp := doJSON(t, r, http.MethodGet, "/secret/", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Missing authorization header.", resp["error"])

	code, resp = doJSON(t, r, http.MethodGet, "/secret/", "bogus", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid session token.", resp["error"])

	code, resp = doJSON(t, r, http.MethodGet, "/secret/", reg["session_token"].(string), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "You have successfully implemented sessions", resp["message"])
}

func TestRenewSessionEndpoint(t *testing.T) {
	r, _ := newTestAPI(t)
	reg := registerAnn(t, r)
	updateToken := reg["update_token"].(string)

	code, renewed := doJSON(t, r, http.MethodPost, "/session/", updateToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.NotEqual(t, reg["session_token"], renewed["session_token"])
	assert.NotEqual(t, reg["update_token"], renewed["update_token"])

	// The old update token was consumed by the renewal.
	code, resp := doJSON(t, r, http.MethodPost, "/session/", updateToken, nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "Invalid update token.", resp["error"])
}

func TestOrderScenario(t *testing.T) {
	r, _ := newTestAPI(t)
	registerAnn(t, r)

	code, resp := doJSON(t, r, http.MethodPost, "/restaurant/", "", gin.H{"name": "Pasta House"})
	require.Equal(t, http.StatusOK, code)
	restaurant := data(t, resp)
	assert.Equal(t, "Pasta House", restaurant["name"])

	code, resp = doJSON(t, r, http.MethodPost, "/restaurants/1/dish/", "", gin.H{
		"name":  "Carbonara",
		"price": 12.50,
	})
	require.Equal(t, http.StatusOK, code)
	dish := data(t, resp)
	assert.Equal(t, false, dish["sold_out"])

	code, resp = doJSON(t, r, http.MethodPost, "/driver/", "", gin.H{
		"name":                 "Dan",
		"license_plate_number": "ABC-123",
	})
	require.Equal(t, http.StatusOK, code)

	code, resp = doJSON(t, r, http.MethodPost, "/user/1/restaurant/1/order/", "", gin.H{"driver_id": 1})
	require.Equal(t, http.StatusOK, code)
	order := data(t, resp)
	assert.Equal(t, 0.0, order["total"])

	code, resp = doJSON(t, r, http.MethodPost, "/order/1/add/", "", gin.H{"dish_id": 1})
	require.Equal(t, http.StatusOK, code)
	order = data(t, resp)
	assert.InDelta(t, 12.50, order["total"].(float64), 1e-9)
	require.Len(t, order["dishes"], 1)

	// Delivered is a one-way latch.
	code, _ = doJSON(t, r, http.MethodPost, "/order/1/", "", gin.H{"delivered": true})
	require.Equal(t, http.StatusOK, code)
	code, resp = doJSON(t, r, http.MethodPost, "/order/1/", "", gin.H{"paid": true})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Order not found or has been delivered.", resp["error"])
}

func TestRatingScenario(t *testing.T) {
	r, _ := newTestAPI(t)
	registerAnn(t, r)

	code, _ := doJSON(t, r, http.MethodPost, "/restaurant/", "", gin.H{"name": "Pasta House"})
	require.Equal(t, http.StatusOK, code)

	code, _ = doJSON(t, r, http.MethodPost, "/restaurant/1/review/", "", gin.H{
		"user_id": 1, "rating": 4, "content": "great",
	})
	require.Equal(t, http.StatusOK, code)
	code, _ = doJSON(t, r, http.MethodPost, "/restaurant/1/review/", "", gin.H{
		"user_id": 1, "rating": 2, "content": "meh",
	})
	require.Equal(t, http.StatusOK, code)

	code, resp := doJSON(t, r, http.MethodGet, "/restaurant/1/", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.InDelta(t, 3.0, data(t, resp)["rating"].(float64), 1e-9)

	code, _ = doJSON(t, r, http.MethodDelete, "/review/1/", "", nil)
	require.Equal(t, http.StatusOK, code)

	code, resp = doJSON(t, r, http.MethodGet, "/restaurant/1/", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.InDelta(t, 2.0, data(t, resp)["rating"].(float64), 1e-9)
}

func TestBalanceEndpoint(t *testing.T) {
	r, _ := newTestAPI(t)
	reg := registerAnn(t, r)
	token := reg["session_token"].(string)

	// Session required.
	code, _ := doJSON(t, r, http.MethodPost, "/user/1/balance/", "", gin.H{"amount": 10})
	assert.Equal(t, http.StatusUnauthorized, code)

	code, resp := doJSON(t, r, http.MethodPost, "/user/1/balance/", token, gin.H{"amount": 10})
	require.Equal(t, http.StatusOK, code)
	assert.InDelta(t, 10.0, data(t, resp)["balance"].(float64), 1e-9)

	// Nonexistent user is a structured 404.
	code, resp = doJSON(t, r, http.MethodPost, "/user/9999/balance/", token, gin.H{"amount": 10})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "User not found.", resp["error"])
}

func TestNotFoundEnvelope(t *testing.T) {
	r, _ := newTestAPI(t)

	code, resp := doJSON(t, r, http.MethodGet, "/restaurant/999/", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, false, resp["success"])
	assert.Equal(t, "Restaurant not found.", resp["error"])
}
