package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodcart/database"
	"foodcart/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func setup(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	handler := NewHandler(db, testSecret)
	router := gin.New()
	router.POST("/staff/auth/login", handler.Login)
	router.POST("/staff/auth/refresh", handler.Refresh)
	return db, router
}

func post(router http.Handler, path, body string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func createStaff(t *testing.T, db *gorm.DB, username, password string) {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&model.StaffUser{Username: username, PasswordHash: string(hash)}).Error)
}

func TestLogin(t *testing.T) {
	db, router := setup(t)
	createStaff(t, db, "manager", "s3cret")

	recorder := post(router, "/staff/auth/login", `{"username":"manager","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())

	var response struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.NotEmpty(t, response.AccessToken)
	assert.NotEmpty(t, response.RefreshToken)
}

func TestLoginRejections(t *testing.T) {
	db, router := setup(t)
	createStaff(t, db, "manager", "s3cret")

	tests := []struct {
		name     string
		body     string
		expected int
	}{
		{name: "wrong_password", body: `{"username":"manager","password":"nope"}`, expected: http.StatusUnauthorized},
		{name: "unknown_user", body: `{"username":"ghost","password":"s3cret"}`, expected: http.StatusUnauthorized},
		{name: "missing_fields", body: `{"username":"manager"}`, expected: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, post(router, "/staff/auth/login", tt.body).Code)
		})
	}
}

func TestRefresh(t *testing.T) {
	db, router := setup(t)
	createStaff(t, db, "manager", "s3cret")

	login := post(router, "/staff/auth/login", `{"username":"manager","password":"s3cret"}`)
	require.Equal(t, http.StatusOK, login.Code)

	var tokens struct {
		RefreshToken string `json:"refresh_token"`
	}
	require.NoError(t, json.Unmarshal(login.Body.Bytes(), &tokens))

	refresh := post(router, "/staff/auth/refresh", `{"refresh_token":"`+tokens.RefreshToken+`"}`)
	assert.Equal(t, http.StatusOK, refresh.Code, refresh.Body.String())

	garbage := post(router, "/staff/auth/refresh", `{"refresh_token":"not-a-token"}`)
	assert.Equal(t, http.StatusUnauthorized, garbage.Code)
}
