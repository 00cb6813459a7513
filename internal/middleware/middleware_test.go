package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"

	"github.com/JainamOswal18/TheBetterHack2025/internal/auth"
	"github.com/JainamOswal18/TheBetterHack2025/internal/database"
	"github.com/JainamOswal18/TheBetterHack2025/internal/model"
	"github.com/JainamOswal18/TheBetterHack2025/internal/utilities"
)

var testDB *database.DBinstanceStruct

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	var err error
	var midTeardown func(context.Context, ...testcontainers.TerminateOption) error
	midTeardown, testDB, err = database.GetTestDB()
	if err != nil {
		os.Exit(1)
	}
	m.Run()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if midTeardown != nil {
		_ = midTeardown(ctx)
	}
}

func protectedEngine() *gin.Engine {
	r := gin.New()
	r.GET("/protected", RequireAuth(testDB), checkUserHandler)
	return r
}

func checkUserHandler(c *gin.Context) {
	u, exist := c.Get("user")
	if !exist {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": u})
}

func doGet(engine *gin.Engine, endpoint, token string) (*httptest.ResponseRecorder, map[string]interface{}) {
	req, _ := http.NewRequest(http.MethodGet, endpoint, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	body := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &body)
	return rec, body
}

func TestRequireAuth_Success(t *testing.T) {
	engine := protectedEngine()
	token, err := auth.GetAccessToken(testDB, database.TestReviewerUser.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, body := doGet(engine, "/protected", token)

	assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, true, body["ok"])
}

func TestRequireAuth_NoHeader(t *testing.T) {
	engine := protectedEngine()

	rec, body := doGet(engine, "/protected", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, body["error"], "authorization header")
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	engine := protectedEngine()
	token, _, err := auth.GenerateTokenWithDuration(database.TestReviewerUser.ID, -1*time.Minute, auth.JwtIssuer)
	assert.NoError(t, err)

	rec, body := doGet(engine, "/protected", token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Access token expired", body["error"])
}

func TestRequireAuth_InvalidToken(t *testing.T) {
	engine := protectedEngine()
	// Create a valid token then corrupt it (signature mismatch)
	validToken, _, err := auth.GenerateTokenWithDuration(database.TestReviewerUser.ID, time.Hour, auth.JwtIssuer)
	assert.NoError(t, err)

	rec, body := doGet(engine, "/protected", validToken+"x")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, body["error"], "Failed to validate token")
}

func TestRequireAuth_UnknownUser(t *testing.T) {
	engine := protectedEngine()
	token, _, err := auth.GenerateTokenWithDuration(uuid.New(), time.Hour, auth.JwtIssuer)
	assert.NoError(t, err)

	rec, body := doGet(engine, "/protected", token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, body["error"], "User not exist")
}

func TestRequireAuth_InvalidIssuer(t *testing.T) {
	engine := protectedEngine()
	token, _, err := auth.GenerateTokenWithDuration(database.TestReviewerUser.ID, time.Hour, "invalid-issuer")
	assert.NoError(t, err)

	rec, body := doGet(engine, "/protected", token)

	assert.Equal(t, http.StatusUnauthorized, rec.Code, rec.Body.String())
	assert.Contains(t, body["error"], "Invalid token issuer")
}

func TestCheckRole_NoRequireAuthBefore(t *testing.T) {
	engine := gin.New()
	engine.GET("/need-role", CheckRole(model.RoleAdmin), checkUserHandler)

	rec, body := doGet(engine, "/need-role", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, body["error"], "information not provided")
}

func TestCheckRole_WrongRole(t *testing.T) {
	hashed, err := utilities.HashPassword(database.TestSeedPassword)
	require.NoError(t, err)
	plainUser := model.User{
		ID:       uuid.New(),
		Username: "middleware_plain_user",
		Password: hashed,
		Role:     "applicant",
	}
	require.NoError(t, testDB.Create(&plainUser).Error)

	engine := gin.New()
	engine.GET("/need-role", RequireAuth(testDB), CheckRole(model.RoleAdmin), checkUserHandler)

	token, err := auth.GetAccessToken(testDB, plainUser.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, body := doGet(engine, "/need-role", token)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, body["error"], "User doesn't have permission to access")
}

func TestCheckRole_Success(t *testing.T) {
	engine := gin.New()
	engine.GET("/need-role", RequireAuth(testDB), CheckRole(model.RoleAdmin), checkUserHandler)

	token, err := auth.GetAccessToken(testDB, database.TestReviewerUser.Username, database.TestSeedPassword)
	assert.NoError(t, err)

	rec, body := doGet(engine, "/need-role", token)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["ok"])
}

func readFileHandler(c *gin.Context) {
	rawFile, err := c.FormFile("file")
	if err != nil {
		var maxBytesError *http.MaxBytesError
		if errors.As(err, &maxBytesError) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Entity too large"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "size": rawFile.Size})
}

func sendFile(t *testing.T, engine *gin.Engine, endpoint string, size int) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "payload.bin")
	require.NoError(t, err)
	_, err = part.Write(bytes.Repeat([]byte("a"), size))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, _ := http.NewRequest(http.MethodPost, endpoint, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestSizeLimit_UnderLimit(t *testing.T) {
	engine := gin.New()
	engine.POST("/upload", SizeLimit(1<<20), readFileHandler)

	rec := sendFile(t, engine, "/upload", 512<<10)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSizeLimit_ExceedLimit(t *testing.T) {
	engine := gin.New()
	engine.POST("/upload", SizeLimit(1<<20), readFileHandler)

	rec := sendFile(t, engine, "/upload", 2<<20)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body["error"], "Entity too large")
}
