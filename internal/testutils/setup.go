package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/Kyz7/gallery/internal/auth"
	"github.com/Kyz7/gallery/internal/config"
	"github.com/Kyz7/gallery/internal/gallery"
	"github.com/Kyz7/gallery/internal/models"
	"github.com/Kyz7/gallery/internal/server"
	"github.com/Kyz7/gallery/internal/storage"
	"github.com/Kyz7/gallery/internal/utils"
	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const AdminPassword = "1234"

type TestApp struct {
	App     *fiber.App
	Session *gallery.Session
	Store   *storage.SnapshotStore
	DB      *gorm.DB
	Config  *config.Config
}

func TestConfig() *config.Config {
	return &config.Config{
		StoreDriver:     "sqlite",
		SlotKey:         storage.DefaultSlotKey,
		AdminPassword:   AdminPassword,
		PropertyID:      "p1",
		PropertyName:    "엔젤부동산",
		PropertyComplex: "전체 매물 분석",
		PropertyAddress: "경상남도 창원시 의창구",
	}
}

func TestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to create test database")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.KVSlot{}), "Failed to migrate test database")
	return db
}

// SetupTestApp builds the full app over an in-memory sqlite slot. A nil
// catalog leaves the slot empty so the session starts from the seed catalog.
func SetupTestApp(t *testing.T, catalog []models.MediaEntry) *TestApp {
	return SetupTestAppWithConfig(t, TestConfig(), catalog)
}

func SetupTestAppWithConfig(t *testing.T, cfg *config.Config, catalog []models.MediaEntry) *TestApp {
	ctx := context.Background()
	db := TestDB(t)
	store := storage.NewSnapshotStore(storage.NewGormSlot(db), cfg.SlotKey)
	if catalog != nil {
		require.NoError(t, store.SaveCatalog(ctx, catalog))
	}

	utils.SetJWTSecret("")
	utils.SetStorageMode(true)
	require.NoError(t, utils.InitLocalStorage(), "Failed to initialize storage")

	hash, err := utils.HashPassword(cfg.AdminPassword)
	require.NoError(t, err)

	log := zap.NewNop()
	session, err := gallery.Open(ctx, store, gallery.WithLogger(log), gallery.WithPropertyID(cfg.PropertyID))
	require.NoError(t, err, "Failed to open gallery session")
	app := server.New(server.Wire(session, cfg, hash, log))

	return &TestApp{App: app, Session: session, Store: store, DB: db, Config: cfg}
}

func GetAdminToken(t *testing.T) string {
	token, err := utils.GenerateJWT(auth.AdminRole, auth.AdminRole)
	require.NoError(t, err, "Failed to generate test token")
	return token
}

func MakeRequest(app *fiber.App, method, url string, body interface{}, token string) (*httptest.ResponseRecorder, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, url, bodyReader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return do(app, req)
}

// MakeUploadRequest posts content as the multipart "file" field with the given
// content type.
func MakeUploadRequest(app *fiber.App, url, filename, contentType string, content []byte, token string) (*httptest.ResponseRecorder, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		return nil, err
	}
	part.Write(content)
	writer.Close()

	req := httptest.NewRequest("POST", url, body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return do(app, req)
}

func do(app *fiber.App, req *http.Request) (*httptest.ResponseRecorder, error) {
	rec := httptest.NewRecorder()
	resp, err := app.Test(req, -1)
	if err != nil {
		return rec, err
	}

	rec.Code = resp.StatusCode
	io.Copy(rec.Body, resp.Body)
	resp.Body.Close()

	return rec, nil
}

func ParseResponse(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	if resp.Body.Len() == 0 {
		t.Log("Warning: Response body is empty")
		return
	}

	err := json.NewDecoder(bytes.NewReader(resp.Body.Bytes())).Decode(v)
	if err != nil && err != io.EOF {
		t.Logf("Response body: %s", resp.Body.String())
		assert.NoError(t, err, "Failed to parse response")
	}
}

type StandardResponse struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   *ErrorDetail    `json:"error"`
}

type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details"`
}

// ParseData decodes the data field of a standard response into v.
func ParseData(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) StandardResponse {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	if len(result.Data) > 0 && v != nil {
		require.NoError(t, json.Unmarshal(result.Data, v), "Failed to parse data")
	}
	return result
}

func AssertSuccess(t *testing.T, resp *httptest.ResponseRecorder) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.True(t, result.Success, "Expected success response")
	assert.Empty(t, result.Error, "Expected no error")
}

func AssertError(t *testing.T, resp *httptest.ResponseRecorder, expectedCode string) {
	var result StandardResponse
	ParseResponse(t, resp, &result)
	assert.False(t, result.Success, "Expected error response")
	if assert.NotNil(t, result.Error, "Expected error object") {
		assert.Equal(t, expectedCode, result.Error.Code, "Error code mismatch")
	}
}
