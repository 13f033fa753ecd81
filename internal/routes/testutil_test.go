package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/shelfstack/bookstore-api/internal/config"
	dbpkg "github.com/shelfstack/bookstore-api/internal/db"
	"github.com/shelfstack/bookstore-api/internal/token"
)

// ------------------------------
// Fakes
// ------------------------------

// memResets is the reset-token store without redis.
type memResets struct {
	mu   sync.Mutex
	keys map[string]time.Time
}

func newMemResets() *memResets {
	return &memResets{keys: map[string]time.Time{}}
}

func (m *memResets) Save(_ context.Context, jti string, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.keys[jti] = time.Now().Add(ttl)
	return nil
}

func (m *memResets) Consume(_ context.Context, jti string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	exp, ok := m.keys[jti]
	if !ok || time.Now().After(exp) {
		return false, nil
	}
	delete(m.keys, jti)
	return true, nil
}

// fakeCovers records uploads instead of hitting S3.
type fakeCovers struct {
	mu   sync.Mutex
	keys []string
}

func (f *fakeCovers) Put(_ context.Context, key, _ string, body io.Reader) (string, error) {
	if _, err := io.Copy(io.Discard, body); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.keys = append(f.keys, key)
	return "https://covers.test/" + key, nil
}

// ------------------------------
// Environment
// ------------------------------

type testEnv struct {
	r      *gin.Engine
	db     *gorm.DB
	tokens *token.Service
	resets *memResets
	covers *fakeCovers
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))

	cfg := &config.Config{JWTSecret: "test-secret"}
	tokens := token.NewService(cfg.JWTSecret)
	resets := newMemResets()
	covers := &fakeCovers{}

	r := gin.New()
	RegisterRoutes(r, db, cfg, tokens, resets, covers)

	return &testEnv{r: r, db: db, tokens: tokens, resets: resets, covers: covers}
}

// ------------------------------
// Request helpers
// ------------------------------

func (e *testEnv) doJSON(t *testing.T, method, path, bearer string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func (e *testEnv) doMultipart(t *testing.T, method, path, bearer string, fields map[string]string, cover []byte) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if cover != nil {
		part, err := mw.CreateFormFile("cover_image", "cover.png")
		require.NoError(t, err)
		_, err = part.Write(cover)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

// rawAuth sends a request with the Authorization header exactly as given.
func (e *testEnv) rawAuth(t *testing.T, method, path, header string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	e.r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	out := decode(t, w)
	if code, ok := out["error_code"].(string); ok {
		return code
	}
	code, _ := out["error"].(string)
	return code
}

// ------------------------------
// Account helpers
// ------------------------------

func (e *testEnv) signup(t *testing.T, path, name, email, password string) uint {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, path, "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	user := decode(t, w)["user"].(map[string]any)
	return uint(user["id"].(float64))
}

func (e *testEnv) login(t *testing.T, path, email, password string) string {
	t.Helper()
	w := e.doJSON(t, http.MethodPost, path, "", gin.H{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	return decode(t, w)["token"].(string)
}

func (e *testEnv) newUser(t *testing.T, email string) (uint, string) {
	t.Helper()
	id := e.signup(t, "/signup", "Reader", email, "password123")
	return id, e.login(t, "/login", email, "password123")
}

func (e *testEnv) newAdmin(t *testing.T, email string) (uint, string) {
	t.Helper()
	id := e.signup(t, "/admin/signup", "Admin", email, "password123")
	return id, e.login(t, "/admin/login", email, "password123")
}

// pngBytes renders a tiny test cover.
func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	for x := 0; x < 8; x++ {
		for y := 0; y < 8; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x * 30), G: uint8(y * 30), B: 120, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}
