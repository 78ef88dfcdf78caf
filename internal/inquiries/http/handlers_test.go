package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrgreentek/greentek-site/internal/api/http/middleware"
	"github.com/vrgreentek/greentek-site/internal/inquiries/domain"
	"github.com/vrgreentek/greentek-site/internal/inquiries/repository"
	"github.com/vrgreentek/greentek-site/internal/inquiries/service"
)

type fixedLimiter bool

func (f fixedLimiter) Allow(context.Context, string) (bool, error) { return bool(f), nil }

func setupRouter(allow bool) (*gin.Engine, *repository.MemoryRepository) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepository()
	svc := service.NewInquiryService(repo, fixedLimiter(allow), nil)

	r := gin.New()
	New(svc).Register(r.Group("/api/v1/inquiries"))
	return r, repo
}

func post(r *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/inquiries", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "203.0.113.7:51234"
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

const validBody = `{"name":"Sana Iqbal","email":"sana@example.com","service":"Energy Audits & Load Analysis","message":"We want an audit of our plant load."}`

func TestCreateInquiry(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		r, repo := setupRouter(true)
		rr := post(r, validBody)
		require.Equal(t, http.StatusCreated, rr.Code)

		var body struct {
			OK bool   `json:"ok"`
			ID string `json:"id"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.OK)

		stored, err := repo.Get(context.Background(), body.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.SourceAPI, stored.Source)
		assert.Equal(t, "203.0.113.7", stored.RemoteIP)
	})

	t.Run("malformed json", func(t *testing.T) {
		r, _ := setupRouter(true)
		rr := post(r, `{"name":`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.JSONEq(t, `{"ok":false,"error":"invalid request body"}`, rr.Body.String())
	})

	t.Run("field errors", func(t *testing.T) {
		r, _ := setupRouter(true)
		rr := post(r, `{"name":"S","email":"sana@example.com","message":"short"}`)
		require.Equal(t, http.StatusBadRequest, rr.Code)

		var body struct {
			Error  string            `json:"error"`
			Fields map[string]string `json:"fields"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.Equal(t, "invalid inquiry", body.Error)
		assert.Contains(t, body.Fields, "name")
		assert.Contains(t, body.Fields, "message")
		assert.NotContains(t, body.Fields, "email")
	})

	t.Run("rate limited", func(t *testing.T) {
		r, _ := setupRouter(false)
		rr := post(r, validBody)
		assert.Equal(t, http.StatusTooManyRequests, rr.Code)
		assert.Equal(t, "3600", rr.Header().Get("Retry-After"))
	})
}

func adminGet(r *gin.Engine, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if key != "" {
		req.Header.Set(middleware.HeaderAPIKey, key)
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestAdminInquiries(t *testing.T) {
	gin.SetMode(gin.TestMode)
	repo := repository.NewMemoryRepository()
	h := New(service.NewInquiryService(repo, nil, nil))

	r := gin.New()
	g := r.Group("/api/v1/inquiries")
	h.Register(g)
	h.RegisterAdmin(g, middleware.APIKey("admin-key"))

	created := post(r, validBody)
	require.Equal(t, http.StatusCreated, created.Code)
	var ref struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(created.Body.Bytes(), &ref))

	t.Run("requires key", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, adminGet(r, "/api/v1/inquiries", "").Code)
		assert.Equal(t, http.StatusUnauthorized, adminGet(r, "/api/v1/inquiries/"+ref.ID, "wrong").Code)
	})

	t.Run("list", func(t *testing.T) {
		rr := adminGet(r, "/api/v1/inquiries?limit=10", "admin-key")
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			OK        bool             `json:"ok"`
			Inquiries []domain.Inquiry `json:"inquiries"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body.Inquiries, 1)
		assert.Equal(t, "sana@example.com", body.Inquiries[0].Email)
		assert.NotContains(t, rr.Body.String(), "203.0.113.7")
	})

	t.Run("get", func(t *testing.T) {
		rr := adminGet(r, "/api/v1/inquiries/"+ref.ID, "admin-key")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Sana Iqbal")

		rr = adminGet(r, "/api/v1/inquiries/not-a-uuid", "admin-key")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"ok":false,"error":"inquiry not found"}`, rr.Body.String())
	})
}
