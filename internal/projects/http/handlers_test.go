package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vrgreentek/greentek-site/internal/projects/domain"
	"github.com/vrgreentek/greentek-site/internal/projects/service"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(service.NewProjectService(nil)).Register(r.Group("/api/v1/projects"))
	return r
}

func doGet(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestListProjects(t *testing.T) {
	r := setupRouter()

	t.Run("all", func(t *testing.T) {
		rr := doGet(t, r, "/api/v1/projects")
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			OK       bool             `json:"ok"`
			Projects []domain.Project `json:"projects"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.OK)
		assert.Len(t, body.Projects, 9)
	})

	t.Run("filtered by type", func(t *testing.T) {
		rr := doGet(t, r, "/api/v1/projects?type=green-energy")
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			Projects []domain.Project `json:"projects"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		require.Len(t, body.Projects, 4)
		for _, p := range body.Projects {
			assert.Equal(t, domain.TypeGreenEnergy, p.Type)
		}
	})

	t.Run("invalid type", func(t *testing.T) {
		rr := doGet(t, r, "/api/v1/projects?type=wind")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, rr.Body.String(), "invalid project type")
	})

	t.Run("padded type is not normalised", func(t *testing.T) {
		rr := doGet(t, r, "/api/v1/projects?type=%20electrical")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("blank type lists everything", func(t *testing.T) {
		rr := doGet(t, r, "/api/v1/projects?type=%20")
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestGetProject(t *testing.T) {
	r := setupRouter()

	t.Run("found", func(t *testing.T) {
		rr := doGet(t, r, "/api/v1/projects/electrical/dripping-automation")
		require.Equal(t, http.StatusOK, rr.Code)

		var body struct {
			OK      bool             `json:"ok"`
			Project domain.Project   `json:"project"`
			Href    string           `json:"href"`
			Similar []domain.Project `json:"similar"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
		assert.True(t, body.OK)
		assert.Equal(t, "Dripping Automation", body.Project.Title)
		assert.Equal(t, "/projects/electrical/dripping-automation", body.Href)
		assert.Len(t, body.Similar, 3)
		for _, p := range body.Similar {
			assert.NotEqual(t, "dripping-automation", p.Slug)
		}
	})

	t.Run("unknown slug", func(t *testing.T) {
		rr := doGet(t, r, "/api/v1/projects/electrical/does-not-exist")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.JSONEq(t, `{"ok":false,"error":"project not found"}`, rr.Body.String())
	})

	t.Run("invalid type", func(t *testing.T) {
		rr := doGet(t, r, "/api/v1/projects/wind/dripping-automation")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("padded type", func(t *testing.T) {
		rr := doGet(t, r, "/api/v1/projects/%20electrical/dripping-automation")
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
