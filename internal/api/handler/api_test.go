package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIHandler_Index(t *testing.T) {
	handler := NewAPIHandler()

	router := gin.New()
	router.GET("/api", handler.Index)

	req := httptest.NewRequest("GET", "/api", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	body := parseBody(t, w)
	listed, ok := body["endpoints"].(map[string]interface{})
	require.True(t, ok)

	// every route of the API appears in the listing
	for _, endpoint := range []string{
		"GET /api",
		"GET /api/categories",
		"GET /api/reviews",
		"POST /api/reviews",
		"GET /api/reviews/:review_id",
		"PATCH /api/reviews/:review_id",
		"GET /api/reviews/:review_id/comments",
		"POST /api/reviews/:review_id/comments",
		"PATCH /api/comments/:comment_id",
		"DELETE /api/comments/:comment_id",
		"GET /api/users",
		"GET /api/users/:username",
	} {
		assert.Contains(t, listed, endpoint)
	}
}
