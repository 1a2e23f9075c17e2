package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/ncgames/games_go_server/internal/repository"
	"github.com/ncgames/games_go_server/internal/service"
	"github.com/ncgames/games_go_server/internal/testutil"
)

func setupCommentHandler(t *testing.T) (*CommentHandler, *gorm.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	commentService := service.NewCommentService(
		repository.NewCommentRepository(db),
		repository.NewReviewRepository(db),
		repository.NewUserRepository(db),
	)
	handler := NewCommentHandler(commentService)

	cleanup := func() {
		testutil.CleanupTestDB(t, db)
	}

	return handler, db, cleanup
}

func commentRouter(handler *CommentHandler) *gin.Engine {
	router := gin.New()
	router.GET("/api/reviews/:review_id/comments", handler.List)
	router.POST("/api/reviews/:review_id/comments", handler.Create)
	router.PATCH("/api/comments/:comment_id", handler.PatchVotes)
	router.DELETE("/api/comments/:comment_id", handler.Delete)
	return router
}

func TestCommentHandler_List(t *testing.T) {
	handler, db, cleanup := setupCommentHandler(t)
	defer cleanup()

	testutil.TestCategory(t, db, "social deduction", "Players attempt to uncover each other's hidden role")
	user := testutil.TestUser(t, db)
	review := testutil.TestReview(t, db, user.Username, "social deduction")

	base := time.Date(2021, 1, 18, 10, 0, 0, 0, time.UTC)
	testutil.TestComment(t, db, user.Username, review.ReviewID, "older comment",
		testutil.WithCommentCreatedAt(base))
	testutil.TestComment(t, db, user.Username, review.ReviewID, "newer comment",
		testutil.WithCommentCreatedAt(base.Add(time.Hour)))

	router := commentRouter(handler)

	req := httptest.NewRequest("GET", fmt.Sprintf("/api/reviews/%d/comments", review.ReviewID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	body := parseBody(t, w)
	comments, ok := body["comments"].([]interface{})
	require.True(t, ok)
	require.Len(t, comments, 2)

	first := comments[0].(map[string]interface{})
	assert.Equal(t, "newer comment", first["body"])
	assert.Contains(t, first, "comment_id")
	assert.Contains(t, first, "votes")
	assert.Contains(t, first, "review_id")
	assert.Contains(t, first, "author")
	assert.Contains(t, first, "created_at")
}

func TestCommentHandler_List_EmptyForCommentlessReview(t *testing.T) {
	handler, db, cleanup := setupCommentHandler(t)
	defer cleanup()

	testutil.TestCategory(t, db, "euro game", "Abstact games that involve little luck")
	user := testutil.TestUser(t, db)
	review := testutil.TestReview(t, db, user.Username, "euro game")

	router := commentRouter(handler)

	req := httptest.NewRequest("GET", fmt.Sprintf("/api/reviews/%d/comments", review.ReviewID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	body := parseBody(t, w)
	comments, ok := body["comments"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, comments)
}

func TestCommentHandler_List_ReviewNotFound(t *testing.T) {
	handler, _, cleanup := setupCommentHandler(t)
	defer cleanup()

	router := commentRouter(handler)

	req := httptest.NewRequest("GET", "/api/reviews/999/comments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", parseBody(t, w)["msg"])
}

func TestCommentHandler_List_InvalidID(t *testing.T) {
	handler, _, cleanup := setupCommentHandler(t)
	defer cleanup()

	router := commentRouter(handler)

	req := httptest.NewRequest("GET", "/api/reviews/not-number/comments", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad request", parseBody(t, w)["msg"])
}

func TestCommentHandler_Create(t *testing.T) {
	handler, db, cleanup := setupCommentHandler(t)
	defer cleanup()

	testutil.TestCategory(t, db, "euro game", "Abstact games that involve little luck")
	user := testutil.TestUser(t, db, testutil.WithUsername("philippaclaire9"))
	review := testutil.TestReview(t, db, user.Username, "euro game")

	router := commentRouter(handler)

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/reviews/%d/comments", review.ReviewID),
		jsonBody(t, gin.H{"username": "philippaclaire9", "body": "great game"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	body := parseBody(t, w)
	created, ok := body["createdComment"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "great game", created["body"])
	assert.Equal(t, "philippaclaire9", created["author"])
	assert.Equal(t, float64(review.ReviewID), created["review_id"])
	assert.Equal(t, float64(0), created["votes"])
}

func TestCommentHandler_Create_ReviewNotFound(t *testing.T) {
	handler, db, cleanup := setupCommentHandler(t)
	defer cleanup()

	testutil.TestUser(t, db, testutil.WithUsername("philippaclaire9"))

	router := commentRouter(handler)

	req := httptest.NewRequest("POST", "/api/reviews/999/comments",
		jsonBody(t, gin.H{"username": "philippaclaire9", "body": "great game"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", parseBody(t, w)["msg"])
}

func TestCommentHandler_Create_UnknownUser(t *testing.T) {
	handler, db, cleanup := setupCommentHandler(t)
	defer cleanup()

	testutil.TestCategory(t, db, "euro game", "Abstact games that involve little luck")
	user := testutil.TestUser(t, db)
	review := testutil.TestReview(t, db, user.Username, "euro game")

	router := commentRouter(handler)

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/reviews/%d/comments", review.ReviewID),
		jsonBody(t, gin.H{"username": "ghost", "body": "great game"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad request", parseBody(t, w)["msg"])
}

func TestCommentHandler_Create_MissingBody(t *testing.T) {
	handler, db, cleanup := setupCommentHandler(t)
	defer cleanup()

	testutil.TestCategory(t, db, "euro game", "Abstact games that involve little luck")
	user := testutil.TestUser(t, db, testutil.WithUsername("philippaclaire9"))
	review := testutil.TestReview(t, db, user.Username, "euro game")

	router := commentRouter(handler)

	req := httptest.NewRequest("POST", fmt.Sprintf("/api/reviews/%d/comments", review.ReviewID),
		jsonBody(t, gin.H{"username": "philippaclaire9"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad request", parseBody(t, w)["msg"])
}

func TestCommentHandler_PatchVotes(t *testing.T) {
	handler, db, cleanup := setupCommentHandler(t)
	defer cleanup()

	testutil.TestCategory(t, db, "euro game", "Abstact games that involve little luck")
	user := testutil.TestUser(t, db)
	review := testutil.TestReview(t, db, user.Username, "euro game")
	comment := testutil.TestComment(t, db, user.Username, review.ReviewID, "I loved this game!",
		testutil.WithCommentVotes(16))

	router := commentRouter(handler)

	req := httptest.NewRequest("PATCH", fmt.Sprintf("/api/comments/%d", comment.CommentID),
		jsonBody(t, gin.H{"inc_votes": -1}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	body := parseBody(t, w)
	result, ok := body["result"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, float64(15), result["votes"])
}

func TestCommentHandler_PatchVotes_NotFound(t *testing.T) {
	handler, _, cleanup := setupCommentHandler(t)
	defer cleanup()

	router := commentRouter(handler)

	req := httptest.NewRequest("PATCH", "/api/comments/9999",
		jsonBody(t, gin.H{"inc_votes": 1}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", parseBody(t, w)["msg"])
}

func TestCommentHandler_PatchVotes_NonNumericDelta(t *testing.T) {
	handler, db, cleanup := setupCommentHandler(t)
	defer cleanup()

	testutil.TestCategory(t, db, "euro game", "Abstact games that involve little luck")
	user := testutil.TestUser(t, db)
	review := testutil.TestReview(t, db, user.Username, "euro game")
	comment := testutil.TestComment(t, db, user.Username, review.ReviewID, "I loved this game!")

	router := commentRouter(handler)

	req := httptest.NewRequest("PATCH", fmt.Sprintf("/api/comments/%d", comment.CommentID),
		jsonBody(t, gin.H{"inc_votes": "many"}))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad request", parseBody(t, w)["msg"])
}

func TestCommentHandler_Delete(t *testing.T) {
	handler, db, cleanup := setupCommentHandler(t)
	defer cleanup()

	testutil.TestCategory(t, db, "euro game", "Abstact games that involve little luck")
	user := testutil.TestUser(t, db)
	review := testutil.TestReview(t, db, user.Username, "euro game")
	comment := testutil.TestComment(t, db, user.Username, review.ReviewID, "I loved this game!")

	router := commentRouter(handler)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/comments/%d", comment.CommentID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	// the deleted comment is gone from the review's comment list
	req = httptest.NewRequest("GET", fmt.Sprintf("/api/reviews/%d/comments", review.ReviewID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	body := parseBody(t, w)
	comments, ok := body["comments"].([]interface{})
	require.True(t, ok)
	assert.Empty(t, comments)
}

func TestCommentHandler_Delete_TwiceReturnsNotFound(t *testing.T) {
	handler, db, cleanup := setupCommentHandler(t)
	defer cleanup()

	testutil.TestCategory(t, db, "euro game", "Abstact games that involve little luck")
	user := testutil.TestUser(t, db)
	review := testutil.TestReview(t, db, user.Username, "euro game")
	comment := testutil.TestComment(t, db, user.Username, review.ReviewID, "I loved this game!")

	router := commentRouter(handler)

	req := httptest.NewRequest("DELETE", fmt.Sprintf("/api/comments/%d", comment.CommentID), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	req = httptest.NewRequest("DELETE", fmt.Sprintf("/api/comments/%d", comment.CommentID), nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "not found", parseBody(t, w)["msg"])
}

func TestCommentHandler_Delete_InvalidID(t *testing.T) {
	handler, _, cleanup := setupCommentHandler(t)
	defer cleanup()

	router := commentRouter(handler)

	req := httptest.NewRequest("DELETE", "/api/comments/not-a-number", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "bad request", parseBody(t, w)["msg"])
}
