package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ncgames/games_go_server/internal/model/dto"
	"github.com/ncgames/games_go_server/internal/pkg/response"
	"github.com/ncgames/games_go_server/internal/service"
)

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
	}
}

// List serves the comments of a review, most recent first.
// GET /api/reviews/:review_id/comments
func (h *CommentHandler) List(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("review_id"), 10, 64)
	if err != nil {
		response.BadRequest(c)
		return
	}

	comments, err := h.commentService.ListByReviewID(reviewID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, gin.H{"comments": comments})
}

// Create adds a comment to a review.
// POST /api/reviews/:review_id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("review_id"), 10, 64)
	if err != nil {
		response.BadRequest(c)
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}

	comment, err := h.commentService.Create(reviewID, &req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, gin.H{"createdComment": comment})
}

// PatchVotes applies an inc_votes delta to a comment.
// PATCH /api/comments/:comment_id
func (h *CommentHandler) PatchVotes(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.BadRequest(c)
		return
	}

	var req dto.PatchVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}

	comment, err := h.commentService.PatchVotes(commentID, *req.IncVotes)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, gin.H{"result": comment})
}

// Delete removes a comment permanently.
// DELETE /api/comments/:comment_id
func (h *CommentHandler) Delete(c *gin.Context) {
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.BadRequest(c)
		return
	}

	if err := h.commentService.Delete(commentID); err != nil {
		response.FromError(c, err)
		return
	}

	response.NoContent(c)
}
