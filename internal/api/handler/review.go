package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ncgames/games_go_server/internal/model/dto"
	"github.com/ncgames/games_go_server/internal/pkg/response"
	"github.com/ncgames/games_go_server/internal/service"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

// Get serves a single review with its comment count.
// GET /api/reviews/:review_id
func (h *ReviewHandler) Get(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("review_id"), 10, 64)
	if err != nil {
		response.BadRequest(c)
		return
	}

	review, err := h.reviewService.GetByID(reviewID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, gin.H{"review": review})
}

// List serves reviews with optional sort_by, order and category params.
// GET /api/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	var q dto.ListReviewsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c)
		return
	}

	reviews, err := h.reviewService.List(&q)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, gin.H{"reviews": reviews})
}

// Create adds a new review.
// POST /api/reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}

	review, err := h.reviewService.Create(&req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Created(c, gin.H{"review": review})
}

// PatchVotes applies an inc_votes delta to a review.
// PATCH /api/reviews/:review_id
func (h *ReviewHandler) PatchVotes(c *gin.Context) {
	reviewID, err := strconv.ParseInt(c.Param("review_id"), 10, 64)
	if err != nil {
		response.BadRequest(c)
		return
	}

	var req dto.PatchVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c)
		return
	}

	review, err := h.reviewService.PatchVotes(reviewID, *req.IncVotes)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, gin.H{"result": review})
}
