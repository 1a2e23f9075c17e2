package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ncgames/games_go_server/internal/pkg/response"
)

type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// endpoints is the static capability listing served at GET /api.
var endpoints = gin.H{
	"GET /api": gin.H{
		"description": "serves a json representation of all the available endpoints of the api",
	},
	"GET /api/categories": gin.H{
		"description": "serves an array of all categories",
	},
	"GET /api/reviews": gin.H{
		"description": "serves an array of all reviews",
		"queries":     []string{"sort_by", "order", "category"},
	},
	"POST /api/reviews": gin.H{
		"description": "adds a new review",
		"exampleBody": gin.H{
			"title":       "Agricola",
			"designer":    "Uwe Rosenberg",
			"owner":       "mallionaire",
			"review_body": "Farmyard fun!",
			"category":    "euro game",
		},
	},
	"GET /api/reviews/:review_id": gin.H{
		"description": "serves a single review with its comment count",
	},
	"PATCH /api/reviews/:review_id": gin.H{
		"description": "applies a vote delta to a review",
		"exampleBody": gin.H{"inc_votes": 1},
	},
	"GET /api/reviews/:review_id/comments": gin.H{
		"description": "serves the comments of a review, most recent first",
	},
	"POST /api/reviews/:review_id/comments": gin.H{
		"description": "adds a comment to a review",
		"exampleBody": gin.H{"username": "bainesface", "body": "I loved this game too!"},
	},
	"PATCH /api/comments/:comment_id": gin.H{
		"description": "applies a vote delta to a comment",
		"exampleBody": gin.H{"inc_votes": -1},
	},
	"DELETE /api/comments/:comment_id": gin.H{
		"description": "deletes a comment",
	},
	"GET /api/users": gin.H{
		"description": "serves an array of all users",
	},
	"GET /api/users/:username": gin.H{
		"description": "serves a single user",
	},
}

// Index lists every available endpoint.
// GET /api
func (h *APIHandler) Index(c *gin.Context) {
	response.OK(c, gin.H{"endpoints": endpoints})
}
