package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/ncgames/games_go_server/internal/pkg/response"
	"github.com/ncgames/games_go_server/internal/service"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
}

func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
	}
}

// List serves all categories.
// GET /api/categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.List()
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.OK(c, gin.H{"categories": categories})
}
