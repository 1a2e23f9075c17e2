package dto

type CreateCommentRequest struct {
	Username string `json:"username" binding:"required"`
	Body     string `json:"body" binding:"required"`
}
