package dto

// ListReviewsQuery carries the supported query parameters of the
// review listing endpoint. All fields are optional; defaults and
// allow-lists are applied by the service.
type ListReviewsQuery struct {
	SortBy   string `form:"sort_by"`
	Order    string `form:"order"`
	Category string `form:"category"`
}

type CreateReviewRequest struct {
	Title        string `json:"title" binding:"required"`
	Designer     string `json:"designer" binding:"required"`
	Owner        string `json:"owner" binding:"required"`
	ReviewBody   string `json:"review_body" binding:"required"`
	Category     string `json:"category" binding:"required"`
	ReviewImgURL string `json:"review_img_url"`
}

// PatchVotesRequest applies a signed delta to a vote counter.
// IncVotes is a pointer so that an explicit 0 passes the required check.
type PatchVotesRequest struct {
	IncVotes *int `json:"inc_votes" binding:"required"`
}
