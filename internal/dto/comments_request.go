package dto

type CreateCommentRequest struct {
	UserName  string  `json:"userName"`
	UserEmail *string `json:"userEmail"`
	Content   string  `json:"content"`
}

type ModerateCommentRequest struct {
	Status string `json:"status"`
}
