package dto

// Blog create/update bind from multipart forms: the thumbnail travels as
// the "thumbnail" file part next to these fields.
type CreateBlogRequest struct {
	Title   string `form:"title" json:"title" validate:"required,min=2,max=300"`
	Content string `form:"content" json:"content" validate:"required"`
	Author  string `form:"author" json:"author" validate:"max=100"`
}

type UpdateBlogRequest struct {
	Title   string `form:"title" json:"title" validate:"omitempty,min=2,max=300"`
	Content string `form:"content" json:"content"`
	Author  string `form:"author" json:"author" validate:"max=100"`
}

type ReactionRequest struct {
	Kind string `json:"kind" binding:"required" validate:"required,is-reaction-kind"`
}
