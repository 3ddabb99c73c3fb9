package dto

type TaskRequestData struct {
	Title       string `json:"title" form:"title" validate:"required,max=255"`
	Description string `json:"description" form:"description" validate:"required"`
}

type RegisterRequest struct {
	Name     string `json:"name" form:"name" validate:"required,max=255"`
	Email    string `json:"email" form:"email" validate:"required,email,max=255"`
	Password string `json:"password" form:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required"`
}

// TaskListQuery carries the raw listing parameters. Page and PerPage stay
// strings so malformed values can fall back to defaults instead of failing
// the bind.
type TaskListQuery struct {
	Search  string `query:"search"`
	Page    string `query:"page"`
	PerPage string `query:"per_page"`
}
