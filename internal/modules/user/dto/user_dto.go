package dto

// Pointer fields let `required` tell an absent key from an empty value.
type CreateUserRequest struct {
	Name  *string `json:"name" binding:"required"`
	NetID *string `json:"netid" binding:"required"`
}

type GetUserQuery struct {
	Expand bool `form:"expand"`
}
