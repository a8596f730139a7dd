// File: internal/dto/login_response.go
package dto

// UserSummary 僅含對外公開的識別資訊
// swagger:model dto.UserSummary
type UserSummary struct {
	ID    int    `json:"id" example:"1"`
	Email string `json:"email" example:"alice@example.com"`
}

// swagger:model dto.LoginResponse
type LoginResponse struct {
	Token string      `json:"token" example:"3q2-8z..."`
	User  UserSummary `json:"user"`
}
