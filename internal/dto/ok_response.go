// File: internal/dto/ok_response.go
package dto

// swagger:model dto.OKResponse
type OKResponse struct {
	OK bool `json:"ok" example:"true"`
}
