// File: internal/dto/alert_responses.go
package dto

import "alertboard/internal/model"

// swagger:model dto.AlertResponse
type AlertResponse struct {
	Alert model.Alert `json:"alert"`
}

// swagger:model dto.AlertsResponse
type AlertsResponse struct {
	Alerts []model.Alert `json:"alerts"`
}
