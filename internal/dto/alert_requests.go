// File: internal/dto/alert_requests.go
package dto

// CreateAlertRequest 建立警報的請求格式
// swagger:model dto.CreateAlertRequest
type CreateAlertRequest struct {
	// 監控地址
	Address string `json:"address" validate:"required" example:"123 Main"`

	// 觸發條件
	Alert string `json:"alert" validate:"required" example:"price>100"`

	// 時間欄位（自由格式，服務不解讀）
	Time string `json:"time" validate:"required" example:"2024-01-01T00:00:00Z"`
}

// UpdateAlertRequest 部分更新的請求格式，省略的欄位不變更
// user_id 與 modified 不接受客戶端輸入
// swagger:model dto.UpdateAlertRequest
type UpdateAlertRequest struct {
	Address *string `json:"address"`
	Alert   *string `json:"alert"`
	Time    *string `json:"time"`
	Pinned  *bool   `json:"pinned"`
	Deleted *bool   `json:"deleted"`
}
