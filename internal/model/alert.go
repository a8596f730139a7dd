// File: internal/model/alert.go
package model

import "time"

// Alert 使用者的監控警報，僅屬於單一擁有者 (UserID)
// Deleted 為軟刪除旗標，列表預設仍會回傳已刪除項目
type Alert struct {
	ID       int       `db:"id" json:"id"`
	UserID   int       `db:"user_id" json:"user_id"`
	Address  string    `db:"address" json:"address"`
	Alert    string    `db:"alert" json:"alert"`
	Time     string    `db:"time" json:"time"`
	Pinned   bool      `db:"pinned" json:"pinned"`
	Deleted  bool      `db:"deleted" json:"deleted"`
	Modified time.Time `db:"modified" json:"modified"`
}
