// File: internal/store/errors.go
package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound 查無符合條件的紀錄（包含非擁有者的存取）
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail email 已被註冊
	ErrDuplicateEmail = errors.New("email already registered")
)

// isUniqueViolation 判斷是否為資料庫唯一性約束錯誤
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
