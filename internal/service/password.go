// File: internal/service/password.go
package service

import (
	"golang.org/x/crypto/bcrypt"
)

// 測試可覆寫此變數
var (
	bcryptGenerateFromPassword   = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
)

// HashPassword 接收明文密碼，回傳 bcrypt 哈希字串
// 鹽值由 bcrypt 每次隨機產生並內嵌於哈希中
func HashPassword(password string) (string, error) {
	hashBytes, err := bcryptGenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashBytes), nil
}

// VerifyPassword 比對明文密碼與 bcrypt 哈希
// 哈希格式損毀視同比對失敗，不向呼叫端拋出錯誤
func VerifyPassword(hash, password string) bool {
	return bcryptCompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
