// File: internal/service/password_test.go
package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func restoreGlobals() {
	bcryptGenerateFromPassword = bcrypt.GenerateFromPassword
	bcryptCompareHashAndPassword = bcrypt.CompareHashAndPassword
}

func TestHashPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	pwd := "secret"
	hash, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, pwd, hash)
	require.NotContains(t, hash, pwd)
	require.True(t, VerifyPassword(hash, pwd))

	// 每次哈希鹽值不同
	hash2, err := HashPassword(pwd)
	require.NoError(t, err)
	require.NotEqual(t, hash, hash2)

	bcryptGenerateFromPassword = func(_ []byte, _ int) ([]byte, error) {
		return nil, errors.New("gen")
	}
	_, err = HashPassword(pwd)
	require.Error(t, err)
}

func TestVerifyPassword(t *testing.T) {
	t.Cleanup(restoreGlobals)
	hash, err := HashPassword("pw")
	require.NoError(t, err)

	require.True(t, VerifyPassword(hash, "pw"))
	require.False(t, VerifyPassword(hash, "bad"))

	// 損毀的哈希視同比對失敗，不 panic 也不回傳錯誤
	require.False(t, VerifyPassword("not-a-bcrypt-digest", "pw"))
	require.False(t, VerifyPassword("", "pw"))
}
