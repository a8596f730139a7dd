// File: internal/handler/alerts/alerts.go
package alerts

import (
	"errors"
	"strconv"

	"alertboard/internal/middleware"
	"alertboard/internal/model"

	"github.com/labstack/echo/v4"
)

var errBadAlertID = errors.New("invalid alert id")

// owner 取得 RequireAuth 掛載的使用者
func owner(c echo.Context) (*model.User, bool) {
	return middleware.CurrentUser(c)
}

// alertID 解析路徑參數 :id
func alertID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, errBadAlertID
	}
	return id, nil
}
