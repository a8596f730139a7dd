// File: internal/handler/alerts/list.go
package alerts

import (
	"net/http"

	"alertboard/internal/database"
	"alertboard/internal/dto"
	"alertboard/internal/store"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ListAlertsHandler 列出當前使用者的警報
// @Summary     列出警報
// @Description 回傳當前使用者的所有警報，預設包含已軟刪除項目
// @Tags        alerts
// @Produce     json
// @Param       include_deleted query bool false "是否包含已刪除項目（預設 true）"
// @Success     200 {object} dto.AlertsResponse
// @Failure     401 {object} dto.HTTPError
// @Failure     500 {object} dto.HTTPError
// @Security    ApiKeyAuth
// @Router      /alerts [get]
func ListAlertsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		user, ok := owner(c)
		if !ok {
			return c.JSON(http.StatusUnauthorized, dto.HTTPError{Error: "invalid or missing token"})
		}

		// 預設沿用原始行為：已刪除項目一併回傳
		includeDeleted := c.QueryParam("include_deleted") != "false"

		ctx := c.Request().Context()
		alerts, err := store.ListAlerts(ctx, db, user.ID, includeDeleted)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("list alerts failed")
			return c.JSON(http.StatusInternalServerError, dto.HTTPError{Error: "server error"})
		}
		return c.JSON(http.StatusOK, dto.AlertsResponse{Alerts: alerts})
	}
}
