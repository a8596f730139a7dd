// File: internal/handler/auth/auth_test.go
package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"alertboard/internal/model"
	"alertboard/internal/session"

	"github.com/labstack/echo/v4"
)

// newJSONCtx 建立帶 JSON body 的 echo context
func newJSONCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errBinder struct{}

func (errBinder) Bind(i any, c echo.Context) error { return errors.New("bind") }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

type fakeUserRow struct {
	u   model.User
	err error
}

func (r fakeUserRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.u.ID
	*dest[1].(*string) = r.u.Email
	*dest[2].(*string) = r.u.PasswordHash
	*dest[3].(*time.Time) = r.u.CreatedAt
	return nil
}

type fakeCreatedRow struct {
	id  int
	err error
}

func (r fakeCreatedRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.id
	*dest[1].(*time.Time) = time.Now()
	return nil
}

// fakeRegistry 可注入 Issue/Revoke 失敗
type fakeRegistry struct {
	issueFn  func(ctx context.Context, userID int) (string, error)
	revokeFn func(ctx context.Context, token string) error
}

func (f *fakeRegistry) Issue(ctx context.Context, userID int) (string, error) {
	return f.issueFn(ctx, userID)
}

func (f *fakeRegistry) Resolve(context.Context, string) (*session.Session, error) {
	panic("unexpected Resolve")
}

func (f *fakeRegistry) Revoke(ctx context.Context, token string) error {
	return f.revokeFn(ctx, token)
}
