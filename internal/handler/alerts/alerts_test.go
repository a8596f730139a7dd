// File: internal/handler/alerts/alerts_test.go
package alerts

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"alertboard/internal/middleware"
	"alertboard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
)

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

// newCtx 建立已通過認證的 echo context，user 為 nil 時不掛載使用者
func newCtx(method, body string, user *model.User, id string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = okValidator{}
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, "/", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, "/", nil)
	}
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)
	if user != nil {
		ctx.Set(middleware.ContextUserKey, user)
	}
	if id != "" {
		ctx.SetParamNames("id")
		ctx.SetParamValues(id)
	}
	return ctx, rec
}

type fakeAlertRow struct {
	a   model.Alert
	err error
}

func (r fakeAlertRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.a.ID
	*dest[1].(*int) = r.a.UserID
	*dest[2].(*string) = r.a.Address
	*dest[3].(*string) = r.a.Alert
	*dest[4].(*string) = r.a.Time
	*dest[5].(*bool) = r.a.Pinned
	*dest[6].(*bool) = r.a.Deleted
	*dest[7].(*time.Time) = r.a.Modified
	return nil
}

type fakeAlertRows struct {
	alerts []model.Alert
	idx    int
}

func (r *fakeAlertRows) Close()                                       {}
func (r *fakeAlertRows) Err() error                                   { return nil }
func (r *fakeAlertRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeAlertRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeAlertRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeAlertRows) RawValues() [][]byte                          { return nil }
func (r *fakeAlertRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeAlertRows) Next() bool { return r.idx < len(r.alerts) }

func (r *fakeAlertRows) Scan(dest ...any) error {
	row := fakeAlertRow{a: r.alerts[r.idx]}
	r.idx++
	return row.Scan(dest...)
}
