// File: internal/store/store_test.go
package store

import (
	"time"

	"alertboard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// fakeUserRow 實作 pgx.Row，回傳固定使用者或錯誤
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

// fakeCreatedRow 實作 pgx.Row，模擬 INSERT ... RETURNING id, created_at
type fakeCreatedRow struct {
	id        int
	createdAt time.Time
	err       error
}

func (r fakeCreatedRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*int) = r.id
	*dest[1].(*time.Time) = r.createdAt
	return nil
}

// fakeAlertRow 實作 pgx.Row，回傳完整 alert 欄位
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

// fakeAlertRows 實作 pgx.Rows，逐列回傳 alerts
type fakeAlertRows struct {
	alerts []model.Alert
	idx    int
	err    error
}

func (r *fakeAlertRows) Close()                                       {}
func (r *fakeAlertRows) Err() error                                   { return r.err }
func (r *fakeAlertRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeAlertRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeAlertRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeAlertRows) RawValues() [][]byte                          { return nil }
func (r *fakeAlertRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeAlertRows) Next() bool {
	if r.err != nil {
		return false
	}
	return r.idx < len(r.alerts)
}

func (r *fakeAlertRows) Scan(dest ...any) error {
	row := fakeAlertRow{a: r.alerts[r.idx]}
	r.idx++
	return row.Scan(dest...)
}
