// File: internal/store/alert.go
package store

import (
	"context"
	"errors"
	"fmt"

	"alertboard/internal/database"
	"alertboard/internal/model"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
)

// psql 使用 $N 佔位符的 squirrel builder (PostgreSQL)
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const alertColumns = `id, user_id, address, alert, "time", pinned, deleted, modified`

// AlertPatch 部分更新欄位，nil 表示不變更
// UserID 與 Modified 不可由呼叫端指定：擁有者不可轉移，modified 一律取資料庫時鐘
type AlertPatch struct {
	Address *string
	Alert   *string
	Time    *string
	Pinned  *bool
	Deleted *bool
}

func scanAlert(row pgx.Row) (*model.Alert, error) {
	a := &model.Alert{}
	if err := row.Scan(
		&a.ID,
		&a.UserID,
		&a.Address,
		&a.Alert,
		&a.Time,
		&a.Pinned,
		&a.Deleted,
		&a.Modified,
	); err != nil {
		return nil, err
	}
	return a, nil
}

// ListAlerts 列出 ownerID 的所有警報
// includeDeleted=false 時排除軟刪除項目
func ListAlerts(ctx context.Context, db database.DB, ownerID int, includeDeleted bool) ([]model.Alert, error) {
	q := psql.Select(
		"id", "user_id", "address", "alert", `"time"`, "pinned", "deleted", "modified",
	).From("alerts").Where(sq.Eq{"user_id": ownerID}).OrderBy("id")
	if !includeDeleted {
		q = q.Where(sq.Eq{"deleted": false})
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("ListAlerts: %w", err)
	}
	rows, err := db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, fmt.Errorf("ListAlerts: %w", err)
	}
	defer rows.Close()

	alerts := []model.Alert{}
	for rows.Next() {
		a, err := scanAlert(rows)
		if err != nil {
			return nil, fmt.Errorf("ListAlerts: %w", err)
		}
		alerts = append(alerts, *a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListAlerts: %w", err)
	}
	return alerts, nil
}

// CreateAlert 建立警報，pinned/deleted 初始為 false，modified 由資料庫時鐘決定
func CreateAlert(ctx context.Context, db database.DB, ownerID int, address, alert, timeVal string) (*model.Alert, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO alerts (user_id, address, alert, "time")
		 VALUES ($1, $2, $3, $4)
		 RETURNING `+alertColumns,
		ownerID,
		address,
		alert,
		timeVal,
	)
	a, err := scanAlert(row)
	if err != nil {
		return nil, fmt.Errorf("CreateAlert: %w", err)
	}
	return a, nil
}

// UpdateAlert 以單一條件式 UPDATE 更新 (id, ownerID) 對應的警報
// WHERE 同時比對 id 與 user_id，非擁有者一律回傳 ErrNotFound
func UpdateAlert(ctx context.Context, db database.DB, ownerID, alertID int, patch AlertPatch) (*model.Alert, error) {
	q := psql.Update("alerts").
		Set("modified", sq.Expr("now()")).
		Where(sq.Eq{"id": alertID}).
		Where(sq.Eq{"user_id": ownerID}).
		Suffix("RETURNING " + alertColumns)

	if patch.Address != nil {
		q = q.Set("address", *patch.Address)
	}
	if patch.Alert != nil {
		q = q.Set("alert", *patch.Alert)
	}
	if patch.Time != nil {
		q = q.Set(`"time"`, *patch.Time)
	}
	if patch.Pinned != nil {
		q = q.Set("pinned", *patch.Pinned)
	}
	if patch.Deleted != nil {
		q = q.Set("deleted", *patch.Deleted)
	}

	sqlStr, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("UpdateAlert: %w", err)
	}
	a, err := scanAlert(db.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("UpdateAlert: %w", err)
	}
	return a, nil
}

// SetAlertDeleted 設定軟刪除旗標（deleted=true 刪除、false 還原）
func SetAlertDeleted(ctx context.Context, db database.DB, ownerID, alertID int, deleted bool) error {
	tag, err := db.Exec(ctx,
		`UPDATE alerts SET deleted = $1, modified = now()
		 WHERE id = $2 AND user_id = $3`,
		deleted,
		alertID,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("SetAlertDeleted: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
