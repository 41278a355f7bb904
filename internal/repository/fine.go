package repository

import (
	"context"
	"database/sql"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// AttachFine records a staff-assessed damage or lost-book fine against a loan.
func (r *repository) AttachFine(ctx context.Context, loanID int, ftype model.FineType, amount decimal.Decimal) (model.Fine, error) {
	var studentID int
	err := r.db.QueryRowContext(ctx,
		`select student_id from loans where id = $1`, loanID).Scan(&studentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Fine{}, errs.ErrNotFound
		}
		return model.Fine{}, err
	}

	q, args, err := qb.Insert(finesTableName).
		Columns("student_id", "loan_id", "fine_type", "amount", "status").
		Values(studentID, loanID, ftype, amount, model.FinePending).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Fine{}, err
	}
	var fine model.Fine
	if err := r.db.GetContext(ctx, &fine, q, args...); err != nil {
		return model.Fine{}, err
	}
	return fine, nil
}

func (r *repository) ListFines(ctx context.Context, studentID int) ([]model.Fine, error) {
	b := qb.Select("*").From(finesTableName).OrderBy("created_at desc")
	if studentID != 0 {
		b = b.Where(sq.Eq{"student_id": studentID})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var fines []model.Fine
	if err := r.db.SelectContext(ctx, &fines, q, args...); err != nil {
		return nil, err
	}
	return fines, nil
}

// settle runs a conditional pending-only update; a settled fine reports
// ErrInvalidState, a missing one ErrNotFound. The row is locked first so a
// concurrent settlement cannot skew the diagnosis.
func (r *repository) settle(ctx context.Context, q string, args ...interface{}) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		var status model.FineStatus
		err := tx.QueryRowContext(ctx,
			`select status from fines where id = $1 for update`, args[0]).Scan(&status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if status != model.FinePending {
			return errs.ErrInvalidState
		}
		_, err = tx.ExecContext(ctx, q, args...)
		return err
	})
}

func (r *repository) PayFine(ctx context.Context, id int, method string) error {
	q := `
	update fines
	set status = 'paid', paid_date = now(), paid_method = $2
	where id = $1 and status = 'pending'`
	return r.settle(ctx, q, id, method)
}

func (r *repository) WaiveFine(ctx context.Context, id int, by, reason string) error {
	q := `
	update fines
	set status = 'waived', waived_by = $2, waived_reason = $3
	where id = $1 and status = 'pending'`
	return r.settle(ctx, q, id, by, reason)
}
