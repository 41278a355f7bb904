package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// IssueCard provisions a card for an approved student. The partial unique
// index keeps it to one active card per student; a second attempt conflicts.
func (r *repository) IssueCard(ctx context.Context, studentID int, validYears int) (model.LibraryCard, error) {
	var card model.LibraryCard
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var status model.StudentStatus
		err := tx.QueryRowContext(ctx,
			`select status from students where id = $1 for update`, studentID).Scan(&status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if status != model.StudentApproved {
			return errs.ErrStudentNotEligible
		}

		var prior int
		if err := tx.QueryRowContext(ctx,
			`select count(*) from library_cards where student_id = $1`, studentID).Scan(&prior); err != nil {
			return err
		}

		q, args, err := qb.Insert(cardsTableName).
			Columns("student_id", "card_number", "barcode", "qr_payload", "status", "expires_at").
			Values(studentID,
				model.CardNumber(studentID, prior+1),
				model.CardBarcode(studentID, prior+1),
				fmt.Sprintf("libcard:%s", uuid.New()),
				model.CardActive,
				time.Now().UTC().AddDate(validYears, 0, 0)).
			Suffix("returning *").
			ToSql()
		if err != nil {
			return err
		}
		if err := tx.GetContext(ctx, &card, q, args...); err != nil {
			if isUniqueViolation(err) {
				return errs.ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return model.LibraryCard{}, err
	}
	return card, nil
}

func (r *repository) ReportCardLost(ctx context.Context, cardID int) error {
	q := `
	update library_cards
	set status = 'lost', lost_at = now()
	where id = $1 and status = 'active'`
	res, err := r.db.ExecContext(ctx, q, cardID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 1 {
		return nil
	}
	var exists bool
	if err := r.db.QueryRowContext(ctx,
		`select exists(select 1 from library_cards where id = $1)`, cardID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return errs.ErrNotFound
	}
	return errs.ErrInvalidState
}

func (r *repository) GetCardByBarcode(ctx context.Context, barcode string) (model.LibraryCard, error) {
	q, args, err := qb.Select("*").From(cardsTableName).Where(sq.Eq{"barcode": barcode}).ToSql()
	if err != nil {
		return model.LibraryCard{}, err
	}
	var card model.LibraryCard
	if err := r.db.GetContext(ctx, &card, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.LibraryCard{}, errs.ErrNotFound
		}
		return model.LibraryCard{}, err
	}
	return card, nil
}
