package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/pkg/kafka"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Issue lends a copy to a student. Preconditions are checked in order under
// row locks, first failure wins; the loan row, copy status, book counter and
// audit record commit as one unit.
func (r *repository) Issue(ctx context.Context, studentID, copyID int, by string) (model.IssueReceipt, error) {
	var receipt model.IssueReceipt
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var (
			studentStatus model.StudentStatus
			studentName   string
		)
		err := tx.QueryRowContext(ctx,
			`select status, name from students where id = $1 for update`, studentID).
			Scan(&studentStatus, &studentName)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if studentStatus != model.StudentApproved {
			return errs.ErrStudentNotEligible
		}

		// the lock serializes concurrent issues of the same copy: the loser
		// re-reads status as 'issued' and fails here
		var (
			bookID     int
			copyStatus model.CopyStatus
		)
		err = tx.QueryRowContext(ctx,
			`select book_id, status from book_copies where id = $1 for update`, copyID).
			Scan(&bookID, &copyStatus)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if copyStatus != model.CopyAvailable {
			return errs.ErrCopyNotAvailable
		}

		var open int
		if err := tx.QueryRowContext(ctx,
			`select count(*) from loans where student_id = $1 and status = 'active'`, studentID).
			Scan(&open); err != nil {
			return err
		}
		if open >= r.policy.LoanLimit {
			return errs.ErrLoanLimitExceeded
		}

		now := time.Now().UTC()
		due := now.Add(r.policy.LoanPeriod())
		loanUid := uuid.New().String()
		if _, err := tx.ExecContext(ctx, `
	insert into loans (loan_uid, student_id, book_copy_id, book_id, issued_date, due_date, status, issued_by)
	values ($1, $2, $3, $4, $5, $6, 'active', $7)`,
			loanUid, studentID, copyID, bookID, now, due, by); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`update book_copies set status = 'issued' where id = $1`, copyID); err != nil {
			return err
		}
		if err := recomputeAvailable(ctx, tx, bookID); err != nil {
			return err
		}
		if err := auditEvent(ctx, tx, loanUid, studentID, copyID, kafka.EventIssue, by); err != nil {
			return err
		}

		var bookTitle string
		if err := tx.QueryRowContext(ctx,
			`select title from books where id = $1`, bookID).Scan(&bookTitle); err != nil {
			return err
		}
		receipt = model.IssueReceipt{
			LoanUid:     loanUid,
			StudentID:   studentID,
			BookID:      bookID,
			StudentName: studentName,
			BookTitle:   bookTitle,
			DueDate:     due,
		}
		return nil
	})
	if err != nil {
		return model.IssueReceipt{}, err
	}
	r.log.Debug("issued", zap.String("loanUid", receipt.LoanUid), zap.Int("studentID", studentID))
	return receipt, nil
}

// Return closes the open loan on a copy, prices any lateness and puts the
// copy back on the shelf, all in one transaction.
func (r *repository) Return(ctx context.Context, copyID int, by, notes string) (model.ReturnReceipt, error) {
	var receipt model.ReturnReceipt
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		loan, err := lockOpenLoan(ctx, tx, copyID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		if _, err := tx.ExecContext(ctx, `
	update loans
	set status = 'returned', returned_date = $2, returned_by = $3, return_notes = $4
	where id = $1`,
			loan.ID, now, by, notes); err != nil {
			return err
		}

		days := r.policy.OverdueDays(loan.DueDate, now)
		amount := r.policy.OverdueFine(days)
		if days > 0 {
			if err := upsertOverdueFine(ctx, tx, loan, amount); err != nil {
				return err
			}
		}

		if _, err := tx.ExecContext(ctx,
			`update book_copies set status = 'available' where id = $1`, copyID); err != nil {
			return err
		}
		if err := recomputeAvailable(ctx, tx, loan.BookID); err != nil {
			return err
		}
		if err := auditEvent(ctx, tx, loan.LoanUid, loan.StudentID, copyID, kafka.EventReturn, by); err != nil {
			return err
		}

		receipt = model.ReturnReceipt{
			LoanUid:      loan.LoanUid,
			StudentID:    loan.StudentID,
			BookID:       loan.BookID,
			ReturnedDate: now,
			OverdueDays:  days,
			FineAmount:   amount,
		}
		return nil
	})
	if err != nil {
		return model.ReturnReceipt{}, err
	}
	return receipt, nil
}

// MarkLoanLost closes the open loan as lost, writes the copy off and attaches
// the flat lost-book fine.
func (r *repository) MarkLoanLost(ctx context.Context, copyID int, by string) (model.ReturnReceipt, error) {
	var receipt model.ReturnReceipt
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		loan, err := lockOpenLoan(ctx, tx, copyID)
		if err != nil {
			return err
		}

		// returned_date doubles as the closure timestamp: null only while
		// the loan is open
		now := time.Now().UTC()
		if _, err := tx.ExecContext(ctx,
			`update loans set status = 'lost', returned_date = $2, returned_by = $3 where id = $1`,
			loan.ID, now, by); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			`update book_copies set status = 'lost' where id = $1`, copyID); err != nil {
			return err
		}

		amount := r.policy.FlatFine(true)
		if _, err := tx.ExecContext(ctx, `
	insert into fines (student_id, loan_id, fine_type, amount, status)
	values ($1, $2, 'lost_book', $3, 'pending')`,
			loan.StudentID, loan.ID, amount); err != nil {
			return err
		}

		if err := recomputeAvailable(ctx, tx, loan.BookID); err != nil {
			return err
		}
		if err := auditEvent(ctx, tx, loan.LoanUid, loan.StudentID, copyID, kafka.EventLost, by); err != nil {
			return err
		}

		receipt = model.ReturnReceipt{
			LoanUid:      loan.LoanUid,
			StudentID:    loan.StudentID,
			BookID:       loan.BookID,
			ReturnedDate: now,
			FineAmount:   amount,
		}
		return nil
	})
	if err != nil {
		return model.ReturnReceipt{}, err
	}
	return receipt, nil
}

func lockOpenLoan(ctx context.Context, tx *sqlx.Tx, copyID int) (model.Loan, error) {
	var loan model.Loan
	err := tx.GetContext(ctx, &loan, `
	select * from loans
	where book_copy_id = $1 and status = 'active'
	for update`, copyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Loan{}, errs.ErrNoActiveLoanForCopy
		}
		return model.Loan{}, err
	}
	return loan, nil
}

// upsertOverdueFine keeps a single pending overdue fine per loan, repriced at
// return time.
func upsertOverdueFine(ctx context.Context, tx *sqlx.Tx, loan model.Loan, amount decimal.Decimal) error {
	_, err := tx.ExecContext(ctx, `
	insert into fines (student_id, loan_id, fine_type, amount, status)
	values ($1, $2, 'overdue', $3, 'pending')
	on conflict (loan_id) where fine_type = 'overdue'
	do update set amount = excluded.amount
	where fines.status = 'pending'`,
		loan.StudentID, loan.ID, amount)
	return errors.Wrap(err, "upsert overdue fine")
}

func (r *repository) ListLoans(ctx context.Context, studentID int, status model.LoanStatus) ([]model.Loan, error) {
	b := qb.Select("*").From(loansTableName).OrderBy("issued_date desc")
	if studentID != 0 {
		b = b.Where(sq.Eq{"student_id": studentID})
	}
	switch status {
	case "":
	case model.LoanOverdue:
		// derived, not stored
		b = b.Where(sq.Eq{"status": model.LoanActive}).Where(sq.Lt{"due_date": time.Now().UTC()})
	default:
		b = b.Where(sq.Eq{"status": status})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var loans []model.Loan
	if err := r.db.SelectContext(ctx, &loans, q, args...); err != nil {
		return nil, err
	}
	return loans, nil
}
