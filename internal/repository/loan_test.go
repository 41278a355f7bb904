package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/campuslib/library-service/config"
	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/repository"
	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockRepo(t *testing.T) (repository.Repository, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { mockDB.Close() })

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo, err := repository.NewRepository(db, config.Policy{
		LoanPeriodDays: 14,
		LoanLimit:      5,
		FineDailyRate:  decimal.RequireFromString("5"),
		FineLostBook:   decimal.RequireFromString("500"),
	}, zap.NewNop())
	require.NoError(t, err)
	return repo, mock
}

func q(s string) string { return regexp.QuoteMeta(s) }

var loanColumns = []string{
	"id", "loan_uid", "student_id", "book_copy_id", "book_id",
	"issued_date", "due_date", "returned_date", "status",
	"issued_by", "returned_by", "return_notes",
}

func openLoanRow(now time.Time) *sqlmock.Rows {
	return sqlmock.NewRows(loanColumns).AddRow(
		1, "1bb10261-9a49-4a71-a53d-5ed7be06c750", 1, 7, 2,
		now.Add(-14*24*time.Hour), now.Add(-24*time.Hour), nil, "active",
		"librarian", nil, nil)
}

// The issue preconditions fire in a fixed order inside one transaction:
// eligibility, then copy availability, then the loan limit. The first
// failing check decides the error and no later query runs.
func TestRepository_Issue_PreconditionOrder(t *testing.T) {
	t.Parallel()

	t.Run("blocked student rejected before copy is looked at", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(q(`select status, name from students`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"status", "name"}).AddRow("blocked", "Asel"))
		mock.ExpectRollback()

		_, err := repo.Issue(context.Background(), 1, 7, "librarian")
		require.ErrorIs(t, err, errs.ErrStudentNotEligible)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("issued copy rejected before the limit is counted", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(q(`select status, name from students`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"status", "name"}).AddRow("approved", "Asel"))
		mock.ExpectQuery(q(`select book_id, status from book_copies`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"book_id", "status"}).AddRow(2, "issued"))
		mock.ExpectRollback()

		_, err := repo.Issue(context.Background(), 1, 7, "librarian")
		require.ErrorIs(t, err, errs.ErrCopyNotAvailable)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("sixth open loan rejected before anything is written", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(q(`select status, name from students`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"status", "name"}).AddRow("approved", "Asel"))
		mock.ExpectQuery(q(`select book_id, status from book_copies`)).
			WithArgs(7).
			WillReturnRows(sqlmock.NewRows([]string{"book_id", "status"}).AddRow(2, "available"))
		mock.ExpectQuery(q(`select count(*) from loans`)).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
		mock.ExpectRollback()

		_, err := repo.Issue(context.Background(), 1, 7, "librarian")
		require.ErrorIs(t, err, errs.ErrLoanLimitExceeded)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_Issue_CommitsLoanCopyCounterAudit(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`select status, name from students`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"status", "name"}).AddRow("approved", "Asel"))
	mock.ExpectQuery(q(`select book_id, status from book_copies`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"book_id", "status"}).AddRow(2, "available"))
	mock.ExpectQuery(q(`select count(*) from loans`)).
		WithArgs(1).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(q(`insert into loans`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(q(`update book_copies set status = 'issued'`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectRecompute(mock, 2)
	mock.ExpectExec(q(`insert into loan_audit`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(q(`select title from books`)).
		WithArgs(2).
		WillReturnRows(sqlmock.NewRows([]string{"title"}).AddRow("The Go Programming Language"))
	mock.ExpectCommit()

	receipt, err := repo.Issue(context.Background(), 1, 7, "librarian")
	require.NoError(t, err)
	require.Equal(t, 1, receipt.StudentID)
	require.Equal(t, 2, receipt.BookID)
	require.Equal(t, "Asel", receipt.StudentName)
	require.Equal(t, "The Go Programming Language", receipt.BookTitle)
	require.NotEmpty(t, receipt.LoanUid)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A copy without an open loan cannot be returned; the second return of the
// same copy hits this and never touches the counter.
func TestRepository_Return_NoOpenLoan(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`select * from loans`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows(loanColumns))
	mock.ExpectRollback()

	_, err := repo.Return(context.Background(), 7, "librarian", "")
	require.ErrorIs(t, err, errs.ErrNoActiveLoanForCopy)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Return_PricesLatenessAndRecomputes(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(q(`select * from loans`)).
		WithArgs(7).
		WillReturnRows(openLoanRow(now))
	mock.ExpectExec(q(`set status = 'returned'`)).
		WithArgs(1, sqlmock.AnyArg(), "librarian", "").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(`insert into fines`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectExec(q(`update book_copies set status = 'available'`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectRecompute(mock, 2)
	mock.ExpectExec(q(`insert into loan_audit`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	receipt, err := repo.Return(context.Background(), 7, "librarian", "")
	require.NoError(t, err)
	require.Equal(t, 1, receipt.OverdueDays)
	require.True(t, decimal.RequireFromString("5").Equal(receipt.FineAmount))
	require.Equal(t, 1, receipt.StudentID)
	require.Equal(t, 2, receipt.BookID)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A lost loan is closed with a timestamp like a returned one; returned_date
// stays null only while a loan is open.
func TestRepository_MarkLoanLost_PersistsClosure(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)
	now := time.Now().UTC()

	mock.ExpectBegin()
	mock.ExpectQuery(q(`select * from loans`)).
		WithArgs(7).
		WillReturnRows(openLoanRow(now))
	mock.ExpectExec(q(`update loans set status = 'lost', returned_date = $2, returned_by = $3`)).
		WithArgs(1, sqlmock.AnyArg(), "librarian").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(`update book_copies set status = 'lost'`)).
		WithArgs(7).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(q(`insert into fines`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	expectRecompute(mock, 2)
	mock.ExpectExec(q(`insert into loan_audit`)).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	receipt, err := repo.MarkLoanLost(context.Background(), 7, "librarian")
	require.NoError(t, err)
	require.False(t, receipt.ReturnedDate.IsZero())
	require.True(t, decimal.RequireFromString("500").Equal(receipt.FineAmount))
	require.NoError(t, mock.ExpectationsWereMet())
}

// expectRecompute pins the counter statement to a full rewrite from copy
// rows. A rewrite is idempotent and cannot go negative, unlike an
// increment, so running it redundantly is always safe.
func expectRecompute(mock sqlmock.Sqlmock, bookID int) {
	mock.ExpectExec(
		`(?s)update books\s+set available_copies = \(\s*select count\(\*\) from book_copies\s+where book_id = \$1 and status = 'available'\)\s+where id = \$1`).
		WithArgs(bookID).
		WillReturnResult(sqlmock.NewResult(0, 1))
}

// Marking the same copy damaged twice leaves the counter alone the second
// time: the status guard fires before any write.
func TestRepository_MarkCopyDamaged_Twice(t *testing.T) {
	t.Parallel()
	repo, mock := newMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectQuery(q(`select book_id, status from book_copies`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"book_id", "status"}).AddRow(2, "available"))
	mock.ExpectExec(q(`set status = 'damaged'`)).
		WithArgs(7, "torn spine").
		WillReturnResult(sqlmock.NewResult(0, 1))
	expectRecompute(mock, 2)
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectQuery(q(`select book_id, status from book_copies`)).
		WithArgs(7).
		WillReturnRows(sqlmock.NewRows([]string{"book_id", "status"}).AddRow(2, "damaged"))
	mock.ExpectRollback()

	require.NoError(t, repo.MarkCopyDamaged(context.Background(), 7, "torn spine"))
	err := repo.MarkCopyDamaged(context.Background(), 7, "torn spine")
	require.ErrorIs(t, err, errs.ErrCopyNotAvailable)
	require.NoError(t, mock.ExpectationsWereMet())
}
