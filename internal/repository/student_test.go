package repository_test

import (
	"context"
	"testing"

	"github.com/campuslib/library-service/internal/errs"
	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

func expectStatusLock(mock sqlmock.Sqlmock, id int, status string) {
	mock.ExpectQuery(q(`select status from students`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow(status))
}

func TestRepository_StudentTransitions(t *testing.T) {
	t.Parallel()

	t.Run("approve pending", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		expectStatusLock(mock, 3, "pending")
		mock.ExpectExec(q(`set status = 'approved'`)).
			WithArgs(3, "librarian").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.ApproveStudent(context.Background(), 3, "librarian"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("approve twice is an invalid edge", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		expectStatusLock(mock, 3, "approved")
		mock.ExpectExec(q(`set status = 'approved'`)).
			WithArgs(3, "librarian").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.ApproveStudent(context.Background(), 3, "librarian")
		require.ErrorIs(t, err, errs.ErrInvalidTransition)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("block twice is a no-op conflict", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		expectStatusLock(mock, 3, "blocked")
		mock.ExpectExec(q(`set status = 'blocked'`)).
			WithArgs(3).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		err := repo.BlockStudent(context.Background(), 3)
		require.ErrorIs(t, err, errs.ErrAlreadyInState)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing student", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(q(`select status from students`)).
			WithArgs(99).
			WillReturnRows(sqlmock.NewRows([]string{"status"}))
		mock.ExpectRollback()

		err := repo.ApproveStudent(context.Background(), 99, "librarian")
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRepository_SettleFine(t *testing.T) {
	t.Parallel()

	t.Run("pay pending", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(q(`select status from fines`)).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("pending"))
		mock.ExpectExec(q(`set status = 'paid'`)).
			WithArgs(5, "cash").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		require.NoError(t, repo.PayFine(context.Background(), 5, "cash"))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("pay a settled fine", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		// the lock decides the outcome before any update is attempted
		mock.ExpectBegin()
		mock.ExpectQuery(q(`select status from fines`)).
			WithArgs(5).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("paid"))
		mock.ExpectRollback()

		err := repo.PayFine(context.Background(), 5, "cash")
		require.ErrorIs(t, err, errs.ErrInvalidState)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("waive a missing fine", func(t *testing.T) {
		t.Parallel()
		repo, mock := newMockRepo(t)

		mock.ExpectBegin()
		mock.ExpectQuery(q(`select status from fines`)).
			WithArgs(9).
			WillReturnRows(sqlmock.NewRows([]string{"status"}))
		mock.ExpectRollback()

		err := repo.WaiveFine(context.Background(), 9, "librarian", "first offence")
		require.ErrorIs(t, err, errs.ErrNotFound)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
