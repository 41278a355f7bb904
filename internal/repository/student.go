package repository

import (
	"context"
	"database/sql"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (r *repository) CreateStudent(ctx context.Context, req model.RegisterStudentRequest, passwordHash string) (model.Student, error) {
	q, args, err := qb.Insert(studentsTableName).
		Columns("student_number", "name", "email", "phone", "department", "course", "semester", "password_hash", "status").
		Values(req.StudentNumber, req.Name, req.Email, req.Phone, req.Department, req.Course, req.Semester, passwordHash, model.StudentPending).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Student{}, err
	}
	var st model.Student
	if err := r.db.GetContext(ctx, &st, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Student{}, errs.ErrConflict
		}
		r.log.Error("CreateStudent", zap.String("q", q), zap.Error(err))
		return model.Student{}, err
	}
	return st, nil
}

func (r *repository) GetStudent(ctx context.Context, id int) (model.Student, error) {
	q, args, err := qb.Select("*").From(studentsTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.Student{}, err
	}
	var st model.Student
	if err := r.db.GetContext(ctx, &st, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Student{}, errs.ErrNotFound
		}
		return model.Student{}, err
	}
	return st, nil
}

func (r *repository) ListStudents(ctx context.Context, status model.StudentStatus) ([]model.Student, error) {
	b := qb.Select("*").From(studentsTableName).OrderBy("id")
	if status != "" {
		b = b.Where(sq.Eq{"status": status})
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var items []model.Student
	if err := r.db.SelectContext(ctx, &items, q, args...); err != nil {
		return nil, err
	}
	return items, nil
}

// transition performs a conditional status update and reports why it did not
// apply: missing row, a redundant transition (noopErr), or an edge the
// machine does not have. The row lock keeps the diagnosis consistent with
// the update under concurrent transitions.
func (r *repository) transition(ctx context.Context, q string, args []interface{}, id int, target model.StudentStatus, noopErr error) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		var current model.StudentStatus
		err := tx.QueryRowContext(ctx,
			`select status from students where id = $1 for update`, id).Scan(&current)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		res, err := tx.ExecContext(ctx, q, args...)
		if err != nil {
			return err
		}
		if n, _ := res.RowsAffected(); n == 1 {
			return nil
		}
		if current == target {
			return noopErr
		}
		return errs.ErrInvalidTransition
	})
}

func (r *repository) ApproveStudent(ctx context.Context, id int, by string) error {
	q := `
	update students
	set status = 'approved', approved_by = $2, approved_at = now()
	where id = $1 and status = 'pending'`
	// re-approving an approved student is still an invalid edge
	return r.transition(ctx, q, []interface{}{id, by}, id, model.StudentApproved, errs.ErrInvalidTransition)
}

func (r *repository) RejectStudent(ctx context.Context, id int, reason, by string) error {
	q := `
	update students
	set status = 'rejected', reject_reason = $2, rejected_by = $3, rejected_at = now()
	where id = $1 and status = 'pending'`
	return r.transition(ctx, q, []interface{}{id, reason, by}, id, model.StudentRejected, errs.ErrInvalidTransition)
}

func (r *repository) BlockStudent(ctx context.Context, id int) error {
	q := `
	update students
	set status = 'blocked', blocked_at = now()
	where id = $1 and status = 'approved'`
	return r.transition(ctx, q, []interface{}{id}, id, model.StudentBlocked, errs.ErrAlreadyInState)
}

func (r *repository) UnblockStudent(ctx context.Context, id int) error {
	q := `
	update students
	set status = 'approved', blocked_at = null
	where id = $1 and status = 'blocked'`
	return r.transition(ctx, q, []interface{}{id}, id, model.StudentApproved, errs.ErrAlreadyInState)
}
