package repository

import (
	"context"
	"database/sql"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

func (r *repository) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	q, args, err := qb.Insert(booksTableName).
		Columns("title", "author", "isbn", "publisher", "category", "shelf_location").
		Values(req.Title, req.Author, req.ISBN, req.Publisher, req.Category, req.ShelfLocation).
		Suffix("returning *").
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if isUniqueViolation(err) {
			return model.Book{}, errs.ErrConflict
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) GetBook(ctx context.Context, id int) (model.Book, error) {
	q, args, err := qb.Select("*").From(booksTableName).Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return model.Book{}, err
	}
	var book model.Book
	if err := r.db.GetContext(ctx, &book, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Book{}, errs.ErrNotFound
		}
		return model.Book{}, err
	}
	return book, nil
}

func (r *repository) ListBooks(ctx context.Context, includeArchived bool, page, size int) ([]model.Book, error) {
	b := qb.Select("*").From(booksTableName).OrderBy("id")
	if !includeArchived {
		b = b.Where(sq.Eq{"is_archived": false})
	}
	if page != 0 && size != 0 {
		b = b.Limit(uint64(size)).Offset(uint64((page - 1) * size))
	}
	q, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	var books []model.Book
	if err := r.db.SelectContext(ctx, &books, q, args...); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *repository) ArchiveBook(ctx context.Context, id int) error {
	res, err := r.db.ExecContext(ctx, `update books set is_archived = true where id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errs.ErrNotFound
	}
	return nil
}

// AddCopies creates count copies with codes continuing the book's existing
// sequence, then refreshes the cached counters.
func (r *repository) AddCopies(ctx context.Context, bookID, count int) ([]model.BookCopy, error) {
	var created []model.BookCopy
	err := r.inTx(ctx, func(tx *sqlx.Tx) error {
		var id int
		if err := tx.QueryRowContext(ctx, `select id from books where id = $1 for update`, bookID).Scan(&id); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		var existing int
		if err := tx.QueryRowContext(ctx,
			`select count(*) from book_copies where book_id = $1`, bookID).Scan(&existing); err != nil {
			return err
		}

		ins := qb.Insert(copiesTableName).Columns("book_id", "copy_code", "barcode", "status")
		for i := 1; i <= count; i++ {
			seq := existing + i
			ins = ins.Values(bookID, model.CopyCode(bookID, seq), model.CopyBarcode(bookID, seq), model.CopyAvailable)
		}
		q, args, err := ins.Suffix("returning *").ToSql()
		if err != nil {
			return err
		}
		rows, err := tx.QueryxContext(ctx, q, args...)
		if err != nil {
			if isUniqueViolation(err) {
				return errs.ErrConflict
			}
			return err
		}
		defer rows.Close()
		for rows.Next() {
			var c model.BookCopy
			if err := rows.StructScan(&c); err != nil {
				return err
			}
			created = append(created, c)
		}
		if err := rows.Err(); err != nil {
			return err
		}

		if _, err := tx.ExecContext(ctx,
			`update books set total_copies = (select count(*) from book_copies where book_id = $1) where id = $1`,
			bookID); err != nil {
			return err
		}
		return recomputeAvailable(ctx, tx, bookID)
	})
	if err != nil {
		r.log.Error("AddCopies", zap.Int("bookID", bookID), zap.Error(err))
		return nil, err
	}
	return created, nil
}

func (r *repository) GetCopyByBarcode(ctx context.Context, barcode string) (model.BookCopy, error) {
	q, args, err := qb.Select("*").From(copiesTableName).Where(sq.Eq{"barcode": barcode}).ToSql()
	if err != nil {
		return model.BookCopy{}, err
	}
	var c model.BookCopy
	if err := r.db.GetContext(ctx, &c, q, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.BookCopy{}, errs.ErrNotFound
		}
		return model.BookCopy{}, err
	}
	return c, nil
}

// MarkCopyDamaged takes an on-shelf copy out of circulation. Issued copies go
// through the return flow first.
func (r *repository) MarkCopyDamaged(ctx context.Context, copyID int, notes string) error {
	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		var (
			bookID int
			status model.CopyStatus
		)
		err := tx.QueryRowContext(ctx,
			`select book_id, status from book_copies where id = $1 for update`, copyID).
			Scan(&bookID, &status)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return errs.ErrNotFound
			}
			return err
		}
		if status != model.CopyAvailable {
			return errs.ErrCopyNotAvailable
		}
		if _, err := tx.ExecContext(ctx,
			`update book_copies set status = 'damaged', condition_notes = $2 where id = $1`,
			copyID, notes); err != nil {
			return err
		}
		return recomputeAvailable(ctx, tx, bookID)
	})
}
