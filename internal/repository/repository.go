package repository

import (
	"context"

	"github.com/campuslib/library-service/config"
	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/pkg/kafka"
	sq "github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Repository interface {
	CreateStudent(ctx context.Context, req model.RegisterStudentRequest, passwordHash string) (model.Student, error)
	GetStudent(ctx context.Context, id int) (model.Student, error)
	ListStudents(ctx context.Context, status model.StudentStatus) ([]model.Student, error)
	ApproveStudent(ctx context.Context, id int, by string) error
	RejectStudent(ctx context.Context, id int, reason, by string) error
	BlockStudent(ctx context.Context, id int) error
	UnblockStudent(ctx context.Context, id int) error

	CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error)
	GetBook(ctx context.Context, id int) (model.Book, error)
	ListBooks(ctx context.Context, includeArchived bool, page, size int) ([]model.Book, error)
	ArchiveBook(ctx context.Context, id int) error
	AddCopies(ctx context.Context, bookID, count int) ([]model.BookCopy, error)
	GetCopyByBarcode(ctx context.Context, barcode string) (model.BookCopy, error)
	MarkCopyDamaged(ctx context.Context, copyID int, notes string) error

	Issue(ctx context.Context, studentID, copyID int, by string) (model.IssueReceipt, error)
	Return(ctx context.Context, copyID int, by, notes string) (model.ReturnReceipt, error)
	MarkLoanLost(ctx context.Context, copyID int, by string) (model.ReturnReceipt, error)
	ListLoans(ctx context.Context, studentID int, status model.LoanStatus) ([]model.Loan, error)

	AttachFine(ctx context.Context, loanID int, ftype model.FineType, amount decimal.Decimal) (model.Fine, error)
	ListFines(ctx context.Context, studentID int) ([]model.Fine, error)
	PayFine(ctx context.Context, id int, method string) error
	WaiveFine(ctx context.Context, id int, by, reason string) error

	IssueCard(ctx context.Context, studentID int, validYears int) (model.LibraryCard, error)
	ReportCardLost(ctx context.Context, cardID int) error
	GetCardByBarcode(ctx context.Context, barcode string) (model.LibraryCard, error)

	Dashboard(ctx context.Context, dueSoonDays int) (model.Dashboard, error)
	LoanTrend(ctx context.Context, days int) ([]model.TrendPoint, error)
	ExportLoans(ctx context.Context) ([]model.LoanExportRow, error)
	RecordLoanEvent(ctx context.Context, ev kafka.LoanEvent) error
}

type repository struct {
	db     *sqlx.DB
	policy config.Policy
	log    *zap.Logger
}

func NewRepository(db *sqlx.DB, policy config.Policy, log *zap.Logger) (*repository, error) {
	return &repository{
		db:     db,
		policy: policy,
		log:    log.Named("repo"),
	}, nil
}

const (
	studentsTableName = `students`
	booksTableName    = `books`
	copiesTableName   = `book_copies`
	loansTableName    = `loans`
	finesTableName    = `fines`
	cardsTableName    = `library_cards`
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "begin tx")
	}
	defer tx.Rollback() //nolint:errcheck
	if err := fn(tx); err != nil {
		return err
	}
	return errors.Wrap(tx.Commit(), "commit tx")
}

// recomputeAvailable rewrites the cached counter from copy rows. Safe to call
// redundantly, cannot go negative.
func recomputeAvailable(ctx context.Context, tx *sqlx.Tx, bookID int) error {
	q := `
	update books
	set available_copies = (
		select count(*) from book_copies
		where book_id = $1 and status = 'available')
	where id = $1`
	_, err := tx.ExecContext(ctx, q, bookID)
	return errors.Wrap(err, "recompute available_copies")
}

func auditEvent(ctx context.Context, tx *sqlx.Tx, loanUid string, studentID, copyID int, event kafka.EventType, actor string) error {
	q := `
	insert into loan_audit (loan_uid, student_id, book_copy_id, event_type, actor)
	values ($1, $2, $3, $4, $5)`
	_, err := tx.ExecContext(ctx, q, loanUid, studentID, copyID, string(event), actor)
	return errors.Wrap(err, "audit insert")
}
