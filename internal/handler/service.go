package handler

import (
	"context"

	"github.com/campuslib/library-service/internal/model"
	"github.com/campuslib/library-service/pkg/kafka"
)

//go:generate mockgen -source=service.go -destination=mocks/mock.go -package=service_mocks

type LibraryService interface {
	Register(ctx context.Context, req model.RegisterStudentRequest) (model.Student, error)
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
	RecordLoanEvent(ctx context.Context, ev kafka.LoanEvent) error

	AttachFine(ctx context.Context, loanID int, ftype model.FineType) (model.Fine, error)
	ListFines(ctx context.Context, studentID int) ([]model.Fine, error)
	PayFine(ctx context.Context, id int, method string) error
	WaiveFine(ctx context.Context, id int, by, reason string) error

	IssueCard(ctx context.Context, studentID int) (model.LibraryCard, error)
	ReportCardLost(ctx context.Context, cardID int) error
	GetCardByBarcode(ctx context.Context, barcode string) (model.LibraryCard, error)

	Dashboard(ctx context.Context) (model.Dashboard, error)
	LoanTrend(ctx context.Context, days int) ([]model.TrendPoint, error)
	ExportLoansCSV(ctx context.Context) ([]byte, error)
}
