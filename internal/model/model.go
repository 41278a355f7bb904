package model

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

type StudentStatus string

const (
	StudentPending  StudentStatus = "pending"
	StudentApproved StudentStatus = "approved"
	StudentRejected StudentStatus = "rejected"
	StudentBlocked  StudentStatus = "blocked"
)

type Student struct {
	ID            int            `json:"id" db:"id"`
	StudentNumber string         `json:"studentNumber" db:"student_number"`
	Name          string         `json:"name" db:"name"`
	Email         string         `json:"email" db:"email"`
	Phone         string         `json:"phone" db:"phone"`
	Department    string         `json:"department" db:"department"`
	Course        string         `json:"course" db:"course"`
	Semester      int            `json:"semester" db:"semester"`
	PasswordHash  string         `json:"-" db:"password_hash"`
	Status        StudentStatus  `json:"status" db:"status"`
	ApprovedBy    sql.NullString `json:"approvedBy,omitempty" db:"approved_by"`
	ApprovedAt    sql.NullTime   `json:"approvedAt,omitempty" db:"approved_at"`
	RejectedBy    sql.NullString `json:"rejectedBy,omitempty" db:"rejected_by"`
	RejectedAt    sql.NullTime   `json:"rejectedAt,omitempty" db:"rejected_at"`
	RejectReason  sql.NullString `json:"rejectReason,omitempty" db:"reject_reason"`
	BlockedAt     sql.NullTime   `json:"blockedAt,omitempty" db:"blocked_at"`
	CreatedAt     time.Time      `json:"createdAt" db:"created_at"`
}

type RegisterStudentRequest struct {
	StudentNumber string `json:"studentNumber" validate:"required"`
	Name          string `json:"name" validate:"required"`
	Email         string `json:"email" validate:"required,email"`
	Phone         string `json:"phone"`
	Department    string `json:"department" validate:"required"`
	Course        string `json:"course" validate:"required"`
	Semester      int    `json:"semester" validate:"required,min=1,max=12"`
	Password      string `json:"password" validate:"required,min=8"`
}

type Book struct {
	ID              int       `json:"id" db:"id"`
	Title           string    `json:"title" db:"title"`
	Author          string    `json:"author" db:"author"`
	ISBN            string    `json:"isbn" db:"isbn"`
	Publisher       string    `json:"publisher" db:"publisher"`
	Category        string    `json:"category" db:"category"`
	ShelfLocation   string    `json:"shelfLocation" db:"shelf_location"`
	TotalCopies     int       `json:"totalCopies" db:"total_copies"`
	AvailableCopies int       `json:"availableCopies" db:"available_copies"`
	IsArchived      bool      `json:"isArchived" db:"is_archived"`
	CreatedAt       time.Time `json:"createdAt" db:"created_at"`
}

type CreateBookRequest struct {
	Title         string `json:"title" validate:"required"`
	Author        string `json:"author" validate:"required"`
	ISBN          string `json:"isbn" validate:"required"`
	Publisher     string `json:"publisher"`
	Category      string `json:"category"`
	ShelfLocation string `json:"shelfLocation"`
}

type CopyStatus string

const (
	CopyAvailable CopyStatus = "available"
	CopyIssued    CopyStatus = "issued"
	CopyLost      CopyStatus = "lost"
	CopyDamaged   CopyStatus = "damaged"
)

type BookCopy struct {
	ID             int            `json:"id" db:"id"`
	BookID         int            `json:"bookId" db:"book_id"`
	CopyCode       string         `json:"copyCode" db:"copy_code"`
	Barcode        string         `json:"barcode" db:"barcode"`
	Status         CopyStatus     `json:"status" db:"status"`
	ConditionNotes sql.NullString `json:"conditionNotes,omitempty" db:"condition_notes"`
	AcquiredAt     time.Time      `json:"acquiredAt" db:"acquired_at"`
}

type AddCopiesRequest struct {
	Count int `json:"count" validate:"required,min=1,max=500"`
}

type LoanStatus string

const (
	LoanActive   LoanStatus = "active"
	LoanReturned LoanStatus = "returned"
	LoanLost     LoanStatus = "lost"
	// LoanOverdue is derived on read: active with due_date in the past.
	LoanOverdue LoanStatus = "overdue"
)

type Loan struct {
	ID           int            `json:"id" db:"id"`
	LoanUid      string         `json:"loanUid" db:"loan_uid"`
	StudentID    int            `json:"studentId" db:"student_id"`
	BookCopyID   int            `json:"bookCopyId" db:"book_copy_id"`
	BookID       int            `json:"bookId" db:"book_id"`
	IssuedDate   time.Time      `json:"issuedDate" db:"issued_date"`
	DueDate      time.Time      `json:"dueDate" db:"due_date"`
	ReturnedDate sql.NullTime   `json:"returnedDate,omitempty" db:"returned_date"`
	Status       LoanStatus     `json:"status" db:"status"`
	IssuedBy     string         `json:"issuedBy" db:"issued_by"`
	ReturnedBy   sql.NullString `json:"returnedBy,omitempty" db:"returned_by"`
	ReturnNotes  sql.NullString `json:"returnNotes,omitempty" db:"return_notes"`
}

// EffectiveStatus reports overdue for active loans past due at asOf.
func (l Loan) EffectiveStatus(asOf time.Time) LoanStatus {
	if l.Status == LoanActive && l.DueDate.Before(asOf) {
		return LoanOverdue
	}
	return l.Status
}

type IssueRequest struct {
	StudentID  int `json:"studentId" validate:"required,min=1"`
	BookCopyID int `json:"bookCopyId" validate:"required,min=1"`
}

type IssueReceipt struct {
	LoanUid     string    `json:"loanUid" db:"loan_uid"`
	StudentID   int       `json:"studentId" db:"student_id"`
	BookID      int       `json:"bookId" db:"book_id"`
	StudentName string    `json:"studentName" db:"student_name"`
	BookTitle   string    `json:"bookTitle" db:"book_title"`
	DueDate     time.Time `json:"dueDate" db:"due_date"`
}

type ReturnRequest struct {
	BookCopyID int    `json:"bookCopyId" validate:"required,min=1"`
	Notes      string `json:"notes"`
}

type ReturnReceipt struct {
	LoanUid      string          `json:"loanUid"`
	StudentID    int             `json:"studentId"`
	BookID       int             `json:"bookId"`
	ReturnedDate time.Time       `json:"returnedDate"`
	OverdueDays  int             `json:"overdueDays"`
	FineAmount   decimal.Decimal `json:"fineAmount"`
}

type FineType string

const (
	FineOverdue  FineType = "overdue"
	FineDamage   FineType = "damage"
	FineLostBook FineType = "lost_book"
)

type FineStatus string

const (
	FinePending FineStatus = "pending"
	FinePaid    FineStatus = "paid"
	FineWaived  FineStatus = "waived"
)

type Fine struct {
	ID           int             `json:"id" db:"id"`
	StudentID    int             `json:"studentId" db:"student_id"`
	LoanID       int             `json:"loanId" db:"loan_id"`
	Type         FineType        `json:"type" db:"fine_type"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Status       FineStatus      `json:"status" db:"status"`
	DueDate      sql.NullTime    `json:"dueDate,omitempty" db:"due_date"`
	PaidDate     sql.NullTime    `json:"paidDate,omitempty" db:"paid_date"`
	PaidMethod   sql.NullString  `json:"paidMethod,omitempty" db:"paid_method"`
	WaivedBy     sql.NullString  `json:"waivedBy,omitempty" db:"waived_by"`
	WaivedReason sql.NullString  `json:"waivedReason,omitempty" db:"waived_reason"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

type AttachFineRequest struct {
	LoanID int      `json:"loanId" validate:"required,min=1"`
	Type   FineType `json:"type" validate:"required,oneof=damage lost_book"`
}

type PayFineRequest struct {
	Method string `json:"method" validate:"required,oneof=cash card online"`
}

type WaiveFineRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type CardStatus string

const (
	CardActive   CardStatus = "active"
	CardInactive CardStatus = "inactive"
	CardLost     CardStatus = "lost"
)

type LibraryCard struct {
	ID         int          `json:"id" db:"id"`
	StudentID  int          `json:"studentId" db:"student_id"`
	CardNumber string       `json:"cardNumber" db:"card_number"`
	Barcode    string       `json:"barcode" db:"barcode"`
	QRPayload  string       `json:"qrPayload" db:"qr_payload"`
	Status     CardStatus   `json:"status" db:"status"`
	IssuedAt   time.Time    `json:"issuedAt" db:"issued_at"`
	ExpiresAt  time.Time    `json:"expiresAt" db:"expires_at"`
	LostAt     sql.NullTime `json:"lostAt,omitempty" db:"lost_at"`
}

type Dashboard struct {
	ActiveLoans    int             `json:"activeLoans"`
	DueSoon        int             `json:"dueSoon"`
	Overdue        int             `json:"overdue"`
	FinesPending   decimal.Decimal `json:"finesPending"`
	FinesCollected decimal.Decimal `json:"finesCollected"`
}

type TrendPoint struct {
	Day     time.Time `json:"day" db:"day"`
	Issues  int       `json:"issues" db:"issues"`
	Returns int       `json:"returns" db:"returns"`
}

type LoanExportRow struct {
	LoanUid       string         `db:"loan_uid"`
	StudentNumber string         `db:"student_number"`
	StudentName   string         `db:"student_name"`
	BookTitle     string         `db:"book_title"`
	CopyCode      string         `db:"copy_code"`
	IssuedDate    time.Time      `db:"issued_date"`
	DueDate       time.Time      `db:"due_date"`
	ReturnedDate  sql.NullTime   `db:"returned_date"`
	Status        LoanStatus     `db:"status"`
	FineAmount    sql.NullString `db:"fine_amount"`
}
