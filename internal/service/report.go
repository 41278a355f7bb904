package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"github.com/campuslib/library-service/internal/model"
)

func (s *Service) Dashboard(ctx context.Context) (model.Dashboard, error) {
	return s.repo.Dashboard(ctx, s.policy.DueSoonDays)
}

func (s *Service) LoanTrend(ctx context.Context, days int) ([]model.TrendPoint, error) {
	return s.repo.LoanTrend(ctx, days)
}

// ExportLoansCSV renders the loan history as raw CSV rows.
func (s *Service) ExportLoansCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.repo.ExportLoans(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{
		"loan_uid", "student_number", "student_name", "book_title", "copy_code",
		"issued_date", "due_date", "returned_date", "status", "fine_amount",
	}); err != nil {
		return nil, err
	}
	for _, row := range rows {
		returned := ""
		if row.ReturnedDate.Valid {
			returned = row.ReturnedDate.Time.Format(time.RFC3339)
		}
		fine := "0"
		if row.FineAmount.Valid {
			fine = row.FineAmount.String
		}
		if err := w.Write([]string{
			row.LoanUid,
			row.StudentNumber,
			row.StudentName,
			row.BookTitle,
			row.CopyCode,
			row.IssuedDate.Format(time.RFC3339),
			row.DueDate.Format(time.RFC3339),
			returned,
			string(row.Status),
			fine,
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
