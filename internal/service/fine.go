package service

import (
	"context"

	"github.com/campuslib/library-service/internal/model"
)

// AttachFine prices a damage or lost-book incident at the configured flat
// amount. Overdue fines are never attached by hand, they come from returns.
func (s *Service) AttachFine(ctx context.Context, loanID int, ftype model.FineType) (model.Fine, error) {
	return s.repo.AttachFine(ctx, loanID, ftype, s.policy.FlatFine(ftype == model.FineLostBook))
}

func (s *Service) ListFines(ctx context.Context, studentID int) ([]model.Fine, error) {
	return s.repo.ListFines(ctx, studentID)
}

func (s *Service) PayFine(ctx context.Context, id int, method string) error {
	return s.repo.PayFine(ctx, id, method)
}

func (s *Service) WaiveFine(ctx context.Context, id int, by, reason string) error {
	return s.repo.WaiveFine(ctx, id, by, reason)
}
