package service

import (
	"context"

	"github.com/campuslib/library-service/internal/model"
)

func (s *Service) IssueCard(ctx context.Context, studentID int) (model.LibraryCard, error) {
	return s.repo.IssueCard(ctx, studentID, s.policy.CardValidYears)
}

func (s *Service) ReportCardLost(ctx context.Context, cardID int) error {
	return s.repo.ReportCardLost(ctx, cardID)
}

func (s *Service) GetCardByBarcode(ctx context.Context, barcode string) (model.LibraryCard, error) {
	return s.repo.GetCardByBarcode(ctx, barcode)
}
