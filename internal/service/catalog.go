package service

import (
	"context"

	"github.com/campuslib/library-service/internal/model"
)

func (s *Service) CreateBook(ctx context.Context, req model.CreateBookRequest) (model.Book, error) {
	return s.repo.CreateBook(ctx, req)
}

func (s *Service) GetBook(ctx context.Context, id int) (model.Book, error) {
	return s.repo.GetBook(ctx, id)
}

func (s *Service) ListBooks(ctx context.Context, includeArchived bool, page, size int) ([]model.Book, error) {
	return s.repo.ListBooks(ctx, includeArchived, page, size)
}

func (s *Service) ArchiveBook(ctx context.Context, id int) error {
	return s.repo.ArchiveBook(ctx, id)
}

func (s *Service) AddCopies(ctx context.Context, bookID, count int) ([]model.BookCopy, error) {
	return s.repo.AddCopies(ctx, bookID, count)
}

func (s *Service) GetCopyByBarcode(ctx context.Context, barcode string) (model.BookCopy, error) {
	return s.repo.GetCopyByBarcode(ctx, barcode)
}

func (s *Service) MarkCopyDamaged(ctx context.Context, copyID int, notes string) error {
	return s.repo.MarkCopyDamaged(ctx, copyID, notes)
}
