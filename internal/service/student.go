package service

import (
	"context"
	"strings"

	"github.com/campuslib/library-service/internal/errs"
	"github.com/campuslib/library-service/internal/model"
	"golang.org/x/crypto/bcrypt"
)

// Register creates a pending student. The password never reaches the store in
// the clear.
func (s *Service) Register(ctx context.Context, req model.RegisterStudentRequest) (model.Student, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return model.Student{}, err
	}
	return s.repo.CreateStudent(ctx, req, string(hash))
}

func (s *Service) GetStudent(ctx context.Context, id int) (model.Student, error) {
	return s.repo.GetStudent(ctx, id)
}

func (s *Service) ListStudents(ctx context.Context, status model.StudentStatus) ([]model.Student, error) {
	return s.repo.ListStudents(ctx, status)
}

func (s *Service) ApproveStudent(ctx context.Context, id int, by string) error {
	return s.repo.ApproveStudent(ctx, id, by)
}

func (s *Service) RejectStudent(ctx context.Context, id int, reason, by string) error {
	if strings.TrimSpace(reason) == "" {
		return errs.ErrRejectReason
	}
	return s.repo.RejectStudent(ctx, id, reason, by)
}

func (s *Service) BlockStudent(ctx context.Context, id int) error {
	return s.repo.BlockStudent(ctx, id)
}

func (s *Service) UnblockStudent(ctx context.Context, id int) error {
	return s.repo.UnblockStudent(ctx, id)
}
