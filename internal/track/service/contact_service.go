package service

import (
	"context"

	"github.com/alterians/Lojistik-Asistan/internal/track/entity"
	"github.com/alterians/Lojistik-Asistan/internal/track/repository"
)

// ContactService serves supplier contact metadata.
type ContactService struct {
	contactRepo *repository.ContactRepository
}

func NewContactService(repos *repository.Repositories) *ContactService {
	return &ContactService{contactRepo: repos.Contact}
}

func (s *ContactService) List(ctx context.Context) ([]entity.SupplierContact, error) {
	return s.contactRepo.FindAll(ctx)
}

func (s *ContactService) GetByCode(ctx context.Context, code string) (*entity.SupplierContact, error) {
	return s.contactRepo.FindByCode(ctx, code)
}
