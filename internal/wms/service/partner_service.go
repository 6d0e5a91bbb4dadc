package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/s1gl/eWMS/internal/wms/entity"
	"github.com/s1gl/eWMS/internal/wms/repository"
	"github.com/s1gl/eWMS/internal/wms/wmserr"
	"gorm.io/gorm"
)

type PartnerService struct {
	repo *repository.PartnerRepository
}

func NewPartnerService(repo *repository.PartnerRepository) *PartnerService {
	return &PartnerService{repo: repo}
}

func (s *PartnerService) List(params repository.PartnerListParams) ([]entity.Partner, error) {
	return s.repo.List(params)
}

func (s *PartnerService) Get(id uint) (*entity.Partner, error) {
	partner, err := s.repo.Get(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("partner %d: %w", id, wmserr.ErrNotFound)
	}
	return partner, err
}

func (s *PartnerService) GetByCode(code string) (*entity.Partner, error) {
	partner, err := s.repo.GetByCode(code)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("partner code %s: %w", code, wmserr.ErrNotFound)
	}
	return partner, err
}

type CreatePartnerRequest struct {
	Name string `json:"name" binding:"required"`
	Code string `json:"code" binding:"required"`
	Type string `json:"type" binding:"required,oneof=customer supplier"`
}

func (s *PartnerService) Create(ctx context.Context, req CreatePartnerRequest) (*entity.Partner, error) {
	partner := &entity.Partner{
		Name:     req.Name,
		Code:     req.Code,
		Type:     req.Type,
		IsActive: true,
	}
	if err := s.repo.Create(partner); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("partner code %s: %w", req.Code, wmserr.ErrDuplicateKey)
		}
		return nil, err
	}
	return partner, nil
}
