package repository

import (
	"github.com/s1gl/eWMS/internal/wms/entity"
	"gorm.io/gorm"
)

type PartnerRepository struct {
	db *gorm.DB
}

func NewPartnerRepository(db *gorm.DB) *PartnerRepository {
	return &PartnerRepository{db: db}
}

func (r *PartnerRepository) Get(id uint) (*entity.Partner, error) {
	var p entity.Partner
	err := r.db.First(&p, id).Error
	return &p, err
}

func (r *PartnerRepository) GetByCode(code string) (*entity.Partner, error) {
	var p entity.Partner
	err := r.db.Where("code = ?", code).First(&p).Error
	return &p, err
}

type PartnerListParams struct {
	Type     string
	IsActive *bool
}

func (r *PartnerRepository) List(params PartnerListParams) ([]entity.Partner, error) {
	query := r.db.Model(&entity.Partner{})
	if params.Type != "" {
		query = query.Where("type = ?", params.Type)
	}
	if params.IsActive != nil {
		query = query.Where("is_active = ?", *params.IsActive)
	}
	var partners []entity.Partner
	err := query.Order("id").Find(&partners).Error
	return partners, err
}

func (r *PartnerRepository) Create(p *entity.Partner) error {
	return r.db.Create(p).Error
}
