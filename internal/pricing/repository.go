package pricing

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(p *Pricing) error
	FindByID(id uint) (*Pricing, error)
	List() ([]Pricing, error)
	ListGeneral() ([]Pricing, error)
	ListSchoolCorporate() ([]Pricing, error)
	Update(p *Pricing) error
	Delete(id uint) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(p *Pricing) error {
	return r.db.Create(p).Error
}

func (r *gormRepository) FindByID(id uint) (*Pricing, error) {
	var p Pricing
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *gormRepository) List() ([]Pricing, error) {
	var pricings []Pricing
	err := r.db.Find(&pricings).Error
	return pricings, err
}

func (r *gormRepository) ListGeneral() ([]Pricing, error) {
	var pricings []Pricing
	err := r.db.Where("general = ?", true).Find(&pricings).Error
	return pricings, err
}

func (r *gormRepository) ListSchoolCorporate() ([]Pricing, error) {
	var pricings []Pricing
	err := r.db.Where("school_corporate = ?", true).Find(&pricings).Error
	return pricings, err
}

func (r *gormRepository) Update(p *Pricing) error {
	return r.db.Save(p).Error
}

func (r *gormRepository) Delete(id uint) error {
	result := r.db.Delete(&Pricing{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
