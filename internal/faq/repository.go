package faq

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(faq *FAQ) error
	FindByID(id uint) (*FAQ, error)
	List() ([]FAQ, error)
	Update(faq *FAQ) error
	Delete(id uint) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(faq *FAQ) error {
	return r.db.Create(faq).Error
}

func (r *gormRepository) FindByID(id uint) (*FAQ, error) {
	var faq FAQ
	if err := r.db.First(&faq, id).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (r *gormRepository) List() ([]FAQ, error) {
	var faqs []FAQ
	err := r.db.Find(&faqs).Error
	return faqs, err
}

func (r *gormRepository) Update(faq *FAQ) error {
	return r.db.Save(faq).Error
}

func (r *gormRepository) Delete(id uint) error {
	result := r.db.Delete(&FAQ{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
