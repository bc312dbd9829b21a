package contact

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(contact *Contact) error
	FindByID(id uint) (*Contact, error)
	List() ([]Contact, error)
	Update(contact *Contact) error
	Delete(id uint) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(contact *Contact) error {
	return r.db.Create(contact).Error
}

func (r *gormRepository) FindByID(id uint) (*Contact, error) {
	var contact Contact
	if err := r.db.First(&contact, id).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *gormRepository) List() ([]Contact, error) {
	var contacts []Contact
	err := r.db.Find(&contacts).Error
	return contacts, err
}

func (r *gormRepository) Update(contact *Contact) error {
	return r.db.Save(contact).Error
}

func (r *gormRepository) Delete(id uint) error {
	result := r.db.Delete(&Contact{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
