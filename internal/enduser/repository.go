package enduser

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(endUser *EndUser) error
	FindByID(id uint) (*EndUser, error)
	List() ([]EndUser, error)
	Update(endUser *EndUser) error
	Delete(id uint) error

	CreateDetail(detail *EndUserDetail) error
	FindDetailByEndUserID(endUserID uint) (*EndUserDetail, error)
	ListDetails() ([]EndUserDetail, error)
	UpdateDetail(detail *EndUserDetail) error
	DeleteDetailByEndUserID(endUserID uint) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(endUser *EndUser) error {
	return r.db.Create(endUser).Error
}

func (r *gormRepository) FindByID(id uint) (*EndUser, error) {
	var endUser EndUser
	if err := r.db.First(&endUser, id).Error; err != nil {
		return nil, err
	}
	return &endUser, nil
}

func (r *gormRepository) List() ([]EndUser, error) {
	var endUsers []EndUser
	err := r.db.Find(&endUsers).Error
	return endUsers, err
}

func (r *gormRepository) Update(endUser *EndUser) error {
	return r.db.Save(endUser).Error
}

// Delete removes the end user and any attached profile detail together.
func (r *gormRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("end_user_id = ?", id).Delete(&EndUserDetail{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&EndUser{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *gormRepository) CreateDetail(detail *EndUserDetail) error {
	return r.db.Create(detail).Error
}

func (r *gormRepository) FindDetailByEndUserID(endUserID uint) (*EndUserDetail, error) {
	var detail EndUserDetail
	if err := r.db.Where("end_user_id = ?", endUserID).First(&detail).Error; err != nil {
		return nil, err
	}
	return &detail, nil
}

func (r *gormRepository) ListDetails() ([]EndUserDetail, error) {
	var details []EndUserDetail
	err := r.db.Find(&details).Error
	return details, err
}

func (r *gormRepository) UpdateDetail(detail *EndUserDetail) error {
	return r.db.Save(detail).Error
}

func (r *gormRepository) DeleteDetailByEndUserID(endUserID uint) error {
	result := r.db.Where("end_user_id = ?", endUserID).Delete(&EndUserDetail{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
