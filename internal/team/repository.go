package team

import (
	"gorm.io/gorm"
)

type Repository interface {
	CreateTeam(team *FootballTeam) error
	FindTeamByID(id uint) (*FootballTeam, error)
	ListTeams() ([]FootballTeam, error)
	UpdateTeam(team *FootballTeam) error
	DeleteTeam(id uint) error

	CreatePlayer(player *PlayerDetail) error
	FindPlayerByID(id uint) (*PlayerDetail, error)
	ListPlayers() ([]PlayerDetail, error)
	UpdatePlayer(player *PlayerDetail) error
	DeletePlayer(id uint) error
}

type gormRepository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db}
}

func (r *gormRepository) CreateTeam(team *FootballTeam) error {
	return r.db.Create(team).Error
}

func (r *gormRepository) FindTeamByID(id uint) (*FootballTeam, error) {
	var team FootballTeam
	if err := r.db.First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *gormRepository) ListTeams() ([]FootballTeam, error) {
	var teams []FootballTeam
	err := r.db.Find(&teams).Error
	return teams, err
}

func (r *gormRepository) UpdateTeam(team *FootballTeam) error {
	return r.db.Save(team).Error
}

// DeleteTeam removes the team and its players together.
func (r *gormRepository) DeleteTeam(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("football_team_id = ?", id).Delete(&PlayerDetail{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&FootballTeam{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *gormRepository) CreatePlayer(player *PlayerDetail) error {
	return r.db.Create(player).Error
}

func (r *gormRepository) FindPlayerByID(id uint) (*PlayerDetail, error) {
	var player PlayerDetail
	if err := r.db.First(&player, id).Error; err != nil {
		return nil, err
	}
	return &player, nil
}

func (r *gormRepository) ListPlayers() ([]PlayerDetail, error) {
	var players []PlayerDetail
	err := r.db.Find(&players).Error
	return players, err
}

func (r *gormRepository) UpdatePlayer(player *PlayerDetail) error {
	return r.db.Save(player).Error
}

func (r *gormRepository) DeletePlayer(id uint) error {
	result := r.db.Delete(&PlayerDetail{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
