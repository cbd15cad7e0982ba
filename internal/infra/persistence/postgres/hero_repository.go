package postgres

import (
	"context"

	"arena/internal/domain/entity"
	domainerrors "arena/internal/domain/errors"
	"arena/internal/domain/repository"
	"arena/internal/errors"
	"arena/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// heroRepository implements the domain.HeroRepository interface using GORM.
type heroRepository struct {
	db *gorm.DB
}

// NewHeroRepository is the constructor for heroRepository.
func NewHeroRepository(db *gorm.DB) repository.HeroRepository {
	return &heroRepository{db: db}
}

// OwnedHeroIDs lists the ids of every hero owned by userID.
func (repo *heroRepository) OwnedHeroIDs(ctx context.Context, userID int64) ([]entity.HeroID, error) {
	ids := make([]entity.HeroID, 0)
	err := repo.db.WithContext(ctx).
		Model(&model.HeroModel{}).
		Where("user_id = ?", userID).
		Order("id").
		Pluck("id", &ids).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list owned hero ids")
	}

	return ids, nil
}

// FindByID retrieves a single hero.
func (repo *heroRepository) FindByID(ctx context.Context, id entity.HeroID) (*entity.Hero, error) {
	var heroM model.HeroModel
	err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&heroM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHeroNotFound
		}

		return nil, errors.Wrap(err, "failed to find hero by id")
	}

	return toHeroDomain(&heroM), nil
}

// Create inserts a hero for an existing user.
func (repo *heroRepository) Create(ctx context.Context, hero *entity.Hero) error {
	heroM := fromHeroDomain(hero)

	if err := repo.db.WithContext(ctx).Create(heroM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return errors.Wrap(repository.ErrUserNotFound, "hero owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create hero")
	}

	hero.ID = heroM.ID
	hero.CreatedAt = heroM.CreatedAt
	hero.UpdatedAt = heroM.UpdatedAt

	return nil
}

// UpdateName renames a hero.
func (repo *heroRepository) UpdateName(ctx context.Context, id entity.HeroID, name string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.HeroModel{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update hero name")
	}
	if result.RowsAffected == 0 {
		return repository.ErrHeroNotFound
	}

	return nil
}

func toHeroDomain(data *model.HeroModel) *entity.Hero {
	if data == nil {
		return nil
	}

	return &entity.Hero{
		ID:        data.ID,
		UserID:    data.UserID,
		Name:      data.Name,
		Wins:      data.Wins,
		Losses:    data.Losses,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func fromHeroDomain(data *entity.Hero) *model.HeroModel {
	if data == nil {
		return nil
	}

	return &model.HeroModel{
		ID:     data.ID,
		UserID: data.UserID,
		Name:   data.Name,
		Wins:   data.Wins,
		Losses: data.Losses,
	}
}
