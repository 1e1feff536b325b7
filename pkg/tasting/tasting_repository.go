package tasting

import (
	"context"
	"strings"
	"wine-diary/entities"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	TastingRepository interface {
		AddTasting(ctx context.Context, tasting *entities.Tasting) error
		GetTastingByID(ctx context.Context, id string, userID string) (*entities.Tasting, error)
		GetTastings(ctx context.Context, userID string) ([]*entities.Tasting, error)
		SearchTastings(ctx context.Context, userID string, query string) ([]*entities.Tasting, error)
		UpdateTasting(ctx context.Context, tasting *entities.Tasting) error
		UpdateLabelImage(ctx context.Context, id string, userID string, url string) (*entities.Tasting, error)
		DeleteTasting(ctx context.Context, id string, userID string) (*entities.Tasting, error)
	}

	tastingRepository struct {
		db *gorm.DB
	}
)

// immutableColumns are never written by an update.
var immutableColumns = []string{"id", "user_id", "created_at"}

func NewTastingRepository(db *gorm.DB) TastingRepository {
	return &tastingRepository{db: db}
}

func (r *tastingRepository) AddTasting(ctx context.Context, tasting *entities.Tasting) error {
	return r.db.WithContext(ctx).Create(tasting).Error
}

func (r *tastingRepository) GetTastingByID(ctx context.Context, id string, userID string) (*entities.Tasting, error) {
	var tasting entities.Tasting
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&tasting).Error; err != nil {
		return nil, err
	}
	return &tasting, nil
}

func (r *tastingRepository) GetTastings(ctx context.Context, userID string) ([]*entities.Tasting, error) {
	tastings := make([]*entities.Tasting, 0)

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&tastings).Error; err != nil {
		return nil, err
	}
	return tastings, nil
}

// SearchTastings matches query as a case-insensitive literal substring of
// winery, varietal, region, country or any aroma or flavor.
func (r *tastingRepository) SearchTastings(ctx context.Context, userID string, query string) ([]*entities.Tasting, error) {
	tastings := make([]*entities.Tasting, 0)
	pattern := "%" + escapeLike(query) + "%"

	matches := r.db.
		Where("winery ILIKE ?", pattern).
		Or("varietal ILIKE ?", pattern).
		Or("region ILIKE ?", pattern).
		Or("country ILIKE ?", pattern).
		Or("EXISTS (SELECT 1 FROM jsonb_array_elements_text(aromas) AS aroma WHERE aroma ILIKE ?)", pattern).
		Or("EXISTS (SELECT 1 FROM jsonb_array_elements_text(flavors) AS flavor WHERE flavor ILIKE ?)", pattern)

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where(matches).
		Order("created_at desc").
		Find(&tastings).Error; err != nil {
		return nil, err
	}
	return tastings, nil
}

// UpdateTasting writes every mutable column of tasting, scoped to its owner.
// It reports gorm.ErrRecordNotFound when no owned row matched.
func (r *tastingRepository) UpdateTasting(ctx context.Context, tasting *entities.Tasting) error {
	res := r.db.WithContext(ctx).
		Model(tasting).
		Where("user_id = ?", tasting.UserID).
		Select("*").
		Omit(append(immutableColumns, "User")...).
		Updates(tasting)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tastingRepository) UpdateLabelImage(ctx context.Context, id string, userID string, url string) (*entities.Tasting, error) {
	var tasting entities.Tasting
	res := r.db.WithContext(ctx).
		Model(&tasting).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, userID).
		Update("label_image_url", url)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &tasting, nil
}

// DeleteTasting removes the owned row and returns it as it was stored.
func (r *tastingRepository) DeleteTasting(ctx context.Context, id string, userID string) (*entities.Tasting, error) {
	var tasting entities.Tasting
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&tasting)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &tasting, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
