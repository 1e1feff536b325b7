package tasting

import (
	"context"
	"errors"
	"mime/multipart"
	"time"
	"wine-diary/domain"
	"wine-diary/entities"
	"wine-diary/internal/utils/storage"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const labelFolder = "labels"

type (
	TastingService interface {
		GetTastings(ctx context.Context, userID string) ([]domain.TastingResponse, error)
		GetTastingByID(ctx context.Context, id string, userID string) (domain.TastingResponse, error)
		CreateTasting(ctx context.Context, req domain.TastingRequest, userID string) (domain.TastingResponse, error)
		UpdateTasting(ctx context.Context, id string, req domain.TastingRequest, userID string) (domain.TastingResponse, error)
		DeleteTasting(ctx context.Context, id string, userID string) error
		SearchTastings(ctx context.Context, query string, userID string) ([]domain.TastingResponse, error)
		UploadLabel(ctx context.Context, id string, image *multipart.FileHeader, userID string) (domain.TastingResponse, error)
		RemoveLabel(ctx context.Context, id string, userID string) (domain.TastingResponse, error)
	}

	tastingService struct {
		tastingRepository TastingRepository
		s3                storage.AwsS3
		validate          *validator.Validate
		now               func() time.Time
	}
)

func NewTastingService(tastingRepository TastingRepository, s3 storage.AwsS3, validate *validator.Validate) TastingService {
	return &tastingService{
		tastingRepository: tastingRepository,
		s3:                s3,
		validate:          validate,
		now:               func() time.Time { return storedTime(time.Now()) },
	}
}

func (s *tastingService) GetTastings(ctx context.Context, userID string) ([]domain.TastingResponse, error) {
	tastings, err := s.tastingRepository.GetTastings(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toTastingResponses(tastings), nil
}

func (s *tastingService) GetTastingByID(ctx context.Context, id string, userID string) (domain.TastingResponse, error) {
	tasting, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return domain.TastingResponse{}, err
	}
	return toTastingResponse(tasting), nil
}

func (s *tastingService) CreateTasting(ctx context.Context, req domain.TastingRequest, userID string) (domain.TastingResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.TastingResponse{}, domain.ErrParseUUID
	}

	tasting := &entities.Tasting{}
	if err := s.prepare(tasting, req); err != nil {
		return domain.TastingResponse{}, err
	}

	now := s.now()
	tasting.ID = uuid.New()
	tasting.UserID = userUUID
	tasting.CreatedAt = now
	tasting.UpdatedAt = now

	if err := s.tastingRepository.AddTasting(ctx, tasting); err != nil {
		return domain.TastingResponse{}, err
	}
	return toTastingResponse(tasting), nil
}

func (s *tastingService) UpdateTasting(ctx context.Context, id string, req domain.TastingRequest, userID string) (domain.TastingResponse, error) {
	tasting, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return domain.TastingResponse{}, err
	}

	if err := s.prepare(tasting, req); err != nil {
		return domain.TastingResponse{}, err
	}
	tasting.UpdatedAt = s.now()

	if err := s.tastingRepository.UpdateTasting(ctx, tasting); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TastingResponse{}, domain.ErrTastingNotFound
		}
		return domain.TastingResponse{}, err
	}
	return toTastingResponse(tasting), nil
}

func (s *tastingService) DeleteTasting(ctx context.Context, id string, userID string) error {
	if _, err := uuid.Parse(id); err != nil {
		return domain.ErrTastingNotFound
	}

	deleted, err := s.tastingRepository.DeleteTasting(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrTastingNotFound
		}
		return err
	}

	s.removeLabelObject(ctx, deleted.LabelImageURL)
	return nil
}

func (s *tastingService) SearchTastings(ctx context.Context, query string, userID string) ([]domain.TastingResponse, error) {
	tastings, err := s.tastingRepository.SearchTastings(ctx, userID, query)
	if err != nil {
		return nil, err
	}
	return toTastingResponses(tastings), nil
}

func (s *tastingService) UploadLabel(ctx context.Context, id string, image *multipart.FileHeader, userID string) (domain.TastingResponse, error) {
	tasting, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return domain.TastingResponse{}, err
	}

	objectKey, err := s.s3.UploadFile(ctx, tasting.ID.String(), image, labelFolder, storage.AllowImage...)
	if err != nil {
		return domain.TastingResponse{}, err
	}

	updated, err := s.tastingRepository.UpdateLabelImage(ctx, id, userID, s.s3.GetPublicLinkKey(objectKey))
	if err != nil {
		// The record vanished or the write failed; the fresh object is orphaned.
		s.removeLabelObject(ctx, s.s3.GetPublicLinkKey(objectKey))
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TastingResponse{}, domain.ErrTastingNotFound
		}
		return domain.TastingResponse{}, err
	}

	s.removeLabelObject(ctx, tasting.LabelImageURL)
	return toTastingResponse(updated), nil
}

func (s *tastingService) RemoveLabel(ctx context.Context, id string, userID string) (domain.TastingResponse, error) {
	tasting, err := s.findOwned(ctx, id, userID)
	if err != nil {
		return domain.TastingResponse{}, err
	}
	if tasting.LabelImageURL == "" {
		return toTastingResponse(tasting), nil
	}

	updated, err := s.tastingRepository.UpdateLabelImage(ctx, id, userID, "")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.TastingResponse{}, domain.ErrTastingNotFound
		}
		return domain.TastingResponse{}, err
	}

	s.removeLabelObject(ctx, tasting.LabelImageURL)
	return toTastingResponse(updated), nil
}

// findOwned loads a tasting owned by userID. A malformed id, a missing row
// and another user's row all yield domain.ErrTastingNotFound.
func (s *tastingService) findOwned(ctx context.Context, id string, userID string) (*entities.Tasting, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, domain.ErrTastingNotFound
	}

	tasting, err := s.tastingRepository.GetTastingByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTastingNotFound
		}
		return nil, err
	}
	return tasting, nil
}

func (s *tastingService) prepare(tasting *entities.Tasting, req domain.TastingRequest) error {
	if err := ApplyRequest(tasting, req); err != nil {
		return err
	}
	ApplyDefaults(tasting, s.now())
	return ValidateTasting(s.validate, tasting)
}

func (s *tastingService) removeLabelObject(ctx context.Context, link string) {
	if link == "" {
		return
	}
	objectKey := s.s3.GetObjectKeyFromLink(link)
	if objectKey == "" {
		return
	}
	if err := s.s3.DeleteFile(ctx, objectKey); err != nil {
		log.Warnw("failed to delete wine label object", "key", objectKey, "err", err)
	}
}

func toTastingResponses(tastings []*entities.Tasting) []domain.TastingResponse {
	response := make([]domain.TastingResponse, 0, len(tastings))
	for _, t := range tastings {
		response = append(response, toTastingResponse(t))
	}
	return response
}

func toTastingResponse(t *entities.Tasting) domain.TastingResponse {
	return domain.TastingResponse{
		ID:        t.ID.String(),
		UserID:    t.UserID.String(),
		Winery:    t.Winery,
		WineMaker: t.WineMaker,
		Varietal:  t.Varietal,
		Vintage:   t.Vintage,
		Region:    t.Region,
		Country:   t.Country,
		Price:     t.Price,
		Rating:    t.Rating,

		Clarity:   t.Clarity,
		Intensity: t.Intensity,
		Color:     t.Color,

		Condition:     t.Condition,
		NoseIntensity: t.NoseIntensity,
		Aromas:        nonNil(t.Aromas),

		Sweetness:       t.Sweetness,
		Acidity:         t.Acidity,
		Tannin:          t.Tannin,
		Alcohol:         t.Alcohol,
		Body:            t.Body,
		FlavorIntensity: t.FlavorIntensity,
		Flavors:         nonNil(t.Flavors),
		Finish:          t.Finish,

		QualityLevel:  t.QualityLevel,
		Readiness:     t.Readiness,
		PersonalNotes: t.PersonalNotes,

		LabelImageURL: t.LabelImageURL,
		TastingDate:   t.TastingDate.UTC(),
		CreatedAt:     t.CreatedAt.UTC(),
		UpdatedAt:     t.UpdatedAt.UTC(),
	}
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}
