package tasting

import (
	"context"
	"fmt"
	"mime/multipart"
	"sort"
	"strings"
	"sync"
	"time"
	"wine-diary/entities"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// fakeTastingRepository keeps tastings in memory with the same ownership
// scoping as the GORM repository.
type fakeTastingRepository struct {
	mu    sync.Mutex
	items map[uuid.UUID]entities.Tasting
	err   error
}

func newFakeTastingRepository() *fakeTastingRepository {
	return &fakeTastingRepository{items: make(map[uuid.UUID]entities.Tasting)}
}

func (r *fakeTastingRepository) AddTasting(_ context.Context, tasting *entities.Tasting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.items[tasting.ID] = clone(tasting)
	return nil
}

func (r *fakeTastingRepository) GetTastingByID(_ context.Context, id string, userID string) (*entities.Tasting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	t, ok := r.owned(id, userID)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	out := clone(&t)
	return &out, nil
}

func (r *fakeTastingRepository) GetTastings(_ context.Context, userID string) ([]*entities.Tasting, error) {
	return r.filter(userID, func(*entities.Tasting) bool { return true })
}

func (r *fakeTastingRepository) SearchTastings(_ context.Context, userID string, query string) ([]*entities.Tasting, error) {
	q := strings.ToLower(query)
	contains := func(s string) bool { return strings.Contains(strings.ToLower(s), q) }

	return r.filter(userID, func(t *entities.Tasting) bool {
		if contains(t.Winery) || contains(t.Varietal) || contains(t.Region) || contains(t.Country) {
			return true
		}
		for _, v := range append(append([]string{}, t.Aromas...), t.Flavors...) {
			if contains(v) {
				return true
			}
		}
		return false
	})
}

func (r *fakeTastingRepository) UpdateTasting(_ context.Context, tasting *entities.Tasting) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	stored, ok := r.owned(tasting.ID.String(), tasting.UserID.String())
	if !ok {
		return gorm.ErrRecordNotFound
	}
	updated := clone(tasting)
	updated.CreatedAt = stored.CreatedAt
	r.items[tasting.ID] = updated
	return nil
}

func (r *fakeTastingRepository) UpdateLabelImage(_ context.Context, id string, userID string, url string) (*entities.Tasting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	stored, ok := r.owned(id, userID)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	stored.LabelImageURL = url
	r.items[stored.ID] = stored
	out := clone(&stored)
	return &out, nil
}

func (r *fakeTastingRepository) DeleteTasting(_ context.Context, id string, userID string) (*entities.Tasting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	stored, ok := r.owned(id, userID)
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	delete(r.items, stored.ID)
	return &stored, nil
}

func (r *fakeTastingRepository) owned(id string, userID string) (entities.Tasting, bool) {
	key, err := uuid.Parse(id)
	if err != nil {
		return entities.Tasting{}, false
	}
	t, ok := r.items[key]
	if !ok || t.UserID.String() != userID {
		return entities.Tasting{}, false
	}
	return t, true
}

func (r *fakeTastingRepository) filter(userID string, keep func(*entities.Tasting) bool) ([]*entities.Tasting, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}

	out := make([]*entities.Tasting, 0)
	for _, t := range r.items {
		t := clone(&t)
		if t.UserID.String() == userID && keep(&t) {
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func clone(t *entities.Tasting) entities.Tasting {
	out := *t
	out.Aromas = append([]string{}, t.Aromas...)
	out.Flavors = append([]string{}, t.Flavors...)
	if t.Price != nil {
		p := *t.Price
		out.Price = &p
	}
	if t.Rating != nil {
		r := *t.Rating
		out.Rating = &r
	}
	return out
}

type fakeStorage struct {
	uploaded  []string
	deleted   []string
	uploadErr error
}

func (s *fakeStorage) UploadFile(_ context.Context, fileName string, _ *multipart.FileHeader, folder string, _ ...string) (string, error) {
	if s.uploadErr != nil {
		return "", s.uploadErr
	}
	key := fmt.Sprintf("%s/%s-%d.png", folder, fileName, len(s.uploaded))
	s.uploaded = append(s.uploaded, key)
	return key, nil
}

func (s *fakeStorage) DeleteFile(_ context.Context, objectKey string) error {
	s.deleted = append(s.deleted, objectKey)
	return nil
}

func (s *fakeStorage) GetPublicLinkKey(objectKey string) string {
	return "https://labels.test/" + objectKey
}

func (s *fakeStorage) GetObjectKeyFromLink(link string) string {
	return strings.TrimPrefix(link, "https://labels.test/")
}

// tickingClock advances one second on every reading.
type tickingClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *tickingClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Second)
	return c.now
}
