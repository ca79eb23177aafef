package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"pahunapath/internal/mediastore"
	"pahunapath/internal/models/db_models"
	"pahunapath/internal/repositories"
)

// stubAccountRepo is an in-memory repositories.AccountRepository.
type stubAccountRepo struct {
	byID      map[uuid.UUID]*db_models.Account
	failOn    map[uuid.UUID]error
	deleted   []uuid.UUID
	insertErr error
}

func newStubAccountRepo(accounts ...*db_models.Account) *stubAccountRepo {
	r := &stubAccountRepo{byID: map[uuid.UUID]*db_models.Account{}, failOn: map[uuid.UUID]error{}}
	for _, a := range accounts {
		if a.ID == uuid.Nil {
			a.ID = uuid.New()
		}
		r.byID[a.ID] = a
	}
	return r
}

func (r *stubAccountRepo) InsertTx(account *db_models.Account, _ context.Context) error {
	if r.insertErr != nil {
		return r.insertErr
	}
	account.ID = uuid.New()
	account.CreatedAt = time.Now().Unix()
	r.byID[account.ID] = account
	return nil
}

func (r *stubAccountRepo) FindById(_ context.Context, id string) (*db_models.Account, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return r.byID[uid], nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*db_models.Account, error) {
	for _, a := range r.byID {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, nil
}

func (r *stubAccountRepo) ListByRole(_ context.Context, role string) ([]db_models.Account, error) {
	var out []db_models.Account
	for _, a := range r.byID {
		if a.Role == role {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAccountRepo) DeleteCascade(_ context.Context, id uuid.UUID, role string) error {
	if err := r.failOn[id]; err != nil {
		return err
	}
	a, ok := r.byID[id]
	if !ok || a.Role != role {
		return gorm.ErrRecordNotFound
	}
	delete(r.byID, id)
	r.deleted = append(r.deleted, id)
	return nil
}

var _ repositories.AccountRepository = (*stubAccountRepo)(nil)

// stubPlaceRepo is an in-memory repositories.PlaceRepository.
type stubPlaceRepo struct {
	byID      map[uuid.UUID]*db_models.Place
	createErr error
}

func newStubPlaceRepo(places ...*db_models.Place) *stubPlaceRepo {
	r := &stubPlaceRepo{byID: map[uuid.UUID]*db_models.Place{}}
	for _, p := range places {
		if p.ID == uuid.Nil {
			p.ID = uuid.New()
		}
		r.byID[p.ID] = p
	}
	return r
}

func (r *stubPlaceRepo) CreatePlace(_ context.Context, place *db_models.Place) (uuid.UUID, error) {
	if r.createErr != nil {
		return uuid.Nil, r.createErr
	}
	place.ID = uuid.New()
	r.byID[place.ID] = place
	return place.ID, nil
}

func (r *stubPlaceRepo) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.byID[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *stubPlaceRepo) GetByID(_ context.Context, id string) (*db_models.Place, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return r.byID[uid], nil
}

func (r *stubPlaceRepo) List(_ context.Context, kind string) ([]db_models.Place, error) {
	var out []db_models.Place
	for _, p := range r.byID {
		if kind == "" || string(p.Kind) == kind {
			out = append(out, *p)
		}
	}
	return out, nil
}

var _ repositories.PlaceRepository = (*stubPlaceRepo)(nil)

// stubReviewRepo is an in-memory repositories.ReviewRepository. names maps
// author ids to the display name loaded into Review.Author.
type stubReviewRepo struct {
	byID  map[uuid.UUID]*db_models.Review
	names map[uuid.UUID]string
}

func newStubReviewRepo() *stubReviewRepo {
	return &stubReviewRepo{byID: map[uuid.UUID]*db_models.Review{}, names: map[uuid.UUID]string{}}
}

func (r *stubReviewRepo) CreateReview(_ context.Context, review *db_models.Review) error {
	review.ID = uuid.New()
	review.Author = db_models.Account{Name: r.names[review.AuthorID]}
	r.byID[review.ID] = review
	return nil
}

func (r *stubReviewRepo) GetByID(_ context.Context, id string) (*db_models.Review, error) {
	uid, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}
	return r.byID[uid], nil
}

func (r *stubReviewRepo) ListByPlace(_ context.Context, placeID string) ([]db_models.Review, error) {
	var out []db_models.Review
	for _, rv := range r.byID {
		if rv.PlaceID.String() == placeID {
			out = append(out, *rv)
		}
	}
	return out, nil
}

func (r *stubReviewRepo) Delete(_ context.Context, review *db_models.Review) error {
	delete(r.byID, review.ID)
	return nil
}

var _ repositories.ReviewRepository = (*stubReviewRepo)(nil)

// stubMedia is an in-memory mediastore.Store.
type stubMedia struct {
	mu      sync.Mutex
	saved   map[string][]byte
	saveErr error
}

func newStubMedia() *stubMedia {
	return &stubMedia{saved: map[string][]byte{}}
}

func (m *stubMedia) Save(_ context.Context, mimeType string, r io.Reader) (string, error) {
	if m.saveErr != nil {
		return "", m.saveErr
	}
	if mimeType != "image/jpeg" && mimeType != "image/png" {
		return "", mediastore.ErrUnsupportedMedia
	}
	data, _ := io.ReadAll(r)
	m.mu.Lock()
	defer m.mu.Unlock()
	key := uuid.NewString() + ".jpg"
	m.saved[key] = data
	return key, nil
}

func (m *stubMedia) Open(_ context.Context, key string) (io.ReadCloser, string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.saved[key]
	if !ok {
		return nil, "", mediastore.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), "image/jpeg", nil
}

func (m *stubMedia) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.saved[key]; !ok {
		return mediastore.ErrNotFound
	}
	delete(m.saved, key)
	return nil
}

// stubSessions is an in-memory SessionStore.
type stubSessions struct {
	revoked map[string]time.Duration
	err     error
}

func (s *stubSessions) Revoke(_ context.Context, id string, ttl time.Duration) error {
	if s.err != nil {
		return s.err
	}
	if s.revoked == nil {
		s.revoked = map[string]time.Duration{}
	}
	s.revoked[id] = ttl
	return nil
}

func (s *stubSessions) IsRevoked(_ context.Context, id string) (bool, error) {
	_, ok := s.revoked[id]
	return ok, s.err
}

var errBoom = errors.New("boom")
