package websites

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	websiteCache "github.com/m04kA/SMC-SiteBookings/internal/infra/cache/website"
	websiteRepo "github.com/m04kA/SMC-SiteBookings/internal/infra/storage/website"
	"github.com/m04kA/SMC-SiteBookings/internal/service/websites/models"
	"github.com/m04kA/SMC-SiteBookings/pkg/logger"
	"github.com/m04kA/SMC-SiteBookings/pkg/ptr"
)

type fakeRepo struct {
	byToken   map[string]*domain.Website
	createErr error
	created   *domain.Website
	lookups   int
}

func (r *fakeRepo) Create(_ context.Context, w *domain.Website) (*domain.Website, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	w.ID = 1
	r.created = w
	return w, nil
}

func (r *fakeRepo) GetByToken(_ context.Context, token string) (*domain.Website, error) {
	r.lookups++
	if w, ok := r.byToken[token]; ok {
		return w, nil
	}
	return nil, websiteRepo.ErrWebsiteNotFound
}

type fakeCache struct {
	items  map[string]*domain.Website
	getErr error
}

func (c *fakeCache) Get(_ context.Context, token string) (*domain.Website, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	if w, ok := c.items[token]; ok {
		return w, nil
	}
	return nil, websiteCache.ErrCacheMiss
}

func (c *fakeCache) Set(_ context.Context, w *domain.Website) error {
	c.items[w.AccessToken] = w
	return nil
}

type staticToken string

func (s staticToken) Generate() (string, error) { return string(s), nil }

func TestRandomTokenGenerator(t *testing.T) {
	a, err := RandomTokenGenerator{}.Generate()
	require.NoError(t, err)
	b, err := RandomTokenGenerator{}.Generate()
	require.NoError(t, err)

	assert.Len(t, a, domain.AccessTokenLen)
	assert.NotEqual(t, a, b)
}

func TestService_Register(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, nil, logger.NewNop()).WithTokenGenerator(staticToken("tok"))

	resp, err := svc.Register(context.Background(), &models.RegisterRequest{
		Name:     "  Salon  ",
		Email:    "owner@salon.uz",
		Timezone: ptr.Ptr("Asia/Tashkent"),
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Salon", resp.Name)
	assert.Equal(t, "tok", resp.AccessToken)
	assert.Equal(t, "Asia/Tashkent", *resp.Timezone)
}

func TestService_RegisterValidation(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, logger.NewNop())

	tests := []struct {
		name string
		req  models.RegisterRequest
	}{
		{name: "missing name", req: models.RegisterRequest{Email: "a@b.uz"}},
		{name: "bad email", req: models.RegisterRequest{Name: "Salon", Email: "not-an-email"}},
		{name: "bad timezone", req: models.RegisterRequest{Name: "Salon", Email: "a@b.uz", Timezone: ptr.Ptr("Mars/Olympus")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Register(context.Background(), &tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestService_RegisterDuplicate(t *testing.T) {
	repo := &fakeRepo{createErr: websiteRepo.ErrDuplicateWebsite}
	svc := NewService(repo, nil, logger.NewNop())

	_, err := svc.Register(context.Background(), &models.RegisterRequest{Name: "Salon", Email: "a@b.uz"})

	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestService_AuthenticateCachesLookup(t *testing.T) {
	site := &domain.Website{ID: 3, AccessToken: "tok"}
	repo := &fakeRepo{byToken: map[string]*domain.Website{"tok": site}}
	cache := &fakeCache{items: map[string]*domain.Website{}}
	svc := NewService(repo, cache, logger.NewNop())

	got, err := svc.Authenticate(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)

	_, err = svc.Authenticate(context.Background(), "tok")
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lookups)
}

func TestService_AuthenticateFallsBackOnCacheError(t *testing.T) {
	repo := &fakeRepo{byToken: map[string]*domain.Website{"tok": {ID: 3, AccessToken: "tok"}}}
	cache := &fakeCache{items: map[string]*domain.Website{}, getErr: errors.New("redis down")}
	svc := NewService(repo, cache, logger.NewNop())

	got, err := svc.Authenticate(context.Background(), "tok")

	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)
}

func TestService_AuthenticateUnknownToken(t *testing.T) {
	svc := NewService(&fakeRepo{}, nil, logger.NewNop())

	_, err := svc.Authenticate(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrUnauthorized)

	_, err = svc.Authenticate(context.Background(), "")
	assert.ErrorIs(t, err, ErrUnauthorized)
}
