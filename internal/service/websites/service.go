package websites

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
	websiteCache "github.com/m04kA/SMC-SiteBookings/internal/infra/cache/website"
	websiteRepo "github.com/m04kA/SMC-SiteBookings/internal/infra/storage/website"
	"github.com/m04kA/SMC-SiteBookings/internal/service/websites/models"
)

// Service регистрация сайтов и проверка токенов доступа
type Service struct {
	repo     WebsiteRepository
	cache    WebsiteCache // nil, если Redis выключен
	tokens   TokenGenerator
	validate *validator.Validate
	logger   Logger
}

// NewService создает новый экземпляр сервиса сайтов
func NewService(repo WebsiteRepository, cache WebsiteCache, logger Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    cache,
		tokens:   RandomTokenGenerator{},
		validate: validator.New(),
		logger:   logger,
	}
}

// WithTokenGenerator подменяет генератор токенов
func (s *Service) WithTokenGenerator(g TokenGenerator) *Service {
	s.tokens = g
	return s
}

// Register регистрирует сайт и выдает ему токен доступа
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.WebsiteResponse, error) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Timezone != nil && strings.TrimSpace(*req.Timezone) == "" {
		req.Timezone = nil
	}

	if err := s.validate.Struct(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	s.logger.Info("Register: registering website name=%s", req.Name)

	token, err := s.tokens.Generate()
	if err != nil {
		s.logger.Error("Register: failed to generate token: %v", err)
		return nil, fmt.Errorf("%w: Register - generate token: %v", ErrInternal, err)
	}

	created, err := s.repo.Create(ctx, &domain.Website{
		Name:        req.Name,
		Email:       req.Email,
		AccessToken: token,
		Timezone:    req.Timezone,
	})
	if err != nil {
		if errors.Is(err, websiteRepo.ErrDuplicateWebsite) {
			s.logger.Warn("Register: website name=%s or email already registered", req.Name)
			return nil, ErrDuplicate
		}
		s.logger.Error("Register: repository error: %v", err)
		return nil, fmt.Errorf("%w: Register - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: website id=%d registered", created.ID)
	return models.FromDomainWebsite(created), nil
}

// Authenticate находит сайт по токену: сначала кэш, затем БД
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.Website, error) {
	if token == "" {
		return nil, ErrUnauthorized
	}

	if s.cache != nil {
		website, err := s.cache.Get(ctx, token)
		if err == nil {
			return website, nil
		}
		if !errors.Is(err, websiteCache.ErrCacheMiss) {
			// Redis недоступен - работаем напрямую с БД
			s.logger.Warn("Authenticate: cache error: %v", err)
		}
	}

	website, err := s.repo.GetByToken(ctx, token)
	if err != nil {
		if errors.Is(err, websiteRepo.ErrWebsiteNotFound) {
			return nil, ErrUnauthorized
		}
		s.logger.Error("Authenticate: repository error: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - repository error: %v", ErrInternal, err)
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, website); err != nil {
			s.logger.Warn("Authenticate: failed to cache website id=%d: %v", website.ID, err)
		}
	}

	return website, nil
}
