package models

import (
	"time"

	"github.com/m04kA/SMC-SiteBookings/internal/domain"
)

// RegisterRequest запрос на регистрацию сайта
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,max=255"`
	Email    string  `json:"email" validate:"required,email,max=255"`
	Timezone *string `json:"timezone,omitempty" validate:"omitempty,timezone"`
}

// WebsiteResponse зарегистрированный сайт вместе с токеном доступа
type WebsiteResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	AccessToken string    `json:"access_token"`
	Timezone    *string   `json:"timezone"`
	CreatedAt   time.Time `json:"created_at"`
}

// FromDomainWebsite конвертирует domain модель в DTO
func FromDomainWebsite(w *domain.Website) *WebsiteResponse {
	if w == nil {
		return nil
	}
	return &WebsiteResponse{
		ID:          w.ID,
		Name:        w.Name,
		Email:       w.Email,
		AccessToken: w.AccessToken,
		Timezone:    w.Timezone,
		CreatedAt:   w.CreatedAt,
	}
}
