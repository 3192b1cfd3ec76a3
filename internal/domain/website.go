package domain

import "time"

// Website represents a registered API consumer (tenant)
type Website struct {
	ID          int64
	Name        string
	Email       string
	AccessToken string
	Timezone    *string // NULL = service default timezone
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Location returns the website timezone or fallback when it is not set or cannot be loaded
func (w *Website) Location(fallback *time.Location) *time.Location {
	if w.Timezone == nil || *w.Timezone == "" {
		return fallback
	}
	loc, err := time.LoadLocation(*w.Timezone)
	if err != nil {
		return fallback
	}
	return loc
}
