package entity

import (
	"context"
	"database/sql"
)

const (
	DefaultRole     = "user"
	DefaultTimezone = "UTC"
)

// Profile is a row of the profiles table. Every column but id may be null.
type Profile struct {
	ID                 string
	Email              sql.NullString
	FullName           sql.NullString
	Role               sql.NullString
	Timezone           sql.NullString
	EmailNotifications sql.NullBool
}

type UserInfo struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	FullName           string `json:"full_name,omitempty"`
	Role               string `json:"role"`
	Timezone           string `json:"timezone"`
	EmailNotifications bool   `json:"email_notifications"`
}

// MergeProfile builds the user info returned on login. p may be nil when the
// user has no profile row yet.
func MergeProfile(userID, email string, p *Profile) UserInfo {
	info := UserInfo{
		ID:                 userID,
		Email:              email,
		Role:               DefaultRole,
		Timezone:           DefaultTimezone,
		EmailNotifications: true,
	}
	if p == nil {
		return info
	}

	if p.Email.Valid && p.Email.String != "" && info.Email == "" {
		info.Email = p.Email.String
	}
	if p.FullName.Valid {
		info.FullName = p.FullName.String
	}
	if p.Role.Valid && p.Role.String != "" {
		info.Role = p.Role.String
	}
	if p.Timezone.Valid && p.Timezone.String != "" {
		info.Timezone = p.Timezone.String
	}
	if p.EmailNotifications.Valid {
		info.EmailNotifications = p.EmailNotifications.Bool
	}
	return info
}

type ProfileRepositoryInterface interface {
	FindByID(ctx context.Context, id string) (*Profile, error)
}
