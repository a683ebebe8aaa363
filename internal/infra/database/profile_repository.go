package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type ProfileRepository struct {
	DB *sql.DB
}

func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) FindByID(ctx context.Context, id string) (*entity.Profile, error) {
	query := `
		SELECT id, email, full_name, role, timezone, email_notifications
		FROM profiles
		WHERE id = $1
	`

	var p entity.Profile
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Email,
		&p.FullName,
		&p.Role,
		&p.Timezone,
		&p.EmailNotifications,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find profile %s: %w", id, err)
	}
	return &p, nil
}

// PostgresPinger adapts the pool to the health check.
type PostgresPinger struct {
	DB *sql.DB
}

func (p PostgresPinger) Ping(ctx context.Context) error {
	return p.DB.PingContext(ctx)
}
