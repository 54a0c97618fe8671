package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"jasit-store/models"
	"jasit-store/utils"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

type UserRepository struct {
	db DBTX
}

func NewUserRepository(db DBTX) *UserRepository {
	return &UserRepository{db: db}
}

// CreateWithProfile inserts the user and its profile row in one transaction.
func (r *UserRepository) CreateWithProfile(ctx context.Context, user *models.User, profile *models.UserProfile) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx, `
		INSERT INTO users (email, password, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`, user.Email, user.Password, user.Role, now, now).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return utils.Conflict("Email sudah terdaftar")
		}
		return fmt.Errorf("insert user: %w", err)
	}

	profile.UserID = user.ID
	_, err = tx.Exec(ctx, `
		INSERT INTO user_profiles (user_id, full_name, phone, company, address, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, profile.UserID, profile.FullName, profile.Phone, profile.Company, profile.Address, now)
	if err != nil {
		return fmt.Errorf("insert profile: %w", err)
	}
	profile.UpdatedAt = now

	return tx.Commit(ctx)
}

func (r *UserRepository) findOne(ctx context.Context, where string, arg any) (*models.User, error) {
	user := &models.User{}
	err := r.db.QueryRow(ctx,
		`SELECT id, email, password, role, created_at, updated_at FROM users WHERE `+where, arg,
	).Scan(&user.ID, &user.Email, &user.Password, &user.Role, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFound("Pengguna tidak ditemukan")
	}
	if err != nil {
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return r.findOne(ctx, "email = $1", email)
}

func (r *UserRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	return r.findOne(ctx, "id = $1", id)
}

func (r *UserRepository) GetUserWithProfile(ctx context.Context, userID int) (*models.UserWithProfile, error) {
	query := `
		SELECT
			u.id, u.email, u.role, u.created_at,
			COALESCE(up.full_name, ''),
			COALESCE(up.phone, ''),
			COALESCE(up.company, ''),
			COALESCE(up.address, '')
		FROM users u
		LEFT JOIN user_profiles up ON u.id = up.user_id
		WHERE u.id = $1
	`

	user := &models.UserWithProfile{}
	err := r.db.QueryRow(ctx, query, userID).Scan(
		&user.ID, &user.Email, &user.Role, &user.CreatedAt,
		&user.FullName, &user.Phone, &user.Company, &user.Address,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, utils.NotFound("Pengguna tidak ditemukan")
	}
	if err != nil {
		return nil, fmt.Errorf("get user with profile: %w", err)
	}
	return user, nil
}

func (r *UserRepository) UpsertProfile(ctx context.Context, profile *models.UserProfile) error {
	now := time.Now()
	_, err := r.db.Exec(ctx, `
		INSERT INTO user_profiles (user_id, full_name, phone, company, address, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id) DO UPDATE
		SET full_name = EXCLUDED.full_name, phone = EXCLUDED.phone, company = EXCLUDED.company,
		    address = EXCLUDED.address, updated_at = EXCLUDED.updated_at
	`, profile.UserID, profile.FullName, profile.Phone, profile.Company, profile.Address, now)
	if err != nil {
		return fmt.Errorf("upsert profile: %w", err)
	}
	profile.UpdatedAt = now
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, userID int, hashedPassword string) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password = $1, updated_at = $2 WHERE id = $3`,
		hashedPassword, time.Now(), userID)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return utils.NotFound("Pengguna tidak ditemukan")
	}
	return nil
}
