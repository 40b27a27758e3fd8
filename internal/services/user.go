package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/prasetya/melodia-api/internal/database"
	"github.com/prasetya/melodia-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredential = errors.New("invalid username or password")

type UserService struct {
	db *database.DB
}

func NewUserService(db *database.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) Register(ctx context.Context, username, password, fullname string) (*models.User, error) {
	var exists bool
	err := s.db.Pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM users WHERE username = $1)
	`, username).Scan(&exists)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("username is already taken: %w", ErrInvariant)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var user models.User
	err = s.db.Pool.QueryRow(ctx, `
		INSERT INTO users (username, password_hash, fullname)
		VALUES ($1, $2, $3)
		RETURNING id, username, fullname, created_at
	`, username, string(hash), fullname).Scan(
		&user.ID, &user.Username, &user.Fullname, &user.CreatedAt,
	)
	if err != nil {
		// Two concurrent registrations can both pass the existence check;
		// the loser hits the unique constraint instead.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, fmt.Errorf("username is already taken: %w", ErrInvariant)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return &user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, username, fullname, created_at FROM users WHERE id = $1
	`, id).Scan(&user.ID, &user.Username, &user.Fullname, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, username, fullname, created_at FROM users WHERE username = $1
	`, username).Scan(&user.ID, &user.Username, &user.Fullname, &user.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("user not found: %w", ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// VerifyCredential checks a username/password pair and returns the user id.
// Unknown usernames and wrong passwords are indistinguishable to the caller.
func (s *UserService) VerifyCredential(ctx context.Context, username, password string) (uuid.UUID, error) {
	var id uuid.UUID
	var hash string
	err := s.db.Pool.QueryRow(ctx, `
		SELECT id, password_hash FROM users WHERE username = $1
	`, username).Scan(&id, &hash)
	if errors.Is(err, pgx.ErrNoRows) {
		return uuid.Nil, ErrInvalidCredential
	}
	if err != nil {
		return uuid.Nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return uuid.Nil, ErrInvalidCredential
	}
	return id, nil
}
