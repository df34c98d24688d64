package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/inkpress/internal/blog/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable.
type Store interface {
	Users() Users
	Posts() Posts

	ApplyMigrations() error

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store scoped to a single transaction.
type Tx interface {
	Users() Users
	Posts() Posts
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login. Returns ErrNotFound for an
	// unknown username; callers collapse that with a failed password check
	// so the two are indistinguishable to clients.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	CreateUser(ctx context.Context, u domain.User) error

	// SaveUser persists the full mutated record (everything except id and
	// created_at) and bumps updated_at. The password reset flow goes
	// through here.
	SaveUser(ctx context.Context, u domain.User) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type Posts interface {
	// GetPostBySlug returns a post by its URL slug.
	GetPostBySlug(ctx context.Context, slug string) (domain.Post, error)

	// ListPublishedPosts returns published posts, oldest first.
	ListPublishedPosts(ctx context.Context) ([]domain.Post, error)

	// CreatePost inserts a new post (id is provided by app via ULID).
	CreatePost(ctx context.Context, p domain.Post) error

	// SavePost persists the full mutated record and bumps updated_at.
	SavePost(ctx context.Context, p domain.Post) error

	// DeletePost removes a post.
	DeletePost(ctx context.Context, id string) error
}
