package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/inkpress/internal/blog/domain"
	"github.com/aussiebroadwan/inkpress/internal/blog/store"
)

type postsRepo struct {
	q querier
}

const postColumns = `id, title, contents, slug, author_id, published, created_at, updated_at`

func (r *postsRepo) GetPostBySlug(ctx context.Context, slug string) (domain.Post, error) {
	row := r.q.QueryRowContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE slug = ?`, slug)

	var p domain.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Contents, &p.Slug, &p.AuthorID, &p.Published,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return domain.Post{}, mapNotFound(err)
	}
	return p, nil
}

func (r *postsRepo) ListPublishedPosts(ctx context.Context) ([]domain.Post, error) {
	rows, err := r.q.QueryContext(ctx,
		`SELECT `+postColumns+` FROM posts WHERE published = 1 ORDER BY created_at ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []domain.Post
	for rows.Next() {
		var p domain.Post
		err := rows.Scan(
			&p.ID, &p.Title, &p.Contents, &p.Slug, &p.AuthorID, &p.Published,
			&p.CreatedAt, &p.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		posts = append(posts, p)
	}
	return posts, rows.Err()
}

func (r *postsRepo) CreatePost(ctx context.Context, p domain.Post) error {
	now := time.Now().UTC()
	_, err := r.q.ExecContext(ctx,
		`INSERT INTO posts (id, title, contents, slug, author_id, published, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Title, p.Contents, p.Slug, p.AuthorID, p.Published, now, now)
	if err != nil && isUniqueViolation(err) {
		return store.ErrAlreadyExists
	}
	return err
}

func (r *postsRepo) SavePost(ctx context.Context, p domain.Post) error {
	res, err := r.q.ExecContext(ctx,
		`UPDATE posts
		 SET title = ?, contents = ?, slug = ?, author_id = ?, published = ?, updated_at = ?
		 WHERE id = ?`,
		p.Title, p.Contents, p.Slug, p.AuthorID, p.Published, time.Now().UTC(), p.ID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (r *postsRepo) DeletePost(ctx context.Context, id string) error {
	_, err := r.q.ExecContext(ctx, `DELETE FROM posts WHERE id = ?`, id)
	return err
}
