package core

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/mdobak/go-xerrors"
	"github.com/realworld-apps/conduit/internal/filter"
	"github.com/realworld-apps/conduit/internal/utils/databaseutils"
	"github.com/realworld-apps/conduit/models"
)

var ErrDuplicatedSlug = xerrors.Message("Duplicate slug")

func scanArticle(rows *sql.Rows) (*models.Article, error) {
	article := &models.Article{}
	if err := rows.Scan(
		&article.ID,
		&article.AuthorID,
		&article.Slug,
		&article.Title,
		&article.Description,
		&article.Body,
		&article.CreatedAt,
		&article.UpdatedAt,
	); err != nil {
		return nil, xerrors.New(err)
	}
	return article, nil
}

// CreateArticle inserts the article inside its own transaction. Either the
// row exists with a valid author_id after the commit, or nothing is
// persisted. A losing slug race surfaces as ErrDuplicatedSlug.
func (c *Core) CreateArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	createdArticle, err := databaseutils.DoTransactionally(ctx, c.session, func(txCtx context.Context) (*models.Article, error) {
		return c.insertArticle(txCtx, article)
	})
	if err != nil {
		return nil, err
	}

	c.log.Info("Article created", "slug", createdArticle.Slug, "author_id", createdArticle.AuthorID)
	return createdArticle, nil
}

func (c *Core) insertArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	const insertSQL = `
		INSERT INTO articles (author_id, slug, title, description, body, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, now(), now())
		RETURNING id, author_id, slug, title, description, body, created_at, updated_at
	`

	args := []any{article.AuthorID, article.Slug, article.Title, article.Description, article.Body}
	createdArticle, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, insertSQL, scanArticle, args...)
	if err != nil {
		switch {
		case strings.Contains(err.Error(), `duplicate key value violates unique constraint`):
			return nil, xerrors.New(ErrDuplicatedSlug)
		default:
			return nil, xerrors.New(err)
		}
	}

	return createdArticle, nil
}

func (c *Core) GetArticleBySlug(ctx context.Context, slug string) (*models.Article, error) {
	const selectSQL = `
		SELECT id, author_id, slug, title, description, body, created_at, updated_at
		FROM articles
		WHERE slug = $1
	`

	article, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, selectSQL, scanArticle, slug)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		default:
			return nil, xerrors.New(err)
		}
	}

	return article, nil
}

// GetRecentArticles returns one page of articles ordered by creation time,
// newest first. Equal timestamps are broken by descending id so repeated
// calls with the same filter page consistently.
func (c *Core) GetRecentArticles(ctx context.Context, filters filter.Filter) ([]*models.Article, error) {
	const selectSQL = `
		SELECT id, author_id, slug, title, description, body, created_at, updated_at
		FROM articles
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`

	articles, err := databaseutils.ExecuteQuery(c.sqlTemplate, ctx, selectSQL, scanArticle, filters.Limit, filters.Offset)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return articles, nil
}

// CountArticles reports the total number of stored articles, independent of
// any page window.
func (c *Core) CountArticles(ctx context.Context) (int64, error) {
	const countSQL = `
		SELECT COUNT(*) FROM articles
	`

	count, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, countSQL, func(rows *sql.Rows) (int64, error) {
		var total int64
		if err := rows.Scan(&total); err != nil {
			return 0, xerrors.New(err)
		}
		return total, nil
	})
	if err != nil {
		return 0, xerrors.New(err)
	}

	return count, nil
}

func (c *Core) UpdateArticle(ctx context.Context, article *models.Article) (*models.Article, error) {
	const updateSQL = `
		UPDATE articles
		SET slug = $1, title = $2, description = $3, body = $4, updated_at = now()
		WHERE id = $5
		RETURNING id, author_id, slug, title, description, body, created_at, updated_at
	`

	args := []any{article.Slug, article.Title, article.Description, article.Body, article.ID}
	updatedArticle, err := databaseutils.ExecuteSingleQuery(c.sqlTemplate, ctx, updateSQL, scanArticle, args...)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, xerrors.New(NoRecordFound)
		case strings.Contains(err.Error(), `duplicate key value violates unique constraint`):
			return nil, xerrors.New(ErrDuplicatedSlug)
		default:
			return nil, xerrors.New(err)
		}
	}

	return updatedArticle, nil
}

func (c *Core) DeleteArticleBySlug(ctx context.Context, slug string) error {
	const deleteSQL = `
		DELETE FROM articles WHERE slug = $1
	`

	affected, err := databaseutils.ExecuteUpdate(c.sqlTemplate, ctx, deleteSQL, slug)
	if err != nil {
		return xerrors.New(err)
	}

	if affected == 0 {
		return xerrors.New(NoRecordFound)
	}

	return nil
}
