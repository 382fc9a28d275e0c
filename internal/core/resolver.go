package core

import (
	"context"

	"github.com/mdobak/go-xerrors"
	"github.com/realworld-apps/conduit/internal/auth"
	"github.com/realworld-apps/conduit/internal/utils/collectionutils"
	"github.com/realworld-apps/conduit/internal/utils/functional"
	"github.com/realworld-apps/conduit/internal/views"
	"github.com/realworld-apps/conduit/models"
)

// ResolveAuthors fetches the authors of a page of articles in one round-trip
// and projects each into a profile keyed by author id. Duplicate author ids
// in the input collapse to one lookup; an empty input issues no query at all.
//
// The map may be missing an id when the author row no longer exists. Callers
// must treat that as a not-found condition for the response they are
// building, never skip the article silently.
func (c *Core) ResolveAuthors(ctx context.Context, articles []*models.Article) (map[int64]views.Profile, error) {
	authorIdList := functional.Distinct(functional.Map(articles, func(article *models.Article) int64 {
		return article.AuthorID
	}))

	authorList, err := c.GetUsersByIdList(ctx, authorIdList)
	if err != nil {
		return nil, xerrors.New(err)
	}

	return collectionutils.Associate(authorList, func(user *auth.User) (int64, views.Profile) {
		return user.ID, views.NewProfile(user)
	}), nil
}
