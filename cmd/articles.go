package main

import (
	"errors"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/realworld-apps/conduit/internal/core"
	"github.com/realworld-apps/conduit/internal/filter"
	"github.com/realworld-apps/conduit/internal/validator"
	"github.com/realworld-apps/conduit/internal/views"
	"github.com/realworld-apps/conduit/models"
)

const maxTitleLength = 200

func (app *application) listArticles(w http.ResponseWriter, r *http.Request) {
	v := validator.New()
	query := r.URL.Query()

	limit := app.readInt(query, "limit", filter.DefaultLimit, v)
	offset := app.readInt(query, "offset", 0, v)

	if !v.IsValid() {
		app.failedValidationResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	filters := filter.NewFilter(limit, offset).Normalized()

	articles, err := app.core.GetRecentArticles(r.Context(), filters)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	authorById, err := app.core.ResolveAuthors(r.Context(), articles)
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	articleViews := []views.CompactArticle{}
	for _, article := range articles {
		author, ok := authorById[article.AuthorID]
		if !ok {
			// The author row is gone while its article is still listed.
			// Fail the whole page rather than serve it incomplete.
			app.notFoundResponse(w, r)
			return
		}
		articleViews = append(articleViews, views.NewCompactArticle(article, author))
	}

	totalCount, err := app.core.CountArticles(r.Context())
	if err != nil {
		app.internalErrorResponse(w, r, err)
		return
	}

	response := envelope{
		"articles":      articleViews,
		"articlesCount": totalCount,
	}

	if err := app.writeJSON(w, http.StatusOK, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) getArticle(w http.ResponseWriter, r *http.Request) {
	slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

	article, err := app.core.GetArticleBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	author, err := app.core.GetUserByID(r.Context(), article.AuthorID)
	if err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	response := articleResponse(article, views.NewProfile(author))
	if err := app.writeJSON(w, http.StatusOK, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) createArticle(w http.ResponseWriter, r *http.Request) {
	type input struct {
		Title       string  `json:"title"`
		Description *string `json:"description"`
		Body        string  `json:"body"`
	}

	type CreateArticleRequest struct {
		input `json:"article"`
	}

	var requestPayload CreateArticleRequest

	if err := app.readJSON(w, r, &requestPayload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	user, err := app.auth.GetAuthenticatedUser(r)
	if err != nil {
		app.authenticationRequiredResponse(w, r, err)
		return
	}

	slug := core.CreateSlug(requestPayload.Title)

	v := validator.New()
	v.CheckNotBlank(requestPayload.Title, "title", "must be provided")
	v.CheckMaxLength(requestPayload.Title, maxTitleLength, "title", "must not be more than 200 characters long")
	v.Check(slug != "", "title", "must contain at least one letter or digit")
	v.CheckNotBlank(requestPayload.Body, "body", "must be provided")

	if !v.IsValid() {
		app.failedValidationResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	article, err := app.core.CreateArticle(r.Context(), &models.Article{
		AuthorID:    user.ID,
		Slug:        slug,
		Title:       requestPayload.Title,
		Description: requestPayload.Description,
		Body:        requestPayload.Body,
	})

	if err != nil {
		switch {
		case errors.Is(err, core.ErrDuplicatedSlug):
			v.AddError("slug", "An article with this slug already exists")
			app.conflictResponse(w, r, &AppError{ErrorDetails: v.Errors, ErrorStack: err})
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	response := articleResponse(article, views.NewProfile(user))
	if err := app.writeJSON(w, http.StatusCreated, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) updateArticle(w http.ResponseWriter, r *http.Request) {
	type input struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Body        *string `json:"body"`
	}

	type UpdateArticleRequest struct {
		input `json:"article"`
	}

	var requestPayload UpdateArticleRequest

	if err := app.readJSON(w, r, &requestPayload); err != nil {
		app.badRequestResponse(w, r, &AppError{
			ErrorMessage: err.Error(),
			ErrorStack:   err,
		})
		return
	}

	slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")
	article, err := app.core.GetArticleBySlug(r.Context(), slug)
	if err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	v := validator.New()
	if requestPayload.Title != nil {
		v.CheckNotBlank(*requestPayload.Title, "title", "must be provided")
		v.CheckMaxLength(*requestPayload.Title, maxTitleLength, "title", "must not be more than 200 characters long")
		v.Check(core.CreateSlug(*requestPayload.Title) != "", "title", "must contain at least one letter or digit")
	}
	if requestPayload.Body != nil {
		v.CheckNotBlank(*requestPayload.Body, "body", "must be provided")
	}

	if !v.IsValid() {
		app.failedValidationResponse(w, r, &AppError{ErrorDetails: v.Errors})
		return
	}

	if requestPayload.Title != nil {
		article.Title = *requestPayload.Title
		article.Slug = core.CreateSlug(*requestPayload.Title)
	}
	if requestPayload.Description != nil {
		article.Description = requestPayload.Description
	}
	if requestPayload.Body != nil {
		article.Body = *requestPayload.Body
	}

	updatedArticle, err := app.core.UpdateArticle(r.Context(), article)
	if err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundResponse(w, r)
		case errors.Is(err, core.ErrDuplicatedSlug):
			v.AddError("slug", "An article with this slug already exists")
			app.conflictResponse(w, r, &AppError{ErrorDetails: v.Errors, ErrorStack: err})
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	author, err := app.core.GetUserByID(r.Context(), updatedArticle.AuthorID)
	if err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	response := articleResponse(updatedArticle, views.NewProfile(author))
	if err := app.writeJSON(w, http.StatusOK, response, nil); err != nil {
		app.internalErrorResponse(w, r, err)
	}
}

func (app *application) deleteArticle(w http.ResponseWriter, r *http.Request) {
	slug := httprouter.ParamsFromContext(r.Context()).ByName("slug")

	if err := app.core.DeleteArticleBySlug(r.Context(), slug); err != nil {
		switch {
		case errors.Is(err, core.NoRecordFound):
			app.notFoundResponse(w, r)
		default:
			app.internalErrorResponse(w, r, err)
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func articleResponse(article *models.Article, author views.Profile) envelope {
	return envelope{
		"article": views.NewArticle(article, author),
	}
}
