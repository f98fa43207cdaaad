package main

import (
	"fmt"
	"mozi/proj/internal/domain/models"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMoviesHandler(t *testing.T) {
	app, stores := NewTestApplication(nil, t)
	handler := app.routes()
	movie := seedMovie(t, stores)

	t.Run("default listing needs no parameters", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodGet, "/api/v1/movies/", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		resp := decodeResponse(t, recorder)
		assert.Equal(t, float64(1), resp.Data["total_records"])
		assert.Len(t, resp.Data["movies"].([]any), 1)
	})
	t.Run("every safelisted sort value is accepted", func(t *testing.T) {
		for _, sort := range movieSortSafelist {
			for _, prefix := range []string{"", "-"} {
				recorder := doJSONRequest(t, handler, http.MethodGet, "/api/v1/movies/?sort="+prefix+sort, "", nil)
				assert.Equalf(t, http.StatusOK, recorder.Code, "sort=%s%s: %s", prefix, sort, recorder.Body.String())
			}
		}
	})
	t.Run("unknown sort value gets 422", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodGet, "/api/v1/movies/?sort=bogus", "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
	t.Run("category filter", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodGet, fmt.Sprintf("/api/v1/movies/?category_id=%d", movie.CategoryID), "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Len(t, decodeResponse(t, recorder).Data["movies"].([]any), 1)

		recorder = doJSONRequest(t, handler, http.MethodGet, "/api/v1/movies/?category_id=999", "", nil)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Empty(t, decodeResponse(t, recorder).Data["movies"])
	})
	t.Run("page below one gets 422", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodGet, "/api/v1/movies/?page=0", "", nil)
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
}

func TestCreateMovieHandler(t *testing.T) {
	app, stores := NewTestApplication(nil, t)
	handler := app.routes()
	movie := seedMovie(t, stores)
	_, viewerToken := seedUser(t, app, stores, "viewer@example.com", models.RoleViewer)
	_, editorToken := seedUser(t, app, stores, "editor@example.com", models.RoleEditor)

	body := func(categoryID int64) map[string]any {
		return map[string]any{
			"title": "Chinatown", "release_date": "1974-06-20", "category_id": categoryID,
		}
	}

	t.Run("no token gets 401", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodPost, "/api/v1/movies/", "", body(movie.CategoryID))
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
	t.Run("viewer gets 403", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodPost, "/api/v1/movies/", viewerToken, body(movie.CategoryID))
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})
	t.Run("editor creates", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodPost, "/api/v1/movies/", editorToken, body(movie.CategoryID))
		require.Equal(t, http.StatusCreated, recorder.Code, recorder.Body.String())
		created := decodeResponse(t, recorder).Data["movie"].(map[string]any)
		assert.Equal(t, "Chinatown", created["title"])
	})
	t.Run("unknown category gets 422", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodPost, "/api/v1/movies/", editorToken, body(999))
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
	t.Run("malformed release date gets 422", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodPost, "/api/v1/movies/", editorToken, map[string]any{
			"title": "Chinatown", "release_date": "20-06-1974", "category_id": movie.CategoryID,
		})
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
}

func TestUpdateMovieHandler(t *testing.T) {
	app, stores := NewTestApplication(nil, t)
	handler := app.routes()
	movie := seedMovie(t, stores)
	_, editorToken := seedUser(t, app, stores, "editor@example.com", models.RoleEditor)
	path := fmt.Sprintf("/api/v1/movies/%d", movie.ID)

	t.Run("editor patches the title", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodPatch, path, editorToken, map[string]any{"title": "Renamed"})
		require.Equal(t, http.StatusOK, recorder.Code, recorder.Body.String())
		updated := decodeResponse(t, recorder).Data["movie"].(map[string]any)
		assert.Equal(t, "Renamed", updated["title"])
	})
	t.Run("unknown category gets 422, not 404", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodPatch, path, editorToken, map[string]any{"category_id": 999})
		assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	})
	t.Run("missing movie gets 404", func(t *testing.T) {
		recorder := doJSONRequest(t, handler, http.MethodPatch, "/api/v1/movies/999", editorToken, map[string]any{"title": "Renamed"})
		assert.Equal(t, http.StatusNotFound, recorder.Code)
	})
}
