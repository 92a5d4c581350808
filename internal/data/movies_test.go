package data

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hafizmfadli/movie-catalog/internal/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(n int64) *int64 { return &n }

func TestMovieLifecycle(t *testing.T) {
	ctx := context.Background()
	models := NewModels(newTestDB(t))

	nolan := &Director{Name: "Nolan"}
	require.NoError(t, models.Directors.Insert(ctx, nolan))
	scifi := &Genre{Name: "Sci-Fi"}
	require.NoError(t, models.Genres.Insert(ctx, scifi))

	movie := &Movie{
		Title:       "Inception",
		Description: "A thief who steals corporate secrets through dream-sharing.",
		Trailer:     "https://example.com/inception",
		Year:        2010,
		Rating:      8.8,
		GenreID:     &scifi.ID,
		DirectorID:  &nolan.ID,
	}
	require.NoError(t, models.Movies.Insert(ctx, movie))
	require.NotZero(t, movie.ID)

	got, err := models.Movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, movie, got)

	title := "Inception (2010)"
	rating := 9.0
	require.NoError(t, models.Movies.Update(ctx, movie.ID, MovieUpdate{Title: &title, Rating: &rating}))

	got, err = models.Movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, title, got.Title)
	assert.Equal(t, rating, got.Rating)
	assert.Equal(t, movie.Description, got.Description)

	require.NoError(t, models.Movies.Delete(ctx, movie.ID))
	_, err = models.Movies.Get(ctx, movie.ID)
	assert.ErrorIs(t, err, ErrRecordNotFound)
	assert.ErrorIs(t, models.Movies.Delete(ctx, movie.ID), ErrRecordNotFound)
}

func TestMovieOmittedFieldsReadBackAsZeroValues(t *testing.T) {
	ctx := context.Background()
	models := NewModels(newTestDB(t))

	movie := &Movie{Title: "Untitled"}
	require.NoError(t, models.Movies.Insert(ctx, movie))

	got, err := models.Movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Equal(t, "", got.Description)
	assert.Zero(t, got.Year)
	assert.Nil(t, got.DirectorID)
	assert.Nil(t, got.GenreID)
}

func TestMovieGetAllFilters(t *testing.T) {
	ctx := context.Background()
	models := NewModels(newTestDB(t))

	nolan := &Director{Name: "Nolan"}
	villeneuve := &Director{Name: "Villeneuve"}
	drama := &Genre{Name: "Drama"}
	scifi := &Genre{Name: "Sci-Fi"}
	for _, d := range []*Director{nolan, villeneuve} {
		require.NoError(t, models.Directors.Insert(ctx, d))
	}
	for _, g := range []*Genre{drama, scifi} {
		require.NoError(t, models.Genres.Insert(ctx, g))
	}

	fixtures := []*Movie{
		{Title: "Inception", DirectorID: &nolan.ID, GenreID: &scifi.ID},
		{Title: "Oppenheimer", DirectorID: &nolan.ID, GenreID: &drama.ID},
		{Title: "Arrival", DirectorID: &villeneuve.ID, GenreID: &scifi.ID},
		{Title: "Orphan"},
	}
	for _, m := range fixtures {
		require.NoError(t, models.Movies.Insert(ctx, m))
	}

	titles := func(movies []*Movie) []string {
		out := make([]string, 0, len(movies))
		for _, m := range movies {
			out = append(out, m.Title)
		}
		return out
	}

	tests := []struct {
		name    string
		filters MovieFilters
		want    []string
	}{
		{"none", MovieFilters{}, []string{"Inception", "Oppenheimer", "Arrival", "Orphan"}},
		{"director", MovieFilters{DirectorID: &nolan.ID}, []string{"Inception", "Oppenheimer"}},
		{"genre", MovieFilters{GenreID: &scifi.ID}, []string{"Inception", "Arrival"}},
		{"director and genre", MovieFilters{DirectorID: &nolan.ID, GenreID: &scifi.ID}, []string{"Inception"}},
		{"no match", MovieFilters{DirectorID: int64Ptr(999)}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			movies, err := models.Movies.GetAll(ctx, tt.filters)
			require.NoError(t, err)
			require.NotNil(t, movies)
			assert.Equal(t, tt.want, titles(movies))
		})
	}
}

func TestMovieInvalidReference(t *testing.T) {
	ctx := context.Background()
	models := NewModels(newTestDB(t))

	err := models.Movies.Insert(ctx, &Movie{Title: "Ghost", DirectorID: int64Ptr(404)})
	assert.ErrorIs(t, err, ErrInvalidReference)

	movie := &Movie{Title: "Real"}
	require.NoError(t, models.Movies.Insert(ctx, movie))

	err = models.Movies.Update(ctx, movie.ID, MovieUpdate{GenreID: Reference{Set: true, ID: int64Ptr(404)}})
	assert.ErrorIs(t, err, ErrInvalidReference)
}

func TestMovieUpdateMissingRow(t *testing.T) {
	ctx := context.Background()
	models := NewModels(newTestDB(t))

	title := "Nothing"
	assert.ErrorIs(t, models.Movies.Update(ctx, 12345, MovieUpdate{Title: &title}), ErrNotUpdated)
	assert.ErrorIs(t, models.Movies.Update(ctx, 12345, MovieUpdate{}), ErrNotUpdated)
}

func TestDeletingDirectorNullsMovieReference(t *testing.T) {
	ctx := context.Background()
	models := NewModels(newTestDB(t))

	nolan := &Director{Name: "Nolan"}
	require.NoError(t, models.Directors.Insert(ctx, nolan))
	movie := &Movie{Title: "Tenet", DirectorID: &nolan.ID}
	require.NoError(t, models.Movies.Insert(ctx, movie))

	require.NoError(t, models.Directors.Delete(ctx, nolan.ID))

	got, err := models.Movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Nil(t, got.DirectorID)
}

func TestMovieUpdateClearsReferenceWithNull(t *testing.T) {
	ctx := context.Background()
	models := NewModels(newTestDB(t))

	drama := &Genre{Name: "Drama"}
	require.NoError(t, models.Genres.Insert(ctx, drama))
	movie := &Movie{Title: "Heat", GenreID: &drama.ID}
	require.NoError(t, models.Movies.Insert(ctx, movie))

	var update MovieUpdate
	require.NoError(t, json.Unmarshal([]byte(`{"genre_id": null}`), &update))
	require.True(t, update.GenreID.Set)
	require.False(t, update.DirectorID.Set)

	require.NoError(t, models.Movies.Update(ctx, movie.ID, update))

	got, err := models.Movies.Get(ctx, movie.ID)
	require.NoError(t, err)
	assert.Nil(t, got.GenreID)
}

func TestReferenceUnmarshal(t *testing.T) {
	var r Reference
	require.NoError(t, json.Unmarshal([]byte(`7`), &r))
	assert.True(t, r.Set)
	require.NotNil(t, r.ID)
	assert.EqualValues(t, 7, *r.ID)

	assert.Error(t, json.Unmarshal([]byte(`"seven"`), &r))
}

func TestValidateMovie(t *testing.T) {
	tests := []struct {
		name   string
		movie  Movie
		fields []string
	}{
		{"valid", Movie{Title: "Inception", Year: 2010, Rating: 8.8}, nil},
		{"unknown year", Movie{Title: "Lost reel"}, nil},
		{"too early", Movie{Year: 1700}, []string{"year"}},
		{"too late", Movie{Year: 3000}, []string{"year"}},
		{"rating range", Movie{Rating: 11}, []string{"rating"}},
		{"negative rating", Movie{Rating: -1}, []string{"rating"}},
		{"bad references", Movie{DirectorID: int64Ptr(0), GenreID: int64Ptr(-3)}, []string{"director_id", "genre_id"}},
		{"long title", Movie{Title: string(make([]byte, 256))}, []string{"title"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := validator.New()
			ValidateMovie(v, &tt.movie)

			keys := make([]string, 0, len(v.Errors))
			for k := range v.Errors {
				keys = append(keys, k)
			}
			assert.ElementsMatch(t, tt.fields, keys)
		})
	}
}

func TestValidateMovieUpdateChecksOnlyPresentFields(t *testing.T) {
	v := validator.New()
	ValidateMovieUpdate(v, MovieUpdate{})
	assert.True(t, v.Valid())

	year := int32(1500)
	v = validator.New()
	ValidateMovieUpdate(v, MovieUpdate{Year: &year})
	assert.Contains(t, v.Errors, "year")
}
