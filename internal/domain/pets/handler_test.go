package pets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRepo struct {
	byID  map[int64]Pet
	err   error
	calls int
}

func (r *testRepo) GetByID(ctx context.Context, id int64) (Pet, error) {
	r.calls++
	if r.err != nil {
		return Pet{}, r.err
	}
	p, ok := r.byID[id]
	if !ok {
		return Pet{}, ErrNotFound
	}
	return p, nil
}

func (r *testRepo) ListByOwner(ctx context.Context, ownerID int64) ([]Pet, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []Pet
	for _, p := range r.byID {
		if p.OwnerID != nil && *p.OwnerID == ownerID {
			out = append(out, p)
		}
	}
	return out, nil
}

func serve(t *testing.T, repo Repository, path string) *httptest.ResponseRecorder {
	t.Helper()
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(repo))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func ownerID(v int64) *int64 { return &v }

func TestGetPet_Found(t *testing.T) {
	repo := &testRepo{byID: map[int64]Pet{
		1: {ID: 1, Name: "Ben", Species: SpeciesDog, OwnerID: ownerID(1), Owner: &OwnerRef{ID: 1, Name: "Ben"}},
	}}

	rec := serve(t, repo, "/pets/1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))

	body := rec.Body.String()
	assert.Contains(t, body, "Information for Ben")
	assert.Contains(t, body, "Pet Species is Dog")
	assert.Contains(t, body, "Pet Owner is Ben")
}

func TestGetPet_NotFound(t *testing.T) {
	rec := serve(t, &testRepo{byID: map[int64]Pet{}}, "/pets/2")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "<h1>404 pet not found</h1>", rec.Body.String())
}

func TestGetPet_ZeroIDSkipsRepository(t *testing.T) {
	repo := &testRepo{byID: map[int64]Pet{}}
	rec := serve(t, repo, "/pets/0")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Zero(t, repo.calls)
}

func TestGetPet_StoreFailureIsNotA404(t *testing.T) {
	rec := serve(t, &testRepo{err: errors.New("connection refused")}, "/pets/1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "<h1>500 internal error</h1>", rec.Body.String())
}

// Los valores van tal cual, sin escapar.
func TestGetPet_NamesAreInterpolatedVerbatim(t *testing.T) {
	repo := &testRepo{byID: map[int64]Pet{
		7: {ID: 7, Name: "D'Artagnan", Species: "Dog & Co", OwnerID: ownerID(1), Owner: &OwnerRef{ID: 1, Name: "O'Neil"}},
	}}

	rec := serve(t, repo, "/pets/7")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t,
		"<h1>Information for D'Artagnan</h1><h2>Pet Species is Dog & Co</h2><h2>Pet Owner is O'Neil</h2>",
		rec.Body.String())
}

func TestRenderPet_WithoutOwner(t *testing.T) {
	got := renderPet(Pet{ID: 3, Name: "Stray", Species: SpeciesTurtle})
	assert.Equal(t, "<h1>Information for Stray</h1><h2>Pet Species is Turtle</h2>", got)
}

func TestService_ListByOwnerNeverNil(t *testing.T) {
	svc := NewService(&testRepo{byID: map[int64]Pet{}})
	items, err := svc.ListByOwner(context.Background(), 1)
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestService_WrapsNotFound(t *testing.T) {
	svc := NewService(&testRepo{byID: map[int64]Pet{}})
	_, err := svc.GetByID(context.Background(), 9)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}
