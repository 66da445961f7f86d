package pets

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	items   []Pet
	findErr error
	addErr  error
}

func newTestRepo() *testRepo {
	return &testRepo{items: SeedPets()}
}

func (r *testRepo) FindByID(ctx context.Context, id int) (Pet, error) {
	if r.findErr != nil {
		return Pet{}, r.findErr
	}
	for _, p := range r.items {
		if p.ID == id {
			return p, nil
		}
	}
	return Pet{}, ErrNotFound
}

func (r *testRepo) Add(ctx context.Context, p Pet) error {
	if r.addErr != nil {
		return r.addErr
	}
	r.items = append(r.items, p)
	return nil
}

func newTestRouter(repo *testRepo) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewService(repo, nil), nil)
	return r
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestGetPet_OK(t *testing.T) {
	h := newTestRouter(newTestRepo())

	rec := do(t, h, http.MethodGet, "/pet/1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get(PetIDHeader); got != "1" {
		t.Fatalf("expected x-pet-id=1, got %q", got)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected application/json, got %q", ct)
	}
	if got := rec.Body.String(); got != `{"id":1,"name":"Fufi","tag":"ABC"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestGetPet_NoTagOmitted(t *testing.T) {
	h := newTestRouter(newTestRepo())

	rec := do(t, h, http.MethodGet, "/pet/3", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"id":3,"name":"Puffa"}` {
		t.Fatalf("unexpected body: %s", got)
	}
}

func TestGetPet_BadID(t *testing.T) {
	h := newTestRouter(newTestRepo())

	for _, id := range []string{"bad", "1.5", "1e3", "0x10", "abc1", "-", "2147483648", "99999999999999999999"} {
		t.Run(id, func(t *testing.T) {
			rec := do(t, h, http.MethodGet, "/pet/"+id, "")
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400 for %q, got %d", id, rec.Code)
			}
			if rec.Body.Len() != 0 {
				t.Fatalf("expected empty body, got %q", rec.Body.String())
			}
		})
	}
}

func TestGetPet_NotFound(t *testing.T) {
	h := newTestRouter(newTestRepo())

	for _, id := range []string{"0", "5", "10", "-1", "2147483647"} {
		rec := do(t, h, http.MethodGet, "/pet/"+id, "")
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404 for %s, got %d", id, rec.Code)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("expected empty body, got %q", rec.Body.String())
		}
		if rec.Header().Get(PetIDHeader) != "" {
			t.Fatalf("x-pet-id must not be set on 404")
		}
	}
}

func TestGetPet_MissingParam(t *testing.T) {
	// Llamada directa sin route context: URLParam vacío.
	h := getPetHandler(NewService(newTestRepo(), nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/pet/", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, chi.NewRouteContext()))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetPet_RepoError(t *testing.T) {
	repo := newTestRepo()
	repo.findErr = errors.New("db down")
	h := newTestRouter(repo)

	rec := do(t, h, http.MethodGet, "/pet/1", "")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
}

func TestCreatePet_Accepted(t *testing.T) {
	repo := newTestRepo()
	h := newTestRouter(repo)

	rec := do(t, h, http.MethodPost, "/pet", `{"id":5,"name":"Pippo"}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected empty body, got %q", rec.Body.String())
	}
	if rec.Header().Get("Location") != "" {
		t.Fatalf("no Location header expected")
	}

	if len(repo.items) != 5 {
		t.Fatalf("expected 5 pets, got %d", len(repo.items))
	}
	if got := repo.items[4]; got != (Pet{ID: 5, Name: "Pippo"}) {
		t.Fatalf("unexpected stored pet: %+v", got)
	}
}

func TestCreatePet_UnknownFieldsIgnored(t *testing.T) {
	repo := newTestRepo()
	h := newTestRouter(repo)

	rec := do(t, h, http.MethodPost, "/pet", `{"id":6,"name":"Tom","tag":"CAT","color":"grey"}`)
	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	if got := repo.items[len(repo.items)-1]; got != (Pet{ID: 6, Name: "Tom", Tag: "CAT"}) {
		t.Fatalf("unexpected stored pet: %+v", got)
	}
}

func TestCreatePet_BadBody(t *testing.T) {
	cases := map[string]string{
		"malformed":      `{"id":5,`,
		"not object":     `[1,2]`,
		"null":           `null`,
		"missing id":     `{"name":"Pippo"}`,
		"missing name":   `{"id":5}`,
		"blank name":     `{"id":5,"name":"  "}`,
		"id as string":   `{"id":"5","name":"Pippo"}`,
		"trailing data":  `{"id":5,"name":"Pippo"} {"id":6}`,
		"id over int32":  `{"id":2147483648,"name":"X"}`,
		"id below int32": `{"id":-2147483649,"name":"X"}`,
		"huge id":        `{"id":3000000000,"name":"Big"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			repo := newTestRepo()
			h := newTestRouter(repo)

			rec := do(t, h, http.MethodPost, "/pet", body)
			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			if rec.Body.Len() != 0 {
				t.Fatalf("expected empty body, got %q", rec.Body.String())
			}
			if len(repo.items) != 4 {
				t.Fatalf("store must not grow, got %d", len(repo.items))
			}
		})
	}
}

func TestCreatePet_RepoError(t *testing.T) {
	repo := newTestRepo()
	repo.addErr = errors.New("disk full")
	h := newTestRouter(repo)

	rec := do(t, h, http.MethodPost, "/pet", `{"id":5,"name":"Pippo"}`)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
}

func TestCreatePet_DuplicateThenGetFirst(t *testing.T) {
	h := newTestRouter(newTestRepo())

	for _, body := range []string{`{"id":8,"name":"Primero"}`, `{"id":8,"name":"Segundo","tag":"B"}`} {
		if rec := do(t, h, http.MethodPost, "/pet", body); rec.Code != http.StatusAccepted {
			t.Fatalf("expected 202, got %d", rec.Code)
		}
	}

	rec := do(t, h, http.MethodGet, "/pet/8", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Body.String(); got != `{"id":8,"name":"Primero"}` {
		t.Fatalf("expected first inserted, got %s", got)
	}
}

func TestCreatePet_IDRangeEdges(t *testing.T) {
	repo := newTestRepo()
	h := newTestRouter(repo)

	for _, body := range []string{`{"id":2147483647,"name":"Max"}`, `{"id":-2147483648,"name":"Min"}`} {
		if rec := do(t, h, http.MethodPost, "/pet", body); rec.Code != http.StatusAccepted {
			t.Fatalf("expected 202 for %s, got %d", body, rec.Code)
		}
	}

	rec := do(t, h, http.MethodGet, "/pet/2147483647", "")
	if rec.Code != http.StatusOK || rec.Header().Get(PetIDHeader) != "2147483647" {
		t.Fatalf("int32 max must be readable back, got %d", rec.Code)
	}
	rec = do(t, h, http.MethodGet, "/pet/-2147483648", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("int32 min must be readable back, got %d", rec.Code)
	}
}

func TestCreatePet_BodyTooLarge(t *testing.T) {
	repo := newTestRepo()
	h := newTestRouter(repo)

	body := `{"id":5,"name":"` + strings.Repeat("a", maxBodyBytes) + `"}`
	rec := do(t, h, http.MethodPost, "/pet", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for oversized body, got %d", rec.Code)
	}
	if len(repo.items) != 4 {
		t.Fatalf("store must not grow, got %d", len(repo.items))
	}
}

func TestCreatePet_EmptyTagIsNoTag(t *testing.T) {
	h := newTestRouter(newTestRepo())

	if rec := do(t, h, http.MethodPost, "/pet", `{"id":7,"name":"E","tag":""}`); rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d", rec.Code)
	}
	rec := do(t, h, http.MethodGet, "/pet/7", "")
	if got := rec.Body.String(); got != `{"id":7,"name":"E"}` {
		t.Fatalf("empty tag must be omitted, got %s", got)
	}
}
