package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/gaienhofen/user-onboarding/internal/domain/entity"
)

type recorded struct {
	method string
	path   string
	body   []byte
}

// fakeES answers like an Elasticsearch node and records the last request.
func fakeES(t *testing.T, status int) (*httptest.Server, *recorded) {
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.body = b
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(`{"result":"created"}`))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func TestUserIndex_IndexUser(t *testing.T) {
	srv, rec := fakeES(t, http.StatusCreated)
	es, err := NewESClient([]string{srv.URL}, "", "")
	require.NoError(t, err)

	u := &entity.User{
		ID:        "u-1",
		FirstName: "Ada",
		Name:      "Lovelace",
		Email:     "ada@example.com",
		Password:  "secret-digest",
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, NewUserIndex(es, "users").IndexUser(context.Background(), u))

	require.Equal(t, http.MethodPut, rec.method)
	require.Equal(t, "/users/_doc/u-1", rec.path)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(rec.body, &doc))
	require.Equal(t, "ada@example.com", doc["email"])
	require.Equal(t, "Ada", doc["first_name"])
	require.NotContains(t, doc, "password")
	require.NotContains(t, string(rec.body), "secret-digest")
}

func TestUserIndex_ErrorStatus(t *testing.T) {
	srv, _ := fakeES(t, http.StatusBadRequest)
	es, err := NewESClient([]string{srv.URL}, "", "")
	require.NoError(t, err)

	err = NewUserIndex(es, "users").IndexUser(context.Background(), &entity.User{ID: "u-1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "400")
}
