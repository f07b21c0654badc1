package httpclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingRecorder struct {
	mu  sync.Mutex
	got map[string]int
}

func (r *countingRecorder) ObserveRequest(method, outcome string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.got == nil {
		r.got = map[string]int{}
	}
	r.got[method+" "+outcome]++
}

func newFakeRemote(t *testing.T) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	r.Get("/envelope", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":1}],"message":"ok"}`))
	})
	r.Get("/bare", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"id":1},{"id":2}]`))
	})
	r.Get("/object", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":9,"name":"Rex"}`))
	})
	r.Get("/broken", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>oops`))
	})
	r.Get("/scalar", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`"hello"`))
	})
	r.Get("/refused", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"error":"not allowed"}`))
	})
	r.Get("/missing", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"pet not found"}`))
	})
	r.Get("/echo", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"auth":"` + r.Header.Get("Authorization") + `","q":"` + r.URL.Query().Get("petId") + `","rid":"` + r.Header.Get("X-Request-ID") + `"}`))
	})
	r.Delete("/items/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	r.Post("/items", func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":` + string(b) + `}`))
	})
	r.Post("/upload", func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		content, _ := io.ReadAll(f)
		_, _ = w.Write([]byte(`{"success":true,"data":{"name":"` + hdr.Filename + `","size":` + strconv.Itoa(len(content)) + `}}`))
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(t *testing.T, base string, opts ...Option) *Client {
	t.Helper()
	c, err := New(Config{BaseURL: base}, opts...)
	require.NoError(t, err)
	return c
}

func TestGet_EnvelopeAndBareBodies(t *testing.T) {
	srv := newFakeRemote(t)
	c := newClient(t, srv.URL)
	ctx := context.Background()

	res := c.Get(ctx, "envelope", nil)
	require.True(t, res.Success)
	assert.JSONEq(t, `[{"id":1}]`, string(res.Data))
	assert.Equal(t, "ok", res.Message)

	res = c.Get(ctx, "bare", nil)
	require.True(t, res.Success)
	var items []map[string]int
	require.NoError(t, res.Decode(&items))
	assert.Len(t, items, 2)

	res = c.Get(ctx, "/object", nil)
	require.True(t, res.Success)
	assert.JSONEq(t, `{"id":9,"name":"Rex"}`, string(res.Data))
}

func TestGet_FailuresBecomeResults(t *testing.T) {
	srv := newFakeRemote(t)
	rec := &countingRecorder{}
	c := newClient(t, srv.URL, WithRecorder(rec))
	ctx := context.Background()

	res := c.Get(ctx, "broken", nil)
	assert.False(t, res.Success)
	assert.Equal(t, "invalid JSON response", res.Error)

	res = c.Get(ctx, "scalar", nil)
	assert.False(t, res.Success)

	res = c.Get(ctx, "refused", nil)
	assert.False(t, res.Success)
	assert.Equal(t, "not allowed", res.Error)

	res = c.Get(ctx, "missing", nil)
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusNotFound, res.Status)
	assert.Equal(t, "pet not found", res.Error)

	err := res.Err()
	var he *HTTPError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusNotFound, he.StatusCode)
	assert.True(t, IsNotFound(err))

	assert.Equal(t, 2, rec.got["GET invalid_response"])
	assert.Equal(t, 2, rec.got["GET http_error"])
}

func TestGet_UnreachableServer(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	base := srv.URL
	srv.Close()

	c := newClient(t, base)
	res := c.Get(context.Background(), "pets", nil)
	assert.False(t, res.Success)
	assert.Equal(t, 0, res.Status)
	assert.Contains(t, res.Error, "could not reach server")
	assert.False(t, c.TestConnection(context.Background()))
}

func TestHeadersAndParams(t *testing.T) {
	srv := newFakeRemote(t)
	ctx := context.Background()

	withToken := newClient(t, srv.URL, WithTokenSource(TokenFunc(func(context.Context) (string, error) {
		return "abc", nil
	})))
	var echo struct{ Auth, Q, Rid string }
	require.NoError(t, withToken.Get(ctx, "echo", url.Values{"petId": {"7"}}).Decode(&echo))
	assert.Equal(t, "Bearer abc", echo.Auth)
	assert.Equal(t, "7", echo.Q)
	assert.NotEmpty(t, echo.Rid)

	// sin token el request sale igual
	noToken := newClient(t, srv.URL, WithTokenSource(TokenFunc(func(context.Context) (string, error) {
		return "", errors.New("no session")
	})))
	require.NoError(t, noToken.Get(ctx, "echo", nil).Decode(&echo))
	assert.Equal(t, "", echo.Auth)
}

func TestPostAndDelete(t *testing.T) {
	srv := newFakeRemote(t)
	c := newClient(t, srv.URL)
	ctx := context.Background()

	var out struct {
		Name string `json:"name"`
	}
	require.NoError(t, c.Post(ctx, "items", map[string]string{"name": "Luna"}).Decode(&out))
	assert.Equal(t, "Luna", out.Name)

	res := c.Delete(ctx, "items/3")
	assert.True(t, res.Success)
	assert.NoError(t, res.Err())
}

func TestUpload(t *testing.T) {
	srv := newFakeRemote(t)
	c := newClient(t, srv.URL)

	var out struct {
		Name string `json:"name"`
		Size int    `json:"size"`
	}
	res := c.Upload(context.Background(), "upload", UploadFile{
		Name:        "rx.pdf",
		ContentType: "application/pdf",
		Body:        strings.NewReader("12345"),
	}, map[string]string{"petId": "3"})
	require.NoError(t, res.Decode(&out))
	assert.Equal(t, "rx.pdf", out.Name)
	assert.Equal(t, 5, out.Size)
}

func TestTestConnection(t *testing.T) {
	srv := newFakeRemote(t)
	assert.True(t, newClient(t, srv.URL).TestConnection(context.Background()))
}

func TestNew_InvalidBaseURL(t *testing.T) {
	_, err := New(Config{BaseURL: "::not a url"})
	assert.Error(t, err)
}
