package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authmem "pet-care-companion/internal/adapters/auth/memory"
	mem "pet-care-companion/internal/adapters/storage/memory"
	"pet-care-companion/internal/platform/httpclient"
	"pet-care-companion/internal/platform/metrics"
	"pet-care-companion/internal/router"
)

func TestHTTP_DemoMode_EndToEnd(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	owner := "owner-1"

	// 1) Sin usuario no hay acceso
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets", "", nil)
		require.Equal(t, http.StatusUnauthorized, st)
	}

	// 2) El usuario ve las mascotas de ejemplo
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", owner, nil)
		require.Equal(t, http.StatusOK, st, string(body))
		var list []map[string]any
		require.NoError(t, json.Unmarshal(body, &list))
		assert.Len(t, list, 2)
	}

	// 3) Alta con vacunas y tratamiento anidados
	var petID string
	{
		st, body := doReq(t, ts.URL, "POST", "/pets", owner, map[string]any{
			"name":       "Milo",
			"species":    "dog",
			"sex":        "male",
			"birth_date": "2023-01-10",
			"weight":     map[string]any{"min": 8},
			"vaccinations": []map[string]any{
				{"name": "rabia", "application_date": "2024-05-01"},
				{"name": "algo raro", "application_date": "2024-06-01"},
			},
			"treatments": []map[string]any{
				{"category": "antiparasitario", "medication": "Bravecto", "start_date": "2024-05-01"},
			},
		})
		require.Equal(t, http.StatusCreated, st, string(body))

		var p struct {
			ID           string           `json:"id"`
			Age          string           `json:"age"`
			Vaccinations []map[string]any `json:"vaccinations"`
			Treatments   []map[string]any `json:"treatments"`
			Weight       map[string]any   `json:"weight"`
		}
		require.NoError(t, json.Unmarshal(body, &p))
		petID = p.ID
		assert.NotEmpty(t, petID)
		assert.NotEmpty(t, p.Age)
		require.Len(t, p.Vaccinations, 2)
		assert.Equal(t, "Other", p.Vaccinations[1]["name"])
		assert.Len(t, p.Treatments, 1)
		assert.Equal(t, "kg", p.Weight["unit"])
	}

	// 4) Validación antes de cualquier llamada
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets", owner, map[string]any{"name": "", "species": "dog"})
		assert.Equal(t, http.StatusBadRequest, st)

		st, _ = doReq(t, ts.URL, "POST", "/pets/"+petID+"/reminders", owner, map[string]any{"title": "x", "date": "01/02/2025"})
		assert.Equal(t, http.StatusBadRequest, st)
	}

	// 5) Recordatorio: alta, completar dos veces (la segunda es idempotente)
	var reminderID string
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/reminders", owner, map[string]any{
			"type": "higiene", "title": "Baño", "date": "2025-07-01", "time": "16:45",
		})
		require.Equal(t, http.StatusCreated, st, string(body))
		var rem map[string]any
		require.NoError(t, json.Unmarshal(body, &rem))
		reminderID = rem["id"].(string)

		for i := 0; i < 2; i++ {
			st, body = doReq(t, ts.URL, "POST", "/reminders/"+reminderID+"/complete", owner, nil)
			require.Equal(t, http.StatusOK, st, string(body))
			var res struct {
				Reminder map[string]any `json:"reminder"`
				Warning  string         `json:"warning"`
			}
			require.NoError(t, json.Unmarshal(body, &res))
			assert.Equal(t, true, res.Reminder["is_completed"])
			assert.Empty(t, res.Warning)
		}

		st, body = doReq(t, ts.URL, "GET", "/pets/"+petID+"/reminders?pending=true", owner, nil)
		require.Equal(t, http.StatusOK, st)
		assert.JSONEq(t, `[]`, string(body))
	}

	// 6) Perfil con todas las colecciones
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, owner, nil)
		require.Equal(t, http.StatusOK, st, string(body))
		var prof struct {
			Pet struct {
				Vaccinations []any `json:"vaccinations"`
			} `json:"pet"`
			Reminders []any `json:"reminders"`
		}
		require.NoError(t, json.Unmarshal(body, &prof))
		assert.Len(t, prof.Pet.Vaccinations, 2)
		assert.Len(t, prof.Reminders, 1)
	}

	// 7) Update parcial y borrado
	{
		st, body := doReq(t, ts.URL, "PUT", "/pets/"+petID, owner, map[string]any{"name": "Milo II"})
		require.Equal(t, http.StatusOK, st, string(body))
		assert.Contains(t, string(body), "Milo II")

		st, _ = doReq(t, ts.URL, "PUT", "/pets/"+petID, owner, map[string]any{"unknown": 1})
		assert.Equal(t, http.StatusBadRequest, st)

		st, _ = doReq(t, ts.URL, "DELETE", "/pets/"+petID, owner, nil)
		assert.Equal(t, http.StatusNoContent, st)

		st, _ = doReq(t, ts.URL, "GET", "/pets/"+petID, owner, nil)
		assert.Equal(t, http.StatusNotFound, st)
	}

	// 8) El backend demo siempre está "alcanzable"
	{
		st, body := doReq(t, ts.URL, "GET", "/health/remote", "", nil)
		require.Equal(t, http.StatusOK, st)
		assert.Contains(t, string(body), `"reachable":true`)
	}
}

// downBackend responde 500 a todo salvo el listado de pendientes y /health.
type downBackend struct {
	mu      sync.Mutex
	queries []string
}

func newDownBackend(t *testing.T) (*downBackend, *httpclient.Client) {
	t.Helper()
	db := &downBackend{}
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})
	r.Get("/pendings", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":[{"id":5,"petId":1,"category":"HYGINE","title":"Baño","date":"2024-07-01T16:45:00Z","completed":false}]}`))
	})
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		db.mu.Lock()
		db.queries = append(db.queries, r.Method+" "+r.URL.Path+"?"+r.URL.RawQuery)
		db.mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"error":"database unavailable"}`))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	gw, err := httpclient.New(httpclient.Config{BaseURL: srv.URL})
	require.NoError(t, err)
	return db, gw
}

func TestHTTP_BackendDown_StrictAndDegraded(t *testing.T) {
	_, gw := newDownBackend(t)
	m := metrics.New()
	store := mem.NewStore()
	ts := httptest.NewServer(router.NewRouter(router.Options{Gateway: gw, Metrics: m, Store: store}))
	defer ts.Close()

	owner := "7"

	// Listados: vacío, nunca error
	{
		st, body := doReq(t, ts.URL, "GET", "/pets", owner, nil)
		require.Equal(t, http.StatusOK, st)
		assert.JSONEq(t, `[]`, string(body))

		st, body = doReq(t, ts.URL, "GET", "/pets/1/consultations", owner, nil)
		require.Equal(t, http.StatusOK, st)
		assert.JSONEq(t, `[]`, string(body))
	}

	// Alta strict: el error del backend llega al usuario, nada queda en local
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/1/consultations", owner, map[string]any{
			"type": "checkup", "title": "Control", "date": "2024-07-01",
		})
		assert.Equal(t, http.StatusBadGateway, st)
		assert.Contains(t, string(body), "database unavailable")
		assert.Empty(t, store.Consultations("1"))

		st, _ = doReq(t, ts.URL, "POST", "/pets/1/reminders", owner, map[string]any{
			"type": "otro", "title": "x", "date": "2024-07-01",
		})
		assert.Equal(t, http.StatusBadGateway, st)
	}

	// Completar: degrada a marca local con warning
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/1/reminders", owner, nil)
		require.Equal(t, http.StatusOK, st)
		assert.Contains(t, string(body), `"type":"higiene"`)

		st, body = doReq(t, ts.URL, "POST", "/reminders/5/complete", owner, nil)
		require.Equal(t, http.StatusOK, st, string(body))
		var res struct {
			Reminder map[string]any `json:"reminder"`
			Warning  string         `json:"warning"`
		}
		require.NoError(t, json.Unmarshal(body, &res))
		assert.Equal(t, true, res.Reminder["is_completed"])
		assert.NotEmpty(t, res.Warning)

		rem, ok := store.Reminder("5")
		require.True(t, ok)
		assert.True(t, rem.IsCompleted)
	}

	// Las degradaciones quedan en /metrics
	{
		st, body := doReq(t, ts.URL, "GET", "/metrics", "", nil)
		require.Equal(t, http.StatusOK, st)
		assert.Contains(t, string(body), `petcare_reconcile_fallbacks_total{operation="reminder.complete"} 1`)
		assert.Contains(t, string(body), `petcare_reconcile_degraded_reads_total{operation="pets.list"} 1`)
	}

	// /health del backend responde
	{
		st, body := doReq(t, ts.URL, "GET", "/health/remote", "", nil)
		require.Equal(t, http.StatusOK, st)
		assert.Contains(t, string(body), `"reachable":true`)
	}
}

func TestHTTP_SessionFromCredentialStore(t *testing.T) {
	db, gw := newDownBackend(t)
	creds := authmem.NewStore("tok-1", `{"id": 42, "email": "ana@example.com"}`)
	ts := httptest.NewServer(router.NewRouter(router.Options{Gateway: gw, Credentials: creds}))
	defer ts.Close()

	st, _ := doReq(t, ts.URL, "GET", "/pets", "", nil)
	require.Equal(t, http.StatusOK, st)

	db.mu.Lock()
	defer db.mu.Unlock()
	require.NotEmpty(t, db.queries)
	assert.Equal(t, "GET /pets?userId=42", db.queries[0])
}

func TestHTTP_Swagger(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{}))
	defer ts.Close()

	st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, st)
	assert.Contains(t, string(body), "/reminders/{id}/complete")
}

func doReq(t *testing.T, baseURL, method, path, userID string, payload any) (int, []byte) {
	t.Helper()

	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, body)
	require.NoError(t, err)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if userID != "" {
		req.Header.Set("X-Debug-User-ID", userID)
	}

	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer res.Body.Close()

	b, _ := io.ReadAll(res.Body)
	return res.StatusCode, b
}
