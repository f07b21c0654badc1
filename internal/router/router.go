package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "pet-care-companion/docs"
	"pet-care-companion/internal/adapters/demo"
	"pet-care-companion/internal/adapters/remote"
	"pet-care-companion/internal/adapters/remote/mapper"
	mem "pet-care-companion/internal/adapters/storage/memory"
	"pet-care-companion/internal/domain/consultations"
	"pet-care-companion/internal/domain/pets"
	"pet-care-companion/internal/domain/reconcile"
	"pet-care-companion/internal/domain/reminders"
	"pet-care-companion/internal/domain/treatments"
	"pet-care-companion/internal/domain/vaccinations"
	"pet-care-companion/internal/middleware"
	"pet-care-companion/internal/platform/metrics"
	"pet-care-companion/internal/platform/respond"
	"pet-care-companion/internal/ports/auth"
)

// Gateway es el cliente del backend remoto (httpclient.Client).
type Gateway interface {
	remote.Gateway
	TestConnection(ctx context.Context) bool
}

type Options struct {
	// Gateway nil = modo demo: datos de ejemplo en memoria, sin red.
	Gateway Gateway

	// Credentials resuelve la sesión del usuario; puede ser nil (solo X-Debug-User-ID).
	Credentials auth.CredentialProvider

	// Policies nil = reconcile.DefaultPolicies().
	Policies reconcile.Policies

	Logger  *zap.Logger
	Metrics *metrics.Metrics

	// Store opcional; si no viene se crea uno vacío.
	Store *mem.Store
}

// ports agrupa una implementación de cada puerto Remote.
type ports struct {
	pets          pets.Remote
	vaccinations  vaccinations.Remote
	treatments    treatments.Remote
	consultations consultations.Remote
	reminders     reminders.Remote
}

func remotePorts(gw Gateway) ports {
	if gw == nil {
		d := demo.NewBackend().Remotes()
		return ports{d.Pets, d.Vaccinations, d.Treatments, d.Consultations, d.Reminders}
	}
	a := remote.NewAdapters(gw, mapper.New())
	return ports{a.Pets, a.Vaccinations, a.Treatments, a.Consultations, a.Reminders}
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Use(middleware.AuthContext(opts.Credentials))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/health/remote", func(w http.ResponseWriter, req *http.Request) {
		if opts.Gateway == nil {
			respond.JSON(w, http.StatusOK, map[string]bool{"reachable": true, "demo": true})
			return
		}
		respond.JSON(w, http.StatusOK, map[string]bool{"reachable": opts.Gateway.TestConnection(req.Context())})
	})

	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	store := opts.Store
	if store == nil {
		store = mem.NewStore()
	}

	var rec reconcile.Recorder
	if opts.Metrics != nil {
		rec = opts.Metrics
	}
	exec := reconcile.NewExecutor(opts.Policies, log.Named("reconcile"), rec)

	p := remotePorts(opts.Gateway)

	// Services por módulo
	vaccSvc := vaccinations.NewService(p.vaccinations, store, exec)
	treatSvc := treatments.NewService(p.treatments, store, exec)
	consSvc := consultations.NewService(p.consultations, store, exec)
	remSvc := reminders.NewService(p.reminders, store, exec)
	petsSvc := pets.NewService(p.pets, store, exec, pets.Listers{
		Vaccinations:  vaccSvc,
		Treatments:    treatSvc,
		Consultations: consSvc,
		Reminders:     remSvc,
	})

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	vaccinations.RegisterRoutes(r, vaccSvc)
	treatments.RegisterRoutes(r, treatSvc)
	consultations.RegisterRoutes(r, consSvc)
	reminders.RegisterRoutes(r, remSvc)

	return r
}
