package reconcile

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Warning describe una mutación que quedó solo en el estado local.
// No se reintenta: no existe camino de re-envío cuando vuelve la conectividad.
type Warning struct {
	Operation Operation
	EntityID  string
	Cause     error
}

func (w *Warning) Error() string {
	return fmt.Sprintf("%s %s saved locally only: %v", w.Operation, w.EntityID, w.Cause)
}

func (w *Warning) Unwrap() error { return w.Cause }

// Recorder recibe los eventos de degradación (métricas).
type Recorder interface {
	Fallback(op string)
	ReadDegraded(op string)
}

type nopRecorder struct{}

func (nopRecorder) Fallback(string)     {}
func (nopRecorder) ReadDegraded(string) {}

// Executor aplica la política declarada para cada operación.
type Executor struct {
	policies Policies
	log      *zap.Logger
	rec      Recorder
}

func NewExecutor(policies Policies, log *zap.Logger, rec Recorder) *Executor {
	if policies == nil {
		policies = DefaultPolicies()
	}
	if log == nil {
		log = zap.NewNop()
	}
	if rec == nil {
		rec = nopRecorder{}
	}
	return &Executor{policies: policies, log: log, rec: rec}
}

func (e *Executor) Policy(op Operation) Policy {
	return e.policies.For(op)
}

// Mutate ejecuta remote. Si falla:
//   - strict (o sin fallback): devuelve el error tal cual.
//   - degraded: ejecuta fallback y devuelve un *Warning, sin error.
func (e *Executor) Mutate(ctx context.Context, op Operation, entityID string, remote func(context.Context) error, fallback func()) (*Warning, error) {
	err := remote(ctx)
	if err == nil {
		return nil, nil
	}

	if e.Policy(op) != PolicyDegraded || fallback == nil {
		e.log.Debug("remote mutation failed",
			zap.String("operation", string(op)),
			zap.String("entity_id", entityID),
			zap.Error(err),
		)
		return nil, err
	}

	fallback()
	e.rec.Fallback(string(op))
	e.log.Warn("remote mutation failed, applied locally",
		zap.String("operation", string(op)),
		zap.String("entity_id", entityID),
		zap.Error(err),
	)
	return &Warning{Operation: op, EntityID: entityID, Cause: err}, nil
}

// ReadAll ejecuta un listado y lo vuelve total: ante cualquier error devuelve vacío.
func ReadAll[T any](ctx context.Context, e *Executor, op string, fetch func(context.Context) ([]T, error)) ([]T, bool) {
	items, err := fetch(ctx)
	if err != nil {
		e.rec.ReadDegraded(op)
		e.log.Warn("listing failed, showing empty state",
			zap.String("operation", op),
			zap.Error(err),
		)
		return []T{}, false
	}
	if items == nil {
		items = []T{}
	}
	return items, true
}
