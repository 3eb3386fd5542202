package routes

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	apperrors "github.com/louisbranch/fleetdesk/internal/platform/errors"
	"github.com/louisbranch/fleetdesk/internal/platform/otel"
	"github.com/louisbranch/fleetdesk/internal/platform/timeouts"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/singleflight"
)

const tracerName = "github.com/louisbranch/fleetdesk/internal/services/admin/routes"

// Loader fetches a deferred unit.
type Loader func(ctx context.Context) (Unit, error)

// PageRef references a page unit that is available now or loaded on demand.
type PageRef struct {
	name    string
	loader  Loader
	timeout time.Duration

	loaded atomic.Pointer[loadedUnit]
	loads  atomic.Int64
	group  singleflight.Group

	mu     sync.Mutex
	cancel context.CancelFunc
}

type loadedUnit struct {
	unit Unit
}

// Eager wraps a unit that is ready at construction.
func Eager(unit Unit) *PageRef {
	ref := &PageRef{}
	if unit != nil {
		ref.name = unit.Name()
		ref.loaded.Store(&loadedUnit{unit: unit})
	}
	return ref
}

// Deferred returns a ref whose unit is fetched by loader on first use.
func Deferred(name string, loader Loader) *PageRef {
	return &PageRef{name: name, loader: loader, timeout: timeouts.PageLoad}
}

// Name returns the unit name.
func (p *PageRef) Name() string {
	return p.name
}

// IsDeferred reports whether the ref was built with a loader.
func (p *PageRef) IsDeferred() bool {
	return p.loader != nil
}

// IsLoaded reports whether the unit is available without a fetch.
func (p *PageRef) IsLoaded() bool {
	return p.loaded.Load() != nil
}

// Loads reports how many times the loader ran.
func (p *PageRef) Loads() int64 {
	return p.loads.Load()
}

// Resolve returns the unit, running the loader when it has not completed
// yet. Concurrent callers share one fetch. A caller whose ctx ends stops
// waiting; the fetch continues for the others. Failures are not cached.
func (p *PageRef) Resolve(ctx context.Context) (Unit, error) {
	if loaded := p.loaded.Load(); loaded != nil {
		return loaded.unit, nil
	}
	if p.loader == nil {
		return nil, apperrors.EK(apperrors.KindUnavailable, "errors.unavailable.title", fmt.Sprintf("page %s has no unit", p.name))
	}
	if ctx == nil {
		ctx = context.Background()
	}

	result := p.group.DoChan(p.name, func() (any, error) {
		return p.fetch(ctx)
	})
	select {
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(Unit), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Abort cancels the in-flight fetch, if any. Waiting callers receive an
// unavailable error and the next Resolve starts over.
func (p *PageRef) Abort() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel == nil {
		return false
	}
	p.cancel()
	return true
}

func (p *PageRef) fetch(caller context.Context) (Unit, error) {
	if loaded := p.loaded.Load(); loaded != nil {
		return loaded.unit, nil
	}

	fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(caller), p.loadTimeout())
	p.mu.Lock()
	p.cancel = cancel
	p.mu.Unlock()
	defer func() {
		p.mu.Lock()
		p.cancel = nil
		p.mu.Unlock()
		cancel()
	}()

	fetchCtx, span := otel.Tracer(tracerName).Start(fetchCtx, "routes.load_page",
		trace.WithAttributes(attribute.String("route.page", p.name)))
	defer span.End()

	p.loads.Add(1)
	unit, err := p.loader(fetchCtx)
	if err == nil && unit == nil {
		err = fmt.Errorf("loader returned no unit")
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "load failed")
		return nil, apperrors.Wrap(apperrors.KindUnavailable, "errors.unavailable.title", fmt.Sprintf("load page %s", p.name), err)
	}

	p.loaded.Store(&loadedUnit{unit: unit})
	return unit, nil
}

func (p *PageRef) loadTimeout() time.Duration {
	if p.timeout <= 0 {
		return timeouts.PageLoad
	}
	return p.timeout
}
