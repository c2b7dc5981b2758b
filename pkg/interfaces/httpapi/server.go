// Package httpapi exposes solving, ranking, and topology queries over HTTP:
// a chi router with request-scoped logging, a JSON error envelope, and an
// atomically reloadable reference snapshot.
package httpapi

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/vsinha/supplyflow/pkg/config"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/supplyflow/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/supplyflow/pkg/infrastructure/telemetry"
	"github.com/vsinha/supplyflow/pkg/milp"
	"github.com/vsinha/supplyflow/pkg/topology"
)

const requestTimeout = 60 * time.Second

// Server owns the HTTP surface: the reference store and topology graph
// behind atomic pointers, the MILP engine, and the optional telemetry
// collector. Handlers load one snapshot per request, so a concurrent reload
// never changes data mid-request.
type Server struct {
	cfg       *config.Config
	logger    *zap.Logger
	solver    milp.Solver
	collector *telemetry.Collector

	store  atomic.Pointer[memory.ReferenceStore]
	graphs *topology.Handle
}

// NewServer wires the handlers over an initial reference snapshot. A nil
// collector disables telemetry; a nil logger disables logging.
func NewServer(cfg *config.Config, store *memory.ReferenceStore, graph *topology.Graph, collector *telemetry.Collector, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		cfg:       cfg,
		logger:    logger,
		solver:    milp.NewBranchBound(),
		collector: collector,
		graphs:    topology.NewHandle(graph),
	}
	s.store.Store(store)
	return s
}

// Router assembles the chi router with shared middleware and all routes.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(s.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		WriteError(req.Context(), w, NewError("route_not_found",
			fmt.Sprintf("no route for %s", req.URL.Path), http.StatusNotFound))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		WriteError(req.Context(), w, NewError("method_not_allowed",
			fmt.Sprintf("method %s not allowed on %s", req.Method, req.URL.Path), http.StatusMethodNotAllowed))
	})

	r.Get("/healthz", s.handleHealthz)

	r.Route("/api/v1", func(api chi.Router) {
		api.Post("/solve", s.handleSolve)
		api.Post("/reload", s.handleReload)

		api.Route("/graph", func(g chi.Router) {
			g.Get("/routes/{factoryID}/{countryCode}", s.handleRoutes)
			g.Get("/impact/{hubID}", s.handleImpact)
			g.Get("/diversity/{countryCode}", s.handleDiversity)
			g.Get("/restrictions/{countryCode}", s.handleGraphRestrictions)
			g.Get("/utilization/{hubID}", s.handleUtilization)
		})

		api.Get("/factories", s.handleFactories)
		api.Get("/hubs", s.handleHubs)
		api.Get("/countries", s.handleCountries)
		api.Get("/categories", s.handleCategories)
		api.Get("/products", s.handleProducts)
		api.Get("/restrictions", s.handleRestrictions)
	})

	return r
}

// currentStore returns the reference snapshot for this request.
func (s *Server) currentStore() *memory.ReferenceStore {
	return s.store.Load()
}

// currentGraph returns the topology snapshot for this request.
func (s *Server) currentGraph() *topology.Graph {
	return s.graphs.Graph()
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReload re-reads the CSV dataset from the configured data directory,
// rebuilds the topology graph, and publishes both. The store swap lands
// first; each swap is atomic, and no handler reads both surfaces in one
// request.
func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	store, err := csv.NewLoader().LoadDirectory(s.cfg.DataDir)
	if err != nil {
		s.logger.Error("reload failed", zap.String("data_dir", s.cfg.DataDir), zap.Error(err))
		WriteError(r.Context(), w, NewError("reload_failed", err.Error(), http.StatusInternalServerError))
		return
	}
	graph, err := topology.Build(store)
	if err != nil {
		s.logger.Error("graph rebuild failed", zap.Error(err))
		WriteError(r.Context(), w, NewError("reload_failed", err.Error(), http.StatusInternalServerError))
		return
	}

	s.store.Store(store)
	s.graphs.Swap(graph)

	flows, err := store.FlowRecords()
	if err != nil {
		WriteError(r.Context(), w, NewError("reload_failed", err.Error(), http.StatusInternalServerError))
		return
	}
	s.logger.Info("reference data reloaded",
		zap.String("data_dir", s.cfg.DataDir),
		zap.Int("flows", len(flows)))
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "reloaded",
		"flows":  len(flows),
	})
}
