// Package server exposes routing sessions over a JSON HTTP API.
//
// Routes:
//
//	GET    /api/areas
//	POST   /api/sessions                  {"area": "..."}
//	GET    /api/sessions/{id}
//	GET    /api/sessions/{id}/nodes
//	POST   /api/sessions/{id}/routes      {"start": "...", "end": "...", "max_alternatives": n}
//	PUT    /api/sessions/{id}/selection   {"index": n}
//	DELETE /api/sessions/{id}/routes
//	DELETE /api/sessions/{id}
//	GET    /metrics
//
// Errors are returned as {"error": "..."} with 400 for malformed input,
// 404 for unknown areas, sessions and nodes, and 422 for an empty network
// or an out-of-range selection.
package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	"github.com/katalvlaran/greedyroute/routing"
)

var errBadRequest = errors.New("server: bad request")

// Server holds the session store and the area catalogue.
type Server struct {
	areas     Areas
	store     *routing.Store
	routeOpts []routing.Option
	log       *slog.Logger
	registry  *prometheus.Registry
	metrics   *metrics
	router    *mux.Router
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRoutingOptions sets the defaults applied to every route computation.
func WithRoutingOptions(opts ...routing.Option) Option {
	return func(s *Server) { s.routeOpts = append(s.routeOpts, opts...) }
}

// New builds a Server and its router. Each Server registers its metrics
// on a private registry served at /metrics.
func New(areas Areas, opts ...Option) *Server {
	s := &Server{
		areas:    areas,
		store:    routing.NewStore(),
		log:      slog.Default(),
		registry: prometheus.NewRegistry(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.metrics = newMetrics(s.registry)
	s.router = s.routes()

	return s
}

// Handler returns the HTTP handler of the API.
func (s *Server) Handler() http.Handler { return s.router }

// HTTPServer wraps Handler in an *http.Server listening on addr.
func (s *Server) HTTPServer(addr string, readTimeout, writeTimeout time.Duration) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readTimeout,
		WriteTimeout:      writeTimeout,
	}
}

func (s *Server) routes() *mux.Router {
	r := mux.NewRouter()
	r.Use(s.instrument)

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/areas", s.listAreas).Methods(http.MethodGet)
	api.HandleFunc("/sessions", s.createSession).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}", s.getSession).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}", s.deleteSession).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/nodes", s.listNodes).Methods(http.MethodGet)
	api.HandleFunc("/sessions/{id}/routes", s.computeRoutes).Methods(http.MethodPost)
	api.HandleFunc("/sessions/{id}/routes", s.resetRoutes).Methods(http.MethodDelete)
	api.HandleFunc("/sessions/{id}/selection", s.selectRoute).Methods(http.MethodPut)

	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)

	return r
}

func (s *Server) listAreas(w http.ResponseWriter, _ *http.Request) {
	names := s.areas.Names()
	out := make([]areaView, 0, len(names))
	for _, n := range names {
		out = append(out, areaView{Name: n})
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"areas": out})
}

type createSessionRequest struct {
	Area string `json:"area"`
}

func (s *Server) createSession(w http.ResponseWriter, r *http.Request) {
	var req createSessionRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	g, err := s.areas.Load(r.Context(), req.Area)
	if err != nil {
		s.fail(w, err)
		return
	}
	sess, err := routing.NewSession(req.Area, g)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.store.Put(sess)
	s.metrics.sessions.Set(float64(s.store.Len()))
	s.log.Info("session created", "id", sess.ID, "area", sess.Area)

	s.writeSession(w, http.StatusCreated, sess)
}

func (s *Server) getSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeSession(w, http.StatusOK, sess)
}

func (s *Server) deleteSession(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err == nil {
		err = s.store.Delete(id)
	}
	if err != nil {
		s.fail(w, err)
		return
	}
	s.metrics.sessions.Set(float64(s.store.Len()))
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) listNodes(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"nodes": sess.Network.Nodes()})
}

type computeRequest struct {
	Start           string `json:"start"`
	End             string `json:"end"`
	MaxAlternatives int    `json:"max_alternatives"`
}

func (s *Server) computeRoutes(w http.ResponseWriter, r *http.Request) {
	sess, err := s.session(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	var req computeRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if req.MaxAlternatives < 0 {
		s.fail(w, errBadRequest)
		return
	}

	opts := append([]routing.Option{}, s.routeOpts...)
	opts = append(opts, routing.WithContext(r.Context()), routing.WithLogger(s.log))
	if req.MaxAlternatives > 0 {
		opts = append(opts, routing.WithMaxAlternatives(req.MaxAlternatives))
	}

	began := time.Now()
	next, err := sess.Compute(req.Start, req.End, opts...)
	s.metrics.computeDuration.Observe(time.Since(began).Seconds())
	if err != nil {
		s.fail(w, err)
		return
	}
	res := next.Result
	s.metrics.routesReturned.Observe(float64(len(res.Routes)))
	s.metrics.greedyOutcomes.WithLabelValues(string(res.Greedy.Outcome)).Inc()
	s.metrics.traceSteps.Observe(float64(len(res.Trace)))

	s.store.Put(next)
	s.writeSession(w, http.StatusOK, next)
}

type selectRequest struct {
	Index *int `json:"index"`
}

func (s *Server) selectRoute(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	var req selectRequest
	if err := decode(r, &req); err != nil {
		s.fail(w, err)
		return
	}
	if req.Index == nil {
		s.fail(w, errBadRequest)
		return
	}
	next, err := s.store.Update(id, func(cur *routing.Session) (*routing.Session, error) {
		return cur.Select(*req.Index)
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeSession(w, http.StatusOK, next)
}

func (s *Server) resetRoutes(w http.ResponseWriter, r *http.Request) {
	id, err := sessionID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	next, err := s.store.Update(id, func(cur *routing.Session) (*routing.Session, error) {
		return cur.Reset(), nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeSession(w, http.StatusOK, next)
}

func (s *Server) session(r *http.Request) (*routing.Session, error) {
	id, err := sessionID(r)
	if err != nil {
		return nil, err
	}

	return s.store.Get(id)
}

// sessionID parses the {id} path variable. A malformed ID cannot name a
// session, so it reports ErrSessionNotFound.
func sessionID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, routing.ErrSessionNotFound
	}

	return id, nil
}

func decode(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Join(errBadRequest, err)
	}

	return nil
}

// statusOf maps an error to its HTTP status code.
func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrAreaNotFound),
		errors.Is(err, routing.ErrSessionNotFound),
		errors.Is(err, routing.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, routing.ErrGraphEmpty),
		errors.Is(err, routing.ErrSelectionOutOfRange):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	code := statusOf(err)
	if code == http.StatusInternalServerError {
		s.log.Error("request failed", "err", err)
	}
	writeJSON(w, code, map[string]string{"error": err.Error()})
}

// writeSession renders sess; a view that cannot be built fails the request.
func (s *Server) writeSession(w http.ResponseWriter, code int, sess *routing.Session) {
	v, err := newSessionView(sess)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, code, v)
}

func writeJSON(w http.ResponseWriter, code int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

// instrument counts every request by route template and status code.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := "unmatched"
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		s.metrics.requests.WithLabelValues(route, strconv.Itoa(rec.code)).Inc()
		s.log.Debug("http request", "method", r.Method, "route", route, "code", rec.code)
	})
}
