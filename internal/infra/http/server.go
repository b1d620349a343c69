package http

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	srv *http.Server
}

func New(addr string, exposeMetrics bool, calc *CalcHandler, mat *MaterialsHandler) *Server {
	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	if exposeMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}

	mux.HandleFunc("POST /api/calculate", calc.Calculate)
	mux.HandleFunc("POST /api/calculate/export", calc.Export)

	mux.HandleFunc("POST /api/materials", mat.Create)
	mux.HandleFunc("GET /api/materials", mat.List)
	mux.HandleFunc("GET /api/materials/{id}", mat.Get)
	mux.HandleFunc("PUT /api/materials/{id}", mat.Update)
	mux.HandleFunc("DELETE /api/materials/{id}", mat.Delete)

	return &Server{srv: &http.Server{Addr: addr, Handler: mux}}
}

func (s *Server) Start() error {
	return s.srv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
