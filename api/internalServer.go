package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/bridgeworld/atlas-mine-watcher/common/logging"
	"github.com/bridgeworld/atlas-mine-watcher/syncer"
)

// InternalServer exposes operational controls on a separate port: syncer
// pause/resume and a health probe.
type InternalServer struct {
	ctx    context.Context
	logger logging.Logger
	syn    *syncer.Syncer
	server *http.Server
}

func NewInternalServer(ctx context.Context, logger logging.Logger, syn *syncer.Syncer) *InternalServer {
	s := &InternalServer{
		ctx:    ctx,
		logger: logger,
		syn:    syn,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", s.OnHealthz)
	mux.HandleFunc("/pause", s.OnPause)
	mux.HandleFunc("/resume", s.OnResume)
	s.server = &http.Server{
		Addr:         ":9488",
		WriteTimeout: time.Second * 25,
		Handler:      mux,
	}
	return s
}

func (s *InternalServer) Shutdown() error {
	return s.server.Shutdown(s.ctx)
}

func (s *InternalServer) Run() error {
	s.logger.Info("Starting internal httpserver")
	go func() {
		err := s.server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			s.logger.Critical("Internal server closed unexpected %s", err)
		}
	}()
	<-s.ctx.Done()
	s.logger.Info("Internal server receives shutdown signal.")
	return nil
}

func (s *InternalServer) OnHealthz(w http.ResponseWriter, r *http.Request) {
	lastSyncAt := s.syn.LastSyncAt()
	w.Header().Set("Content-Type", "application/json")
	if lastSyncAt == 0 {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	_ = json.NewEncoder(w).Encode(map[string]int64{"lastSyncAt": lastSyncAt})
}

func (s *InternalServer) OnPause(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("pause requested")
	s.syn.Pause()
	w.WriteHeader(http.StatusOK)
}

func (s *InternalServer) OnResume(w http.ResponseWriter, r *http.Request) {
	s.logger.Info("resume requested")
	s.syn.Resume()
	w.WriteHeader(http.StatusOK)
}
