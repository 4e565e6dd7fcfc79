package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vk/weave/component"
	"github.com/vk/weave/internal/ctxlog"
	"github.com/vk/weave/internal/relay"
	"github.com/vk/weave/internal/render"
)

// Router returns the inspection routes:
//
//	GET  /health                  liveness
//	GET  /tree                    JSON snapshot of the tree
//	GET  /components/{id}         JSON snapshot of one component
//	POST /components/{id}/{event} fires click, value or item with ?value=
func (a *App) Router(ctx context.Context) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", a.healthHandler)
	r.Get("/tree", a.treeHandler)
	r.Get("/components/{id}", a.componentHandler)
	r.Post("/components/{id}/{event}", func(w http.ResponseWriter, req *http.Request) {
		a.fireHandler(ctx, w, req)
	})
	return r
}

func (a *App) healthHandler(w http.ResponseWriter, r *http.Request) {
	a.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (a *App) treeHandler(w http.ResponseWriter, r *http.Request) {
	var snap *render.Node
	err := a.withRoot(func(root component.Component) error {
		snap = render.Snapshot(root)
		return nil
	})
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (a *App) componentHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var snap *render.Node
	err := a.withRoot(func(root component.Component) error {
		c, ok := component.FindByID(root, id)
		if !ok {
			return errNotFound
		}
		snap = render.Snapshot(c)
		return nil
	})
	switch {
	case errors.Is(err, errNotFound):
		http.Error(w, fmt.Sprintf("no component with id %q", id), http.StatusNotFound)
	case err != nil:
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
	default:
		writeJSON(w, http.StatusOK, snap)
	}
}

func (a *App) fireHandler(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	cmd := relay.Command{
		ID:    chi.URLParam(r, "id"),
		Event: chi.URLParam(r, "event"),
		Value: r.URL.Query().Get("value"),
	}
	err := a.withRoot(func(root component.Component) error {
		if _, ok := component.FindByID(root, cmd.ID); !ok {
			return errNotFound
		}
		return relay.Dispatch(ctx, root, cmd)
	})
	switch {
	case errors.Is(err, errNotFound):
		http.Error(w, fmt.Sprintf("no component with id %q", cmd.ID), http.StatusNotFound)
	case err != nil:
		a.logger.Warn("Firing event failed", "id", cmd.ID, "event", cmd.Event, "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

var errNotFound = errors.New("not found")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// startInspectionServer runs the inspection server in the background.
func (a *App) startInspectionServer(ctx context.Context, port int) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Configuring inspection server.")

	addr := fmt.Sprintf(":%d", port)
	a.httpServer = &http.Server{
		Addr:    addr,
		Handler: a.Router(ctx),
	}

	go func() {
		logger.Info("🩺 Inspection server starting", "address", fmt.Sprintf("http://localhost%s/tree", addr))
		// ListenAndServe returns ErrServerClosed on graceful shutdown.
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Inspection server failed unexpectedly", "error", err)
		}
	}()
}

func (a *App) closeInspectionServer(ctx context.Context) {
	logger := ctxlog.FromContext(ctx)
	if a.httpServer == nil {
		logger.Debug("Inspection server was not running.")
		return
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
	defer cancel()

	logger.Info("🩺 Shutting down inspection server...")
	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("Inspection server shutdown failed", "error", err)
		return
	}
	logger.Debug("Inspection server shut down gracefully.")
}
