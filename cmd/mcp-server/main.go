// cmd/mcp-server/main.go — Standalone HTTP MCP server for plotduel
//
// Exposes equation classification and scoring as an HTTP endpoint for AI
// agent frameworks and game front ends.
//
// Usage:
//
//	go run ./cmd/mcp-server -addr :8080
//
// Tool call endpoint: POST /tool
// Schema endpoint:    GET  /schema
// Health endpoint:    GET  /health
//
// PLOTDUEL_ADDR and PLOTDUEL_LOG_LEVEL (also read from .env) set defaults
// that flags override.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"runtime/debug"
	"time"

	"github.com/njchilds90/plotduel"
	"github.com/njchilds90/plotduel/internal/config"
)

const maxBodyBytes = 1 << 20 // 1 MiB

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	addr := flag.String("addr", cfg.Addr, "Address to listen on")
	flag.Parse()

	log := cfg.NewLogger()
	plotduel.SetLogger(log)

	log.Info("plotduel MCP server listening", "addr", *addr)
	log.Info("routes", "tool", "POST /tool", "schema", "GET /schema", "health", "GET /health")

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newMux(log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func newMux(log *slog.Logger) *http.ServeMux {
	mux := http.NewServeMux()

	// POST /tool — handle a tool call
	mux.HandleFunc("/tool", func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error("panic in /tool", "panic", rec, "stack", string(debug.Stack()))
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
		}()

		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		defer r.Body.Close()

		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()

		var req plotduel.ToolRequest
		if err := dec.Decode(&req); err != nil {
			writeError(w, err.Error())
			return
		}
		// Ensure there's no trailing junk.
		if dec.More() {
			writeError(w, "invalid JSON: trailing data")
			return
		}

		resp := plotduel.HandleToolCall(req)
		log.Debug("tool call", "tool", req.Tool, "error", resp.Error)
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(resp)
	})

	// GET /schema — return tool schema for agent registration
	mux.HandleFunc("/schema", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, plotduel.MCPToolSpec())
	})

	// GET /health — liveness check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	return mux
}

func writeError(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
