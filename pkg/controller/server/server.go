package server

import (
	"encoding/json"
	"net/http"
	"time"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"github.com/gitfolio/gitfolio/pkg/domain/interfaces"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/utils/errutil"
	"github.com/gitfolio/gitfolio/pkg/utils/logging"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

type config struct {
	ghSecret types.GitHubAppSecret
}

type Option func(*config)

func WithGitHubSecret(secret types.GitHubAppSecret) Option {
	return func(cfg *config) {
		cfg.ghSecret = secret
	}
}

type syncRequest struct {
	UserID types.UserID `json:"user_id"`
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		r.Post("/sync", func(w http.ResponseWriter, r *http.Request) {
			var req syncRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.UserID == "" {
				safeWrite(w, http.StatusBadRequest, []byte(`{"error":"user_id is required"}`))
				return
			}

			input, err := uc.PrepareSync(r.Context(), req.UserID)
			if err != nil {
				errutil.HandleError(r.Context(), "fail to prepare sync", err)
				safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"failed to prepare sync"}`))
				return
			}

			// The request context is cancelled when the response is
			// written, so the sync runs on a detached context.
			bgCtx := DetachContext(r.Context())
			go runRepoSync(bgCtx, uc, input)

			body, _ := json.Marshal(map[string]any{
				"status": "accepted",
				"run_id": input.RunID,
			})
			safeWrite(w, http.StatusAccepted, body)
		})

		r.Get("/sync/status", func(w http.ResponseWriter, r *http.Request) {
			userID := types.UserID(r.URL.Query().Get("user_id"))
			if userID == "" {
				safeWrite(w, http.StatusBadRequest, []byte(`{"error":"user_id is required"}`))
				return
			}

			var since time.Time
			if v := r.URL.Query().Get("since"); v != "" {
				parsed, err := time.Parse(time.RFC3339, v)
				if err != nil {
					safeWrite(w, http.StatusBadRequest, []byte(`{"error":"since must be RFC3339"}`))
					return
				}
				since = parsed
			}

			report, err := uc.PollSyncStatus(r.Context(), userID, since)
			if err != nil {
				errutil.HandleError(r.Context(), "fail to poll sync status", err)
				safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"failed to poll sync status"}`))
				return
			}

			if report.Processing {
				safeWrite(w, http.StatusOK, []byte(`{"status":"processing"}`))
				return
			}

			body, err := json.Marshal(report)
			if err != nil {
				errutil.HandleError(r.Context(), "fail to encode sync status", err)
				safeWrite(w, http.StatusInternalServerError, []byte(`{"error":"failed to encode sync status"}`))
				return
			}
			safeWrite(w, http.StatusOK, body)
		})
	})

	r.Route("/webhook", func(r chi.Router) {
		r.Post("/github", func(w http.ResponseWriter, r *http.Request) {
			event, err := validateGitHubEvent(r, cfg.ghSecret)
			if err != nil {
				errutil.HandleError(r.Context(), "fail to validate GitHub event", err)
				safeWrite(w, http.StatusBadRequest, []byte(err.Error()))
				return
			}

			if err := applyGitHubEvent(r.Context(), uc, event); err != nil {
				errutil.HandleError(r.Context(), "fail to handle GitHub event", err)
				safeWrite(w, http.StatusInternalServerError, []byte(err.Error()))
				return
			}

			safeWrite(w, http.StatusOK, []byte("ok"))
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}
