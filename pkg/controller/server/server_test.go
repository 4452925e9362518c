package server_test

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/controller/server"
	"github.com/gitfolio/gitfolio/pkg/domain/mock"
	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
)

func TestHealth(t *testing.T) {
	srv := server.New(&mock.UseCaseMock{})

	w := httptest.NewRecorder()
	srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	gt.V(t, w.Code).Equal(http.StatusOK)
	gt.V(t, w.Body.String()).Equal("ok")
}

func TestSyncEndpoint(t *testing.T) {
	t.Run("accepts and starts a background sync", func(t *testing.T) {
		synced := make(chan *model.SyncReposInput, 1)
		uc := &mock.UseCaseMock{
			PrepareSyncFunc: func(ctx context.Context, userID types.UserID) (*model.SyncReposInput, error) {
				return model.NewSyncReposInput(userID, "inst-1"), nil
			},
			SyncReposFunc: func(ctx context.Context, input *model.SyncReposInput) (*model.SyncReposOutput, error) {
				synced <- input
				return &model.SyncReposOutput{}, nil
			},
		}
		srv := server.New(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sync",
			bytes.NewReader([]byte(`{"user_id":"user-1"}`)))
		srv.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusAccepted)

		var resp map[string]string
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		gt.V(t, resp["status"]).Equal("accepted")
		gt.True(t, resp["run_id"] != "")

		select {
		case input := <-synced:
			gt.V(t, input.UserID).Equal(types.UserID("user-1"))
			gt.V(t, string(input.RunID)).Equal(resp["run_id"])
		case <-time.After(3 * time.Second):
			t.Fatal("background sync did not run")
		}

		gt.V(t, len(uc.PrepareSyncCalls())).Equal(1)
	})

	t.Run("rejects a request without user_id", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sync",
			bytes.NewReader([]byte(`{}`)))
		srv.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusBadRequest)
	})

	t.Run("reports preparation failures", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			PrepareSyncFunc: func(ctx context.Context, userID types.UserID) (*model.SyncReposInput, error) {
				return nil, goerr.Wrap(types.ErrSyncFailed, "no installation")
			},
		}
		srv := server.New(uc)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/sync",
			bytes.NewReader([]byte(`{"user_id":"user-1"}`)))
		srv.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusInternalServerError)
	})
}

func TestSyncStatusEndpoint(t *testing.T) {
	t.Run("reports processing until a log exists", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			PollSyncStatusFunc: func(ctx context.Context, userID types.UserID, since time.Time) (*model.SyncStatusReport, error) {
				return &model.SyncStatusReport{Processing: true}, nil
			},
		}
		srv := server.New(uc)

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sync/status?user_id=user-1", nil))

		gt.V(t, w.Code).Equal(http.StatusOK)
		gt.V(t, w.Body.String()).Equal(`{"status":"processing"}`)
	})

	t.Run("returns the finished report", func(t *testing.T) {
		since := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
		uc := &mock.UseCaseMock{
			PollSyncStatusFunc: func(ctx context.Context, userID types.UserID, gotSince time.Time) (*model.SyncStatusReport, error) {
				gt.True(t, gotSince.Equal(since))
				return &model.SyncStatusReport{
					Result:  types.SyncStatusPartial,
					Message: "Synced 6 of 10 repositories",
					Synced:  6,
					Errors:  4,
				}, nil
			},
		}
		srv := server.New(uc)

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/api/sync/status?user_id=user-1&since=2024-06-01T12:00:00Z", nil))

		gt.V(t, w.Code).Equal(http.StatusOK)

		var report model.SyncStatusReport
		gt.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
		gt.V(t, report.Result).Equal(types.SyncStatusPartial)
		gt.V(t, report.Synced).Equal(6)
		gt.V(t, report.Errors).Equal(4)
	})

	t.Run("rejects a missing user_id", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/sync/status", nil))

		gt.V(t, w.Code).Equal(http.StatusBadRequest)
	})

	t.Run("rejects a malformed since", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, httptest.NewRequest(http.MethodGet,
			"/api/sync/status?user_id=user-1&since=yesterday", nil))

		gt.V(t, w.Code).Equal(http.StatusBadRequest)
	})
}

func signPayload(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func newWebhookRequest(secret, eventType string, payload []byte) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/webhook/github", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", eventType)
	req.Header.Set("X-Hub-Signature-256", signPayload(secret, payload))
	return req
}

func TestWebhookEndpoint(t *testing.T) {
	const secret = "webhook-secret"

	payload := []byte(`{
		"repository": {
			"name": "handbook",
			"full_name": "octocat/handbook",
			"owner": {"login": "octocat"}
		},
		"commits": [{"id": "a"}, {"id": "b"}]
	}`)

	t.Run("applies a signed push event", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ApplyRepoPushFunc: func(ctx context.Context, input *model.RepoPushInput) error {
				return nil
			},
		}
		srv := server.New(uc, server.WithGitHubSecret(secret))

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, newWebhookRequest(secret, "push", payload))

		gt.V(t, w.Code).Equal(http.StatusOK)

		calls := uc.ApplyRepoPushCalls()
		gt.V(t, len(calls)).Equal(1)
		gt.V(t, calls[0].Input.Owner).Equal(types.GitHubHandle("octocat"))
		gt.V(t, calls[0].Input.Repository.Name).Equal("handbook")
		gt.V(t, calls[0].Input.Commits).Equal(2)
	})

	t.Run("rejects a bad signature", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc, server.WithGitHubSecret(secret))

		req := newWebhookRequest("wrong-secret", "push", payload)

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, req)

		gt.V(t, w.Code).Equal(http.StatusBadRequest)
		gt.V(t, len(uc.ApplyRepoPushCalls())).Equal(0)
	})

	t.Run("reports a failing event handler", func(t *testing.T) {
		uc := &mock.UseCaseMock{
			ApplyRepoPushFunc: func(ctx context.Context, input *model.RepoPushInput) error {
				return goerr.New("storage unavailable")
			},
		}
		srv := server.New(uc, server.WithGitHubSecret(secret))

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, newWebhookRequest(secret, "push", payload))

		gt.V(t, w.Code).Equal(http.StatusInternalServerError)
	})

	t.Run("accepts an event with nothing to apply", func(t *testing.T) {
		uc := &mock.UseCaseMock{}
		srv := server.New(uc, server.WithGitHubSecret(secret))

		w := httptest.NewRecorder()
		srv.Mux().ServeHTTP(w, newWebhookRequest(secret, "installation_repositories", []byte(`{}`)))

		gt.V(t, w.Code).Equal(http.StatusOK)
	})
}
