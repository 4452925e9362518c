package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/controller/server"
	"github.com/gitfolio/gitfolio/pkg/domain/mock"
	"github.com/gitfolio/gitfolio/pkg/utils/logging"
)

func TestPreProcess(t *testing.T) {
	t.Run("injects a request-scoped logger", func(t *testing.T) {
		var capturedCtx context.Context

		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/probe", func(w http.ResponseWriter, r *http.Request) {
			capturedCtx = r.Context()
			w.WriteHeader(http.StatusOK)
		})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		logger := logging.From(capturedCtx)
		gt.V(t, logger == logging.From(context.Background())).Equal(false)

		reqID, _ := logging.CtxRequestID(capturedCtx)
		gt.True(t, reqID != "")

		// The ID was stored by the middleware, not minted on lookup
		again, _ := logging.CtxRequestID(capturedCtx)
		gt.V(t, again).Equal(reqID)
	})

	t.Run("passes handler status codes through", func(t *testing.T) {
		srv := server.New(&mock.UseCaseMock{})
		mux := srv.Mux()
		mux.HandleFunc("/teapot", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})

		w := httptest.NewRecorder()
		mux.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/teapot", nil))

		gt.V(t, w.Code).Equal(http.StatusTeapot)
	})
}
