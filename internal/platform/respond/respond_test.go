// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package respond_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/scriptwriter/internal/platform/apperr"
	"github.com/taibuivan/scriptwriter/internal/platform/dberr"
	"github.com/taibuivan/scriptwriter/internal/platform/respond"
)

func decodeEnvelope(t *testing.T, recorder *httptest.ResponseRecorder) respond.ErrorEnvelope {
	t.Helper()

	var envelope respond.ErrorEnvelope
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	return envelope
}

/*
TestError_Envelope checks the status and code written for application and
unexpected errors.
*/
func TestError_Envelope(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"parent_not_found", apperr.ParentNotFound("Comic"), http.StatusBadRequest, apperr.CodeParentNotFound},
		{"store_unavailable", dberr.Wrap(dberr.ErrUnavailable, "comic.find"), http.StatusServiceUnavailable, apperr.CodeServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, apperr.CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			respond.Error(recorder, httptest.NewRequest(http.MethodGet, "/", nil), tt.err)

			require.Equal(t, tt.status, recorder.Code)
			assert.Equal(t, tt.code, decodeEnvelope(t, recorder).Code)
			assert.NotContains(t, recorder.Body.String(), "boom")
		})
	}
}

/*
TestError_ContextDone verifies nothing is written for a request whose context
has already ended.
*/
func TestError_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	request := httptest.NewRequest(http.MethodGet, "/", nil).WithContext(ctx)
	recorder := httptest.NewRecorder()
	respond.Error(recorder, request, dberr.Wrap(ctx.Err(), "comic.find"))

	assert.False(t, recorder.Flushed)
	assert.Empty(t, recorder.Header().Get("Content-Type"))
	assert.Zero(t, recorder.Body.Len())
}

/*
TestError_LeavesDeadlineToTimeoutMiddleware verifies an expired request is
answered once, with the timeout middleware's 504.
*/
func TestError_LeavesDeadlineToTimeoutMiddleware(t *testing.T) {
	handler := chimw.Timeout(10 * time.Millisecond)(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		<-request.Context().Done()
		respond.Error(writer, request, dberr.Wrap(request.Context().Err(), "comic.list"))
	}))

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusGatewayTimeout, recorder.Code)
	assert.Zero(t, recorder.Body.Len())
}
