package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/pmhub/secctx/internal/adapters/http/dto"
	"github.com/pmhub/secctx/internal/app"
	"github.com/pmhub/secctx/internal/domain"
	"github.com/pmhub/secctx/internal/mocks"
	"github.com/pmhub/secctx/internal/ports"
	"github.com/pmhub/secctx/internal/security"
)

var fixedNow = time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)

func newAuditService(t *testing.T, sinks ...ports.AuditSink) *app.AuditService {
	t.Helper()

	return app.NewAuditService(app.AuditServiceConfig{
		Sinks:     sinks,
		QueueSize: 4,
		Workers:   1,
		Now:       func() time.Time { return fixedNow },
	})
}

// serve runs one request through a router carrying the given identity.
func serve(h *ContextHandler, method, path, body string, store *security.Store) *httptest.ResponseRecorder {
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Request = c.Request.WithContext(security.WithContext(c.Request.Context(), store))
		c.Next()
	})
	h.RegisterContextRoutes(router.Group("/api/v1"))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func bob() *security.Store {
	s := security.New()
	s.SetUserID("7")
	s.SetUserName("bob")
	s.SetUserKey("k-123")
	s.SetPermission("admin,read")

	return s
}

func TestContextHandler_Me(t *testing.T) {
	tests := []struct {
		name     string
		store    *security.Store
		expected dto.PrincipalResponse
	}{
		{
			name:  "authenticated caller",
			store: bob(),
			expected: dto.PrincipalResponse{
				UserID:      7,
				UserName:    "bob",
				HasUserKey:  true,
				Permissions: []string{"admin", "read"},
			},
		},
		{
			name:  "empty context",
			store: security.New(),
			expected: dto.PrincipalResponse{
				Permissions: []string{},
				Anonymous:   true,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewContextHandler(app.NewProfileService(), newAuditService(t))

			w := serve(h, http.MethodGet, "/api/v1/context/me", "", tt.store)

			require.Equal(t, http.StatusOK, w.Code)
			assert.NotContains(t, w.Body.String(), "k-123")

			var resp dto.PrincipalResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expected, resp)
		})
	}
}

func TestContextHandler_Audit_Accepted(t *testing.T) {
	written := make(chan *domain.AuditEntry, 1)

	sink := mocks.NewMockAuditSink(t)
	sink.EXPECT().Name().Return("mock").Maybe()
	sink.EXPECT().Write(mock.Anything, mock.AnythingOfType("*domain.AuditEntry")).
		Run(func(ctx context.Context, entry *domain.AuditEntry) {
			assert.Equal(t, "bob", security.UserName(ctx))
			written <- entry
		}).
		Return(nil).
		Once()

	audit := newAuditService(t, sink)
	h := NewContextHandler(app.NewProfileService(), audit)

	store := bob()
	w := serve(h, http.MethodPost, "/api/v1/context/audit", `{"action":"export","detail":"q3 report"}`, store)

	require.Equal(t, http.StatusAccepted, w.Code)

	var resp dto.AuditResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "export", resp.Action)
	assert.Equal(t, int64(7), resp.UserID)
	assert.True(t, fixedNow.Equal(resp.OccurredAt))

	// The request is over; its context may be wiped without affecting the entry.
	store.Reset()
	require.NoError(t, audit.Close(context.Background()))

	entry := <-written
	assert.Equal(t, resp.ID, entry.ID)
	assert.Equal(t, "admin,read", entry.Permission)
}

func TestContextHandler_Audit_BadRequests(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		expectedCode string
		detailField  string
	}{
		{name: "malformed json", body: `{`, expectedCode: dto.ErrorCodeBadRequest},
		{name: "missing action", body: `{"detail":"x"}`, expectedCode: dto.ErrorCodeValidation, detailField: "action"},
		{name: "blank action", body: `{"action":"   "}`, expectedCode: dto.ErrorCodeValidation, detailField: "action"},
		{
			name:         "action too long",
			body:         `{"action":"` + strings.Repeat("a", 65) + `"}`,
			expectedCode: dto.ErrorCodeValidation,
			detailField:  "action",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := mocks.NewMockAuditSink(t)
			h := NewContextHandler(app.NewProfileService(), newAuditService(t, sink))

			w := serve(h, http.MethodPost, "/api/v1/context/audit", tt.body, bob())

			assert.Equal(t, http.StatusBadRequest, w.Code)

			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.expectedCode, resp.Error.Code)

			if tt.detailField != "" {
				assert.Contains(t, resp.Error.Details, tt.detailField)
			}
		})
	}
}

func TestContextHandler_Audit_ServiceClosed(t *testing.T) {
	audit := newAuditService(t)
	require.NoError(t, audit.Close(context.Background()))

	h := NewContextHandler(app.NewProfileService(), audit)

	w := serve(h, http.MethodPost, "/api/v1/context/audit", `{"action":"export"}`, bob())

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeUnavailable, resp.Error.Code)
}

func TestContextHandler_RegisterContextRoutes(t *testing.T) {
	h := NewContextHandler(app.NewProfileService(), newAuditService(t))

	router := gin.New()
	h.RegisterContextRoutes(router.Group("/api/v1"))

	routeMap := make(map[string]bool)
	for _, r := range router.Routes() {
		routeMap[r.Method+" "+r.Path] = true
	}

	assert.True(t, routeMap["GET /api/v1/context/me"])
	assert.True(t, routeMap["POST /api/v1/context/audit"])
}
