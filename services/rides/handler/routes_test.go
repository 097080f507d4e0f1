package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/towjek/internal/pkg/database"
	jwtpkg "github.com/piresc/towjek/internal/pkg/jwt"
	"github.com/piresc/towjek/internal/pkg/middleware"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/internal/utils"
	"github.com/piresc/towjek/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRoutes(t *testing.T) (*echo.Echo, *mocks.MockRideUC, *models.Config) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockRideUC(ctrl)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &models.Config{}
	cfg.JWT = models.JWTConfig{Secret: "routes-test-secret", Expiration: 10, Issuer: "towjek-test"}
	cfg.APIKey.Internal = "internal-key"
	cfg.RateLimit.ProposalLimit = 2
	cfg.RateLimit.ProposalPeriod = time.Minute

	e := echo.New()
	e.Validator = utils.NewRequestValidator()
	NewHandler(uc, database.NewRedisClientFromClient(client), cfg).RegisterRoutes(e)

	return e, uc, cfg
}

func bearer(t *testing.T, cfg *models.Config, actor models.Actor) string {
	token, _, err := jwtpkg.GenerateToken(actor, cfg.JWT)
	require.NoError(t, err)
	return "Bearer " + token
}

func serve(e *echo.Echo, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRoutes_RequireAuthentication(t *testing.T) {
	e, _, _ := setupRoutes(t)

	for _, target := range []string{"/ride", "/ride/" + uuid.NewString()} {
		rec := serve(e, http.MethodGet, target, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, target)
	}
}

func TestRoutes_RoleGates(t *testing.T) {
	e, _, cfg := setupRoutes(t)
	rideID := uuid.NewString()
	requester := models.Actor{ID: uuid.New(), Role: models.ActorRequester}
	provider := models.Actor{ID: uuid.New(), Role: models.ActorProvider}

	tests := []struct {
		name   string
		actor  models.Actor
		method string
		target string
		body   string
	}{
		{name: "provider cannot create ride", actor: provider, method: http.MethodPost, target: "/ride", body: `{"service_type":"TOWING"}`},
		{name: "requester cannot bid", actor: requester, method: http.MethodPost, target: "/ride/" + rideID + "/proposal", body: `{"price":1,"estimated_time":1}`},
		{name: "provider cannot accept", actor: provider, method: http.MethodPut, target: "/ride/" + rideID + "/proposal/" + uuid.NewString()},
		{name: "requester cannot toggle availability", actor: requester, method: http.MethodPut, target: "/provider/availability", body: `{"is_available":true}`},
		{name: "provider cannot settle payment", actor: provider, method: http.MethodPut, target: "/ride/" + rideID + "/payment", body: `{"payment_status":"PAID"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(e, tt.method, tt.target, tt.body, map[string]string{
				echo.HeaderAuthorization: bearer(t, cfg, tt.actor),
			})
			assert.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestRoutes_ProposalRateLimit(t *testing.T) {
	e, uc, cfg := setupRoutes(t)
	provider := models.Actor{ID: uuid.New(), Role: models.ActorProvider}
	auth := map[string]string{echo.HeaderAuthorization: bearer(t, cfg, provider)}

	uc.EXPECT().
		SubmitProposal(gomock.Any(), provider, gomock.Any(), gomock.Any()).
		Return(&models.Proposal{ID: uuid.New()}, nil).
		Times(2)

	for i := 0; i < 2; i++ {
		rec := serve(e, http.MethodPost, "/ride/"+uuid.NewString()+"/proposal", `{"price":40,"estimated_time":10}`, auth)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := serve(e, http.MethodPost, "/ride/"+uuid.NewString()+"/proposal", `{"price":40,"estimated_time":10}`, auth)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRoutes_InternalExpire(t *testing.T) {
	e, uc, _ := setupRoutes(t)

	rec := serve(e, http.MethodPost, "/internal/proposals/expire", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(e, http.MethodPost, "/internal/proposals/expire", "", map[string]string{middleware.APIKeyHeader: "wrong"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	uc.EXPECT().ExpireProposals(gomock.Any()).Return(1, nil)
	rec = serve(e, http.MethodPost, "/internal/proposals/expire", "", map[string]string{middleware.APIKeyHeader: "internal-key"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRoutes_AcceptReachesUseCase(t *testing.T) {
	e, uc, cfg := setupRoutes(t)
	requester := models.Actor{ID: uuid.New(), Role: models.ActorRequester}
	rideID, proposalID := uuid.New(), uuid.New()

	uc.EXPECT().AcceptProposal(gomock.Any(), requester, rideID, proposalID).Return(&models.AcceptanceResult{
		Ride:     &models.Ride{ID: rideID, Status: models.RideStatusAccepted},
		Accepted: &models.Proposal{ID: proposalID, Status: models.ProposalStatusAccepted},
	}, nil)

	rec := serve(e, http.MethodPut, "/ride/"+rideID.String()+"/proposal/"+proposalID.String(), "", map[string]string{
		echo.HeaderAuthorization: bearer(t, cfg, requester),
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}
