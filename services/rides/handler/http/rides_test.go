package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/towjek/internal/pkg/apperror"
	"github.com/piresc/towjek/internal/pkg/middleware"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/piresc/towjek/internal/utils"
	"github.com/piresc/towjek/services/rides/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Kind    apperror.Kind   `json:"kind"`
	Code    int             `json:"code"`
}

func setupHandler(t *testing.T) (*RidesHandler, *mocks.MockRideUC, *echo.Echo) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)

	e := echo.New()
	e.Validator = utils.NewRequestValidator()

	return NewRidesHandler(mockRideUC), mockRideUC, e
}

// newContext builds a request context with path params and, when actor is non-nil, an authenticated caller
func newContext(e *echo.Echo, method, target, body string, actor *models.Actor, params map[string]string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(params))
	values := make([]string, 0, len(params))
	for k, v := range params {
		names = append(names, k)
		values = append(values, v)
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if actor != nil {
		middleware.SetActor(c, *actor)
	}
	return c, rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func TestNewRidesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRideUC := mocks.NewMockRideUC(ctrl)

	handler := NewRidesHandler(mockRideUC)

	assert.NotNil(t, handler)
	assert.Equal(t, mockRideUC, handler.rideUC)
}

func TestRidesHandler_CreateRide(t *testing.T) {
	actor := models.Actor{ID: uuid.New(), Role: models.ActorRequester}
	body := `{"service_type":"TOWING","origin":{"latitude":-23.5505,"longitude":-46.6333},"urgency":"HIGH"}`

	tests := []struct {
		name         string
		actor        *models.Actor
		body         string
		mockSetup    func(uc *mocks.MockRideUC)
		expectStatus int
		expectKind   apperror.Kind
	}{
		{
			name:  "created",
			actor: &actor,
			body:  body,
			mockSetup: func(uc *mocks.MockRideUC) {
				uc.EXPECT().
					CreateRide(gomock.Any(), actor, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ models.Actor, req models.CreateRideRequest) (*models.Ride, error) {
						assert.Equal(t, models.ServiceTowing, req.ServiceType)
						assert.Equal(t, models.UrgencyHigh, req.Urgency)
						return &models.Ride{ID: uuid.New(), RequesterID: actor.ID, Status: models.RideStatusPending}, nil
					})
			},
			expectStatus: http.StatusCreated,
		},
		{
			name:         "missing service type",
			actor:        &actor,
			body:         `{"origin":{"latitude":1,"longitude":1}}`,
			expectStatus: http.StatusBadRequest,
			expectKind:   apperror.KindValidation,
		},
		{
			name:         "latitude out of range",
			actor:        &actor,
			body:         `{"service_type":"TOWING","origin":{"latitude":91,"longitude":1}}`,
			expectStatus: http.StatusBadRequest,
			expectKind:   apperror.KindValidation,
		},
		{
			name:         "malformed json",
			actor:        &actor,
			body:         `{"service_type":`,
			expectStatus: http.StatusBadRequest,
		},
		{
			name:         "unauthenticated",
			body:         body,
			expectStatus: http.StatusUnauthorized,
		},
		{
			name:  "active ride conflict",
			actor: &actor,
			body:  body,
			mockSetup: func(uc *mocks.MockRideUC) {
				uc.EXPECT().CreateRide(gomock.Any(), actor, gomock.Any()).Return(nil, apperror.ErrActiveRideExists)
			},
			expectStatus: http.StatusConflict,
			expectKind:   apperror.KindConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, uc, e := setupHandler(t)
			if tt.mockSetup != nil {
				tt.mockSetup(uc)
			}

			c, rec := newContext(e, http.MethodPost, "/ride", tt.body, tt.actor, nil)
			require.NoError(t, handler.CreateRide(c))

			assert.Equal(t, tt.expectStatus, rec.Code)
			env := decode(t, rec)
			assert.Equal(t, tt.expectStatus < 300, env.Success)
			if tt.expectKind != "" {
				assert.Equal(t, tt.expectKind, env.Kind)
			}
		})
	}
}

func TestRidesHandler_GetRide(t *testing.T) {
	actor := models.Actor{ID: uuid.New(), Role: models.ActorRequester}
	rideID := uuid.New()

	t.Run("found", func(t *testing.T) {
		handler, uc, e := setupHandler(t)
		uc.EXPECT().GetRide(gomock.Any(), actor, rideID).Return(&models.Ride{ID: rideID, Status: models.RideStatusPending}, nil)

		c, rec := newContext(e, http.MethodGet, "/ride/"+rideID.String(), "", &actor, map[string]string{"rideID": rideID.String()})
		require.NoError(t, handler.GetRide(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var ride models.Ride
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &ride))
		assert.Equal(t, rideID, ride.ID)
	})

	t.Run("not found", func(t *testing.T) {
		handler, uc, e := setupHandler(t)
		uc.EXPECT().GetRide(gomock.Any(), actor, rideID).Return(nil, apperror.ErrRideNotFound)

		c, rec := newContext(e, http.MethodGet, "/ride/"+rideID.String(), "", &actor, map[string]string{"rideID": rideID.String()})
		require.NoError(t, handler.GetRide(c))

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "ride not found", decode(t, rec).Error)
	})

	t.Run("bad id", func(t *testing.T) {
		handler, _, e := setupHandler(t)

		c, rec := newContext(e, http.MethodGet, "/ride/nope", "", &actor, map[string]string{"rideID": "nope"})
		require.NoError(t, handler.GetRide(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestRidesHandler_ListRides_ParsesQuery(t *testing.T) {
	actor := models.Actor{ID: uuid.New(), Role: models.ActorProvider}
	handler, uc, e := setupHandler(t)

	uc.EXPECT().
		ListRides(gomock.Any(), actor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Actor, f models.RideFilter) (*models.RidePage, error) {
			require.NotNil(t, f.Near)
			assert.Equal(t, -23.55, f.Near.Latitude)
			assert.Equal(t, -46.63, f.Near.Longitude)
			assert.Equal(t, 5.0, f.Near.RadiusKm)
			assert.True(t, f.Available)
			assert.Equal(t, []models.RideStatus{models.RideStatusPending, models.RideStatusAccepted}, f.Statuses)
			require.NotNil(t, f.ServiceType)
			assert.Equal(t, models.ServiceTowing, *f.ServiceType)
			assert.Equal(t, 2, f.Page)
			assert.Equal(t, 10, f.PageSize)
			return &models.RidePage{Rides: []*models.Ride{}, Page: 2, PageSize: 10}, nil
		})

	target := "/ride?lat=-23.55&lon=-46.63&radius_km=5&available=true&status=pending,ACCEPTED&service_type=towing&page=2&page_size=10"
	c, rec := newContext(e, http.MethodGet, target, "", &actor, nil)
	require.NoError(t, handler.ListRides(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRidesHandler_ListRides_DefaultRadius(t *testing.T) {
	actor := models.Actor{ID: uuid.New(), Role: models.ActorProvider}
	handler, uc, e := setupHandler(t)

	uc.EXPECT().
		ListRides(gomock.Any(), actor, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.Actor, f models.RideFilter) (*models.RidePage, error) {
			require.NotNil(t, f.Near)
			assert.Equal(t, defaultRadiusKm, f.Near.RadiusKm)
			assert.Nil(t, f.ServiceType)
			return &models.RidePage{}, nil
		})

	c, rec := newContext(e, http.MethodGet, "/ride?lat=1&lon=2", "", &actor, nil)
	require.NoError(t, handler.ListRides(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRidesHandler_ListRides_BadQuery(t *testing.T) {
	actor := models.Actor{ID: uuid.New(), Role: models.ActorRequester}
	handler, _, e := setupHandler(t)

	c, rec := newContext(e, http.MethodGet, "/ride?page=two", "", &actor, nil)
	require.NoError(t, handler.ListRides(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRidesHandler_UpdateRideStatus(t *testing.T) {
	actor := models.Actor{ID: uuid.New(), Role: models.ActorProvider}
	rideID := uuid.New()
	params := map[string]string{"rideID": rideID.String()}

	tests := []struct {
		name         string
		body         string
		mockSetup    func(uc *mocks.MockRideUC)
		expectStatus int
	}{
		{
			name: "started",
			body: `{"status":"IN_PROGRESS"}`,
			mockSetup: func(uc *mocks.MockRideUC) {
				uc.EXPECT().
					TransitionRide(gomock.Any(), actor, rideID, models.RideStatusInProgress).
					Return(&models.Ride{ID: rideID, Status: models.RideStatusInProgress}, nil)
			},
			expectStatus: http.StatusOK,
		},
		{
			name: "illegal move",
			body: `{"status":"COMPLETED"}`,
			mockSetup: func(uc *mocks.MockRideUC) {
				uc.EXPECT().
					TransitionRide(gomock.Any(), actor, rideID, models.RideStatusCompleted).
					Return(nil, apperror.InvalidState("ride cannot move from ACCEPTED to COMPLETED"))
			},
			expectStatus: http.StatusConflict,
		},
		{
			name: "wrong role",
			body: `{"status":"CANCELLED"}`,
			mockSetup: func(uc *mocks.MockRideUC) {
				uc.EXPECT().
					TransitionRide(gomock.Any(), actor, rideID, models.RideStatusCancelled).
					Return(nil, apperror.ErrNotRideParty)
			},
			expectStatus: http.StatusForbidden,
		},
		{
			name:         "missing status",
			body:         `{}`,
			expectStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler, uc, e := setupHandler(t)
			if tt.mockSetup != nil {
				tt.mockSetup(uc)
			}

			c, rec := newContext(e, http.MethodPut, "/ride/"+rideID.String()+"/status", tt.body, &actor, params)
			require.NoError(t, handler.UpdateRideStatus(c))
			assert.Equal(t, tt.expectStatus, rec.Code)
		})
	}
}

func TestRidesHandler_UpdatePayment(t *testing.T) {
	actor := models.Actor{ID: uuid.New(), Role: models.ActorRequester}
	rideID := uuid.New()
	params := map[string]string{"rideID": rideID.String()}

	t.Run("paid", func(t *testing.T) {
		handler, uc, e := setupHandler(t)
		uc.EXPECT().
			UpdatePayment(gomock.Any(), actor, rideID, models.PaymentUpdateRequest{PaymentStatus: models.PaymentStatusPaid}).
			Return(&models.Ride{ID: rideID, PaymentStatus: models.PaymentStatusPaid}, nil)

		c, rec := newContext(e, http.MethodPut, "/", `{"payment_status":"PAID"}`, &actor, params)
		require.NoError(t, handler.UpdatePayment(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("pending rejected by validator", func(t *testing.T) {
		handler, _, e := setupHandler(t)

		c, rec := newContext(e, http.MethodPut, "/", `{"payment_status":"PENDING"}`, &actor, params)
		require.NoError(t, handler.UpdatePayment(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decode(t, rec).Error, "payment_status must be one of PAID FAILED")
	})
}

func TestRidesHandler_RateRide(t *testing.T) {
	actor := models.Actor{ID: uuid.New(), Role: models.ActorRequester}
	rideID := uuid.New()
	params := map[string]string{"rideID": rideID.String()}

	t.Run("rated", func(t *testing.T) {
		handler, uc, e := setupHandler(t)
		uc.EXPECT().
			RateRide(gomock.Any(), actor, rideID, models.CreateRatingRequest{Score: 5, Comment: "fast"}).
			Return(&models.Rating{ID: uuid.New(), RideID: rideID, Score: 5}, nil)

		c, rec := newContext(e, http.MethodPost, "/", `{"score":5,"comment":"fast"}`, &actor, params)
		require.NoError(t, handler.RateRide(c))
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("score too high", func(t *testing.T) {
		handler, _, e := setupHandler(t)

		c, rec := newContext(e, http.MethodPost, "/", `{"score":9}`, &actor, params)
		require.NoError(t, handler.RateRide(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("already rated", func(t *testing.T) {
		handler, uc, e := setupHandler(t)
		uc.EXPECT().RateRide(gomock.Any(), actor, rideID, gomock.Any()).Return(nil, apperror.ErrDuplicateRating)

		c, rec := newContext(e, http.MethodPost, "/", `{"score":4}`, &actor, params)
		require.NoError(t, handler.RateRide(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
