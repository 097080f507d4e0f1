package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/towjek/internal/pkg/database"
	"github.com/piresc/towjek/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingCounter struct{}

func (failingCounter) IncrWindow(context.Context, string, time.Duration) (int64, time.Duration, error) {
	return 0, 0, errors.New("redis down")
}

func TestProposalRateLimiter(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()
	counter := database.NewRedisClientFromClient(client)

	e := echo.New()
	handler := ProposalRateLimiter(counter, 2, time.Minute)(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	provider := models.Actor{ID: uuid.New(), Role: models.ActorProvider}
	other := models.Actor{ID: uuid.New(), Role: models.ActorProvider}

	call := func(actor models.Actor) *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodPost, "/ride/r1/proposal", nil), rec)
		SetActor(c, actor)
		require.NoError(t, handler(c))
		return rec
	}

	assert.Equal(t, http.StatusCreated, call(provider).Code)
	rec := call(provider)
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = call(provider)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))

	assert.Equal(t, http.StatusCreated, call(other).Code, "limits are per provider")

	mr.FastForward(time.Minute + time.Second)
	assert.Equal(t, http.StatusCreated, call(provider).Code, "window resets")

	assert.True(t, mr.Exists("rate:limit:proposal_submit:"+provider.ID.String()))
}

func TestRateLimiterMiddleware_CounterError(t *testing.T) {
	e := echo.New()
	handler := RateLimiterMiddleware(RateLimiterConfig{
		Counter:  failingCounter{},
		Resource: "proposal_submit",
		Limit:    5,
		Period:   time.Minute,
	})(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRateLimiterMiddleware_Disabled(t *testing.T) {
	e := echo.New()
	handler := RateLimiterMiddleware(RateLimiterConfig{Counter: failingCounter{}, Limit: 0})(func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodPost, "/", nil), rec)

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
