package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okiedokie/student-image-finder/api/handlers"
	"github.com/okiedokie/student-image-finder/pkg/circuitbreaker"
	"github.com/okiedokie/student-image-finder/pkg/lookup"
	"github.com/okiedokie/student-image-finder/pkg/student"
)

type countingBreaker struct {
	mu        sync.Mutex
	allowErr  error
	successes int
	failures  int
}

func (b *countingBreaker) Allow(context.Context) error {
	return b.allowErr
}

func (b *countingBreaker) OnSuccess(context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.successes++
}

func (b *countingBreaker) OnFailure(context.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures++
}

func (b *countingBreaker) counts() (successes, failures int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.successes, b.failures
}

type lookupByID map[string]error

func (l lookupByID) Student(_ context.Context, scholarID string) (student.Record, error) {
	if err := l[scholarID]; err != nil {
		return nil, err
	}
	return student.Record{"Student Name": "Asha"}, nil
}

func (lookupByID) RefreshSheet(context.Context) (bool, error) {
	return true, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newStudentApp(breaker circuitbreaker.Breaker, svc lookup.Service) *fiber.App {
	app := fiber.New()
	withCB := WithCircuitBreaker(func(string) circuitbreaker.Breaker { return breaker })
	app.Get("/student/:id", withCB(handlers.StudentHandler(svc, nil, discardLogger())))
	return app
}

func get(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]any) {
	t.Helper()

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp, body
}

func TestWithCircuitBreaker_Accounting(t *testing.T) {
	svc := lookupByID{
		"missing": &lookup.DetailError{Status: http.StatusNotFound, Detail: "Student not found"},
		"broken":  fmt.Errorf("%w: status=500", lookup.ErrLookupFailed),
	}

	tests := []struct {
		description   string
		path          string
		expectedCode  int
		wantSuccesses int
		wantFailures  int
	}{
		{
			description:   "found record is a success",
			path:          "/student/ok",
			expectedCode:  http.StatusOK,
			wantSuccesses: 1,
		},
		{
			description:   "detail error is not an outage",
			path:          "/student/missing",
			expectedCode:  http.StatusNotFound,
			wantSuccesses: 1,
		},
		{
			description:  "generic upstream failure is recorded",
			path:         "/student/broken",
			expectedCode: http.StatusBadGateway,
			wantFailures: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			breaker := &countingBreaker{}

			resp, _ := get(t, newStudentApp(breaker, svc), tt.path)

			assert.Equal(t, tt.expectedCode, resp.StatusCode)
			successes, failures := breaker.counts()
			assert.Equal(t, tt.wantSuccesses, successes)
			assert.Equal(t, tt.wantFailures, failures)
		})
	}
}

func TestWithCircuitBreaker_FiberErrorCountsByCode(t *testing.T) {
	breaker := &countingBreaker{}
	app := fiber.New()
	withCB := WithCircuitBreaker(func(string) circuitbreaker.Breaker { return breaker })
	app.Get("/boom", withCB(func(*fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadGateway, "upstream down")
	}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/boom", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	successes, failures := breaker.counts()
	assert.Equal(t, 0, successes)
	assert.Equal(t, 1, failures)
}

func TestWithCircuitBreaker_OpenCircuitShortCircuits(t *testing.T) {
	breaker := &countingBreaker{allowErr: circuitbreaker.ErrCircuitOpen}
	svc := lookupByID{}

	resp, body := get(t, newStudentApp(breaker, svc), "/student/ok")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "CIRCUIT_OPEN", body["code"])
	assert.Equal(t, "service temporarily unavailable", body["error"])

	successes, failures := breaker.counts()
	assert.Zero(t, successes)
	assert.Zero(t, failures)
}

func TestWithCircuitBreaker_UnknownStateWhenFailClosed(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	opts := circuitbreaker.DefaultOptions()
	opts.FailOpen = false
	breaker := circuitbreaker.NewRedisBreaker(rdb, "student", opts, discardLogger())

	resp, body := get(t, newStudentApp(breaker, lookupByID{}), "/student/ok")

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
	assert.Equal(t, "BREAKER_ERROR", body["code"])
}

func TestWithCircuitBreaker_OneBreakerPerRoute(t *testing.T) {
	var names []string
	withCB := WithCircuitBreaker(func(name string) circuitbreaker.Breaker {
		names = append(names, name)
		return &countingBreaker{}
	})

	app := fiber.New()
	app.Get("/student/:id", withCB(func(c *fiber.Ctx) error { return c.SendStatus(fiber.StatusOK) }))

	for _, id := range []string{"1", "2", "3"} {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/student/"+id, nil), -1)
		require.NoError(t, err)
		resp.Body.Close()
	}

	assert.Equal(t, []string{"GET /student/:id"}, names)
}
