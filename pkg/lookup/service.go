package lookup

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/okiedokie/student-image-finder/pkg/core"
	"github.com/okiedokie/student-image-finder/pkg/student"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/okiedokie/student-image-finder/pkg/lookup"

// Service talks to the remote student lookup service.
type Service interface {
	// Student fetches the record for scholarID. The id is sent as given.
	Student(ctx context.Context, scholarID string) (student.Record, error)
	// RefreshSheet asks the service to reload its data source. The response
	// body is ignored; only success or failure is reported.
	RefreshSheet(ctx context.Context) (bool, error)
}

type HTTPTransport interface {
	Do(req *http.Request) (*http.Response, error)
}

type Options struct {
	// Override for testing the HTTP client
	HTTPClient HTTPTransport
	// Structured logger using slog package
	Logger *slog.Logger
	// Context timeout, used only when the caller's context has no deadline
	Timeout time.Duration
}

type service struct {
	baseURL string
	client  HTTPTransport
	logger  *slog.Logger
	opts    Options
	tracer  trace.Tracer
	lookups metric.Int64Counter
}

func New(cfg *core.Config, opts Options) Service {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	logger = logger.With(
		slog.String("component", "lookup"),
	)

	client := opts.HTTPClient
	if client == nil {
		client = &http.Client{}
	}

	if opts.Timeout <= 0 {
		opts.Timeout = cfg.Lookup.Timeout
	}

	lookups, err := otel.Meter(instrumentationName).Int64Counter(
		"student.lookups",
		metric.WithDescription("Student lookups by outcome"),
	)
	if err != nil {
		logger.Warn("lookup counter unavailable", slog.Any("err", err))
		lookups, _ = noop.NewMeterProvider().Meter(instrumentationName).Int64Counter("student.lookups")
	}

	return &service{
		baseURL: cfg.LookupBaseURL(),
		client:  client,
		logger:  logger,
		opts:    opts,
		tracer:  otel.Tracer(instrumentationName),
		lookups: lookups,
	}
}

func (s *service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.opts.Timeout > 0 {
		if _, hasDeadline := ctx.Deadline(); !hasDeadline {
			return context.WithTimeout(ctx, s.opts.Timeout)
		}
	}
	return ctx, func() {}
}
