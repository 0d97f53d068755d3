package lookup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/okiedokie/student-image-finder/pkg/student"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
)

const (
	maxErrBodyLogBytes = 800

	// Lookups abandoned because the caller moved on, usually a newer search.
	outcomeCancelled = "cancelled"
)

type errorBody struct {
	Detail json.RawMessage `json:"detail"`
}

func (s *service) Student(ctx context.Context, scholarID string) (student.Record, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "lookup.Student")
	defer span.End()

	record, outcome, err := s.fetchStudent(ctx, scholarID)

	s.lookups.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	span.SetAttributes(attribute.String("lookup.outcome", outcome))
	if err != nil && outcome != outcomeCancelled {
		span.RecordError(err)
		span.SetStatus(codes.Error, outcome)
	}

	return record, err
}

func (s *service) fetchStudent(ctx context.Context, scholarID string) (student.Record, string, error) {
	if scholarID == "" {
		return nil, "invalid", fmt.Errorf("%w: empty scholar id", ErrLookupFailed)
	}

	endpoint := s.baseURL + "/student/" + url.PathEscape(scholarID)

	log := s.logger.With(
		slog.String("scholar_id", scholarID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		log.Error("student lookup create request failed", slog.Any("error", err))
		return nil, "error", fmt.Errorf("%w: create request: %w", ErrLookupFailed, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := s.client.Do(req)
	latency := time.Since(start)

	if errors.Is(err, context.Canceled) {
		log.Debug("student lookup cancelled", slog.Duration("latency", latency))
		return nil, outcomeCancelled, fmt.Errorf("%w: request: %w", ErrLookupFailed, err)
	}
	if err != nil {
		log.Error("student lookup request failed",
			slog.Any("error", err),
			slog.Duration("latency", latency),
		)
		return nil, "error", fmt.Errorf("%w: request: %w", ErrLookupFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Error("student lookup read body failed", slog.Any("error", err))
		return nil, "error", fmt.Errorf("%w: read body: %w", ErrLookupFailed, err)
	}

	log.Info("student lookup response received",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", latency),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if detail, ok := parseDetail(body); ok {
			log.Warn("student lookup rejected",
				slog.Int("status", resp.StatusCode),
				slog.String("detail", detail),
			)
			return nil, "rejected", &DetailError{Status: resp.StatusCode, Detail: detail}
		}

		log.Error("student lookup non-2xx",
			slog.Int("status", resp.StatusCode),
			slog.String("body_snippet", snippet(body)),
		)
		return nil, "error", fmt.Errorf("%w: status=%d", ErrLookupFailed, resp.StatusCode)
	}

	var record student.Record
	if err := json.Unmarshal(body, &record); err != nil {
		log.Error("student lookup decode failed", slog.Any("error", err))
		return nil, "error", fmt.Errorf("%w: %w", ErrLookupFailed, err)
	}

	log.Debug("student lookup decoded", slog.Int("fields", len(record)))
	return record, "found", nil
}

// parseDetail extracts a non-empty string "detail" from an error body.
// Whitespace counts as content and is passed through.
func parseDetail(body []byte) (string, bool) {
	var eb errorBody
	if err := json.Unmarshal(body, &eb); err != nil || len(eb.Detail) == 0 {
		return "", false
	}

	var detail string
	if err := json.Unmarshal(eb.Detail, &detail); err != nil {
		return "", false
	}
	if detail == "" {
		return "", false
	}
	return detail, true
}

func snippet(body []byte) string {
	s := string(body)
	if len(s) > maxErrBodyLogBytes {
		s = s[:maxErrBodyLogBytes] + "..."
	}
	return s
}
