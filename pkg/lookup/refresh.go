package lookup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

func (s *service) RefreshSheet(ctx context.Context) (bool, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	ctx, span := s.tracer.Start(ctx, "lookup.RefreshSheet")
	defer span.End()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/refresh-sheet", http.NoBody)
	if err != nil {
		return false, fmt.Errorf("create refresh request: %w", err)
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	latency := time.Since(start)

	if err != nil {
		s.logger.Error("refresh sheet request failed",
			slog.Any("error", err),
			slog.Duration("latency", latency),
		)
		span.RecordError(err)
		return false, fmt.Errorf("refresh request: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	s.logger.Info("refresh sheet response received",
		slog.Int("status", resp.StatusCode),
		slog.Duration("latency", latency),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return false, fmt.Errorf("refresh sheet failed: status=%d", resp.StatusCode)
	}

	return true, nil
}
