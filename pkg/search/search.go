package search

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/okiedokie/student-image-finder/pkg/lookup"
	"github.com/okiedokie/student-image-finder/pkg/student"
)

// ErrBlankScholarID is returned for empty or whitespace-only input. No
// lookup is issued.
var ErrBlankScholarID = errors.New("Please enter Scholar ID")

// ErrSuperseded is returned by a search whose result arrived after a newer
// search was started. Its outcome must not be shown.
var ErrSuperseded = errors.New("search superseded by a newer search")

// Result is one successful search, already projected for display.
type Result struct {
	RequestID string
	ScholarID string
	Record    student.Record
	Summary   student.Summary
	Slots     []student.DisplaySlot
}

type Options struct {
	Logger *slog.Logger
	// Slot definitions to project; DefaultSlots when nil.
	Slots []student.SlotDefinition
}

// Searcher runs one lookup at a time. Starting a search cancels the one in
// flight, and only the most recent search may publish its result.
type Searcher struct {
	svc    lookup.Service
	logger *slog.Logger
	slots  []student.SlotDefinition

	mu      sync.Mutex
	gen     uint64
	cancel  context.CancelFunc
	current *Result
}

func New(svc lookup.Service, opts Options) *Searcher {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	slots := opts.Slots
	if slots == nil {
		slots = student.DefaultSlots
	}

	return &Searcher{
		svc:    svc,
		logger: logger.With(slog.String("component", "search")),
		slots:  slots,
	}
}

// Validate rejects blank input.
func Validate(input string) error {
	if strings.TrimSpace(input) == "" {
		return ErrBlankScholarID
	}
	return nil
}

// Search validates input and looks it up. The input is sent untrimmed.
func (s *Searcher) Search(ctx context.Context, input string) (Result, error) {
	if err := Validate(input); err != nil {
		return Result{}, err
	}

	ctx, gen := s.begin(ctx)
	requestID := uuid.NewString()

	log := s.logger.With(
		slog.String("request_id", requestID),
		slog.String("scholar_id", input),
	)
	log.Debug("search started")

	record, err := s.svc.Student(ctx, input)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.gen {
		log.Debug("search superseded, dropping result")
		return Result{}, ErrSuperseded
	}
	s.cancel()
	s.cancel = nil

	if err != nil {
		log.Info("search failed", slog.String("message", lookup.UserMessage(err)))
		return Result{}, err
	}

	result := Result{
		RequestID: requestID,
		ScholarID: input,
		Record:    record,
		Summary:   student.Summarize(record),
		Slots:     student.Cards(record, s.slots),
	}
	s.current = &result

	log.Info("search completed", slog.Int("cards", len(result.Slots)))
	return result, nil
}

// begin supersedes the search in flight and clears the current record.
func (s *Searcher) begin(parent context.Context) (context.Context, uint64) {
	ctx, cancel := context.WithCancel(parent)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cancel != nil {
		s.cancel()
	}
	s.gen++
	s.cancel = cancel
	s.current = nil

	return ctx, s.gen
}

// Current returns the record shown by the last successful search, if the
// most recent search succeeded.
func (s *Searcher) Current() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return Result{}, false
	}
	return *s.current, true
}

// UserMessage maps a search error to the inline text shown to a user.
func UserMessage(err error) string {
	if errors.Is(err, ErrBlankScholarID) {
		return ErrBlankScholarID.Error()
	}
	return lookup.UserMessage(err)
}
