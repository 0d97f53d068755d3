package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/okiedokie/student-image-finder/pkg/core"
	"github.com/okiedokie/student-image-finder/pkg/lookup"
	"github.com/okiedokie/student-image-finder/pkg/search"
	"github.com/okiedokie/student-image-finder/pkg/tui"
)

func main() {
	var (
		scholarID = flag.String("id", "", "look up one Scholar ID, print the cards and exit")
		refresh   = flag.Bool("refresh", false, "ask the lookup service to refresh its sheet and exit")
		logPath   = flag.String("log", "", "write logs to this file")
		baseURL   = flag.String("url", "", "lookup service base URL (overrides LOOKUP_BASE_URL)")
		timeout   = flag.Duration("timeout", 0, "per-lookup timeout (overrides LOOKUP_TIMEOUT)")
		logLevel  = flag.String("log-level", "", "debug, info, warn or error (overrides LOG_LEVEL)")
	)
	flag.Parse()

	opts := configOptions(*baseURL, *timeout, *logLevel)
	if err := run(*scholarID, *refresh, *logPath, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// configOptions turns the flags that were set into config overrides.
func configOptions(baseURL string, timeout time.Duration, logLevel string) []func(*core.Config) {
	var opts []func(*core.Config)
	if baseURL != "" {
		opts = append(opts, core.WithLookupBaseURL(baseURL))
	}
	if timeout > 0 {
		opts = append(opts, core.WithLookupTimeout(timeout))
	}
	if logLevel != "" {
		opts = append(opts, core.WithLogLevel(logLevel))
	}
	return opts
}

func run(scholarID string, refresh bool, logPath string, opts []func(*core.Config)) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	envErr := core.LoadEnv()

	cfg, err := core.NewConfigFromEnv(opts...)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	var logOut io.Writer = io.Discard
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger := core.NewLoggerTo(cfg, logOut)
	if envErr != nil {
		logger.Warn("failed to load env files", "err", envErr)
	}

	svc := lookup.New(&cfg, lookup.Options{Logger: logger})
	searcher := search.New(svc, search.Options{Logger: logger})

	switch {
	case refresh:
		ok, _ := svc.RefreshSheet(ctx)
		fmt.Printf("Sheet refreshed: %t\n", ok)
		return nil
	case scholarID != "":
		loadCtx, done := context.WithCancel(ctx)
		go func() {
			for msg := range search.NewRotator().Run(loadCtx, search.DefaultLoadingInterval) {
				fmt.Fprintln(os.Stderr, msg)
			}
		}()
		err := printOnce(ctx, os.Stdout, searcher, scholarID)
		done()
		return err
	}

	p := tea.NewProgram(tui.New(ctx, svc, searcher), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

func printOnce(ctx context.Context, out io.Writer, searcher *search.Searcher, scholarID string) error {
	result, err := searcher.Search(ctx, scholarID)
	if err != nil {
		return fmt.Errorf("%s", search.UserMessage(err))
	}

	s := result.Summary
	fmt.Fprintf(out, "%s (%s)\n", s.Name, s.ScholarID)
	fmt.Fprintf(out, "Course: %s  Stream: %s  Section: %s\n", s.Course, s.Stream, s.Section)
	fmt.Fprintf(out, "Father: %s  Mother: %s\n\n", s.Father, s.Mother)

	for _, slot := range result.Slots {
		fmt.Fprintf(out, "%-18s", slot.Label)
		if slot.HasImage() {
			fmt.Fprintf(out, " %s", slot.ImageURL)
		} else {
			fmt.Fprint(out, " No Image")
		}
		if slot.PersonName != "" {
			fmt.Fprintf(out, " | %s", slot.PersonName)
		}
		if slot.PersonID != "" {
			fmt.Fprintf(out, " | Scholar ID %s", slot.PersonID)
		}
		fmt.Fprintln(out)
	}

	return nil
}
