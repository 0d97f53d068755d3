package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/okiedokie/student-image-finder/pkg/lookup"
	"github.com/okiedokie/student-image-finder/pkg/search"
)


type searchDoneMsg struct {
	seq    int
	result search.Result
	err    error
}

type loadingTickMsg struct {
	seq int
}

type refreshDoneMsg struct {
	ok bool
}

type Model struct {
	ctx      context.Context
	svc      lookup.Service
	searcher *search.Searcher
	rotator  *search.Rotator
	styles   Styles

	input textinput.Model
	spin  spinner.Model

	// seq identifies the latest search; stale messages carry an older one.
	seq        int
	loading    bool
	loadingMsg string
	err        string
	alert      string
	result     *search.Result
	width      int
}

func New(ctx context.Context, svc lookup.Service, searcher *search.Searcher) *Model {
	input := textinput.New()
	input.Placeholder = "Enter Scholar ID (e.g. 2172/2016)"
	input.Prompt = "› "
	input.CharLimit = 64
	input.Focus()

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		ctx:      ctx,
		svc:      svc,
		searcher: searcher,
		rotator:  search.NewRotator(),
		styles:   DefaultStyles(),
		input:    input,
		spin:     spin,
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			return m, m.startSearch()
		case "ctrl+r":
			m.alert = "Refreshing sheet..."
			return m, m.refreshCmd()
		}

	case searchDoneMsg:
		if msg.seq != m.seq || errors.Is(msg.err, search.ErrSuperseded) {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.err = search.UserMessage(msg.err)
			return m, nil
		}
		result := msg.result
		m.result = &result
		return m, nil

	case loadingTickMsg:
		if !m.loading || msg.seq != m.seq {
			return m, nil
		}
		m.loadingMsg = m.rotator.Next()
		return m, m.loadingTick()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case refreshDoneMsg:
		if msg.ok {
			m.alert = "Sheet refreshed: true"
		} else {
			m.alert = "Sheet refreshed: false"
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startSearch clears the previous outcome and issues a lookup. A search
// already in flight is superseded.
func (m *Model) startSearch() tea.Cmd {
	input := m.input.Value()

	m.err = ""
	m.result = nil

	if err := search.Validate(input); err != nil {
		m.err = search.UserMessage(err)
		return nil
	}

	m.seq++
	m.loading = true
	m.rotator.Reset()
	m.loadingMsg = m.rotator.Next()

	return tea.Batch(
		m.searchCmd(m.seq, input),
		m.loadingTick(),
		m.spin.Tick,
	)
}

func (m *Model) searchCmd(seq int, input string) tea.Cmd {
	ctx, searcher := m.ctx, m.searcher
	return func() tea.Msg {
		result, err := searcher.Search(ctx, input)
		return searchDoneMsg{seq: seq, result: result, err: err}
	}
}

func (m *Model) loadingTick() tea.Cmd {
	seq := m.seq
	return tea.Tick(search.DefaultLoadingInterval, func(time.Time) tea.Msg {
		return loadingTickMsg{seq: seq}
	})
}

func (m *Model) refreshCmd() tea.Cmd {
	ctx, svc := m.ctx, m.svc
	return func() tea.Msg {
		ok, _ := svc.RefreshSheet(ctx)
		return refreshDoneMsg{ok: ok}
	}
}
