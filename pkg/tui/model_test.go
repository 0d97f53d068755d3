package tui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okiedokie/student-image-finder/pkg/lookup"
	"github.com/okiedokie/student-image-finder/pkg/search"
	"github.com/okiedokie/student-image-finder/pkg/student"
)

type stubLookup struct {
	calls     int
	record    student.Record
	err       error
	refreshOK bool
}

func (s *stubLookup) Student(context.Context, string) (student.Record, error) {
	s.calls++
	return s.record, s.err
}

func (s *stubLookup) RefreshSheet(context.Context) (bool, error) {
	if !s.refreshOK {
		return false, errors.New("refresh failed")
	}
	return true, nil
}

func newTestModel(svc *stubLookup) *Model {
	searcher := search.New(svc, search.Options{Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	return New(context.Background(), svc, searcher)
}

func typeText(m *Model, text string) {
	m.input.SetValue(text)
}

func pressEnter(m *Model) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestEnter_BlankInputShowsValidationError(t *testing.T) {
	svc := &stubLookup{}
	m := newTestModel(svc)
	typeText(m, "   ")

	cmd := pressEnter(m)

	assert.Nil(t, cmd, "blank input must not issue a lookup")
	assert.Equal(t, "Please enter Scholar ID", m.err)
	assert.False(t, m.loading)
	assert.Equal(t, 0, svc.calls)
	assert.Contains(t, m.View(), "Please enter Scholar ID")
}

func TestEnter_StartsLoading(t *testing.T) {
	m := newTestModel(&stubLookup{})
	typeText(m, "2172/2016")

	cmd := pressEnter(m)

	require.NotNil(t, cmd)
	assert.True(t, m.loading)
	assert.Equal(t, 1, m.seq)
	assert.Equal(t, search.DefaultLoadingMessages[0], m.loadingMsg)
	assert.Contains(t, m.View(), "Searching...")
}

func TestSearchDone_ShowsCards(t *testing.T) {
	svc := &stubLookup{record: student.Record{
		"Student Name":         "Asha",
		"Father Name":          "Ravi",
		"Sibling-1 Scholar ID": "99",
	}}
	m := newTestModel(svc)
	typeText(m, "12")
	pressEnter(m)

	msg := m.searchCmd(m.seq, "12")()
	m.Update(msg)

	require.NotNil(t, m.result)
	assert.False(t, m.loading)
	assert.Empty(t, m.err)

	view := m.View()
	assert.Contains(t, view, "Asha")
	assert.Contains(t, view, "Photos & Documents")
	assert.Contains(t, view, "No Image")
	assert.Contains(t, view, "Scholar ID: 99")
	assert.NotContains(t, view, "Grandmother")
}

func TestSearchDone_ShowsDetailError(t *testing.T) {
	svc := &stubLookup{err: &lookup.DetailError{Status: 404, Detail: "Student not found"}}
	m := newTestModel(svc)
	typeText(m, "12")
	pressEnter(m)

	m.Update(m.searchCmd(m.seq, "12")())

	assert.Equal(t, "Student not found", m.err)
	assert.Nil(t, m.result)
	assert.False(t, m.loading)
}

func TestSearchDone_StaleResultIgnored(t *testing.T) {
	m := newTestModel(&stubLookup{})
	typeText(m, "1")
	pressEnter(m)
	typeText(m, "2")
	pressEnter(m)

	m.Update(searchDoneMsg{seq: 1, result: search.Result{ScholarID: "1"}})

	assert.Nil(t, m.result, "older search must not overwrite the newer one")
	assert.True(t, m.loading)

	m.Update(searchDoneMsg{seq: 2, err: search.ErrSuperseded})
	assert.True(t, m.loading, "superseded outcome is never shown")
}

func TestLoadingTick_RotatesUntilDone(t *testing.T) {
	m := newTestModel(&stubLookup{})
	typeText(m, "1")
	pressEnter(m)

	_, cmd := m.Update(loadingTickMsg{seq: m.seq})
	assert.NotNil(t, cmd)
	assert.Equal(t, search.DefaultLoadingMessages[1], m.loadingMsg)

	m.Update(searchDoneMsg{seq: m.seq, result: search.Result{}})

	_, cmd = m.Update(loadingTickMsg{seq: m.seq})
	assert.Nil(t, cmd, "ticker stops once loading ends")
}

func TestRefresh_ShowsAlert(t *testing.T) {
	m := newTestModel(&stubLookup{refreshOK: true})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	require.NotNil(t, cmd)
	assert.Equal(t, "Refreshing sheet...", m.alert)

	m.Update(cmd())
	assert.Equal(t, "Sheet refreshed: true", m.alert)
}

func TestQuit(t *testing.T) {
	m := newTestModel(&stubLookup{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
