package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/EcoG-One/cue-to-m3u-converter/internal/playlist"
	"github.com/EcoG-One/cue-to-m3u-converter/internal/tasks"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	FileListView ViewState = iota
	OptionsView
	ConvertingView
	ResultView
)

// BatchSettings carries worker-pool configuration from the config file.
type BatchSettings struct {
	Workers   int
	RateLimit float64
}

// batchOutcome pairs a finished batch with its error for channel delivery.
type batchOutcome struct {
	result *tasks.BatchResult
	err    error
}

// optionNames label the three toggles on the options screen, in cursor order.
var optionNames = []string{
	"Extended header and #EXTINF metadata",
	"Absolute paths",
	"Single-file #t= start fragments",
}

// Model represents the TUI application state.
type Model struct {
	ctx        context.Context
	view       ViewState
	dir        string
	renderOpts playlist.Options
	batch      BatchSettings

	fileList list.Model
	docs     []string
	selected []string

	optionCursor int

	progressCh chan tasks.ProgressUpdate
	resultCh   chan batchOutcome
	progress   []string
	result     *tasks.BatchResult
	err        error

	width  int
	height int
	help   help.Model
	keys   keyMap
}

// NewModel builds the TUI rooted at dir, seeded with config-file defaults.
func NewModel(ctx context.Context, dir string, opts playlist.Options, batch BatchSettings) Model {
	l := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	l.Title = fmt.Sprintf("CUE sheets in %s", dir)
	l.SetShowHelp(false)

	return Model{
		ctx:        ctx,
		view:       FileListView,
		dir:        dir,
		renderOpts: opts,
		batch:      batch,
		fileList:   l,
		help:       help.New(),
		keys:       newKeyMap(),
	}
}

func (m Model) Init() tea.Cmd {
	return loadDocuments(m.dir)
}

// loadDocuments discovers CUE files under dir off the UI goroutine.
func loadDocuments(dir string) tea.Cmd {
	return func() tea.Msg {
		docs, err := tasks.DiscoverDocuments([]string{dir})
		return documentsLoadedMsg(docs, err)
	}
}

// listenProgress forwards one progress update as a message, switching to the
// batch outcome once the progress channel drains.
func listenProgress(progressCh chan tasks.ProgressUpdate, resultCh chan batchOutcome) tea.Cmd {
	return func() tea.Msg {
		if update, ok := <-progressCh; ok {
			return progressUpdateMsg(update)
		}
		out := <-resultCh
		return batchCompleteMsg(out.result, out.err)
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.fileList.SetSize(msg.Width-2, msg.Height-6)
		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, m.keys.quit) {
			return m, tea.Quit
		}
		return m.handleKey(msg)

	case Msg:
		return m.handleMsg(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.view {
	case FileListView:
		switch {
		case key.Matches(msg, m.keys.enter):
			if item, ok := m.fileList.SelectedItem().(cueItem); ok {
				m.selected = []string{item.path}
				m.view = OptionsView
			}
			return m, nil
		case key.Matches(msg, m.keys.all):
			if len(m.docs) > 0 {
				m.selected = m.docs
				m.view = OptionsView
			}
			return m, nil
		default:
			var cmd tea.Cmd
			m.fileList, cmd = m.fileList.Update(msg)
			return m, cmd
		}

	case OptionsView:
		switch {
		case key.Matches(msg, m.keys.up):
			if m.optionCursor > 0 {
				m.optionCursor--
			}
		case key.Matches(msg, m.keys.down):
			if m.optionCursor < len(optionNames)-1 {
				m.optionCursor++
			}
		case key.Matches(msg, m.keys.toggle):
			switch m.optionCursor {
			case 0:
				m.renderOpts.Extended = !m.renderOpts.Extended
			case 1:
				m.renderOpts.RelativePaths = !m.renderOpts.RelativePaths
			case 2:
				m.renderOpts.SingleFileTimestamps = !m.renderOpts.SingleFileTimestamps
			}
		case key.Matches(msg, m.keys.back):
			m.view = FileListView
		case key.Matches(msg, m.keys.enter):
			return m.startConversion()
		}
		return m, nil

	case ResultView:
		if key.Matches(msg, m.keys.restart) {
			m.view = FileListView
			m.selected = nil
			m.progress = nil
			m.result = nil
			m.err = nil
			return m, loadDocuments(m.dir)
		}
		return m, nil
	}

	return m, nil
}

// startConversion kicks off the batch in the background and begins listening
// for progress.
func (m Model) startConversion() (tea.Model, tea.Cmd) {
	m.view = ConvertingView
	m.progress = nil
	m.progressCh = make(chan tasks.ProgressUpdate, 50)
	m.resultCh = make(chan batchOutcome, 1)

	ctx := m.ctx
	inputs := m.selected
	opts := tasks.BatchOpts{
		Render:     tasks.ConvertOpts{Render: m.renderOpts},
		NumWorkers: m.batch.Workers,
		RateLimit:  m.batch.RateLimit,
	}
	progressCh, resultCh := m.progressCh, m.resultCh

	go func() {
		result, err := tasks.Batch(ctx, progressCh, inputs, opts)
		close(progressCh)
		resultCh <- batchOutcome{result, err}
	}()

	return m, listenProgress(progressCh, resultCh)
}

func (m Model) handleMsg(msg Msg) (tea.Model, tea.Cmd) {
	switch msg.kind {
	case MsgDocumentsLoaded:
		data := msg.data.(struct {
			docs []string
			err  error
		})
		if data.err != nil {
			m.err = data.err
			return m, nil
		}
		m.docs = data.docs
		items := make([]list.Item, 0, len(data.docs))
		for _, doc := range data.docs {
			items = append(items, cueItem{path: doc})
		}
		return m, m.fileList.SetItems(items)

	case MsgProgressUpdate:
		update := msg.data.(tasks.ProgressUpdate)
		m.progress = append(m.progress, update.Message)
		if len(m.progress) > 12 {
			m.progress = m.progress[len(m.progress)-12:]
		}
		return m, listenProgress(m.progressCh, m.resultCh)

	case MsgBatchComplete:
		data := msg.data.(struct {
			result *tasks.BatchResult
			err    error
		})
		m.result = data.result
		m.err = data.err
		m.view = ResultView
		return m, nil
	}

	return m, nil
}

func (m Model) View() string {
	switch m.view {
	case FileListView:
		return m.viewFileList()
	case OptionsView:
		return m.viewOptions()
	case ConvertingView:
		return m.viewConverting()
	case ResultView:
		return m.viewResult()
	}
	return ""
}

func (m Model) viewFileList() string {
	var b strings.Builder
	b.WriteString(m.fileList.View())
	b.WriteString("\n")
	if m.err != nil {
		b.WriteString(styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) viewOptions() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Conversion options"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Converting %d document(s)\n\n", len(m.selected)))

	values := []bool{
		m.renderOpts.Extended,
		!m.renderOpts.RelativePaths,
		m.renderOpts.SingleFileTimestamps,
	}
	for i, name := range optionNames {
		cursor := "  "
		if i == m.optionCursor {
			cursor = "> "
		}
		check := "[ ]"
		if values[i] {
			check = "[x]"
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, name))
	}

	b.WriteString("\n")
	b.WriteString(styles.help.Render("space: toggle • enter: convert • esc: back"))
	return b.String()
}

func (m Model) viewConverting() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Converting..."))
	b.WriteString("\n")
	for _, line := range m.progress {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) viewResult() string {
	var b strings.Builder
	b.WriteString(styles.title.Render("Conversion complete"))
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(styles.err.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}

	if m.result != nil {
		b.WriteString(styles.ok.Render(fmt.Sprintf("✓ %d converted (%d tracks)", m.result.Succeeded, m.result.TotalTracks)))
		b.WriteString("\n")
		if m.result.Failed > 0 {
			b.WriteString(styles.err.Render(fmt.Sprintf("✗ %d failed", m.result.Failed)))
			b.WriteString("\n")
			for _, res := range m.result.Results {
				if res.Err != nil {
					b.WriteString(styles.warn.Render(fmt.Sprintf("  %s: %v", res.Input, res.Err)))
					b.WriteString("\n")
				}
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.help.Render("r: restart • q: quit"))
	return b.String()
}
