package ui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/svitlo/internal/feed"
	"github.com/five82/svitlo/internal/i18n"
	"github.com/five82/svitlo/internal/logging"
	"github.com/five82/svitlo/internal/metrics"
	"github.com/five82/svitlo/internal/poll"
	"github.com/five82/svitlo/internal/prefs"
	"github.com/five82/svitlo/internal/publish"
	"github.com/five82/svitlo/internal/schedule"
	"github.com/five82/svitlo/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   feed.Fetcher
	Store     *state.Store
	Catalog   *i18n.Catalog
	Prefs     prefs.Prefs
	PrefsPath string
	Featured  string
	FeedURL   string
	PollEvery time.Duration
	TickEvery time.Duration
	Sink      metrics.Sink
	Publisher publish.Publisher
	Logger    logging.Logger
	Now       func() time.Time
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   feed.Fetcher
	store     *state.Store
	catalog   *i18n.Catalog
	prefsPath string
	featured  string
	feedURL   string
	tickEvery time.Duration
	sink      metrics.Sink
	publisher publish.Publisher
	log       logging.Logger
	now       func() time.Time

	// UI state
	view     state.ViewState
	theme    Theme
	keys     keyMap
	help     help.Model
	focus    state.Section
	width    int
	height   int
	ready    bool
	viewport viewport.Model
	showHelp bool

	// Refresh state
	countdown    poll.Countdown
	visibility   poll.Visibility
	refreshing   bool
	restartAfter bool // start the countdown once the in-flight refresh lands
	cycle        refreshCycle
	renderedSlot int
	followNow    bool // scroll the current hour into view on the next sync
}

// New creates a new Bubble Tea model. The first refresh is already in flight
// once Init runs; the countdown starts after its result is applied.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	pollEvery := opts.PollEvery
	if pollEvery <= 0 {
		pollEvery = poll.DefaultInterval
	}
	tickEvery := opts.TickEvery
	if tickEvery <= 0 {
		tickEvery = DefaultTickInterval
	}
	catalog := opts.Catalog
	if catalog == nil {
		catalog = i18n.Default()
	}
	sink := opts.Sink
	if sink == nil {
		sink = metrics.NopSink{}
	}
	publisher := opts.Publisher
	if publisher == nil {
		publisher = publish.NopPublisher{}
	}
	log := opts.Logger
	if log == nil {
		log = logging.NopLogger{}
	}
	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}
	store := opts.Store
	if store == nil {
		store = state.NewStore(nil)
	}

	p := opts.Prefs.Normalize()
	m := Model{
		ctx:          ctx,
		fetcher:      opts.Fetcher,
		store:        store,
		catalog:      catalog,
		prefsPath:    prefsPath,
		featured:     opts.Featured,
		feedURL:      opts.FeedURL,
		tickEvery:    tickEvery,
		sink:         sink,
		publisher:    publisher,
		log:          log,
		now:          now,
		view:         state.NewViewState(p.Lang, p.Theme),
		theme:        GetTheme(p.Theme),
		keys:         DefaultKeyMap(),
		help:         help.New(),
		focus:        state.SectionGroup,
		countdown:    poll.NewCountdown(pollEvery),
		visibility:   poll.NewVisibility(pollEvery),
		restartAfter: true,
		followNow:    true,
	}
	m.refreshing = true
	m.cycle = newRefreshCycle(metrics.TriggerStartup, now())
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.tickEvery),
		fetchCmd(m.ctx, m.fetcher, m.cycle, m.now),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, m.bodyHeight())
		}
		m.ready = true
		m.syncViewport()
		return m, nil

	case tickMsg:
		return m.handleTick()

	case refreshResultMsg:
		return m.handleRefreshResult(msg)

	case tea.BlurMsg:
		m.visibility.Hide(m.now())
		return m, nil

	case tea.FocusMsg, tea.ResumeMsg:
		return m.handleVisible()

	case reportDoneMsg:
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return m.translator().T(i18n.KeyStateLoading)
	}

	if m.showHelp {
		return m.renderHelp()
	}

	return m.renderMain()
}

// handleTick advances the countdown. Ticks arriving while a refresh is in
// flight do not count down.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	cmds := []tea.Cmd{tickCmd(m.tickEvery)}

	if !m.refreshing && m.countdown.Tick() {
		cmds = append(cmds, m.startRefresh(metrics.TriggerTimer, false))
	}

	if slot := schedule.CurrentSlot(m.now()); slot != m.renderedSlot {
		m.followNow = true
		m.syncViewport()
	}

	return m, tea.Batch(cmds...)
}

// handleVisible runs when the terminal regains focus or the program resumes
// from suspension. After a long absence the countdown is stopped and a
// refresh runs; the countdown restarts once that refresh lands.
func (m Model) handleVisible() (tea.Model, tea.Cmd) {
	if !m.visibility.Show(m.now()) {
		return m, nil
	}
	m.countdown.Stop()
	return m, m.startRefresh(metrics.TriggerVisibility, true)
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	f := m.frame()
	var b strings.Builder

	b.WriteString(f.renderHeader(m.countdown.String(), m.refreshing))
	b.WriteString("\n")

	if f.snap.FetchFailed() {
		b.WriteString(f.renderBanner())
		b.WriteString("\n")
	}

	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

// renderFooter renders the short key help.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()
	h := m.help
	h.Width = m.width - 2
	h.Styles.ShortKey = styles.WarningText
	h.Styles.ShortDesc = styles.MutedText
	h.Styles.ShortSeparator = styles.FaintText
	keys := m.keys.localize(m.translator())
	return styles.Footer.Width(m.width).MaxHeight(footerLines).Render(h.ShortHelpView(keys.ShortHelp()))
}

// bodyHeight returns the rows left for the scrollable body.
func (m Model) bodyHeight() int {
	h := m.height - headerLines - footerLines
	if m.store.Snapshot().FetchFailed() {
		h -= bannerLines
	}
	if h < 1 {
		h = 1
	}
	return h
}

// syncViewport re-renders the body into the viewport. When followNow is set
// the current hour of the timeline is scrolled into view.
func (m *Model) syncViewport() {
	if !m.ready {
		return
	}
	f := m.frame()
	m.viewport.Width = m.width
	m.viewport.Height = m.bodyHeight()

	body := f.renderBody()
	if source := f.renderSource(m.feedURL); source != "" {
		body += "\n\n" + source
	}
	m.viewport.SetContent(body)
	m.renderedSlot = schedule.CurrentSlot(f.now)

	if m.followNow {
		m.followNow = false
		line := groupSectionLead + m.renderedSlot - 1
		switch {
		case line < m.viewport.YOffset:
			m.viewport.SetYOffset(line)
		case line >= m.viewport.YOffset+m.viewport.Height:
			m.viewport.SetYOffset(line - m.viewport.Height + 1)
		}
	}
}

// frame captures the state one render reads.
func (m Model) frame() frame {
	return frame{
		theme:     m.theme,
		styles:    m.theme.Styles(),
		tr:        m.translator(),
		snap:      m.store.Snapshot(),
		view:      m.view,
		groups:    m.store.Groups(),
		featured:  m.featured,
		focus:     m.focus,
		markFocus: true,
		now:       m.now(),
		width:     m.width,
	}
}

func (m Model) translator() i18n.Translator {
	return m.catalog.For(i18n.Lang(m.view.Lang))
}

// savePrefs persists language and theme. Failures are logged and ignored.
func (m Model) savePrefs() {
	p := prefs.Prefs{Lang: m.view.Lang, Theme: m.view.Theme}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.log.Warnf("save prefs: %v", err)
	}
}

// Messages

type tickMsg time.Time

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the Bubble Tea program and blocks until it exits or ctx is
// cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
		tea.WithMouseCellMotion(),
	)

	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-m.ctx.Done():
			p.Quit()
		case <-done:
		}
	}()

	_, err := p.Run()
	return err
}
