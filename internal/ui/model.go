package ui

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"motionify/internal/binding"
	"motionify/internal/config"
	"motionify/internal/domain"
	"motionify/internal/eventbus"
	"motionify/internal/interpolate"
	"motionify/internal/scroll"
)

// rowPixels converts viewport rows into the pixel-ish units the scroll
// samples use, so thresholds and translate ranges keep their configured scale
const rowPixels = 16.0

// frameInterval is the animation frame rate of the demo
const frameInterval = 33 * time.Millisecond

// tabBarRows is the height of the tab bar chrome when fully visible
const tabBarRows = 2

var tabNames = []string{"Home", "Library", "Search", "Settings"}

// Model is the demo TUI: a scrolling document acting as the host scroll
// surface, a header bound to the raw offset, and a tab bar bound to the
// direction signal.
type Model struct {
	bus      eventbus.EventBus
	provider *scroll.Provider
	cfg      *config.Config
	styles   *Styles

	vp       viewport.Model
	tabBar   *binding.DirectionBinding
	header   *binding.OffsetBinding
	tabStyle binding.Style

	helpRenderer *HelpRenderer
	helpOps      *HelpOps
	program      *tea.Program

	width, height int
	ready         bool
	activeTab     int

	// low-frequency signal, fed by EventMsg only
	lastDir   domain.Direction
	lastEvent string

	lastTick time.Time
	err      error
}

// NewModel creates the demo model. The bindings come from configuration;
// the header's offset interpolation fades it out over the first 15 rows.
func NewModel(bus eventbus.EventBus, provider *scroll.Provider, cfg *config.Config) (*Model, error) {
	dirCfg := cfg.DirectionConfig()
	dirCfg.FadeScale = true
	tabBar, err := binding.NewDirectionBinding(dirCfg)
	if err != nil {
		return nil, err
	}
	tabBar.SetRoute(tabNames[0])
	tabBar.PinVisible("Settings")

	header, err := headerBinding(cfg)
	if err != nil {
		return nil, err
	}

	return &Model{
		bus:          bus,
		provider:     provider,
		cfg:          cfg,
		styles:       NewStyles(),
		tabBar:       tabBar,
		header:       header,
		tabStyle:     binding.Style{},
		helpRenderer: NewHelpRenderer(),
		lastDir:      domain.DirectionIdle,
		lastTick:     time.Now(),
	}, nil
}

// headerBinding fades and shrinks the header as the document scrolls away
// from the top
func headerBinding(cfg *config.Config) (*binding.OffsetBinding, error) {
	opacity, err := newSpec([]float64{0, 15 * rowPixels}, []float64{1, 0.1}, cfg)
	if err != nil {
		return nil, err
	}
	scale, err := newSpec([]float64{0, 15 * rowPixels}, []float64{1, 0.85}, cfg)
	if err != nil {
		return nil, err
	}
	return binding.NewOffsetBinding(binding.ChannelSpecs{
		binding.ChannelOpacity: opacity,
		binding.ChannelScale:   scale,
	}, nil), nil
}

// newSpec builds an interpolation spec using the configured extrapolation
func newSpec(inputRange, outputRange []float64, cfg *config.Config) (*interpolate.Spec, error) {
	return interpolate.NewSpec(inputRange, outputRange, cfg.Extrapolation())
}

// SetProgram wires the Bubble Tea program for pager terminal hand-off
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.helpOps = NewHelpOps(p)
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		docHeight := m.height - 1 - tabBarRows - 1 // header, tab bar, status
		if docHeight < 1 {
			docHeight = 1
		}
		if !m.ready {
			m.vp = viewport.New(m.width, docHeight)
			m.vp.SetContent(renderDocument(m.styles, m.width))
			m.ready = true
		} else {
			m.vp.Width = m.width
			m.vp.Height = docHeight
		}

	case tickMsg:
		now := time.Time(msg)
		dt := now.Sub(m.lastTick)
		m.lastTick = now
		m.tabStyle = m.tabBar.Step(dt)
		return m, tick()

	case EventMsg:
		m.handleEvent(msg.Event)

	case helpPagerMsg:
		if msg.err != nil {
			m.err = msg.err
			log.Printf("Help pager error: %v", msg.err)
		}

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.ready {
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			m.feedSample()
			return m, cmd
		}
	}

	return m, nil
}

// handleEvent consumes the low-frequency tier: discrete transitions only
func (m *Model) handleEvent(event eventbus.DomainEvent) {
	switch e := event.(type) {
	case eventbus.DirectionChangedEvent:
		m.lastDir = e.Current
	case eventbus.ScrollIdleEvent:
		m.lastDir = domain.DirectionIdle
		m.lastEvent = "idle timeout"
	case eventbus.ScrollStartedEvent:
		m.lastEvent = "gesture started"
	case eventbus.ThresholdChangedEvent:
		m.lastEvent = fmt.Sprintf("threshold %.0f", e.Threshold)
	case eventbus.IdleSupportChangedEvent:
		m.lastEvent = fmt.Sprintf("idle support %v", e.Enabled)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "?":
		if m.helpOps == nil {
			return m, nil
		}
		content := m.helpRenderer.RenderHelpContent()
		return m, func() tea.Msg {
			return helpPagerMsg{err: m.helpOps.ShowHelpInPager(content)}
		}

	case "i":
		if st, err := m.provider.Snapshot(); err == nil {
			m.provider.SetSupportIdle(!st.SupportIdle)
		}

	case "+", "=":
		if st, err := m.provider.Snapshot(); err == nil {
			m.provider.SetThreshold(st.Threshold + 2)
		}

	case "-":
		if st, err := m.provider.Snapshot(); err == nil {
			// Values <= 0 are ignored by the setter
			m.provider.SetThreshold(st.Threshold - 2)
		}

	case "t":
		m.activeTab = (m.activeTab + 1) % len(tabNames)
		// A route change forces the tab bar visible
		m.tabBar.SetRoute(tabNames[m.activeTab])

	case "g":
		if m.ready {
			m.vp.GotoTop()
			m.feedSample()
		}

	case "G":
		if m.ready {
			m.vp.GotoBottom()
			m.feedSample()
		}

	default:
		if m.ready {
			var cmd tea.Cmd
			m.vp, cmd = m.vp.Update(msg)
			m.feedSample()
			return m, cmd
		}
	}
	return m, nil
}

// feedSample is the high-frequency path: every scroll input produces one
// sample, classified synchronously, and the binding observes the result
// without any cross-goroutine hop.
func (m *Model) feedSample() {
	sample := domain.ScrollSample{
		OffsetY:        float64(m.vp.YOffset) * rowPixels,
		ContentHeight:  float64(m.vp.TotalLineCount()) * rowPixels,
		ViewportHeight: float64(m.vp.Height) * rowPixels,
	}
	if err := m.provider.Feed(sample); err != nil {
		m.err = err
		return
	}
	if st, err := m.provider.Snapshot(); err == nil {
		m.tabBar.Observe(st.Direction)
	}
}

// View renders the UI
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.renderTabBar())
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m *Model) renderHeader() string {
	offset := float64(m.vp.YOffset) * rowPixels
	style := m.header.Style(offset)

	opacity := 1.0
	if v, ok := style[binding.ChannelOpacity]; ok {
		opacity = v.Num
	}
	scale := 1.0
	if v, ok := style[binding.ChannelScale]; ok {
		scale = v.Num
	}

	title := "Motionify Demo"
	// Scale shrinks the rendered width of the header bar
	width := int(float64(m.width) * scale)
	if width < len(title)+2 {
		width = len(title) + 2
	}
	base := m.styles.Header
	if opacity < 0.75 {
		base = m.styles.HeaderDim
	}
	return opacityStyle(base, opacity).Width(width).Render(title)
}

func (m *Model) renderTabBar() string {
	// The translate channel moves the bar off the bottom edge; convert the
	// pixel offset into hidden rows
	fraction := 0.0
	tr := m.cfg.DirectionConfig().Translate
	if span := tr.To - tr.From; span != 0 {
		if v, ok := m.tabStyle[binding.ChannelTranslateY]; ok {
			fraction = (v.Num - tr.From) / span
		}
	}
	fraction = math.Max(0, math.Min(1, fraction))
	hiddenRows := int(math.Round(fraction * tabBarRows))

	opacity := 1.0
	if v, ok := m.tabStyle[binding.ChannelOpacity]; ok {
		opacity = v.Num
	}

	var rows []string
	if hiddenRows < tabBarRows {
		tabs := make([]string, len(tabNames))
		for i, name := range tabNames {
			if i == m.activeTab {
				tabs[i] = opacityStyle(m.styles.TabActive, opacity).Render(name)
			} else {
				tabs[i] = opacityStyle(m.styles.Tab, opacity).Render(name)
			}
		}
		bar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
		rows = append(rows, opacityStyle(m.styles.TabBar, opacity).Width(m.width).Render(bar))
		if hiddenRows < tabBarRows-1 {
			rows = append(rows, m.styles.Dim.Render(strings.Repeat("─", max(0, m.width))))
		}
	}
	// Blank rows keep the layout stable while the bar is off-screen
	for len(rows) < tabBarRows {
		rows = append(rows, "")
	}
	return strings.Join(rows, "\n") + "\n"
}

func (m *Model) renderStatus() string {
	st, err := m.provider.Snapshot()
	if err != nil {
		return m.styles.Status.Render("scroll state unavailable")
	}

	dir := m.styles.Direction.Render(string(m.lastDir))
	idle := "off"
	if st.SupportIdle {
		idle = "on"
	}
	status := fmt.Sprintf(
		"Direction: %s  offset %.0fpx  threshold %.0f  idle %s",
		dir, st.OffsetY, st.Threshold, idle,
	)
	if m.lastEvent != "" {
		status += m.styles.Dim.Render("  (" + m.lastEvent + ")")
	}
	hint := m.styles.Help.Render("  ? help · q quit")
	return m.styles.Status.Render(status) + hint
}
