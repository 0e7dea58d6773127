// Package tui assembles the widget kit into the model browser: a lazy
// tree of the loaded model on the left, controls and node details on the
// right, and a status bar underneath.
package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"github.com/techsoft3d/visualize-components/internal/debounce"
	"github.com/techsoft3d/visualize-components/internal/tree"
	"github.com/techsoft3d/visualize-components/internal/tui/components/accordion"
	"github.com/techsoft3d/visualize-components/internal/tui/components/core"
	"github.com/techsoft3d/visualize-components/internal/tui/components/dropdown"
	"github.com/techsoft3d/visualize-components/internal/tui/components/proptable"
	"github.com/techsoft3d/visualize-components/internal/tui/components/status"
	"github.com/techsoft3d/visualize-components/internal/tui/components/toggle"
	"github.com/techsoft3d/visualize-components/internal/tui/components/treeview"
	"github.com/techsoft3d/visualize-components/internal/tui/events"
	"github.com/techsoft3d/visualize-components/internal/tui/styles"
	"github.com/techsoft3d/visualize-components/internal/viewer"
	"github.com/techsoft3d/visualize-components/internal/viewer/adapter"
)

const (
	headerHeight = 2
	statusHeight = 1
)

// Config carries the tunables the command layer resolves from flags and
// environment.
type Config struct {
	// Model is the sample model loaded at startup.
	Model string

	// SelectDelay is the settle delay before a selection reaches the
	// engine.
	SelectDelay time.Duration

	// SearchDelay is the settle delay for search-as-you-type.
	SearchDelay time.Duration

	// ShowIDs renders node IDs next to node names.
	ShowIDs bool
}

// Model is the browser application model.
type Model struct {
	width  int
	height int

	cfg Config

	// Engine side
	engine    *viewer.MemoryEngine
	modelTree *adapter.ModelTree
	props     *adapter.PropertyView
	selSync   *adapter.SelectionSync

	// Tree state
	lazyTree *tree.Tree[viewer.NodeID]

	// Components
	treeWidget  *treeview.Model[viewer.NodeID]
	modelPicker *dropdown.Model
	idsToggle   *toggle.Model
	detail      *accordion.Model
	general     *proptable.Model
	attrs       *proptable.Model
	statusBar   *status.Component
	split       *core.SplitLayout
	rightPane   *core.SimpleLayout

	focusables []core.Focusable
	focusIndex int

	// Event system
	eventBroker *events.Broker
	eventSub    <-chan events.Event

	// Search-as-you-type
	searching bool
	query     string
	searchDeb *debounce.Debouncer

	showHelp bool
}

// New creates the browser model over the named sample model.
func New(cfg Config, eventBroker *events.Broker) *Model {
	if cfg.Model == "" {
		cfg.Model = viewer.SampleNames()[0]
	}
	if cfg.SelectDelay <= 0 {
		cfg.SelectDelay = 150 * time.Millisecond
	}
	if cfg.SearchDelay <= 0 {
		cfg.SearchDelay = 250 * time.Millisecond
	}

	m := &Model{
		cfg:         cfg,
		eventBroker: eventBroker,
		statusBar:   status.New(),
		general:     proptable.New("General"),
		attrs:       proptable.New("Attributes"),
	}

	m.modelPicker = dropdown.New("model", "Model", viewer.SampleNames())
	m.idsToggle = toggle.New("ids", "Show node IDs", cfg.ShowIDs)
	m.detail = accordion.New([]accordion.Section{
		{Title: "General", Open: true},
		{Title: "Attributes"},
		{Title: "Description"},
	})

	m.loadModel(cfg.Model)
	m.treeWidget = treeview.New[viewer.NodeID](m.lazyTree,
		func(id viewer.NodeID, selected bool, data any) string {
			return m.modelTree.Content(id, selected, data)
		})

	m.rightPane = core.NewSimpleLayout()
	m.rightPane.AddComponent("model", m.modelPicker)
	m.rightPane.AddComponent("ids", m.idsToggle)
	m.rightPane.AddComponent("detail", m.detail)

	m.split = core.NewSplitLayout(m.treeWidget, m.rightPane, 0.42)

	m.focusables = []core.Focusable{
		m.treeWidget, m.modelPicker, m.idsToggle, m.detail,
	}

	m.searchDeb = debounce.New(func(args ...any) (any, error) {
		query, _ := args[0].(string)
		m.eventBroker.Publish(events.Event{
			Type:    events.SearchQueryEvent,
			Payload: events.SearchQueryPayload{Query: query},
		})
		return query, nil
	})

	m.eventSub = eventBroker.Subscribe()
	m.syncDetail()
	m.syncStatusLeft()

	return m
}

// Init initializes all components and starts event processing.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	cmds = append(cmds, m.split.Init())
	cmds = append(cmds, m.statusBar.Init())
	cmds = append(cmds, m.treeWidget.Focus())
	cmds = append(cmds, m.listenForEvents())

	m.eventBroker.PublishAsync(events.Event{
		Type: events.StatusMessageEvent,
		Payload: events.StatusMessagePayload{
			Message: "press ? for help",
			Type:    "info",
		},
	})

	return tea.Batch(cmds...)
}

// Update routes messages to the components and handles global keys.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if event, ok := msg.(events.Event); ok {
		cmd := m.handleEvent(event)
		return m, tea.Batch(cmd, m.listenForEvents())
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		contentHeight := m.height - headerHeight - statusHeight - 2
		if contentHeight < 1 {
			contentHeight = 1
		}
		cmds = append(cmds, m.split.SetSize(m.width-4, contentHeight))
		cmds = append(cmds, m.statusBar.SetSize(m.width, statusHeight))
		m.syncDetail()
		return m, tea.Batch(cmds...)

	case treeview.ToggleMsg[viewer.NodeID]:
		return m, m.handleToggle(msg)

	case treeview.SelectMsg[viewer.NodeID]:
		return m, m.handleSelect(msg)

	case toggle.ChangedMsg:
		if msg.ID == "ids" {
			m.modelTree.ShowIDs = msg.On
		}
		return m, nil

	case dropdown.SelectedMsg:
		if msg.ID == "model" {
			return m, m.switchModel(msg.Value)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	// Remaining messages, such as status-bar clear ticks, go everywhere.
	return m, m.broadcast(msg)
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.searching {
		return m, m.handleSearchKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "tab":
		return m, m.cycleFocus(1)
	case "shift+tab":
		return m, m.cycleFocus(-1)
	case "/":
		m.searching = true
		m.query = ""
		return m, nil
	case "?":
		m.eventBroker.PublishAsync(events.Event{Type: events.HelpToggleEvent})
		return m, nil
	case "r":
		return m, m.refreshCursor()
	case "x":
		return m, m.removeCursor()
	case "R":
		return m, m.resetTree()
	}

	cmd := m.broadcast(msg)
	// The detail pane follows the tree cursor.
	m.syncDetail()
	return m, cmd
}

// handleSearchKey edits the query while search mode is active. Every edit
// re-arms the search debouncer; enter searches immediately, esc cancels.
func (m *Model) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	switch s := msg.String(); s {
	case "esc":
		m.searching = false
		m.query = ""
		m.searchDeb.Clear()
	case "enter":
		m.searching = false
		m.searchDeb.Clear()
		return m.performSearch(m.query)
	case "backspace":
		if m.query != "" {
			runes := []rune(m.query)
			m.query = string(runes[:len(runes)-1])
			m.searchDeb.Debounce(m.cfg.SearchDelay, m.query)
		}
	case "space":
		m.query += " "
		m.searchDeb.Debounce(m.cfg.SearchDelay, m.query)
	default:
		if len([]rune(s)) == 1 {
			m.query += s
			m.searchDeb.Debounce(m.cfg.SearchDelay, m.query)
		}
	}
	return nil
}

// broadcast forwards msg to the split panes and the status bar.
func (m *Model) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd

	model, cmd := m.split.Update(msg)
	if split, ok := model.(*core.SplitLayout); ok {
		m.split = split
	}
	cmds = append(cmds, cmd)

	model, cmd = m.statusBar.Update(msg)
	if bar, ok := model.(*status.Component); ok {
		m.statusBar = bar
	}
	cmds = append(cmds, cmd)

	return tea.Batch(cmds...)
}

func (m *Model) cycleFocus(delta int) tea.Cmd {
	var cmds []tea.Cmd
	for _, f := range m.focusables {
		cmds = append(cmds, f.Blur())
	}
	m.focusIndex = (m.focusIndex + delta + len(m.focusables)) % len(m.focusables)
	cmds = append(cmds, m.focusables[m.focusIndex].Focus())
	return tea.Batch(cmds...)
}

// Event handling

func (m *Model) handleEvent(event events.Event) tea.Cmd {
	switch event.Type {
	case events.TreeChangedEvent:
		m.treeWidget.Reload()
		m.syncDetail()
		m.syncStatusLeft()

	case events.NodeToggledEvent:
		if payload, ok := event.Payload.(events.NodeToggledPayload); ok && payload.Expanded {
			key := viewer.NodeID(payload.Key)
			if e, ok := m.lazyTree.Entry(key); ok {
				m.treeWidget.SetNodeData(key, fmt.Sprintf("(%d)", len(e.Children)))
			}
		}

	case events.SelectionChangedEvent:
		m.syncDetail()
		m.syncStatusLeft()

	case events.ModelLoadedEvent:
		if payload, ok := event.Payload.(events.ModelLoadedPayload); ok {
			return m.statusBar.ShowSuccess(
				fmt.Sprintf("loaded %s (%d nodes)", payload.Name, payload.NodeCount))
		}

	case events.ModelSwitchedEvent:
		m.syncStatusLeft()

	case events.SearchQueryEvent:
		if payload, ok := event.Payload.(events.SearchQueryPayload); ok {
			return m.performSearch(payload.Query)
		}

	case events.SearchResultEvent:
		if payload, ok := event.Payload.(events.SearchResultPayload); ok {
			if payload.Found {
				return m.statusBar.ShowInfo(fmt.Sprintf("found %q", payload.Query))
			}
			return m.statusBar.ShowWarning(fmt.Sprintf("no match for %q", payload.Query))
		}

	case events.StatusMessageEvent:
		if payload, ok := event.Payload.(events.StatusMessagePayload); ok {
			switch payload.Type {
			case "warning":
				return m.statusBar.ShowWarning(payload.Message)
			case "error":
				return m.statusBar.ShowError(payload.Message)
			case "success":
				return m.statusBar.ShowSuccess(payload.Message)
			default:
				return m.statusBar.ShowInfo(payload.Message)
			}
		}

	case events.HelpToggleEvent:
		m.showHelp = !m.showHelp

	case events.TreeResetEvent:
		m.treeWidget.Reload()
		m.syncDetail()
		m.syncStatusLeft()
	}

	return nil
}

// Widget message handlers

func (m *Model) handleToggle(msg treeview.ToggleMsg[viewer.NodeID]) tea.Cmd {
	m.eventBroker.PublishAsync(events.Event{
		Type:    events.NodeToggledEvent,
		Payload: events.NodeToggledPayload{Key: int64(msg.Key), Expanded: msg.Expanded},
	})
	return nil
}

func (m *Model) handleSelect(msg treeview.SelectMsg[viewer.NodeID]) tea.Cmd {
	m.selSync.Update(msg.Keys)
	keys := make([]int64, len(msg.Keys))
	for i, k := range msg.Keys {
		keys[i] = int64(k)
	}
	m.eventBroker.PublishAsync(events.Event{
		Type:    events.SelectionChangedEvent,
		Payload: events.SelectionChangedPayload{Keys: keys},
	})
	return nil
}

// Operations

// loadModel points every adapter and the lazy tree at the named sample
// model, then materializes and expands the root.
func (m *Model) loadModel(name string) {
	engine := viewer.SampleByName(name)
	if engine == nil {
		return
	}

	m.engine = engine
	m.modelTree = adapter.NewModelTree(engine)
	m.modelTree.ShowIDs = m.idsToggle.On()
	m.props = adapter.NewPropertyView(engine)
	if m.selSync != nil {
		m.selSync.Cancel()
	}
	m.selSync = adapter.NewSelectionSync(engine, m.cfg.SelectDelay)

	m.lazyTree = tree.New[viewer.NodeID](m.modelTree)
	m.lazyTree.OnChange = func() {
		m.eventBroker.PublishAsync(events.Event{Type: events.TreeChangedEvent})
	}
	if root, ok := m.lazyTree.RootEntry(); ok {
		m.lazyTree.SetExpanded(root.Key, true)
	}

	if m.treeWidget != nil {
		m.treeWidget.SetTree(m.lazyTree)
		m.syncDetail()
		m.syncStatusLeft()
	}
}

func (m *Model) switchModel(name string) tea.Cmd {
	if name == m.engine.ModelName() {
		return nil
	}
	m.loadModel(name)
	m.eventBroker.PublishAsync(events.Event{Type: events.ModelSwitchedEvent})
	m.eventBroker.PublishAsync(events.Event{
		Type: events.ModelLoadedEvent,
		Payload: events.ModelLoadedPayload{
			Name:      m.engine.ModelName(),
			NodeCount: m.engine.NodeCount(),
		},
	})
	return nil
}

func (m *Model) refreshCursor() tea.Cmd {
	key, ok := m.treeWidget.CursorKey()
	if !ok {
		return nil
	}
	m.lazyTree.RefreshNode(key)
	return m.statusBar.ShowInfo(fmt.Sprintf("refreshed %s", m.engine.Name(key)))
}

func (m *Model) removeCursor() tea.Cmd {
	key, ok := m.treeWidget.CursorKey()
	if !ok {
		return nil
	}
	if root, ok := m.engine.RootNode(); ok && key == root {
		return m.statusBar.ShowWarning("the model root cannot be removed")
	}
	name := m.engine.Name(key)
	m.engine.RemoveTree(key)
	m.lazyTree.RemoveNode(key)
	return m.statusBar.ShowSuccess(fmt.Sprintf("removed %s", name))
}

func (m *Model) resetTree() tea.Cmd {
	m.lazyTree.Reset()
	if root, ok := m.lazyTree.RootEntry(); ok {
		m.lazyTree.SetExpanded(root.Key, true)
	}
	m.eventBroker.PublishAsync(events.Event{Type: events.TreeResetEvent})
	return m.statusBar.ShowInfo("tree reset")
}

// performSearch expands the tree down to the first node whose name
// matches query and moves the cursor onto it.
func (m *Model) performSearch(query string) tea.Cmd {
	if query == "" {
		return nil
	}

	path, found := m.modelTree.FindPath(query)
	if !found {
		m.eventBroker.PublishAsync(events.Event{
			Type:    events.SearchResultEvent,
			Payload: events.SearchResultPayload{Query: query},
		})
		return nil
	}

	if err := m.lazyTree.ExpandPath(path); err != nil {
		return m.statusBar.ShowError(err.Error())
	}
	m.treeWidget.Reload()
	key := path[len(path)-1]
	m.treeWidget.MoveTo(key)
	m.eventBroker.PublishAsync(events.Event{
		Type:    events.SearchResultEvent,
		Payload: events.SearchResultPayload{Query: query, Key: int64(key), Found: true},
	})
	return nil
}

// State sync

// syncDetail rebuilds the right-pane sections for the node under the
// cursor, falling back to the selection.
func (m *Model) syncDetail() {
	key, ok := m.treeWidget.CursorKey()
	if !ok {
		if sel := m.lazyTree.Selection(); len(sel) > 0 {
			key, ok = sel[0], true
		}
	}

	sections := m.detail.Sections()
	if len(sections) != 3 {
		return
	}
	if !ok {
		sections[0].Content = ""
		sections[1].Content = ""
		sections[2].Content = ""
		m.detail.SetSections(sections)
		return
	}

	m.general.SetRows(m.props.GeneralRows(key))
	m.attrs.SetRows(m.props.AttributeRows(key))

	sections[0].Content = m.general.View()
	sections[1].Content = m.attrs.View()
	if desc := m.props.Description(key); desc != "" {
		sections[2].Content = styles.RenderMarkdown(desc, m.detailWidth())
	} else {
		sections[2].Content = ""
	}
	m.detail.SetSections(sections)
}

func (m *Model) syncStatusLeft() {
	summary := fmt.Sprintf("%s · %d nodes · %d loaded",
		m.engine.ModelName(), m.engine.NodeCount(), m.lazyTree.Len())
	if sel := m.lazyTree.Selection(); len(sel) > 0 {
		summary += fmt.Sprintf(" · %d selected", len(sel))
	}
	m.statusBar.SetLeftContent(summary)
}

func (m *Model) detailWidth() int {
	w := m.width - 4 - m.split.LeftWidth() - 4
	if w < 20 {
		w = 20
	}
	return w
}

// View

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	if m.showHelp {
		return m.helpView()
	}

	theme := styles.CurrentTheme()
	s := theme.S()

	title := s.Title.Render("Model Browser")
	headerRight := ""
	if m.searching {
		headerRight = s.Info.Render(styles.SearchIcon+" "+m.query) + s.Cursor.Render(" ")
	}
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", headerRight)

	contentHeight := m.height - headerHeight - statusHeight - 2
	if contentHeight < 1 {
		contentHeight = 1
	}
	leftWidth := m.split.LeftWidth()
	rightWidth := m.width - 4 - leftWidth

	leftBorder := s.Border
	rightBorder := s.Border
	if m.treeWidget.IsFocused() {
		leftBorder = s.BorderFocus
	} else {
		rightBorder = s.BorderFocus
	}

	leftView := leftBorder.
		Width(leftWidth).
		Height(contentHeight).
		Render(m.treeWidget.View())
	rightView := rightBorder.
		Width(rightWidth).
		Height(contentHeight).
		Render(m.rightPane.View())

	body := lipgloss.JoinHorizontal(lipgloss.Top, leftView, rightView)

	return lipgloss.JoinVertical(lipgloss.Left, header, "", body, m.statusBar.View())
}

const helpText = `# Model Browser

## Navigation

- **tab / shift+tab**: move focus between panes
- **↑/↓, j/k**: move the cursor
- **enter**: expand or collapse the node
- **→ / ←**: expand / collapse
- **space**: select the node

## Tree

- **r**: reload the node's children from the engine
- **x**: remove the node and its subtree
- **R**: reset the tree to just the root

## Search

- **/**: search as you type, **enter** to jump, **esc** to cancel

Press **q** to quit, any key to close this help.
`

func (m *Model) helpView() string {
	s := styles.CurrentTheme().S()
	width := m.width - 8
	if width > 72 {
		width = 72
	}
	return s.Border.Width(width).Render(styles.RenderMarkdown(helpText, width-2))
}

// listenForEvents creates a command that waits for events.
func (m *Model) listenForEvents() tea.Cmd {
	return func() tea.Msg {
		event := <-m.eventSub
		return event
	}
}
