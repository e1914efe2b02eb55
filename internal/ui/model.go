package ui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"brochure/internal/carousel"
	"brochure/internal/config"
	"brochure/internal/domain"
	"brochure/internal/eventbus"
	"brochure/internal/imagecell"
	"brochure/internal/page"
	"brochure/internal/ui/input"
	inputtypes "brochure/internal/ui/input/types"
	"brochure/internal/ui/views"
	"brochure/internal/viewport"
)

// rows reserved below the page for the status bar and help line
const chromeRows = 2

// stickyMargin shrinks the viewport when deciding whether the hero is
// still "there"; the nav pins once the hero leaves that margin.
const stickyMargin = -3

const galleryArtRows = 6

type galleryCell struct {
	img   domain.GalleryImage
	state views.GalleryCellState
	art   []string
}

// Model is the Bubble Tea model for the whole page
type Model struct {
	cfg *config.Config
	bus eventbus.EventBus

	width  int
	height int
	viewH  int
	scroll int

	// scroll lock is owned by the modal: saved on open, restored on
	// close
	scrollLock      bool
	savedScrollLock bool

	doc      *page.Document
	rendered *views.RenderedDoc
	renderer *views.Renderer
	watcher  *viewport.Watcher

	car  *carousel.Carousel
	gate *carousel.Gate

	inputHandler *input.Handler

	activeTab int
	hoverLink int
	sticky    bool

	revealed   map[domain.SectionID]bool
	revealSubs map[domain.SectionID]*viewport.Subscription
	stickySub  *viewport.Subscription

	cells       []galleryCell
	cellSubs    []*viewport.Subscription
	queuedLoads []int

	modalOpen   bool
	modalLayout *views.ModalLayout

	gliding     bool
	glideTarget int

	status string
	help   help.Model
	keys   keyMap
	pager  *PagerOps
}

// NewModel creates the UI model for a validated page definition
func NewModel(cfg *config.Config, bus eventbus.EventBus) (*Model, error) {
	car, err := carousel.New(len(cfg.Hero))
	if err != nil {
		return nil, fmt.Errorf("hero carousel: %w", err)
	}

	m := &Model{
		cfg:          cfg,
		bus:          bus,
		renderer:     views.NewRenderer(),
		watcher:      viewport.New(),
		car:          car,
		inputHandler: input.New(),
		hoverLink:    -1,
		revealed:     make(map[domain.SectionID]bool),
		revealSubs:   make(map[domain.SectionID]*viewport.Subscription),
		help:         help.New(),
		keys:         newKeyMap(),
		pager:        NewPagerOps(),
	}

	car.SetOnChange(func(i int) {
		bus.Publish(domain.SlideChangedEvent{Index: i, Total: car.Len()})
	})

	// the gate wires carousel keys through the input handler's
	// capture list; attach/detach follow hero visibility
	m.gate = carousel.NewGate(m.watcher, viewport.Region{}, car,
		func(fn carousel.KeyFunc) func() {
			return m.inputHandler.AttachCapture(input.CaptureFunc(fn))
		})
	m.gate.SetOnChange(func(attached bool) {
		bus.Publish(domain.GateChangedEvent{Attached: attached})
	})

	m.revealed[domain.SectionHero] = true
	if !cfg.UISettings.RevealSections {
		for _, id := range domain.SectionOrder {
			m.revealed[id] = true
		}
	}

	m.cells = make([]galleryCell, len(cfg.Gallery))
	for i, img := range cfg.Gallery {
		m.cells[i] = galleryCell{img: img, state: views.CellPending}
	}
	m.cellSubs = make([]*viewport.Subscription, len(cfg.Gallery))

	return m, nil
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.pager.SetProgram(p)
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.relayout()
		return m, m.drainLoads()

	case tea.KeyMsg:
		if m.gliding {
			// any key hands scrolling back to the user
			m.gliding = false
		}
		actions := m.inputHandler.HandleKey(msg, m.ctx())
		var cmds []tea.Cmd
		for _, action := range actions {
			if cmd := m.processAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		m.relayout()
		if cmd := m.drainLoads(); cmd != nil {
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case glideTickMsg:
		return m.handleGlideTick()

	case imageLoadedMsg:
		m.handleImageLoaded(msg)
		m.relayout()
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			m.status = "help pager failed: " + msg.err.Error()
		}
		return m, nil

	case EventMsg:
		m.statusFromEvent(msg.Event)
		return m, nil
	}

	return m, nil
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "loading…"
	}
	if m.rendered == nil {
		m.relayout()
	}

	visible := make([]string, m.viewH)
	for i := 0; i < m.viewH; i++ {
		if idx := m.scroll + i; idx < len(m.rendered.Lines) {
			visible[i] = m.rendered.Lines[idx]
		}
	}

	if m.sticky && m.scroll > 0 {
		// pin the nav bar over the top row
		vs := m.viewState()
		visible[0] = m.renderer.RenderNavBar(vs, 0, views.NewHitMap())
	}

	base := ""
	for i, line := range visible {
		if i > 0 {
			base += "\n"
		}
		base += line
	}
	base += "\n" + m.renderer.RenderStatusBar(m.status, m.gate.Attached(), m.width)
	base += "\n" + m.help.View(m.keys)

	if m.modalOpen {
		out, layout := m.renderer.RenderModalOverlay(
			base, m.cfg.Modal.Title, m.cfg.Modal.Body, m.width, m.height)
		m.modalLayout = layout
		return out
	}
	return base
}

// --- input plumbing ---

type modelContext struct{ m *Model }

func (c modelContext) ModalOpen() bool    { return c.m.modalOpen }
func (c modelContext) TabCount() int      { return len(c.m.cfg.Operations) }
func (c modelContext) GateAttached() bool { return c.m.gate.Attached() }

func (m *Model) ctx() inputtypes.Context {
	return modelContext{m: m}
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.ScrollAction:
		m.scrollDirection(a.Direction)

	case inputtypes.GotoSectionAction:
		return m.startGlide(a.Target)

	case inputtypes.SelectTabAction:
		m.selectTab(a.Index)

	case inputtypes.OpenModalAction:
		m.openModal()

	case inputtypes.CloseModalAction:
		m.closeModal()

	case inputtypes.ShowHelpAction:
		return m.showHelpCmd()

	case inputtypes.QuitAction:
		m.gate.Close()
		return tea.Quit
	}
	return nil
}

func (m *Model) scrollDirection(dir string) {
	switch dir {
	case "up":
		m.setScroll(m.scroll - 1)
	case "down":
		m.setScroll(m.scroll + 1)
	case "pageup":
		m.setScroll(m.scroll - (m.viewH - 2))
	case "pagedown":
		m.setScroll(m.scroll + (m.viewH - 2))
	case "home":
		m.setScroll(0)
	case "end":
		m.setScroll(m.doc.Total())
	}
}

func (m *Model) setScroll(v int) {
	if m.scrollLock || m.doc == nil {
		return
	}
	m.scroll = m.doc.Clamp(v, m.viewH)
	m.watcher.SetViewport(m.scroll, m.viewH)
}

// --- mouse ---

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if !m.cfg.UISettings.MouseEnabled {
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionMotion:
		m.updateHover(msg.X, msg.Y)
		return m, nil

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			m.gliding = false
			m.setScroll(m.scroll - 3)
			m.relayout()
			return m, m.drainLoads()
		case tea.MouseButtonWheelDown:
			m.gliding = false
			m.setScroll(m.scroll + 3)
			m.relayout()
			return m, m.drainLoads()
		case tea.MouseButtonLeft:
			cmd := m.handleClick(msg.X, msg.Y)
			m.relayout()
			return m, tea.Batch(cmd, m.drainLoads())
		}
	}
	return m, nil
}

func (m *Model) updateHover(x, y int) {
	if m.modalOpen || m.rendered == nil {
		return
	}
	docY, ok := m.screenToDoc(y)
	if !ok {
		m.hoverLink = -1
		return
	}
	if target, hit := m.rendered.Hits.At(x, docY); hit && target.Kind == views.HitNavLink {
		if m.hoverLink != target.Index {
			m.hoverLink = target.Index
			m.relayout()
		}
		return
	}
	if m.hoverLink != -1 {
		m.hoverLink = -1
		m.relayout()
	}
}

// screenToDoc maps a screen row to a document line, honoring the
// pinned nav bar which aliases row 0 back to the real nav row.
func (m *Model) screenToDoc(y int) (int, bool) {
	if y < 0 || y >= m.viewH {
		return 0, false
	}
	if m.sticky && m.scroll > 0 && y == 0 {
		return 0, true
	}
	return m.scroll + y, true
}

func (m *Model) handleClick(x, y int) tea.Cmd {
	m.gliding = false

	if m.modalOpen {
		if m.modalLayout == nil {
			return nil
		}
		if m.modalLayout.OnClose(x, y) || !m.modalLayout.Contains(x, y) {
			m.closeModal()
		}
		return nil
	}

	if m.rendered == nil {
		return nil
	}
	docY, ok := m.screenToDoc(y)
	if !ok {
		return nil
	}
	target, hit := m.rendered.Hits.At(x, docY)
	if !hit {
		return nil
	}

	switch target.Kind {
	case views.HitNavLink:
		link := m.cfg.Nav[target.Index]
		m.bus.Publish(domain.NavActivatedEvent{Target: link.Target})
		return m.startGlide(link.Target)

	case views.HitIndicator:
		// the indicator's tagged position routes straight back into
		// the carousel
		m.car.Strip().Click(target.Index)

	case views.HitPrevButton:
		m.car.Prev()

	case views.HitNextButton:
		m.car.Next()

	case views.HitTab:
		m.selectTab(target.Index)

	case views.HitBookButton:
		m.openModal()
		m.inputHandler.SetMode(inputtypes.ModeModal)
	}
	return nil
}

// --- tabs ---

func (m *Model) selectTab(i int) {
	if i < 0 || i >= len(m.cfg.Operations) || i == m.activeTab {
		return
	}
	m.activeTab = i
	m.bus.Publish(domain.TabSelectedEvent{Index: i, Label: m.cfg.Operations[i].Label})
}

// --- modal ---

func (m *Model) openModal() {
	if m.modalOpen {
		return
	}
	m.savedScrollLock = m.scrollLock
	m.scrollLock = true
	m.modalOpen = true
	m.gliding = false
	m.bus.Publish(domain.ModalOpenedEvent{})
}

func (m *Model) closeModal() {
	if !m.modalOpen {
		return
	}
	m.modalOpen = false
	m.modalLayout = nil
	m.scrollLock = m.savedScrollLock
	m.inputHandler.SetMode(inputtypes.ModeNormal)
	m.bus.Publish(domain.ModalClosedEvent{})
}

// --- smooth scroll ---

func (m *Model) startGlide(id domain.SectionID) tea.Cmd {
	if m.scrollLock || m.doc == nil {
		return nil
	}
	top, ok := m.doc.Top(id)
	if !ok {
		return nil
	}
	m.glideTarget = m.doc.Clamp(top, m.viewH)
	if m.glideTarget == m.scroll {
		return nil
	}
	m.gliding = true
	return glideTick()
}

func glideTick() tea.Cmd {
	return tea.Tick(30*time.Millisecond, func(time.Time) tea.Msg {
		return glideTickMsg{}
	})
}

func (m *Model) handleGlideTick() (tea.Model, tea.Cmd) {
	if !m.gliding || m.scrollLock {
		m.gliding = false
		return m, nil
	}
	delta := m.glideTarget - m.scroll
	if delta == 0 {
		m.gliding = false
		return m, nil
	}
	step := delta / 4
	if step == 0 {
		if delta > 0 {
			step = 1
		} else {
			step = -1
		}
	}
	m.setScroll(m.scroll + step)
	m.relayout()
	if m.scroll == m.glideTarget {
		m.gliding = false
		return m, m.drainLoads()
	}
	return m, tea.Batch(glideTick(), m.drainLoads())
}

// --- layout & observation wiring ---

func (m *Model) relayout() {
	if m.width == 0 || m.height == 0 {
		return
	}

	m.viewH = m.height - chromeRows
	if m.viewH < 1 {
		m.viewH = 1
	}

	vs := m.viewState()
	m.rendered = m.renderer.RenderDocument(vs)

	m.doc = page.NewDocument()
	for _, id := range domain.SectionOrder {
		m.doc.Append(id, string(id), m.rendered.Heights[id])
	}
	m.scroll = m.doc.Clamp(m.scroll, m.viewH)

	hero := m.doc.Region(domain.SectionHero)

	if m.stickySub == nil {
		m.stickySub = m.watcher.Observe(hero,
			viewport.Options{Threshold: 0, Margin: stickyMargin},
			func(visible bool) { m.sticky = !visible })
	} else {
		m.stickySub.SetRegion(hero)
	}

	m.gate.SetRegion(hero)

	if m.cfg.UISettings.RevealSections {
		m.wireRevealSubs()
	}
	m.wireGallerySubs()

	m.watcher.SetViewport(m.scroll, m.viewH)
}

func (m *Model) wireRevealSubs() {
	for _, id := range domain.SectionOrder {
		if id == domain.SectionHero || m.revealed[id] {
			continue
		}
		region := m.doc.Region(id)
		if sub, ok := m.revealSubs[id]; ok {
			sub.SetRegion(region)
			continue
		}
		section := id
		m.revealSubs[section] = m.watcher.Observe(region,
			viewport.Options{Threshold: 0.15, Once: true},
			func(bool) {
				m.revealed[section] = true
				delete(m.revealSubs, section)
				m.bus.Publish(domain.SectionRevealedEvent{Section: section})
			})
	}
}

func (m *Model) wireGallerySubs() {
	for i := range m.cells {
		if m.cells[i].state != views.CellPending {
			continue
		}
		var region viewport.Region
		if i < len(m.rendered.GalleryCells) {
			region = m.rendered.GalleryCells[i]
		}
		if m.cellSubs[i] != nil {
			m.cellSubs[i].SetRegion(region)
			continue
		}
		idx := i
		m.cellSubs[idx] = m.watcher.Observe(region,
			viewport.Options{Threshold: 0.5, Once: true},
			func(bool) {
				m.cells[idx].state = views.CellLoading
				m.queuedLoads = append(m.queuedLoads, idx)
				m.cellSubs[idx] = nil
			})
	}
}

func (m *Model) drainLoads() tea.Cmd {
	if len(m.queuedLoads) == 0 {
		return nil
	}
	w, h := m.galleryCellSize()
	var cmds []tea.Cmd
	for _, i := range m.queuedLoads {
		idx := i
		path := m.cells[idx].img.Path
		cmds = append(cmds, func() tea.Msg {
			art, err := imagecell.Render(path, w, h)
			return imageLoadedMsg{index: idx, art: art, err: err}
		})
	}
	m.queuedLoads = nil
	return tea.Batch(cmds...)
}

// galleryCellSize mirrors the renderer's gallery grid math
func (m *Model) galleryCellSize() (int, int) {
	cols := 2
	if m.width < 60 {
		cols = 1
	}
	cellW := (m.width-6)/cols - 2
	if cellW < 12 {
		cellW = 12
	}
	return cellW, galleryArtRows
}

func (m *Model) handleImageLoaded(msg imageLoadedMsg) {
	if msg.index < 0 || msg.index >= len(m.cells) {
		return
	}
	if msg.err != nil {
		m.cells[msg.index].state = views.CellFailed
	} else {
		m.cells[msg.index].state = views.CellLoaded
		m.cells[msg.index].art = msg.art
	}
	m.bus.Publish(domain.ImageLoadedEvent{Path: m.cells[msg.index].img.Path, Err: msg.err})
}

// --- help ---

func (m *Model) showHelpCmd() tea.Cmd {
	return func() tea.Msg {
		return helpPagerMsg{err: m.pager.Show(helpContent())}
	}
}

// --- view state ---

func (m *Model) viewState() *views.ViewState {
	cells := make([]views.GalleryCell, len(m.cells))
	for i, c := range m.cells {
		cells[i] = views.GalleryCell{
			Caption: c.img.Caption,
			State:   c.state,
			Art:     c.art,
		}
	}

	return &views.ViewState{
		Width:          m.width,
		Height:         m.height,
		Title:          m.cfg.Title,
		Nav:            m.cfg.Nav,
		HoverLink:      m.hoverLink,
		Slides:         m.cfg.Hero,
		Offsets:        m.car.Offsets(),
		ActiveSlide:    m.car.Strip().Active(),
		SlideCount:     m.car.Len(),
		AboutHeading:   m.cfg.About.Heading,
		AboutBody:      m.cfg.About.Body,
		Tabs:           m.cfg.Operations,
		ActiveTab:      m.activeTab,
		Gallery:        cells,
		ContactHeading: m.cfg.Contact.Heading,
		ContactBody:    m.cfg.Contact.Body,
		Revealed:       m.revealed,
	}
}

func (m *Model) statusFromEvent(e eventbus.DomainEvent) {
	switch ev := e.(type) {
	case domain.SlideChangedEvent:
		m.status = fmt.Sprintf("slide %d/%d", ev.Index+1, ev.Total)
	case domain.TabSelectedEvent:
		m.status = "operations: " + ev.Label
	case domain.SectionRevealedEvent:
		m.status = string(ev.Section) + " revealed"
	case domain.ImageLoadedEvent:
		if ev.Err != nil {
			m.status = "image failed: " + ev.Path
		} else {
			m.status = "loaded " + ev.Path
		}
	case domain.GateChangedEvent:
		if ev.Attached {
			m.status = "carousel keys active"
		} else {
			m.status = ""
		}
	case domain.ModalOpenedEvent:
		m.status = "booking"
	case domain.ModalClosedEvent:
		m.status = ""
	}
}
