package ui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brochure/internal/config"
	"brochure/internal/domain"
	"brochure/internal/eventbus"
	inputtypes "brochure/internal/ui/input/types"
	"brochure/internal/ui/views"
)

func newTestModel(t *testing.T) *Model {
	t.Helper()
	bus := eventbus.New()
	t.Cleanup(bus.Close)

	m, err := NewModel(config.DefaultConfig(), bus)
	require.NoError(t, err)

	// small terminal so the page actually scrolls
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return m
}

func press(m *Model, msg tea.KeyMsg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func pressRune(m *Model, r rune) tea.Cmd {
	return press(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func click(m *Model, x, y int) tea.Cmd {
	_, cmd := m.Update(tea.MouseMsg{
		X: x, Y: y,
		Action: tea.MouseActionPress,
		Button: tea.MouseButtonLeft,
	})
	return cmd
}

// findHit scans a rendered document row for the first clickable column
// matching the target.
func findHit(t *testing.T, m *Model, docY int, kind views.HitKind, index int) int {
	t.Helper()
	for x := 0; x < m.width; x++ {
		if target, ok := m.rendered.Hits.At(x, docY); ok {
			if target.Kind == kind && target.Index == index {
				return x
			}
		}
	}
	t.Fatalf("no hit of kind %v index %d on row %d", kind, index, docY)
	return -1
}

func TestInitialLayout(t *testing.T) {
	m := newTestModel(t)

	assert.Equal(t, 18, m.viewH)
	assert.Equal(t, 0, m.scroll)
	require.NotNil(t, m.doc)
	assert.Greater(t, m.doc.Total(), m.viewH, "page must overflow the viewport")
	assert.False(t, m.sticky)
	assert.True(t, m.gate.Attached(), "hero fills the screen at the top")
}

func TestCarouselKeysFollowHeroVisibility(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.car.Index())

	// scrolled to the bottom the hero is gone and the keys detach
	press(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.False(t, m.gate.Attached())
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1, m.car.Index())

	// back at the top they reattach
	press(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.True(t, m.gate.Attached())
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 2, m.car.Index())
}

func TestCarouselWrapsAround(t *testing.T) {
	m := newTestModel(t)
	n := m.car.Len()

	press(m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, n-1, m.car.Index())

	for i := 0; i < n-1; i++ {
		press(m, tea.KeyMsg{Type: tea.KeyRight})
	}
	assert.Equal(t, 0, m.car.Index())
}

func TestScrollingClampsAndMovesViewport(t *testing.T) {
	m := newTestModel(t)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.scroll)

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 0, m.scroll, "cannot scroll above the top")

	press(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.Equal(t, m.doc.Total()-m.viewH, m.scroll)

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, m.doc.Total()-m.viewH, m.scroll, "cannot scroll past the bottom")
}

func TestStickyNavAppearsPastHero(t *testing.T) {
	m := newTestModel(t)
	assert.False(t, m.sticky)

	press(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.True(t, m.sticky)

	top := strings.Split(m.View(), "\n")[0]
	assert.Contains(t, top, m.cfg.Title, "nav bar pinned over the scrolled page")

	press(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.False(t, m.sticky)
}

func TestSectionsRevealOnceOnScroll(t *testing.T) {
	m := newTestModel(t)

	assert.False(t, m.revealed[domain.SectionContact], "below the fold at start")

	press(m, tea.KeyMsg{Type: tea.KeyEnd})
	assert.True(t, m.revealed[domain.SectionGallery])
	assert.True(t, m.revealed[domain.SectionContact])

	// reveal is one way: scrolling back up keeps sections visible
	press(m, tea.KeyMsg{Type: tea.KeyHome})
	assert.True(t, m.revealed[domain.SectionContact])
}

func TestGalleryImagesLoadLazily(t *testing.T) {
	m := newTestModel(t)

	for i := range m.cells {
		assert.Equal(t, views.CellPending, m.cells[i].state, "cell %d", i)
	}

	cmd := press(m, tea.KeyMsg{Type: tea.KeyEnd})
	require.NotNil(t, cmd, "scrolling into the gallery queues image loads")

	loading := 0
	for i := range m.cells {
		if m.cells[i].state == views.CellLoading {
			loading++
		}
	}
	assert.Greater(t, loading, 0)
	assert.Empty(t, m.queuedLoads, "queue drained into commands")
}

func TestImageLoadResults(t *testing.T) {
	m := newTestModel(t)

	m.Update(imageLoadedMsg{index: 0, art: []string{"##", "##"}})
	assert.Equal(t, views.CellLoaded, m.cells[0].state)
	assert.Equal(t, []string{"##", "##"}, m.cells[0].art)

	m.Update(imageLoadedMsg{index: 1, err: errors.New("no such file")})
	assert.Equal(t, views.CellFailed, m.cells[1].state)

	// out of range indexes are ignored
	assert.NotPanics(t, func() {
		m.Update(imageLoadedMsg{index: 99})
	})
}

func TestModalLocksScrollAndRestores(t *testing.T) {
	m := newTestModel(t)

	pressRune(m, 'b')
	assert.True(t, m.modalOpen)
	assert.True(t, m.scrollLock)
	assert.Equal(t, inputtypes.ModeModal, m.inputHandler.CurrentMode())

	// page does not move underneath the dialog
	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.scroll)

	// carousel keys are locked out too
	press(m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, m.car.Index())

	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.modalOpen)
	assert.False(t, m.scrollLock)
	assert.Equal(t, inputtypes.ModeNormal, m.inputHandler.CurrentMode())

	press(m, tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 1, m.scroll)
}

func TestModalRestoresPriorLockState(t *testing.T) {
	m := newTestModel(t)

	m.scrollLock = true
	pressRune(m, 'b')
	press(m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.scrollLock, "lock held before the dialog stays held after")
}

func TestModalOverlayRendering(t *testing.T) {
	m := newTestModel(t)

	pressRune(m, 'b')
	out := m.View()
	assert.Contains(t, out, m.cfg.Modal.Title)
	require.NotNil(t, m.modalLayout)

	// clicking outside the dialog dismisses it
	click(m, 0, 0)
	assert.False(t, m.modalOpen)
}

func TestTabSelection(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, 0, m.activeTab)

	pressRune(m, '2')
	assert.Equal(t, 1, m.activeTab)

	// digits beyond the tab count do nothing
	pressRune(m, '9')
	assert.Equal(t, 1, m.activeTab)
}

func TestIndicatorClickSelectsSlide(t *testing.T) {
	m := newTestModel(t)

	// dot row sits under the slide strip inside the hero
	const dotRow = 7
	x := findHit(t, m, dotRow, views.HitIndicator, 2)

	click(m, x, dotRow)
	assert.Equal(t, 2, m.car.Index())
	assert.True(t, m.car.Strip().IsActive(2))

	// clicking the active dot is a no-op
	click(m, x, dotRow)
	assert.Equal(t, 2, m.car.Index())
}

func TestArrowButtonClicks(t *testing.T) {
	m := newTestModel(t)
	const dotRow = 7

	next := findHit(t, m, dotRow, views.HitNextButton, 0)
	click(m, next, dotRow)
	assert.Equal(t, 1, m.car.Index())

	prev := findHit(t, m, dotRow, views.HitPrevButton, 0)
	click(m, prev, dotRow)
	assert.Equal(t, 0, m.car.Index())
}

func TestClickBetweenDotsIsIgnored(t *testing.T) {
	m := newTestModel(t)
	const dotRow = 7

	d0 := findHit(t, m, dotRow, views.HitIndicator, 0)
	d1 := findHit(t, m, dotRow, views.HitIndicator, 1)
	require.Equal(t, d0+2, d1, "single dead column between dots")

	click(m, d0+1, dotRow)
	assert.Equal(t, 0, m.car.Index())
}

func TestNavLinkGlidesToSection(t *testing.T) {
	m := newTestModel(t)

	x := findHit(t, m, 0, views.HitNavLink, 4) // Contact
	cmd := click(m, x, 0)
	require.NotNil(t, cmd)
	assert.True(t, m.gliding)

	for i := 0; i < 100 && m.gliding; i++ {
		m.Update(glideTickMsg{})
	}
	assert.False(t, m.gliding, "glide settles")

	top, ok := m.doc.Top(domain.SectionContact)
	require.True(t, ok)
	assert.Equal(t, m.doc.Clamp(top, m.viewH), m.scroll)
}

func TestKeyInterruptsGlide(t *testing.T) {
	m := newTestModel(t)

	x := findHit(t, m, 0, views.HitNavLink, 4)
	click(m, x, 0)
	require.True(t, m.gliding)

	press(m, tea.KeyMsg{Type: tea.KeyUp})
	assert.False(t, m.gliding)

	// a stale tick after the interrupt moves nothing
	before := m.scroll
	m.Update(glideTickMsg{})
	assert.Equal(t, before, m.scroll)
}

func TestWheelScrolls(t *testing.T) {
	m := newTestModel(t)

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 3, m.scroll)

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 0, m.scroll)
}

func TestHoverHighlightsNavLink(t *testing.T) {
	m := newTestModel(t)
	assert.Equal(t, -1, m.hoverLink)

	x := findHit(t, m, 0, views.HitNavLink, 1)
	m.Update(tea.MouseMsg{X: x, Y: 0, Action: tea.MouseActionMotion})
	assert.Equal(t, 1, m.hoverLink)

	m.Update(tea.MouseMsg{X: x, Y: 10, Action: tea.MouseActionMotion})
	assert.Equal(t, -1, m.hoverLink)
}

func TestMouseDisabledByConfig(t *testing.T) {
	bus := eventbus.New()
	t.Cleanup(bus.Close)
	cfg := config.DefaultConfig()
	cfg.UISettings.MouseEnabled = false

	m, err := NewModel(cfg, bus)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})

	m.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 0, m.scroll)
}

func TestRevealDisabledShowsEverything(t *testing.T) {
	bus := eventbus.New()
	t.Cleanup(bus.Close)
	cfg := config.DefaultConfig()
	cfg.UISettings.RevealSections = false

	m, err := NewModel(cfg, bus)
	require.NoError(t, err)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})

	for _, id := range domain.SectionOrder {
		assert.True(t, m.revealed[id], "section %s", id)
	}
}

func TestStatusLineFollowsEvents(t *testing.T) {
	m := newTestModel(t)

	m.Update(EventMsg{Event: domain.SlideChangedEvent{Index: 1, Total: 4}})
	assert.Equal(t, "slide 2/4", m.status)

	m.Update(EventMsg{Event: domain.TabSelectedEvent{Index: 2, Label: "Spa"}})
	assert.Equal(t, "operations: Spa", m.status)

	m.Update(EventMsg{Event: domain.GateChangedEvent{Attached: true}})
	assert.Equal(t, "carousel keys active", m.status)

	m.Update(EventMsg{Event: domain.GateChangedEvent{Attached: false}})
	assert.Equal(t, "", m.status)
}

func TestViewHeightMatchesTerminal(t *testing.T) {
	m := newTestModel(t)

	out := m.View()
	assert.Equal(t, 20, len(strings.Split(out, "\n")))
}
