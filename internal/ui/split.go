package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"splitpane/internal/layoutstore"
)

// Focus target IDs, in tab order.
const (
	HandleContent    = "content"
	HandleVertical   = "vsplit"
	HandleHorizontal = "hsplit"
)

// Default clamp bounds and initial ratios, applied where Config leaves the
// corresponding field zero.
const (
	DefaultMinTopPct      = 20
	DefaultMinBottomPct   = 20
	DefaultMinLeftPct     = 15
	DefaultMinRightPct    = 15
	DefaultInitialTopPct  = 65
	DefaultInitialLeftPct = 50
)

// Keyboard resize step and the fixed ratios Home resets to.
const (
	keyStep     = 2.0
	leftHomePct = 50.0
	topHomePct  = 66.0
)

// Axis identifies which divider a drag session controls.
type Axis int

const (
	// AxisHorizontal is the top/bottom divider; dragging it moves vertically.
	AxisHorizontal Axis = iota
	// AxisVertical is the left/right divider within the top band.
	AxisVertical
)

// ContentFunc produces the renderable content for one region. Producers take
// no arguments; output larger than the region is cropped, smaller is padded.
type ContentFunc func() string

// Config configures a SplitLayoutView. Immutable for the component's
// lifetime. Zero percentage fields take the package defaults (so a literal
// minimum of 0 is not expressible; the smallest supported minimum is 1).
// Bounds are not validated: minimums that sum over 100 produce a degenerate
// clamp range that pins the divider.
type Config struct {
	MinTopPct    float64
	MinBottomPct float64
	MinLeftPct   float64
	MinRightPct  float64

	// InitialTopPct/InitialLeftPct seed the ratios when no valid stored
	// state exists under StorageKey.
	InitialTopPct  float64
	InitialLeftPct float64

	// StorageKey names the persistence slot. Empty disables persistence.
	StorageKey string

	TopLeft  ContentFunc
	TopRight ContentFunc
	Bottom   ContentFunc
}

func (c Config) withDefaults() Config {
	if c.MinTopPct == 0 {
		c.MinTopPct = DefaultMinTopPct
	}
	if c.MinBottomPct == 0 {
		c.MinBottomPct = DefaultMinBottomPct
	}
	if c.MinLeftPct == 0 {
		c.MinLeftPct = DefaultMinLeftPct
	}
	if c.MinRightPct == 0 {
		c.MinRightPct = DefaultMinRightPct
	}
	if c.InitialTopPct == 0 {
		c.InitialTopPct = DefaultInitialTopPct
	}
	if c.InitialLeftPct == 0 {
		c.InitialLeftPct = DefaultInitialLeftPct
	}
	return c
}

// topRange returns the inclusive clamp range for TopPct.
func (c Config) topRange() (lo, hi float64) {
	return c.MinTopPct, 100 - c.MinBottomPct
}

// leftRange returns the inclusive clamp range for LeftPct.
func (c Config) leftRange() (lo, hi float64) {
	return c.MinLeftPct, 100 - c.MinRightPct
}

// LayoutState holds the two split ratios as percentages.
// TopPct is the top band's share of the surface height; LeftPct is the left
// sub-region's share of the top band's width.
type LayoutState struct {
	TopPct  float64
	LeftPct float64
}

// dragSession records that a divider is currently being dragged and which
// axis it controls. At most one exists at a time; release destroys it.
type dragSession struct {
	axis Axis
}

// SplitLayoutView is the split layout component. The drag and keyboard
// handlers are the only writers of the layout state; rendering is a pure
// read. State changes mirror to the configured store, best-effort.
type SplitLayoutView struct {
	cfg   Config
	store layoutstore.Store
	keys  KeyMap
	focus *FocusManager

	state   LayoutState
	drag    *dragSession
	regions Regions
}

// Ensure SplitLayoutView implements View.
var _ View = (*SplitLayoutView)(nil)

// New creates a split layout. The initial state comes from the store when
// StorageKey holds a valid value, otherwise from the configured initials;
// either way it is clamped into the configured ranges. Store read failures
// are treated as "no stored value" and never surfaced.
func New(cfg Config, store layoutstore.Store) *SplitLayoutView {
	cfg = cfg.withDefaults()
	s := &SplitLayoutView{
		cfg:   cfg,
		store: store,
		keys:  DefaultKeyMap(),
		focus: &FocusManager{
			Current: HandleContent,
			Order:   []string{HandleContent, HandleVertical, HandleHorizontal},
		},
	}
	st := LayoutState{TopPct: cfg.InitialTopPct, LeftPct: cfg.InitialLeftPct}
	if stored, ok := layoutstore.Load(store, cfg.StorageKey); ok {
		st = LayoutState{TopPct: stored.TopPct, LeftPct: stored.LeftPct}
	}
	lo, hi := cfg.topRange()
	st.TopPct = clamp(st.TopPct, lo, hi)
	lo, hi = cfg.leftRange()
	st.LeftPct = clamp(st.LeftPct, lo, hi)
	s.state = st
	return s
}

// State returns the current split ratios.
func (s *SplitLayoutView) State() LayoutState {
	return s.state
}

// Regions returns the geometry computed from the current size and ratios.
// Hosts use it to size the content they produce.
func (s *SplitLayoutView) Regions() Regions {
	return s.regions
}

// Focus returns the focus manager so hosts can observe or steer focus.
func (s *SplitLayoutView) Focus() *FocusManager {
	return s.focus
}

// Keys returns the key map, e.g. for a bubbles/help footer.
func (s *SplitLayoutView) Keys() KeyMap {
	return s.keys
}

// Dragging reports the active drag axis, if any.
func (s *SplitLayoutView) Dragging() (Axis, bool) {
	if s.drag == nil {
		return 0, false
	}
	return s.drag.axis, true
}

// SetSize resizes the surface and recomputes geometry. An in-progress drag
// survives a resize: the next motion event recomputes its ratio against the
// new rectangles.
func (s *SplitLayoutView) SetSize(width, height int) {
	s.regions = ComputeRegions(width, height, s.state.TopPct, s.state.LeftPct)
}

// Init implements View.
func (s *SplitLayoutView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (s *SplitLayoutView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
	case tea.MouseMsg:
		s.HandleMouse(msg)
	case tea.KeyMsg:
		s.HandleKey(msg)
	}
	return s, nil
}

// HandleMouse runs the divider drag state machine.
//
// Cell-motion mouse reporting delivers motion and release events for the
// whole surface, so a drag started on a handle keeps tracking after the
// pointer leaves it and ends on a release anywhere. Each motion recomputes
// the ratio from the pointer position and the current reference rectangle;
// there is no delta bookkeeping, which keeps drags correct across resizes.
func (s *SplitLayoutView) HandleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			// Any other button cancels an in-progress drag.
			s.drag = nil
			return
		}
		switch {
		case s.regions.VDivider.Contains(msg.X, msg.Y):
			s.drag = &dragSession{axis: AxisVertical}
			s.focus.SetFocus(HandleVertical)
		case s.regions.HDivider.Contains(msg.X, msg.Y):
			s.drag = &dragSession{axis: AxisHorizontal}
			s.focus.SetFocus(HandleHorizontal)
		}
	case tea.MouseActionMotion:
		if s.drag == nil {
			return
		}
		s.dragTo(msg.X, msg.Y)
	case tea.MouseActionRelease:
		s.drag = nil
	}
}

// dragTo converts a pointer position to a ratio against the axis's reference
// rectangle: the top band for the vertical divider, the whole surface for
// the horizontal one. Unmeasurable geometry makes the event a no-op.
func (s *SplitLayoutView) dragTo(x, y int) {
	switch s.drag.axis {
	case AxisVertical:
		r := s.regions.Top
		if r.W <= 0 {
			return
		}
		s.setLeftPct(100 * float64(x-r.X) / float64(r.W))
	case AxisHorizontal:
		r := s.regions.Surface
		if r.H <= 0 {
			return
		}
		s.setTopPct(100 * float64(y-r.Y) / float64(r.H))
	}
}

// HandleKey handles divider focus rotation and keyboard resizing. Returns
// true when the key was consumed; unhandled keys fall through to the host.
func (s *SplitLayoutView) HandleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, s.keys.CycleFocus):
		s.focus.Next()
		return true
	case key.Matches(msg, s.keys.PrevFocus):
		s.focus.Prev()
		return true
	}

	switch s.focus.Current {
	case HandleVertical:
		switch {
		case key.Matches(msg, s.keys.Narrow):
			s.setLeftPct(s.state.LeftPct - keyStep)
			return true
		case key.Matches(msg, s.keys.Widen):
			s.setLeftPct(s.state.LeftPct + keyStep)
			return true
		case key.Matches(msg, s.keys.Reset):
			s.setLeftPct(leftHomePct)
			return true
		}
	case HandleHorizontal:
		switch {
		case key.Matches(msg, s.keys.Raise):
			s.setTopPct(s.state.TopPct - keyStep)
			return true
		case key.Matches(msg, s.keys.Lower):
			s.setTopPct(s.state.TopPct + keyStep)
			return true
		case key.Matches(msg, s.keys.Reset):
			s.setTopPct(topHomePct)
			return true
		}
	}
	return false
}

func (s *SplitLayoutView) setTopPct(v float64) {
	lo, hi := s.cfg.topRange()
	s.state.TopPct = clamp(v, lo, hi)
	s.refresh()
}

func (s *SplitLayoutView) setLeftPct(v float64) {
	lo, hi := s.cfg.leftRange()
	s.state.LeftPct = clamp(v, lo, hi)
	s.refresh()
}

// refresh recomputes geometry and mirrors the state to storage.
func (s *SplitLayoutView) refresh() {
	s.regions = ComputeRegions(s.regions.Surface.W, s.regions.Surface.H, s.state.TopPct, s.state.LeftPct)
	// Best-effort: Save logs failures, callers never see them.
	_ = layoutstore.Save(s.store, s.cfg.StorageKey, layoutstore.StoredLayout{
		TopPct:  s.state.TopPct,
		LeftPct: s.state.LeftPct,
	})
}

// View implements View. Each region renders exactly what its producer
// returns, placed into its rectangle; no caching or diffing.
func (s *SplitLayoutView) View() string {
	if s.regions.Surface.Empty() {
		return ""
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top,
		renderBox(s.regions.TopLeft, s.cfg.TopLeft),
		s.verticalDivider(),
		renderBox(s.regions.TopRight, s.cfg.TopRight),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		top,
		s.horizontalDivider(),
		renderBox(s.regions.Bottom, s.cfg.Bottom),
	)
}

// renderBox places content into a fixed-size region, padding or cropping.
func renderBox(r Rect, f ContentFunc) string {
	if r.Empty() {
		return ""
	}
	var content string
	if f != nil {
		content = f()
	}
	return lipgloss.NewStyle().
		Width(r.W).Height(r.H).
		MaxWidth(r.W).MaxHeight(r.H).
		Render(content)
}

func (s *SplitLayoutView) horizontalDivider() string {
	return s.dividerStyle(AxisHorizontal, HandleHorizontal).
		Render(strings.Repeat("─", s.regions.HDivider.W))
}

func (s *SplitLayoutView) verticalDivider() string {
	h := s.regions.VDivider.H
	if h <= 0 {
		return ""
	}
	col := strings.TrimSuffix(strings.Repeat("│\n", h), "\n")
	return s.dividerStyle(AxisVertical, HandleVertical).Render(col)
}

func (s *SplitLayoutView) dividerStyle(axis Axis, handle string) lipgloss.Style {
	if s.drag != nil && s.drag.axis == axis {
		return Styles.DividerActive
	}
	if s.focus.Current == handle {
		return Styles.DividerFocus
	}
	return Styles.Divider
}
