package nav

import "fmt"

// Viewport reports the size of the visible area in layout units.
type Viewport interface {
	Width() float64
	Height() float64
}

// Renderer receives the derived view after every transition.
type Renderer interface {
	SetVerticalTransform(offset float64)
	SetHorizontalTransform(group int, offset float64)
	SetActiveSection(index int)
	SetActiveSlot(group, index int)
	SetActiveHeader(index int)
	SetProgressPercent(percent float64)
}

// Command names an intent understood by the controller.
type Command int

const (
	CommandNext Command = iota
	CommandPrev
	CommandJump
	CommandReinitialize
)

func (c Command) String() string {
	switch c {
	case CommandNext:
		return "next"
	case CommandPrev:
		return "prev"
	case CommandJump:
		return "jump"
	case CommandReinitialize:
		return "reinitialize"
	default:
		return fmt.Sprintf("command(%d)", int(c))
	}
}

// Intent is one request from the control surface. Index is only read by
// CommandJump.
type Intent struct {
	Command Command
	Index   int
}

type intentHandler func(Intent) (Update, error)

// Controller binds intents to position transitions and pushes the derived
// view to a Renderer. It is not safe for concurrent use; callers serialize
// intents the way an event loop does.
type Controller struct {
	registry *Registry
	position *Position
	viewport Viewport
	renderer Renderer
	handlers map[Command]intentHandler
}

// NewController creates a controller at the zero position. Call
// Reinitialize once the viewport is known to measure and render.
func NewController(reg *Registry, viewport Viewport, renderer Renderer) *Controller {
	c := &Controller{
		registry: reg,
		position: NewPosition(reg.GroupCount()),
		viewport: viewport,
		renderer: renderer,
	}
	c.handlers = map[Command]intentHandler{
		CommandNext:         func(Intent) (Update, error) { return c.Next(), nil },
		CommandPrev:         func(Intent) (Update, error) { return c.Prev(), nil },
		CommandJump:         func(in Intent) (Update, error) { return c.JumpTo(in.Index) },
		CommandReinitialize: func(Intent) (Update, error) { return c.Reinitialize(), nil },
	}
	return c
}

// Dispatch routes an intent through the command table.
func (c *Controller) Dispatch(in Intent) (Update, error) {
	handler, ok := c.handlers[in.Command]
	if !ok {
		return Update{}, fmt.Errorf("unknown command %s", in.Command)
	}
	return handler(in)
}

// Next advances one step and renders.
func (c *Controller) Next() Update {
	upd := c.position.Next(c.registry)
	c.render(upd)
	return upd
}

// Prev retreats one step and renders.
func (c *Controller) Prev() Update {
	upd := c.position.Prev(c.registry)
	c.render(upd)
	return upd
}

// JumpTo moves straight to section v. Out-of-range targets leave the state
// and the rendered view untouched.
func (c *Controller) JumpTo(v int) (Update, error) {
	upd, err := c.position.JumpTo(c.registry, v)
	if err != nil {
		return Update{}, err
	}
	c.render(upd)
	return upd, nil
}

// Reinitialize re-measures the registry for the current viewport, clamps the
// position into the new ranges and renders everything.
func (c *Controller) Reinitialize() Update {
	width := 0.0
	if c.viewport != nil {
		width = c.viewport.Width()
	}
	c.registry.Rebuild(width)
	c.position.Clamp(c.registry)
	upd := Update{Kind: UpdateFull, Group: c.position.Role(c.registry).Group}
	c.render(upd)
	return upd
}

// Reload swaps in new group specs and reinitializes.
func (c *Controller) Reload(specs []GroupSpec) Update {
	c.registry.SetSpecs(specs)
	return c.Reinitialize()
}

// Position returns a copy of the current position.
func (c *Controller) Position() *Position {
	return c.position.Clone()
}

// Registry exposes the measured groups.
func (c *Controller) Registry() *Registry {
	return c.registry
}

// Role is the role of the current section.
func (c *Controller) Role() Role {
	return c.position.Role(c.registry)
}

// Progress is the current percentage through the deck.
func (c *Controller) Progress() float64 {
	return Progress(c.position, c.registry)
}

// SetRenderer replaces the render sink; nil disables rendering.
func (c *Controller) SetRenderer(r Renderer) {
	c.renderer = r
}

func (c *Controller) render(upd Update) {
	if c.renderer == nil {
		return
	}
	if upd.Kind == UpdateHorizontal {
		c.renderGroup(upd.Group)
		c.renderer.SetProgressPercent(c.Progress())
		return
	}
	height := 0.0
	if c.viewport != nil {
		height = c.viewport.Height()
	}
	c.renderer.SetVerticalTransform(VerticalOffset(c.position.Vertical, height))
	for g := 0; g < c.registry.GroupCount(); g++ {
		c.renderGroup(g)
	}
	c.renderer.SetActiveSection(ActiveSection(c.position))
	c.renderer.SetActiveHeader(ActiveHeaderIndex(c.position, c.registry.SectionCount()))
	c.renderer.SetProgressPercent(c.Progress())
}

func (c *Controller) renderGroup(g int) {
	if g < 0 || g >= c.registry.GroupCount() {
		return
	}
	slot := c.position.Slot(g)
	offset := HorizontalOffset(c.registry.SlotWidths(g), slot, c.registry.ViewportWidth())
	c.renderer.SetHorizontalTransform(g, offset)
	c.renderer.SetActiveSlot(g, slot)
}
