package controls

// Context holds the input services shared by every scene. One is built per
// process and passed down explicitly.
type Context struct {
	Loop     *FrameLoop
	Window   *Window
	Gamepads GamepadSource
	Players  *PlayerManager
	Activity *ActivityListener
}

func NewContext(source GamepadSource) *Context {
	loop := NewFrameLoop()
	ctx := &Context{
		Loop:     loop,
		Window:   NewWindow(),
		Gamepads: source,
		Players:  NewPlayerManager(),
		Activity: NewActivityListener(source, loop),
	}
	ctx.Activity.Init()
	return ctx
}

// Tick runs one frame of polling. Call it once per ebiten Update.
func (c *Context) Tick() {
	c.Loop.Tick()
}
