// planetarium - Terminal Solar System
// Orbit a procedurally shaded solar system rendered in your terminal.
//
// Controls:
//
//	Left/Right  - Orbit around the focus point
//	W/S         - Pitch the orbit up/down
//	A/D         - Pan the focus point
//	Up/Down     - Zoom in/out
//	Mouse drag  - Orbit (yaw/pitch)
//	Scroll      - Zoom in/out
//	1-8         - Toggle body visibility (Sun..Moon)
//	F1-F8       - Warp to a body (Sun..Moon)
//	B           - Bird's eye view
//	R           - Reset camera (when not warping)
//	Tab         - Toggle ship mode
//	P           - Save screenshot (PNG)
//	?           - Toggle HUD overlay
//	Esc         - Quit
package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/Gxrco/planetarium/pkg/math3d"
	"github.com/Gxrco/planetarium/pkg/noise"
	"github.com/Gxrco/planetarium/pkg/render"
	"github.com/Gxrco/planetarium/pkg/scene"
)

var (
	targetFPS   = flag.Int("fps", 30, "Target FPS")
	bgColor     = flag.String("bg", "0,0,16", "Background color (R,G,B)")
	skyboxPath  = flag.String("skybox", "", "Backdrop image (PNG/JPG/GIF); procedural starfield if empty")
	shipPath    = flag.String("ship", "", "Ship model (GLB) for ship mode")
	portalPath  = flag.String("portal", "", "Portal animation (GIF) shown during warps")
	screenshots = flag.String("shots", ".", "Directory for screenshots")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "planetarium - Terminal Solar System\n\n")
		fmt.Fprintf(os.Stderr, "Usage: planetarium [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nControls:\n")
		fmt.Fprintf(os.Stderr, "  Left/Right  - Orbit around focus\n")
		fmt.Fprintf(os.Stderr, "  W/S         - Pitch orbit up/down\n")
		fmt.Fprintf(os.Stderr, "  A/D         - Pan focus point\n")
		fmt.Fprintf(os.Stderr, "  Up/Down     - Zoom in/out\n")
		fmt.Fprintf(os.Stderr, "  1-8         - Toggle body visibility\n")
		fmt.Fprintf(os.Stderr, "  F1-F8       - Warp to body\n")
		fmt.Fprintf(os.Stderr, "  B           - Bird's eye view\n")
		fmt.Fprintf(os.Stderr, "  R           - Reset camera\n")
		fmt.Fprintf(os.Stderr, "  Tab         - Toggle ship mode\n")
		fmt.Fprintf(os.Stderr, "  P           - Screenshot\n")
		fmt.Fprintf(os.Stderr, "  Esc         - Quit\n")
	}
	flag.Parse()

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// Input tuning. Orbit speed matches one full revolution per 100 key
// repeats; zoom and pan steps are in world units.
const (
	orbitSpeed = math.Pi / 50
	zoomSpeed  = 0.1
	panSpeed   = 1.0
)

// ControlAxis tracks one input channel's velocity with spring decay so
// camera motion coasts to a stop instead of snapping.
type ControlAxis struct {
	Velocity  float64
	velSpring harmonica.Spring
	velAccel  float64 // internal spring velocity (for animating Velocity toward 0)
}

// NewControlAxis creates an axis with a harmonica spring for smooth velocity decay
func NewControlAxis(fps int) ControlAxis {
	return ControlAxis{
		// Frequency 4.0 = moderate speed, damping 1.0 = critically damped (no overshoot)
		velSpring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

// Update decays velocity toward 0 using the spring
func (a *ControlAxis) Update() {
	a.Velocity, a.velAccel = a.velSpring.Update(a.Velocity, a.velAccel, 0)
}

func (a *ControlAxis) Impulse(v float64) {
	a.Velocity += v
}

// Controls holds the four camera input channels.
type Controls struct {
	Yaw, Pitch, Zoom, Pan ControlAxis
	fps                   int
}

func NewControls(fps int) *Controls {
	return &Controls{
		Yaw:   NewControlAxis(fps),
		Pitch: NewControlAxis(fps),
		Zoom:  NewControlAxis(fps),
		Pan:   NewControlAxis(fps),
		fps:   fps,
	}
}

func (c *Controls) Update() {
	c.Yaw.Update()
	c.Pitch.Update()
	c.Zoom.Update()
	c.Pan.Update()
}

// Apply feeds the decaying velocities into the camera, honoring its
// collision and bounds checks.
func (c *Controls) Apply(cam *render.Camera, obstacles []render.Obstacle) {
	const deadzone = 1e-4

	if math.Abs(c.Yaw.Velocity) > deadzone || math.Abs(c.Pitch.Velocity) > deadzone {
		cam.Orbit(c.Yaw.Velocity, c.Pitch.Velocity, obstacles)
	}
	if math.Abs(c.Pan.Velocity) > deadzone {
		cam.MoveCenter(math3d.V2(c.Pan.Velocity, 0), obstacles)
	}
	if math.Abs(c.Zoom.Velocity) > deadzone {
		cam.Zoom(c.Zoom.Velocity, obstacles)
	}
}

func (c *Controls) Reset() {
	c.Yaw = NewControlAxis(c.fps)
	c.Pitch = NewControlAxis(c.fps)
	c.Zoom = NewControlAxis(c.fps)
	c.Pan = NewControlAxis(c.fps)
}

// HUD renders an overlay with frame rate and mode status
type HUD struct {
	fps       float64
	fpsFrames int
	fpsTime   time.Time

	flash      string
	flashUntil time.Time
}

func NewHUD() *HUD {
	return &HUD{fpsTime: time.Now()}
}

// Flash shows a transient status message on the HUD's bottom line.
func (h *HUD) Flash(msg string) {
	h.flash = msg
	h.flashUntil = time.Now().Add(3 * time.Second)
}

// UpdateFPS updates the FPS counter (call once per frame)
func (h *HUD) UpdateFPS() {
	h.fpsFrames++
	elapsed := time.Since(h.fpsTime)
	if elapsed >= time.Second {
		h.fps = float64(h.fpsFrames) / elapsed.Seconds()
		h.fpsFrames = 0
		h.fpsTime = time.Now()
	}
}

// Render draws the HUD overlay directly to the terminal
func (h *HUD) Render(width, height int, show, shipMode bool, sys *scene.System, warping bool) {
	const (
		reset     = "\x1b[0m"
		bold      = "\x1b[1m"
		bgBlack   = "\x1b[40m"
		fgWhite   = "\x1b[97m"
		fgGreen   = "\x1b[92m"
		fgYellow  = "\x1b[93m"
		fgCyan    = "\x1b[96m"
		clearLine = "\x1b[2K"
	)

	moveTo := func(row, col int) string {
		return fmt.Sprintf("\x1b[%d;%dH", row, col)
	}

	// Always clear the HUD rows (so toggling off works)
	fmt.Print(moveTo(1, 1) + clearLine)
	fmt.Print(moveTo(height, 1) + clearLine)

	// Warp always shows its indicator
	if warping {
		warpMsg := fmt.Sprintf("%s%s%s ◉ WARPING %s", bgBlack, bold, fgYellow, reset)
		warpCol := max((width-12)/2, 1)
		fmt.Print(moveTo(height, warpCol) + warpMsg)
		return
	}

	if h.flash != "" && time.Now().Before(h.flashUntil) {
		flashCol := max((width-len(h.flash))/2, 1)
		fmt.Print(moveTo(height, flashCol) + bgBlack + fgYellow + " " + h.flash + " " + reset)
		return
	}

	if !show {
		return
	}

	// Top left: FPS
	fmt.Printf("%s%s%s %.0f FPS %s", moveTo(1, 1), bgBlack, fgGreen, h.fps, reset)

	// Top middle: title
	const title = "planetarium"
	titleCol := max((width-len(title)-2)/2, 1)
	fmt.Print(moveTo(1, titleCol) + bold + bgBlack + fgWhite + " " + title + " " + reset)

	// Bottom left: body visibility
	vis := ""
	for i, b := range sys.Bodies {
		if b.Visible {
			vis += fmt.Sprintf("%d", i+1)
		} else {
			vis += "·"
		}
	}
	fmt.Printf("%s%s%s bodies %s %s", moveTo(height, 1), bgBlack, fgCyan, vis, reset)

	// Bottom right: ship mode
	checkShip := "[ ]"
	if shipMode {
		checkShip = "[✓]"
	}
	shipStr := fmt.Sprintf("%s%s %s Ship (Tab) %s", bgBlack, fgWhite, checkShip, reset)
	shipCol := max(width-16, 1)
	fmt.Print(moveTo(height, shipCol) + shipStr)
}

func run() error {
	// Parse background color
	var bgR, bgG, bgB uint8 = 0, 0, 16
	fmt.Sscanf(*bgColor, "%d,%d,%d", &bgR, &bgG, &bgB)

	// Create terminal
	term := uv.DefaultTerminal()

	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}

	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}

	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)

	// Enable mouse mode
	fmt.Fprint(os.Stdout, "\x1b[?1003h") // Enable any-event mouse tracking
	fmt.Fprint(os.Stdout, "\x1b[?1006h") // Enable SGR extended mouse mode

	// Create renderer
	termRenderer := render.NewTerminalRenderer(term, width, height)
	fbWidth, fbHeight := termRenderer.FramebufferSize()
	fb := render.NewFramebuffer(fbWidth, fbHeight)
	fb.SetBackground(render.RGB(bgR, bgG, bgB))

	// Scene and camera
	system := scene.NewSolarSystem()
	camera := render.NewCamera(
		math3d.V3(0, 25, 40),
		math3d.V3(0, 0, 0),
		math3d.V3(0, 1, 0),
	)
	camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))

	skybox, err := scene.NewSkybox(*skyboxPath)
	if err != nil {
		return fmt.Errorf("load skybox: %w", err)
	}

	// Portal frames are optional; a flat tint blend stands in when no
	// GIF is supplied.
	var portalFrames []*render.Texture
	if *portalPath != "" {
		portalFrames, err = render.LoadGIFFrames(*portalPath)
		if err != nil {
			return fmt.Errorf("load portal animation: %w", err)
		}
	}
	currentFrame := 0

	var ship *scene.Ship
	if *shipPath != "" {
		ship, err = scene.LoadShip(*shipPath)
		if err != nil {
			return fmt.Errorf("load ship: %w", err)
		}
	}
	shipMode := false
	showHUD := true

	uniforms := &render.Uniforms{
		Model:      math3d.Identity(),
		View:       math3d.Identity(),
		Projection: math3d.Identity(),
		Viewport:   math3d.Viewport(float64(fbWidth), float64(fbHeight)),
		Noise:      noise.New(1337, 0.05),
	}

	controls := NewControls(*targetFPS)
	hud := NewHUD()

	// Context for clean shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Mouse state
	var mouseDown bool
	var lastMouseX, lastMouseY int

	// Event handler
	go func() {
		for ev := range term.Events() {
			switch ev := ev.(type) {
			case uv.WindowSizeEvent:
				width, height = ev.Width, ev.Height
				term.Erase()
				term.Resize(width, height)
				termRenderer = render.NewTerminalRenderer(term, width, height)
				fbWidth, fbHeight = termRenderer.FramebufferSize()
				fb = render.NewFramebuffer(fbWidth, fbHeight)
				fb.SetBackground(render.RGB(bgR, bgG, bgB))
				camera.SetAspectRatio(float64(fbWidth) / float64(fbHeight))
				uniforms.Viewport = math3d.Viewport(float64(fbWidth), float64(fbHeight))

			case uv.KeyPressEvent:
				switch {
				case ev.MatchString("escape"), ev.MatchString("ctrl+c"):
					cancel()
					return
				case ev.MatchString("left"):
					controls.Yaw.Impulse(orbitSpeed)
				case ev.MatchString("right"):
					controls.Yaw.Impulse(-orbitSpeed)
				case ev.MatchString("w"):
					controls.Pitch.Impulse(-orbitSpeed)
				case ev.MatchString("s"):
					controls.Pitch.Impulse(orbitSpeed)
				case ev.MatchString("a"):
					controls.Pan.Impulse(-panSpeed)
				case ev.MatchString("d"):
					controls.Pan.Impulse(panSpeed)
				case ev.MatchString("up"), ev.MatchString("+"), ev.MatchString("="):
					controls.Zoom.Impulse(zoomSpeed)
				case ev.MatchString("down"), ev.MatchString("-"), ev.MatchString("_"):
					controls.Zoom.Impulse(-zoomSpeed)
				case ev.MatchString("r"):
					if camera.WarpState() == render.WarpNone {
						camera.ResetPosition()
						controls.Reset()
					}
				case ev.MatchString("b"):
					camera.BirdEyeView()
				case ev.MatchString("tab"):
					if ship != nil {
						shipMode = !shipMode
					}
				case ev.MatchString("p"):
					path := fmt.Sprintf("%s/planetarium-%d.png", *screenshots, time.Now().Unix())
					if err := fb.SavePNG(path); err != nil {
						hud.Flash(fmt.Sprintf("screenshot failed: %v", err))
					} else {
						hud.Flash("saved " + path)
					}
				case ev.MatchString("?"), ev.MatchString("shift+/"):
					showHUD = !showHUD
				default:
					handleBodyKeys(ev, system, camera)
				}
			case uv.MouseClickEvent:
				mouseDown = true
				lastMouseX, lastMouseY = ev.X, ev.Y

			case uv.MouseReleaseEvent:
				mouseDown = false

			case uv.MouseMotionEvent:
				if mouseDown {
					dx := ev.X - lastMouseX
					dy := ev.Y - lastMouseY
					controls.Yaw.Impulse(float64(-dx) * 0.01)
					controls.Pitch.Impulse(float64(dy) * 0.01)
					lastMouseX, lastMouseY = ev.X, ev.Y
				}

			case uv.MouseWheelEvent:
				switch ev.Button {
				case uv.MouseWheelUp:
					controls.Zoom.Impulse(zoomSpeed)
				case uv.MouseWheelDown:
					controls.Zoom.Impulse(-zoomSpeed)
				}
			}
		}
	}()

	// Main loop
	targetDuration := time.Second / time.Duration(*targetFPS)

	cleanup := func() {
		fmt.Fprint(os.Stdout, "\x1b[?1003l")
		fmt.Fprint(os.Stdout, "\x1b[?1006l")
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}

	tick := 0
	frustum := camera.Frustum()
	for {
		select {
		case <-ctx.Done():
			cleanup()
			return nil
		default:
		}

		now := time.Now()
		tick++

		// Advance input springs and feed the camera
		controls.Update()
		obstacles := system.Obstacles()
		controls.Apply(camera, obstacles)

		system.Advance(tick)

		if shipMode && ship != nil {
			ship.Follow(camera)
		}

		// Render
		fb.Clear()
		skybox.Render(fb)

		if camera.CheckIfChanged() {
			uniforms.View = camera.ViewMatrix()
			uniforms.Projection = camera.ProjectionMatrix()
			frustum = camera.Frustum()
		}
		uniforms.Time = tick

		system.Render(fb, uniforms, frustum)

		if shipMode && ship != nil {
			ship.Render(fb, uniforms, system.SunPosition())
		}

		// Portal overlay while warping; radius drives its opacity
		if radius, warping := camera.UpdateWarp(); warping {
			if len(portalFrames) > 0 {
				drawPortal(fb, portalFrames[currentFrame], radius)
				currentFrame = (currentFrame + 1) % len(portalFrames)
			} else {
				drawPortalTint(fb, radius)
			}
		}

		// Display
		termRenderer.Render(fb)
		if err := termRenderer.Flush(); err != nil {
			cleanup()
			return fmt.Errorf("flush: %w", err)
		}

		// HUD overlay (always update FPS, render clears lines when HUD off)
		hud.UpdateFPS()
		hud.Render(width, height, showHUD, shipMode, system, camera.Warping())

		// Frame timing
		elapsed := time.Since(now)
		if elapsed < targetDuration {
			time.Sleep(targetDuration - elapsed)
		}
	}
}

// handleBodyKeys maps 1-8 to visibility toggles and F1-F8 to warps,
// both indexed in roster order (Sun through Moon).
func handleBodyKeys(ev uv.KeyPressEvent, system *scene.System, camera *render.Camera) {
	for i := 0; i < len(system.Bodies); i++ {
		if ev.MatchString(fmt.Sprintf("%d", i+1)) {
			system.Bodies[i].Visible = !system.Bodies[i].Visible
			return
		}
		if ev.MatchString(fmt.Sprintf("f%d", i+1)) {
			camera.StartWarp(system.Bodies[i].Position)
			return
		}
	}
}

// drawPortal stretches one animation frame over the framebuffer,
// blended with the scene by the portal radius.
func drawPortal(fb *render.Framebuffer, frame *render.Texture, radius float64) {
	for y := 0; y < fb.Height; y++ {
		ty := y * frame.Height / fb.Height
		for x := 0; x < fb.Width; x++ {
			tx := x * frame.Width / fb.Width
			fb.SetPixel(x, y, blend(fb.GetPixel(x, y), frame.GetPixel(tx, ty), radius))
		}
	}
}

// drawPortalTint is the no-asset fallback: a violet wash whose
// strength tracks the portal radius.
func drawPortalTint(fb *render.Framebuffer, radius float64) {
	tint := render.RGB(120, 60, 200)
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			fb.SetPixel(x, y, blend(fb.GetPixel(x, y), tint, radius*0.6))
		}
	}
}

func blend(under, over render.Color, t float64) render.Color {
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return render.Color{
		R: uint8(float64(under.R) + (float64(over.R)-float64(under.R))*t),
		G: uint8(float64(under.G) + (float64(over.G)-float64(under.G))*t),
		B: uint8(float64(under.B) + (float64(over.B)-float64(under.B))*t),
		A: 255,
	}
}
