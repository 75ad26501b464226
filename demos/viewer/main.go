// Viewer is an interactive space-colonization playground. It grows a
// sapling tree into an attractor cloud and lets you poke at it:
//
//   - Space: run/pause, S: single step, R: reset, C: clear to a blank canvas
//   - Tab: cycle the spawn tool (root node / rect attractors / oval attractors)
//   - Left click: spawn with the current tool, left drag: pan
//   - Mouse wheel: zoom to cursor (eased)
//   - -preset path.yaml: load simulation parameters from a YAML preset
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"

	"github.com/JH12333/sapling"
)

const (
	windowTitle = "Sapling — Space Colonization"
	screenW     = 1280
	screenH     = 800

	dragDeadZone = 4.0  // pixels of movement before a press counts as a drag
	zoomDuration = 0.15 // seconds per wheel zoom tween
	tickDT       = 1.0 / 60
)

var (
	colorBackground = color.RGBA{10, 10, 18, 255}
	colorEdge       = color.RGBA{144, 238, 144, 255}
	colorNode       = color.RGBA{173, 216, 230, 255}
	colorNewNode    = color.RGBA{255, 64, 64, 255}
	colorAttractor  = color.RGBA{240, 128, 128, 255}
	colorHint       = color.RGBA{255, 255, 0, 200}
	colorRootHint   = color.RGBA{0, 255, 0, 200}
)

// spawnTool selects what a left click drops into the world.
type spawnTool int

const (
	toolRootNode spawnTool = iota
	toolRectAttractors
	toolOvalAttractors
	toolCount
)

func (t spawnTool) String() string {
	switch t {
	case toolRootNode:
		return "root node"
	case toolRectAttractors:
		return "rect attractors"
	case toolOvalAttractors:
		return "oval attractors"
	default:
		return "unknown"
	}
}

// preset is the YAML shape accepted by -preset.
type preset struct {
	Config       sapling.Config `yaml:"config"`
	SpawnCount   int            `yaml:"spawn_count"`
	RectHalf     sapling.Vec2   `yaml:"spawn_rect_half_extents"`
	OvalRadii    sapling.Vec2   `yaml:"spawn_oval_radii"`
	StepInterval float64        `yaml:"step_interval"`
}

func defaultPreset() preset {
	return preset{
		Config:       sapling.DefaultConfig(),
		SpawnCount:   250,
		RectHalf:     sapling.Vec2{X: 60, Y: 60},
		OvalRadii:    sapling.Vec2{X: 60, Y: 60},
		StepInterval: 0.1,
	}
}

func loadPreset(path string) (preset, error) {
	p := defaultPreset()
	data, err := os.ReadFile(path)
	if err != nil {
		return p, fmt.Errorf("read preset: %w", err)
	}
	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("parse preset %s: %w", path, err)
	}
	return p, nil
}

type viewer struct {
	sim     *sapling.Simulation
	rng     *rand.Rand
	lastNew []sapling.NodeID

	running      bool
	stepInterval float64
	stepAccum    float64

	tool       spawnTool
	spawnCount int
	rectHalf   sapling.Vec2
	ovalRadii  sapling.Vec2

	zoom float64
	pan  sapling.Vec2 // screen-space offset in pixels

	// Eased wheel zoom: the tween drives zoom while pan is re-solved each
	// tick so anchorWorld stays pinned under anchorScreen.
	zoomTween    *gween.Tween
	zoomTarget   float64
	anchorScreen sapling.Vec2
	anchorWorld  sapling.Vec2

	// Left-button press tracking to tell clicks from pan drags.
	pressed  bool
	pressPos sapling.Vec2
	prevCur  sapling.Vec2
	dragged  bool
}

func newViewer(p preset) *viewer {
	v := &viewer{
		sim:          sapling.NewSimulation(p.Config),
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		stepInterval: p.StepInterval,
		spawnCount:   p.SpawnCount,
		rectHalf:     p.RectHalf,
		ovalRadii:    p.OvalRadii,
		zoom:         3,
	}
	v.seedCloud()
	return v
}

// seedCloud drops the default attractor oval above the root, matching the
// classic "tree growing into a crown" setup.
func (v *viewer) seedCloud() {
	v.sim.Attractors.Extend(sapling.RandomInOval(
		sapling.Vec2{X: 0, Y: 120}, sapling.Vec2{X: 100, Y: 100}, 1000, v.rng))
}

func (v *viewer) stepOnce() {
	v.lastNew = v.sim.Step()
}

func (v *viewer) reset() {
	v.sim.Reset()
	v.seedCloud()
	v.lastNew = nil
	v.running = false
	v.stepAccum = 0
}

func (v *viewer) clear() {
	v.sim.Clear()
	v.lastNew = nil
	v.running = false
	v.stepAccum = 0
}

// worldToScreen maps a world position (y-up) to screen pixels (y-down).
func (v *viewer) worldToScreen(p sapling.Vec2) (float64, float64) {
	return screenW/2 + p.X*v.zoom + v.pan.X,
		screenH/2 - p.Y*v.zoom + v.pan.Y
}

// screenToWorld is the inverse of worldToScreen.
func (v *viewer) screenToWorld(x, y float64) sapling.Vec2 {
	return sapling.Vec2{
		X: (x - screenW/2 - v.pan.X) / v.zoom,
		Y: (screenH/2 - y + v.pan.Y) / v.zoom,
	}
}

func (v *viewer) Update() error {
	v.handleKeys()
	v.handleMouse()
	v.updateZoomTween()

	if v.running && v.stepInterval > 0 {
		v.stepAccum += tickDT
		for v.stepAccum >= v.stepInterval {
			v.stepAccum -= v.stepInterval
			v.stepOnce()
		}
	}
	return nil
}

func (v *viewer) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		v.running = !v.running
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		v.stepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		v.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		v.clear()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		v.tool = (v.tool + 1) % toolCount
	}
}

func (v *viewer) handleMouse() {
	mx, my := ebiten.CursorPosition()
	cur := sapling.Vec2{X: float64(mx), Y: float64(my)}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.pressed = true
		v.dragged = false
		v.pressPos = cur
		v.prevCur = cur
	}
	if v.pressed && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if cur.Sub(v.pressPos).Length() > dragDeadZone {
			v.dragged = true
		}
		if v.dragged {
			v.pan = v.pan.Add(cur.Sub(v.prevCur))
		}
		v.prevCur = cur
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		if v.pressed && !v.dragged {
			v.spawnAt(v.screenToWorld(cur.X, cur.Y))
		}
		v.pressed = false
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		target := v.zoomTarget
		if v.zoomTween == nil {
			target = v.zoom
		}
		target *= math.Pow(1.1, wheelY)
		v.zoomTarget = min(max(target, 0.1), 10)
		v.zoomTween = gween.New(float32(v.zoom), float32(v.zoomTarget), zoomDuration, ease.OutQuad)
		v.anchorScreen = cur
		v.anchorWorld = v.screenToWorld(cur.X, cur.Y)
	}
}

// updateZoomTween advances the eased zoom and re-solves pan so the world
// point under the cursor at wheel time stays put.
func (v *viewer) updateZoomTween() {
	if v.zoomTween == nil {
		return
	}
	z, done := v.zoomTween.Update(tickDT)
	v.zoom = float64(z)
	v.pan.X = v.anchorScreen.X - screenW/2 - v.anchorWorld.X*v.zoom
	v.pan.Y = v.anchorScreen.Y - screenH/2 + v.anchorWorld.Y*v.zoom
	if done {
		v.zoomTween = nil
	}
}

func (v *viewer) spawnAt(center sapling.Vec2) {
	switch v.tool {
	case toolRootNode:
		id := v.sim.Tree.AddFreeNode(center, 1)
		v.lastNew = []sapling.NodeID{id}
	case toolRectAttractors:
		v.sim.Attractors.Extend(sapling.RandomInRect(center, v.rectHalf, v.spawnCount, v.rng))
	case toolOvalAttractors:
		v.sim.Attractors.Extend(sapling.RandomInOval(center, v.ovalRadii, v.spawnCount, v.rng))
	}
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	tree := v.sim.Tree

	// Edges first, nodes on top.
	for i := range tree.Nodes {
		x1, y1 := v.worldToScreen(tree.Nodes[i].Pos)
		for _, child := range tree.Nodes[i].Children {
			x2, y2 := v.worldToScreen(tree.Nodes[child].Pos)
			vector.StrokeLine(screen, float32(x1), float32(y1), float32(x2), float32(y2), 1, colorEdge, true)
		}
	}
	for i := range tree.Nodes {
		x, y := v.worldToScreen(tree.Nodes[i].Pos)
		r := max(tree.Nodes[i].Radius*v.zoom, 2)
		col := colorNode
		if slices.Contains(v.lastNew, sapling.NodeID(i)) {
			col = colorNewNode
		}
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), col, true)
	}

	for i := range v.sim.Attractors.Points {
		a := &v.sim.Attractors.Points[i]
		if !a.Alive {
			continue
		}
		x, y := v.worldToScreen(a.Pos)
		vector.DrawFilledCircle(screen, float32(x), float32(y), 2, colorAttractor, true)
	}

	v.drawToolHint(screen)
	v.drawHUD(screen)
}

// drawToolHint outlines what the current tool would spawn at the cursor.
func (v *viewer) drawToolHint(screen *ebiten.Image) {
	mx, my := ebiten.CursorPosition()
	center := v.screenToWorld(float64(mx), float64(my))

	switch v.tool {
	case toolRootNode:
		x, y := v.worldToScreen(center)
		r := max(v.sim.Config.StepLen*v.zoom*0.5, 3)
		vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), colorRootHint, true)

	case toolRectAttractors:
		// Top-left screen corner is the world corner (cx-hx, cy+hy).
		x, y := v.worldToScreen(sapling.Vec2{X: center.X - v.rectHalf.X, Y: center.Y + v.rectHalf.Y})
		w := 2 * v.rectHalf.X * v.zoom
		h := 2 * v.rectHalf.Y * v.zoom
		vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1.5, colorHint, true)

	case toolOvalAttractors:
		const segments = 64
		px, py := v.worldToScreen(sapling.Vec2{X: center.X + v.ovalRadii.X, Y: center.Y})
		for i := 1; i <= segments; i++ {
			t := float64(i) / segments * 2 * math.Pi
			x, y := v.worldToScreen(sapling.Vec2{
				X: center.X + math.Cos(t)*v.ovalRadii.X,
				Y: center.Y + math.Sin(t)*v.ovalRadii.Y,
			})
			vector.StrokeLine(screen, float32(px), float32(py), float32(x), float32(y), 1.5, colorHint, true)
			px, py = x, y
		}
	}
}

func (v *viewer) drawHUD(screen *ebiten.Image) {
	state := "paused"
	if v.running {
		state = "running"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS %.0f  %s  dt target %.2fs\nnodes %d  attractors alive %d/%d  steps %d\ntool: %s\n[space] run  [s] step  [r] reset  [c] clear  [tab] tool  drag pan  wheel zoom",
		ebiten.ActualFPS(), state, v.stepInterval,
		v.sim.Tree.Len(), v.sim.Attractors.AliveCount(), v.sim.Attractors.Len(), v.sim.StepCount(),
		v.tool,
	))
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	presetPath := flag.String("preset", "", "YAML preset with simulation parameters")
	flag.Parse()

	p := defaultPreset()
	if *presetPath != "" {
		var err error
		if p, err = loadPreset(*presetPath); err != nil {
			log.Fatal(err)
		}
	}

	ebiten.SetWindowSize(screenW, screenH)
	ebiten.SetWindowTitle(windowTitle)
	if err := ebiten.RunGame(newViewer(p)); err != nil {
		log.Fatal(err)
	}
}
