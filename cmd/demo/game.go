package main

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/bluebolt/common"
	"github.com/milk9111/bluebolt/cpworld"
	"github.com/milk9111/bluebolt/motion"
	"github.com/milk9111/bluebolt/tuning"
)

const (
	baseWidth  = 1280
	baseHeight = 720

	// pixels per world unit
	unit = 32.0

	fixedDelta = 1.0 / 60.0
)

type rectf struct {
	x, y, w, h float64
	col        color.Color
}

type segf struct {
	ax, ay, bx, by float64
}

type Game struct {
	world    *cpworld.World
	ctrl     *motion.Controller
	tunePath string
	watcher  *tuning.Watcher

	solids []rectf
	waters []rectf
	slopes []segf
}

func NewGame(tunePath string) (*Game, error) {
	spec, err := loadSpec(tunePath)
	if err != nil {
		return nil, err
	}

	g := &Game{tunePath: tunePath}
	g.world = cpworld.New(cpworld.ScreenPlane())
	g.buildLevel()

	g.ctrl = motion.NewController(g.world, spec.Config())
	g.ctrl.Body().Position = mgl64.Vec3{6, 14, 0}

	if tunePath != "" {
		w, err := tuning.NewWatcher(filepath.Dir(tunePath))
		if err != nil {
			return nil, err
		}
		g.watcher = w
	}

	return g, nil
}

func loadSpec(path string) (*tuning.MovementSpec, error) {
	if path == "" {
		return tuning.LoadMovementSpec()
	}
	return tuning.LoadMovementSpecFile(path)
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

// buildLevel lays out one screen that exercises every predicate: flat
// ground, an uphill slope onto a plateau, a wall for sliding and wall
// jumps, a low tunnel for duck-dashes, and a water pool.
func (g *Game) buildLevel() {
	g.addSolid(rectf{x: 0, y: 18, w: 40, h: 4, col: colornames.Slategray})   // floor
	g.addSolid(rectf{x: -1, y: -4, w: 1, h: 26, col: colornames.Slategray})  // left bound
	g.addSolid(rectf{x: 40, y: -4, w: 1, h: 26, col: colornames.Slategray})  // right bound
	g.addSolid(rectf{x: 4, y: 16.2, w: 6, h: 0.8, col: colornames.Dimgray})  // low tunnel roof
	g.addSolid(rectf{x: 20, y: 15, w: 6, h: 3, col: colornames.Slategray})   // plateau
	g.addSolid(rectf{x: 28, y: 6, w: 1, h: 12, col: colornames.Slategray})   // wall

	g.addSlope(segf{ax: 14, ay: 18, bx: 20, by: 15})

	g.addWater(rectf{x: 31, y: 15, w: 7, h: 3, col: color.RGBA{R: 40, G: 90, B: 200, A: 140}})
}

func (g *Game) addSolid(r rectf) {
	g.world.AddBox(r.x, r.y, r.x+r.w, r.y+r.h, motion.LayerSolid)
	g.solids = append(g.solids, r)
}

func (g *Game) addSlope(s segf) {
	g.world.AddSegment(s.ax, s.ay, s.bx, s.by, 0.2, motion.LayerSolid)
	g.slopes = append(g.slopes, s)
}

func (g *Game) addWater(r rectf) {
	g.world.AddBox(r.x, r.y, r.x+r.w, r.y+r.h, motion.LayerWater)
	g.waters = append(g.waters, r)
}

func keyState(keys ...ebiten.Key) motion.KeyState {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return motion.KeyPress
		}
	}
	for _, k := range keys {
		if inpututil.IsKeyJustReleased(k) {
			return motion.KeyRelease
		}
	}
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return motion.KeyHold
		}
	}
	return motion.KeyNone
}

func readFrame() motion.Frame {
	moveX := 0.0
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		moveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		moveX += 1
	}
	return motion.Frame{
		Jump:  keyState(ebiten.KeySpace),
		Dash:  keyState(ebiten.KeyShiftLeft, ebiten.KeyK),
		MoveX: common.Clamp(moveX, -1, 1),
	}
}

func (g *Game) Update() error {
	g.pollTuning()

	in := readFrame()
	g.ctrl.Update(in, fixedDelta)
	g.ctrl.FixedUpdate(in, fixedDelta)
	g.integrate()

	return nil
}

// integrate advances the body and snaps it onto the ground. The motion
// core only edits velocity; position integration is the host's job.
func (g *Game) integrate() {
	body := g.ctrl.Body()
	cfg := g.ctrl.Config()

	body.Position = body.Position.Add(body.Velocity.Mul(fixedDelta))

	// Settle the body onto the surface once the fall velocity has been
	// resolved by the landing step.
	fall := body.Velocity.Dot(cfg.Gravity)
	if math.Abs(fall) > 1e-6 {
		return
	}
	hit, ok := g.ctrl.Probe().GroundHit(0.2)
	if !ok {
		return
	}
	contact := hit.Distance + 0.9*cfg.Radius
	target := body.Position[1] + contact - cfg.Height/2
	body.Position[1] = common.Lerp(body.Position[1], target, 0.5)
}

func (g *Game) pollTuning() {
	if g.watcher == nil {
		return
	}
	select {
	case _, ok := <-g.watcher.Events:
		if !ok {
			g.watcher = nil
			return
		}
		spec, err := tuning.LoadMovementSpecFile(g.tunePath)
		if err != nil {
			log.Printf("reload tuning: %v", err)
			return
		}
		g.ctrl.Retune(spec.Config())
	case err, ok := <-g.watcher.Errors:
		if ok && err != nil {
			log.Printf("tuning watcher: %v", err)
		}
	default:
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	for _, r := range g.solids {
		ebitenutil.DrawRect(screen, r.x*unit, r.y*unit, r.w*unit, r.h*unit, r.col)
	}
	for _, s := range g.slopes {
		ebitenutil.DrawLine(screen, s.ax*unit, s.ay*unit, s.bx*unit, s.by*unit, colornames.Slategray)
	}
	for _, r := range g.waters {
		ebitenutil.DrawRect(screen, r.x*unit, r.y*unit, r.w*unit, r.h*unit, r.col)
	}

	g.drawPlayer(screen)

	body := g.ctrl.Body()
	ebitenutil.DebugPrint(screen, fmt.Sprintf(
		"FPS: %.1f\nmove: A/D  jump: Space  dash: Shift\npos (%.1f, %.1f)  vel (%.1f, %.1f)\ncollider: %s  canMove: %t  dashJump: %t",
		ebiten.ActualFPS(),
		body.Position[0], body.Position[1],
		body.Velocity[0], body.Velocity[1],
		body.Collider(), body.CanMove, body.DashJump,
	))
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	body := g.ctrl.Body()
	cfg := g.ctrl.Config()

	h := cfg.Height
	if body.Ducking() {
		h = cfg.Height / 2
	}
	// The crouched box keeps the same feet line.
	top := body.Position[1] + cfg.Height/2 - h
	left := body.Position[0] - cfg.Radius

	ebitenutil.DrawRect(screen, left*unit, top*unit, cfg.Radius*2*unit, h*unit, colornames.Crimson)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}
