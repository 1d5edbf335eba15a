package night

import (
	"fmt"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/younwookim/nightlight/internal/domain/progress"
	"github.com/younwookim/nightlight/internal/physics"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{8, 8, 18, 255}
	colorGrid     = color.RGBA{28, 28, 44, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorEnemy    = color.RGBA{110, 60, 140, 255}
	colorEnemyLit = color.RGBA{255, 195, 0, 255}
	colorMirror   = color.RGBA{160, 200, 230, 255}
	colorCone     = color.RGBA{255, 195, 0, 140}
	colorBeam     = color.RGBA{255, 230, 140, 140}
	colorTorch    = color.RGBA{255, 120, 40, 200}
	colorTorchOff = color.RGBA{90, 50, 30, 200}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}
)

const gridExtent = 40

func (l *Level) project(p mgl64.Vec3) (float32, float32) {
	v := l.camera.WorldToViewport(p)
	return float32(v.X()), float32(v.Y())
}

func (l *Level) line(screen *ebiten.Image, a, b mgl64.Vec3, c color.Color) {
	x0, y0 := l.project(a)
	x1, y1 := l.project(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, 1, c, false)
}

func (l *Level) drawGround(screen *ebiten.Image) {
	t := l.camera.Target()
	cx, cz := math.Round(t.X()/2)*2, math.Round(t.Z()/2)*2
	for i := -gridExtent; i <= gridExtent; i += 2 {
		x, z := cx+float64(i), cz+float64(i)
		l.line(screen, mgl64.Vec3{x, 0, cz - gridExtent}, mgl64.Vec3{x, 0, cz + gridExtent}, colorGrid)
		l.line(screen, mgl64.Vec3{cx - gridExtent, 0, z}, mgl64.Vec3{cx + gridExtent, 0, z}, colorGrid)
	}
}

func (l *Level) drawMirrors(screen *ebiten.Image) {
	w := l.sim.Level().World
	for _, m := range w.Mirrors {
		he := m.HalfExtents
		corners := [4]mgl64.Vec3{
			m.Pose.Point(mgl64.Vec3{-he.X(), 0, -he.Z()}),
			m.Pose.Point(mgl64.Vec3{he.X(), 0, -he.Z()}),
			m.Pose.Point(mgl64.Vec3{he.X(), 0, he.Z()}),
			m.Pose.Point(mgl64.Vec3{-he.X(), 0, he.Z()}),
		}
		for i := range corners {
			l.line(screen, corners[i], corners[(i+1)%4], colorMirror)
		}
		face := m.Pose.Translation.Add(m.WorldNormal().Mul(0.5))
		l.line(screen, m.Pose.Translation, face, colorMirror)
	}
}

// drawCone outlines a light cone on the ground plane.
func (l *Level) drawCone(screen *ebiten.Image, pose physics.Transform, angle, rng float64, c color.Color) {
	fwd := physics.Horizontal(pose.Forward())
	if fwd.LenSqr() < physics.Epsilon {
		return
	}
	fwd = fwd.Normalize()
	apex := pose.Translation
	left := apex.Add(mgl64.QuatRotate(angle, physics.AxisUp).Rotate(fwd).Mul(rng))
	right := apex.Add(mgl64.QuatRotate(-angle, physics.AxisUp).Rotate(fwd).Mul(rng))
	l.line(screen, apex, left, c)
	l.line(screen, apex, right, c)
	l.line(screen, left, right, c)
}

func (l *Level) drawLights(screen *ebiten.Image) {
	lv := l.sim.Level()
	p := lv.World.Player
	if p == nil {
		return
	}
	pose, ok := lv.Physics.Transform(p.Body)
	if !ok {
		return
	}
	if p.Spotlight.Visible {
		l.drawCone(screen, p.Spotlight.Pose(pose), p.Spotlight.OuterAngle, p.Spotlight.Range, colorCone)
	}
	if beam := lv.World.Beam; beam.Visible {
		l.drawCone(screen, beam.Pose, beam.OuterAngle, beam.Range, colorBeam)
	}
}

func (l *Level) drawTorches(screen *ebiten.Image) {
	lv := l.sim.Level()
	ppu := float32(l.camera.PixelsPerUnit())
	for _, id := range lv.World.TorchIDs() {
		torch := lv.World.Torches[id]
		c := colorTorchOff
		if torch.Lit(lv.State.SurvivedSeconds) {
			c = colorTorch
		}
		x, y := l.project(mgl64.Vec3{torch.Position.X(), 0, torch.Position.Z()})
		vector.DrawFilledCircle(screen, x, y, 3, c, false)
		vector.StrokeCircle(screen, x, y, float32(torch.Range)*ppu, 1, c, false)
	}
}

func (l *Level) drawEnemies(screen *ebiten.Image) {
	lv := l.sim.Level()
	ppu := l.camera.PixelsPerUnit()
	half := lv.Tuning.Enemy.HalfExtent
	for _, id := range lv.World.EnemyIDs() {
		e := lv.World.Enemies[id]
		pose, ok := lv.Physics.Transform(e.Body)
		if !ok {
			continue
		}
		if !e.IsAlive() {
			continue
		}
		c := colorEnemy
		if e.SpotLamp.Visible {
			c = colorEnemyLit
		}
		x, y := l.project(pose.Translation)
		vector.DrawFilledCircle(screen, x, y, float32(half*e.Visual.Scale*ppu), c, false)
		if e.TorchLamp.Visible {
			vector.StrokeCircle(screen, x, y, float32(half*ppu)+2, 1, colorTorch, false)
		}
	}
}

func (l *Level) drawPlayer(screen *ebiten.Image) {
	lv := l.sim.Level()
	p := lv.World.Player
	if p == nil || !p.IsAlive() {
		return
	}
	pose, ok := lv.Physics.Transform(p.Body)
	if !ok {
		return
	}
	ppu := l.camera.PixelsPerUnit()
	x, y := l.project(pose.Translation)
	vector.DrawFilledCircle(screen, x, y, float32(lv.Tuning.Player.HalfExtent*ppu), colorPlayer, false)
	l.line(screen, pose.Translation, pose.Translation.Add(pose.Forward()), colorPlayer)
}

// drawFeedback darkens the screen as health drops: a uniform dimming from
// brightness and a frame from the vignette.
func (l *Level) drawFeedback(screen *ebiten.Image) {
	fb := l.sim.Snapshot().Feedback
	cfg := l.run.Tuning.Feedback

	if cfg.BrightnessBase > 0 {
		dim := 1 - math.Max(0, math.Min(fb.Brightness/cfg.BrightnessBase, 1))
		if dim > 0 {
			vector.DrawFilledRect(screen, 0, 0, float32(l.screenW), float32(l.screenH), color.RGBA{0, 0, 0, uint8(230 * dim)}, false)
		}
	}

	maxVignette := cfg.VignetteBase + cfg.VignetteGain
	if maxVignette <= 0 {
		return
	}
	k := math.Max(0, math.Min(fb.Vignette/maxVignette, 1))
	edge := float32(k * float64(min(l.screenW, l.screenH)) / 2)
	shade := color.RGBA{20, 0, 0, uint8(200 * k)}
	w, h := float32(l.screenW), float32(l.screenH)
	vector.DrawFilledRect(screen, 0, 0, w, edge, shade, false)
	vector.DrawFilledRect(screen, 0, h-edge, w, edge, shade, false)
	vector.DrawFilledRect(screen, 0, edge, edge, h-2*edge, shade, false)
	vector.DrawFilledRect(screen, w-edge, edge, edge, h-2*edge, shade, false)
}

func (l *Level) drawUI(screen *ebiten.Image) {
	snap := l.sim.Snapshot()

	// Health bar
	barX := float32(10)
	barY := float32(l.screenH - 20)
	barW := float32(100)
	barH := float32(10)
	vector.DrawFilledRect(screen, barX, barY, barW, barH, colorHealthBG, false)
	vector.DrawFilledRect(screen, barX, barY, barW*float32(snap.HealthRatio), barH, colorHealthFG, false)

	status := fmt.Sprintf("Night %d  %s  Kills: %d", snap.Night, progress.Clock(snap.SurvivedSeconds), snap.KillsThisNight)
	if snap.Cursed {
		status += "  CURSED"
	}
	ebitenutil.DebugPrintAt(screen, status, 10, l.screenH-40)

	// Controls
	ebitenutil.DebugPrint(screen, "WASD: Move | Mouse: Aim | Q: Cursed controls | ESC: Pause")
}

func (l *Level) drawPauseOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 128}
	vector.DrawFilledRect(screen, 0, 0, float32(l.screenW), float32(l.screenH), overlay, false)

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, l.screenW/2-50, l.screenH/2-20)
}
