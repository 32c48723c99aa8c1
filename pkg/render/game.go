package render

import (
	"errors"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"math"
	"os"
	"sort"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/ncruces/zenity"

	"github.com/teslashibe/go-ornament/internal/log"
	"github.com/teslashibe/go-ornament/pkg/scene"
	"github.com/teslashibe/go-ornament/pkg/stage"
)

const (
	windowWidth  = 1280
	windowHeight = 800

	// decorationRadius is a disc's world-space radius at scale 1.
	decorationRadius = 0.8
	// photoSize is a photo card's world-space edge at scale 1.
	photoSize = 3.0

	// publishEvery throttles dashboard state broadcasts, in ticks.
	publishEvery = 15
)

// StatePublisher receives periodic stage snapshots (the dashboard).
type StatePublisher interface {
	PublishState(stage.State)
}

// Game is the Ebitengine front end. Update drives the stage director once
// per frame; Draw projects and paints every item.
type Game struct {
	director *stage.Director
	st       *stage.Stage
	pub      StatePublisher

	mu    sync.Mutex
	items []*Item

	picking bool
	ticks   uint64
	lastErr error
}

// NewGame wires the renderer to the stage. pub may be nil.
func NewGame(director *stage.Director, st *stage.Stage, pub StatePublisher) *Game {
	return &Game{director: director, st: st, pub: pub}
}

// SeedDecorations populates the stage with n decoration discs.
func (g *Game) SeedDecorations(n int) {
	for i := 0; i < n; i++ {
		item := NewDecoration(PaletteColor(i))
		g.addItem(item)
		g.st.AddObject(item, scene.RoleDecoration)
	}
}

// Run opens the window and blocks until the player quits.
func (g *Game) Run() error {
	ebiten.SetWindowSize(windowWidth, windowHeight)
	ebiten.SetWindowTitle("go-ornament")
	err := ebiten.RunGame(g)
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// Update implements ebiten.Game: input, then one director step.
func (g *Game) Update() error {
	if err := g.handleInput(); err != nil {
		return err
	}

	g.director.Step()

	g.ticks++
	if g.pub != nil && g.ticks%publishEvery == 0 {
		g.pub.PublishState(g.director.Snapshot())
	}
	return nil
}

func (g *Game) handleInput() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit1):
		g.director.SetMode(stage.ModeTree)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit2):
		g.director.SetMode(stage.ModeScatter)
	case inpututil.IsKeyJustPressed(ebiten.KeyDigit3):
		g.director.SetMode(stage.ModeFocus)
	case inpututil.IsKeyJustPressed(ebiten.KeyG):
		g.director.SetGestureEnabled(!g.director.GestureEnabled())
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.director.Reset()
	case inpututil.IsKeyJustPressed(ebiten.KeyP):
		g.pickPhoto()
	case inpututil.IsKeyJustPressed(ebiten.KeyEscape), inpututil.IsKeyJustPressed(ebiten.KeyQ):
		return ebiten.Termination
	}
	return nil
}

// pickPhoto opens the file dialog off the game loop and adds the chosen
// image as a photo card, focusing it once loaded.
func (g *Game) pickPhoto() {
	g.mu.Lock()
	if g.picking {
		g.mu.Unlock()
		return
	}
	g.picking = true
	g.mu.Unlock()

	go func() {
		defer func() {
			g.mu.Lock()
			g.picking = false
			g.mu.Unlock()
		}()

		path, err := zenity.SelectFile(
			zenity.Title("Add Photo"),
			zenity.FileFilters{{
				Name:     "Images",
				Patterns: []string{"*.png", "*.jpg", "*.jpeg"},
			}},
		)
		if err != nil {
			if !errors.Is(err, zenity.ErrCanceled) {
				g.setErr(err)
			}
			return
		}

		img, err := loadImage(path)
		if err != nil {
			g.setErr(err)
			return
		}

		item := NewPhoto(img)
		g.addItem(item)
		g.st.AddObject(item, scene.RolePhoto)
		g.director.FocusLatest()
		log.Info("photo added", "path", path)
	}()
}

func loadImage(path string) (*ebiten.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return ebiten.NewImageFromImage(img), nil
}

func (g *Game) addItem(item *Item) {
	g.mu.Lock()
	g.items = append(g.items, item)
	g.mu.Unlock()
}

func (g *Game) setErr(err error) {
	g.mu.Lock()
	g.lastErr = err
	g.mu.Unlock()
	log.Error("photo load failed", "err", err)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)

	orient := g.st.Orientation()

	g.mu.Lock()
	items := make([]*Item, len(g.items))
	copy(items, g.items)
	g.mu.Unlock()

	type placed struct {
		item *Item
		tr   scene.Transform
		proj projected
	}
	visible := make([]placed, 0, len(items))
	for _, it := range items {
		tr := it.transform()
		proj, ok := project(tr.Pos, orient, windowWidth, windowHeight)
		if !ok {
			continue
		}
		visible = append(visible, placed{item: it, tr: tr, proj: proj})
	}

	// Painter's order: far objects first.
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].proj.depth > visible[j].proj.depth
	})

	for _, p := range visible {
		if p.item.photo != nil {
			g.drawPhoto(screen, p.item, p.tr, p.proj)
		} else {
			g.drawDisc(screen, p.item, p.tr, p.proj)
		}
	}

	g.drawHUD(screen)
}

func (g *Game) drawDisc(screen *ebiten.Image, it *Item, tr scene.Transform, proj projected) {
	r := decorationRadius * tr.Scale.X * proj.px
	if r < 0.5 {
		return
	}
	vector.DrawFilledCircle(screen, float32(proj.x), float32(proj.y), float32(r), shade(it.tint, proj.depth), true)
}

func (g *Game) drawPhoto(screen *ebiten.Image, it *Item, tr scene.Transform, proj projected) {
	bounds := it.photo.Bounds()
	w := float64(bounds.Dx())
	h := float64(bounds.Dy())
	if w == 0 || h == 0 {
		return
	}

	// Scale the card so its longer edge spans photoSize world units, then
	// roll it by the Z rotation. Yaw and pitch are not modeled in 2D.
	edge := photoSize * tr.Scale.X * proj.px
	s := edge / math.Max(w, h)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(s, s)
	op.GeoM.Rotate(tr.Rot.Z)
	op.GeoM.Translate(proj.x, proj.y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(it.photo, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	snap := g.director.Snapshot()
	msg := "mode: " + snap.Mode +
		"  |  1 tree  2 scatter  3 focus  G gestures  P photo  R reset  Q quit"
	if snap.GestureEnabled {
		if snap.Hand.Present {
			msg += "  |  hand tracked"
		} else {
			msg += "  |  gestures on, no hand"
		}
	}
	g.mu.Lock()
	if g.lastErr != nil {
		msg += "  |  error: " + g.lastErr.Error()
	}
	g.mu.Unlock()
	ebitenutil.DebugPrintAt(screen, msg, 12, 12)
}

// Layout implements ebiten.Game.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return windowWidth, windowHeight
}
