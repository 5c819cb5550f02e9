package viewer

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/wavemesh/internal/assets"
	"github.com/Faultbox/wavemesh/internal/config"
	"github.com/Faultbox/wavemesh/internal/engine/camera"
	"github.com/Faultbox/wavemesh/internal/engine/debug"
	"github.com/Faultbox/wavemesh/internal/engine/input"
	"github.com/Faultbox/wavemesh/internal/engine/lighting"
	"github.com/Faultbox/wavemesh/internal/engine/render"
	"github.com/Faultbox/wavemesh/internal/engine/texture"
	"github.com/Faultbox/wavemesh/internal/engine/window"
	"github.com/Faultbox/wavemesh/internal/logger"
	"github.com/Faultbox/wavemesh/pkg/mesh"
)

// maxFrameDelta caps the simulation step after a stall.
const maxFrameDelta = 100 * time.Millisecond

// App owns the window, GPU resources and scene.
type App struct {
	cfg      *config.Config
	win      *window.Window
	in       *input.Input
	renderer *render.Renderer
	assets   *assets.Manager
	scene    *Scene
	shots    *debug.Screenshot

	meshes   []*render.GPUMesh
	textures []*render.Texture
}

// New opens the window and loads the configured models.
func New(cfg *config.Config) (*App, error) {
	if cfg.Viewer.Model == "" {
		return nil, errors.New("no model configured")
	}

	am, err := assets.NewManager(cfg.Assets.CacheSize)
	if err != nil {
		return nil, err
	}
	for _, dir := range cfg.Assets.Roots {
		if err := am.AddDir(dir); err != nil {
			return nil, err
		}
	}

	win, err := window.New(window.Config{
		Title:      cfg.Window.Title,
		Width:      cfg.Window.Width,
		Height:     cfg.Window.Height,
		Fullscreen: cfg.Window.Fullscreen,
		VSync:      cfg.Window.VSync,
		Samples:    cfg.Window.Samples,
	})
	if err != nil {
		return nil, err
	}

	a := &App{
		cfg:    cfg,
		win:    win,
		in:     input.New(),
		assets: am,
		shots:  debug.NewScreenshot(cfg.Viewer.ScreenshotDir, "wavemesh"),
	}

	a.renderer, err = render.New()
	if err != nil {
		a.Close()
		return nil, err
	}
	a.renderer.SetSun(lighting.Sun{
		Longitude: cfg.Viewer.SunLongitude,
		Latitude:  cfg.Viewer.SunLatitude,
	})
	if err := texture.Init(); err != nil {
		a.Close()
		return nil, err
	}

	cam := camera.NewFlyCamera(mgl32.Vec3{0, 0, 3})
	cam.FOV = mgl32.DegToRad(cfg.Viewer.FOVDegrees)
	a.scene = NewScene(cam, Speeds{
		Move:      cfg.Viewer.MoveSpeed,
		Look:      cfg.Viewer.LookSpeed,
		MouseLook: cfg.Viewer.MouseLook,
	})

	if err := a.loadScene(); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) loadScene() error {
	vc := a.cfg.Viewer

	model, err := a.assets.Load(vc.Model)
	if err != nil {
		return err
	}
	obj, err := a.newObject(vc.Model, model.Mesh, vc.Texture)
	if err != nil {
		return err
	}
	obj.Source = model.Mesh
	obj.Part, err = render.ParsePartRef(model.Mesh, vc.Part)
	if err != nil {
		return err
	}
	pos := mgl32.Vec3(vc.ModelPosition)
	obj.Placement.SetPosition(pos)
	a.scene.AddObject(obj)

	bounds := model.Buffers.Bounds.Translate(pos)
	a.scene.Camera.FitToBounds(bounds)
	logger.Info("model placed",
		zap.String("model", vc.Model),
		zap.Stringer("part", obj.Part),
		zap.Float32s("position", vc.ModelPosition[:]),
	)

	if vc.Ground {
		half := groundSize(vc.GroundSize, bounds)
		ground, err := a.newObject("ground", groundMesh(half), vc.GroundTexture)
		if err != nil {
			return err
		}
		center := bounds.Center()
		ground.Placement.SetPosition(mgl32.Vec3{center.X(), bounds.Min.Y(), center.Z()})
		a.scene.AddObject(ground)
	}

	hudMesh := reticleMesh(0.02)
	if vc.HUDModel != "" {
		hud, err := a.assets.Load(vc.HUDModel)
		if err != nil {
			return err
		}
		hudMesh = hud.Mesh
	}
	hudObj, err := a.newObject("hud", hudMesh, vc.HUDTexture)
	if err != nil {
		return err
	}
	hudObj.Placement.Anchor = mesh.CameraAnchor{Distance: vc.HUDDistance}
	a.scene.AddHUDObject(hudObj)

	for i, r := range model.Mesh.DrawRanges() {
		p, _ := model.Mesh.Part(i)
		logger.Debug("part",
			zap.String("name", p.Name),
			zap.Int("offset", r.Offset),
			zap.Int("count", r.Count),
		)
	}
	return nil
}

func (a *App) newObject(name string, m *mesh.Mesh, texturePath string) (*Object, error) {
	gpu, err := render.Upload(m)
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", name, err)
	}
	a.meshes = append(a.meshes, gpu)

	if texturePath != "" {
		data, _, err := a.assets.ReadFile(texturePath)
		if err != nil {
			return nil, err
		}
		img, err := texture.DecodeFile(texturePath, data)
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", texturePath, err)
		}
		tex, err := render.UploadTexture(img)
		if err != nil {
			return nil, fmt.Errorf("uploading %s: %w", texturePath, err)
		}
		a.textures = append(a.textures, tex)
		gpu.SetTexture(tex)
	}

	return &Object{Name: name, Mesh: gpu, Placement: mesh.NewPlacement()}, nil
}

// Run runs the frame loop until the window is closed.
func (a *App) Run() error {
	a.win.CaptureMouse(true)
	defer a.win.CaptureMouse(false)

	last := time.Now()
	frames := 0
	fpsStart := last

	for {
		if a.in.Update() {
			return nil
		}

		if w, h, ok := a.in.Resized(); ok {
			logger.Debug("window resized", zap.Int("width", w), zap.Int("height", h))
		}

		now := time.Now()
		dt := min(now.Sub(last), maxFrameDelta)
		last = now

		a.scene.Update(float32(dt.Seconds()), a.in)

		w, h := a.win.Size()
		a.scene.Render(a.renderer, w, h)
		if a.in.Pressed(sdl.SCANCODE_F12) {
			a.screenshot(w, h)
		}
		a.win.SwapBuffers()

		frames++
		if elapsed := now.Sub(fpsStart); elapsed >= time.Second {
			a.win.SetTitle(fmt.Sprintf("%s - %.0f fps", a.cfg.Window.Title, float64(frames)/elapsed.Seconds()))
			frames = 0
			fpsStart = now
		}
	}
}

func (a *App) screenshot(width, height int) {
	name, err := a.shots.CaptureFromPixels(a.renderer.ReadPixels(width, height), width, height)
	if err != nil {
		logger.Warn("screenshot failed", zap.Error(err))
		return
	}
	logger.Info("screenshot saved", zap.String("file", name))
}

// Close releases GPU resources and the window.
func (a *App) Close() {
	for _, m := range a.meshes {
		m.Delete()
	}
	for _, t := range a.textures {
		t.Delete()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	texture.Quit()
	if a.win != nil {
		a.win.Close()
	}

	hits, misses := a.assets.Stats()
	logger.Debug("asset cache", zap.Int("hits", hits), zap.Int("misses", misses))
}
