package main

import (
	"log/slog"
	"os"

	"github.com/Carmen-Shannon/spaces/app"
	"github.com/Carmen-Shannon/spaces/config"
	"github.com/Carmen-Shannon/spaces/engine/graphics"
	"github.com/Carmen-Shannon/spaces/engine/overlay"
	"github.com/Carmen-Shannon/spaces/engine/profiler"
	"github.com/Carmen-Shannon/spaces/engine/window"
	"github.com/Carmen-Shannon/spaces/storage"
	"github.com/cogentcore/webgpu/wgpu"
)

const configPath = "spaces.toml"

func main() {
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(log)

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// ── Window ──────────────────────────────────────────────────────────
	win := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
		window.WithResizable(cfg.Window.Resizable),
		window.WithDecorations(cfg.Window.Decorated),
	)
	defer win.Close()

	// ── Adapter probe ───────────────────────────────────────────────────
	probe := wgpu.CreateInstance(nil)
	graphics.LogAdapters(log, graphics.EnumerateAdapters(probe))
	probe.Release()

	// ── Graphics context ────────────────────────────────────────────────
	ctx, err := graphics.NewContext(win, log)
	if err != nil {
		log.Error("failed to initialize graphics context", "error", err)
		os.Exit(1)
	}
	defer ctx.Release()

	// ── Simulation records ──────────────────────────────────────────────
	store := storage.NewStore()
	bodies, err := store.LoadDir(cfg.Assets.RecordsDir)
	if err != nil {
		log.Warn("failed to load simulation records", "dir", cfg.Assets.RecordsDir, "error", err)
	} else {
		log.Info("loaded simulation records", "dir", cfg.Assets.RecordsDir, "count", len(bodies))
	}

	// ── Overlay ─────────────────────────────────────────────────────────
	logicalW, logicalH := win.LogicalSize()
	fbScale := float32(1)
	if logicalW > 0 {
		fbScale = float32(win.Width()) / logicalW
	}
	comp := overlay.NewCompositor(
		overlay.WithDisplaySize(logicalW, logicalH),
		overlay.WithFramebufferScale(fbScale),
	)
	defer comp.Release()

	if err := comp.InitRenderer(ctx.Device(), ctx.Queue(), ctx.SurfaceConfiguration().Format); err != nil {
		log.Error("failed to initialize overlay renderer", "error", err)
		os.Exit(1)
	}

	icon, err := graphics.UploadTexture(ctx.SurfaceConfiguration(), ctx.Device(), ctx.Queue(), cfg.Assets.IconImage)
	if err != nil {
		log.Error("failed to upload icon texture", "path", cfg.Assets.IconImage, "error", err)
		os.Exit(1)
	}
	defer icon.Release()

	if _, err := comp.RegisterTexture("tex.icon", icon); err != nil {
		log.Error("failed to register icon texture", "error", err)
		os.Exit(1)
	}

	// ── Shell ───────────────────────────────────────────────────────────
	buildUI := func(ui *overlay.UIFrame) {
		ui.MainMenuBar(func() {
			if ui.ImageButton("tex.icon", 64, 64) {
				log.Info("icon clicked")
			}
		})
	}

	var driverOptions []app.FrameDriverBuilderOption
	if cfg.Profiler.Enabled {
		driverOptions = append(driverOptions, app.WithProfiler(profiler.NewProfiler(log)))
	}
	driver := app.NewFrameDriver(ctx, comp, buildUI, log, driverOptions...)

	shell := app.NewShell(win, ctx, comp, driver, log)
	shell.Run()
}
