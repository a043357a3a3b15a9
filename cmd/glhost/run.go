package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/1broseidon/glhost/channel"
	"github.com/1broseidon/glhost/embedder"
	"github.com/1broseidon/glhost/host"
	"github.com/1broseidon/glhost/host/glfwwin"
	"github.com/1broseidon/glhost/internal/config"
	"github.com/1broseidon/glhost/texture"
)

func init() {
	// GLFW window creation and event polling must stay on the main thread.
	runtime.LockOSThread()
}

func runHostCmd(args []string) int {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file (default: standard location)")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		return 1
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slogLevel(cfg.LogLevel),
	})))

	if err := runHost(cfg, *configPath); err != nil {
		slog.Error("host exited with error", "err", err)
		return 1
	}
	return 0
}

func runHost(cfg *config.Config, configPath string) error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("failed to initialize GLFW: %w", err)
	}
	defer glfw.Terminate()

	mainWin, resWin, err := glfwwin.CreatePair(glfwwin.Options{
		Title:     cfg.Window.Title,
		Width:     cfg.Window.Width,
		Height:    cfg.Window.Height,
		Decorated: *cfg.Window.Decorated,
		Resizable: *cfg.Window.Resizable,
		Visible:   *cfg.Window.Visible,
	})
	if err != nil {
		return err
	}
	defer mainWin.Destroy()
	defer resWin.Destroy()

	// The main window's context belongs to the engine thread from here on.
	glfw.DetachCurrentContext()

	toolkit := glfwwin.Toolkit{}
	window := host.NewWindow(mainWin)
	resource := host.NewWindow(resWin)
	textures := texture.NewRegistry()
	pool := host.NewPool(cfg.BackgroundWorkers)
	defer pool.Close()

	engine := host.NewEngineCallbacks(toolkit, window, resource, textures, pool)
	platformChrome := host.NewPlatformChrome(window)
	windowChrome := host.NewWindowChrome(window)

	dispatcher := channel.NewDispatcher()
	dispatcher.Register(channel.PlatformChannelName, channel.PlatformChannel(platformChrome))
	dispatcher.Register(channel.WindowChannelName, channel.WindowChannel(windowChrome))

	// Pointer movement drives the drag state machine; alt+left toggles a
	// drag session the way an engine-side widget would over the window
	// channel.
	mainWin.GLFW().SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		windowChrome.DragWindow(x, y)
	})
	mainWin.GLFW().SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		if button != glfw.MouseButton1 || mods&glfw.ModAlt == 0 {
			return
		}
		method := "endDrag"
		if action == glfw.Press {
			method = "startDrag"
		}
		if _, err := dispatcher.Dispatch(channel.WindowChannelName, []byte(fmt.Sprintf(`{"method":%q}`, method))); err != nil {
			slog.Warn("window channel dispatch failed", "method", method, "err", err)
		}
	})

	reload := watchConfig(configPath, toolkit)

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go frameLoop(engine, stop, &wg)

	slog.Info("host running", "title", cfg.Window.Title,
		"size", fmt.Sprintf("%dx%d", cfg.Window.Width, cfg.Window.Height))

	for !mainWin.GLFW().ShouldClose() {
		glfw.WaitEvents()
		select {
		case <-reload:
			applyReload(configPath, platformChrome)
		default:
		}
	}

	close(stop)
	wg.Wait()
	slog.Info("host shutting down")
	return nil
}

// frameLoop stands in for the engine's render thread: it binds the main
// context, presents frames through the callback surface, and releases the
// context on shutdown. It also exercises the background path once so the
// resource context's bracket discipline is visible in one place.
func frameLoop(engine *host.EngineCallbacks, stop <-chan struct{}, wg *sync.WaitGroup) {
	defer wg.Done()
	runtime.LockOSThread()

	engine.RunInBackground(func() {
		runtime.LockOSThread()
		defer runtime.UnlockOSThread()
		engine.MakeResourceCurrent()
		defer engine.ClearCurrent()
		// Resource uploads would happen here on the shared context.
	})

	engine.MakeCurrent()
	defer engine.ClearCurrent()

	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			engine.SwapBuffers()
		}
	}
}

// watchConfig watches the config file's directory and signals the main loop
// on changes, waking it through the toolkit's empty event. Returns a channel
// that never fires when watching is unavailable.
func watchConfig(configPath string, toolkit glfwwin.Toolkit) <-chan struct{} {
	reload := make(chan struct{}, 1)

	path := configPath
	if path == "" {
		var err error
		path, err = config.DefaultConfigPath()
		if err != nil {
			slog.Warn("config watch disabled", "err", err)
			return reload
		}
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		slog.Warn("config watch disabled", "err", err)
		return reload
	}
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		slog.Warn("config watch disabled", "path", path, "err", err)
		watcher.Close()
		return reload
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case ev, ok := <-watcher.Events:
				if !ok {
					return
				}
				if ev.Name != path || !ev.Op.Has(fsnotify.Write) && !ev.Op.Has(fsnotify.Create) {
					continue
				}
				select {
				case reload <- struct{}{}:
				default:
				}
				toolkit.PostEmptyEvent()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				slog.Warn("config watch error", "err", err)
			}
		}
	}()
	return reload
}

// applyReload re-reads the config and applies the settings that can change
// at runtime. Today that is the window title, applied through the platform
// handler like an app-switcher description from the engine.
func applyReload(configPath string, platform embedder.PlatformHandler) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		slog.Warn("config reload skipped", "err", err)
		return
	}
	platform.SetApplicationSwitcherDescription(embedder.AppSwitcherDescription{
		Label: cfg.Window.Title,
	})
	slog.Info("config reloaded", "title", cfg.Window.Title)
}
