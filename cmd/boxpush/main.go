package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/xlab/closer"

	"boxpush/internal/audio"
	"boxpush/internal/config"
	"boxpush/internal/game"
	"boxpush/internal/input"
	"boxpush/internal/logger"
)

func init() {
	runtime.LockOSThread()
}

func main() {
	log := logger.New()
	closer.Bind(log.Close)

	config.LoadSettings()
	closer.Bind(func() {
		if err := config.SaveSettings(); err != nil {
			fmt.Fprintf(os.Stderr, "save settings: %v\n", err)
		}
	})

	if err := glfw.Init(); err != nil {
		log.Errorf("glfw init: %v", err)
		closer.Fatalln(err)
	}
	closer.Bind(glfw.Terminate)

	window, err := setupWindow()
	if err != nil {
		log.Errorf("window setup: %v", err)
		closer.Fatalln(err)
	}

	if err := gl.Init(); err != nil {
		log.Errorf("gl init: %v", err)
		closer.Fatalln(err)
	}
	log.Infof("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	audioManager, err := audio.NewManager(log)
	if err != nil {
		log.Errorf("audio init: %v", err)
		closer.Fatalln(err)
	}
	closer.Bind(audioManager.Close)

	inputManager := input.NewInputManager()

	app, err := game.NewApp(window, inputManager, audioManager, log)
	if err != nil {
		log.Errorf("app init: %v", err)
		closer.Fatalln(err)
	}
	closer.Bind(app.Dispose)

	app.Run()
	closer.Close()
}

func setupWindow() (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(config.WindowWidth, config.WindowHeight, config.WindowTitle, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	return window, nil
}
