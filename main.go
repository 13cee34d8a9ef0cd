/*
Pong on the engine package. Run with -frontend=terminal to play inside a
terminal instead of an OpenGL window.
*/
package main

import (
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/pong/engine"
	"github.com/spaghettifunk/pong/engine/core"
	"github.com/spaghettifunk/pong/pong"
)

func main() {
	configPath := flag.String("config", "assets/config/pong.toml", "path to the game configuration")
	assetsDir := flag.String("assets", "assets", "directory holding shaders and configuration")
	frontend := flag.String("frontend", "", "window or terminal, overrides the configuration")
	flag.Parse()

	cfg, err := pong.LoadConfig(*configPath)
	if err != nil {
		core.LogFatal("failed to load configuration: %s", err)
	}
	if *frontend != "" {
		cfg.Application.Frontend = *frontend
		if err := cfg.Validate(); err != nil {
			core.LogFatal("%s", err)
		}
	}

	game := pong.NewGame(cfg, *configPath, *assetsDir)

	engine, err := engine.New(game)
	if err != nil {
		core.LogFatal("failed to create engine: %s", err)
	}

	if err := engine.Initialize(); err != nil {
		_ = engine.Shutdown()
		core.LogFatal("failed to initialize engine: %s", err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	// stop the loop; Shutdown runs on the main thread once Run returns
	go func() {
		<-sigCh
		engine.Quit()
	}()

	runErr := engine.Run()
	if err := engine.Shutdown(); err != nil {
		core.LogError("shutdown: %s", err)
	}
	if runErr != nil {
		core.LogFatal("engine stopped: %s", runErr)
	}
}
