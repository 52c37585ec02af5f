package main

import (
	"fmt"
	"log"
	"os"

	"histview/internal/app"
	"histview/internal/logger"
	"histview/internal/shutdown"
)

func main() {
	if len(os.Args) > 2 || (len(os.Args) == 2 && (os.Args[1] == "-h" || os.Args[1] == "--help")) {
		fmt.Fprintf(os.Stderr, "usage: %s [file.root]\n", os.Args[0])
		os.Exit(2)
	}

	cfg, warnings := app.LoadConfig(os.Getenv)
	appLogger := logger.New(cfg.LogLevel, cfg.JSONLogs)
	for _, w := range warnings {
		appLogger.Warning("Main", w, nil)
	}

	application, err := app.NewApplication(cfg, appLogger)
	if err != nil {
		log.Fatalf("Application initialization failed: %v", err)
	}

	shutdownMgr := shutdown.NewManager(appLogger)
	shutdownMgr.Register(shutdown.Func(application.Quit))
	// Components run in reverse: the session closes on the UI goroutine
	// before the event loop is asked to quit.
	shutdownMgr.Register(shutdown.Func(application.Shutdown))
	shutdownMgr.Listen()

	if len(os.Args) == 2 {
		application.OpenAtStartup(os.Args[1])
	}

	if err := application.Run(); err != nil {
		log.Fatalf("Application execution failed: %v", err)
	}
	shutdownMgr.Shutdown()
}
