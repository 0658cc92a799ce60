package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-defense/audio"
	"github.com/lixenwraith/vi-defense/core"
	"github.com/lixenwraith/vi-defense/engine"
	"github.com/lixenwraith/vi-defense/input"
	"github.com/lixenwraith/vi-defense/parameter"
	"github.com/lixenwraith/vi-defense/render"
	"github.com/lixenwraith/vi-defense/session"
)

var (
	configFlag = flag.String("config", "", "Tuning file (TOML) overriding the default numbers")
	fsmFlag    = flag.String("fsm", "", "Session state graph (TOML) replacing the embedded one")
	logFlag    = flag.String("log", "", "Write logs to this file (disabled when empty)")
	debugFlag  = flag.Bool("debug", false, "Log at debug level")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	logFile, err := setupLogging(*logFlag, *debugFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	tuning, err := loadTuning(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	s, err := newSession(tuning, *fsmFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.SetTerminalRestore(screen.Fini)

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-DEFENSE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	// Normal exit terminal cleanup
	defer screen.Fini()

	screen.EnableMouse()
	screen.HideCursor()
	screen.Clear()

	// Audio is optional
	sounds := audio.NewSoundManager()
	if err := sounds.Initialize(); err != nil {
		log.WithError(err).Warn("audio unavailable, continuing without sound")
	} else {
		defer sounds.Cleanup()
	}
	sounds.SetMuted(*muteFlag)
	s.Register(sounds)

	loop := &gameLoop{
		session:    s,
		translator: input.NewTranslator(input.DefaultKeyTable(), s.World().Bounds),
		renderer:   render.NewTerminalRenderer(screen, tuning),
		sounds:     sounds,
		resize:     screen.Sync,
	}

	log.WithField("tick", tuning.TickInterval).Info("game loop start")
	loop.run(screen, tuning.TickInterval)
	log.Info("game loop exit")
}

// setupLogging routes logrus to path, or discards everything when path is empty
func setupLogging(path string, debug bool) (*os.File, error) {
	log.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if path == "" {
		log.SetOutput(io.Discard)
		return nil, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return f, nil
}

// loadTuning returns the defaults, or the defaults overridden by path
func loadTuning(path string) (*parameter.Tuning, error) {
	if path == "" {
		return parameter.DefaultTuning(), nil
	}
	t, err := parameter.LoadTuning(path)
	if err != nil {
		return nil, err
	}
	log.WithField("path", path).Info("tuning loaded")
	return t, nil
}

// newSession builds the session on the embedded graph, or on the graph file at fsmPath
func newSession(t *parameter.Tuning, fsmPath string) (*session.Session, error) {
	clock := engine.NewMonotonicTimeProvider()
	if fsmPath == "" {
		return session.New(t, clock)
	}
	graph, err := os.ReadFile(fsmPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read state graph: %w", err)
	}
	log.WithField("path", fsmPath).Info("state graph loaded")
	return session.NewWithGraph(t, clock, graph)
}
