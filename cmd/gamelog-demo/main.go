package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog"

	"github.com/gronkutils/gamelog/pkg/config"
	"github.com/gronkutils/gamelog/pkg/gamelog"
	"github.com/gronkutils/gamelog/pkg/overlay"
	"github.com/gronkutils/gamelog/pkg/sinks"
)

// cliArgs holds all command-line arguments passed to the demo.
type cliArgs struct {
	ConfigPath string
	LogDir     string
	Verbose    bool
}

func parseCLIArgs() *cliArgs {
	args := &cliArgs{}

	flag.StringVar(&args.ConfigPath, "config", "", "Path to an optional JSON5 config file.")
	flag.StringVar(&args.LogDir, "log-dir", ".", "Specifies the directory to store log files.")
	flag.BoolVar(&args.Verbose, "verbose", false, "Lower the display threshold to Verbose.")
	flag.Parse()

	return args
}

// actor is a named scene object with a liveness flag.
type actor struct {
	name  string
	alive bool
}

func (a *actor) DisplayName() string { return a.name }
func (a *actor) Alive() bool         { return a.alive }

// part is a named sub-object attached to an actor.
type part struct {
	name  string
	owner *actor
}

func (p *part) DisplayName() string { return p.name }

func (p *part) Owner() gamelog.Contextual {
	if p.owner == nil {
		return nil
	}
	return p.owner
}

func main() {
	args := parseCLIArgs()

	cfg := config.Default()
	if args.ConfigPath != "" {
		loaded, err := config.Load(args.ConfigPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	// 1. Setup the permanent sink first.
	if err := os.MkdirAll(args.LogDir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create log directory: %v\n", err)
		os.Exit(1)
	}
	logFileName := cfg.LogFile
	if args.ConfigPath == "" {
		// No config file: use a unique, timestamped log file name.
		logFileName = fmt.Sprintf("gamelog-demo-%s.log", time.Now().Format("2006-01-02_15-04-05"))
	}
	logPath := filepath.Join(args.LogDir, logFileName)

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0666)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()

	zl := zerolog.New(logFile).With().Timestamp().Logger()

	// 2. Build the logger and its sinks.
	ov := overlay.New()

	logger := gamelog.New()
	logger.SetPermanentSink(sinks.NewZerologSink(zl))
	logger.SetDisplaySink(ov)
	logger.SetDisplayThreshold(cfg.Threshold())
	if args.Verbose || cfg.Verbose {
		logger.SetDisplayThreshold(gamelog.LevelVerbose)
	}
	gamelog.SetDefault(logger)

	// 3. Build the TUI hosting the overlay.
	app := tview.NewApplication()
	frame := tview.NewFrame(ov.View()).
		AddText("gamelog overlay demo - Ctrl-C to quit", true, tview.AlignCenter, tcell.ColorWhite)
	ov.Attach(app)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ov.Start(ctx)

	// 4. Setup OS signal trapping.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		app.Stop()
	}()

	go runScene(ctx)

	if err := app.SetRoot(frame, true).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runScene emits a scripted stream of log events until ctx is cancelled.
func runScene(ctx context.Context) {
	player := &actor{name: "Player", alive: true}
	weapon := &part{name: "Weapon", owner: player}
	ghost := &actor{name: "Ghost", alive: false}

	ticker := time.NewTicker(700 * time.Millisecond)
	defer ticker.Stop()

	step := 0
	health := 100
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		switch step % 10 {
		case 0:
			gamelog.Print(player, "entered the arena")
		case 1:
			gamelog.Log(weapon, "reloading", gamelog.LevelVerbose)
		case 2:
			health -= 7
			gamelog.LogInt(player, "health", health, gamelog.LevelDisplay)
		case 3:
			gamelog.LogFloat(weapon, "spread", 2.5, gamelog.LevelLog)
		case 4:
			gamelog.LogVector(player, "position", gamelog.Vector{X: 12.5, Y: 0, Z: -3.75}, gamelog.LevelDisplay)
		case 5:
			gamelog.LogRotator(player, "facing", gamelog.Rotator{Yaw: 90}, gamelog.LevelVeryVerbose)
		case 6:
			gamelog.LogBool(weapon, "jammed", step%20 == 6, gamelog.LevelWarning)
		case 7:
			gamelog.LogObject(player, "target", ghost, gamelog.LevelDisplay)
		case 8:
			gamelog.LogOnValidity(player, ghost, gamelog.LogWhenInvalid, "target is gone", gamelog.LevelError)
		case 9:
			gamelog.LogOnCondition(player, health < 30, gamelog.LogWhenTrue, "health critical", gamelog.LevelError)
			if health < 30 {
				health = 100
			}
		}
		step++
	}
}
