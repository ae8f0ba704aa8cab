package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"gopkg.in/natefinch/lumberjack.v2"

	"sup3rbob.dev/folio/config"
	"sup3rbob.dev/folio/selftest"
	"sup3rbob.dev/folio/web"
)

const usage = `Usage: folio          open the portfolio in the terminal
       folio serve    serve the portfolio over HTTP on $FOLIO_ADDR`

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("config: %v", err)
	}

	mode := ""
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}
	if mode != "" && mode != "serve" {
		config.Exitf("%s", usage)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0755); err != nil {
		log.Fatalf("Could not create directories: %v", err)
	}

	logFile := &lumberjack.Logger{
		Filename:   cfg.LogPath,
		MaxSize:    5,  // Megabytes before it rotates
		MaxBackups: 3,  // Keep only the 3 most recent old log files
		MaxAge:     28, // Days to keep logs
		Compress:   true,
	}

	err = run(cfg, mode, logFile)
	// os.Exit skips deferred calls.
	logFile.Close()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, mode string, logOut io.Writer) error {
	if mode == "serve" {
		return runServer(cfg, log.New(io.MultiWriter(os.Stderr, logOut), "WEB: ", log.LstdFlags))
	}

	fileLogger := log.New(logOut, "APP: ", log.LstdFlags)

	// Debug assertions go to the log only; the rendered page is the same either way.
	selftest.Run(cfg.Location, fileLogger)

	opts := []tea.ProgramOption{tea.WithMouseCellMotion()}
	if cfg.AltScreen {
		// Alt-screen makes this a true full-window TUI (no scrollback spam).
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewAppModel(fileLogger), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func runServer(cfg config.Config, logger *log.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := web.Serve(ctx, cfg.Addr, logger); err != nil {
		logger.Print(err)
		return err
	}
	return nil
}
