package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/torus-life/model"
	"github.com/sheikhrachel/torus-life/utils"
)

func main() {
	configPath := flag.String("config", "config.json", "path to a JSON config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	// Load configuration - fallback to defaults if file doesn't exist
	config, err := utils.LoadConfig(configPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return err
		}
		fmt.Printf("Using default configuration (%s not found)\n", configPath)
		config = utils.DefaultConfig()
	}

	grid, animation, printer, stats, err := initializeGame(config)
	if err != nil {
		return err
	}
	displayGameInfo(config, grid)

	// Handle Ctrl+C gracefully
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		history       = &model.History{}
		lastFrameTime = time.Now()
	)

frames:
	for frame := 1; frame <= config.Frames; frame++ {
		select {
		case <-ctx.Done():
			fmt.Println("\n🛑 Stopping early...")
			break frames
		default:
		}

		frameStart := time.Now()
		livingCells, status := updateGameState(grid, history, frame, lastFrameTime, stats)
		lastFrameTime = frameStart

		fmt.Printf("Frame: %d | Living: %d | Status: %s\n", frame, livingCells, status)
		if printer != nil {
			if err = printer.Display(grid.Snapshot()); err != nil {
				return err
			}
		}

		animation.Add(grid.Snapshot())
		grid.Step()
	}

	// frames already recorded are written even after an interrupt
	if err = animation.Save(context.Background(), config.Output); err != nil {
		return err
	}
	displayFinalStats(stats, animation.Len())
	return nil
}
