package main

import (
	"context"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/golfmatch/internal/catalog"
	"github.com/jask/golfmatch/internal/config"
	"github.com/jask/golfmatch/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	client := catalog.NewClient(cfg.BaseURL())

	p := tea.NewProgram(tui.New(ctx, cfg, client), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
