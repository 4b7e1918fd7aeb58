package main

import (
	"flag"
	"log"

	"chosenoffset.com/arena/internal/game"
	ebitenrender "chosenoffset.com/arena/internal/render/ebiten"
	"chosenoffset.com/arena/internal/simulation"
)

func main() {
	configPath := flag.String("config", "arena.json", "path to the simulation config")
	envPath := flag.String("env", ".env", "path to an optional .env override file")
	flag.Parse()

	cfg, err := simulation.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.ApplyEnvFile(*envPath); err != nil {
		log.Fatalf("Failed to apply env overrides: %v", err)
	}
	log.Printf("Config: %d food, player speed %.0f, camera speed %.0f", cfg.FoodCount, cfg.PlayerSpeed, cfg.CameraSpeed)

	g, err := game.New(cfg, nil, nil)
	if err != nil {
		log.Fatalf("Failed to create game: %v", err)
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	manager := game.NewManager(g, renderer, inputMgr, engine, cfg.Window.Width, cfg.Window.Height)

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(true)

	log.Println("Starting game...")
	if err := engine.RunGame(manager); err != nil {
		log.Fatal(err)
	}
	log.Println("Game closed")
}
