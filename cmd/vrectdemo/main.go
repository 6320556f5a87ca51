package main

import (
	"flag"
	"fmt"
	"log"

	"chosenoffset.com/vrect/internal/demo"
	ebitenrender "chosenoffset.com/vrect/internal/render/ebiten"
	"chosenoffset.com/vrect/internal/vrect"
)

func main() {
	// Command-line flags
	configPath := flag.String("config", "", "JSON config file (optional)")
	mode := flag.String("mode", "", "demo mode when no config is given: spin or fall")
	overlap := flag.String("overlap", "", "rect overlap test: exact, corners or legacy")
	debug := flag.Bool("debug", false, "force the debug overlay on")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *mode)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *overlap != "" {
		if _, err := vrect.ParseOverlapMode(*overlap); err != nil {
			log.Fatalf("Bad -overlap: %v", err)
		}
		cfg.Overlap = *overlap
	}
	if *debug {
		cfg.Style.Debug = true
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	scene, err := demo.NewScene(cfg, renderer, inputMgr)
	if err != nil {
		log.Fatalf("Failed to build scene: %v", err)
	}
	log.Printf("Scene ready: mode=%s rect=%v overlap=%s", cfg.Mode, scene.Rect(), cfg.Overlap)

	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(fmt.Sprintf("%s [%s] - space pause, D debug, esc quit", cfg.Window.Title, cfg.Mode))
	engine.SetWindowResizable(true)

	log.Println("Starting demo...")
	if err := engine.RunGame(scene); err != nil {
		log.Fatal(err)
	}
}

func loadConfig(path, mode string) (*demo.Config, error) {
	if path == "" {
		return demo.Preset(mode)
	}
	if mode != "" {
		log.Printf("Warning: -mode %q ignored, mode comes from %s", mode, path)
	}
	cfg, err := demo.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	log.Printf("Loaded config: %s", path)
	return cfg, nil
}
