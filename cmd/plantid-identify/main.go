package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/vbonduro/plantid/internal/config"
	"github.com/vbonduro/plantid/internal/domain"
	"github.com/vbonduro/plantid/internal/logging"
	"github.com/vbonduro/plantid/internal/service"
	"github.com/vbonduro/plantid/internal/vision"
	"github.com/vbonduro/plantid/internal/vision/backend"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "usage: plantid-identify <image>")
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}

	logger, cleanup, err := logging.New(cfg.LogLevel, cfg.LogFile)
	if err != nil {
		log.Printf("failed to initialize logger: %v", err)
		return 1
	}
	defer cleanup()

	imageData, err := os.ReadFile(args[0])
	if err != nil {
		logger.Error("failed to read image", "path", args[0], "error", err)
		return 1
	}

	ctx := context.Background()
	identifier, closeIdentifier, err := backend.New(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize vision backend", "error", err)
		return 1
	}
	defer closeIdentifier()

	svc := service.NewIdentifyService(identifier, cfg.VisionBackend, logger)
	plant, err := svc.Identify(ctx, imageData, http.DetectContentType(imageData))
	if err != nil {
		logger.Error("identify failed", "path", args[0], "error", err)
		return 1
	}

	printPlant(out, plant)
	return 0
}

// printPlant writes the fields in the same "Label: value" form the model is
// asked for.
func printPlant(w io.Writer, p *domain.PlantInfo) {
	values := []string{p.Name, p.ScientificName, p.Description, p.Care, p.FunFact}
	for i, label := range vision.Labels {
		fmt.Fprintf(w, "%s: %s\n", label, values[i])
	}
}
