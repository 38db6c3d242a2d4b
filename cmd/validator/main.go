package main

import (
	"encoding/json"
	"flag"
	"io"
	"log"
	"os"

	"github.com/proxy-access-validator/internal/config"
	"github.com/proxy-access-validator/internal/service"
)

func main() {
	mode := flag.String("mode", "relationship", "validation mode: proxy or relationship")
	input := flag.String("input", "-", "request file, or - for stdin")
	flag.Parse()

	// Load configuration
	configManager, err := config.NewManager()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := configManager.Validate(); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	cfg := configManager.GetConfig()
	logger := config.NewLogger(cfg.Logging)

	svc := service.NewValidatorService(logger, service.Rules{
		RelationCode:     cfg.Validation.RelationCode,
		AgeLimit:         cfg.Validation.AgeLimit,
		UnrestrictedCode: cfg.Validation.UnrestrictedCode,
	})

	data, err := readInput(*input)
	if err != nil {
		log.Fatalf("Failed to read request: %v", err)
	}

	var result interface{}
	switch *mode {
	case "proxy":
		var req service.ProxyScreeningRequest
		if err := json.Unmarshal(data, &req); err != nil {
			log.Fatalf("Failed to decode request: %v", err)
		}
		result, err = svc.ScreenProxyAccess(&req)
	case "relationship":
		var req service.RelationshipValidationRequest
		if err := json.Unmarshal(data, &req); err != nil {
			log.Fatalf("Failed to decode request: %v", err)
		}
		result, err = svc.ValidatePatientAccess(&req)
	default:
		log.Fatalf("Unknown mode: %s", *mode)
	}
	if err != nil {
		log.Fatalf("Validation failed: %v", err)
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		log.Fatalf("Failed to encode result: %v", err)
	}
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}
