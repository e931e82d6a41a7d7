package main

import (
	"flag"
	"log"
	"strings"

	"github.com/danmuck/dutctl/internal/config"
)

func main() {
	kind := flag.String("kind", "toml", "config kind: "+strings.Join(config.Kinds(), "|"))
	output := flag.String("output", "", "output path for config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "", "config path for validation (defaults to per-kind cmd path)")
	force := flag.Bool("force", false, "overwrite existing config file")
	flag.Parse()

	if _, err := config.Template(*kind); err != nil {
		log.Fatal(err)
	}

	if *validate {
		path := *input
		if path == "" {
			path = defaultPath(*kind)
		}
		cfg, err := config.Load(path)
		if err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated %s config at %s (interface=%q port=%d)", *kind, path, cfg.Interface, cfg.Port)
		return
	}

	target := *output
	if target == "" {
		target = defaultPath(*kind)
	}
	if err := config.WriteTemplate(target, *kind, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote %s config template to %s", *kind, target)
}

func defaultPath(kind string) string {
	if strings.EqualFold(kind, "toml") {
		return "cmd/dutctl/config.toml"
	}
	return "cmd/dutctl/config.yaml"
}
