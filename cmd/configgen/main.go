package main

import (
	"flag"
	"log"

	"github.com/openclaw/clawctl/internal/workspace"
)

func main() {
	output := flag.String("output", "workspace.toml", "output path for the workspace config template")
	validate := flag.Bool("validate", false, "validate an existing config file")
	input := flag.String("input", "workspace.toml", "config path for validation")
	force := flag.Bool("force", false, "overwrite an existing config file")
	flag.Parse()

	if *validate {
		if _, err := workspace.Load(*input); err != nil {
			log.Fatal(err)
		}
		log.Printf("Validated workspace config at %s", *input)
		return
	}

	if err := workspace.WriteTemplate(*output, *force); err != nil {
		log.Fatal(err)
	}
	log.Printf("Wrote workspace config template to %s", *output)
}
