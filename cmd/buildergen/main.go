package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"golang.org/x/term"

	"github.com/goliatone/go-buildergen/pkg/config"
	"github.com/goliatone/go-buildergen/pkg/emit"
	pkggosource "github.com/goliatone/go-buildergen/pkg/gosource"
	"github.com/goliatone/go-buildergen/pkg/orchestrator"
)

func main() {
	source := flag.String("source", "", "Go source file holding the struct declaration")
	typeName := flag.String("type", "", "type to generate a builder for (prompts or generates for all structs if empty)")
	output := flag.String("output", "", "output file (stdout if empty; ignored when generating for all structs)")
	emitterName := flag.String("emitter", "", "emitter to use (gofile, modeljson)")
	configPath := flag.String("config", "", "config file (defaults to "+config.DefaultFileName+" when present)")
	pkgName := flag.String("pkg", "", "package clause override for generated files")
	flag.Parse()

	if *source == "" {
		log.Fatalf("-source is required")
	}

	ctx := context.Background()
	cfg := loadConfig(*configPath)

	gen := orchestrator.New(orchestrator.WithConfig(cfg))

	req := orchestrator.Request{
		Source:  pkggosource.SourceFromFile(*source),
		Emitter: *emitterName,
		Emit:    emit.Options{Package: *pkgName},
	}

	targets, err := resolveTargets(ctx, gen, req, *typeName)
	if err != nil {
		log.Fatalf("Failed to resolve target types: %v", err)
	}

	if len(targets) == 1 {
		req.TypeName = targets[0]
		generated, err := gen.Generate(ctx, req)
		if err != nil {
			log.Fatalf("Failed to generate builder: %v", err)
		}
		writeOutput(*output, generated)
		return
	}

	// Several structs and no explicit selection: one file per type next to
	// the source.
	dir := filepath.Dir(*source)
	for _, target := range targets {
		req.TypeName = target
		generated, err := gen.Generate(ctx, req)
		if err != nil {
			log.Fatalf("Failed to generate builder for %s: %v", target, err)
		}
		path := filepath.Join(dir, strings.ToLower(target)+cfg.OutputSuffix)
		if err := os.WriteFile(path, generated, 0o644); err != nil {
			log.Fatalf("Failed to write output: %v", err)
		}
		fmt.Printf("Builder for %s written to %s\n", target, path)
	}
}

func loadConfig(path string) config.Config {
	if path != "" {
		cfg, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		return cfg
	}
	if _, err := os.Stat(config.DefaultFileName); err == nil {
		cfg, err := config.Load(config.DefaultFileName)
		if err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		return cfg
	}
	return config.Default()
}

// resolveTargets picks the types to generate for. An explicit -type wins;
// otherwise a terminal session prompts for one, and a non-interactive run
// generates for every struct in the source.
func resolveTargets(ctx context.Context, gen *orchestrator.Orchestrator, req orchestrator.Request, typeName string) ([]string, error) {
	if typeName != "" {
		return []string{typeName}, nil
	}

	names, err := gen.List(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("no struct declarations in %q", req.Source.Location())
	}
	if len(names) == 1 || !term.IsTerminal(int(os.Stdin.Fd())) {
		return names, nil
	}

	var selected string
	prompt := &survey.Select{
		Message: "Generate a builder for which type?",
		Options: names,
	}
	if err := survey.AskOne(prompt, &selected); err != nil {
		return nil, err
	}
	return []string{selected}, nil
}

func writeOutput(path string, data []byte) {
	if path == "" {
		fmt.Print(string(data))
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Fatalf("Failed to write output: %v", err)
	}
	fmt.Printf("Builder written to %s\n", path)
}
