// cmd/civicwiki/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"civicwiki/internal/builder"
	"civicwiki/internal/config"
	"civicwiki/internal/docview"
	"civicwiki/internal/scaffold"
	"civicwiki/internal/server"
)

const configFile = "wiki.yaml"

type appConfig struct {
	port     int
	addr     string
	sanitize bool
	debug    bool
}

func main() {
	appCfg := appConfig{}
	pflag.IntVar(&appCfg.port, "port", 1313, "Port for the local preview server.")
	pflag.StringVar(&appCfg.addr, "addr", "http://localhost:1313", "Server address for the view command.")
	pflag.BoolVar(&appCfg.sanitize, "sanitize", false, "Sanitize rendered HTML. Strips raw HTML from wiki sources.")
	pflag.BoolVar(&appCfg.debug, "debug", false, "Enable debug mode for verbose output.")
	pflag.Usage = printHelp
	pflag.Parse()

	if err := run(appCfg); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Operation failed: %v\n", err)
		os.Exit(1)
	}
}

func run(appCfg appConfig) error {
	args := pflag.Args()
	if len(args) == 0 {
		pflag.Usage()
		return nil
	}

	opts := builder.Options{Sanitize: appCfg.sanitize}

	switch args[0] {
	case "build":
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		if appCfg.debug {
			fmt.Printf("config: %+v\n", cfg)
		}
		return runBuild(cfg, opts)

	case "serve":
		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}
		buildFunc := func() error {
			return runBuild(cfg, opts)
		}
		return server.Run(appCfg.port, cfg, buildFunc)

	case "view":
		if len(args) < 2 {
			pflag.Usage()
			return nil
		}
		return runView(appCfg.addr, args[1])

	case "new":
		if len(args) < 3 {
			pflag.Usage()
			return nil
		}
		if args[1] == "wiki" {
			return scaffold.CreateWorkspace(args[2])
		}
		if args[1] == "page" {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			return scaffold.CreatePage(cfg.ContentDir, strings.Join(args[2:], " "))
		}
		pflag.Usage()

	default:
		pflag.Usage()
	}

	return nil
}

// runBuild runs a full batch build and reports per-file and summary results.
// Per-file failures do not abort the run and do not fail the command; only a
// missing content directory or a broken workspace does.
func runBuild(cfg config.Config, opts builder.Options) error {
	fmt.Println("--- Building wiki ---")
	result, err := builder.Build(cfg, opts)
	if err != nil {
		return fmt.Errorf("wiki build failed: %w", err)
	}

	if len(result.Failures) > 0 {
		fmt.Fprintf(os.Stderr, "⚠️  %d file(s) failed:\n", len(result.Failures))
		for _, failure := range result.Failures {
			fmt.Fprintf(os.Stderr, "   %s: %v\n", failure.File, failure.Err)
		}
	}
	fmt.Printf("✅ Success! Generated %d pages.\n", len(result.Pages))
	return nil
}

// runView fetches a page from a running server and prints its title and
// table of contents.
func runView(addr, name string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := docview.NewClient(addr, nil)
	doc, err := client.Page(ctx, name)
	if err != nil {
		return err
	}

	fmt.Println(doc.Title)
	for _, entry := range doc.TOC {
		indent := "  "
		if entry.Level == 3 {
			indent = "    "
		}
		fmt.Printf("%s- %s (#%s)\n", indent, entry.Text, entry.ID)
	}
	return nil
}

func printHelp() {
	fmt.Println("civicwiki - build and preview the wiki section of the civic site")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  civicwiki [flags] <command> [arguments]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  build              Convert wiki Markdown into HTML pages, index, and manifest")
	fmt.Println("  serve              Run a local preview server with auto-rebuild")
	fmt.Println("  view <page>        Fetch a page from a running server and print its outline")
	fmt.Println("  new wiki <name>    Create a new wiki workspace")
	fmt.Println("  new page <title>   Create a new wiki page from the archetype")
	fmt.Println()
	fmt.Println("Flags:")
	pflag.PrintDefaults()
}
