package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/maksimkurb/logsrv-assist/src/internal/commands"
	"github.com/maksimkurb/logsrv-assist/src/internal/log"
)

var (
	version = "dev"
	commit  = "n/a"
	date    = "n/a"
)

func main() {
	ctx := &commands.AppContext{}

	// Define flags
	flag.StringVar(&ctx.ConfigPath, "config", "/etc/logsrv-assist/profile.toml", "Path to profile file (used by generate)")
	flag.StringVar(&ctx.CatalogPath, "catalog", "", "Path to property catalog (.json, .yaml or .toml); built-in catalog if empty")
	flag.BoolVar(&ctx.Verbose, "verbose", false, "Enable debug logging")

	// Custom usage message
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "rsyslog log server configuration assistant\n")
		fmt.Fprintf(os.Stderr, "Version: %s (Commit: %s, Date: %s)\n\n", version, commit, date)
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <command> [command options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Commands:\n")
		fmt.Fprintf(os.Stderr, "  listener                Render a plain tcp/udp listener\n")
		fmt.Fprintf(os.Stderr, "  tls-listener            Render a TLS listener with its ruleset\n")
		fmt.Fprintf(os.Stderr, "  ruleset                 Render a ruleset writing filtered messages to a template\n")
		fmt.Fprintf(os.Stderr, "  template                Render a list template from a file path pattern\n")
		fmt.Fprintf(os.Stderr, "  properties              Describe the property catalog\n")
		fmt.Fprintf(os.Stderr, "  generate                Render every block of the profile\n")
		fmt.Fprintf(os.Stderr, "  example-config          Print a sample profile\n")
		fmt.Fprintf(os.Stderr, "  wizard                  Build a block interactively\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	// stdout carries configuration text only
	log.SetForceStdErr(true)
	if ctx.Verbose {
		log.SetVerbose(true)
	}

	cmds := []commands.Runner{
		commands.CreateListenerCommand(),
		commands.CreateTLSListenerCommand(),
		commands.CreateRulesetCommand(),
		commands.CreateTemplateCommand(),
		commands.CreatePropertiesCommand(),
		commands.CreateGenerateCommand(),
		commands.CreateExampleConfigCommand(),
		commands.CreateWizardCommand(),
	}

	args := flag.Args()

	if len(args) < 1 {
		flag.Usage()
		os.Exit(1)
	}

	subcommand := args[0]
	for _, cmd := range cmds {
		if cmd.Name() == subcommand {
			if err := cmd.Init(args[1:], ctx); err != nil {
				log.Fatalf("Failed to initialize command: %v", err)
			}

			if err := cmd.Run(); err != nil {
				log.Fatalf("Failed to run command: %v", err)
			}

			os.Exit(0)
		}
	}

	log.Fatalf("Unknown subcommand: %s", subcommand)
}
