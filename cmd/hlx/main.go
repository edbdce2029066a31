package main

import (
	"fmt"
	"os"
)

var version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 || args[0] == "-h" || args[0] == "--help" {
		printUsage()
		return 0
	}

	sub := args[0]
	switch sub {
	case "publish":
		if err := cmdPublish(args); err != nil {
			fmt.Fprintf(os.Stderr, "hlx: error: %v\n", err)
			return 1
		}
		return 0
	case "version":
		fmt.Println(version)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand: %s\n\n", sub)
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `hlx %s

Usage:
  hlx <subcommand> [flags]

Subcommands:
  publish  Activate strains in the CDN and publish the site
  version  Print version

Run "hlx <subcommand> --help" for flags.
`, version)
}
