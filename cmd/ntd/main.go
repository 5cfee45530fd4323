package main

import (
	"flag"
	"fmt"
	"ntd/internal/di"
	"ntd/internal/structures"
	"os"
)

func main() {
	flags := &structures.CliFlags{}
	flag.StringVar(&flags.ConfigPath, "config", "config.yaml", "path to the configuration file")
	flag.BoolVar(&flags.DebugMode, "debug", false, "enable debug logging to the console")
	flag.Parse()

	if _, err := di.InitApp(flags); err != nil {
		fmt.Fprintf(os.Stderr, "ntd: %s\n", err)
		os.Exit(1)
	}
}
