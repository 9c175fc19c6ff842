package cli

import (
	"flag"
	"os"
)

type Options struct {
	ConfigDir  string
	ConfigName string
	Port       int
	PrintHelp  bool
}

var EnvMessage = `If you don't set -config-dir and -config-name on the command line,
the provider reads the following environment vars:

OAI_CONFIG_DIR - Path to the directory containing the .env settings file.
                 When empty, settings come from OAIPMH_* environment vars
                 and built-in defaults.

OAI_CONFIG_NAME - Name of the configuration to load. For example:
    test - Loads .env.test from OAI_CONFIG_DIR
    prod - Loads .env.prod from OAI_CONFIG_DIR
`

// NewFlagSet returns a flag set bound to opts. A zero port means the
// port from the config.
func NewFlagSet(name string, opts *Options) *flag.FlagSet {
	flags := flag.NewFlagSet(name, flag.ContinueOnError)
	flags.StringVar(&opts.ConfigDir, "config-dir", os.Getenv("OAI_CONFIG_DIR"), "Directory containing the .env.<name> settings file")
	flags.StringVar(&opts.ConfigName, "config-name", os.Getenv("OAI_CONFIG_NAME"), "Name of the settings file to load, e.g. prod for .env.prod")
	flags.IntVar(&opts.Port, "port", 0, "HTTP port. Overrides HTTP_PORT from the config")
	flags.BoolVar(&opts.PrintHelp, "help", false, "Print help message")
	return flags
}

// ParseOpts parses args, usually os.Args[1:].
func ParseOpts(name string, args []string) (Options, *flag.FlagSet, error) {
	opts := Options{}
	flags := NewFlagSet(name, &opts)
	err := flags.Parse(args)
	return opts, flags, err
}
