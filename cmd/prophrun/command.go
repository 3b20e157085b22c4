package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/prophnet/config"
	"github.com/katalvlaran/prophnet/logging"
	"github.com/katalvlaran/prophnet/network"
	"github.com/katalvlaran/prophnet/propagate"
	"github.com/katalvlaran/prophnet/runner"
)

// errFailed signals a failed run whose diagnostic was already logged.
var errFailed = errors.New("prophrun: run failed")

type options struct {
	configFile string
	section    string
	envFile    string
	src, dst   int
	debug      bool
}

// flag name for every config key settable from the command line
var flagKeys = map[string]string{
	config.KeyDataPath:     "data-path",
	config.KeyCorrFunction: "corr",
	config.KeyMatFile:      "matfile",
	config.KeyQIndex:       "qindex",
	config.KeyQName:        "qname",
	config.KeyOut:          "out",
	config.KeyN:            "n",
	config.KeyMemSave:      "memsave",
	config.KeyProfile:      "profile",
	config.KeyAlpha:        "alpha",
	config.KeyLogLevel:     "log-level",
}

// NewCommand builds the prophrun root command writing results to out and
// logs to errOut.
func NewCommand(out, errOut io.Writer) *cobra.Command {
	o := &options{}
	cmd := &cobra.Command{
		Use:           "prophrun",
		Short:         "Rank entities of a destination network by propagated relevance",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return o.run(cmd, out, errOut)
		},
	}

	f := cmd.Flags()
	f.StringVar(&o.configFile, "config", "", "config file (INI unless the extension says otherwise)")
	f.StringVar(&o.section, "section", config.DefaultSection, "config file section")
	f.StringVar(&o.envFile, "env-file", "", "env file to load (default .env when present)")
	f.IntVar(&o.src, "src", 0, "source network id")
	f.IntVar(&o.dst, "dst", 0, "destination network id")
	f.BoolVar(&o.debug, "debug", false, "debug logging")

	f.String("data-path", ".", "base directory of relative matfile references")
	f.String("corr", propagate.PolicyPearson, fmt.Sprintf("combine policy %v", propagate.PolicyNames()))
	f.String("matfile", "", "network file")
	f.String("qindex", "", "query entity index in the source network")
	f.String("qname", "", "query entity label in the source network")
	f.String("out", "", "write the ranked list to this file")
	f.IntP("n", "n", 10, "result list length, 0 for all")
	// takes a value (--memsave True) like the other run keys
	f.String("memsave", "false", "keep relations in compressed form (true/false)")
	f.Bool("profile", false, "write a CPU profile")
	f.Float64("alpha", 0, "intra-network diffusion strength in [0,1)")
	f.String("log-level", "info", "debug, info, warn or error")

	return cmd
}

func (o *options) run(cmd *cobra.Command, out, errOut io.Writer) error {
	boot := logging.NewConsole(logging.ConsoleParams{Writer: errOut, Debug: o.debug, Prefix: "prophrun"})

	settings, err := config.Load(o.configFile,
		config.WithSection(o.section),
		config.WithEnvFile(o.envFile),
		config.WithFlags(cmd.Flags(), flagKeys),
		config.WithLogger(boot),
	)
	if err != nil {
		boot.Error("configuration rejected", "err", err)
		return err
	}
	cfg := settings.Run

	log := logging.NewConsole(logging.ConsoleParams{
		Writer: errOut,
		Level:  settings.LogLevel,
		Debug:  o.debug,
		Prefix: "prophrun",
	}).With("matfile", cfg.MatFile)

	// src and dst only exist as flags; an unset flag is a missing parameter
	req := runner.Request{}
	if cmd.Flags().Changed("src") {
		req.Src = &o.src
	}
	if cmd.Flags().Changed("dst") {
		req.Dst = &o.dst
	}

	engine := propagate.NewEngine(log, settings.EngineOptions()...)
	r := runner.New(network.NewCache(log), engine, runner.FileSink{}, log)

	list, status := r.Run(cmd.Context(), cfg, req)
	if status != runner.StatusOK {
		return errFailed
	}
	if cfg.Out == "" {
		return printList(out, list)
	}
	return nil
}

func printList(w io.Writer, list propagate.RankedList) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tINDEX\tLABEL\tSCORE")
	for _, r := range list {
		label := r.Label
		if label == "" {
			label = "-"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%.6g\n", r.Rank, r.Index, label, r.Score)
	}
	return tw.Flush()
}
