package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/logicossoftware/go-pngyinx"
)

const (
	cliName        = "pngyinx"
	cliDescription = "hide, reveal and remove secret messages in PNG files"

	formatTable = "table"
	formatJSON  = "json"

	logLevelEnv = "PNGYINX_LOG_LEVEL"
)

type globalFlags struct {
	ConfigFile string
	Format     string
	Verbose    bool
	Backup     bool
	Strict     bool
}

// app carries state shared by the subcommands of one invocation.
type app struct {
	flags globalFlags
	cfg   Config
	log   *logrus.Logger
}

func newRootCommand() *cobra.Command {
	a := &app{log: logrus.New()}
	root := &cobra.Command{
		Use:           cliName,
		Short:         cliDescription,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.flags.ConfigFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/pngyinx/config.yaml)")
	pf.StringVarP(&a.flags.Format, "format", "f", formatTable, "output format: table or json")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "debug logging")
	pf.BoolVar(&a.flags.Backup, "backup", false, "keep the original file as <path>.bak when rewriting it")
	pf.BoolVar(&a.flags.Strict, "strict", false, "refuse to embed under a critical chunk type")

	root.AddCommand(
		newEncodeCommand(a),
		newDecodeCommand(a),
		newRemoveCommand(a),
		newPrintCommand(a),
		newTextCommand(a),
		newValidateCommand(a),
		newVersionCommand(),
	)
	return root
}

// setup loads the config file and applies flag and environment overrides.
func (a *app) setup(cmd *cobra.Command) error {
	path, explicit := a.flags.ConfigFile, true
	if path == "" {
		path, explicit = defaultConfigPath(), false
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("backup") {
		cfg.Backup = a.flags.Backup
	}
	if flags.Changed("strict") {
		cfg.Strict = a.flags.Strict
	}
	if flags.Changed("format") || cfg.Format == "" {
		cfg.Format = a.flags.Format
	}
	if lvl := os.Getenv(logLevelEnv); lvl != "" {
		cfg.LogLevel = lvl
	}
	if a.flags.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	a.cfg = cfg

	configureLogger(a.log, cmd.ErrOrStderr(), cfg.LogLevel)
	a.log.WithFields(logrus.Fields{
		"config": path,
		"format": cfg.Format,
		"backup": cfg.Backup,
		"strict": cfg.Strict,
	}).Debug("configuration loaded")
	return nil
}

func (a *app) readOptions() []pngyinx.ReadOption {
	return []pngyinx.ReadOption{pngyinx.WithReadLimits(a.cfg.Limits.toLimits())}
}

func (a *app) writeOptions() []pngyinx.WriteOption {
	return []pngyinx.WriteOption{
		pngyinx.WithWriteLimits(a.cfg.Limits.toLimits()),
		pngyinx.WithRejectCritical(a.cfg.Strict),
	}
}
