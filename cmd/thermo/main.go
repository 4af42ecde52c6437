package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/thermo/internal/cliconfig"
	"github.com/bft-labs/thermo/pkg/log"
	"github.com/bft-labs/thermo/pkg/thermo"
)

const longHelp = `Convert temperatures between Celsius, Fahrenheit and Kelvin.

Readings below absolute zero are rejected. Defaults can be set in
$HOME/.thermo/config.toml or through THERMO_* environment variables;
command-line flags take precedence over both.`

var exampleUsage = strings.TrimSpace(`
  thermo convert 200 --from celsius --to fahrenheit
  thermo convert 392 --from F --to K --precision 3
  thermo convert --from C --to F -- -40
  thermo zero kelvin fahrenheit
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// app carries state shared by the subcommands once configuration is loaded.
type app struct {
	cfg     cliconfig.Config
	cfgPath string
	out     io.Writer
	errOut  io.Writer
	logger  zerolog.Logger
	conv    *thermo.Converter
}

func newRootCmd(out, errOut io.Writer) (*cobra.Command, *app) {
	a := &app{
		cfg:    cliconfig.DefaultConfig(),
		out:    out,
		errOut: errOut,
	}
	a.logger = cliconfig.NewLogger(a.cfg, errOut)

	root := &cobra.Command{
		Use:               "thermo",
		Short:             "Convert temperatures between Celsius, Fahrenheit and Kelvin",
		Long:              longHelp,
		Example:           exampleUsage,
		Version:           fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&a.cfgPath, "config", "", "path to config file (default: $HOME/.thermo/config.toml)")
	root.PersistentFlags().StringVar(&a.cfg.LogLevel, "log-level", a.cfg.LogLevel, "log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.cfg.LogFormat, "log-format", a.cfg.LogFormat, "log format (console, json)")

	root.AddCommand(a.convertCmd(), a.zeroCmd())
	return root, a
}

// loadConfig applies the config file, then THERMO_* variables, leaving
// explicitly set flags untouched, and builds the logger and converter.
func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	changed := map[string]bool{}
	cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

	cfgFile := a.cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cliconfig.ApplyFileConfig(&a.cfg, fc, changed)
	} else if a.cfgPath != "" {
		return fmt.Errorf("load config: %s does not exist", a.cfgPath)
	}

	if err := cliconfig.ApplyEnvConfig(&a.cfg, changed); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if err := a.cfg.Validate(); err != nil {
		return err
	}

	a.logger = cliconfig.NewLogger(a.cfg, a.errOut)
	a.logger.Debug().Interface("config", a.cfg).Msg("configuration")
	a.conv = thermo.New(thermo.WithLogger(log.NewZerologAdapterWithLogger(a.logger)))
	return nil
}

func (a *app) convertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert VALUE",
		Short: "Convert a reading to another unit",
		Long:  "Convert a reading to another unit. Separate negative values with -- so they are not read as flags.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("parse value %q: %w", args[0], err)
			}
			from, to, err := a.cfg.Units()
			if err != nil {
				return err
			}
			t, err := a.conv.Convert(value, from, to)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(a.out, t.Format(a.cfg.Precision))
			return err
		},
	}

	cmd.Flags().StringVar(&a.cfg.From, "from", a.cfg.From, "unit of VALUE")
	cmd.Flags().StringVar(&a.cfg.To, "to", a.cfg.To, "unit to convert to")
	cmd.Flags().IntVar(&a.cfg.Precision, "precision", a.cfg.Precision, "decimal places in the output")
	return cmd
}

func (a *app) zeroCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "zero [UNIT...]",
		Short: "Print absolute zero in each unit",
		RunE: func(cmd *cobra.Command, args []string) error {
			units := thermo.Units()
			if len(args) > 0 {
				units = units[:0:0]
				for _, arg := range args {
					u, err := thermo.ParseUnit(arg)
					if err != nil {
						return err
					}
					units = append(units, u)
				}
			}

			for _, u := range units {
				t, err := a.conv.AbsoluteZero(u)
				if err != nil {
					return err
				}
				if _, err := fmt.Fprintf(a.out, "%-10s %s\n", u, t.Format(a.cfg.Precision)); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&a.cfg.Precision, "precision", a.cfg.Precision, "decimal places in the output")
	return cmd
}

func main() {
	root, a := newRootCmd(os.Stdout, os.Stderr)
	if err := root.Execute(); err != nil {
		a.logger.Error().Err(err).Msg("thermo")
		os.Exit(1)
	}
}
