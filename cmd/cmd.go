// Package cmd implements the schlog command line interface.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"github.com/mordilloSan/schlog/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	optionNameLevel      = "level"
	optionNameJSON       = "json"
	optionNameTimestamps = "timestamps"
	optionNameTimeFormat = "time-format"
	optionNameColor      = "color"
	optionNameEnvFile    = "env-file"
)

const (
	colorAuto   = "auto"
	colorAlways = "always"
	colorNever  = "never"
)

func init() {
	cobra.EnableCommandSorting = false
}

type command struct {
	root    *cobra.Command
	config  *viper.Viper
	cfgFile string
	envFile string
	homeDir string
}

type option func(*command)

func newCommand(opts ...option) (c *command, err error) {
	c = &command{
		root: &cobra.Command{
			Use:           "schlog",
			Short:         "Leveled console logging from the shell",
			SilenceErrors: true,
			SilenceUsage:  true,
			PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
				return c.initConfig()
			},
		},
	}

	for _, o := range opts {
		o(c)
	}

	// Find home directory.
	if err := c.setHomeDir(); err != nil {
		return nil, err
	}

	c.initGlobalFlags()
	c.initLogCmd()
	c.initPipeCmd()
	c.initLevelsCmd()
	c.initVersionCmd()

	return c, nil
}

func (c *command) Execute() (err error) {
	return c.root.Execute()
}

// Execute parses command line arguments and runs appropriate functions.
func Execute() (err error) {
	c, err := newCommand()
	if err != nil {
		return err
	}
	return c.Execute()
}

func (c *command) initGlobalFlags() {
	globalFlags := c.root.PersistentFlags()
	globalFlags.StringVar(&c.cfgFile, "config", "", "config file (default is $HOME/.schlog.yaml)")
	globalFlags.StringVar(&c.envFile, optionNameEnvFile, ".env", "dotenv file loaded before reading the environment")
	globalFlags.String(optionNameLevel, "", "threshold level name or priority (default info)")
	globalFlags.Bool(optionNameJSON, false, "print JSON lines")
	globalFlags.Bool(optionNameTimestamps, true, "prefix lines with a timestamp")
	globalFlags.String(optionNameTimeFormat, logger.DefaultTimeFormat, "timestamp pattern, e.g. YYYY-MM-DD HH:mm:ss")
	globalFlags.String(optionNameColor, colorAuto, "colorize output: auto, always or never")
}

func (c *command) initConfig() (err error) {
	if c.envFile != "" {
		if err := godotenv.Load(c.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load env file %s: %w", c.envFile, err)
		}
	}

	config := viper.New()
	configName := ".schlog"
	if c.cfgFile != "" {
		// Use config file from the flag.
		config.SetConfigFile(c.cfgFile)
	} else {
		// Search config in home directory with name ".schlog" (without extension).
		config.AddConfigPath(c.homeDir)
		config.SetConfigName(configName)
	}

	// Environment
	config.SetEnvPrefix("schlog")
	config.AutomaticEnv() // read in environment variables that match
	config.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	if err := config.BindEnv(optionNameLevel, logger.EnvLevel); err != nil {
		return err
	}

	// If a config file is found, read it in.
	if err := config.ReadInConfig(); err != nil {
		var e viper.ConfigFileNotFoundError
		if !errors.As(err, &e) {
			return err
		}
	}

	if err := config.BindPFlags(c.root.PersistentFlags()); err != nil {
		return err
	}
	c.config = config
	return nil
}

func (c *command) setHomeDir() (err error) {
	if c.homeDir != "" {
		return
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		return err
	}
	c.homeDir = dir
	return nil
}

// newLogger builds a Logger from the resolved configuration that writes
// to the command output streams.
func (c *command) newLogger(cmd *cobra.Command) (*logger.Logger, error) {
	colors, err := c.colors(cmd)
	if err != nil {
		return nil, err
	}
	return logger.New(
		logger.WithLevel(logger.ResolveLevel(c.config.GetString(optionNameLevel))),
		logger.WithPrintJSON(c.config.GetBool(optionNameJSON)),
		logger.WithPrintTimestamps(c.config.GetBool(optionNameTimestamps)),
		logger.WithTimeFormat(c.config.GetString(optionNameTimeFormat)),
		logger.WithColors(colors),
		logger.WithStdout(cmd.OutOrStdout()),
		logger.WithStderr(cmd.ErrOrStderr()),
	), nil
}

func (c *command) colors(cmd *cobra.Command) (bool, error) {
	switch v := c.config.GetString(optionNameColor); v {
	case colorAlways:
		return true, nil
	case colorNever:
		return false, nil
	case colorAuto, "":
		// Error and warn lines go to the error stream, so both must be
		// terminals for escape codes to be written.
		return isTerminal(cmd.OutOrStdout()) && isTerminal(cmd.ErrOrStderr()), nil
	default:
		return false, fmt.Errorf("invalid %s value %q: expected %s, %s or %s", optionNameColor, v, colorAuto, colorAlways, colorNever)
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

// errUnknownLevel is returned when a level argument matches no built-in level.
var errUnknownLevel = errors.New("unknown level")

// parseLevel resolves a level argument given as a name or a priority.
// Unlike logger.ResolveLevel it does not fall back to the default.
func parseLevel(s string) (*logger.Level, error) {
	if l, ok := logger.LevelByName(s); ok {
		return l, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if l, ok := logger.LevelByPriority(n); ok {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w %q", errUnknownLevel, s)
}
