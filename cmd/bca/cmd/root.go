// Package cmd implements the bca command line tool.
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Version is the version of the binary.
	Version = "0.0.0"

	// Commit is the commit hash of the binary.
	Commit = ""
)

const (
	envPrefix         = "BCA"
	defaultConfigName = ".bca"
	defaultExtension  = ".bca"
	defaultLogLevel   = "info"
)

// Configuration keys.
const (
	keyExtension = "extension"
	keyOverwrite = "overwrite"
	keyLogLevel  = "log.level"
	keyWidth     = "width"
)

// app holds the state shared by the subcommands of one invocation.
type app struct {
	v       *viper.Viper
	logger  *zap.Logger
	cfgFile string
}

// NewRootCmd builds the bca command tree with a fresh configuration.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "bca",
		Short: "Byte-frequency static-dictionary compressor",
		Long: `bca compresses files by giving the most frequent byte values short
fixed-width codes and storing every other byte as a literal.

Compressed files are self-describing and carry the original length,
the code width and the symbol table in their header.`,
		Version:      fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = a.logger.Sync()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default is $HOME/.bca.yaml)")
	flags.String("log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	flags.String("extension", defaultExtension, "suffix of compressed files")
	flags.String("overwrite", string(overwriteAsk), "policy for existing output files (ask, always, never)")
	a.bindFlags(flags, map[string]string{
		keyLogLevel:  "log-level",
		keyExtension: "extension",
		keyOverwrite: "overwrite",
	})

	rootCmd.AddCommand(
		newCompressCmd(a),
		newDecompressCmd(a),
		newInfoCmd(a),
		newCompareCmd(a),
		newVerifyCmd(a),
	)

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func (a *app) bindFlags(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("bind flag %s: %v", name, err))
		}
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	if err := a.loadConfig(); err != nil {
		return err
	}

	logger, err := newLogger(a.v.GetString(keyLogLevel), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.logger = logger.Named(cmd.Name())
	a.logger.Debug("configuration loaded", zap.String("file", a.v.ConfigFileUsed()))

	return nil
}

func (a *app) loadConfig() error {
	a.v.SetDefault(keyExtension, defaultExtension)
	a.v.SetDefault(keyOverwrite, string(overwriteAsk))
	a.v.SetDefault(keyLogLevel, defaultLogLevel)
	a.v.SetDefault(keyWidth, 0)

	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	a.v.AutomaticEnv()

	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
		a.v.SetConfigName(defaultConfigName)
		a.v.SetConfigType("yaml")
	}

	if err := a.v.ReadInConfig(); err != nil {
		// The default file is optional, an explicit one is not.
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return nil
}

func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		MessageKey:     "M",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	})

	return zap.New(zapcore.NewCore(encoder, zapcore.AddSync(w), zap.NewAtomicLevelAt(lvl))), nil
}
