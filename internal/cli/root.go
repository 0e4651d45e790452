// Package cli implements the vattfocus command line.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/RMcDOttawa/goAzcamVatt"
	"github.com/RMcDOttawa/goAzcamVatt/internal/config"
	"github.com/RMcDOttawa/goAzcamVatt/internal/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	configFile     string
	systemName     string
	hostName       string
	portNumber     int
	debugMode      bool
	verbosityLevel int
	nonInteractive bool
)

// Session state prepared before every command runs
var (
	appConfig *config.Config
	appLogger *logging.Logger
)

// newService creates the azcam connection; tests replace it with a mock
var newService = func(cfg *config.Config, logger zerolog.Logger) goAzcamVatt.AzcamService {
	return goAzcamVatt.NewAzcamService(cfg.Debug, cfg.Verbosity, logger)
}

var rootCmd = &cobra.Command{
	Use:   "vattfocus",
	Short: "Focus sweeps and controller utilities for the VATT azcam cameras",
	Long: `vattfocus talks to an azcam command server to run multi-exposure focus sweeps
on one image and to send low-level ARC controller commands.`,
	SilenceUsage:      true,
	PersistentPreRunE: prepareSession,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default ./vattfocus.yaml)")
	flags.StringVar(&systemName, "system", config.DefaultSystem, "camera system: vatt4k or vattspec")
	flags.StringVar(&hostName, "host", config.DefaultHost, "azcam server host")
	flags.IntVar(&portNumber, "port", 0, "azcam server port (default from system)")
	flags.BoolVar(&debugMode, "debug", false, "trace every command sent to the server")
	flags.IntVarP(&verbosityLevel, "verbosity", "v", 1, "log verbosity 0-5")
	flags.BoolVar(&nonInteractive, "non-interactive", false, "never prompt; use configured or default values")
}

func prepareSession(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return err
	}
	appConfig = cfg

	logger, err := logging.New(logging.Options{
		Console:   cmd.ErrOrStderr(),
		LogFolder: cfg.LogFolder(),
		Debug:     cfg.Debug,
		Verbosity: cfg.Verbosity,
	})
	if err != nil {
		logger = logging.ConsoleOnly(cmd.ErrOrStderr(), cfg.Debug, cfg.Verbosity)
		logger.Warn().Err(err).Msg("logging to console only")
	}
	appLogger = logger
	appLogger.Debug().
		Str("system", cfg.System).
		Str("host", cfg.Host).
		Int("port", cfg.Port).
		Str("log_file", logger.FilePath).
		Msg("vattfocus session started")
	return nil
}

// connectService opens the azcam connection for the current session
func connectService() (goAzcamVatt.AzcamService, error) {
	service := newService(appConfig, appLogger.Logger)
	if err := service.Connect(appConfig.Host, appConfig.Port); err != nil {
		return nil, fmt.Errorf("connecting to azcam at %s:%d: %w", appConfig.Host, appConfig.Port, err)
	}
	return service, nil
}

func closeService(service goAzcamVatt.AzcamService) {
	if err := service.Close(); err != nil {
		appLogger.Warn().Err(err).Msg("error closing azcam connection")
	}
}

// Execute runs the root command
func Execute() error {
	defer closeSession()
	return rootCmd.Execute()
}

// ExecuteArgs runs the root command with explicit arguments and output streams
func ExecuteArgs(args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	defer func() {
		closeSession()
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(os.Stdin)
		rootCmd.SetOut(os.Stdout)
		rootCmd.SetErr(os.Stderr)
	}()
	return rootCmd.Execute()
}

// closeSession closes the log file whether or not the command succeeded
func closeSession() {
	if err := appLogger.Close(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "vattfocus: closing log: %v\n", err)
	}
	appLogger = nil
}
