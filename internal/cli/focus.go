package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/RMcDOttawa/goAzcamVatt"
	"github.com/RMcDOttawa/goAzcamVatt/internal/abort"
	"github.com/RMcDOttawa/goAzcamVatt/internal/config"
	"github.com/RMcDOttawa/goMockableDelay"
	"github.com/spf13/cobra"
)

var (
	flagExposureTime    float64
	flagNumberExposures int
	flagFocusStep       float64
	flagDetectorShift   int
)

// newDelayService creates the focus settle timer; tests replace it with a mock
var newDelayService = func(cfg *config.Config) goMockableDelay.DelayService {
	return goMockableDelay.NewDelayService(cfg.Debug, cfg.Verbosity)
}

var focusCmd = &cobra.Command{
	Use:   "focus",
	Short: "Run or abort a focus sweep",
}

var focusRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Take a multi-exposure focus sweep on one image",
	Long: `Take a sequence of exposures on one image, moving focus and shifting the detector
between them, then return focus to where it started and read out a single image.
Type q and Enter, or press Ctrl-C, to abort.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runFocus(cmd)
	},
}

var focusAbortCmd = &cobra.Command{
	Use:   "abort",
	Short: "Abort the focus exposure in progress",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		service, err := connectService()
		if err != nil {
			return err
		}
		defer closeService(service)
		if err := service.AbortExposure(); err != nil {
			return fmt.Errorf("aborting exposure: %w", err)
		}
		appLogger.Info().Msg("Abort sent")
		return nil
	},
}

func init() {
	flags := focusRunCmd.Flags()
	flags.Float64Var(&flagExposureTime, "exposure-time", 0, "exposure time in seconds for each focus position")
	flags.IntVar(&flagNumberExposures, "number-exposures", 0, "number of exposures in the sweep")
	flags.Float64Var(&flagFocusStep, "focus-step", 0, "focus change between exposures")
	flags.IntVar(&flagDetectorShift, "detector-shift", 0, "rows to shift the detector between exposures")

	focusCmd.AddCommand(focusRunCmd)
	focusCmd.AddCommand(focusAbortCmd)
	rootCmd.AddCommand(focusCmd)
}

// fieldSet marks which sweep settings still need a value
type fieldSet struct {
	exposureTime    bool
	numberExposures bool
	focusStep       bool
	detectorShift   bool
}

func (fields fieldSet) any() bool {
	return fields.exposureTime || fields.numberExposures || fields.focusStep || fields.detectorShift
}

// newConfiguredSequencer builds a sequencer set up from the session configuration
func newConfiguredSequencer(service goAzcamVatt.AzcamService) (goAzcamVatt.FocusSequencer, error) {
	focus := appConfig.Focus
	sequencer := goAzcamVatt.NewFocusSequencer(service, newDelayService(appConfig), appLogger.Logger)
	if err := sequencer.SetFocusComponent(goAzcamVatt.FocusComponent(focus.Component)); err != nil {
		return nil, err
	}
	if err := sequencer.SetFocusType(goAzcamVatt.FocusType(focus.Type)); err != nil {
		return nil, err
	}
	if err := sequencer.SetMoveDelay(focus.MoveDelay); err != nil {
		return nil, err
	}
	if focus.Configured {
		if err := sequencer.Configure(focus.ExposureTime, focus.NumberExposures, focus.FocusStep, focus.DetectorShift); err != nil {
			return nil, err
		}
	}
	return sequencer, nil
}

// resolveRunParameters takes each sweep setting from its flag if given, otherwise from a
// prompt when interactive, otherwise from the configuration.
func resolveRunParameters(cmd *cobra.Command, sequencer goAzcamVatt.FocusSequencer) (goAzcamVatt.RunParameters, error) {
	var params goAzcamVatt.RunParameters
	flags := cmd.Flags()
	missing := fieldSet{}

	if flags.Changed("exposure-time") {
		params.ExposureTime = &flagExposureTime
	} else {
		missing.exposureTime = true
	}
	if flags.Changed("number-exposures") {
		params.NumberExposures = &flagNumberExposures
	} else {
		missing.numberExposures = true
	}
	if flags.Changed("focus-step") {
		params.FocusStep = &flagFocusStep
	} else {
		missing.focusStep = true
	}
	if flags.Changed("detector-shift") {
		params.DetectorShift = &flagDetectorShift
	} else {
		missing.detectorShift = true
	}

	if sequencer.IsConfigured() {
		if missing != (fieldSet{true, true, true, true}) {
			appLogger.Warn().Msg("focus is configured; sweep flags are ignored")
		}
		return params, nil
	}
	if !missing.any() {
		return params, nil
	}

	if IsInteractive() {
		prompted, err := promptRunParameters(configuredParameters(), missing)
		if err != nil {
			return params, err
		}
		mergeRunParameters(&params, prompted)
		return params, nil
	}

	defaults := configuredParameters()
	if missing.exposureTime {
		params.ExposureTime = &defaults.ExposureTime
	}
	if missing.numberExposures {
		params.NumberExposures = &defaults.NumberExposures
	}
	if missing.focusStep {
		params.FocusStep = &defaults.FocusStep
	}
	if missing.detectorShift {
		params.DetectorShift = &defaults.DetectorShift
	}
	return params, nil
}

func configuredParameters() goAzcamVatt.FocusParameters {
	return goAzcamVatt.FocusParameters{
		ExposureTime:    appConfig.Focus.ExposureTime,
		NumberExposures: appConfig.Focus.NumberExposures,
		FocusStep:       appConfig.Focus.FocusStep,
		DetectorShift:   appConfig.Focus.DetectorShift,
	}
}

func mergeRunParameters(params *goAzcamVatt.RunParameters, from goAzcamVatt.RunParameters) {
	if from.ExposureTime != nil {
		params.ExposureTime = from.ExposureTime
	}
	if from.NumberExposures != nil {
		params.NumberExposures = from.NumberExposures
	}
	if from.FocusStep != nil {
		params.FocusStep = from.FocusStep
	}
	if from.DetectorShift != nil {
		params.DetectorShift = from.DetectorShift
	}
}

func runFocus(cmd *cobra.Command) error {
	service, err := connectService()
	if err != nil {
		return err
	}
	defer closeService(service)

	sequencer, err := newConfiguredSequencer(service)
	if err != nil {
		return err
	}
	params, err := resolveRunParameters(cmd, sequencer)
	if err != nil {
		return err
	}

	monitor := abort.NewMonitor(appLogger.Logger, func() {
		_ = sequencer.Abort()
	})
	sequencer.SetAbortMonitor(monitor)
	stopSignals := monitor.WatchSignals()
	defer stopSignals()
	if IsInteractive() {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		go monitor.Watch(ctx, cmd.InOrStdin())
		appLogger.Info().Msg("Type q and Enter to abort")
	}

	sequencer.Run(params)

	outcome := reportedOutcome(sequencer.LastOutcome(), monitor)
	start, known := sequencer.StartingPosition()
	current, _ := sequencer.CurrentPosition()
	_, _ = fmt.Fprintln(cmd.OutOrStdout(), renderOutcome(outcome, start, current, known))

	switch outcome {
	case goAzcamVatt.RunFaulted:
		return errors.New("focus sequence failed; see log for details")
	case goAzcamVatt.RunRejected:
		return errors.New("focus sequence not started; parameters rejected")
	}
	return nil
}

// reportedOutcome treats a fault as an abort when the operator asked to stop: aborting the
// server fails the integration in progress.
func reportedOutcome(outcome goAzcamVatt.RunOutcome, monitor goAzcamVatt.AbortMonitor) goAzcamVatt.RunOutcome {
	if outcome == goAzcamVatt.RunFaulted && monitor.AbortRequested() {
		return goAzcamVatt.RunAborted
	}
	return outcome
}
