package goAzcamVatt

import (
	"fmt"

	"github.com/RMcDOttawa/goMockableDelay"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

//	FocusSequencer runs a focus sweep on one camera. The sequence performed is
//
//		expose, move focus, shift detector (twice on the last exposure), repeat,
//		return to the starting focus, read out and save one "Focus" image.
//
//	Either the telescope or the instrument focus may be moved. All failures are handled
//	inside Run; callers learn what happened from the log and from LastOutcome.

type FocusSequencer interface {
	Configure(exposureTime float64, numberExposures int, focusStep float64, detectorShift int) error
	Reset()
	Run(params RunParameters)
	Abort() error
	IsConfigured() bool
	Parameters() FocusParameters
	CurrentPosition() (float64, bool)
	StartingPosition() (float64, bool)
	LastOutcome() RunOutcome
	FocusComponent() FocusComponent
	FocusType() FocusType
	SetFocusComponent(component FocusComponent) error
	SetFocusType(focusType FocusType) error
	SetMoveDelay(seconds int) error
	SetService(service AzcamService)
	SetAbortMonitor(monitor AbortMonitor)
}

// FocusComponent selects which mechanism receives focus moves
type FocusComponent string

const (
	FocusComponentInstrument FocusComponent = "instrument"
	FocusComponentTelescope  FocusComponent = "telescope"
)

func (component FocusComponent) IsValid() bool {
	return component == FocusComponentInstrument || component == FocusComponentTelescope
}

func ParseFocusComponent(text string) (FocusComponent, error) {
	component := FocusComponent(text)
	if !component.IsValid() {
		return "", fmt.Errorf("unknown focus component %q (want instrument or telescope)", text)
	}
	return component, nil
}

// FocusType says whether focus moves are target positions or relative increments
type FocusType string

const (
	FocusTypeAbsolute FocusType = "absolute"
	FocusTypeStep     FocusType = "step"
)

func (focusType FocusType) IsValid() bool {
	return focusType == FocusTypeAbsolute || focusType == FocusTypeStep
}

func ParseFocusType(text string) (FocusType, error) {
	focusType := FocusType(text)
	if !focusType.IsValid() {
		return "", fmt.Errorf("unknown focus type %q (want absolute or step)", text)
	}
	return focusType, nil
}

type RunOutcome int

const (
	RunNotStarted RunOutcome = iota
	RunCompleted
	RunAborted
	RunFaulted
	RunRejected
)

func (outcome RunOutcome) String() string {
	switch outcome {
	case RunCompleted:
		return "completed"
	case RunAborted:
		return "aborted"
	case RunFaulted:
		return "faulted"
	case RunRejected:
		return "rejected"
	}
	return "not started"
}

// FocusParameters are the sweep settings held by the sequencer
type FocusParameters struct {
	ExposureTime    float64
	NumberExposures int
	FocusStep       float64
	DetectorShift   int
}

// RunParameters overrides sweep settings for one run. A nil field keeps the session value.
type RunParameters struct {
	ExposureTime    *float64
	NumberExposures *int
	FocusStep       *float64
	DetectorShift   *int
}

// AbortMonitor reports a user abort request, e.g. a key typed on the console
type AbortMonitor interface {
	AbortRequested() bool
}

const defaultExposureTime = 1.0
const defaultNumberExposures = 7
const defaultFocusStep = 30.0
const defaultDetectorShift = 10
const defaultMoveDelaySeconds = 3

// Focusing with zero exposure time is meaningless
const minimumExposureTime = 0.001

type parameterSetting struct {
	name  string
	value string
}

// Image parameters the sweep overrides; all are restored verbatim afterwards.
var focusImageSettings = []parameterSetting{
	{"imageroot", "focus."},
	{"imageincludesequencenumber", "1"},
	{"imageautoname", "0"},
	{"imageautoincrementsequencenumber", "1"},
	{"imagetest", "0"},
	{"imagetitle", "Focus"},
	{"imageoverwrite", "1"},
	{"imagetype", "object"},
}

type FocusSequencerInstance struct {
	service      AzcamService
	delayService goMockableDelay.DelayService
	abortMonitor AbortMonitor
	logger       zerolog.Logger

	exposureTime    float64
	numberExposures int
	focusStep       float64
	detectorShift   int
	focusComponent  FocusComponent
	focusType       FocusType
	moveDelay       int
	configured      bool

	currentPosition  float64
	startingPosition float64
	positionKnown    bool
	lastOutcome      RunOutcome
}

// NewFocusSequencer is the constructor for the instance of this service. The defaults match the
// VATT consoles: telescope focus, absolute positions, 3 second settle.
func NewFocusSequencer(service AzcamService,
	delayService goMockableDelay.DelayService,
	logger zerolog.Logger) FocusSequencer {
	sequencer := &FocusSequencerInstance{
		service:        service,
		delayService:   delayService,
		logger:         logger,
		focusComponent: FocusComponentTelescope,
		focusType:      FocusTypeAbsolute,
		moveDelay:      defaultMoveDelaySeconds,
	}
	sequencer.Reset()
	return sequencer
}

func (sequencer *FocusSequencerInstance) SetService(service AzcamService) {
	sequencer.service = service
}

func (sequencer *FocusSequencerInstance) SetAbortMonitor(monitor AbortMonitor) {
	sequencer.abortMonitor = monitor
}

func (sequencer *FocusSequencerInstance) SetFocusComponent(component FocusComponent) error {
	if !component.IsValid() {
		return fmt.Errorf("FocusSequencerInstance/SetFocusComponent: unknown focus component %q", component)
	}
	sequencer.focusComponent = component
	return nil
}

func (sequencer *FocusSequencerInstance) SetFocusType(focusType FocusType) error {
	if !focusType.IsValid() {
		return fmt.Errorf("FocusSequencerInstance/SetFocusType: unknown focus type %q", focusType)
	}
	sequencer.focusType = focusType
	return nil
}

func (sequencer *FocusSequencerInstance) SetMoveDelay(seconds int) error {
	if seconds < 0 {
		return fmt.Errorf("FocusSequencerInstance/SetMoveDelay: negative delay %d", seconds)
	}
	sequencer.moveDelay = seconds
	return nil
}

func (sequencer *FocusSequencerInstance) FocusComponent() FocusComponent {
	return sequencer.focusComponent
}

func (sequencer *FocusSequencerInstance) FocusType() FocusType {
	return sequencer.focusType
}

func (sequencer *FocusSequencerInstance) IsConfigured() bool {
	return sequencer.configured
}

func (sequencer *FocusSequencerInstance) LastOutcome() RunOutcome {
	return sequencer.lastOutcome
}

func (sequencer *FocusSequencerInstance) Parameters() FocusParameters {
	return FocusParameters{
		ExposureTime:    sequencer.exposureTime,
		NumberExposures: sequencer.numberExposures,
		FocusStep:       sequencer.focusStep,
		DetectorShift:   sequencer.detectorShift,
	}
}

// CurrentPosition is the focus value last reported by the mechanism; false until a run has queried it
func (sequencer *FocusSequencerInstance) CurrentPosition() (float64, bool) {
	return sequencer.currentPosition, sequencer.positionKnown
}

func (sequencer *FocusSequencerInstance) StartingPosition() (float64, bool) {
	return sequencer.startingPosition, sequencer.positionKnown
}

// Reset restores the sweep defaults. Component, type and move delay are left alone.
func (sequencer *FocusSequencerInstance) Reset() {
	sequencer.exposureTime = defaultExposureTime
	sequencer.numberExposures = defaultNumberExposures
	sequencer.focusStep = defaultFocusStep
	sequencer.detectorShift = defaultDetectorShift
	sequencer.configured = false
}

// Configure stores sweep parameters. Once configured, Run ignores its arguments.
func (sequencer *FocusSequencerInstance) Configure(exposureTime float64,
	numberExposures int,
	focusStep float64,
	detectorShift int) error {
	if exposureTime <= 0 {
		return fmt.Errorf("FocusSequencerInstance/Configure: exposure time must be positive, got %g", exposureTime)
	}
	parameters := FocusParameters{
		ExposureTime:    exposureTime,
		NumberExposures: numberExposures,
		FocusStep:       focusStep,
		DetectorShift:   detectorShift,
	}
	if err := validateParameters(parameters); err != nil {
		return fmt.Errorf("FocusSequencerInstance/Configure: %w", err)
	}
	sequencer.exposureTime = exposureTime
	sequencer.numberExposures = numberExposures
	sequencer.focusStep = focusStep
	sequencer.detectorShift = detectorShift
	sequencer.configured = true
	return nil
}

func validateParameters(parameters FocusParameters) error {
	if parameters.NumberExposures < 1 {
		return fmt.Errorf("number of exposures must be at least 1, got %d", parameters.NumberExposures)
	}
	if parameters.DetectorShift < 0 {
		return fmt.Errorf("detector shift must not be negative, got %d", parameters.DetectorShift)
	}
	return nil
}

// Abort asks the server to abort the exposure in progress. The sweep loop itself stops at its
// next abort poll.
func (sequencer *FocusSequencerInstance) Abort() error {
	sequencer.logger.Info().Msg("Aborting focus exposure")
	if err := sequencer.service.AbortExposure(); err != nil {
		sequencer.logger.Error().Err(err).Msg("FocusSequencerInstance/Abort error from service")
		return err
	}
	return nil
}

// withOverrides returns the parameters with every present run field substituted
func (parameters FocusParameters) withOverrides(params RunParameters) FocusParameters {
	if params.ExposureTime != nil {
		parameters.ExposureTime = *params.ExposureTime
	}
	if params.NumberExposures != nil {
		parameters.NumberExposures = *params.NumberExposures
	}
	if params.FocusStep != nil {
		parameters.FocusStep = *params.FocusStep
	}
	if params.DetectorShift != nil {
		parameters.DetectorShift = *params.DetectorShift
	}
	return parameters
}

// Run executes the focus sweep. A rejected run leaves the session parameters unchanged.
func (sequencer *FocusSequencerInstance) Run(params RunParameters) {
	effective := sequencer.Parameters()
	if !sequencer.configured {
		effective = effective.withOverrides(params)
	}
	run := &focusRun{
		sequencer: sequencer,
		service:   sequencer.service,
		logger:    sequencer.logger.With().Str("run_id", uuid.NewString()).Logger(),
	}

	if effective.ExposureTime < minimumExposureTime {
		run.logger.Warn().Float64("exposure_time", effective.ExposureTime).Msg("do not focus with zero exposure time")
		sequencer.lastOutcome = RunRejected
		return
	}
	if err := validateParameters(effective); err != nil {
		run.logger.Warn().Err(err).Msg("invalid focus parameters")
		sequencer.lastOutcome = RunRejected
		return
	}
	sequencer.exposureTime = effective.ExposureTime
	sequencer.numberExposures = effective.NumberExposures
	sequencer.focusStep = effective.FocusStep
	sequencer.detectorShift = effective.DetectorShift

	sequencer.lastOutcome = run.execute()
	run.logger.Info().Str("outcome", sequencer.lastOutcome.String()).Msg("Focus sequence finished")
}

// focusRun holds the state of a single sweep
type focusRun struct {
	sequencer  *FocusSequencerInstance
	service    AzcamService
	logger     zerolog.Logger
	snapshot   []parameterSetting
	totalSteps float64
}

func (run *focusRun) execute() RunOutcome {
	sequencer := run.sequencer
	service := run.service

	if err := service.SetExposureTime(sequencer.exposureTime); err != nil {
		run.logger.Error().Err(err).Msg("unable to set exposure time")
		return RunFaulted
	}
	if err := run.saveImageParameters(); err != nil {
		run.logger.Error().Err(err).Msg("unable to save image parameters")
		return RunFaulted
	}
	if err := run.applyFocusImageParameters(); err != nil {
		run.logger.Error().Err(err).Msg("unable to set focus image parameters")
		run.restoreImageParameters()
		return RunFaulted
	}
	if err := service.BeginExposure(); err != nil {
		run.logger.Error().Err(err).Msg("unable to begin exposure")
		run.restoreImageParameters()
		return RunFaulted
	}

	startingPosition, err := service.GetFocus(sequencer.focusComponent)
	if err != nil {
		run.logger.Error().Err(err).Msg("unable to read starting focus")
		if err := service.SetExposureFlagNone(); err != nil {
			run.logger.Error().Err(err).Msg("unable to clear exposure flag")
		}
		run.restoreImageParameters()
		return RunFaulted
	}
	sequencer.startingPosition = startingPosition
	sequencer.currentPosition = startingPosition
	sequencer.positionKnown = true

	aborted := false
	for exposure := 1; exposure <= sequencer.numberExposures; exposure++ {
		if run.abortRequested() {
			aborted = true
			break
		}

		if exposure > 1 {
			if err := run.moveFocus(); err != nil {
				run.logger.Error().Err(err).Msg("focus move failed")
				return run.fault()
			}
		}
		if err := run.shiftDetector(exposure == sequencer.numberExposures); err != nil {
			run.logger.Error().Err(err).Msg("detector shift failed")
			return run.fault()
		}

		run.logger.Info().Msgf("Next exposure is %d of %d at focus position %.3f",
			exposure, sequencer.numberExposures, sequencer.currentPosition)

		run.logger.Info().Msg("Integrating")
		if err := service.IntegrateExposure(); err != nil {
			event := run.logger.Warn()
			if !IsControllerError(err) {
				event = run.logger.Error()
			}
			event.Err(err).Msg("Focus exposure aborted")
			return run.fault()
		}
	}

	run.returnToStart()

	outcome := RunCompleted
	if !aborted {
		run.logger.Info().Msg("Reading out")
		if err := run.readoutAndFinish(); err != nil {
			run.logger.Error().Err(err).Msg("readout failed")
			outcome = RunFaulted
		}
	} else {
		run.logger.Info().Msg("Focus sequence aborted, no readout")
		if err := service.SetExposureFlagNone(); err != nil {
			run.logger.Error().Err(err).Msg("unable to clear exposure flag")
		}
		outcome = RunAborted
	}

	run.restoreImageParameters()
	return outcome
}

func (run *focusRun) abortRequested() bool {
	monitor := run.sequencer.abortMonitor
	if monitor != nil && monitor.AbortRequested() {
		return true
	}
	flag, err := run.service.GetAbortFlag()
	if err != nil {
		run.logger.Warn().Err(err).Msg("unable to read abort flag")
		return false
	}
	return flag
}

func (run *focusRun) saveImageParameters() error {
	snapshot := make([]parameterSetting, 0, len(focusImageSettings))
	for _, setting := range focusImageSettings {
		value, err := run.service.GetPar(setting.name)
		if err != nil {
			return fmt.Errorf("reading %s: %w", setting.name, err)
		}
		snapshot = append(snapshot, parameterSetting{name: setting.name, value: value})
	}
	run.snapshot = snapshot
	return nil
}

func (run *focusRun) applyFocusImageParameters() error {
	for _, setting := range focusImageSettings {
		if err := run.service.SetPar(setting.name, setting.value); err != nil {
			return fmt.Errorf("setting %s: %w", setting.name, err)
		}
	}
	return nil
}

// restoreImageParameters puts back every saved value, continuing past failures
func (run *focusRun) restoreImageParameters() {
	for _, setting := range run.snapshot {
		if err := run.service.SetPar(setting.name, setting.value); err != nil {
			run.logger.Error().Err(err).Str("parameter", setting.name).Msg("unable to restore image parameter")
		}
	}
}

func (run *focusRun) moveFocus() error {
	sequencer := run.sequencer
	switch sequencer.focusType {
	case FocusTypeStep:
		if err := run.service.SetFocus(sequencer.focusStep, sequencer.focusComponent, FocusTypeStep); err != nil {
			return err
		}
		run.totalSteps += sequencer.focusStep
	case FocusTypeAbsolute:
		target := sequencer.currentPosition + sequencer.focusStep
		if err := run.service.SetFocus(target, sequencer.focusComponent, FocusTypeAbsolute); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown focus type %q", sequencer.focusType)
	}
	run.focusDelay()
	position, err := run.service.GetFocus(sequencer.focusComponent)
	if err != nil {
		return err
	}
	sequencer.currentPosition = position
	return nil
}

func (run *focusRun) shiftDetector(lastExposure bool) error {
	rows := run.sequencer.detectorShift
	if err := run.service.ParShift(rows); err != nil {
		return err
	}
	if lastExposure {
		run.logger.Info().Msg("Last exposure, double shifting")
		if err := run.service.ParShift(rows); err != nil {
			return err
		}
	}
	return nil
}

// commandStartingPosition moves the mechanism back to where the run began. Step mechanisms
// undo the accumulated steps rather than computing a delta from reported positions.
func (run *focusRun) commandStartingPosition() error {
	sequencer := run.sequencer
	if sequencer.focusType == FocusTypeStep {
		return run.service.SetFocus(-run.totalSteps, sequencer.focusComponent, FocusTypeStep)
	}
	return run.service.SetFocus(sequencer.startingPosition, sequencer.focusComponent, FocusTypeAbsolute)
}

func (run *focusRun) returnToStart() {
	run.logger.Info().Msgf("Returning focus to starting value %.3f", run.sequencer.startingPosition)
	if err := run.commandStartingPosition(); err != nil {
		run.logger.Error().Err(err).Msg("unable to return focus to starting value")
	}
	run.focusDelay()
	run.logCurrentFocus()
}

// fault handles a failure inside the loop: no settle, no readout
func (run *focusRun) fault() RunOutcome {
	if err := run.commandStartingPosition(); err != nil {
		run.logger.Error().Err(err).Msg("unable to return focus to starting value")
	}
	run.restoreImageParameters()
	run.logCurrentFocus()
	return RunFaulted
}

func (run *focusRun) logCurrentFocus() {
	position, err := run.service.GetFocus(run.sequencer.focusComponent)
	if err != nil {
		run.logger.Error().Err(err).Msg("unable to read focus position")
		return
	}
	run.sequencer.currentPosition = position
	run.logger.Info().Msgf("Current focus: %.3f", position)
}

func (run *focusRun) readoutAndFinish() error {
	if err := run.service.ReadoutExposure(); err != nil {
		return err
	}
	return run.service.EndExposure()
}

// focusDelay waits for the focus mechanism to stop moving
func (run *focusRun) focusDelay() {
	delay := run.sequencer.moveDelay
	if delay <= 0 || run.sequencer.delayService == nil {
		return
	}
	if _, err := run.sequencer.delayService.DelayDuration(delay); err != nil {
		run.logger.Warn().Err(err).Msg("focus settle delay interrupted")
	}
}
