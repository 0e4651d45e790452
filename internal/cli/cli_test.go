package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/RMcDOttawa/goAzcamVatt"
	"github.com/RMcDOttawa/goAzcamVatt/internal/abort"
	"github.com/RMcDOttawa/goAzcamVatt/internal/config"
	"github.com/RMcDOttawa/goMockableDelay"
	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

// runCLI executes vattfocus with a temporary config file and the given service mock
func runCLI(t *testing.T, service goAzcamVatt.AzcamService, configYAML string, args ...string) (string, string, error) {
	return runCLIInFolder(t, t.TempDir(), service, configYAML, args...)
}

// runCLIInFolder is runCLI with the data folder chosen by the caller
func runCLIInFolder(t *testing.T, folder string, service goAzcamVatt.AzcamService, configYAML string, args ...string) (string, string, error) {
	resetFlags(rootCmd)
	configPath := filepath.Join(folder, "vattfocus.yaml")
	contents := "datafolder: " + folder + "\n" + configYAML
	require.Nil(t, os.WriteFile(configPath, []byte(contents), 0o600))

	savedService, savedDelay := newService, newDelayService
	newService = func(cfg *config.Config, logger zerolog.Logger) goAzcamVatt.AzcamService {
		return service
	}
	newDelayService = func(cfg *config.Config) goMockableDelay.DelayService {
		return nil
	}
	t.Cleanup(func() {
		newService, newDelayService = savedService, savedDelay
		resetFlags(rootCmd)
	})

	var stdout, stderr bytes.Buffer
	allArgs := append([]string{"--config", configPath, "--non-interactive"}, args...)
	err := ExecuteArgs(allArgs, strings.NewReader(""), &stdout, &stderr)
	return stdout.String(), stderr.String(), err
}

// resetFlags undoes flag parsing so commands can be executed again in the same process
func resetFlags(cmd *cobra.Command) {
	reset := func(flag *pflag.Flag) {
		_ = flag.Value.Set(flag.DefValue)
		flag.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

func expectConnection(mockService *goAzcamVatt.MockAzcamService, port int) {
	mockService.EXPECT().Connect("localhost", port).Return(nil)
	mockService.EXPECT().Close().Return(nil)
}

func TestControllerCommands(t *testing.T) {
	t.Run("board command prints reply", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := goAzcamVatt.NewMockAzcamService(ctrl)
		expectConnection(mockService, 2402)
		mockService.EXPECT().BoardCommand("TDL", 2, 0x1234).Return("DON", nil)

		stdout, _, err := runCLI(t, mockService, "", "controller", "board-command", "TDL", "2", "0x1234")
		require.Nil(t, err)
		require.Equal(t, "DON\n", stdout)
	})

	t.Run("read memory on vattspec", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := goAzcamVatt.NewMockAzcamService(ctrl)
		expectConnection(mockService, 2412)
		mockService.EXPECT().ReadControllerMemory("Y", 2, 16).Return("255", nil)

		stdout, _, err := runCLI(t, mockService, "system: vattspec\n", "controller", "read-memory", "Y", "2", "16")
		require.Nil(t, err)
		require.Equal(t, "255\n", stdout)
	})

	t.Run("set bias and idle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := goAzcamVatt.NewMockAzcamService(ctrl)
		expectConnection(mockService, 2402)
		mockService.EXPECT().SetBiasNumber(2, 3, "VID", 1200).Return(nil)
		_, _, err := runCLI(t, mockService, "", "controller", "set-bias", "2", "3", "VID", "1200")
		require.Nil(t, err)

		expectConnection(mockService, 2402)
		mockService.EXPECT().StartIdle().Return(nil)
		_, _, err = runCLI(t, mockService, "", "controller", "start-idle")
		require.Nil(t, err)
	})

	t.Run("bad integer argument", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := goAzcamVatt.NewMockAzcamService(ctrl)
		expectConnection(mockService, 2402)
		_, _, err := runCLI(t, mockService, "", "controller", "write-memory", "X", "two", "1", "1")
		require.ErrorContains(t, err, "not an integer")
	})
}

func TestFocusCommands(t *testing.T) {
	t.Run("zero exposure is rejected before any camera command", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := goAzcamVatt.NewMockAzcamService(ctrl)
		expectConnection(mockService, 2402)

		stdout, _, err := runCLI(t, mockService, "", "focus", "run", "--exposure-time", "0")
		require.NotNil(t, err)
		require.Contains(t, stdout, "REJECTED")
	})

	t.Run("non-interactive run takes sweep settings from config", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := goAzcamVatt.NewMockAzcamService(ctrl)
		expectConnection(mockService, 2402)
		mockService.EXPECT().SetExposureTime(2.5).Return(nil)
		mockService.EXPECT().GetPar(gomock.Any()).Return("", nil).AnyTimes()
		mockService.EXPECT().SetPar(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
		mockService.EXPECT().BeginExposure().Return(nil)
		mockService.EXPECT().GetFocus(goAzcamVatt.FocusComponentInstrument).Return(500.0, nil).AnyTimes()
		mockService.EXPECT().GetAbortFlag().Return(false, nil)
		mockService.EXPECT().ParShift(4).Return(nil).Times(2)
		mockService.EXPECT().IntegrateExposure().Return(nil)
		mockService.EXPECT().SetFocus(500.0, goAzcamVatt.FocusComponentInstrument, goAzcamVatt.FocusTypeAbsolute).Return(nil)
		mockService.EXPECT().ReadoutExposure().Return(nil)
		mockService.EXPECT().EndExposure().Return(nil)

		stdout, _, err := runCLI(t, mockService, `focus:
  component: instrument
  move_delay: 0
  exposure_time: 2.5
  number_exposures: 1
  detector_shift: 4
`, "focus", "run")
		require.Nil(t, err)
		require.Contains(t, stdout, "OK focus sequence completed")
	})

	t.Run("abort sends exposure abort", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockService := goAzcamVatt.NewMockAzcamService(ctrl)
		expectConnection(mockService, 2402)
		mockService.EXPECT().AbortExposure().Return(nil)

		_, _, err := runCLI(t, mockService, "", "focus", "abort")
		require.Nil(t, err)
	})
}

func TestLogClosedAfterFailedCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockService := goAzcamVatt.NewMockAzcamService(ctrl)
	expectConnection(mockService, 2402)
	folder := t.TempDir()

	_, _, err := runCLIInFolder(t, folder, mockService, "", "focus", "run", "--exposure-time", "0")
	require.NotNil(t, err)
	require.Nil(t, appLogger, "session logger is released even when the command fails")

	logFiles, err := filepath.Glob(filepath.Join(folder, "logs", "console_*.log"))
	require.Nil(t, err)
	require.Len(t, logFiles, 1)
	contents, err := os.ReadFile(logFiles[0])
	require.Nil(t, err)
	require.Contains(t, string(contents), "do not focus with zero exposure time")
}

func TestReportedOutcome(t *testing.T) {
	monitor := abort.NewMonitor(zerolog.Nop(), nil)
	require.Equal(t, goAzcamVatt.RunFaulted, reportedOutcome(goAzcamVatt.RunFaulted, monitor))
	require.Equal(t, goAzcamVatt.RunCompleted, reportedOutcome(goAzcamVatt.RunCompleted, monitor))

	// aborting the server makes the integration in progress fail
	monitor.Trigger("interrupt")
	require.Equal(t, goAzcamVatt.RunAborted, reportedOutcome(goAzcamVatt.RunFaulted, monitor))
	require.Equal(t, goAzcamVatt.RunRejected, reportedOutcome(goAzcamVatt.RunRejected, monitor))
}

func TestResolveRunParametersConfigured(t *testing.T) {
	appConfig = &config.Config{Focus: config.FocusConfig{ExposureTime: 3, NumberExposures: 2, FocusStep: 5, DetectorShift: 1}}
	sequencer := goAzcamVatt.NewFocusSequencer(nil, nil, zerolog.Nop())
	require.Nil(t, sequencer.Configure(3, 2, 5, 1))

	cmd := &cobra.Command{}
	params, err := resolveRunParameters(cmd, sequencer)
	require.Nil(t, err)
	require.Equal(t, goAzcamVatt.RunParameters{}, params)
}

func TestParseIntegers(t *testing.T) {
	numbers, err := parseIntegers("2", "0x10", "-1")
	require.Nil(t, err)
	require.Equal(t, []int{2, 16, -1}, numbers)
	_, err = parseIntegers("1.5")
	require.NotNil(t, err)
}

func TestRenderOutcome(t *testing.T) {
	require.Contains(t, renderOutcome(goAzcamVatt.RunCompleted, 100, 100, true), "start 100.000, now 100.000")
	require.Contains(t, renderOutcome(goAzcamVatt.RunAborted, 0, 0, false), "ABORTED")
	require.NotContains(t, renderOutcome(goAzcamVatt.RunRejected, 0, 0, false), "start")
	require.Contains(t, renderOutcome(goAzcamVatt.RunFaulted, 1, 2, true), "FAULT")
}
