package goAzcamVatt

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// newConnectedService plugs a mock driver into a service and connects it
func newConnectedService(t *testing.T, ctrl *gomock.Controller) (AzcamService, *MockAzcamDriver) {
	service := NewAzcamService(false, 0, zerolog.Nop())
	mockDriver := NewMockAzcamDriver(ctrl)
	service.SetDriver(mockDriver)
	mockDriver.EXPECT().Connect("vattcontrol", 2402).Return(nil)
	require.Nil(t, service.Connect("vattcontrol", 2402), "Unable to connect service")
	return service, mockDriver
}

// TestExposureCommands checks the command text the service sends for exposure control.
// We mock the AzcamDriver to capture the commands
func TestExposureCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("integration timeout follows exposure time", func(t *testing.T) {
		service, mockDriver := newConnectedService(t, ctrl)
		mockDriver.EXPECT().SendCommand("exposure.set_exposuretime 20").Return(nil)
		mockDriver.EXPECT().SendCommand("exposure.begin").Return(nil)
		mockDriver.EXPECT().SendLongCommand("exposure.integrate", 20.0*integrateTimeoutFactor+minimumIntegrateTimeout).Return(nil)
		mockDriver.EXPECT().SendLongCommand("exposure.readout", readoutTimeout).Return(nil)
		mockDriver.EXPECT().SendLongCommand("exposure.end", endExposureTimeout).Return(nil)

		require.Nil(t, service.SetExposureTime(20))
		require.Nil(t, service.BeginExposure())
		require.Nil(t, service.IntegrateExposure())
		require.Nil(t, service.ReadoutExposure())
		require.Nil(t, service.EndExposure())
	})

	t.Run("exposure time read back", func(t *testing.T) {
		service, mockDriver := newConnectedService(t, ctrl)
		mockDriver.EXPECT().SendCommandFloatReply("exposure.get_exposuretime").Return(2.5, nil)
		mockDriver.EXPECT().SendLongCommand("exposure.integrate", 2.5*integrateTimeoutFactor+minimumIntegrateTimeout).Return(nil)

		seconds, err := service.GetExposureTime()
		require.Nil(t, err)
		require.Equal(t, 2.5, seconds)
		require.Nil(t, service.IntegrateExposure())
	})

	t.Run("negative exposure time refused", func(t *testing.T) {
		service, _ := newConnectedService(t, ctrl)
		require.ErrorContains(t, service.SetExposureTime(-1), "negative exposure time")
	})

	t.Run("abort and exposure flag", func(t *testing.T) {
		service, mockDriver := newConnectedService(t, ctrl)
		mockDriver.EXPECT().SendCommand("exposure.abort").Return(nil)
		mockDriver.EXPECT().SendCommand("set_par exposureflag 0").Return(nil)
		mockDriver.EXPECT().SendCommandBoolReply("get_par abortflag").Return(true, nil)

		require.Nil(t, service.AbortExposure())
		require.Nil(t, service.SetExposureFlagNone())
		flag, err := service.GetAbortFlag()
		require.Nil(t, err)
		require.True(t, flag)
	})
}

func TestParameterAndFocusCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("image parameters", func(t *testing.T) {
		service, mockDriver := newConnectedService(t, ctrl)
		mockDriver.EXPECT().SendCommandStringReply("get_par imagetitle").Return("M51 field", nil)
		mockDriver.EXPECT().SendCommand(`set_par imagetitle "M51 field"`).Return(nil)
		mockDriver.EXPECT().SendCommand("set_par imageroot focus.").Return(nil)

		title, err := service.GetPar("imagetitle")
		require.Nil(t, err)
		require.Nil(t, service.SetPar("imagetitle", title))
		require.Nil(t, service.SetPar("imageroot", "focus."))
		require.NotNil(t, service.SetPar("", "x"))
		_, err = service.GetPar("")
		require.NotNil(t, err)
	})

	t.Run("focus moves", func(t *testing.T) {
		service, mockDriver := newConnectedService(t, ctrl)
		mockDriver.EXPECT().SendCommandFloatReply("telescope.get_focus").Return(100.0, nil)
		mockDriver.EXPECT().SendCommand("telescope.set_focus 150 0 absolute").Return(nil)
		mockDriver.EXPECT().SendCommand("instrument.set_focus -30 0 step").Return(nil)
		mockDriver.EXPECT().SendCommand("controller.parshift 10").Return(nil)

		position, err := service.GetFocus(FocusComponentTelescope)
		require.Nil(t, err)
		require.Equal(t, 100.0, position)
		require.Nil(t, service.SetFocus(150, FocusComponentTelescope, FocusTypeAbsolute))
		require.Nil(t, service.SetFocus(-30, FocusComponentInstrument, FocusTypeStep))
		require.Nil(t, service.ParShift(10))
		require.NotNil(t, service.SetFocus(1, "dome", FocusTypeStep))
		require.NotNil(t, service.SetFocus(1, FocusComponentTelescope, "relative"))
		_, err = service.GetFocus("dome")
		require.NotNil(t, err)
	})
}

func TestControllerCommands(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, mockDriver := newConnectedService(t, ctrl)
	mockDriver.EXPECT().SendCommand("controller.start_idle").Return(nil)
	mockDriver.EXPECT().SendCommand("controller.stop_idle").Return(nil)
	mockDriver.EXPECT().SendCommand(`controller.set_bias_number 2 3 "VID" 1200`).Return(nil)
	mockDriver.EXPECT().SendCommand(`controller.write_memory "Y" 2 16 255`).Return(nil)
	mockDriver.EXPECT().SendCommandStringReply(`controller.read_memory "X" 1 4`).Return("4095", nil)
	mockDriver.EXPECT().SendCommandStringReply(`controller.board_command "TDL" 2 4660 -1 -1 -1`).Return("DON", nil)

	require.Nil(t, service.StartIdle())
	require.Nil(t, service.StopIdle())
	require.Nil(t, service.SetBiasNumber(2, 3, "vid", 1200))
	require.ErrorContains(t, service.SetBiasNumber(2, 3, "DC", 1200), "VID or CLK")
	require.Nil(t, service.WriteControllerMemory("y", 2, 16, 255))
	require.NotNil(t, service.WriteControllerMemory("Q", 2, 16, 255))
	value, err := service.ReadControllerMemory("X", 1, 4)
	require.Nil(t, err)
	require.Equal(t, "4095", value)
	reply, err := service.BoardCommand("TDL", 2, 0x1234)
	require.Nil(t, err)
	require.Equal(t, "DON", reply)
	_, err = service.BoardCommand("TDL", 2, 1, 2, 3, 4, 5)
	require.ErrorContains(t, err, "at most 4 arguments")
}

func TestServiceNotConnected(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewAzcamService(false, 0, zerolog.Nop())
	service.SetDriver(NewMockAzcamDriver(ctrl))

	require.ErrorContains(t, service.BeginExposure(), "Connection not open")
	require.ErrorContains(t, service.ParShift(5), "Connection not open")
	_, err := service.GetFocus(FocusComponentTelescope)
	require.ErrorContains(t, err, "Connection not open")
	require.Nil(t, service.Close(), "closing an unopened service is harmless")
}
