package goAzcamVatt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

//	AzcamService is a high-level interface to the set of logical services we use from the
//	azcam server: exposure control, image parameters, focus mechanisms, detector shifting and
//	the ARC controller boards. It hides the command vocabulary and the socket handling.

type AzcamService interface {
	Connect(server string, port int) error
	Close() error
	SetDriver(driver AzcamDriver)
	SetDebug(debug bool)
	SetVerbosity(verbosity int)

	GetExposureTime() (float64, error)
	SetExposureTime(seconds float64) error
	BeginExposure() error
	IntegrateExposure() error
	ReadoutExposure() error
	EndExposure() error
	AbortExposure() error
	SetExposureFlagNone() error

	GetPar(name string) (string, error)
	SetPar(name string, value string) error
	GetAbortFlag() (bool, error)

	GetFocus(component FocusComponent) (float64, error)
	SetFocus(value float64, component FocusComponent, focusType FocusType) error
	ParShift(rows int) error

	StartIdle() error
	StopIdle() error
	SetBiasNumber(boardNumber int, dac int, dacType string, dacValue int) error
	WriteControllerMemory(memoryType string, boardNumber int, address int, value int) error
	ReadControllerMemory(memoryType string, boardNumber int, address int) (string, error)
	BoardCommand(command string, boardNumber int, args ...int) (string, error)
}

type AzcamServiceInstance struct {
	driver       AzcamDriver
	isOpen       bool
	exposureTime float64
	debug        bool
	verbosity    int
	logger       zerolog.Logger
}

const integrateTimeoutFactor = 5.0   // How much longer to wait than the exposure time
const minimumIntegrateTimeout = 60.0 // seconds
const readoutTimeout = 300.0
const endExposureTimeout = 120.0
const maxBoardCommandArgs = 4

// exposureFlagNone is azcam's exposureflags["NONE"]
const exposureFlagNone = "0"

// NewAzcamService is the constructor for the instance of this service
func NewAzcamService(debug bool, verbosity int, logger zerolog.Logger) AzcamService {
	service := &AzcamServiceInstance{
		isOpen:    false,
		driver:    NewAzcamDriver(debug, verbosity, logger),
		debug:     debug,
		verbosity: verbosity,
		logger:    logger,
	}
	return service
}

func (service *AzcamServiceInstance) SetDriver(driver AzcamDriver) {
	service.driver = driver
}

func (service *AzcamServiceInstance) SetDebug(debug bool) {
	service.debug = debug
	service.driver.SetDebug(debug)
}

func (service *AzcamServiceInstance) SetVerbosity(verbosity int) {
	service.verbosity = verbosity
	service.driver.SetVerbosity(verbosity)
}

// Connect opens a connection to the azcam server, via the low-level driver.
func (service *AzcamServiceInstance) Connect(server string, port int) error {
	if service.isOpen {
		service.logger.Debug().Str("server", server).Int("port", port).Msg("AzcamServiceInstance/Connect: already connected")
		return nil
	}
	if err := service.driver.Connect(server, port); err != nil {
		return err
	}
	service.isOpen = true
	return nil
}

// Close closes the connection to the azcam server
func (service *AzcamServiceInstance) Close() error {
	if !service.isOpen {
		service.logger.Debug().Msg("AzcamServiceInstance/Close: not open")
		return nil
	}
	if err := service.driver.Close(); err != nil {
		return err
	}
	service.isOpen = false
	return nil
}

func (service *AzcamServiceInstance) checkOpen(operation string) error {
	if !service.isOpen {
		return fmt.Errorf("AzcamServiceInstance/%s: Connection not open", operation)
	}
	return nil
}

func (service *AzcamServiceInstance) GetExposureTime() (float64, error) {
	if err := service.checkOpen("GetExposureTime"); err != nil {
		return 0.0, err
	}
	seconds, err := service.driver.SendCommandFloatReply("exposure.get_exposuretime")
	if err != nil {
		return 0.0, err
	}
	service.exposureTime = seconds
	return seconds, nil
}

func (service *AzcamServiceInstance) SetExposureTime(seconds float64) error {
	if err := service.checkOpen("SetExposureTime"); err != nil {
		return err
	}
	if seconds < 0 {
		return fmt.Errorf("AzcamServiceInstance/SetExposureTime: negative exposure time %g", seconds)
	}
	if err := service.driver.SendCommand(formatCommand("exposure.set_exposuretime", seconds)); err != nil {
		return err
	}
	service.exposureTime = seconds
	return nil
}

func (service *AzcamServiceInstance) BeginExposure() error {
	if err := service.checkOpen("BeginExposure"); err != nil {
		return err
	}
	return service.driver.SendCommand("exposure.begin")
}

// IntegrateExposure blocks until the server finishes integrating. The deadline is scaled from
// the last exposure time this service set or read.
func (service *AzcamServiceInstance) IntegrateExposure() error {
	if err := service.checkOpen("IntegrateExposure"); err != nil {
		return err
	}
	timeout := service.exposureTime*integrateTimeoutFactor + minimumIntegrateTimeout
	if service.verbosity >= 3 {
		service.logger.Debug().Float64("timeout", timeout).Msg("integration started")
	}
	return service.driver.SendLongCommand("exposure.integrate", timeout)
}

func (service *AzcamServiceInstance) ReadoutExposure() error {
	if err := service.checkOpen("ReadoutExposure"); err != nil {
		return err
	}
	return service.driver.SendLongCommand("exposure.readout", readoutTimeout)
}

func (service *AzcamServiceInstance) EndExposure() error {
	if err := service.checkOpen("EndExposure"); err != nil {
		return err
	}
	return service.driver.SendLongCommand("exposure.end", endExposureTimeout)
}

// AbortExposure asks the server to abort the exposure in progress. It is safe to call while
// another goroutine is blocked in IntegrateExposure since every command uses its own socket.
func (service *AzcamServiceInstance) AbortExposure() error {
	if err := service.checkOpen("AbortExposure"); err != nil {
		return err
	}
	return service.driver.SendCommand("exposure.abort")
}

func (service *AzcamServiceInstance) SetExposureFlagNone() error {
	return service.SetPar("exposureflag", exposureFlagNone)
}

func (service *AzcamServiceInstance) GetPar(name string) (string, error) {
	if err := service.checkOpen("GetPar"); err != nil {
		return "", err
	}
	if name == "" {
		return "", errors.New("AzcamServiceInstance/GetPar: parameter name is required")
	}
	return service.driver.SendCommandStringReply(formatCommand("get_par", name))
}

func (service *AzcamServiceInstance) SetPar(name string, value string) error {
	if err := service.checkOpen("SetPar"); err != nil {
		return err
	}
	if name == "" {
		return errors.New("AzcamServiceInstance/SetPar: parameter name is required")
	}
	return service.driver.SendCommand(formatCommand("set_par", name, value))
}

func (service *AzcamServiceInstance) GetAbortFlag() (bool, error) {
	if err := service.checkOpen("GetAbortFlag"); err != nil {
		return false, err
	}
	return service.driver.SendCommandBoolReply(formatCommand("get_par", "abortflag"))
}

func (service *AzcamServiceInstance) GetFocus(component FocusComponent) (float64, error) {
	if err := service.checkOpen("GetFocus"); err != nil {
		return 0.0, err
	}
	if !component.IsValid() {
		return 0.0, fmt.Errorf("AzcamServiceInstance/GetFocus: unknown focus component %q", component)
	}
	return service.driver.SendCommandFloatReply(string(component) + ".get_focus")
}

// SetFocus moves the focus mechanism. For FocusTypeStep the value is a relative increment,
// for FocusTypeAbsolute a target position.
func (service *AzcamServiceInstance) SetFocus(value float64, component FocusComponent, focusType FocusType) error {
	if err := service.checkOpen("SetFocus"); err != nil {
		return err
	}
	if !component.IsValid() {
		return fmt.Errorf("AzcamServiceInstance/SetFocus: unknown focus component %q", component)
	}
	if !focusType.IsValid() {
		return fmt.Errorf("AzcamServiceInstance/SetFocus: unknown focus type %q", focusType)
	}
	const focusID = 0
	return service.driver.SendCommand(formatCommand(string(component)+".set_focus", value, focusID, string(focusType)))
}

// ParShift shifts the detector charge by the given number of rows
func (service *AzcamServiceInstance) ParShift(rows int) error {
	if err := service.checkOpen("ParShift"); err != nil {
		return err
	}
	return service.driver.SendCommand(formatCommand("controller.parshift", rows))
}

func (service *AzcamServiceInstance) StartIdle() error {
	if err := service.checkOpen("StartIdle"); err != nil {
		return err
	}
	return service.driver.SendCommand("controller.start_idle")
}

func (service *AzcamServiceInstance) StopIdle() error {
	if err := service.checkOpen("StopIdle"); err != nil {
		return err
	}
	return service.driver.SendCommand("controller.stop_idle")
}

// SetBiasNumber sets a bias DAC. dacType is VID or CLK.
func (service *AzcamServiceInstance) SetBiasNumber(boardNumber int, dac int, dacType string, dacValue int) error {
	if err := service.checkOpen("SetBiasNumber"); err != nil {
		return err
	}
	dacType = strings.ToUpper(dacType)
	if dacType != "VID" && dacType != "CLK" {
		return fmt.Errorf("AzcamServiceInstance/SetBiasNumber: DAC type must be VID or CLK, not %q", dacType)
	}
	command := fmt.Sprintf("controller.set_bias_number %d %d %q %d", boardNumber, dac, dacType, dacValue)
	return service.driver.SendCommand(command)
}

// WriteControllerMemory writes a word to a DSP memory location
func (service *AzcamServiceInstance) WriteControllerMemory(memoryType string, boardNumber int, address int, value int) error {
	if err := service.checkOpen("WriteControllerMemory"); err != nil {
		return err
	}
	memoryType, err := validMemoryType(memoryType)
	if err != nil {
		return err
	}
	command := fmt.Sprintf("controller.write_memory %q %d %d %d", memoryType, boardNumber, address, value)
	return service.driver.SendCommand(command)
}

// ReadControllerMemory reads a word from a DSP memory location
func (service *AzcamServiceInstance) ReadControllerMemory(memoryType string, boardNumber int, address int) (string, error) {
	if err := service.checkOpen("ReadControllerMemory"); err != nil {
		return "", err
	}
	memoryType, err := validMemoryType(memoryType)
	if err != nil {
		return "", err
	}
	command := fmt.Sprintf("controller.read_memory %q %d %d", memoryType, boardNumber, address)
	return service.driver.SendCommandStringReply(command)
}

// BoardCommand sends a specific command to an ARC controller board. The board's reply is
// usually not "OK"; it is often "DON" but could be data, so it is returned as-is.
// Unused arguments are sent as -1.
func (service *AzcamServiceInstance) BoardCommand(command string, boardNumber int, args ...int) (string, error) {
	if err := service.checkOpen("BoardCommand"); err != nil {
		return "", err
	}
	if command == "" {
		return "", errors.New("AzcamServiceInstance/BoardCommand: board command is required")
	}
	if len(args) > maxBoardCommandArgs {
		return "", fmt.Errorf("AzcamServiceInstance/BoardCommand: at most %d arguments, got %d", maxBoardCommandArgs, len(args))
	}
	padded := []int{-1, -1, -1, -1}
	copy(padded, args)
	text := fmt.Sprintf("controller.board_command %q %d %d %d %d %d",
		command, boardNumber, padded[0], padded[1], padded[2], padded[3])
	return service.driver.SendCommandStringReply(text)
}

func validMemoryType(memoryType string) (string, error) {
	memoryType = strings.ToUpper(memoryType)
	switch memoryType {
	case "P", "X", "Y", "R":
		return memoryType, nil
	}
	return "", fmt.Errorf("memory type must be one of P, X, Y, R, not %q", memoryType)
}
