package goAzcamVatt

import (
	"bufio"
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// AzcamDriver is the low-level interface to the azcam command server running somewhere on the
// network. Controlling azcam involves sending one-line text commands over a TCP socket and
// reading back a one-line reply of the form "OK [payload]" or "ERROR message".

type AzcamDriver interface {
	Connect(server string, port int) error
	Close() error
	SendCommand(command string) error
	SendCommandStringReply(command string) (string, error)
	SendCommandFloatReply(command string) (float64, error)
	SendCommandBoolReply(command string) (bool, error)
	SendLongCommand(command string, timeoutSeconds float64) error
	SetDebug(debug bool)
	SetVerbosity(verbosity int)
}

type AzcamDriverInstance struct {
	isOpen         bool
	server         string
	port           int
	commandTimeout time.Duration
	debug          bool
	verbosity      int
	logger         zerolog.Logger
}

const defaultCommandTimeoutSeconds = 30.0
const commandTerminator = "\r\n"

// ControllerError is returned when the azcam server rejects a command with an ERROR reply.
// Transport failures (socket, timeout) are never ControllerErrors.
type ControllerError struct {
	Command string
	Message string
}

func (e *ControllerError) Error() string {
	return fmt.Sprintf("azcam error on %q: %s", e.Command, e.Message)
}

// IsControllerError reports whether err came from the azcam server rejecting a command
func IsControllerError(err error) bool {
	var controllerError *ControllerError
	return errors.As(err, &controllerError)
}

// NewAzcamDriver is the constructor for a working instance of the interface
func NewAzcamDriver(debug bool, verbosity int, logger zerolog.Logger) AzcamDriver {
	driver := &AzcamDriverInstance{
		commandTimeout: time.Duration(defaultCommandTimeoutSeconds * float64(time.Second)),
		debug:          debug,
		verbosity:      verbosity,
		logger:         logger,
	}
	return driver
}

func (driver *AzcamDriverInstance) SetDebug(debug bool) {
	driver.debug = debug
}

func (driver *AzcamDriverInstance) SetVerbosity(verbosity int) {
	driver.verbosity = verbosity
}

func (driver *AzcamDriverInstance) tracing() bool {
	return driver.verbosity >= 4 || driver.debug
}

// Connect remembers the server coordinates. The socket itself is opened per command,
// so a server restart between commands is harmless.
func (driver *AzcamDriverInstance) Connect(server string, port int) error {
	if driver.tracing() {
		driver.logger.Debug().Str("server", server).Int("port", port).Msg("AzcamDriverInstance/Connect entered")
	}
	if driver.isOpen {
		driver.logger.Debug().Str("server", server).Int("port", port).Msg("AzcamDriverInstance/Connect: already connected")
		return nil
	}
	if server == "" {
		return errors.New("AzcamDriverInstance/Connect: server name is required")
	}
	if port <= 0 || port > 65535 {
		return fmt.Errorf("AzcamDriverInstance/Connect: invalid port %d", port)
	}
	driver.server = server
	driver.port = port
	driver.isOpen = true
	return nil
}

// Close forgets the server coordinates
func (driver *AzcamDriverInstance) Close() error {
	if !driver.isOpen {
		driver.logger.Debug().Msg("AzcamDriverInstance/Close: not open")
		return nil
	}
	driver.isOpen = false
	return nil
}

// SendCommand sends a command where only success or failure matters.
func (driver *AzcamDriverInstance) SendCommand(command string) error {
	_, err := driver.sendCommand(command, driver.commandTimeout)
	return err
}

// SendLongCommand is SendCommand with a caller-supplied deadline, for commands such as
// integration that block on the server for the length of an exposure.
func (driver *AzcamDriverInstance) SendLongCommand(command string, timeoutSeconds float64) error {
	timeout := time.Duration(timeoutSeconds * float64(time.Second))
	if timeout < driver.commandTimeout {
		timeout = driver.commandTimeout
	}
	_, err := driver.sendCommand(command, timeout)
	return err
}

// SendCommandStringReply returns the reply payload with the OK status removed.
func (driver *AzcamDriverInstance) SendCommandStringReply(command string) (string, error) {
	return driver.sendCommand(command, driver.commandTimeout)
}

func (driver *AzcamDriverInstance) SendCommandFloatReply(command string) (float64, error) {
	payload, err := driver.sendCommand(command, driver.commandTimeout)
	if err != nil {
		return 0.0, err
	}
	parsed, err := strconv.ParseFloat(payload, 64)
	if err != nil {
		return 0.0, fmt.Errorf("AzcamDriverInstance/SendCommandFloatReply: error parsing %q: %w", payload, err)
	}
	return parsed, nil
}

// SendCommandBoolReply accepts the numeric (0/1) and python-style (True/False) spellings azcam uses.
func (driver *AzcamDriverInstance) SendCommandBoolReply(command string) (bool, error) {
	payload, err := driver.sendCommand(command, driver.commandTimeout)
	if err != nil {
		return false, err
	}
	switch strings.ToLower(payload) {
	case "1", "true":
		return true, nil
	case "0", "false", "":
		return false, nil
	}
	return false, fmt.Errorf("AzcamDriverInstance/SendCommandBoolReply: unexpected reply %q", payload)
}

// sendCommand is an internal method that sends one command line to the server and
// returns the reply payload.
func (driver *AzcamDriverInstance) sendCommand(command string, timeout time.Duration) (string, error) {
	if !driver.isOpen {
		return "", errors.New("AzcamDriverInstance/sendCommand: Connection not open")
	}
	if driver.tracing() {
		driver.logger.Debug().Str("command", command).Msg("AzcamDriverInstance/sendCommand")
	}

	address := net.JoinHostPort(driver.server, strconv.Itoa(driver.port))
	conn, err := net.DialTimeout("tcp", address, driver.commandTimeout)
	if err != nil {
		return "", fmt.Errorf("AzcamDriverInstance/sendCommand: opening socket to %s: %w", address, err)
	}
	defer func(conn net.Conn) {
		_ = conn.Close()
	}(conn)

	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return "", fmt.Errorf("AzcamDriverInstance/sendCommand: setting deadline: %w", err)
	}

	message := command + commandTerminator
	numWritten, err := conn.Write([]byte(message))
	if err != nil {
		return "", fmt.Errorf("AzcamDriverInstance/sendCommand: writing %q: %w", command, err)
	}
	if numWritten != len(message) {
		return "", errors.New("AzcamDriverInstance/sendCommand: wrong number of bytes written")
	}

	reply, err := bufio.NewReader(conn).ReadString('\n')
	if err != nil && reply == "" {
		return "", fmt.Errorf("AzcamDriverInstance/sendCommand: reading reply to %q: %w", command, err)
	}
	if driver.tracing() {
		driver.logger.Debug().Str("command", command).Str("reply", strings.TrimSpace(reply)).Msg("AzcamDriverInstance/sendCommand received")
	}
	return parseReply(command, reply)
}

// parseReply splits "OK payload" / "ERROR message" replies.
func parseReply(command string, reply string) (string, error) {
	reply = strings.TrimSpace(reply)
	status, payload, _ := strings.Cut(reply, " ")
	switch strings.ToUpper(status) {
	case "OK":
		return strings.TrimSpace(payload), nil
	case "ERROR":
		return "", &ControllerError{Command: command, Message: strings.TrimSpace(payload)}
	}
	return "", fmt.Errorf("AzcamDriverInstance/sendCommand: malformed reply %q to %q", reply, command)
}

// formatCommand joins a command with its arguments, quoting any argument containing whitespace
func formatCommand(command string, args ...any) string {
	var builder strings.Builder
	builder.WriteString(command)
	for _, arg := range args {
		builder.WriteString(" ")
		switch value := arg.(type) {
		case string:
			if value == "" || strings.ContainsAny(value, " \t") {
				builder.WriteString(strconv.Quote(value))
			} else {
				builder.WriteString(value)
			}
		case float64:
			builder.WriteString(strconv.FormatFloat(value, 'f', -1, 64))
		default:
			builder.WriteString(fmt.Sprint(value))
		}
	}
	return builder.String()
}
