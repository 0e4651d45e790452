package cli

import (
	"fmt"
	"strconv"

	"github.com/RMcDOttawa/goAzcamVatt"
	"github.com/spf13/cobra"
)

var controllerCmd = &cobra.Command{
	Use:   "controller",
	Short: "Send low-level commands to the ARC controller",
}

var startIdleCmd = &cobra.Command{
	Use:   "start-idle",
	Short: "Start continuous detector clearing",
	Args:  cobra.NoArgs,
	RunE: withService(func(cmd *cobra.Command, service goAzcamVatt.AzcamService, args []string) error {
		return service.StartIdle()
	}),
}

var stopIdleCmd = &cobra.Command{
	Use:   "stop-idle",
	Short: "Stop continuous detector clearing",
	Args:  cobra.NoArgs,
	RunE: withService(func(cmd *cobra.Command, service goAzcamVatt.AzcamService, args []string) error {
		return service.StopIdle()
	}),
}

var setBiasCmd = &cobra.Command{
	Use:   "set-bias BOARD DAC VID|CLK VALUE",
	Short: "Set a bias DAC on a controller board",
	Args:  cobra.ExactArgs(4),
	RunE: withService(func(cmd *cobra.Command, service goAzcamVatt.AzcamService, args []string) error {
		numbers, err := parseIntegers(args[0], args[1], args[3])
		if err != nil {
			return err
		}
		return service.SetBiasNumber(numbers[0], numbers[1], args[2], numbers[2])
	}),
}

var writeMemoryCmd = &cobra.Command{
	Use:   "write-memory P|X|Y|R BOARD ADDRESS VALUE",
	Short: "Write a word to DSP memory",
	Args:  cobra.ExactArgs(4),
	RunE: withService(func(cmd *cobra.Command, service goAzcamVatt.AzcamService, args []string) error {
		numbers, err := parseIntegers(args[1:]...)
		if err != nil {
			return err
		}
		return service.WriteControllerMemory(args[0], numbers[0], numbers[1], numbers[2])
	}),
}

var readMemoryCmd = &cobra.Command{
	Use:   "read-memory P|X|Y|R BOARD ADDRESS",
	Short: "Read a word from DSP memory",
	Args:  cobra.ExactArgs(3),
	RunE: withService(func(cmd *cobra.Command, service goAzcamVatt.AzcamService, args []string) error {
		numbers, err := parseIntegers(args[1:]...)
		if err != nil {
			return err
		}
		value, err := service.ReadControllerMemory(args[0], numbers[0], numbers[1])
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	}),
}

var boardCommandCmd = &cobra.Command{
	Use:   "board-command COMMAND BOARD [ARG...]",
	Short: "Send a command to a controller board and print its reply",
	Args:  cobra.RangeArgs(2, 6),
	RunE: withService(func(cmd *cobra.Command, service goAzcamVatt.AzcamService, args []string) error {
		numbers, err := parseIntegers(args[1:]...)
		if err != nil {
			return err
		}
		reply, err := service.BoardCommand(args[0], numbers[0], numbers[1:]...)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), reply)
		return nil
	}),
}

func init() {
	controllerCmd.AddCommand(startIdleCmd, stopIdleCmd, setBiasCmd, writeMemoryCmd, readMemoryCmd, boardCommandCmd)
	rootCmd.AddCommand(controllerCmd)
}

// withService connects to azcam around a controller command
func withService(run func(cmd *cobra.Command, service goAzcamVatt.AzcamService, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		service, err := connectService()
		if err != nil {
			return err
		}
		defer closeService(service)
		if err := run(cmd, service, args); err != nil {
			return fmt.Errorf("%s: %w", cmd.Name(), err)
		}
		return nil
	}
}

// parseIntegers accepts decimal or 0x-prefixed hexadecimal values
func parseIntegers(texts ...string) ([]int, error) {
	numbers := make([]int, 0, len(texts))
	for _, text := range texts {
		value, err := strconv.ParseInt(text, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", text)
		}
		numbers = append(numbers, int(value))
	}
	return numbers, nil
}
