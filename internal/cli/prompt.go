package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RMcDOttawa/goAzcamVatt"
	"github.com/charmbracelet/huh"
)

// promptRunParameters asks for the sweep settings, prefilled with the session values.
// Only fields listed in ask are prompted for.
func promptRunParameters(current goAzcamVatt.FocusParameters, ask fieldSet) (goAzcamVatt.RunParameters, error) {
	exposureText := strconv.FormatFloat(current.ExposureTime, 'f', -1, 64)
	numberText := strconv.Itoa(current.NumberExposures)
	stepText := strconv.FormatFloat(current.FocusStep, 'f', -1, 64)
	shiftText := strconv.Itoa(current.DetectorShift)

	var fields []huh.Field
	if ask.exposureTime {
		fields = append(fields, huh.NewInput().
			Title("Exposure time (sec)").
			Value(&exposureText).
			Validate(validateExposureTime))
	}
	if ask.numberExposures {
		fields = append(fields, huh.NewInput().
			Title("Number of exposures").
			Value(&numberText).
			Validate(validateNumberExposures))
	}
	if ask.focusStep {
		fields = append(fields, huh.NewInput().
			Title("Focus step size").
			Value(&stepText).
			Validate(validateFloat))
	}
	if ask.detectorShift {
		fields = append(fields, huh.NewInput().
			Title("Number of rows to shift").
			Value(&shiftText).
			Validate(validateDetectorShift))
	}

	var params goAzcamVatt.RunParameters
	if len(fields) == 0 {
		return params, nil
	}
	if err := huh.NewForm(huh.NewGroup(fields...)).Run(); err != nil {
		return params, fmt.Errorf("focus parameters: %w", err)
	}

	// Values were validated by the form
	if ask.exposureTime {
		value, _ := strconv.ParseFloat(strings.TrimSpace(exposureText), 64)
		params.ExposureTime = &value
	}
	if ask.numberExposures {
		value, _ := strconv.Atoi(strings.TrimSpace(numberText))
		params.NumberExposures = &value
	}
	if ask.focusStep {
		value, _ := strconv.ParseFloat(strings.TrimSpace(stepText), 64)
		params.FocusStep = &value
	}
	if ask.detectorShift {
		value, _ := strconv.Atoi(strings.TrimSpace(shiftText))
		params.DetectorShift = &value
	}
	return params, nil
}

func validateFloat(text string) error {
	if _, err := strconv.ParseFloat(strings.TrimSpace(text), 64); err != nil {
		return fmt.Errorf("%q is not a number", text)
	}
	return nil
}

func validateExposureTime(text string) error {
	value, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return fmt.Errorf("%q is not a number", text)
	}
	if value < 0 {
		return fmt.Errorf("exposure time must not be negative")
	}
	return nil
}

func validateNumberExposures(text string) error {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("%q is not a whole number", text)
	}
	if value < 1 {
		return fmt.Errorf("at least one exposure is needed")
	}
	return nil
}

func validateDetectorShift(text string) error {
	value, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return fmt.Errorf("%q is not a whole number", text)
	}
	if value < 0 {
		return fmt.Errorf("row shift must not be negative")
	}
	return nil
}
