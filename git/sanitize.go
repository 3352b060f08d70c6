package git

import (
	"fmt"
	"strings"

	"timeline/logging"
)

// SanitizeExperimentName transforms a string into a safe experiment branch
// name. Only lowercase letters, digits and hyphens survive.
//
// Sanitization process:
// 1. Lowercase the input
// 2. Replace every other character with '-'
// 3. Collapse consecutive hyphens
// 4. Trim leading/trailing hyphens
// 5. Return error if the result is empty
func SanitizeExperimentName(name string) (string, error) {
	logging.Logger.Debug("Sanitizing experiment name", "input", name)

	if name == "" {
		return "", fmt.Errorf("cannot sanitize empty string")
	}

	var builder strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			builder.WriteRune(r)
		default:
			builder.WriteRune('-')
		}
	}

	result := builder.String()
	for strings.Contains(result, "--") {
		result = strings.ReplaceAll(result, "--", "-")
	}
	result = strings.Trim(result, "-")

	if result == "" {
		return "", fmt.Errorf("sanitization resulted in empty experiment name")
	}

	logging.Logger.Info("Experiment name sanitized", "input", name, "output", result)
	return result, nil
}
