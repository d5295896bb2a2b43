package options

import (
	"errors"
	"strings"
)

const prefix = "--"

var ErrInvalidOptions = errors.New("invalid options")

// Parse converts an option string such as "--amount 100 --description lunch"
// into a map of option name to value. Only the first word after an option
// name is kept; an option without a value maps to the empty string.
func Parse(optionString string) (map[string]string, error) {
	if strings.TrimSpace(optionString) == "" {
		return nil, ErrInvalidOptions
	}

	segments := strings.Split(optionString, prefix)[1:]
	parsed := make(map[string]string, len(segments))

	for _, segment := range segments {
		words := strings.Fields(segment)

		var key, value string
		if len(words) > 0 {
			key = words[0]
		}
		if len(words) > 1 {
			value = words[1]
		}

		parsed[key] = value
	}

	return parsed, nil
}
