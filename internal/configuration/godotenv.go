package configuration

import (
	"fmt"

	"github.com/joho/godotenv"
)

// GodotenvProvider parses env-format override files through the godotenv
// framework.
type GodotenvProvider struct{}

// Read parses the given override files into a flat map (map[key]value), for
// the [Handler] to pick the recognized settings out of.
func (*GodotenvProvider) Read(filenames ...string) (map[string]string, error) {
	data, err := godotenv.Read(filenames...)
	if err != nil {
		return data, fmt.Errorf("(config-env) %w", err)
	}

	return data, nil
}
