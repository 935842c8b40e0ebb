package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

var (
	// ErrCredentialMissing the key file does not exist
	ErrCredentialMissing = errors.New("credential file not found")
	// ErrCredentialInvalid the key file cannot be parsed or has no KEY
	ErrCredentialInvalid = errors.New("credential file invalid")
)

// LoadAPIKey reads the developer key from a JSON file of the form {"KEY": "..."}
func LoadAPIKey(path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCredentialMissing, path, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")
	if err := v.ReadInConfig(); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrCredentialInvalid, path, err)
	}

	key := strings.TrimSpace(v.GetString("KEY"))
	if key == "" {
		return "", fmt.Errorf("%w: %s: KEY is empty", ErrCredentialInvalid, path)
	}
	return key, nil
}
