// Package configuration reads the optional user configuration file and maps
// its keys onto typed application settings.
package configuration

import (
	"strconv"
)

type genericConfigProvider interface {
	Read(filenames ...string) (envMap map[string]string, err error)
}

// Handler is the principal structure for configuration reading.
type Handler struct {
	ConfigProvider genericConfigProvider
}

// NewHandler returns a pointer to a new [Handler].
func NewHandler(configProvider genericConfigProvider) *Handler {
	return &Handler{
		ConfigProvider: configProvider,
	}
}

// ReadGeneric reads Unix-type configuration files into a map (map[key]value),
// wrapping the previously given [genericConfigProvider] implementation.
func (c *Handler) ReadGeneric(filenames ...string) (map[string]string, error) {
	return c.ConfigProvider.Read(filenames...)
}

// MapKeyToString maps a configuration key to its string value, with an empty
// string for a missing key.
func (c *Handler) MapKeyToString(envMap map[string]string, key string) string {
	if value, exists := envMap[key]; exists {
		return value
	}

	return ""
}

// MapKeyToInt maps a configuration key to its integer value, with -1 for a
// missing or unparseable key.
func (c *Handler) MapKeyToInt(envMap map[string]string, key string) int {
	value := c.MapKeyToString(envMap, key)
	if value == "" {
		return -1
	}

	intValue, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}

	return intValue
}
