// Package configuration implements the compiled-in target description of the
// sandbox helper and the optional environment-file overrides around it.
package configuration

import (
	"log/slog"

	"github.com/riccardosarro/sandboxfix/internal/schema"
)

const (
	// DefaultBrowserRoot is where the Burp embedded browser unpacks to on a
	// standard Professional installation.
	DefaultBrowserRoot = "/opt/BurpSuitePro/burpbrowser"

	// HelperName is the file name of the sandbox helper binary. It is not
	// overridable; the tool repairs exactly one kind of target.
	HelperName = "chrome-sandbox"

	// RequiredOwner is the owner the helper must have to function.
	RequiredOwner = "root"

	// RequiredMode is the setuid permission mode the helper must carry.
	RequiredMode = "4755"

	// OverrideFile is the optional environment file consulted at startup.
	OverrideFile = "/etc/sandboxfix.env"

	SettingBrowserRoot = "SANDBOXFIX_BROWSER_ROOT"
	SettingLogLevel    = "SANDBOXFIX_LOG_LEVEL"
)

type envProvider interface {
	Read(filenames ...string) (map[string]string, error)
}

// Settings is the principal structure holding the program configuration.
type Settings struct {
	Target   schema.Target
	LogLevel slog.Level
}

// Handler is the principal implementation structure of the package.
type Handler struct {
	envHandler envProvider
}

// NewHandler returns a pointer to a new configuration [Handler].
func NewHandler(envHandler envProvider) *Handler {
	return &Handler{
		envHandler: envHandler,
	}
}

// Load returns the program [Settings]: the compiled-in defaults, with the
// browser root and log level taken from overrideFile where present. A missing
// or unreadable override file is not an error and yields the defaults. The
// helper name, required owner and required mode are never overridable.
func (c *Handler) Load(overrideFile string) *Settings {
	settings := &Settings{
		Target: schema.Target{
			BrowserRoot: DefaultBrowserRoot,
			HelperName:  HelperName,
			Owner:       RequiredOwner,
			Mode:        RequiredMode,
		},
		LogLevel: slog.LevelInfo,
	}

	envMap, err := c.envHandler.Read(overrideFile)
	if err != nil {
		return settings
	}

	if root := envMap[SettingBrowserRoot]; root != "" {
		settings.Target.BrowserRoot = root
	}

	if level := envMap[SettingLogLevel]; level != "" {
		var parsed slog.Level
		if err := parsed.UnmarshalText([]byte(level)); err == nil {
			settings.LogLevel = parsed
		}
	}

	return settings
}
