package commands

import (
	"strings"

	"github.com/looprevenue/loop-cms/internal/logging"
	"github.com/looprevenue/loop-cms/pkg/interfaces"
)

const commandModuleRoot = "loopcms.commands"

// CommandLogger returns a module-scoped logger for command handlers with
// consistent structured fields.
func CommandLogger(provider interfaces.LoggerProvider, module string) interfaces.Logger {
	name := strings.TrimSpace(module)
	if name == "" {
		name = "core"
	}
	logger := logging.ModuleLogger(provider, commandModuleRoot+"."+name)
	return logging.WithFields(logger, map[string]any{
		"component":      "command",
		"command_module": name,
	})
}
