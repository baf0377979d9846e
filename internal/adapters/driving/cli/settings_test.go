package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsCmd_HasSubcommands(t *testing.T) {
	commands := settingsCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "set")
}

func TestSettingsShowCmd_Defaults(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runCommand("settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Address: 127.0.0.1:5000")
	assert.Contains(t, out, "Shutdown timeout: 10s")
	assert.Contains(t, out, "Data directory: (default)")
	assert.Contains(t, out, "Level: info")
	assert.Contains(t, out, "Enabled: no")
	assert.Contains(t, out, "Configuration is valid.")
}

func TestSettingsCmd_DefaultsToShow(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runCommand("settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
}

func TestSettingsSetCmd(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runCommand("settings", "set", "rate_limit.requests_per_second", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Set rate_limit.requests_per_second to: 5")

	show, err := runCommand("settings", "show")
	require.NoError(t, err)
	assert.Contains(t, show, "Enabled: yes")
	assert.Contains(t, show, "Requests per second: 5")
	assert.Contains(t, show, "Burst: 20")
}

func TestSettingsSetCmd_Errors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := runCommand("settings", "set", "colour", "blue")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown setting")
	assert.Contains(t, err.Error(), "server.address")

	_, err = runCommand("settings", "set", "log.level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown log level")
}

func TestSettingsShowCmd_InvalidStoredValues(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	require.NoError(t, testConfig.Set("rate_limit.requests_per_second", 3.0))
	require.NoError(t, testConfig.Set("rate_limit.burst", int64(0)))

	out, err := runCommand("settings", "show")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning:")
}

func TestSettingsCmds_NilService(t *testing.T) {
	SetServices(Services{})

	_, err := runCommand("settings", "show")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")

	_, err = runCommand("settings", "set", "log.level", "debug")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "settings service not configured")
}
