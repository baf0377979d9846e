package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/bakehouse/internal/core/domain"
)

func TestBakeryCmd_Use(t *testing.T) {
	assert.Equal(t, "bakery", bakeryCmd.Use)
}

func TestBakeryCmd_HasSubcommands(t *testing.T) {
	commands := bakeryCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "add")
	assert.Contains(t, commandNames, "rename")
}

func TestBakeryListCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runCommand("bakery", "list")

	require.NoError(t, err)
	assert.Contains(t, out, "1  Delightful Donuts")
	assert.Contains(t, out, "2  Incredible Crullers")
	assert.Contains(t, out, "Total: 2 bakeries")
}

func TestBakeryListCmd_NilService(t *testing.T) {
	SetServices(Services{})

	_, err := runCommand("bakery", "list")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bakery service not configured")
}

func TestBakeryAddCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runCommand("bakery", "add", "Bagel Barn")

	require.NoError(t, err)
	assert.Contains(t, out, "Added bakery 3: Bagel Barn")

	list, err := runCommand("bakery", "list")
	require.NoError(t, err)
	assert.Contains(t, list, "Bagel Barn")
}

func TestBakeryAddCmd_Duplicate(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := runCommand("bakery", "add", "Delightful Donuts")

	assert.ErrorIs(t, err, domain.ErrAlreadyExists)
}

func TestBakeryAddCmd_RequiresExactlyOneArg(t *testing.T) {
	_, err := runCommand("bakery", "add")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "accepts 1 arg(s)")
}

func TestBakeryRenameCmd_Executes(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	out, err := runCommand("bakery", "rename", "1", "Donut Palace")

	require.NoError(t, err)
	assert.Contains(t, out, "Renamed bakery 1 to: Donut Palace")
}

func TestBakeryRenameCmd_Errors(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := runCommand("bakery", "rename", "99", "Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = runCommand("bakery", "rename", "one", "Ghost")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an integer")
}

func TestParseID(t *testing.T) {
	id, err := parseID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	_, err = parseID("4.2")
	assert.Error(t, err)
}
