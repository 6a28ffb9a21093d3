package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSubcommands verifies every subcommand is registered on the
// root command.
func TestSubcommands(t *testing.T) {
	want := []string{
		"create", "migrate", "copy", "fix", "import", "seed", "serve",
	}

	registered := make(map[string]bool)
	for _, sub := range rootCmd.Commands() {
		registered[sub.Name()] = true
	}

	for _, name := range want {
		assert.True(t, registered[name],
			"%s command should be registered", name)
	}
}

// TestGetCreateCmd verifies the create command and its flags.
func TestGetCreateCmd(t *testing.T) {
	cmd := getCreateCmd()
	require.NotNil(t, cmd, "Create command should exist")
	assert.Equal(t, "create", cmd.Use,
		"Command name should be create")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
	assert.Contains(t, cmd.Long, "GORM AutoMigrate",
		"Long description should mention GORM")

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag, "--force flag should exist")
	assert.Equal(t, "f", forceFlag.Shorthand,
		"Short form should be -f")
	assert.Equal(t, "false", forceFlag.DefValue,
		"Default should be false")
}

// TestGetMigrateCmd verifies the migrate command.
func TestGetMigrateCmd(t *testing.T) {
	cmd := getMigrateCmd()
	require.NotNil(t, cmd, "Migrate command should exist")
	assert.Equal(t, "migrate", cmd.Use,
		"Command name should be migrate")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
	assert.Contains(t, cmd.Long, "categories",
		"Long description should mention categories")
}

// TestGetCopyCmd verifies the copy command.
func TestGetCopyCmd(t *testing.T) {
	cmd := getCopyCmd()
	require.NotNil(t, cmd, "Copy command should exist")
	assert.Equal(t, "copy", cmd.Use,
		"Command name should be copy")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
	assert.Contains(t, cmd.Long, ".gitignore",
		"Long description should mention .gitignore")
}

// TestGetFixCmd verifies the fix command.
func TestGetFixCmd(t *testing.T) {
	cmd := getFixCmd()
	require.NotNil(t, cmd, "Fix command should exist")
	assert.Equal(t, "fix", cmd.Use,
		"Command name should be fix")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
}

// TestGetImportCmd verifies the import command and its flags.
func TestGetImportCmd(t *testing.T) {
	cmd := getImportCmd()
	require.NotNil(t, cmd, "Import command should exist")
	assert.Equal(t, "import", cmd.Use,
		"Command name should be import")
	assert.NotNil(t, cmd.RunE, "RunE should be set")

	dataFlag := cmd.Flags().Lookup("data-file")
	require.NotNil(t, dataFlag, "--data-file flag should exist")
	assert.Equal(t, "d", dataFlag.Shorthand,
		"Short form should be -d")
	assert.Equal(t, "", dataFlag.DefValue,
		"Default should be empty")
}

// TestGetSeedCmd verifies the seed command.
func TestGetSeedCmd(t *testing.T) {
	cmd := getSeedCmd()
	require.NotNil(t, cmd, "Seed command should exist")
	assert.Equal(t, "seed", cmd.Use,
		"Command name should be seed")
	assert.NotNil(t, cmd.RunE, "RunE should be set")
}

// TestGetServeCmd verifies the serve command and its flags.
func TestGetServeCmd(t *testing.T) {
	cmd := getServeCmd()
	require.NotNil(t, cmd, "Serve command should exist")
	assert.Equal(t, "serve", cmd.Use,
		"Command name should be serve")
	assert.NotNil(t, cmd.RunE, "RunE should be set")

	portFlag := cmd.Flags().Lookup("port")
	require.NotNil(t, portFlag, "--port flag should exist")
	assert.Equal(t, "p", portFlag.Shorthand,
		"Short form should be -p")
}
