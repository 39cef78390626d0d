package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalYAML = `
telegram:
  token: "123:abc"
  admin_ids: [42]
payments:
  telebirr:
    phone: "+251900000000"
    name: "Owner"
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalYAML))
	require.NoError(t, err)

	assert.Equal(t, "data", cfg.Storage.Dir)
	assert.Equal(t, filepath.Join("data", "services.json"), cfg.ServicesPath())
	assert.Equal(t, filepath.Join("data", "welcome_image.json"), cfg.WelcomeImagePath())
	assert.Equal(t, "longpoll", cfg.Core.Telegram.RunMode)
	assert.True(t, cfg.Core.Telegram.IsAdmin(42))
	assert.False(t, cfg.Core.Telegram.IsAdmin(7))
}

func TestLoadConfigPaymentMethods(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, minimalYAML))
	require.NoError(t, err)
	assert.Equal(t, []string{"TeleBirr"}, cfg.PaymentMethods())

	both := minimalYAML + `
  cbe:
    account: "1000"
    name: "Owner"
`
	cfg, err = LoadConfig(writeConfig(t, both))
	require.NoError(t, err)
	assert.Equal(t, []string{"TeleBirr", "CBE"}, cfg.PaymentMethods())
}

func TestLoadConfigRequiresPaymentDestination(t *testing.T) {
	body := `
telegram:
  token: "123:abc"
  admin_ids: [42]
`
	_, err := LoadConfig(writeConfig(t, body))
	assert.Error(t, err)
}

func TestLoadConfigRequiresAdmins(t *testing.T) {
	body := `
telegram:
  token: "123:abc"
payments:
  telebirr:
    phone: "1"
    name: "x"
`
	_, err := LoadConfig(writeConfig(t, body))
	assert.Error(t, err)
}

func TestLoadConfigAbsoluteStoragePaths(t *testing.T) {
	body := minimalYAML + `
storage:
  dir: /var/lib/premiumbot
  services_file: /etc/premiumbot/services.json
`
	cfg, err := LoadConfig(writeConfig(t, body))
	require.NoError(t, err)
	assert.Equal(t, "/etc/premiumbot/services.json", cfg.ServicesPath())
	assert.Equal(t, filepath.Join("/var/lib/premiumbot", "welcome_image.json"), cfg.WelcomeImagePath())
}
