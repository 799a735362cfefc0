package apns

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	cert, key := newTestCertificate(t)
	certFile, keyFile := writePEM(t, cert, key)

	configJSON, err := CreateConfig("com.example.app", certFile, keyFile, true)
	require.NoError(t, err)
	assert.Equal(t, "apns", configJSON.Type)
	assert.Equal(t, "com.example.app", configJSON.BundleID)
	assert.True(t, configJSON.Sandbox)
	assert.Len(t, configJSON.Certificate, 1)
	assert.NotEmpty(t, configJSON.PrivateKey)

	data, err := json.Marshal(configJSON)
	require.NoError(t, err)
	filename := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(filename, data, 0600))

	config, err := LoadConfig(filename)
	require.NoError(t, err)
	assert.Equal(t, "com.example.app", config.BundleID)
	assert.True(t, config.Sandbox)
	assert.NotEmpty(t, config.Certificate.Certificate)

	client := config.Client()
	assert.Equal(t, HostDevelopment, client.Host)
}

func TestLoadConfigNotFound(t *testing.T) {
	config, err := LoadConfig("notexists.json")
	assert.Nil(t, config)
	assert.Error(t, err)
}

func TestCreateConfigMissingFiles(t *testing.T) {
	_, err := CreateConfig("com.example.app", "no-cert.pem", "no-key.pem", false)
	assert.Error(t, err)
}

func TestConfigUnmarshalBadCertificate(t *testing.T) {
	config := new(Config)
	err := json.Unmarshal([]byte(`{
		"type": "apns",
		"bundleId": "com.example.app",
		"certificate": ["YmFk"],
		"privateKey": "YmFk"
	}`), config)
	assert.Error(t, err)
}
