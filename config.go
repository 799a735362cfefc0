package apns

import (
	"bytes"
	"crypto/tls"
	"encoding/json"
	"encoding/pem"
	"errors"
	"os"
	"regexp"
	"strings"
)

// Config describes the configuration for connecting to APNS.
type Config struct {
	BundleID    string // application identifier
	Sandbox     bool   // development environment flag
	Certificate tls.Certificate
}

// LoadConfig loads and returns the APNS configuration from a JSON file.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	config := new(Config)
	if err = json.Unmarshal(data, config); err != nil {
		return nil, err
	}
	return config, nil
}

// Client returns a new initialized Client based on this configuration.
func (config *Config) Client() *Client {
	client := New(config.Certificate)
	if config.Sandbox {
		client.Host = HostDevelopment
	}
	return client
}

// UnmarshalJSON restores the configuration from JSON.
func (config *Config) UnmarshalJSON(data []byte) error {
	dataJSON := new(ConfigJSON)
	if err := json.Unmarshal(data, dataJSON); err != nil {
		return err
	}
	cert, err := tls.X509KeyPair(bytes.Join(dataJSON.Certificate, []byte{'\n'}),
		dataJSON.PrivateKey)
	if err != nil {
		return err
	}
	*config = Config{
		BundleID:    dataJSON.BundleID,
		Sandbox:     dataJSON.Sandbox,
		Certificate: cert,
	}
	return nil
}

// ConfigJSON describes the structure of the configuration in JSON format.
type ConfigJSON struct {
	Type        string   `json:"type"`
	BundleID    string   `json:"bundleId"`
	Sandbox     bool     `json:"sandbox,omitempty"`
	Certificate [][]byte `json:"certificate"`
	PrivateKey  []byte   `json:"privateKey"`
}

// CreateConfig creates a configuration description, loading the
// certificate and the private key from the specified PEM files. If the
// bundle id is empty, it tries to find it in the certificate subject.
func CreateConfig(bundleID, certFile, keyFile string, sandbox bool) (*ConfigJSON, error) {
	certPEMBlock, err := os.ReadFile(certFile)
	if err != nil {
		return nil, err
	}
	if bundleID == "" {
		bundleIDs := regexp.MustCompile(`subject=\/UID=([\w\.\-]{3,})\/`).
			FindStringSubmatch(string(certPEMBlock))
		if len(bundleIDs) > 1 {
			bundleID = bundleIDs[1]
		}
	}

	keyPEMBlock, err := os.ReadFile(keyFile)
	if err != nil {
		return nil, err
	}
	if _, err = tls.X509KeyPair(certPEMBlock, keyPEMBlock); err != nil {
		return nil, err
	}

	cert := make([][]byte, 0, 2)
	var certDERBlock *pem.Block
	for {
		certDERBlock, certPEMBlock = pem.Decode(certPEMBlock)
		if certDERBlock == nil {
			break
		}
		if certDERBlock.Type == "CERTIFICATE" {
			cert = append(cert, pem.EncodeToMemory(certDERBlock))
		}
	}
	if len(cert) == 0 {
		return nil, errors.New("no certificates found")
	}

	var keyDERBlock *pem.Block
	for {
		keyDERBlock, keyPEMBlock = pem.Decode(keyPEMBlock)
		if keyDERBlock == nil {
			return nil, errors.New("failed to parse key PEM data")
		}
		if keyDERBlock.Type == "PRIVATE KEY" ||
			strings.HasSuffix(keyDERBlock.Type, " PRIVATE KEY") {
			break
		}
	}

	config := &ConfigJSON{
		Type:        "apns",
		BundleID:    bundleID,
		Sandbox:     sandbox,
		Certificate: cert,
		PrivateKey:  pem.EncodeToMemory(keyDERBlock),
	}
	return config, nil
}
