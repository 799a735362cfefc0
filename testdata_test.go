package apns

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gopkcs12 "software.sslmate.com/src/go-pkcs12"
)

// newTestCertificate generates a self-signed certificate with a subject
// resembling an Apple push certificate.
func newTestCertificate(t *testing.T) (*x509.Certificate, *rsa.PrivateKey) {
	t.Helper()
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	template := &x509.Certificate{
		SerialNumber: big.NewInt(1),
		Subject: pkix.Name{
			CommonName:         "Apple Push Services: com.example.app",
			Organization:       []string{"Example Org"},
			OrganizationalUnit: []string{"EX4MPL3T3M"},
			Country:            []string{"US"},
		},
		NotBefore: time.Now().Add(-time.Hour),
		NotAfter:  time.Now().Add(24 * time.Hour),
		KeyUsage:  x509.KeyUsageDigitalSignature | x509.KeyUsageKeyEncipherment,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template,
		&key.PublicKey, key)
	require.NoError(t, err)
	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)
	return cert, key
}

// writeP12 stores the certificate and key as a password protected PKCS#12
// file in a temporary directory and returns its name.
func writeP12(t *testing.T, cert *x509.Certificate, key *rsa.PrivateKey,
	password string) string {
	t.Helper()
	data, err := gopkcs12.Encode(rand.Reader, key, cert, nil, password)
	require.NoError(t, err)
	filename := filepath.Join(t.TempDir(), "cert.p12")
	require.NoError(t, os.WriteFile(filename, data, 0600))
	return filename
}

// writePEM stores the certificate and key as PEM files in a temporary
// directory and returns their names.
func writePEM(t *testing.T, cert *x509.Certificate, key *rsa.PrivateKey) (certFile, keyFile string) {
	t.Helper()
	dir := t.TempDir()
	certFile = filepath.Join(dir, "cert.pem")
	certPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "CERTIFICATE",
		Bytes: cert.Raw,
	})
	require.NoError(t, os.WriteFile(certFile, certPEM, 0600))
	keyFile = filepath.Join(dir, "key.pem")
	keyPEM := pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(key),
	})
	require.NoError(t, os.WriteFile(keyFile, keyPEM, 0600))
	return certFile, keyFile
}
