package apns

import (
	"crypto/tls"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCertificate(t *testing.T) {
	cert, key := newTestCertificate(t)
	filename := writeP12(t, cert, key, "xopen123")

	certificate, err := LoadCertificate(filename, "xopen123")
	require.NoError(t, err)
	require.NotNil(t, certificate)
	require.NotNil(t, certificate.Leaf)
	assert.NotNil(t, certificate.PrivateKey)
	assert.Equal(t, cert.Raw, certificate.Certificate[0])

	info := GetCertificateInfo(*certificate)
	require.NotNil(t, info)
	assert.Equal(t, "Apple Push Services: com.example.app", info.CName)
	assert.Equal(t, info.CName, info.String())
	assert.Equal(t, "Example Org", info.OrgName)
	assert.Equal(t, "EX4MPL3T3M", info.OrgUnit)
	assert.Equal(t, "US", info.Country)
	assert.False(t, info.IsApple)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), info.Expire, time.Minute)
}

func TestLoadCertificateNotFound(t *testing.T) {
	certificate, err := LoadCertificate("notexists.p12", "xopen")
	assert.Nil(t, certificate)
	var certErr *CertificateError
	require.ErrorAs(t, err, &certErr)
	assert.Equal(t, "read", certErr.Op)
	assert.Equal(t, "notexists.p12", certErr.Filename)
	assert.True(t, os.IsNotExist(errors.Unwrap(err)))
}

func TestLoadCertificateBadPassword(t *testing.T) {
	cert, key := newTestCertificate(t)
	filename := writeP12(t, cert, key, "xopen123")

	certificate, err := LoadCertificate(filename, "wrong")
	assert.Nil(t, certificate)
	var certErr *CertificateError
	require.ErrorAs(t, err, &certErr)
	assert.Equal(t, "parse", certErr.Op)
	assert.NotEmpty(t, certErr.Error())
}

func TestLoadCertificateGarbage(t *testing.T) {
	cert, key := newTestCertificate(t)
	filename, _ := writePEM(t, cert, key)

	_, err := LoadCertificate(filename, "")
	var certErr *CertificateError
	require.ErrorAs(t, err, &certErr)
	assert.Equal(t, "parse", certErr.Op)
}

func TestCertificateInfoSupport(t *testing.T) {
	info := &CertificateInfo{
		BundleID: "com.example.app",
		Topics: []string{
			"com.example.app",
			"com.example.app.voip",
			"com.example.app.complication",
		},
	}
	assert.True(t, info.Support("com.example.app"))
	assert.True(t, info.Support("com.example.app.voip"))
	assert.False(t, info.Support("com.example.other"))

	// without the topics extension only the bundle ID is supported
	info.Topics = nil
	assert.True(t, info.Support("com.example.app"))
	assert.False(t, info.Support("com.example.app.voip"))
}

func TestGetCertificateInfoEmpty(t *testing.T) {
	assert.Nil(t, GetCertificateInfo(tls.Certificate{}))
}
