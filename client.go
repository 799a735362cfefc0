package apns

import (
	"context"
	"crypto/tls"
	"encoding/json"
	"net"
	"net/http"
	"strconv"

	kitlog "github.com/go-kit/log"
	"github.com/google/uuid"
	"golang.org/x/net/http2"
)

// Client sends push notifications through the APNS provider API.
//
// A single Client is safe for concurrent use by multiple goroutines: the
// HTTP/2 transport multiplexes concurrent requests over one connection.
// The zero value is not usable, construct the client with New or
// WithCertificate.
type Client struct {
	// Host is the base address of the APNS server. New sets it to
	// HostProduction; assign HostDevelopment to use the sandbox
	// environment.
	Host string
	// CertificateInfo describes the certificate the client presents as its
	// TLS identity. It may be nil if the certificate could not be parsed.
	CertificateInfo *CertificateInfo

	httpClient *http.Client
	logger     kitlog.Logger
}

// New returns an initialized Client that presents the given certificate as
// its TLS client identity. No connection to APNS is established yet: it
// will happen automatically on the first Push.
func New(certificate tls.Certificate) *Client {
	transport := &http2.Transport{
		TLSClientConfig: &tls.Config{
			Certificates: []tls.Certificate{certificate},
		},
		DialTLSContext: func(ctx context.Context, network, addr string,
			cfg *tls.Config) (net.Conn, error) {
			dialer := &tls.Dialer{
				NetDialer: &net.Dialer{Timeout: TimeoutConnect},
				Config:    cfg,
			}
			return dialer.DialContext(ctx, network, addr)
		},
	}
	return &Client{
		Host:            HostProduction,
		CertificateInfo: GetCertificateInfo(certificate),
		httpClient: &http.Client{
			Transport: transport,
			Timeout:   TimeoutRead,
		},
		logger: kitlog.NewNopLogger(),
	}
}

// WithCertificate loads the certificate from a PKCS#12 file and returns a
// new Client initialized with it. Construction is the only place where
// certificate errors can occur.
func WithCertificate(filename, password string) (*Client, error) {
	cert, err := LoadCertificate(filename, password)
	if err != nil {
		return nil, err
	}
	return New(*cert), nil
}

// SetLogger sets the logger used to trace sent notifications. By default
// nothing is logged.
func (c *Client) SetLogger(logger kitlog.Logger) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	c.logger = logger
}

// Push sends the notification to the device it addresses and returns the
// notification id (a canonical UUID). If the notification does not define
// its own id, a new one is generated.
//
// Push blocks until the server replies, the context is done or the
// transport times out. A rejection reported by the server is returned as
// *Error, a network or TLS failure as *TransportError wrapping the
// underlying cause. No retries are attempted: every failure is reported to
// the caller as is.
func (c *Client) Push(ctx context.Context, ntf Notification) (id string, err error) {
	topic := ntf.Topic
	if topic == "" && c.CertificateInfo != nil {
		topic = c.CertificateInfo.BundleID
	}
	if topic == "" {
		return "", ErrNoTopic
	}
	if ntf.Token == "" {
		return "", ErrNoToken
	}
	if len(ntf.Payload) == 0 {
		return "", ErrPayloadEmpty
	}
	buf := getBuffer()
	if err := json.NewEncoder(buf).Encode(ntf.Payload); err != nil {
		putBuffer(buf)
		return "", err
	}
	buf.Truncate(buf.Len() - 1) // drop the newline appended by Encode
	if buf.Len() > MaxPayloadSize {
		putBuffer(buf)
		return "", ErrPayloadTooLarge
	}

	id = ntf.ID
	if id == "" {
		id = uuid.New().String()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.Host+"/3/device/"+ntf.Token, body{buf})
	if err != nil {
		putBuffer(buf)
		return "", err
	}
	req.ContentLength = int64(buf.Len())
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apns-id", id)
	req.Header.Set("apns-topic", topic)
	if !ntf.Expiration.IsZero() {
		req.Header.Set("apns-expiration",
			strconv.FormatInt(ntf.Expiration.Unix(), 10))
	}
	if ntf.Priority == PriorityLow || ntf.Priority == PriorityHigh {
		req.Header.Set("apns-priority", strconv.Itoa(int(ntf.Priority)))
	}
	if ntf.CollapseID != "" {
		req.Header.Set("apns-collapse-id", ntf.CollapseID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Log("token", ntf.Token, "id", id, "err", err)
		return "", &TransportError{err}
	}
	defer resp.Body.Close()
	// the server may assign its own id to the notification
	if respID := resp.Header.Get("apns-id"); respID != "" {
		id = respID
	}
	if resp.StatusCode != http.StatusOK {
		err = decodeError(resp.StatusCode, resp.Body)
		c.logger.Log("token", ntf.Token, "id", id, "status", resp.StatusCode,
			"err", err)
		return id, err
	}
	c.logger.Log("token", ntf.Token, "id", id, "status", resp.StatusCode)
	return id, nil
}
