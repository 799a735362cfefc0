package apns

import (
	"errors"
	"time"
)

// Addresses of the APNS provider API servers.
const (
	HostProduction  = "https://api.push.apple.com"
	HostDevelopment = "https://api.development.push.apple.com"
)

// Notification delivery priorities.
const (
	// PriorityLow sends the notification at a time that conserves power on
	// the device receiving it.
	PriorityLow uint8 = 5
	// PriorityHigh sends the notification immediately.
	PriorityHigh uint8 = 10
)

// MaxPayloadSize is the maximum allowed length of a notification payload in
// bytes. The server rejects larger payloads with a PayloadTooLarge reason.
var MaxPayloadSize = 4096

// Timeouts used by the HTTP transport created by New.
var (
	// TimeoutConnect is the time to wait for the connection with the server
	// to be established.
	TimeoutConnect = 30 * time.Second
	// TimeoutRead is the time to wait for the server response.
	TimeoutRead = time.Minute
)

// Errors returned when converting a notification to its wire representation
// before sending.
var (
	ErrNoTopic         = errors.New("topic is empty")
	ErrNoToken         = errors.New("device token is empty")
	ErrPayloadEmpty    = errors.New("payload is empty")
	ErrPayloadTooLarge = errors.New("payload is too large")
)
