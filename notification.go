package apns

import "time"

// Notification describes a single push message ready to be sent.
//
// Token addresses the device and Topic the application on it; Payload is
// delivered as the JSON body of the request (the reserved "aps" dictionary
// plus any custom top-level keys). The remaining fields are carried in
// request headers and control delivery, not content. A Notification is
// consumed by Client.Push as an immutable value: the client never modifies
// it.
//
// Use a Builder to assemble the payload, or fill the fields directly if
// the payload is already composed.
type Notification struct {
	// Topic is the bundle identifier of the application the notification
	// is routed to. If empty, the bundle ID of the client certificate is
	// used.
	Topic string
	// Token is the hexadecimal device token issued by APNS.
	Token string
	// ID is a canonical UUID that identifies the notification. If empty,
	// a new one is generated when the notification is pushed.
	ID string
	// Expiration identifies the date when the notification is no longer
	// valid and can be discarded by the server. The zero value means the
	// server delivers the notification only once.
	Expiration time.Time
	// Priority of the notification: PriorityLow, PriorityHigh or 0 for
	// the server default.
	Priority uint8
	// CollapseID lets the server coalesce multiple notifications into a
	// single one for display. The server limits it to 64 bytes.
	CollapseID string
	// Payload is the full notification payload.
	Payload map[string]interface{}
}
