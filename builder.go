package apns

import "time"

// alert describes the alert dictionary of the "aps" payload.
type alert struct {
	Title        string   `json:"title,omitempty"`
	Body         string   `json:"body,omitempty"`
	TitleLocKey  string   `json:"title-loc-key,omitempty"`
	TitleLocArgs []string `json:"title-loc-args,omitempty"`
	ActionLocKey string   `json:"action-loc-key,omitempty"`
	LocKey       string   `json:"loc-key,omitempty"`
	LocArgs      []string `json:"loc-args,omitempty"`
	LaunchImage  string   `json:"launch-image,omitempty"`
}

func (a alert) isEmpty() bool {
	return a.Title == "" && a.Body == "" && a.TitleLocKey == "" &&
		len(a.TitleLocArgs) == 0 && a.ActionLocKey == "" &&
		a.LocKey == "" && len(a.LocArgs) == 0 && a.LaunchImage == ""
}

// Builder accumulates notification fields and assembles them into the APNS
// payload schema. Every setter overwrites the previously set value and
// returns the builder itself, so calls can be chained:
//
//	n := apns.NewBuilder("com.example.app", token).
//		Title("Hello").
//		Body("World").
//		Badge(1).
//		Build()
//
// Build does not invalidate the builder: it can be modified further and
// reused, and notifications built from it share no data.
type Builder struct {
	topic      string
	token      string
	id         string
	expiration time.Time
	priority   uint8
	collapseID string

	simpleAlert      string // plain alert text, replaced by the dictionary form
	alert            alert
	badge            *int
	sound            string
	contentAvailable bool
	mutableContent   bool
	category         string
	threadID         string
	custom           map[string]interface{}
}

// NewBuilder returns a new notification Builder for the given topic and
// device token. Topic and token are required to be non empty, but their
// format is not validated: the server reports BadDeviceToken or BadTopic
// on push if they are malformed.
func NewBuilder(topic, token string) *Builder {
	return &Builder{topic: topic, token: token}
}

// Alert sets the notification alert to a plain text message. Any title,
// body or localization set before is discarded.
func (b *Builder) Alert(text string) *Builder {
	b.alert = alert{}
	b.simpleAlert = text
	return b
}

// promote converts a previously set plain alert text into the title of the
// alert dictionary before dictionary-only fields are set.
func (b *Builder) promote() {
	if b.simpleAlert != "" {
		b.alert = alert{Title: b.simpleAlert}
		b.simpleAlert = ""
	}
}

// Title sets the short title of the notification alert.
func (b *Builder) Title(title string) *Builder {
	b.promote()
	b.alert.Title = title
	return b
}

// Body sets the text of the notification alert.
func (b *Builder) Body(body string) *Builder {
	b.promote()
	b.alert.Body = body
	return b
}

// TitleLocKey sets the localization key for the alert title.
func (b *Builder) TitleLocKey(key string) *Builder {
	b.promote()
	b.alert.TitleLocKey = key
	return b
}

// TitleLocArgs sets the substitution arguments for the localized title.
func (b *Builder) TitleLocArgs(args ...string) *Builder {
	b.promote()
	b.alert.TitleLocArgs = args
	return b
}

// ActionLocKey sets the localization key for the alert action button.
func (b *Builder) ActionLocKey(key string) *Builder {
	b.promote()
	b.alert.ActionLocKey = key
	return b
}

// LocKey sets the localization key for the alert message.
func (b *Builder) LocKey(key string) *Builder {
	b.promote()
	b.alert.LocKey = key
	return b
}

// LocArgs sets the substitution arguments for the localized alert message.
func (b *Builder) LocArgs(args ...string) *Builder {
	b.promote()
	b.alert.LocArgs = args
	return b
}

// LaunchImage sets the name of the launch image file to display when the
// user opens the app from the notification.
func (b *Builder) LaunchImage(name string) *Builder {
	b.promote()
	b.alert.LaunchImage = name
	return b
}

// Badge sets the number to display on the app icon. Zero removes the badge.
func (b *Builder) Badge(number int) *Builder {
	b.badge = &number
	return b
}

// Sound sets the name of a sound file in the app bundle to play on
// delivery. Use "default" for the system sound.
func (b *Builder) Sound(name string) *Builder {
	b.sound = name
	return b
}

// ContentAvailable marks the notification for background delivery: the
// system wakes the app to let it download new content.
func (b *Builder) ContentAvailable() *Builder {
	b.contentAvailable = true
	return b
}

// MutableContent asks the system to pass the notification to the app
// notification service extension before delivery.
func (b *Builder) MutableContent() *Builder {
	b.mutableContent = true
	return b
}

// Category sets the notification category for actionable notifications.
func (b *Builder) Category(category string) *Builder {
	b.category = category
	return b
}

// ThreadID sets the identifier used by the system to group related
// notifications.
func (b *Builder) ThreadID(id string) *Builder {
	b.threadID = id
	return b
}

// Custom adds a custom top-level key to the notification payload. The
// value must be serializable to JSON. The reserved "aps" key is always
// composed by the builder and cannot be overridden.
func (b *Builder) Custom(key string, value interface{}) *Builder {
	if b.custom == nil {
		b.custom = make(map[string]interface{})
	}
	b.custom[key] = value
	return b
}

// ID sets the canonical UUID identifying the notification.
func (b *Builder) ID(id string) *Builder {
	b.id = id
	return b
}

// Expiration sets the date when the notification is no longer valid.
func (b *Builder) Expiration(expiration time.Time) *Builder {
	b.expiration = expiration
	return b
}

// Priority sets the delivery priority: PriorityLow or PriorityHigh.
func (b *Builder) Priority(priority uint8) *Builder {
	b.priority = priority
	return b
}

// CollapseID sets the identifier the server uses to coalesce multiple
// notifications into one. The server limits it to 64 bytes.
func (b *Builder) CollapseID(id string) *Builder {
	b.collapseID = id
	return b
}

// Build returns an immutable snapshot of the current builder state as a
// Notification. Fields that were never set are absent from the payload.
func (b *Builder) Build() Notification {
	payload := make(map[string]interface{}, len(b.custom)+1)
	for key, value := range b.custom {
		if key == "aps" {
			continue
		}
		payload[key] = value
	}
	aps := make(map[string]interface{}, 4)
	switch {
	case b.simpleAlert != "":
		aps["alert"] = b.simpleAlert
	case !b.alert.isEmpty():
		aps["alert"] = b.alert
	}
	if b.badge != nil {
		aps["badge"] = *b.badge
	}
	if b.sound != "" {
		aps["sound"] = b.sound
	}
	if b.contentAvailable {
		aps["content-available"] = 1
	}
	if b.mutableContent {
		aps["mutable-content"] = 1
	}
	if b.category != "" {
		aps["category"] = b.category
	}
	if b.threadID != "" {
		aps["thread-id"] = b.threadID
	}
	payload["aps"] = aps
	return Notification{
		Topic:      b.topic,
		Token:      b.token,
		ID:         b.id,
		Expiration: b.expiration,
		Priority:   b.priority,
		CollapseID: b.collapseID,
		Payload:    payload,
	}
}
