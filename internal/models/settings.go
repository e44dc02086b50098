package models

// NotificationSettings is where and whether low-stock alerts are sent.
type NotificationSettings struct {
	Destination string
	Enabled     bool
}
