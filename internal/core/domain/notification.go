package domain

import "time"

// NotificationKind is the severity of a user-facing notification.
type NotificationKind string

const (
	NotifyInfo    NotificationKind = "info"
	NotifySuccess NotificationKind = "success"
	NotifyError   NotificationKind = "error"
)

// Notification is a fire-and-forget message for the presentation layer.
type Notification struct {
	ID         string           `json:"id"`
	SessionID  string           `json:"session_id"`
	TrackingID string           `json:"tracking_id,omitempty"`
	Kind       NotificationKind `json:"kind"`
	Message    string           `json:"message"`
	Stage      Stage            `json:"stage,omitempty"`
	Progress   int              `json:"progress"`
	At         time.Time        `json:"at"`
}
