//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import "time"

// NotificationKind selects the toast style.
type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
	NotificationInfo    NotificationKind = "info"
)

// Notification is a one-shot message carried across a Post/Redirect/Get.
type Notification struct {
	Kind      NotificationKind `json:"kind"`
	Message   string           `json:"message"`
	CreatedAt time.Time        `json:"created_at"`
}
