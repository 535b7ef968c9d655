// internal/models/subscriber.go
package models

// EmailSubscriber is one newsletter signup. Email is unique; verified stays
// false until the (out-of-scope) confirmation flow flips it.
type EmailSubscriber struct {
	ID                   string                 `json:"id"`
	Email                string                 `json:"email"`
	Name                 string                 `json:"name,omitempty"`
	SubscribedAt         string                 `json:"subscribedAt"`
	Verified             bool                   `json:"verified"`
	Preferences          SubscriberPreferences  `json:"preferences"`
	LastNotificationSent string                 `json:"lastNotificationSent,omitempty"`
	Metadata             map[string]interface{} `json:"metadata,omitempty"`
}

type SubscriberPreferences struct {
	Newsletter           bool `json:"newsletter"`
	VisitUpdates         bool `json:"visitUpdates"`
	DonationUpdates      bool `json:"donationUpdates"`
	GalleryNotifications bool `json:"galleryNotifications"`
}

// DefaultPreferences returns the opt-in set applied to new signups.
func DefaultPreferences() SubscriberPreferences {
	return SubscriberPreferences{
		Newsletter:           true,
		VisitUpdates:         true,
		DonationUpdates:      true,
		GalleryNotifications: true,
	}
}
