// internal/handlers/gallery/submit-photos/models.go
package submitphotos

type Input struct {
	PhotoURLs      []string `json:"photoUrls"`
	EventDate      string   `json:"eventDate"`
	Story          string   `json:"story,omitempty"`
	SubmitterName  string   `json:"submitterName,omitempty"`
	SubmitterEmail string   `json:"submitterEmail,omitempty"`
}

type Output struct {
	Success               bool   `json:"success"`
	SubmissionID          string `json:"submissionId"`
	AdminNotificationSent bool   `json:"adminNotificationSent"`
}
