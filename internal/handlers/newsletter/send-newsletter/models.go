// internal/handlers/newsletter/send-newsletter/models.go
package sendnewsletter

type Input struct {
	NewsletterID string `json:"newsletterId"`
	Title        string `json:"title"`
	Content      string `json:"content"`
}

type Output struct {
	Success          bool `json:"success"`
	SentCount        int  `json:"sentCount"`
	FailedCount      int  `json:"failedCount"`
	TotalSubscribers int  `json:"totalSubscribers"`
}

type recipient struct {
	Email string
	Name  string
}
