// internal/handlers/payments/create-payment/models.go
package createpayment

type Input struct {
	ProductName   string `json:"productName"`
	Amount        int64  `json:"amount"` // minor currency units (cents)
	CustomerEmail string `json:"customerEmail,omitempty"`
}

type Output struct {
	URL string `json:"url"`
}
