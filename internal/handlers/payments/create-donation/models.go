// internal/handlers/payments/create-donation/models.go
package createdonation

type Input struct {
	Amount int64 `json:"amount"` // minor currency units (cents)
}

type Output struct {
	URL string `json:"url"`
}
