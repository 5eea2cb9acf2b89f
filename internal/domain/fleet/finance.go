// internal/domain/fleet/finance.go
package fleet

import "time"

// FinancialTransaction carries the fields shared by income and expense
// entries.
type FinancialTransaction struct {
	ID          string    `json:"id"`
	Date        time.Time `json:"date"`
	Amount      float64   `json:"amount"`
	Type        string    `json:"type"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	VehicleID   *string   `json:"vehicleId"`
	RecordedBy  string    `json:"recordedBy"`
}

type Income struct {
	FinancialTransaction
	ContractID    string `json:"contractId"`
	CustomerID    string `json:"customerId"`
	PaymentMethod string `json:"paymentMethod"`
}

type Expense struct {
	FinancialTransaction
	Vendor             string `json:"vendor"`
	ReceiptURL         string `json:"receiptUrl"`
	IsRecurring        bool   `json:"isRecurring"`
	RecurringFrequency string `json:"recurringFrequency,omitempty"`
}
