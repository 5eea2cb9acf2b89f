// internal/domain/fleet/contract.go
package fleet

import "time"

type ContractStatus string

const (
	ContractActive    ContractStatus = "active"
	ContractScheduled ContractStatus = "scheduled"
	ContractCompleted ContractStatus = "completed"
	ContractOverdue   ContractStatus = "overdue"
	ContractCancelled ContractStatus = "cancelled"
)

// Contract links one vehicle and one customer by id. The references are by
// convention only; the store does not enforce them.
type Contract struct {
	ID              string         `json:"id"`
	CustomerID      string         `json:"customerId"`
	VehicleID       string         `json:"vehicleId"`
	StartDate       time.Time      `json:"startDate"`
	EndDate         time.Time      `json:"endDate"`
	Status          ContractStatus `json:"status"`
	BaseRate        float64        `json:"baseRate"`
	DailyRate       float64        `json:"dailyRate"`
	DaysRented      int            `json:"daysRented"`
	Subtotal        float64        `json:"subtotal"`
	Taxes           float64        `json:"taxes"`
	Fees            float64        `json:"fees"`
	Discounts       float64        `json:"discounts"`
	TotalAmount     float64        `json:"totalAmount"`
	DepositAmount   float64        `json:"depositAmount"`
	DepositReturned bool           `json:"depositReturned"`
	PaymentMethod   string         `json:"paymentMethod"`
	PaymentStatus   string         `json:"paymentStatus"`
	MileageOut      int            `json:"mileageOut"`
	MileageIn       *int           `json:"mileageIn"`
	FuelOut         string         `json:"fuelOut"`
	FuelIn          *string        `json:"fuelIn"`
	Notes           string         `json:"notes"`
	Documents       []Document     `json:"documents,omitempty"`
	CreatedAt       time.Time      `json:"createdAt"`
}
