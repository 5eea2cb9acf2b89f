// internal/domain/fleet/customer.go
package fleet

import "time"

type RentalHistoryItem struct {
	ID         string    `json:"id"`
	VehicleID  string    `json:"vehicleId"`
	ContractID string    `json:"contractId"`
	StartDate  time.Time `json:"startDate"`
	EndDate    time.Time `json:"endDate"`
	Returned   bool      `json:"returned"`
	OnTime     *bool     `json:"onTime"`
	Condition  *string   `json:"condition"`
}

type Customer struct {
	ID              string              `json:"id"`
	FirstName       string              `json:"firstName"`
	LastName        string              `json:"lastName"`
	Email           string              `json:"email"`
	Phone           string              `json:"phone"`
	Address         string              `json:"address"`
	LicenseNumber   string              `json:"licenseNumber"`
	LicenseState    string              `json:"licenseState"`
	LicenseExpiry   time.Time           `json:"licenseExpiry"`
	DateOfBirth     time.Time           `json:"dateOfBirth"`
	JoinDate        time.Time           `json:"joinDate"`
	Status          string              `json:"status"`
	Blacklisted     bool                `json:"blacklisted"`
	BlacklistReason string              `json:"blacklistReason,omitempty"`
	RentalCount     int                 `json:"rentalCount"`
	TotalSpent      float64             `json:"totalSpent"`
	Notes           string              `json:"notes"`
	Documents       []Document          `json:"documents,omitempty"`
	RentalHistory   []RentalHistoryItem `json:"rentalHistory,omitempty"`
}

func (c Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
