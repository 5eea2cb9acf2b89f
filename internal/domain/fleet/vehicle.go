// internal/domain/fleet/vehicle.go
package fleet

import "time"

type VehicleStatus string

const (
	VehicleAvailable   VehicleStatus = "available"
	VehicleRented      VehicleStatus = "rented"
	VehicleMaintenance VehicleStatus = "maintenance"
	VehicleReserved    VehicleStatus = "reserved"
	VehicleSold        VehicleStatus = "sold"
)

// Status transitions are not validated by the store; any status value in the
// enum is accepted as stored and consumers interpret it.

type Document struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type MaintenanceRecord struct {
	ID          string    `json:"id"`
	Type        string    `json:"type"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	Mileage     int       `json:"mileage"`
	Cost        float64   `json:"cost"`
	Provider    string    `json:"provider"`
}

type NextService struct {
	Type       string    `json:"type"`
	DueMileage int       `json:"dueMileage"`
	DueDate    time.Time `json:"dueDate"`
}

type Vehicle struct {
	ID                 string              `json:"id"`
	Make               string              `json:"make"`
	Model              string              `json:"model"`
	Year               int                 `json:"year"`
	LicensePlate       string              `json:"licensePlate"`
	VIN                string              `json:"vin"`
	Status             VehicleStatus       `json:"status"`
	CurrentMileage     int                 `json:"currentMileage"`
	PurchaseDate       time.Time           `json:"purchaseDate"`
	PurchasePrice      float64             `json:"purchasePrice"`
	CurrentValue       float64             `json:"currentValue"`
	DailyRate          float64             `json:"dailyRate"`
	WeeklyRate         float64             `json:"weeklyRate"`
	MonthlyRate        float64             `json:"monthlyRate"`
	FuelType           string              `json:"fuelType"`
	Transmission       string              `json:"transmission"`
	Category           string              `json:"category"`
	Seats              int                 `json:"seats"`
	Color              string              `json:"color"`
	Photos             []string            `json:"photos,omitempty"`
	Documents          []Document          `json:"documents,omitempty"`
	MaintenanceHistory []MaintenanceRecord `json:"maintenanceHistory,omitempty"`
	NextService        NextService         `json:"nextService"`
}

// ServiceDue reports whether the vehicle's next service is due, either by
// mileage or by calendar date.
func (v Vehicle) ServiceDue(now time.Time) bool {
	if v.NextService.DueMileage > 0 && v.CurrentMileage >= v.NextService.DueMileage {
		return true
	}
	return !v.NextService.DueDate.IsZero() && !v.NextService.DueDate.After(now)
}
