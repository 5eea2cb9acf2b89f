// internal/domain/report/types.go
package report

import (
	"math"
	"time"

	"rentsmart-service/internal/domain/fleet"
	"rentsmart-service/internal/pkg/tabular"
)

// DateRange bounds a report. Either side may be absent. With both bounds a
// contract's full span must lie within [Start, End]; with one bound only that
// side's containment is checked.
type DateRange struct {
	Start *time.Time
	End   *time.Time
}

// Bounded reports whether both sides of the range are present.
func (r DateRange) Bounded() bool {
	return r.Start != nil && r.End != nil
}

// Contains applies the range's containment rule to a contract span.
func (r DateRange) Contains(start, end time.Time) bool {
	if r.Start != nil && start.Before(*r.Start) {
		return false
	}
	if r.End != nil && end.After(*r.End) {
		return false
	}
	return true
}

// Days is the whole-day length of the window, defined only for a bounded
// range.
func (r DateRange) Days() int {
	if !r.Bounded() {
		return 0
	}
	return int(r.End.Sub(*r.Start).Hours() / 24)
}

type FinancialSummary struct {
	ContractCount int     `json:"contractCount"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalTaxes    float64 `json:"totalTaxes"`
	Net           float64 `json:"net"`
}

// VehicleStats is the per-vehicle performance row. UtilizationRate is defined
// only when the report window has both bounds; nil renders as "N/A", never
// zero.
type VehicleStats struct {
	VehicleID       string   `json:"id"`
	Make            string   `json:"make"`
	Model           string   `json:"model"`
	LicensePlate    string   `json:"licensePlate"`
	RentalCount     int      `json:"rentalCount"`
	TotalRevenue    float64  `json:"totalRevenue"`
	RentedDays      int      `json:"utilizationDays"`
	UtilizationRate *float64 `json:"utilizationRate"`
}

// CustomerStats is the per-customer behavior row. LastRental is nil when the
// customer has no matching contracts in the window.
type CustomerStats struct {
	CustomerID  string     `json:"id"`
	Name        string     `json:"name"`
	Email       string     `json:"email"`
	RentalCount int        `json:"rentalCount"`
	TotalSpent  float64    `json:"totalSpent"`
	LastRental  *time.Time `json:"lastRental"`
}

type StatusCount struct {
	Status fleet.VehicleStatus `json:"status"`
	Count  int                 `json:"count"`
}

type MaintenanceAlert struct {
	VehicleID      string    `json:"vehicleId"`
	VehicleName    string    `json:"vehicleName"`
	LicensePlate   string    `json:"licensePlate"`
	ServiceType    string    `json:"serviceType"`
	CurrentMileage int       `json:"currentMileage"`
	DueMileage     int       `json:"dueMileage"`
	DueDate        time.Time `json:"dueDate"`
}

type DashboardStats struct {
	TotalVehicles     int              `json:"totalVehicles"`
	AvailableVehicles int              `json:"availableVehicles"`
	ActiveContracts   int              `json:"activeContracts"`
	TotalRevenue      float64          `json:"totalRevenue"`
	StatusBreakdown   []StatusCount    `json:"vehicleStatusBreakdown"`
	MaintenanceAlerts []MaintenanceAlert `json:"maintenanceAlerts"`
	UpcomingReturns   []fleet.Contract `json:"upcomingReturns"`
}

type FinanceSummary struct {
	TotalIncome   float64 `json:"totalIncome"`
	TotalExpenses float64 `json:"totalExpenses"`
	NetProfit     float64 `json:"netProfit"`
}

// Flat record forms for report export. Formatting mirrors the dashboard:
// money with two decimals, missing rates and dates as "N/A".

func (s FinancialSummary) Records() []*tabular.Record {
	money := func(v float64) string { return "$" + tabular.FormatValue(roundCents(v)) }
	return []*tabular.Record{
		tabular.NewRecord().Set("metric", "Total Contracts").Set("value", s.ContractCount),
		tabular.NewRecord().Set("metric", "Total Revenue").Set("value", money(s.TotalRevenue)),
		tabular.NewRecord().Set("metric", "Total Taxes").Set("value", money(s.TotalTaxes)),
		tabular.NewRecord().Set("metric", "Net Revenue").Set("value", money(s.Net)),
	}
}

func (v VehicleStats) Record() *tabular.Record {
	rate := "N/A"
	if v.UtilizationRate != nil {
		rate = tabular.FormatValue(roundCents(*v.UtilizationRate)) + "%"
	}
	return tabular.NewRecord().
		Set("id", v.VehicleID).
		Set("make", v.Make).
		Set("model", v.Model).
		Set("licensePlate", v.LicensePlate).
		Set("rentalCount", v.RentalCount).
		Set("totalRevenue", v.TotalRevenue).
		Set("utilizationDays", v.RentedDays).
		Set("utilizationRate", rate)
}

func (c CustomerStats) Record() *tabular.Record {
	last := "N/A"
	if c.LastRental != nil {
		last = c.LastRental.Format("2006-01-02")
	}
	return tabular.NewRecord().
		Set("id", c.CustomerID).
		Set("name", c.Name).
		Set("email", c.Email).
		Set("rentalCount", c.RentalCount).
		Set("totalSpent", c.TotalSpent).
		Set("lastRental", last)
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
