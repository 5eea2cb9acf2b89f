// internal/service/report/report_service.go
package report

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"rentsmart-service/internal/domain/fleet"
	"rentsmart-service/internal/domain/report"
	xerrors "rentsmart-service/internal/pkg/errors"
	"rentsmart-service/internal/repository/redisstore"
)

// ReportService computes derived summaries over the stored collections. It
// only reads from the store. An empty source collection yields ErrNoData so
// callers can tell "nothing to compute over" apart from a computed zero.
type ReportService struct {
	store  *redisstore.Store
	logger *zap.Logger
}

func NewReportService(store *redisstore.Store, logger *zap.Logger) *ReportService {
	return &ReportService{store: store, logger: logger}
}

func filterContracts(contracts []fleet.Contract, dr report.DateRange) []fleet.Contract {
	filtered := make([]fleet.Contract, 0, len(contracts))
	for _, c := range contracts {
		if dr.Contains(c.StartDate, c.EndDate) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

// Financial sums totals and taxes over the contracts whose span falls within
// the range.
func (s *ReportService) Financial(ctx context.Context, dr report.DateRange) (*report.FinancialSummary, error) {
	contracts, err := s.store.Contracts(ctx)
	if err != nil {
		return nil, err
	}
	if len(contracts) == 0 {
		return nil, xerrors.ErrNoData
	}

	summary := &report.FinancialSummary{}
	for _, c := range filterContracts(contracts, dr) {
		summary.ContractCount++
		summary.TotalRevenue += c.TotalAmount
		summary.TotalTaxes += c.Taxes
	}
	summary.Net = summary.TotalRevenue - summary.TotalTaxes

	s.logger.Info("financial report generated",
		zap.Int("contracts", summary.ContractCount),
	)
	return summary, nil
}

// VehiclePerformance reports rental count, revenue and cumulative rented
// days per vehicle. The utilization rate exists only for a bounded window;
// an open-ended filter reports it as absent, not zero. Rows come back sorted
// by rental count, busiest first.
func (s *ReportService) VehiclePerformance(ctx context.Context, dr report.DateRange) ([]report.VehicleStats, error) {
	vehicles, err := s.store.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	if len(vehicles) == 0 {
		return nil, xerrors.ErrNoData
	}
	contracts, err := s.store.Contracts(ctx)
	if err != nil {
		return nil, err
	}
	filtered := filterContracts(contracts, dr)

	stats := make([]report.VehicleStats, 0, len(vehicles))
	for _, v := range vehicles {
		row := report.VehicleStats{
			VehicleID:    v.ID,
			Make:         v.Make,
			Model:        v.Model,
			LicensePlate: v.LicensePlate,
		}
		for _, c := range filtered {
			if c.VehicleID != v.ID {
				continue
			}
			row.RentalCount++
			row.TotalRevenue += c.TotalAmount
			row.RentedDays += c.DaysRented
		}
		if dr.Bounded() {
			if days := dr.Days(); days > 0 {
				rate := float64(row.RentedDays) / float64(days) * 100
				row.UtilizationRate = &rate
			}
		}
		stats = append(stats, row)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].RentalCount > stats[j].RentalCount
	})
	return stats, nil
}

// CustomerBehavior reports rental count, spend and the most recent contract
// end per customer within the window. A customer with no matching contracts
// has a nil LastRental.
func (s *ReportService) CustomerBehavior(ctx context.Context, dr report.DateRange) ([]report.CustomerStats, error) {
	customers, err := s.store.Customers(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.store.Contracts(ctx)
	if err != nil {
		return nil, err
	}
	if len(customers) == 0 || len(contracts) == 0 {
		return nil, xerrors.ErrNoData
	}
	filtered := filterContracts(contracts, dr)

	stats := make([]report.CustomerStats, 0, len(customers))
	for _, cust := range customers {
		row := report.CustomerStats{
			CustomerID: cust.ID,
			Name:       cust.FullName(),
			Email:      cust.Email,
		}
		for _, c := range filtered {
			if c.CustomerID != cust.ID {
				continue
			}
			row.RentalCount++
			row.TotalSpent += c.TotalAmount
			if row.LastRental == nil || c.EndDate.After(*row.LastRental) {
				end := c.EndDate
				row.LastRental = &end
			}
		}
		stats = append(stats, row)
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].RentalCount > stats[j].RentalCount
	})
	return stats, nil
}

// Dashboard aggregates the landing-page numbers: fleet counts and status
// breakdown, active contracts, revenue to date, vehicles with service due
// and rentals ending within the next week.
func (s *ReportService) Dashboard(ctx context.Context, now time.Time) (*report.DashboardStats, error) {
	vehicles, err := s.store.Vehicles(ctx)
	if err != nil {
		return nil, err
	}
	contracts, err := s.store.Contracts(ctx)
	if err != nil {
		return nil, err
	}

	stats := &report.DashboardStats{TotalVehicles: len(vehicles)}

	byStatus := map[fleet.VehicleStatus]int{}
	for _, v := range vehicles {
		byStatus[v.Status]++
		if v.Status == fleet.VehicleAvailable {
			stats.AvailableVehicles++
		}
		if v.ServiceDue(now) {
			stats.MaintenanceAlerts = append(stats.MaintenanceAlerts, report.MaintenanceAlert{
				VehicleID:      v.ID,
				VehicleName:    v.Make + " " + v.Model,
				LicensePlate:   v.LicensePlate,
				ServiceType:    v.NextService.Type,
				CurrentMileage: v.CurrentMileage,
				DueMileage:     v.NextService.DueMileage,
				DueDate:        v.NextService.DueDate,
			})
		}
	}
	for _, status := range []fleet.VehicleStatus{
		fleet.VehicleAvailable, fleet.VehicleRented, fleet.VehicleMaintenance,
		fleet.VehicleReserved, fleet.VehicleSold,
	} {
		if n := byStatus[status]; n > 0 {
			stats.StatusBreakdown = append(stats.StatusBreakdown, report.StatusCount{Status: status, Count: n})
		}
	}

	weekOut := now.AddDate(0, 0, 7)
	for _, c := range contracts {
		stats.TotalRevenue += c.TotalAmount
		if c.Status == fleet.ContractActive {
			stats.ActiveContracts++
			if !c.EndDate.Before(now) && !c.EndDate.After(weekOut) {
				stats.UpcomingReturns = append(stats.UpcomingReturns, c)
			}
		}
	}
	return stats, nil
}

// Finances summarizes the built-in income and expense entries.
func (s *ReportService) Finances(ctx context.Context) (*report.FinanceSummary, error) {
	seed := redisstore.SeedDataset()
	if len(seed.Income) == 0 && len(seed.Expenses) == 0 {
		return nil, xerrors.ErrNoData
	}

	summary := &report.FinanceSummary{}
	for _, in := range seed.Income {
		summary.TotalIncome += in.Amount
	}
	for _, ex := range seed.Expenses {
		summary.TotalExpenses += ex.Amount
	}
	summary.NetProfit = summary.TotalIncome - summary.TotalExpenses
	return summary, nil
}
