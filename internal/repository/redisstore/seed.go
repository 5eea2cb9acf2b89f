// internal/repository/redisstore/seed.go
package redisstore

import (
	"time"

	"rentsmart-service/internal/domain/auth"
	"rentsmart-service/internal/domain/fleet"
)

// Dataset is the built-in demo content the store seeds on first run. The
// finance entries and user table are not persisted; they back the finance
// summary and the fixed identity table.
type Dataset struct {
	Vehicles  []fleet.Vehicle
	Customers []fleet.Customer
	Contracts []fleet.Contract
	Income    []fleet.Income
	Expenses  []fleet.Expense
	Users     []auth.User
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SeedDataset builds a fresh copy of the demo fleet: three vehicles (one
// available, one rented, one in maintenance), two customers and two
// contracts, one of them completed.
func SeedDataset() Dataset {
	mileageIn := 9800
	fuelIn := "full"

	return Dataset{
		Vehicles: []fleet.Vehicle{
			{
				ID: "v001", Make: "Toyota", Model: "Camry", Year: 2020,
				LicensePlate: "ABC123", VIN: "1HGCM82633A123456",
				Status: fleet.VehicleAvailable, CurrentMileage: 9800,
				PurchaseDate: date(2019, time.December, 15), PurchasePrice: 28000, CurrentValue: 22400,
				DailyRate: 65, WeeklyRate: 390, MonthlyRate: 1500,
				FuelType: "gasoline", Transmission: "automatic", Category: "sedan", Seats: 5, Color: "silver",
				Photos: []string{"/vehicles/camry-1.jpg", "/vehicles/camry-2.jpg"},
				Documents: []fleet.Document{
					{ID: "d001", Name: "Registration", URL: "/documents/camry-reg.pdf", Type: "registration"},
					{ID: "d002", Name: "Insurance", URL: "/documents/camry-ins.pdf", Type: "insurance"},
				},
				MaintenanceHistory: []fleet.MaintenanceRecord{
					{ID: "mh001", Type: "oil", Description: "Oil and filter change", Date: date(2025, time.February, 15), Mileage: 7500, Cost: 45, Provider: "QuickLube Service"},
					{ID: "mh002", Type: "tire", Description: "Tire rotation", Date: date(2025, time.April, 10), Mileage: 9000, Cost: 30, Provider: "City Tire Shop"},
				},
				NextService: fleet.NextService{Type: "oil", DueMileage: 10000, DueDate: date(2025, time.May, 10)},
			},
			{
				ID: "v002", Make: "Honda", Model: "Civic", Year: 2021,
				LicensePlate: "XYZ789", VIN: "2HGES16536H123456",
				Status: fleet.VehicleRented, CurrentMileage: 20400,
				PurchaseDate: date(2020, time.October, 5), PurchasePrice: 23000, CurrentValue: 19550,
				DailyRate: 55, WeeklyRate: 330, MonthlyRate: 1300,
				FuelType: "gasoline", Transmission: "automatic", Category: "compact", Seats: 5, Color: "blue",
				Photos: []string{"/vehicles/civic-1.jpg", "/vehicles/civic-2.jpg"},
				Documents: []fleet.Document{
					{ID: "d003", Name: "Registration", URL: "/documents/civic-reg.pdf", Type: "registration"},
					{ID: "d004", Name: "Insurance", URL: "/documents/civic-ins.pdf", Type: "insurance"},
				},
				MaintenanceHistory: []fleet.MaintenanceRecord{
					{ID: "mh003", Type: "oil", Description: "Oil and filter change", Date: date(2025, time.March, 5), Mileage: 17500, Cost: 45, Provider: "Honda Dealership"},
				},
				NextService: fleet.NextService{Type: "tire", DueMileage: 20000, DueDate: date(2025, time.May, 2)},
			},
			{
				ID: "v003", Make: "Ford", Model: "Escape", Year: 2019,
				LicensePlate: "LMN456", VIN: "1FMCU0F70DUB12345",
				Status: fleet.VehicleMaintenance, CurrentMileage: 15200,
				PurchaseDate: date(2018, time.August, 22), PurchasePrice: 31000, CurrentValue: 18600,
				DailyRate: 75, WeeklyRate: 450, MonthlyRate: 1700,
				FuelType: "hybrid", Transmission: "automatic", Category: "suv", Seats: 5, Color: "red",
				Photos: []string{"/vehicles/escape-1.jpg", "/vehicles/escape-2.jpg"},
				Documents: []fleet.Document{
					{ID: "d005", Name: "Registration", URL: "/documents/escape-reg.pdf", Type: "registration"},
					{ID: "d006", Name: "Insurance", URL: "/documents/escape-ins.pdf", Type: "insurance"},
				},
				MaintenanceHistory: []fleet.MaintenanceRecord{
					{ID: "mh004", Type: "oil", Description: "Oil and filter change", Date: date(2025, time.February, 10), Mileage: 12000, Cost: 55, Provider: "Ford Dealership"},
				},
				NextService: fleet.NextService{Type: "brake", DueMileage: 15000, DueDate: date(2025, time.May, 5)},
			},
		},
		Customers: []fleet.Customer{
			{
				ID: "c001", FirstName: "John", LastName: "Doe",
				Email: "john.doe@example.com", Phone: "555-123-4567",
				Address:       "123 Main St, Anytown, ST 12345",
				LicenseNumber: "DL1234567", LicenseState: "CA",
				LicenseExpiry: date(2026, time.July, 15), DateOfBirth: date(1985, time.June, 12),
				JoinDate: date(2023, time.February, 10), Status: "active",
				RentalCount: 1, TotalSpent: 235.60,
				Notes: "Preferred customer, always returns vehicles on time.",
				Documents: []fleet.Document{
					{ID: "cd001", Name: "Driver License", URL: "/documents/john-dl.pdf", Type: "license"},
					{ID: "cd002", Name: "Insurance Card", URL: "/documents/john-insurance.pdf", Type: "insurance"},
				},
				RentalHistory: []fleet.RentalHistoryItem{
					{ID: "r001", VehicleID: "v001", ContractID: "co001",
						StartDate: date(2024, time.February, 5), EndDate: date(2024, time.February, 8),
						Returned: true, OnTime: boolPtr(true), Condition: strPtr("good")},
				},
			},
			{
				ID: "c002", FirstName: "Jane", LastName: "Smith",
				Email: "jane.smith@example.com", Phone: "555-987-6543",
				Address:       "456 Oak Ave, Othertown, ST 67890",
				LicenseNumber: "DL7654321", LicenseState: "NY",
				LicenseExpiry: date(2025, time.October, 20), DateOfBirth: date(1990, time.September, 23),
				JoinDate: date(2023, time.May, 15), Status: "active",
				RentalCount: 1, TotalSpent: 579,
				Notes: "Corporate account client",
				Documents: []fleet.Document{
					{ID: "cd003", Name: "Driver License", URL: "/documents/jane-dl.pdf", Type: "license"},
				},
				RentalHistory: []fleet.RentalHistoryItem{
					{ID: "r002", VehicleID: "v002", ContractID: "co002",
						StartDate: date(2025, time.April, 10), EndDate: date(2025, time.April, 20),
						Returned: false},
				},
			},
		},
		Contracts: []fleet.Contract{
			{
				ID: "co001", CustomerID: "c001", VehicleID: "v001",
				StartDate: date(2024, time.February, 5), EndDate: date(2024, time.February, 8),
				Status:   fleet.ContractCompleted,
				BaseRate: 65, DailyRate: 65, DaysRented: 3,
				Subtotal: 195, Taxes: 15.60, Fees: 25, Discounts: 0, TotalAmount: 235.60,
				DepositAmount: 200, DepositReturned: true,
				PaymentMethod: "credit", PaymentStatus: "paid",
				MileageOut: 9500, MileageIn: &mileageIn,
				FuelOut: "full", FuelIn: &fuelIn,
				Notes: "Vehicle returned in good condition",
				Documents: []fleet.Document{
					{ID: "cod001", Name: "Rental Agreement", URL: "/contracts/co001-agreement.pdf", Type: "agreement"},
					{ID: "cod002", Name: "Vehicle Inspection", URL: "/contracts/co001-inspection.pdf", Type: "inspection"},
				},
				CreatedAt: date(2024, time.February, 5),
			},
			{
				ID: "co002", CustomerID: "c002", VehicleID: "v002",
				StartDate: date(2025, time.April, 10), EndDate: date(2025, time.April, 20),
				Status:   fleet.ContractActive,
				BaseRate: 55, DailyRate: 55, DaysRented: 10,
				Subtotal: 550, Taxes: 44, Fees: 35, Discounts: 50, TotalAmount: 579,
				DepositAmount: 300, DepositReturned: false,
				PaymentMethod: "credit", PaymentStatus: "paid",
				MileageOut: 20000,
				FuelOut:    "full",
				Notes:      "Corporate rental",
				Documents: []fleet.Document{
					{ID: "cod003", Name: "Rental Agreement", URL: "/contracts/co002-agreement.pdf", Type: "agreement"},
				},
				CreatedAt: date(2025, time.April, 10),
			},
		},
		Income: []fleet.Income{
			{
				FinancialTransaction: fleet.FinancialTransaction{
					ID: "i001", Date: date(2025, time.February, 8), Amount: 235.60,
					Type: "rental", Category: "rental_fee",
					Description: "Payment for contract #CO001",
					VehicleID:   strPtr("v001"), RecordedBy: "user1",
				},
				ContractID: "co001", CustomerID: "c001", PaymentMethod: "credit",
			},
			{
				FinancialTransaction: fleet.FinancialTransaction{
					ID: "i002", Date: date(2025, time.April, 10), Amount: 579,
					Type: "rental", Category: "rental_fee",
					Description: "Payment for contract #CO002",
					VehicleID:   strPtr("v002"), RecordedBy: "user1",
				},
				ContractID: "co002", CustomerID: "c002", PaymentMethod: "credit",
			},
		},
		Expenses: []fleet.Expense{
			{
				FinancialTransaction: fleet.FinancialTransaction{
					ID: "e001", Date: date(2025, time.February, 15), Amount: 45,
					Type: "maintenance", Category: "maintenance",
					Description: "Oil change for Toyota Camry",
					VehicleID:   strPtr("v001"), RecordedBy: "user1",
				},
				Vendor: "QuickLube Service", ReceiptURL: "/expenses/e001-receipt.pdf",
			},
			{
				FinancialTransaction: fleet.FinancialTransaction{
					ID: "e002", Date: date(2025, time.April, 1), Amount: 1200,
					Type: "insurance", Category: "insurance",
					Description: "Monthly fleet insurance payment",
					RecordedBy:  "user1",
				},
				Vendor: "ABC Insurance", ReceiptURL: "/expenses/e002-receipt.pdf",
				IsRecurring: true, RecurringFrequency: "monthly",
			},
		},
		Users: []auth.User{
			{ID: "user1", FirstName: "Admin", LastName: "User", Email: "admin@example.com",
				Role: auth.RoleAdmin, Status: "active",
				LastLogin: time.Date(2025, time.April, 29, 8, 30, 0, 0, time.UTC)},
			{ID: "user2", FirstName: "Manager", LastName: "User", Email: "manager@example.com",
				Role: auth.RoleManager, Status: "active",
				LastLogin: time.Date(2025, time.April, 28, 17, 15, 0, 0, time.UTC)},
			{ID: "user3", FirstName: "Agent", LastName: "User", Email: "agent@example.com",
				Role: auth.RoleAgent, Status: "active",
				LastLogin: time.Date(2025, time.April, 29, 10, 45, 0, 0, time.UTC)},
		},
	}
}

func boolPtr(b bool) *bool       { return &b }
func strPtr(s string) *string    { return &s }
