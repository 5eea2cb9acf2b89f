// internal/domain/fleet/records.go
package fleet

import (
	"fmt"
	"time"

	"rentsmart-service/internal/pkg/tabular"
)

// Flat record forms for the CSV and spreadsheet boundaries. Only scalar
// fields travel; nested lists (photos, documents, histories) are excluded
// from the flat schema and come back zero on import. Dates travel as
// RFC 3339 text, best effort.

func (v Vehicle) Record() *tabular.Record {
	return tabular.NewRecord().
		Set("id", v.ID).
		Set("make", v.Make).
		Set("model", v.Model).
		Set("year", v.Year).
		Set("licensePlate", v.LicensePlate).
		Set("vin", v.VIN).
		Set("status", string(v.Status)).
		Set("currentMileage", v.CurrentMileage).
		Set("purchaseDate", formatDate(v.PurchaseDate)).
		Set("purchasePrice", v.PurchasePrice).
		Set("currentValue", v.CurrentValue).
		Set("dailyRate", v.DailyRate).
		Set("weeklyRate", v.WeeklyRate).
		Set("monthlyRate", v.MonthlyRate).
		Set("fuelType", v.FuelType).
		Set("transmission", v.Transmission).
		Set("category", v.Category).
		Set("seats", v.Seats).
		Set("color", v.Color).
		Set("nextServiceType", v.NextService.Type).
		Set("nextServiceDueMileage", v.NextService.DueMileage).
		Set("nextServiceDueDate", formatDate(v.NextService.DueDate))
}

func VehicleFromRecord(r *tabular.Record) (Vehicle, error) {
	p := newRecordParser(r)
	v := Vehicle{
		ID:             p.str("id"),
		Make:           p.str("make"),
		Model:          p.str("model"),
		Year:           p.intField("year"),
		LicensePlate:   p.str("licensePlate"),
		VIN:            p.str("vin"),
		Status:         VehicleStatus(p.str("status")),
		CurrentMileage: p.intField("currentMileage"),
		PurchaseDate:   p.date("purchaseDate"),
		PurchasePrice:  p.float("purchasePrice"),
		CurrentValue:   p.float("currentValue"),
		DailyRate:      p.float("dailyRate"),
		WeeklyRate:     p.float("weeklyRate"),
		MonthlyRate:    p.float("monthlyRate"),
		FuelType:       p.str("fuelType"),
		Transmission:   p.str("transmission"),
		Category:       p.str("category"),
		Seats:          p.intField("seats"),
		Color:          p.str("color"),
		NextService: NextService{
			Type:       p.str("nextServiceType"),
			DueMileage: p.intField("nextServiceDueMileage"),
			DueDate:    p.date("nextServiceDueDate"),
		},
	}
	return v, p.err
}

func (c Customer) Record() *tabular.Record {
	return tabular.NewRecord().
		Set("id", c.ID).
		Set("firstName", c.FirstName).
		Set("lastName", c.LastName).
		Set("email", c.Email).
		Set("phone", c.Phone).
		Set("address", c.Address).
		Set("licenseNumber", c.LicenseNumber).
		Set("licenseState", c.LicenseState).
		Set("licenseExpiry", formatDate(c.LicenseExpiry)).
		Set("dateOfBirth", formatDate(c.DateOfBirth)).
		Set("joinDate", formatDate(c.JoinDate)).
		Set("status", c.Status).
		Set("blacklisted", c.Blacklisted).
		Set("blacklistReason", c.BlacklistReason).
		Set("rentalCount", c.RentalCount).
		Set("totalSpent", c.TotalSpent).
		Set("notes", c.Notes)
}

func CustomerFromRecord(r *tabular.Record) (Customer, error) {
	p := newRecordParser(r)
	c := Customer{
		ID:              p.str("id"),
		FirstName:       p.str("firstName"),
		LastName:        p.str("lastName"),
		Email:           p.str("email"),
		Phone:           p.str("phone"),
		Address:         p.str("address"),
		LicenseNumber:   p.str("licenseNumber"),
		LicenseState:    p.str("licenseState"),
		LicenseExpiry:   p.date("licenseExpiry"),
		DateOfBirth:     p.date("dateOfBirth"),
		JoinDate:        p.date("joinDate"),
		Status:          p.str("status"),
		Blacklisted:     p.boolField("blacklisted"),
		BlacklistReason: p.str("blacklistReason"),
		RentalCount:     p.intField("rentalCount"),
		TotalSpent:      p.float("totalSpent"),
		Notes:           p.str("notes"),
	}
	return c, p.err
}

func (c Contract) Record() *tabular.Record {
	rec := tabular.NewRecord().
		Set("id", c.ID).
		Set("customerId", c.CustomerID).
		Set("vehicleId", c.VehicleID).
		Set("startDate", formatDate(c.StartDate)).
		Set("endDate", formatDate(c.EndDate)).
		Set("status", string(c.Status)).
		Set("baseRate", c.BaseRate).
		Set("dailyRate", c.DailyRate).
		Set("daysRented", c.DaysRented).
		Set("subtotal", c.Subtotal).
		Set("taxes", c.Taxes).
		Set("fees", c.Fees).
		Set("discounts", c.Discounts).
		Set("totalAmount", c.TotalAmount).
		Set("depositAmount", c.DepositAmount).
		Set("depositReturned", c.DepositReturned).
		Set("paymentMethod", c.PaymentMethod).
		Set("paymentStatus", c.PaymentStatus).
		Set("mileageOut", c.MileageOut)
	if c.MileageIn != nil {
		rec.Set("mileageIn", *c.MileageIn)
	} else {
		rec.Set("mileageIn", "")
	}
	rec.Set("fuelOut", c.FuelOut)
	if c.FuelIn != nil {
		rec.Set("fuelIn", *c.FuelIn)
	} else {
		rec.Set("fuelIn", "")
	}
	return rec.Set("notes", c.Notes)
}

func ContractFromRecord(r *tabular.Record) (Contract, error) {
	p := newRecordParser(r)
	c := Contract{
		ID:              p.str("id"),
		CustomerID:      p.str("customerId"),
		VehicleID:       p.str("vehicleId"),
		StartDate:       p.date("startDate"),
		EndDate:         p.date("endDate"),
		Status:          ContractStatus(p.str("status")),
		BaseRate:        p.float("baseRate"),
		DailyRate:       p.float("dailyRate"),
		DaysRented:      p.intField("daysRented"),
		Subtotal:        p.float("subtotal"),
		Taxes:           p.float("taxes"),
		Fees:            p.float("fees"),
		Discounts:       p.float("discounts"),
		TotalAmount:     p.float("totalAmount"),
		DepositAmount:   p.float("depositAmount"),
		DepositReturned: p.boolField("depositReturned"),
		PaymentMethod:   p.str("paymentMethod"),
		PaymentStatus:   p.str("paymentStatus"),
		MileageOut:      p.intField("mileageOut"),
		MileageIn:       p.optInt("mileageIn"),
		FuelOut:         p.str("fuelOut"),
		FuelIn:          p.optStr("fuelIn"),
		Notes:           p.str("notes"),
	}
	return c, p.err
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

// recordParser accumulates the first conversion error while reading typed
// fields out of a flat record. The flat schema is fixed: a key that is not
// present at all is a parse failure, so a record set with the wrong header
// (a customers file offered as vehicles) rejects instead of materializing
// blank entities.
type recordParser struct {
	rec *tabular.Record
	err error
}

func newRecordParser(rec *tabular.Record) *recordParser {
	return &recordParser{rec: rec}
}

func (p *recordParser) fail(key, want string, got any) {
	if p.err == nil {
		p.err = fmt.Errorf("field %q: expected %s, got %T (%v)", key, want, got, got)
	}
}

func (p *recordParser) missing(key string) {
	if p.err == nil {
		p.err = fmt.Errorf("missing field %q", key)
	}
}

func (p *recordParser) str(key string) string {
	v, ok := p.rec.Get(key)
	if !ok {
		p.missing(key)
		return ""
	}
	return tabular.FormatValue(v)
}

func (p *recordParser) float(key string) float64 {
	v, ok := p.rec.Get(key)
	if !ok {
		p.missing(key)
		return 0
	}
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case string:
		if t == "" {
			return 0
		}
	}
	p.fail(key, "number", v)
	return 0
}

func (p *recordParser) intField(key string) int {
	return int(p.float(key))
}

func (p *recordParser) boolField(key string) bool {
	v, ok := p.rec.Get(key)
	if !ok {
		p.missing(key)
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case string:
		if t == "" {
			return false
		}
	}
	p.fail(key, "boolean", v)
	return false
}

func (p *recordParser) date(key string) time.Time {
	s := p.str(key)
	if s == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t
	}
	p.fail(key, "RFC 3339 date", s)
	return time.Time{}
}

func (p *recordParser) optInt(key string) *int {
	v, ok := p.rec.Get(key)
	if !ok {
		p.missing(key)
		return nil
	}
	if s, isStr := v.(string); isStr && s == "" {
		return nil
	}
	n := p.intField(key)
	return &n
}

func (p *recordParser) optStr(key string) *string {
	v, ok := p.rec.Get(key)
	if !ok {
		p.missing(key)
		return nil
	}
	s := tabular.FormatValue(v)
	if s == "" {
		return nil
	}
	return &s
}
