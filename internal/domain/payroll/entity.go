package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusProcessed Status = "PROCESSED"
	StatusPaid      Status = "PAID"
)

// Payroll is one employee's pay record for one calendar month. PayableMonth
// is normalized to the first day of the month; at most one record exists per
// (EmployeeID, PayableMonth). Amounts are exact decimals, never floats.
type Payroll struct {
	ID           string          `json:"id"`
	EmployeeID   string          `json:"employee_id"`
	PayableMonth time.Time       `json:"payable_month"`
	BaseSalary   decimal.Decimal `json:"base_salary"`
	Allowances   decimal.Decimal `json:"allowances"`
	Deductions   decimal.Decimal `json:"deductions"`
	NetSalary    decimal.Decimal `json:"net_salary"`
	Status       Status          `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`

	EmployeeName *string `json:"employee_name,omitempty"`
}

// ComputeNet recalculates NetSalary from the component amounts.
func (p *Payroll) ComputeNet() {
	p.NetSalary = p.BaseSalary.Add(p.Allowances).Sub(p.Deductions)
}
