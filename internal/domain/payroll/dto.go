package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyOvertimeThreshold and WeeklyOvertimeThreshold are applied by
// independent rules: the daily report splits each employee's day at 8
// hours, the weekly report splits the week total at 40 hours without
// regard to any single day.
var (
	DailyOvertimeThreshold  = decimal.NewFromInt(8)
	WeeklyOvertimeThreshold = decimal.NewFromInt(40)
)

// SplitDaily applies the daily overtime rule.
func SplitDaily(hours decimal.Decimal) (regular, overtime decimal.Decimal) {
	if hours.LessThanOrEqual(DailyOvertimeThreshold) {
		return hours, decimal.Zero
	}
	return DailyOvertimeThreshold, hours.Sub(DailyOvertimeThreshold)
}

// SplitWeekly applies the weekly overtime rule.
func SplitWeekly(hours decimal.Decimal) (regular, overtime decimal.Decimal) {
	if hours.LessThanOrEqual(WeeklyOvertimeThreshold) {
		return hours, decimal.Zero
	}
	return WeeklyOvertimeThreshold, hours.Sub(WeeklyOvertimeThreshold)
}

// EntryRow is the flattened join the aggregator reads: one time entry
// with employee and project context. EmployeeRate is the employee's
// stored default; Rate the entry-level override.
type EntryRow struct {
	EntryID        string
	EmployeeID     string
	EmployeeName   string
	EmployeeNumber string
	ProjectID      string
	ProjectName    string
	Date           time.Time
	Hours          decimal.Decimal
	Rate           *decimal.Decimal
	EmployeeRate   *decimal.Decimal
	TotalCost      *decimal.Decimal
}

// EffectiveRate returns the entry rate when set, else the employee
// default, else nil.
func (r EntryRow) EffectiveRate() *decimal.Decimal {
	if r.Rate != nil {
		return r.Rate
	}
	return r.EmployeeRate
}

// AttendanceRow is the same-date sign-in context joined into the daily
// report.
type AttendanceRow struct {
	EmployeeID  string
	SignInTime  time.Time
	SignOutTime *time.Time
}

type ProjectHours struct {
	ProjectID   string          `json:"project_id"`
	ProjectName string          `json:"project_name"`
	Hours       decimal.Decimal `json:"hours"`
}

type EmployeeDailyReport struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	EmployeeNumber string          `json:"employee_number"`
	Projects       []ProjectHours  `json:"projects"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	RegularHours   decimal.Decimal `json:"regular_hours"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
	SignInTime     *string         `json:"sign_in_time,omitempty"`
	SignOutTime    *string         `json:"sign_out_time,omitempty"`
}

type DailyReport struct {
	Date          string                `json:"date"`
	Employees     []EmployeeDailyReport `json:"employees"`
	TotalHours    decimal.Decimal       `json:"total_hours"`
	RegularHours  decimal.Decimal       `json:"regular_hours"`
	OvertimeHours decimal.Decimal       `json:"overtime_hours"`
	EmployeeCount int                   `json:"employee_count"`
	GeneratedAt   string                `json:"generated_at"`
}

type DayHours struct {
	Date  string          `json:"date"`
	Hours decimal.Decimal `json:"hours"`
}

type EmployeeWeeklyReport struct {
	EmployeeID     string          `json:"employee_id"`
	EmployeeName   string          `json:"employee_name"`
	EmployeeNumber string          `json:"employee_number"`
	Days           []DayHours      `json:"days"`
	TotalHours     decimal.Decimal `json:"total_hours"`
	RegularHours   decimal.Decimal `json:"regular_hours"`
	OvertimeHours  decimal.Decimal `json:"overtime_hours"`
}

type WeeklyReport struct {
	StartDate     string                 `json:"start_date"`
	EndDate       string                 `json:"end_date"`
	Employees     []EmployeeWeeklyReport `json:"employees"`
	TotalHours    decimal.Decimal        `json:"total_hours"`
	RegularHours  decimal.Decimal        `json:"regular_hours"`
	OvertimeHours decimal.Decimal        `json:"overtime_hours"`
	EmployeeCount int                    `json:"employee_count"`
	GeneratedAt   string                 `json:"generated_at"`
}

type EmployeeCostRow struct {
	EmployeeID     string           `json:"employee_id"`
	EmployeeName   string           `json:"employee_name"`
	EmployeeNumber string           `json:"employee_number"`
	Hours          decimal.Decimal  `json:"hours"`
	EffectiveRate  *decimal.Decimal `json:"effective_rate,omitempty"`
	Cost           decimal.Decimal  `json:"cost"`
}

type ProjectCostReport struct {
	ProjectID   string            `json:"project_id"`
	ProjectName string            `json:"project_name"`
	StartDate   string            `json:"start_date"`
	EndDate     string            `json:"end_date"`
	Rows        []EmployeeCostRow `json:"rows"`
	TotalHours  decimal.Decimal   `json:"total_hours"`
	TotalCost   decimal.Decimal   `json:"total_cost"`
	GeneratedAt string            `json:"generated_at"`
}

type Summary struct {
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	EmployeeCount int             `json:"employee_count"`
	ProjectCount  int             `json:"project_count"`
	TotalHours    decimal.Decimal `json:"total_hours"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	TopProjects   []ProjectHours  `json:"top_projects"`
	GeneratedAt   string          `json:"generated_at"`
}
