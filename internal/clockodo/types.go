package clockodo

// User is a Clockodo user record (v3 API).
type User struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Number   string `json:"number,omitempty"`
	Role     string `json:"role,omitempty"`
	Active   bool   `json:"active"`
	TeamsID  *int   `json:"teams_id,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// Customer is a Clockodo customer record (v3 API).
type Customer struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Number          string `json:"number,omitempty"`
	Active          bool   `json:"active"`
	BillableDefault bool   `json:"billable_default"`
	Note            string `json:"note,omitempty"`
}

// Service is a Clockodo service record (v4 API).
type Service struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number,omitempty"`
	Active bool   `json:"active"`
	Note   string `json:"note,omitempty"`
}

// Project is a Clockodo project record (v4 API).
type Project struct {
	ID              int    `json:"id"`
	CustomersID     int    `json:"customers_id"`
	Name            string `json:"name"`
	Number          string `json:"number,omitempty"`
	Active          bool   `json:"active"`
	BillableDefault bool   `json:"billable_default"`
	Completed       bool   `json:"completed"`
}

// Billability values for time entries. The API treats 2 ("not yet
// decided") as the default when a customer or project carries no
// billable default.
const (
	BillableNo        = 0
	BillableYes       = 1
	BillableUndecided = 2
)

// Entry is a Clockodo time entry (v2 API). A running clock is an Entry
// whose TimeUntil is empty.
type Entry struct {
	ID          int    `json:"id"`
	UsersID     int    `json:"users_id"`
	CustomersID int    `json:"customers_id"`
	ServicesID  int    `json:"services_id"`
	ProjectsID  *int   `json:"projects_id,omitempty"`
	Billable    int    `json:"billable"`
	TimeSince   string `json:"time_since"`
	TimeUntil   string `json:"time_until,omitempty"`
	Duration    *int64 `json:"duration,omitempty"`
	Text        string `json:"text,omitempty"`

	CustomersName string `json:"customers_name,omitempty"`
	ServicesName  string `json:"services_name,omitempty"`
	UsersName     string `json:"users_name,omitempty"`
}

// Absence is a Clockodo absence record (v4 API). Status follows the
// enquired/approved/declined/cancelled lifecycle; see the absence
// domain package for the transition table.
type Absence struct {
	ID        int     `json:"id"`
	UsersID   int     `json:"users_id"`
	DateSince string  `json:"date_since"`
	DateUntil string  `json:"date_until"`
	Type      int     `json:"type"`
	Status    int     `json:"status"`
	CountDays float64 `json:"count_days,omitempty"`
	Note      string  `json:"note,omitempty"`
}

// AbsenceSummary is the per-report absence breakdown nested inside a
// user report. Only the regular-holiday count feeds the compliance
// analysis; the remaining fields are carried for completeness.
type AbsenceSummary struct {
	RegularHolidays float64 `json:"regular_holidays"`
	SpecialLeaves   float64 `json:"special_leaves"`
	Sick            float64 `json:"sick"`
	SickChild       float64 `json:"sick_child"`
	HomeOffice      float64 `json:"home_office,omitempty"`
}

// UserReport is one employee's annual tracking summary from the legacy
// userreports endpoint. Diff and OvertimeCarryover are seconds; the
// holiday fields are decimal days. Fields absent from the response
// decode to zero, which the compliance analyzer relies on.
type UserReport struct {
	UsersID           int            `json:"users_id"`
	UsersName         string         `json:"users_name"`
	Year              int            `json:"year"`
	Diff              int64          `json:"diff"`
	OvertimeCarryover int64          `json:"overtime_carryover"`
	OvertimeReduced   int64          `json:"overtime_reduced,omitempty"`
	HolidaysQuota     float64        `json:"holidays_quota"`
	HolidaysCarry     float64        `json:"holidays_carry"`
	SumTarget         int64          `json:"sum_target,omitempty"`
	SumHours          int64          `json:"sum_hours,omitempty"`
	SumAbsence        AbsenceSummary `json:"sum_absence"`
}
