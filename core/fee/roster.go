package fee

import (
	"strconv"

	"github.com/umairnumplate/noor-ul-masajid/core"
	"github.com/umairnumplate/noor-ul-masajid/core/class"
	"github.com/umairnumplate/noor-ul-masajid/core/student"
)

// NotAvailable is shown for the amount or receipt of a student without a record.
const NotAvailable = "N/A"

// View is the effective fee of a student for a month, record or not.
type View struct {
	Record  *Record `json:"record,omitempty"`
	Status  Status  `json:"status"`
	Amount  string  `json:"amount"`
	Receipt string  `json:"receipt"`
}

// HasRecord reports whether the view is backed by a stored record.
func (v View) HasRecord() bool { return v.Record != nil }

// Resolve is the single place where a missing record gets its defaults: Pending, with the
// amount and receipt reported as N/A.
func Resolve(r *Record) View {
	if r == nil {
		return View{Status: StatusPending, Amount: NotAvailable, Receipt: NotAvailable}
	}
	v := View{Record: r, Status: r.Status, Amount: FormatAmount(r.Amount), Receipt: NotAvailable}
	if v.Status == "" {
		v.Status = StatusPending
	}
	if r.ReceiptNumber.Valid && r.ReceiptNumber.String != "" {
		v.Receipt = r.ReceiptNumber.String
	}
	return v
}

// FormatAmount renders rupees as "Rs. 1,500".
func FormatAmount(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	intPart, frac := s, ""
	for i := range s {
		if s[i] == '.' {
			intPart, frac = s[:i], s[i:]
			break
		}
	}
	neg := len(intPart) > 0 && intPart[0] == '-'
	if neg {
		intPart = intPart[1:]
	}
	var out []byte
	for i := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, intPart[i])
	}
	if neg {
		return "Rs. -" + string(out) + frac
	}
	return "Rs. " + string(out) + frac
}

type RosterFilter struct {
	Month  string `query:"month"`  // YYYY-MM
	Group  string `query:"group"`  // class id, track group or "all"
	Search string `query:"search"` // case-insensitive match on student name
	Status Status `query:"status"` // empty for all
}

func (rf *RosterFilter) Clean() {
	rf.Month = core.CleanString(rf.Month)
	rf.Group = core.CleanString(rf.Group)
	rf.Search = core.CleanString(rf.Search)
	rf.Status = Status(core.CleanString(string(rf.Status)))
}

type Row struct {
	Student student.Student `json:"student"`
	View
}

// Summary totals over the rows backed by a record; students without one add nothing.
type Summary struct {
	Total   float64 `json:"total"`
	Paid    float64 `json:"paid"`
	Pending float64 `json:"pending"`
}

type Roster struct {
	Month   string  `json:"month"`
	Rows    []Row   `json:"rows"`
	Summary Summary `json:"summary"`
}

// BuildRoster lists the students matching `filter` with their fee for filter.Month, sorted by name.
// The status filter applies to the effective status, so "Pending" includes students without a record.
func BuildRoster(students []student.Student, records []Record, filter RosterFilter) Roster {
	filter.Clean()

	byStudent := make(map[string]*Record)
	for i := range records {
		if records[i].Month == filter.Month {
			byStudent[records[i].StudentID] = &records[i]
		}
	}

	matching := student.Filter(students, class.Reference(), student.QueryFilter{Group: filter.Group, Search: filter.Search})
	roster := Roster{Month: filter.Month, Rows: make([]Row, 0, len(matching))}
	for _, s := range matching {
		v := Resolve(byStudent[s.ID])
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		roster.Rows = append(roster.Rows, Row{Student: s, View: v})

		if !v.HasRecord() {
			continue
		}
		roster.Summary.Total += v.Record.Amount
		if v.Status == StatusPaid {
			roster.Summary.Paid += v.Record.Amount
		} else {
			roster.Summary.Pending += v.Record.Amount
		}
	}
	return roster
}
