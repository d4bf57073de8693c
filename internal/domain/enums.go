package domain

type PlanStatus string

const (
	PlanActive   PlanStatus = "active"
	PlanFinished PlanStatus = "finished"
	PlanArchived PlanStatus = "archived"
)

type DayStatus string

const (
	DayUnset  DayStatus = "unset"
	DayRead   DayStatus = "read"
	DayMissed DayStatus = "missed"
)

// ValidDayStatuses is the canonical set of accepted day status strings.
var ValidDayStatuses = map[string]bool{
	"unset": true, "read": true, "missed": true,
}

type AuditAction string

const (
	AuditMarkedRead   AuditAction = "MARKED_READ"
	AuditMarkedMissed AuditAction = "MARKED_MISSED"
	AuditCleared      AuditAction = "CLEARED"
	AuditPagesEdited  AuditAction = "PAGES_EDITED"
)
