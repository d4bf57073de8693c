// Package schedule is the adaptive reading-schedule engine: it turns a
// (total pages, date range) pair into per-day page targets, rebalances the
// still-open days whenever a day is marked read, missed, or cleared, and
// compares actual progress against the schedule's expectation-to-date.
//
// Every function is pure: the full day-record set goes in, desired writes
// come out, and "today" is always an explicit argument. Persistence and
// transaction boundaries belong to the service layer.
package schedule
