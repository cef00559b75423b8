package domain

import (
	"sort"
	"strings"
)

// The three static statuses. They are always presented as columns for
// every board, are never persisted as rows, and cannot be deleted.
const (
	StatusTodo       = "TODO"
	StatusInProgress = "IN_PROGRESS"
	StatusDone       = "DONE"
)

// EffectiveColumn is one display column after merging the static
// statuses with a board's stored column records.
type EffectiveColumn struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Static bool   `json:"isStatic"`
}

// staticColumns fixes both the membership and the display order of the
// always-present columns.
var staticColumns = []EffectiveColumn{
	{Status: StatusTodo, Title: "TODO", Static: true},
	{Status: StatusInProgress, Title: "DOING", Static: true},
	{Status: StatusDone, Title: "DONE", Static: true},
}

// DeriveStatusKey normalizes a human column title into the status key
// used to group tasks: uppercased, with runs of whitespace collapsed to
// a single underscore. The transform is idempotent. Two distinct titles
// may normalize to the same key, in which case their task groupings
// merge; see DESIGN.md for why this stays permissive.
func DeriveStatusKey(title string) string {
	return strings.Join(strings.Fields(strings.ToUpper(title)), "_")
}

// EffectiveColumns yields the display columns for a board: the three
// static statuses first, in their fixed order, followed by the stored
// columns sorted by ascending order. A stored column whose status
// matches a static status keeps the static position but lends its
// title for display.
func EffectiveColumns(columns []Column) []EffectiveColumn {
	out := make([]EffectiveColumn, len(staticColumns), len(staticColumns)+len(columns))
	copy(out, staticColumns)

	sorted := make([]Column, len(columns))
	copy(sorted, columns)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	for _, col := range sorted {
		if i := staticIndex(col.Status); i >= 0 {
			out[i].Title = col.Title
			continue
		}
		out = append(out, EffectiveColumn{Status: col.Status, Title: col.Title})
	}
	return out
}

// NextColumnOrder returns the order value for a newly created column:
// one past the board's current maximum, or 0 when the board has no
// columns yet.
func NextColumnOrder(columns []Column) int {
	next := 0
	for _, c := range columns {
		if c.Order >= next {
			next = c.Order + 1
		}
	}
	return next
}

// IsStaticStatus reports whether status is one of the three static
// statuses.
func IsStaticStatus(status string) bool {
	return staticIndex(status) >= 0
}

// IsDeletable reports whether a column carrying the given status may be
// deleted. Static statuses are protected here, by capability check,
// rather than by any database constraint.
func IsDeletable(status string) bool {
	return !IsStaticStatus(status)
}

func staticIndex(status string) int {
	for i, sc := range staticColumns {
		if sc.Status == status {
			return i
		}
	}
	return -1
}
