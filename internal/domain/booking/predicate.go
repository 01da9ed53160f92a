package booking

import "strings"

// ExcludedStatusesForConflictCheck returns the statuses a store should filter
// out before fetching conflict candidates, so cancelled history never reaches
// the overlap scan. Always equal to FreedStatuses, keeping store pre-filtering
// and the detector in agreement.
func ExcludedStatusesForConflictCheck() []Status {
	return FreedStatuses()
}

// SQLInclusionClause renders a status list as a parenthesized, single-quoted,
// comma-separated SQL literal list in the given order. An empty list renders
// a clause that matches no real status rather than the invalid "IN ()".
func SQLInclusionClause(statuses []Status) string {
	if len(statuses) == 0 {
		return "('1=0')"
	}
	quoted := make([]string, len(statuses))
	for i, s := range statuses {
		quoted[i] = "'" + string(s) + "'"
	}
	return "(" + strings.Join(quoted, ", ") + ")"
}

// SQLExclusionClause renders the blocking set as a NOT IN fragment: a status
// column matching this fragment does not occupy its slot. The exact string is
// part of the contract; other query paths depend on its shape, not just its
// semantics. An empty blocking set degrades to a fragment that matches
// nothing, so a misconfigured deployment cannot mark every row free.
func SQLExclusionClause() string {
	blocking := BlockingStatuses()
	if len(blocking) == 0 {
		return "IN ('1=0')"
	}
	return "NOT IN " + SQLInclusionClause(blocking)
}
