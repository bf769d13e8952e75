package voting

import "strings"

// VisitorID is the synthesized member id for authenticated users whose
// identity does not resolve to any core team member. Visitor votes are
// aggregated separately and never enter the official average.
const VisitorID = "visitor"

// ResolveMemberID maps an authenticated display name to a core member id.
// The rule is deterministic and side-effect free:
//
//  1. exact id match, case-insensitive (e.g. login name "cynthia");
//  2. the lowercased display name contains the member id as a substring
//     (e.g. "Cynthia Borelli" -> "cynthia"), first match in cohort order;
//  3. otherwise VisitorID.
//
// Exact match is tried first across the whole cohort so that a short id
// embedded in another member's longer name cannot shadow a literal login.
func ResolveMemberID(displayName string, coreIDs []string) string {
	name := strings.ToLower(strings.TrimSpace(displayName))
	if name == "" {
		return VisitorID
	}
	for _, id := range coreIDs {
		if name == strings.ToLower(id) {
			return id
		}
	}
	for _, id := range coreIDs {
		if strings.Contains(name, strings.ToLower(id)) {
			return id
		}
	}
	return VisitorID
}
