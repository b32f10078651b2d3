// SPDX-License-Identifier: Apache-2.0

package legal

import "strings"

// AuditMessage describes the parts of an outcome that were recognised but
// not turned into lookup codes. It returns "" when there is nothing to
// review.
func AuditMessage(out Outcome) string {
	var parts []string
	if len(out.Fractionals) > 0 {
		parts = append(parts, "Review these fractionals not processed: "+bracket(out.Fractionals))
	}
	if len(out.FallOuts) > 0 {
		parts = append(parts, "Review these remnants not processed: "+bracket(out.FallOuts))
	}
	if len(parts) == 0 {
		return ""
	}
	return "AUDIT ONLY: " + strings.Join(parts, "; ")
}

func bracket(items []string) string {
	return "[" + strings.Join(items, ", ") + "]"
}
