// SPDX-License-Identifier: Apache-2.0

package batch

import (
	"encoding/csv"
	"fmt"
	"io"
)

var auditHeader = []string{"ID", "Legal Description", "First_Div", "Error/Audit Messages"}

// WriteAuditCSV writes one row per failed or warned record in report.
// Records that resolved cleanly are left out.
func WriteAuditCSV(w io.Writer, report Report) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(auditHeader); err != nil {
		return fmt.Errorf("write audit header: %w", err)
	}

	for _, res := range report.Results {
		msg := res.Error
		if msg == "" {
			msg = res.Warning
		}
		if msg == "" {
			continue
		}
		row := []string{res.Record.ID, res.Record.Description, res.FirstDivision, msg}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write audit row %s: %w", res.Record.ID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flush audit csv: %w", err)
	}
	return nil
}
