package core

import (
	"fmt"

	"github.com/datascope/datascope/schema"
)

// Audit rule thresholds.
const (
	nullSpikeRatio         = 0.5
	highCardinalityRatio   = 0.95
	highCardinalityMinRows = 10
)

// Audit evaluates the rule-based quality checks against every declared
// column. Each rule fires independently, so a column can raise several
// issues. Audit never mutates data; it only reports.
func Audit(records []schema.Record, ts schema.TableSchema) schema.QualityReport {
	report := schema.QualityReport{
		Issues:         []schema.QualityIssue{},
		SeverityCounts: make(map[schema.IssueSeverity]int),
	}
	rows := len(records)
	if rows == 0 {
		return report
	}

	for _, col := range ts.Columns {
		values := columnValues(records, col.Name)
		distinct, nonNull := distinctNonNull(values)
		missing := rows - nonNull

		if missingRatio := float64(missing) / float64(rows); missingRatio > nullSpikeRatio {
			report.Issues = append(report.Issues, schema.QualityIssue{
				Column:   col.Name,
				Type:     schema.NullSpikeIssue,
				Severity: schema.HighSeverity,
				Detail:   fmt.Sprintf("%.1f%% of values are missing", missingRatio*100),
			})
		}

		if nonNull > 0 && distinct == 1 {
			report.Issues = append(report.Issues, schema.QualityIssue{
				Column:   col.Name,
				Type:     schema.ConstantColumnIssue,
				Severity: schema.MediumSeverity,
				Detail:   "column holds a single distinct value",
			})
		}

		if col.Type.IsString() && nonNull > highCardinalityMinRows {
			if uniqueRatio := float64(distinct) / float64(nonNull); uniqueRatio > highCardinalityRatio {
				report.Issues = append(report.Issues, schema.QualityIssue{
					Column:   col.Name,
					Type:     schema.HighCardinalityIssue,
					Severity: schema.LowSeverity,
					Detail:   fmt.Sprintf("%d distinct values across %d rows", distinct, nonNull),
				})
			}
		}
	}

	for _, issue := range report.Issues {
		report.SeverityCounts[issue.Severity]++
	}
	return report
}
