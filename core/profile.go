package core

import (
	"github.com/datascope/datascope/schema"
)

// Profile runs the full statistical analysis over a dataset snapshot:
// overview, per-column distributions, correlation matrix, outlier census and
// quality audit. It never mutates the records.
func Profile(records []schema.Record, ts schema.TableSchema) schema.ProfileReport {
	rows := len(records)
	cols := len(ts.Columns)

	overview := schema.Overview{
		Rows:         rows,
		Columns:      cols,
		QualityScore: Score(records, ts),
		ColumnList:   make([]schema.ColumnOverview, 0, cols),
	}

	distributions := make(map[string]schema.DistributionSummary, cols)
	missingCells := 0
	for _, col := range ts.Columns {
		values := columnValues(records, col.Name)
		distinct, nonNull := distinctNonNull(values)
		missing := rows - nonNull
		missingCells += missing

		overview.ColumnList = append(overview.ColumnList, schema.ColumnOverview{
			Name:    col.Name,
			Type:    col.Type,
			Intent:  ClassifyIntent(col.Name, values, col.Type),
			Missing: missing,
			Unique:  distinct,
		})
		distributions[col.Name] = AnalyzeDistribution(records, col)
	}

	if totalCells := rows * cols; totalCells > 0 {
		overview.Completeness = round2(100 * (1 - float64(missingCells)/float64(totalCells)))
	}

	return schema.ProfileReport{
		Overview:      overview,
		Distributions: distributions,
		Correlations:  Correlate(records, ts),
		Outliers:      DetectOutliers(records, ts),
		DataQuality:   Audit(records, ts),
	}
}
