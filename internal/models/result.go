package models

// ResultSet is an ad-hoc tabular dataset returned by the mock executor.
// Columns preserves display order; Rows are keyed by column name.
type ResultSet struct {
	Columns  []string                 `json:"columns"`
	Rows     []map[string]interface{} `json:"rows"`
	RowCount int                      `json:"row_count"`
}

func (r *ResultSet) ColumnCount() int {
	return len(r.Columns)
}

// ColumnSummary holds basic statistics for one numeric column.
type ColumnSummary struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// NumericSummary computes per-column statistics over the columns whose
// values are all numeric. Columns with no numeric values are skipped.
func (r *ResultSet) NumericSummary() []ColumnSummary {
	var summaries []ColumnSummary
	for _, col := range r.Columns {
		var (
			count int
			sum   float64
			min   float64
			max   float64
		)
		numeric := true
		for _, row := range r.Rows {
			val, ok := asFloat(row[col])
			if !ok {
				numeric = false
				break
			}
			if count == 0 || val < min {
				min = val
			}
			if count == 0 || val > max {
				max = val
			}
			sum += val
			count++
		}
		if !numeric || count == 0 {
			continue
		}
		summaries = append(summaries, ColumnSummary{
			Column: col,
			Count:  count,
			Mean:   sum / float64(count),
			Min:    min,
			Max:    max,
		})
	}
	return summaries
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case float64:
		return n, true
	case float32:
		return float64(n), true
	default:
		return 0, false
	}
}
