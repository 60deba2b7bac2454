package sysinfo

import "fmt"

// percent scales used/total to 0..100, defined as 0 for an empty total
func percent(used, total uint64) float64 {
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total) * 100
}

// formatGB renders a byte count as gibibytes with two decimals
func formatGB(bytes uint64) string {
	return fmt.Sprintf("%.2f GB", float64(bytes)/(1<<30))
}

func truncate(s string, limit int) string {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
