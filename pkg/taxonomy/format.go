package taxonomy

import "fmt"

// FormatSize renders a byte count for humans.
func FormatSize(bytes int64) string {
	const (
		kb = 1024
		mb = kb * 1024
	)
	switch {
	case bytes < kb:
		return fmt.Sprintf("%d B", bytes)
	case bytes < mb:
		return fmt.Sprintf("%.2f KB", float64(bytes)/float64(kb))
	default:
		return fmt.Sprintf("%.2f MB", float64(bytes)/float64(mb))
	}
}

// FormatAge renders an age in seconds as a coarse relative time.
func FormatAge(secs int64) string {
	const (
		hour = 3600
		day  = 24 * hour
	)
	switch {
	case secs < 60:
		return "just now"
	case secs < hour:
		return fmt.Sprintf("%d minutes ago", secs/60)
	case secs < day:
		return fmt.Sprintf("%d hours ago", secs/hour)
	default:
		return fmt.Sprintf("%d days ago", secs/day)
	}
}
