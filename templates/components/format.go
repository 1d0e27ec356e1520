package components

import (
	"fmt"
	"time"
)

// FormatRelativeTime renders how long ago t was, falling back to a date after a week
func FormatRelativeTime(t time.Time) string {
	return formatRelativeTime(t, time.Now())
}

func formatRelativeTime(t, now time.Time) string {
	duration := now.Sub(t)

	if duration < time.Minute {
		return "just now"
	} else if duration < time.Hour {
		minutes := int(duration.Minutes())
		if minutes == 1 {
			return "1 minute ago"
		}
		return fmt.Sprintf("%d minutes ago", minutes)
	} else if duration < 24*time.Hour {
		hours := int(duration.Hours())
		if hours == 1 {
			return "1 hour ago"
		}
		return fmt.Sprintf("%d hours ago", hours)
	} else if duration < 7*24*time.Hour {
		days := int(duration.Hours() / 24)
		if days == 1 {
			return "1 day ago"
		}
		return fmt.Sprintf("%d days ago", days)
	}
	return t.Format("Jan 2, 2006")
}

// FormatDueIn describes a pending assignment time for the admin table
func FormatDueIn(due *time.Time, now time.Time) string {
	if due == nil {
		return "-"
	}
	d := due.Sub(now).Round(time.Second)
	if d <= 0 {
		return "overdue"
	}
	return "in " + d.String()
}
