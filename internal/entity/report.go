package entity

import "time"

// ReportReasons is the canonical set of reasons a viewer may pick; anything
// else is rejected before any mutation.
var ReportReasons = []string{
	"Inappropriate Content",
	"Hate Speech or Harassment",
	"Misleading or False Information",
	"Spam or Promotional Content",
	"Sensitive or Disturbing Content",
	"Other",
}

func ValidReportReason(reason string) bool {
	for _, r := range ReportReasons {
		if r == reason {
			return true
		}
	}
	return false
}

type Report struct {
	ID            string    `json:"id"`
	LessonID      string    `json:"lesson_id"`
	LessonTitle   string    `json:"lesson_title"`
	ReporterEmail string    `json:"reporter_email"`
	ReporterName  string    `json:"reporter_name"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

// ReportAggregate is one moderation queue entry: all reports against a single
// lesson folded together for admin triage. Ordering is the caller's choice.
type ReportAggregate struct {
	LessonID      string    `json:"lesson_id"`
	LessonTitle   string    `json:"lesson_title"`
	ReporterCount int64     `json:"reporter_count"`
	Reasons       []string  `json:"reasons"`
	LatestAt      time.Time `json:"latest_at"`
	Reports       []*Report `json:"reports"`
}
