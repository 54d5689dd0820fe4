// © 2026 Meridian Labs Inc.
//
// SPDX-License-Identifier: Apache-2.0

package resources

// Status is the numeric processing state the API reports for a resource.
type Status int

const (
	StatusWaiting    Status = 0
	StatusQueued     Status = 1
	StatusStarted    Status = 2
	StatusInProgress Status = 3
	StatusSummarized Status = 4
	StatusFinished   Status = 5
	StatusFaulty     Status = -1
	StatusUnknown    Status = -2
)

// Terminal reports whether the status will not change without outside
// intervention.
func (s Status) Terminal() bool {
	return s == StatusFinished || s == StatusFaulty
}

func (s Status) String() string {
	switch s {
	case StatusWaiting:
		return "waiting"
	case StatusQueued:
		return "queued"
	case StatusStarted:
		return "started"
	case StatusInProgress:
		return "in-progress"
	case StatusSummarized:
		return "summarized"
	case StatusFinished:
		return "finished"
	case StatusFaulty:
		return "faulty"
	default:
		return "unknown"
	}
}
