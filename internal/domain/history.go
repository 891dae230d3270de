package domain

import "time"

// HistoryRecord describes one past invocation.
type HistoryRecord struct {
	Timestamp   time.Time `json:"timestamp"`
	Prompt      string    `json:"prompt"`
	Command     string    `json:"command"`
	Model       string    `json:"model"`
	Destructive bool      `json:"destructive"`
	Executed    bool      `json:"executed"`
	ExitCode    int       `json:"exit_code"`
	DurationMS  int64     `json:"duration_ms"`
}
