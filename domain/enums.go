// Package domain defines the core domain models for the forecast client.
package domain

// JobStatus represents the server-side state of a prediction job. The
// client only samples it; transitions are never observed directly.
type JobStatus string

const (
	JobStatusPending    JobStatus = "pending"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusFailed     JobStatus = "failed"
)

// Tier is a purchasable account status. The set is closed; passing
// anything else to a purchase is a programming error on the caller's
// side, not something validated at runtime.
type Tier string

const (
	TierSilver  Tier = "silver"
	TierGold    Tier = "gold"
	TierDiamond Tier = "diamond"
)

// HistoryMode selects between the fixed recent window and the full
// listing. The two modes are independent server queries, never a
// client-side slice of one another.
type HistoryMode string

const (
	HistoryModeRecent HistoryMode = "recent"
	HistoryModeAll    HistoryMode = "all"
)
