package domain

import (
	"time"

	"github.com/google/uuid"
)

// Status is the classification of a single probe.
type Status string

const (
	StatusUp    Status = "up"
	StatusDown  Status = "down"
	StatusError Status = "error"
)

func (s Status) String() string { return string(s) }

// CheckType labels which logical target was probed.
type CheckType string

const (
	CheckWebsite CheckType = "Website"
	CheckLogin   CheckType = "Login"
)

// CheckResult is the immutable record of one probe. It is passed and stored
// by value; nothing hands out pointers into a store.
type CheckResult struct {
	ID        string    `json:"id" yaml:"id"`
	CheckType CheckType `json:"checkType" yaml:"checkType"`
	Status    Status    `json:"status" yaml:"status"`
	Timestamp time.Time `json:"timestamp" yaml:"timestamp"`
}

// NewCheckResult stamps a result with a fresh random id.
func NewCheckResult(checkType CheckType, status Status, at time.Time) CheckResult {
	return CheckResult{
		ID:        uuid.NewString(),
		CheckType: checkType,
		Status:    status,
		Timestamp: at,
	}
}
