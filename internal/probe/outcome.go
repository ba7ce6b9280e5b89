package probe

import (
	"net/http"
	"time"

	"github.com/hamed0406/uptimemonitor/internal/domain"
)

// Outcome is what a single GET produced: either a response with a status
// code, or a failure carrying its cause.
type Outcome struct {
	StatusCode int
	Err        error
	Latency    time.Duration
}

func Responded(code int, latency time.Duration) Outcome {
	return Outcome{StatusCode: code, Latency: latency}
}

func Failed(err error, latency time.Duration) Outcome {
	return Outcome{Err: err, Latency: latency}
}

// Classify maps the outcome onto up/down/error. Only an exact 200 is up.
func (o Outcome) Classify() domain.Status {
	switch {
	case o.Err != nil, o.StatusCode == 0:
		return domain.StatusError
	case o.StatusCode == http.StatusOK:
		return domain.StatusUp
	default:
		return domain.StatusDown
	}
}
