package probe

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hamed0406/uptimemonitor/internal/domain"
)

func TestOutcome_Classify(t *testing.T) {
	cases := []struct {
		name string
		in   Outcome
		want domain.Status
	}{
		{"200", Responded(200, 0), domain.StatusUp},
		{"201 is not up", Responded(201, 0), domain.StatusDown},
		{"301", Responded(301, 0), domain.StatusDown},
		{"404", Responded(404, 0), domain.StatusDown},
		{"503", Responded(503, 0), domain.StatusDown},
		{"transport failure", Failed(errors.New("connection refused"), 0), domain.StatusError},
		{"no response", Outcome{}, domain.StatusError},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, c.in.Classify())
		})
	}
}
