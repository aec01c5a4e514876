package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStrategies(t *testing.T) {
	tests := []struct {
		name string
		b    *Backoff
		exp  []time.Duration
	}{
		{"exponential", NewExponential(time.Millisecond, 5*time.Millisecond), []time.Duration{1, 2, 4, 5}},
		{"linear", NewLinear(time.Millisecond, 0), []time.Duration{1, 2, 3, 4}},
		{"constant", NewConstant(time.Millisecond), []time.Duration{1, 1, 1, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			for _, exp := range tt.exp {
				req.Equal(exp*time.Millisecond, tt.b.Next())
				req.NoError(tt.b.Backoff(context.Background()))
			}
			tt.b.Reset()
			req.Equal(tt.exp[0]*time.Millisecond, tt.b.Next())
		})
	}
}

func TestBackoffCancelled(t *testing.T) {
	c, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewConstant(time.Hour).Backoff(c)
	require.Equal(t, context.Canceled, err)
}
