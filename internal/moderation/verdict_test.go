package moderation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_NilVerdict(t *testing.T) {
	_, err := Evaluate(nil)
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestEvaluate_FlagsTakePriorityOverScore(t *testing.T) {
	// score well under the threshold, but the explicit flag must still reject
	v := &Verdict{
		IsFlagged:  true,
		MaxKey:     "hate",
		MaxValue:   0.001,
		SaferValue: 0.005,
	}

	d, err := Evaluate(v)
	assert.NoError(t, err)
	assert.False(t, d.Safe)
	assert.Equal(t, "hate", d.Reason)
}

func TestEvaluate_SaferFlag(t *testing.T) {
	v := &Verdict{
		IsSaferFlagged: true,
		MaxKey:         "",
		MaxValue:       0.0,
		SaferValue:     0.005,
	}

	d, err := Evaluate(v)
	assert.NoError(t, err)
	assert.False(t, d.Safe)
	assert.Equal(t, "policy_violation", d.Reason)
}

func TestEvaluate_ThresholdBoundary(t *testing.T) {
	tests := []struct {
		name     string
		maxValue float64
		safer    float64
		wantSafe bool
	}{
		{"equal to threshold rejects", 0.005, 0.005, false},
		{"just under threshold accepts", 0.004, 0.005, true},
		{"above threshold rejects", 0.9, 0.005, false},
		{"zero score accepts", 0, 0.005, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := &Verdict{MaxKey: "toxicity", MaxValue: tt.maxValue, SaferValue: tt.safer}
			d, err := Evaluate(v)
			assert.NoError(t, err)
			assert.Equal(t, tt.wantSafe, d.Safe)
			if !tt.wantSafe {
				assert.Equal(t, "toxicity", d.Reason)
				assert.Contains(t, d.Message, "safety threshold")
			}
		})
	}
}

func TestEvaluate_SafeVerdictKeepsClassifierMessage(t *testing.T) {
	v := &Verdict{MaxValue: 0.001, SaferValue: 0.005, Message: "all clear"}

	d, err := Evaluate(v)
	assert.NoError(t, err)
	assert.True(t, d.Safe)
	assert.Equal(t, "all clear", d.Message)
}
