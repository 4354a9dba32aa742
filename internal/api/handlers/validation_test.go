package handlers

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterValidators(t *testing.T) {
	require.NoError(t, RegisterValidators())
	v := binding.Validator.Engine().(*validator.Validate)

	tests := []struct {
		tag   string
		value interface{}
		valid bool
	}{
		{"pitch", "C4", true},
		{"pitch", "Bb3", true},
		{"pitch", "F#5", true},
		{"pitch", "H4", false},
		{"pitch", "rest", false},
		{"pitch", "", false},
		{"pitch_or_rest", "rest", true},
		{"pitch_or_rest", "Eb4", true},
		{"pitch_or_rest", "E", false},
		{"species", 1, true},
		{"species", 2, true},
		{"species", 3, false},
	}

	for _, tt := range tests {
		err := v.Var(tt.value, tt.tag)
		if tt.valid {
			assert.NoError(t, err, "%s %v", tt.tag, tt.value)
		} else {
			assert.Error(t, err, "%s %v", tt.tag, tt.value)
		}
	}
}

func TestFormatUptime(t *testing.T) {
	assert.Equal(t, "5.00s", formatUptime(5*time.Second))
	assert.Equal(t, "2m3.50s", formatUptime(2*time.Minute+3500*time.Millisecond))
	assert.Equal(t, "1h0m1.00s", formatUptime(time.Hour+time.Second))
}
