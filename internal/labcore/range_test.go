package labcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsOutOfRange(t *testing.T) {
	tests := []struct {
		name   string
		value  string
		min    string
		max    string
		expect bool
	}{
		{"below min", "10", "12", "16", true},
		{"above max", "17", "12", "16", true},
		{"within bounds", "13", "12", "16", false},
		{"comma decimal within bounds", "0,90", "0.7", "1.1", false},
		{"comma decimal bounds", "1,5", "0,7", "1,1", true},
		{"missing min", "5", "", "10", false},
		{"missing max", "5", "1", "", false},
		{"missing value", "", "1", "10", false},
		{"non numeric value", "positif", "1", "10", false},
		{"non numeric bound", "5", "N/A", "10", false},
		{"equal to min", "12", "12", "16", false},
		{"equal to max", "16", "12", "16", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, IsOutOfRange(tt.value, tt.min, tt.max))
		})
	}
}
