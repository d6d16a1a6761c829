package labcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		raw    string
		expect string
	}{
		{"0551 23 45 67", "213551234567"},
		{"0551234567", "213551234567"},
		{"213551234567", "213551234567"},
		{"551234567", "213551234567"},
		{" 0551\t234567 ", "213551234567"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expect, NormalizePhone(tt.raw), "raw: %q", tt.raw)
	}
}

func TestWhatsAppLink(t *testing.T) {
	link := WhatsAppLink("0551234567", "Bonjour, vos résultats sont disponibles")

	assert.Contains(t, link, "https://wa.me/213551234567?text=")
	assert.NotContains(t, link, " ", "message must be URL-encoded")
}
