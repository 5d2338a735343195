package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRefNumber(t *testing.T) {
	pattern := regexp.MustCompile(`^AFRO-[0-9A-F]{10}$`)
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref := NewRefNumber("AFRO-")
		assert.True(t, pattern.MatchString(ref), "unexpected ref number %s", ref)
		assert.False(t, seen[ref])
		seen[ref] = true
	}
}

func TestFileNames(t *testing.T) {
	assert.Equal(t, "ticket_AFRO-12AB34CD56.png", TicketFileName("AFRO-12AB34CD56"))
	assert.Equal(t, "receipt_AFRO-12AB34CD56.jpg", ReceiptFileName("AFRO-12AB34CD56", "IMG_0001.JPG"))

	name := UploadFileName("cv", "resume.pdf")
	assert.Regexp(t, `^cv_[0-9a-f]{32}\.pdf$`, name)
	assert.NotEqual(t, name, UploadFileName("cv", "resume.pdf"))
}
