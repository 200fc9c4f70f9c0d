package waitlist

import (
	"strings"
	"testing"

	"github.com/akeren/waitlist-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestMaskEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{"empty email", "", "hidden"},
		{"no at sign", "not-an-email", "hidden"},
		{"empty local part", "@example.com", "hidden"},
		{"single char local part", "a@x.com", "a*@x.com"},
		{"two char local part", "ab@example.com", "a*@example.com"},
		{"three char local part", "abc@example.com", "a*c@example.com"},
		{"long local part", "jonathan@example.com", "j******n@example.com"},
		{"domain untouched", "user@sub.example.co.uk", "u**r@sub.example.co.uk"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MaskEmail(tt.email))
		})
	}
}

func TestMaskEmail_PreservesLocalPartLength(t *testing.T) {
	for _, local := range []string{"abc", "abcd", "averylonglocalpart"} {
		masked := MaskEmail(local + "@example.com")
		maskedLocal, _, _ := strings.Cut(masked, "@")

		assert.Len(t, maskedLocal, len(local))
		assert.Equal(t, local[0], maskedLocal[0])
		assert.Equal(t, local[len(local)-1], maskedLocal[len(maskedLocal)-1])
		assert.Equal(t, strings.Repeat("*", len(local)-2), maskedLocal[1:len(maskedLocal)-1])
	}
}

func TestToRecentWaitlistEntry(t *testing.T) {
	t.Run("nil entry", func(t *testing.T) {
		assert.Equal(t, RecentWaitlistEntry{}, ToRecentWaitlistEntry(nil))
	})

	t.Run("missing name defaults to Friend", func(t *testing.T) {
		entry := ToRecentWaitlistEntry(&models.WaitlistEntry{Email: "a@x.com"})
		assert.Equal(t, DefaultDisplayName, entry.Name)
		assert.Equal(t, "a*@x.com", entry.Email)
		assert.Nil(t, entry.CreatedAt)
	})

	t.Run("provided name kept", func(t *testing.T) {
		entry := ToRecentWaitlistEntry(&models.WaitlistEntry{Email: "ab@example.com", Name: "Al"})
		assert.Equal(t, "Al", entry.Name)
		assert.Equal(t, "a*@example.com", entry.Email)
	})
}
