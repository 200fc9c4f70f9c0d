package waitlist

import (
	"strings"
	"time"

	"github.com/akeren/waitlist-backend/internal/models"
)

// WaitlistConfirmationMessage is the fixed confirmation returned on signup.
const WaitlistConfirmationMessage = "Thanks for joining the waitlist!"

// DefaultDisplayName is shown for entries that signed up without a name.
const DefaultDisplayName = "Friend"

// MaskedEmailPlaceholder replaces emails that cannot be masked.
const MaskedEmailPlaceholder = "hidden"

type CreateWaitlistEntryRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name"`
}

type CreateWaitlistEntryResponse struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

type WaitlistCountResponse struct {
	Count int64 `json:"count"`
}

type RecentWaitlistEntry struct {
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	CreatedAt *time.Time `json:"created_at"`
}

type RecentWaitlistEntriesResponse struct {
	Items []RecentWaitlistEntry `json:"items"`
}

// ========================================
// Mappers
// ========================================

func ToWaitlistEntryModel(req *CreateWaitlistEntryRequest) *models.WaitlistEntry {
	if req == nil {
		return nil
	}
	return &models.WaitlistEntry{
		Email: req.Email,
		Name:  req.Name,
	}
}

func ToRecentWaitlistEntry(entry *models.WaitlistEntry) RecentWaitlistEntry {
	if entry == nil {
		return RecentWaitlistEntry{}
	}

	name := entry.Name
	if name == "" {
		name = DefaultDisplayName
	}

	return RecentWaitlistEntry{
		Email:     MaskEmail(entry.Email),
		Name:      name,
		CreatedAt: entry.CreatedAt,
	}
}

// MaskEmail anonymizes an email's local part for public display. Emails
// without an "@" (or empty ones) become "hidden"; local parts of one or two
// characters collapse to "<first>*"; longer local parts keep their first and
// last characters with stars in between. The domain is left untouched.
func MaskEmail(email string) string {
	if email == "" || !strings.Contains(email, "@") {
		return MaskedEmailPlaceholder
	}

	local, domain, _ := strings.Cut(email, "@")
	if local == "" {
		return MaskedEmailPlaceholder
	}

	runes := []rune(local)

	var masked string
	if len(runes) <= 2 {
		masked = string(runes[0]) + "*"
	} else {
		masked = string(runes[0]) + strings.Repeat("*", len(runes)-2) + string(runes[len(runes)-1])
	}

	return masked + "@" + domain
}
