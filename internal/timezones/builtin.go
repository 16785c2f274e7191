package timezones

import "tzpick/internal/domain"

// builtin is served when the remote list cannot be loaded
var builtin = []string{
	"Europe/Moscow",
	"America/New_York",
	"America/Los_Angeles",
	"Europe/London",
	"Asia/Tokyo",
	"Australia/Sydney",
	"Africa/Cairo",
	"Asia/Dubai",
	"Asia/Shanghai",
	"Europe/Berlin",
	"Europe/Paris",
	"Pacific/Honolulu",
	"Asia/Kolkata",
	"America/Chicago",
	"America/Toronto",
}

// Builtin returns a fresh copy of the built-in timezone options
func Builtin() []domain.Option {
	return domain.OptionsFromStrings(builtin)
}
