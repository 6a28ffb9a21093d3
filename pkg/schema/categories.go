package schema

import (
	"slices"

	"github.com/gnames/gnuuid"
)

// InitialCategory is seed data for one pattern category.
type InitialCategory struct {
	Name        string
	Slug        string
	OrderIndex  int
	Description string
	Icon        string
}

// InitialCategories returns the curated pattern categories the
// catalog ships with, in display order.
func InitialCategories() []InitialCategory {
	return []InitialCategory{
		{
			Name:       "Account Deletion",
			Slug:       "account-deletion",
			OrderIndex: 1,
			Description: "Permanent account removal workflows that ensure " +
				"complete data erasure while maintaining user trust.",
			Icon: "user-x",
		},
		{
			Name:       "Biometric Privacy",
			Slug:       "biometric-privacy",
			OrderIndex: 2,
			Description: "Facial recognition, fingerprint, and other biometric " +
				"data handling interfaces that prioritize consent and security.",
			Icon: "fingerprint",
		},
		{
			Name:       "Child Privacy",
			Slug:       "child-privacy",
			OrderIndex: 3,
			Description: "COPPA-compliant patterns for minors including parental " +
				"consent, age verification, and child-safe interfaces.",
			Icon: "baby",
		},
		{
			Name:       "Consent Management",
			Slug:       "consent-management",
			OrderIndex: 4,
			Description: "User consent collection and management systems that " +
				"make choices clear and revocable.",
			Icon: "check-circle",
		},
		{
			Name:       "Cookie Banners",
			Slug:       "cookie-banners",
			OrderIndex: 5,
			Description: "GDPR-compliant cookie notices that balance compliance " +
				"with user experience.",
			Icon: "cookie",
		},
		{
			Name:       "Data Access Rights",
			Slug:       "data-access-rights",
			OrderIndex: 6,
			Description: "User data access interfaces that enable individuals to " +
				"view, download, and understand their personal data.",
			Icon: "database",
		},
		{
			Name:       "Data Export",
			Slug:       "data-export",
			OrderIndex: 7,
			Description: "Data portability patterns that allow users to easily " +
				"export their information to other services.",
			Icon: "download",
		},
		{
			Name:       "Data Retention",
			Slug:       "data-retention",
			OrderIndex: 8,
			Description: "Data lifecycle management interfaces that clearly " +
				"communicate retention periods and deletion processes.",
			Icon: "calendar-clock",
		},
		{
			Name:       "Device Permissions",
			Slug:       "device-permissions",
			OrderIndex: 9,
			Description: "Camera, microphone, location and other device " +
				"permission interfaces that explain purpose and enable " +
				"granular control.",
			Icon: "smartphone",
		},
		{
			Name:       "Incident Notifications",
			Slug:       "incident-notifications",
			OrderIndex: 10,
			Description: "Data breach notification patterns that communicate " +
				"incidents clearly while maintaining user trust.",
			Icon: "alert-triangle",
		},
		{
			Name:       "Just-in-Time Consent",
			Slug:       "just-in-time-consent",
			OrderIndex: 11,
			Description: "Contextual permission requests that appear exactly " +
				"when data collection occurs with clear explanations.",
			Icon: "clock",
		},
		{
			Name:       "Permission Requests",
			Slug:       "permission-requests",
			OrderIndex: 12,
			Description: "Clear permission explanations that help users " +
				"understand what they're granting access to and why.",
			Icon: "key",
		},
		{
			Name:       "Privacy Dashboards",
			Slug:       "privacy-dashboards",
			OrderIndex: 13,
			Description: "Centralized privacy control centers that give users " +
				"visibility and control over their data and privacy settings.",
			Icon: "dashboard",
		},
		{
			Name:       "Privacy Defaults",
			Slug:       "privacy-defaults",
			OrderIndex: 14,
			Description: "Privacy-protective default settings that maximize " +
				"user privacy without requiring action.",
			Icon: "shield",
		},
		{
			Name:       "Privacy Notices",
			Slug:       "privacy-notices",
			OrderIndex: 15,
			Description: "Policy presentation patterns that make privacy " +
				"information digestible and actionable for users.",
			Icon: "file-text",
		},
		{
			Name:       "Third-Party Tracking",
			Slug:       "third-party-tracking",
			OrderIndex: 16,
			Description: "Ad and tracker management interfaces that give users " +
				"control over third-party data collection.",
			Icon: "eye-off",
		},
	}
}

// CategoryID returns the deterministic UUID v5 for a category slug.
// Seeding the same slug always yields the same primary key.
func CategoryID(slug string) string {
	return gnuuid.New(slug).String()
}

// PatternID returns the deterministic UUID v5 for a pattern,
// namespaced by its category slug.
func PatternID(categorySlug, patternSlug string) string {
	return gnuuid.New(categorySlug + "/" + patternSlug).String()
}

// InitialCategoryBySlug finds a seed category by its slug.
func InitialCategoryBySlug(slug string) (InitialCategory, bool) {
	cats := InitialCategories()
	idx := slices.IndexFunc(cats, func(c InitialCategory) bool {
		return c.Slug == slug
	})
	if idx < 0 {
		return InitialCategory{}, false
	}
	return cats[idx], true
}
