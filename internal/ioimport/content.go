package ioimport

import (
	"fmt"
	"strings"
)

// PatternContent is the curated long-form text attached to an
// imported pattern.
type PatternContent struct {
	Title       string
	Description string
	Explanation string
	Relevance   string
}

// curatedContent holds editor-written text keyed by pattern slug.
// Patterns without an entry get generic text synthesized from the
// raw scraped name.
var curatedContent = map[string]PatternContent{
	"cookie-consent-banner": {
		Title:       "Cookie Consent Banner",
		Description: "Allow users to control website cookies and tracking technologies",
		Explanation: "Cookie consent banners are legally required in many jurisdictions to " +
			"inform users about data collection and obtain consent for non-essential " +
			"cookies. They provide transparency about tracking technologies and give " +
			"users control over their data.",
		Relevance: "Essential for GDPR and ePrivacy compliance. Required when websites use " +
			"cookies for analytics, advertising, or other non-essential purposes.",
	},
	"just-in-time-permission": {
		Title:       "Just-in-Time Permission Request",
		Description: "Request permissions at the moment they are needed with clear context",
		Explanation: "Just-in-time permissions ask for access to sensitive resources " +
			"(camera, location, etc.) only when the user is about to use a feature that " +
			"requires it, providing immediate context for why the permission is needed.",
		Relevance: "Improves consent quality by providing contextual information when users " +
			"are most receptive. Reduces permission fatigue and increases grant rates.",
	},
	"granular-permission-control": {
		Title:       "Granular Permission Control",
		Description: "Provide fine-grained control over different types of permissions",
		Explanation: "Granular permissions allow users to selectively grant access to " +
			"specific features or data types rather than all-or-nothing consent. This " +
			"enables users to use services while maintaining control over sensitive data.",
		Relevance: "Aligns with data minimization principles. Allows users to participate " +
			"in services while maintaining privacy boundaries.",
	},
	"privacy-dashboard": {
		Title:       "Privacy Dashboard",
		Description: "Centralized interface for managing all privacy settings and data",
		Explanation: "Privacy dashboards provide a single location where users can view " +
			"and manage all their privacy settings, see what data is collected, and " +
			"control how it is used.",
		Relevance: "Supports transparency and user control requirements. Makes it easier " +
			"for users to exercise their privacy rights in one place.",
	},
	"third-party-tracking-control": {
		Title:       "Third-Party Tracking Control",
		Description: "Controls for managing third-party trackers and advertising",
		Explanation: "These controls allow users to manage how third-party services track " +
			"them across websites and apps, including advertising networks and analytics " +
			"providers.",
		Relevance: "Critical for compliance with tracking regulations and giving users " +
			"control over cross-site tracking and behavioral advertising.",
	},
	"device-permission-flow": {
		Title:       "Device Permission Flow",
		Description: "System-level flows for managing device permissions",
		Explanation: "Device permission flows handle requests for access to device " +
			"capabilities like camera, microphone, contacts, and location at the " +
			"operating system level.",
		Relevance: "Provides consistent permission experiences across apps and ensures " +
			"users maintain control over sensitive device capabilities.",
	},
	"contextual-consent": {
		Title:       "Contextual Consent",
		Description: "Obtain consent with relevant context about data use",
		Explanation: "Contextual consent provides users with specific information about " +
			"how their data will be used at the point of collection, making the consent " +
			"more informed and meaningful.",
		Relevance: "Improves consent quality by ensuring users understand the implications " +
			"of their choices. Required for valid consent under GDPR.",
	},
	"child-privacy-protection": {
		Title:       "Child Privacy Protection",
		Description: "Special protections and controls for children's data",
		Explanation: "Child privacy patterns implement age-appropriate design, parental " +
			"controls, and enhanced protections for minors' personal data.",
		Relevance: "Required by COPPA, GDPR Article 8, and other child protection " +
			"regulations. Essential for services accessible to minors.",
	},
	"privacy-by-default": {
		Title:       "Privacy by Default",
		Description: "Privacy-protective settings enabled by default",
		Explanation: "Privacy by default ensures that the most privacy-protective settings " +
			"are enabled without requiring user action. Users can opt into less private " +
			"settings if desired.",
		Relevance: "Core principle of GDPR Article 25. Protects users who don't actively " +
			"manage privacy settings.",
	},
	"data-access-request": {
		Title:       "Data Access Request",
		Description: "Allow users to request and download their personal data",
		Explanation: "Data access patterns enable users to request a copy of all personal " +
			"data an organization holds about them, typically in a portable format.",
		Relevance: "Required by GDPR Article 15 (right of access) and similar regulations. " +
			"Fundamental transparency right.",
	},
	"breach-notification": {
		Title:       "Data Breach Notification",
		Description: "Notify users about security incidents affecting their data",
		Explanation: "Breach notification patterns inform users when their personal data " +
			"may have been compromised in a security incident, including what data was " +
			"affected and recommended actions.",
		Relevance: "Required by GDPR Article 34 and breach notification laws. Critical for " +
			"maintaining user trust after incidents.",
	},
	"biometric-privacy-control": {
		Title:       "Biometric Privacy Control",
		Description: "Controls for biometric data like fingerprints and face recognition",
		Explanation: "Biometric privacy controls allow users to manage how their biometric " +
			"data is collected, stored, and used, with options to delete biometric " +
			"templates.",
		Relevance: "Biometric data is considered special category data under GDPR. Subject " +
			"to strict regulations in many jurisdictions.",
	},
	"data-retention-control": {
		Title:       "Data Retention Control",
		Description: "Allow users to control how long their data is retained",
		Explanation: "Data retention controls let users set preferences for how long their " +
			"data is kept, request deletion, or enable automatic deletion after " +
			"specified periods.",
		Relevance: "Supports data minimization principles and right to erasure. Helps " +
			"organizations comply with retention limitations.",
	},
}

// ContentFor returns the curated text for a pattern slug, or text
// synthesized from the scraped pattern when no curation exists.
func ContentFor(slug string, p ParsedPattern) PatternContent {
	if content, ok := curatedContent[slug]; ok {
		return content
	}

	description := p.Description
	if description == "" {
		description = fmt.Sprintf("Patterns for %s",
			strings.ToLower(p.PatternName))
	}

	return PatternContent{
		Title:       p.PatternName,
		Description: description,
		Explanation: fmt.Sprintf(
			"%s patterns help users understand and control how their "+
				"data is collected and used.", p.PatternName),
		Relevance: "Important for privacy compliance and user trust.",
	}
}
