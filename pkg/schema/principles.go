package schema

// Principle is one entry of a fixed external taxonomy: either a
// Privacy-by-Design principle or a Nielsen usability heuristic.
type Principle struct {
	// ID is the short key used in Alignment maps.
	ID string

	// Name is the full principle name.
	Name string

	// Abbr is the conventional short label (P1..P7, H1..H10).
	Abbr string

	// Description explains the principle.
	Description string
}

// PbdPrinciples returns Cavoukian's 7 Privacy-by-Design principles.
func PbdPrinciples() []Principle {
	return []Principle{
		{
			ID:   "proactive",
			Name: "Proactive not Reactive",
			Abbr: "P1",
			Description: "Privacy measures should anticipate and prevent " +
				"privacy invasions before they occur, not wait for them " +
				"to happen.",
		},
		{
			ID:   "default",
			Name: "Privacy as the Default",
			Abbr: "P2",
			Description: "Privacy protection should be built into systems " +
				"by default, without requiring action from the user.",
		},
		{
			ID:   "embedded",
			Name: "Privacy Embedded into Design",
			Abbr: "P3",
			Description: "Privacy should be considered as an essential " +
				"component of system design, not an add-on.",
		},
		{
			ID:   "positive",
			Name: "Full Functionality - Positive-Sum",
			Abbr: "P4",
			Description: "Privacy should not come at the expense of " +
				"functionality; both can be achieved.",
		},
		{
			ID:   "security",
			Name: "End-to-End Security",
			Abbr: "P5",
			Description: "Security measures should protect data throughout " +
				"its entire lifecycle.",
		},
		{
			ID:   "visibility",
			Name: "Visibility and Transparency",
			Abbr: "P6",
			Description: "All stakeholders should be assured that data " +
				"practices are operating according to stated promises.",
		},
		{
			ID:   "respect",
			Name: "Respect for User Privacy",
			Abbr: "P7",
			Description: "User interests should be prioritized with strong " +
				"privacy defaults and user-friendly options.",
		},
	}
}

// NielsenHeuristics returns Nielsen's 10 usability heuristics.
func NielsenHeuristics() []Principle {
	return []Principle{
		{
			ID:   "visibility",
			Name: "Visibility of system status",
			Abbr: "H1",
			Description: "The system should always keep users informed " +
				"about what is going on.",
		},
		{
			ID:   "match",
			Name: "Match between system and real world",
			Abbr: "H2",
			Description: "The system should speak the users' language and " +
				"follow real-world conventions.",
		},
		{
			ID:   "control",
			Name: "User control and freedom",
			Abbr: "H3",
			Description: "Users should be able to undo and redo actions and " +
				"have clearly marked emergency exits.",
		},
		{
			ID:   "consistency",
			Name: "Consistency and standards",
			Abbr: "H4",
			Description: "Users should not have to wonder whether different " +
				"words or actions mean the same thing.",
		},
		{
			ID:   "prevention",
			Name: "Error prevention",
			Abbr: "H5",
			Description: "Design should prevent problems from occurring in " +
				"the first place.",
		},
		{
			ID:   "recognition",
			Name: "Recognition rather than recall",
			Abbr: "H6",
			Description: "Instructions should be visible or easily " +
				"retrievable, minimizing memory load.",
		},
		{
			ID:   "flexibility",
			Name: "Flexibility and efficiency of use",
			Abbr: "H7",
			Description: "Design should cater to both inexperienced and " +
				"experienced users.",
		},
		{
			ID:   "aesthetic",
			Name: "Aesthetic and minimalist design",
			Abbr: "H8",
			Description: "Interfaces should not contain irrelevant or " +
				"rarely needed information.",
		},
		{
			ID:   "recovery",
			Name: "Help users recognize, diagnose, and recover from errors",
			Abbr: "H9",
			Description: "Error messages should be expressed in plain " +
				"language and suggest solutions.",
		},
		{
			ID:   "help",
			Name: "Help and documentation",
			Abbr: "H10",
			Description: "Documentation should be easy to search, focused " +
				"on user tasks, and list concrete steps.",
		},
	}
}

// Badge is a contributor recognition tier.
type Badge struct {
	Name  string
	Icon  string
	Color string
}

// badgeThresholds lists contribution-count tiers from highest to
// lowest so BadgeForCount can take the first match.
var badgeThresholds = []struct {
	min   int
	badge Badge
}{
	{25, Badge{Name: "Master Investigator", Icon: "shield-crown", Color: "platinum"}},
	{10, Badge{Name: "Sentinel", Icon: "shield-badge", Color: "gold"}},
	{5, Badge{Name: "Guardian", Icon: "shield-star", Color: "silver"}},
	{1, Badge{Name: "Privacy Pioneer", Icon: "shield-check", Color: "bronze"}},
}

// BadgeForCount maps a contribution count to its badge tier.
// Counts below the first tier still earn the starting badge.
func BadgeForCount(contributionCount int) Badge {
	for _, t := range badgeThresholds {
		if contributionCount >= t.min {
			return t.badge
		}
	}
	return badgeThresholds[len(badgeThresholds)-1].badge
}
