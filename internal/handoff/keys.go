package handoff

import "time"

// Session-state keys. Writers and readers on both sides of a navigation share them.
const (
	KeyScrollToContact    = "scrollToContact"
	KeyPropertyInquiry    = "propertyInquiry"
	KeyHomeScrollPosition = "homeScrollPosition"
)

const (
	flagSet = "true"

	// ContactSectionID is the element the contact scroll targets.
	ContactSectionID = "contact"

	// DefaultScrollDelay lets layout settle after the navigation before scrolling.
	DefaultScrollDelay = 100 * time.Millisecond
)
