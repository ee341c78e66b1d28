package domain

// View identifies one navigable surface of the platform. The set is
// closed; navigation requests outside it resolve to ViewLanding.
type View string

const (
	ViewLanding           View = "LANDING"
	ViewAbout             View = "ABOUT"
	ViewFoundations       View = "FOUNDATIONS"
	ViewDashboard         View = "DASHBOARD"
	ViewOpportunityDetail View = "OPPORTUNITY_DETAIL"
	ViewRegisterStartup   View = "REGISTER_STARTUP"
	ViewContextSetup      View = "RAG_SETUP"
	ViewBlog              View = "BLOG"
	ViewDocs              View = "DOCS"
	ViewPrivacy           View = "PRIVACY"
	ViewTerms             View = "TERMS"
	ViewRisk              View = "RISK"
	ViewAdmin             View = "ADMIN"
	ViewFounderPortal     View = "FOUNDER_PORTAL"
)

var allViews = map[View]struct{}{
	ViewLanding:           {},
	ViewAbout:             {},
	ViewFoundations:       {},
	ViewDashboard:         {},
	ViewOpportunityDetail: {},
	ViewRegisterStartup:   {},
	ViewContextSetup:      {},
	ViewBlog:              {},
	ViewDocs:              {},
	ViewPrivacy:           {},
	ViewTerms:             {},
	ViewRisk:              {},
	ViewAdmin:             {},
	ViewFounderPortal:     {},
}

// Valid reports whether v belongs to the closed view set.
func (v View) Valid() bool {
	_, ok := allViews[v]
	return ok
}
