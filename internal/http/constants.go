package httpx

// CurrentPage constants identify pages in templates and navigation.
const (
	PageLanding         = "landing"
	PageLogin           = "login"
	PageRegister        = "register"
	PageDashboard       = "dashboard"
	PageInventory       = "inventory"
	PageRecommendations = "recommendations"
	PageAlerts          = "alerts"
	PageReports         = "reports"
)

// Template paths used for loading templates in tests and production.
const (
	TemplatePathFromRoot = "frontend/templates"       // From project root
	TemplatePathFromTest = "../../frontend/templates" // From internal/http test files
)

// Page load failures. Upstream 4xx, 5xx and transport errors all map to the same text.
const (
	MsgDashboardLoadFailed       = "Failed to fetch dashboard data. Please try again later."
	MsgInventoryLoadFailed       = "Failed to fetch inventory data. Please try again later."
	MsgRecommendationsLoadFailed = "Failed to fetch recommendations and alerts data. Please try again later."
	MsgAlertsLoadFailed          = "Failed to fetch alerts. Please try again later."
	MsgReportsLoadFailed         = "Failed to fetch report data. Please try again later."
)

// Submit outcomes.
const (
	MsgSupplySaved          = "Supply saved successfully."
	MsgSupplySaveFailed     = "Failed to save supply. Please try again."
	MsgUsageRecorded        = "Usage recorded successfully."
	MsgUsageRecordFailed    = "Failed to record usage. Please try again."
	MsgAlertDismissed       = "Alert dismissed."
	MsgAlertDismissFailed   = "Failed to dismiss the alert. Please try again."
	MsgReportDownloadFailed = "Failed to download report. Please try again later."
)

// Empty states.
const (
	MsgNoAlertsAtThisTime = "No alerts at this time."
	MsgNoAlertsToDisplay  = "No alerts to display."
)

//nolint:gochecknoglobals // static read-only lookup for templates
var contentTemplates = map[string]string{
	PageLanding:         "landing-content",
	PageLogin:           "login-content",
	PageRegister:        "register-content",
	PageDashboard:       "dashboard-content",
	PageInventory:       "inventory-content",
	PageRecommendations: "recommendations-content",
	PageAlerts:          "alerts-content",
	PageReports:         "reports-content",
}

// ContentTemplateMap returns the mapping from CurrentPage to template name.
func ContentTemplateMap() map[string]string { return contentTemplates }

// ContentTemplateFor returns the content template for the given CurrentPage.
// Falls back to landing-content for unknown pages.
func ContentTemplateFor(currentPage string) string {
	if name, ok := ContentTemplateMap()[currentPage]; ok {
		return name
	}
	return "landing-content"
}
