package viewmodel

// User represents the signed-in user exposed to templates.
type User struct {
	Username    string
	DisplayName string
	Role        string
}

// Flash is a one-shot notification rendered as a toast.
type Flash struct {
	Kind    string
	Message string
}

// Layout captures shared chrome metadata (titles, navigation state, auth flags).
type Layout struct {
	Title           string
	PageTitle       string
	CurrentPage     string
	CSRFToken       string
	IsAuthenticated bool
	IsAdmin         bool
	User            *User
	Flash           *Flash
}

// LayoutProvider exposes layout metadata for renderer utilities.
type LayoutProvider interface {
	LayoutData() *Layout
}
