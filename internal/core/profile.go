package core

// Profile holds the public identity fields shown in the dashboard header.
type Profile struct {
	Login       string
	Name        string
	PublicRepos int
	Followers   int
	Following   int
}

// DisplayName prefers the user's display name and falls back to the login.
func (p Profile) DisplayName() string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}
