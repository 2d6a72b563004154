package userstore

// User is the single local account record. At most one instance ever exists
// for the lifetime of the system.
type User struct {
	Name         string `yaml:"name"`
	PasswordHash string `yaml:"passwordHash"`
	Wallpaper    string `yaml:"wallpaper,omitempty"`
	TotpSecret   string `yaml:"totpSecret,omitempty"`
}

// TotpEnabled reports whether two-factor authentication is on. The flag is
// derived from secret presence so the two can never disagree.
func (u User) TotpEnabled() bool {
	return u.TotpSecret != ""
}
