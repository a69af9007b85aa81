package templates

import (
	"strings"

	"github.com/gaienhofen/user-onboarding/config"
)

// NewWelcomeData fills company links from cfg; cfg may be nil.
func NewWelcomeData(cfg *config.Config, firstName, name, email string) WelcomeData {
	d := WelcomeData{
		FirstName: strings.TrimSpace(firstName),
		Name:      strings.TrimSpace(name),
		Email:     email,
		Year:      currentYear(),
	}
	if cfg != nil {
		d.AppName = cfg.AppName
		d.CompanyName = cfg.CompanyName
		d.SupportURL = cfg.SupportURL
		d.LoginURL = cfg.LoginURL
	}
	return d
}
