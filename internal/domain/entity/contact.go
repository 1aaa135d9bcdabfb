package entity

import "strings"

// Contact is a read-only entry from the user's contacts store.
type Contact struct {
	GivenName    string   `json:"given_name"`
	FamilyName   string   `json:"family_name"`
	PhoneNumbers []string `json:"phone_numbers,omitempty"`
}

// DisplayName is the recipient label used on a postcard.
func (c Contact) DisplayName() string {
	return strings.TrimSpace(c.GivenName + " " + c.FamilyName)
}
