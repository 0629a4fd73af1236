// Package domain defines the account records, summary records, and market
// data types the assistant works with. Records are plain values; the only
// behavior they carry is human-readable rendering used to build LLM context.
package domain

import "fmt"

// AnonymizedName replaces the user's real name in any view handed to the
// model or returned through a tool.
const AnonymizedName = "<ANONYMIZED>"

// UserDetails holds the personal and tax context for the current user.
type UserDetails struct {
	Name            string `json:"name"`
	Age             int    `json:"age"`
	State           string `json:"state"`
	Country         string `json:"country"`
	CitizenOf       string `json:"citizen_of"`
	TaxFilingStatus string `json:"tax_filing_status"`
	IsTaxResident   bool   `json:"is_tax_resident"`
}

// Anonymized returns a copy with the name replaced by a fixed placeholder.
// The receiver is never mutated.
func (u UserDetails) Anonymized() UserDetails {
	u.Name = AnonymizedName
	return u
}

func (u UserDetails) String() string {
	residency := "not a tax resident"
	if u.IsTaxResident {
		residency = "a tax resident"
	}
	return fmt.Sprintf(
		"The user is %s, aged %d, living in %s, %s. They are a citizen of %s. "+
			"Their tax filing status is %s, and they are %s of %s.",
		u.Name, u.Age, u.State, u.Country, u.CitizenOf, u.TaxFilingStatus, residency, u.Country,
	)
}
