package models

import "time"

type LegalArea string

const (
	FamilyLawArea     LegalArea = "family-law"
	PropertyLawArea   LegalArea = "property-law"
	EmploymentLawArea LegalArea = "employment-law"
	CriminalLawArea   LegalArea = "criminal-law"
	BusinessLawArea   LegalArea = "business-law"
	ConsumerLawArea   LegalArea = "consumer-law"
)

// LegalAreas lists the areas a contact request may name, in display order.
var LegalAreas = []LegalArea{
	FamilyLawArea,
	PropertyLawArea,
	EmploymentLawArea,
	CriminalLawArea,
	BusinessLawArea,
	ConsumerLawArea,
}

// Valid reports whether a is one of LegalAreas.
func (a LegalArea) Valid() bool {
	for _, area := range LegalAreas {
		if a == area {
			return true
		}
	}
	return false
}

var legalAreaLabels = map[LegalArea]string{
	FamilyLawArea:     CategoryFamily,
	PropertyLawArea:   CategoryProperty,
	EmploymentLawArea: CategoryEmployment,
	CriminalLawArea:   CategoryCriminal,
	BusinessLawArea:   CategoryBusiness,
	ConsumerLawArea:   CategoryConsumer,
}

// Label returns the display name of a, e.g. "Family Law" for family-law.
func (a LegalArea) Label() string {
	if label, ok := legalAreaLabels[a]; ok {
		return label
	}
	return string(a)
}

// ContactRequest is a message left through the contact form.
type ContactRequest struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	LegalArea   LegalArea `json:"legalArea"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type NewContactRequest struct {
	Name        string
	Email       string
	LegalArea   LegalArea
	Description string
}
