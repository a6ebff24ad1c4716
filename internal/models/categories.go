package models

// Category labels used to tag consultations.
const (
	CategoryFamily     = "Family Law"
	CategoryProperty   = "Property Law"
	CategoryEmployment = "Employment Law"
	CategoryCriminal   = "Criminal Law"
	CategoryBusiness   = "Business Law"
	CategoryConsumer   = "Consumer Law"
	CategoryGeneral    = "General Legal"
)

// Categories holds the six topic labels. CategoryGeneral is the catch-all and is not listed.
var Categories = []string{
	CategoryFamily,
	CategoryProperty,
	CategoryEmployment,
	CategoryCriminal,
	CategoryBusiness,
	CategoryConsumer,
}
