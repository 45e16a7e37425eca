package payment

// PriceOption is one purchasable choice within a service.
type PriceOption struct {
	Amount      int64 // minor currency units
	Description string
}

// ServiceConfig declares one payment-enabled service: its price table, the
// customer fields it requires, and whether the amount scales by quantity.
// All ten services share one handler, parameterized by this record.
type ServiceConfig struct {
	Options        map[string]PriceOption
	RequiredFields []string
	AllowQuantity  bool
}

// Currency is fixed for every service.
const Currency = "gbp"

// MaxQuantity bounds multi-unit orders. No legitimate order comes close, so
// anything larger is treated as a client error rather than priced.
const MaxQuantity = 100

// Catalog maps service identifiers to their configuration. Prices are set at
// deploy time and never change at runtime.
var Catalog = map[string]ServiceConfig{
	"appointments": {
		Options: map[string]PriceOption{
			"ap-1": {Amount: 4500, Description: "Consultation (30 minutes)"},
			"ap-2": {Amount: 7800, Description: "Consultation (60 minutes)"},
			"ap-3": {Amount: 12000, Description: "Extended consultation (90 minutes)"},
		},
		RequiredFields: []string{"name", "telephone"},
	},
	"translations": {
		Options: map[string]PriceOption{
			"doc-standard": {Amount: 3500, Description: "Certified document translation"},
			"doc-sworn":    {Amount: 6500, Description: "Sworn document translation"},
		},
		RequiredFields: []string{"name", "email"},
		AllowQuantity:  true,
	},
	"spid": {
		Options: map[string]PriceOption{
			"spid-activation": {Amount: 3900, Description: "SPID digital identity activation"},
			"spid-renewal":    {Amount: 2500, Description: "SPID renewal assistance"},
		},
		RequiredFields: []string{"name", "email", "telephone"},
	},
	"nin": {
		Options: map[string]PriceOption{
			"nin-application": {Amount: 3000, Description: "National Insurance Number application"},
		},
		RequiredFields: []string{"name", "telephone"},
	},
	"settled-status": {
		Options: map[string]PriceOption{
			"ss-application": {Amount: 5500, Description: "Settled Status application assistance"},
			"ss-family":      {Amount: 8500, Description: "Settled Status family application"},
		},
		RequiredFields: []string{"name", "email", "telephone"},
	},
	"cv-review": {
		Options: map[string]PriceOption{
			"cv-standard": {Amount: 2500, Description: "CV review and rewrite"},
			"cv-cover":    {Amount: 4000, Description: "CV review with cover letter"},
		},
		RequiredFields: []string{"name", "email"},
	},
	"passport": {
		Options: map[string]PriceOption{
			"passport-renewal": {Amount: 4500, Description: "Italian passport renewal assistance"},
			"passport-minor":   {Amount: 5500, Description: "Passport application for a minor"},
		},
		RequiredFields: []string{"name", "telephone"},
	},
	"housing": {
		Options: map[string]PriceOption{
			"housing-guidance": {Amount: 3500, Description: "Housing and tenancy guidance session"},
		},
		RequiredFields: []string{"name"},
	},
	"taxes": {
		Options: map[string]PriceOption{
			"tax-selfassessment": {Amount: 9000, Description: "Self Assessment tax return assistance"},
			"tax-utr":            {Amount: 3500, Description: "UTR registration assistance"},
		},
		RequiredFields: []string{"name", "email"},
	},
	"letters": {
		Options: map[string]PriceOption{
			"letter-standard": {Amount: 2000, Description: "Formal letter drafting"},
		},
		RequiredFields: []string{"name", "email"},
		AllowQuantity:  true,
	},
}
