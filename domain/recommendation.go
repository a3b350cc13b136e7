package domain

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// PriceRange is an inclusive price window.
type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// UserPreferences is the request-scoped input to the personalized scorer.
// Every field is optional: a nil pointer, nil slice or empty Gender means
// the corresponding scoring rule is skipped.
type UserPreferences struct {
	Categories        []string    `json:"categories,omitempty"`
	PriceRange        *PriceRange `json:"price_range,omitempty"`
	Concerns          []string    `json:"concerns,omitempty"`
	PreviousPurchases []string    `json:"previous_purchases,omitempty"`
	ViewedProducts    []string    `json:"viewed_products,omitempty"`
	Age               *int        `json:"age,omitempty"`
	Gender            Gender      `json:"gender,omitempty"`
}

// RecommendationScore is one ranked entry of the personalized scorer.
// Score is the raw additive total; it is not normalized to any fixed range
// and can exceed 100.
type RecommendationScore struct {
	Product Product  `json:"product"`
	Score   float64  `json:"score"`
	Reasons []string `json:"reasons"`
}

// Bundle is a buy-together suggestion: the target product plus two others,
// with the rounded aggregate discount in the catalog currency.
type Bundle struct {
	Products []Product `json:"products"`
	Savings  float64   `json:"savings"`
}
