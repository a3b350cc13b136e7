package recommend

// Weights is the scoring policy for every entry point of the engine.
// Keeping all point values in one table makes the policy auditable and
// testable independently of the scoring code.
type Weights struct {
	// personalized recommendations
	CategoryMatch     float64
	PriceFit          float64
	ConcernMatch      float64
	Bestseller        float64
	HighRating        float64
	DeepDiscount      float64
	InStock           float64
	WomensHealth      float64
	Subscription      float64
	RepurchasePenalty float64
	ViewedBoost       float64

	// thresholds for the bonus rules above
	HighRatingFloor   float64
	DeepDiscountFloor int

	// similar products
	SameCategory    float64
	SameSubcategory float64
	PriceProximity  float64
	PriceWindow     float64
	SharedTags      float64

	// smart search
	ExactName          float64
	NameContains       float64
	CategoryContains   float64
	TagContains        float64
	BenefitContains    float64
	DescContains       float64
	IngredientContains float64

	// bundle savings rates
	CategoryBundleRate      float64
	ComplementaryBundleRate float64
}

const (
	defaultCategoryMatch     = 30.0
	defaultPriceFit          = 15.0
	defaultConcernMatch      = 25.0
	defaultBestseller        = 10.0
	defaultHighRating        = 10.0
	defaultDeepDiscount      = 5.0
	defaultInStock           = 5.0
	defaultWomensHealth      = 20.0
	defaultSubscription      = 15.0
	defaultRepurchasePenalty = 20.0
	defaultViewedBoost       = 5.0

	defaultHighRatingFloor   = 4.7
	defaultDeepDiscountFloor = 40

	defaultSameCategory    = 40.0
	defaultSameSubcategory = 30.0
	defaultPriceProximity  = 15.0
	defaultPriceWindow     = 200.0
	defaultSharedTags      = 15.0

	defaultExactName          = 100.0
	defaultNameContains       = 50.0
	defaultCategoryContains   = 30.0
	defaultTagContains        = 40.0
	defaultBenefitContains    = 20.0
	defaultDescContains       = 10.0
	defaultIngredientContains = 15.0

	defaultCategoryBundleRate      = 0.15
	defaultComplementaryBundleRate = 0.12
)

// default result sizes per entry point
const (
	DefaultRecommendLimit     = 10
	DefaultSimilarLimit       = 6
	DefaultSearchLimit        = 20
	DefaultComplementaryLimit = 4
	DefaultTrendingLimit      = 8
)

func DefaultWeights() Weights {
	return Weights{
		CategoryMatch:     defaultCategoryMatch,
		PriceFit:          defaultPriceFit,
		ConcernMatch:      defaultConcernMatch,
		Bestseller:        defaultBestseller,
		HighRating:        defaultHighRating,
		DeepDiscount:      defaultDeepDiscount,
		InStock:           defaultInStock,
		WomensHealth:      defaultWomensHealth,
		Subscription:      defaultSubscription,
		RepurchasePenalty: defaultRepurchasePenalty,
		ViewedBoost:       defaultViewedBoost,

		HighRatingFloor:   defaultHighRatingFloor,
		DeepDiscountFloor: defaultDeepDiscountFloor,

		SameCategory:    defaultSameCategory,
		SameSubcategory: defaultSameSubcategory,
		PriceProximity:  defaultPriceProximity,
		PriceWindow:     defaultPriceWindow,
		SharedTags:      defaultSharedTags,

		ExactName:          defaultExactName,
		NameContains:       defaultNameContains,
		CategoryContains:   defaultCategoryContains,
		TagContains:        defaultTagContains,
		BenefitContains:    defaultBenefitContains,
		DescContains:       defaultDescContains,
		IngredientContains: defaultIngredientContains,

		CategoryBundleRate:      defaultCategoryBundleRate,
		ComplementaryBundleRate: defaultComplementaryBundleRate,
	}
}
