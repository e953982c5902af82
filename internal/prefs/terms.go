/*
Package prefs maps free-text queries to structured food preference
signals using keyword matching.

The signal is informational only: it feeds user-facing explanation text
and never acts as a hard filter in the scoring path.
*/
package prefs

// categoryKind distinguishes how a taxonomy category records a hit.
type categoryKind int

const (
	kindFlag categoryKind = iota
	kindList
)

// category is one group of the keyword taxonomy.
type category struct {
	name string
	kind categoryKind
	// terms are matched as substrings of the lower-cased query.
	terms []string
}

// mealTypes resolve before everything else; the matched substring is
// removed from the working text so a meal-type word is not also counted
// as an unrelated keyword.
var mealTypes = []string{
	"breakfast", "lunch", "dinner", "snack", "brunch", "supper",
	"appetizer", "starter", "main course", "side dish",
}

// foodTerms is the fixed taxonomy, scanned in order. Matched flag
// keywords are remembered so list categories do not re-count them
// (taste shares words like "spicy" and "sweet" with the flags); the
// query text itself stays intact so "veg" matching first cannot hide
// the "non-veg" keyword it is a substring of.
var foodTerms = []category{
	{name: "spicy", kind: kindFlag, terms: []string{
		"spicy", "hot", "chilli", "chili", "pepper", "spice", "fiery", "zesty", "tangy", "piquant",
	}},
	{name: "sweet", kind: kindFlag, terms: []string{
		"sweet", "sugar", "honey", "caramel", "dessert", "candy", "chocolate", "sugary", "syrup",
	}},
	{name: "healthy", kind: kindFlag, terms: []string{
		"healthy", "nutritious", "organic", "fresh", "light", "low-calorie", "diet", "balanced", "wholesome", "lean",
	}},
	{name: "vegetarian", kind: kindFlag, terms: []string{
		"vegetarian", "veg", "plant-based", "meatless", "veggie",
	}},
	{name: "non_vegetarian", kind: kindFlag, terms: []string{
		"non-vegetarian", "non-veg", "meat", "chicken", "mutton", "fish", "seafood", "pork", "beef", "lamb",
	}},
	{name: "taste", kind: kindList, terms: []string{
		"sweet", "sour", "bitter", "spicy", "savory", "umami", "tangy", "mild", "rich", "creamy", "smoky", "herby",
	}},
	{name: "cooking_style", kind: kindList, terms: []string{
		"grilled", "fried", "baked", "steamed", "roasted", "stir-fried", "curried", "poached", "smoked", "bbq",
	}},
}
