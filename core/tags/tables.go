package tags

// Default rule tables. Synonym values must be fixed points of the pipeline —
// re-standardizing a value must return it unchanged — or idempotence breaks.

var defaultSynonyms = map[string]string{
	"italian food":        "italian",
	"mexican food":        "mexican",
	"chinese food":        "chinese",
	"indian food":         "indian",
	"thai food":           "thai",
	"japanese food":       "japanese",
	"greek food":          "greek",
	"french food":         "french",
	"christmas":           "special occasion",
	"xmas":                "special occasion",
	"thanksgiving":        "special occasion",
	"easter":              "special occasion",
	"holiday":             "special occasion",
	"holidays":            "special occasion",
	"bbq":                 "barbecue",
	"veggie":              "vegetarian",
	"vegetarian friendly": "vegetarian",
	"gluten-free":         "gluten free",
	"dairy-free":          "dairy free",
	"week night":          "weeknight",
	"weeknight dinner":    "weeknight",
	"main dish":           "main course",
	"main":                "main course",
	"entree":              "main course",
	"starter":             "appetizer",
	"starters":            "appetizer",
	"appetizers":          "appetizer",
	"desserts":            "dessert",
	"sweets":              "dessert",
	"sweet treats":        "dessert",
	"crock pot":           "slow cooker",
	"crockpot":            "slow cooker",
	"instapot":            "instant pot",
	"airfryer":            "air fryer",
	"air-fryer":           "air fryer",
	"healthy eating":      "healthy",
	"quick and easy":      "quick",
	"fast":                "quick",
	"30 minute meals":     "quick",
	"30-minute":           "quick",
	"kid friendly":        "kid-friendly",
	"kids":                "kid-friendly",
	"one pot":             "one-pot",
	"meal prep":           "meal-prep",
}

// defaultNoiseWords are stripped from tags token-by-token.
var defaultNoiseWords = []string{
	"recipe", "recipes", "food", "foods", "dish", "dishes",
	"idea", "ideas", "easy", "simple", "delicious", "tasty",
	"amazing", "perfect", "ultimate", "favorite", "favourite",
	"homemade", "the",
}

// defaultJunkTags are whole values dropped outright.
var defaultJunkTags = []string{
	"misc", "miscellaneous", "other", "uncategorized", "uncategorised",
	"untagged", "general", "all", "new", "featured", "popular",
	"trending", "yum", "yummy", "foodie", "foodporn", "instafood",
	"blog", "tips",
}

// defaultJunkPhrases drop any tag containing them.
var defaultJunkPhrases = []string{
	"how to", "click here", "read more", "step by step", "must try",
	"you will love", "better than", "best ever",
}
