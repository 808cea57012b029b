package classify

// Rule tables for the line classifier. Built once at init, never mutated.

// unitWords are measurement words that signal an ingredient quantity.
var unitWords = wordSet(
	"cup", "cups", "c",
	"tablespoon", "tablespoons", "tbsp", "tbs", "tb",
	"teaspoon", "teaspoons", "tsp", "ts",
	"ounce", "ounces", "oz",
	"pound", "pounds", "lb", "lbs",
	"gram", "grams", "g", "kg", "kilogram", "kilograms",
	"milliliter", "milliliters", "millilitre", "millilitres", "ml",
	"liter", "liters", "litre", "litres", "l",
	"quart", "quarts", "qt", "pint", "pints", "pt", "gallon", "gallons",
	"clove", "cloves",
	"pinch", "pinches", "dash", "dashes",
	"stick", "sticks", "slice", "slices",
	"can", "cans", "jar", "jars", "package", "packages", "pkg",
	"bunch", "bunches", "sprig", "sprigs", "stalk", "stalks",
	"head", "heads", "handful", "fillet", "fillets",
)

// foodWords is a coarse vocabulary of common ingredient nouns. It does not
// need to be exhaustive: it only backs up the quantity/unit signals for lines
// like "salt and pepper to taste".
var foodWords = wordSet(
	"flour", "sugar", "butter", "egg", "eggs", "salt", "pepper",
	"onion", "onions", "garlic", "ginger", "oil", "olive", "vegetable",
	"milk", "cream", "cheese", "yogurt", "buttermilk",
	"chicken", "beef", "pork", "lamb", "turkey", "bacon", "sausage",
	"fish", "salmon", "tuna", "shrimp",
	"tomato", "tomatoes", "carrot", "carrots", "celery", "potato", "potatoes",
	"mushroom", "mushrooms", "spinach", "lettuce", "cabbage", "broccoli",
	"zucchini", "cucumber", "corn", "peas", "beans", "lentils", "chickpeas",
	"rice", "pasta", "noodles", "bread", "breadcrumbs", "oats", "quinoa",
	"lemon", "lime", "orange", "apple", "banana", "berries", "raisins",
	"honey", "syrup", "molasses", "vanilla", "chocolate", "cocoa",
	"cinnamon", "nutmeg", "paprika", "cumin", "turmeric", "curry",
	"basil", "parsley", "cilantro", "thyme", "rosemary", "oregano", "dill",
	"mint", "sage", "bay",
	"vinegar", "soy", "mustard", "ketchup", "mayonnaise", "broth", "stock",
	"yeast", "baking", "cornstarch", "gelatin",
	"almonds", "walnuts", "pecans", "peanuts", "cashews", "sesame",
	"water", "wine", "beer",
)

// cookingVerbs signal an instruction step.
var cookingVerbs = wordSet(
	"preheat", "heat", "warm", "stir", "mix", "whisk", "beat", "fold",
	"combine", "add", "pour", "drizzle", "sprinkle", "season", "toss",
	"bake", "roast", "broil", "grill", "fry", "saute", "sauté", "sear",
	"simmer", "boil", "poach", "steam", "blanch", "braise", "stew",
	"chop", "dice", "mince", "slice", "cut", "trim", "peel", "grate",
	"shred", "crush", "mash", "puree", "blend", "knead", "roll",
	"drain", "rinse", "strain", "pat", "brush", "grease", "line",
	"cover", "uncover", "flip", "turn", "rotate", "transfer", "remove",
	"reduce", "deglaze", "marinate", "chill", "refrigerate", "freeze",
	"cool", "rest", "let", "set", "bring", "place", "arrange", "spread",
	"divide", "serve", "garnish", "top", "repeat", "melt", "dissolve",
	"cook", "microwave",
)

// equipmentWords signal an instruction by mention of cookware.
var equipmentWords = wordSet(
	"oven", "stove", "stovetop", "burner", "broiler", "microwave",
	"skillet", "pan", "saucepan", "pot", "stockpot", "wok", "griddle",
	"sheet", "tray", "dish", "casserole", "ramekin", "tin", "mold",
	"bowl", "colander", "sieve", "rack", "grill",
	"blender", "processor", "mixer", "thermometer",
	"foil", "parchment", "lid",
)

// ctaVerbs and ctaNouns together identify marketing calls to action.
// A CTA fires only when a verb and a domain noun co-occur on one line.
var ctaVerbs = []string{
	"save", "shop", "get", "grab", "try", "buy", "order", "browse",
	"discover", "explore", "download", "print", "unlock", "join",
}

var ctaNouns = []string{
	"recipes", "recipe box", "collection", "meal plan", "cookbook",
	"newsletter", "membership", "app", "favorites", "favourites", "deals",
}

// legalPhrases mark footer boilerplate.
var legalPhrases = []string{
	"all rights reserved", "privacy policy", "terms of use",
	"terms of service", "terms and conditions", "cookie policy",
	"copyright", "affiliate links", "advertisement",
}

// socialPhrases mark share widgets and newsletter prompts.
var socialPhrases = []string{
	"facebook", "instagram", "pinterest", "twitter", "tiktok", "youtube",
	"subscribe", "newsletter", "sign up", "follow us", "follow me",
	"share this", "pin this", "pin it", "tag us", "email address",
}

// wordSet builds a lookup set from its arguments.
func wordSet(words ...string) map[string]bool {
	s := make(map[string]bool, len(words))
	for _, w := range words {
		s[w] = true
	}
	return s
}
