package structured

import "strings"

// cuisineVocabulary maps lowercase title substrings to the cuisine tag they
// imply. Most entries map to themselves; the rest fold dishes and regions
// into their cuisine ("pad thai" → thai, "bolognese" → italian).
var cuisineVocabulary = map[string]string{
	// Cuisines by name.
	"italian": "italian", "french": "french", "spanish": "spanish",
	"greek": "greek", "portuguese": "portuguese", "german": "german",
	"british": "british", "irish": "irish", "scottish": "scottish",
	"scandinavian": "scandinavian", "swedish": "swedish", "danish": "danish",
	"norwegian": "norwegian", "polish": "polish", "hungarian": "hungarian",
	"russian": "russian", "ukrainian": "ukrainian", "turkish": "turkish",
	"lebanese": "lebanese", "israeli": "israeli", "moroccan": "moroccan",
	"egyptian": "egyptian", "ethiopian": "ethiopian", "nigerian": "nigerian",
	"south african": "south african", "persian": "persian",
	"indian": "indian", "pakistani": "pakistani", "sri lankan": "sri lankan",
	"nepalese": "nepalese", "chinese": "chinese", "cantonese": "chinese",
	"sichuan": "chinese", "szechuan": "chinese", "japanese": "japanese",
	"korean": "korean", "thai": "thai", "vietnamese": "vietnamese",
	"filipino": "filipino", "indonesian": "indonesian", "malaysian": "malaysian",
	"singaporean": "singaporean", "mexican": "mexican", "tex-mex": "tex-mex",
	"cuban": "cuban", "puerto rican": "puerto rican", "jamaican": "jamaican",
	"caribbean": "caribbean", "brazilian": "brazilian", "peruvian": "peruvian",
	"argentinian": "argentinian", "chilean": "chilean", "colombian": "colombian",
	"american": "american", "southern": "southern", "cajun": "cajun",
	"creole": "creole", "hawaiian": "hawaiian", "mediterranean": "mediterranean",
	"middle eastern": "middle eastern", "asian": "asian", "african": "african",
	"latin": "latin american", "european": "european",

	// Dishes and ingredients that pin a cuisine.
	"pasta": "italian", "risotto": "italian", "lasagna": "italian",
	"lasagne": "italian", "bolognese": "italian", "carbonara": "italian",
	"bruschetta": "italian", "gnocchi": "italian", "pesto": "italian",
	"tiramisu": "italian", "focaccia": "italian", "minestrone": "italian",
	"ravioli": "italian", "pizza": "italian", "panna cotta": "italian",
	"croissant": "french", "ratatouille": "french", "quiche": "french",
	"crepe": "french", "crêpe": "french", "baguette": "french",
	"coq au vin": "french", "bouillabaisse": "french", "soufflé": "french",
	"souffle": "french", "paella": "spanish", "gazpacho": "spanish",
	"churro": "spanish", "tapas": "spanish", "tortilla española": "spanish",
	"gyro": "greek", "tzatziki": "greek", "moussaka": "greek",
	"souvlaki": "greek", "spanakopita": "greek", "feta": "greek",
	"hummus": "middle eastern", "falafel": "middle eastern",
	"shawarma": "middle eastern", "tabbouleh": "middle eastern",
	"baklava": "turkish", "kebab": "turkish", "tagine": "moroccan",
	"couscous": "moroccan", "curry": "indian", "tikka": "indian",
	"masala": "indian", "biryani": "indian", "naan": "indian",
	"tandoori": "indian", "samosa": "indian", "dal": "indian",
	"korma": "indian", "vindaloo": "indian", "paneer": "indian",
	"stir fry": "chinese", "stir-fry": "chinese", "chow mein": "chinese",
	"lo mein": "chinese", "fried rice": "chinese", "dumpling": "chinese",
	"wonton": "chinese", "kung pao": "chinese", "dim sum": "chinese",
	"sushi": "japanese", "ramen": "japanese", "teriyaki": "japanese",
	"tempura": "japanese", "udon": "japanese", "miso": "japanese",
	"katsu": "japanese", "bibimbap": "korean", "kimchi": "korean",
	"bulgogi": "korean", "pad thai": "thai", "tom yum": "thai",
	"green curry": "thai", "red curry": "thai", "pho": "vietnamese",
	"banh mi": "vietnamese", "spring roll": "vietnamese",
	"adobo": "filipino", "satay": "indonesian", "rendang": "indonesian",
	"laksa": "malaysian", "taco": "mexican", "burrito": "mexican",
	"enchilada": "mexican", "quesadilla": "mexican", "fajita": "mexican",
	"guacamole": "mexican", "salsa verde": "mexican", "tamale": "mexican",
	"mole": "mexican", "carnitas": "mexican", "jerk": "jamaican",
	"empanada": "latin american", "ceviche": "peruvian",
	"chimichurri": "argentinian", "feijoada": "brazilian",
	"gumbo": "cajun", "jambalaya": "cajun", "grits": "southern",
	"cornbread": "southern", "pierogi": "polish", "goulash": "hungarian",
	"borscht": "ukrainian", "schnitzel": "german", "bratwurst": "german",
	"sauerkraut": "german", "pretzel": "german", "colcannon": "irish",
	"shepherd's pie": "british", "fish and chips": "british",
	"yorkshire pudding": "british", "smorgasbord": "swedish",
	"injera": "ethiopian", "jollof": "nigerian",
}

// isKnownCuisine reports whether a tag value is a cuisine the vocabulary
// recognizes.
func isKnownCuisine(tag string) bool {
	c, ok := cuisineVocabulary[strings.ToLower(strings.TrimSpace(tag))]
	return ok && c == strings.ToLower(strings.TrimSpace(tag))
}

// MatchCuisine finds the cuisine implied by a recipe title via substring
// matching. When several vocabulary entries match, the longest one wins —
// "pad thai" beats "thai" (same answer, but "green curry" must beat "curry").
// Equal-length matches are broken by substring order so the result does not
// depend on map iteration.
func MatchCuisine(title string) string {
	lower := strings.ToLower(title)
	best := ""
	bestSub := ""
	for sub, cuisine := range cuisineVocabulary {
		if !strings.Contains(lower, sub) {
			continue
		}
		if len(sub) > len(bestSub) || (len(sub) == len(bestSub) && sub < bestSub) {
			best = cuisine
			bestSub = sub
		}
	}
	return best
}
