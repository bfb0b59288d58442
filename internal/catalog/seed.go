package catalog

// seedColor is one curated entry of the base catalog.
type seedColor struct {
	name string
	hex  string
}

// seedColors is the curated core of the catalog. Filler colours are
// synthesised around these; see generate.go.
var seedColors = []seedColor{
	{"Crimson", "#DC143C"},
	{"Firebrick", "#B22222"},
	{"Terracotta", "#E2725B"},
	{"Salmon", "#FA8072"},
	{"Coral", "#FF7F50"},
	{"Tangerine", "#F28500"},
	{"Apricot", "#FBCEB1"},
	{"Amber", "#FFBF00"},
	{"Goldenrod", "#DAA520"},
	{"Mustard", "#FFDB58"},
	{"Lemon", "#FFF44F"},
	{"Chartreuse", "#7FFF00"},
	{"Olive", "#808000"},
	{"Sage", "#9CAF88"},
	{"Fern", "#71BC78"},
	{"Emerald", "#50C878"},
	{"Forest Green", "#228B22"},
	{"Seafoam", "#93E9BE"},
	{"Mint", "#98FF98"},
	{"Teal", "#008080"},
	{"Turquoise", "#40E0D0"},
	{"Cerulean", "#2A52BE"},
	{"Sky Blue", "#87CEEB"},
	{"Powder Blue", "#B0E0E6"},
	{"Cornflower", "#6495ED"},
	{"Royal Blue", "#4169E1"},
	{"Navy", "#000080"},
	{"Indigo", "#4B0082"},
	{"Periwinkle", "#CCCCFF"},
	{"Lavender", "#E6E6FA"},
	{"Lilac", "#C8A2C8"},
	{"Amethyst", "#9966CC"},
	{"Plum", "#8E4585"},
	{"Orchid", "#DA70D6"},
	{"Magenta", "#FF00FF"},
	{"Fuchsia", "#C154C1"},
	{"Hot Pink", "#FF69B4"},
	{"Blush", "#DE5D83"},
	{"Rose Quartz", "#F7CAC9"},
	{"Burgundy", "#800020"},
	{"Chocolate", "#7B3F00"},
	{"Sienna", "#A0522D"},
	{"Tan", "#D2B48C"},
	{"Taupe", "#8B8589"},
	{"Linen", "#FAF0E6"},
	{"Charcoal", "#36454F"},
	{"Slate", "#708090"},
	{"Ivory", "#FFFFF0"},
}
