/*
Package imageprompt builds text-to-image prompts for natural remedy
photography. Classification is a fixed, ordered list of preparation-style
rules matched against the remedy name; the first matching rule wins, so a
"Peppermint Oil Tea" is rendered as a tea, not as an oil.
*/
package imageprompt

import (
	"fmt"
	"strings"
)

// Descriptor is the minimal remedy shape needed to synthesize a prompt.
type Descriptor struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
	Category    string   `json:"category"`
}

// categoryRule pairs a name predicate with a scene builder. Rules are
// evaluated in declaration order; priority is part of the contract.
type categoryRule struct {
	match func(name string) bool
	build func(d Descriptor, name, ingredients string) string
}

var categoryRules = []categoryRule{
	{matchAny("tea", "chai", "kadha"), buildTeaScene},
	{matchAny("steam", "bhap", "inhalation"), buildSteamScene},
	{matchAny("oil", "roll-on", "balm"), buildOilScene},
	{matchAny("powder", "churna"), buildPowderScene},
	{matchAny("milk", "doodh"), buildMilkScene},
	{matchAny("water", "pani"), buildWaterScene},
	{matchAny("tincture", "extract"), buildTinctureScene},
	{matchAny("juice", "ras"), buildJuiceScene},
}

// universalSuffix is appended to every prompt regardless of category.
const universalSuffix = ` High resolution, sharp focus, professional food/wellness photography. ` +
	`NO text, NO labels, NO watermarks, NO people's faces. ` +
	`Photorealistic style. Warm, inviting, natural aesthetic. ` +
	`Clean composition with proper depth of field.`

// BuildPrompt maps a remedy descriptor to a single image-generation prompt.
// It is pure and deterministic, never errors and never returns an empty
// string: names matching no rule fall through to a generic scene.
func BuildPrompt(d Descriptor) string {
	name := strings.ToLower(d.Name)
	ingredients := strings.ToLower(strings.Join(d.Ingredients, ", "))

	var b strings.Builder
	for _, rule := range categoryRules {
		if rule.match(name) {
			b.WriteString(rule.build(d, name, ingredients))
			b.WriteString(universalSuffix)
			return b.String()
		}
	}

	b.WriteString(buildDefaultScene(d, name, ingredients))
	b.WriteString(universalSuffix)
	return b.String()
}

func matchAny(keywords ...string) func(string) bool {
	return func(name string) bool {
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				return true
			}
		}
		return false
	}
}

/* =================================================================================
                                SCENE BUILDERS
=================================================================================*/

func buildTeaScene(d Descriptor, name, ingredients string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Professional food photography of %s. ", d.Name)
	fmt.Fprintf(&b, "A clear glass cup filled with %s tea on a wooden coaster. ", teaColor(name, ingredients))
	fmt.Fprintf(&b, "Fresh ingredients visible: %s. ", ingredients)
	b.WriteString("Ingredients artfully arranged beside the cup: ")

	// Ingredient clauses are checked in a fixed order so output is stable.
	if strings.Contains(ingredients, "ginger") {
		b.WriteString("fresh ginger root (sliced and whole), ")
	}
	if strings.Contains(ingredients, "turmeric") {
		b.WriteString("turmeric root and powder in small bowl, ")
	}
	if strings.Contains(ingredients, "honey") {
		b.WriteString("honey in glass jar with wooden dipper, ")
	}
	if strings.Contains(ingredients, "lemon") {
		b.WriteString("fresh lemon slices and whole lemon, ")
	}
	if strings.Contains(ingredients, "tulsi") {
		b.WriteString("fresh green tulsi leaves, ")
	}
	if strings.Contains(ingredients, "cinnamon") {
		b.WriteString("cinnamon sticks, ")
	}
	if strings.Contains(ingredients, "mint") || strings.Contains(ingredients, "pudina") {
		b.WriteString("fresh mint leaves, ")
	}
	if strings.Contains(ingredients, "fennel") || strings.Contains(ingredients, "saunf") {
		b.WriteString("fennel seeds in small bowl, ")
	}
	if strings.Contains(ingredients, "chamomile") {
		b.WriteString("dried chamomile flowers, ")
	}

	b.WriteString("Steam rising from the hot tea. Warm natural lighting. Rustic wooden table background. ")
	return b.String()
}

func buildSteamScene(d Descriptor, name, ingredients string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Professional photograph of steam inhalation setup for %s. ", d.Name)
	b.WriteString("Large ceramic bowl filled with hot steaming water. ")

	if strings.Contains(ingredients, "tulsi") {
		b.WriteString("Fresh green tulsi leaves floating in the water. ")
	}
	if strings.Contains(ingredients, "eucalyptus") {
		b.WriteString("Eucalyptus leaves and oil drops visible. ")
	}
	if strings.Contains(ingredients, "mint") {
		b.WriteString("Fresh mint leaves in the water. ")
	}
	if strings.Contains(ingredients, "ajwain") {
		b.WriteString("Ajwain (carom seeds) scattered in water. ")
	}

	b.WriteString("White towel draped beside the bowl. Steam visibly rising. ")
	b.WriteString("Additional fresh ingredients arranged around bowl. Clean white background. Natural lighting.")
	return b.String()
}

func buildOilScene(d Descriptor, name, ingredients string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Professional product photography of %s. ", d.Name)

	switch {
	case strings.Contains(name, "peppermint"):
		b.WriteString("Small amber glass roller bottle with metal rollerball top. ")
		b.WriteString("Fresh peppermint leaves arranged around bottle. ")
		b.WriteString("Peppermint essential oil visible in bottle (clear with slight green tint). ")
	case strings.Contains(name, "clove"):
		b.WriteString("Small dark glass dropper bottle. ")
		b.WriteString("Whole cloves scattered around bottle. Clove buds clearly visible. ")
	case strings.Contains(name, "coconut"):
		b.WriteString("Glass jar with coconut oil (white/clear). ")
		b.WriteString("Fresh coconut pieces, coconut shell half beside jar. ")
	default:
		b.WriteString("Small amber glass dropper bottle. ")
		b.WriteString("Essential oil ingredients arranged around bottle. ")
	}

	b.WriteString("Clean white marble surface. Soft natural lighting. Professional wellness product style.")
	return b.String()
}

func buildPowderScene(d Descriptor, name, ingredients string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Professional photograph of %s. ", d.Name)
	b.WriteString("Wooden bowl containing fine powder. ")

	switch {
	case strings.Contains(name, "triphala"):
		b.WriteString("Brownish-green powder (Triphala). Three dried fruits (amla, haritaki, bibhitaki) beside bowl. ")
	case strings.Contains(name, "turmeric"):
		b.WriteString("Bright yellow-orange turmeric powder. Fresh turmeric roots beside bowl. ")
	case strings.Contains(name, "amla"):
		b.WriteString("Light greenish-brown amla powder. Fresh amla fruits beside bowl. ")
	}

	b.WriteString("Wooden spoon with powder. Natural ingredients visible. Rustic wooden background.")
	return b.String()
}

func buildMilkScene(d Descriptor, name, ingredients string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Professional food photography of %s. ", d.Name)
	b.WriteString("Glass of warm milk (creamy white/golden color). ")

	switch {
	case strings.Contains(name, "turmeric") || strings.Contains(name, "haldi"):
		b.WriteString("Golden yellow turmeric milk in glass. Turmeric powder and root beside glass. ")
	case strings.Contains(name, "ashwagandha"):
		b.WriteString("Warm milk with light brown tint. Ashwagandha root and powder visible. ")
	case strings.Contains(name, "saffron") || strings.Contains(name, "kesar"):
		b.WriteString("Milk with golden-yellow hue. Saffron threads floating on top and beside glass. ")
	}

	b.WriteString("Served in clear glass on wooden coaster. Ingredients artfully arranged. Warm lighting.")
	return b.String()
}

func buildWaterScene(d Descriptor, name, ingredients string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Professional photograph of %s. ", d.Name)
	b.WriteString("Clear glass filled with infused water. ")

	switch {
	case strings.Contains(name, "jeera") || strings.Contains(name, "cumin"):
		b.WriteString("Light brown cumin water. Cumin seeds floating and in small bowl beside glass. ")
	case strings.Contains(name, "ajwain"):
		b.WriteString("Clear water with ajwain seeds visible. Ajwain seeds scattered beside glass. ")
	case strings.Contains(name, "lemon"):
		b.WriteString("Clear water with lemon slices. Fresh lemon halves beside glass. ")
	case strings.Contains(name, "honey"):
		b.WriteString("Clear water with honey swirl. Honey jar with dipper beside glass. ")
	}

	b.WriteString("Ice cubes optional. Fresh ingredients beside glass. Clean bright background.")
	return b.String()
}

func buildTinctureScene(d Descriptor, name, ingredients string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Professional photograph of %s. ", d.Name)

	switch {
	case strings.Contains(name, "echinacea"):
		b.WriteString("Dark amber dropper bottle. Fresh purple echinacea flowers (cone flowers) around bottle. ")
	case strings.Contains(name, "giloy"):
		b.WriteString("Green-brown tincture in glass bottle. Fresh giloy stems and leaves beside bottle. ")
	default:
		b.WriteString("Dark amber dropper bottle with herbal tincture. ")
	}

	b.WriteString("Dropper clearly visible. Botanical ingredients fresh and vibrant. Clean setup.")
	return b.String()
}

func buildJuiceScene(d Descriptor, name, ingredients string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Professional food photography of fresh %s. ", d.Name)
	b.WriteString("Glass filled with fresh juice. ")

	switch {
	case strings.Contains(name, "aloe vera"):
		b.WriteString("Clear/slightly green aloe vera juice. Fresh aloe vera leaf and gel beside glass. ")
	case strings.Contains(name, "amla"):
		b.WriteString("Light green amla juice. Fresh amla fruits beside glass. ")
	case strings.Contains(name, "karela") || strings.Contains(name, "bitter gourd"):
		b.WriteString("Green bitter gourd juice. Fresh bitter gourd sliced beside glass. ")
	}

	b.WriteString("Fresh ingredients prominently displayed. Vibrant colors. Natural lighting.")
	return b.String()
}

func buildDefaultScene(d Descriptor, name, ingredients string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Professional photograph of %s natural remedy. ", d.Name)
	b.WriteString("Main preparation shown clearly in appropriate container. ")
	fmt.Fprintf(&b, "All ingredients visibly arranged: %s. ", ingredients)
	b.WriteString("Natural, warm lighting. Clean, appealing presentation. ")
	b.WriteString("Wellness and healing aesthetic. ")
	return b.String()
}

// teaColor picks the brewed color for the tea scene from name keywords,
// first match wins.
func teaColor(name, ingredients string) string {
	switch {
	case strings.Contains(name, "turmeric") || strings.Contains(name, "haldi"):
		return "golden yellow"
	case strings.Contains(name, "green tea"):
		return "light green"
	case strings.Contains(name, "black tea"):
		return "dark brown"
	case strings.Contains(name, "chamomile"):
		return "pale yellow"
	case strings.Contains(name, "hibiscus"):
		return "deep red"
	case strings.Contains(name, "tulsi"):
		return "light brown with green tint"
	case strings.Contains(name, "ginger"):
		return "light brown-amber"
	case strings.Contains(name, "lemon"):
		return "pale yellow"
	case strings.Contains(name, "mint"):
		return "light green-brown"
	case strings.Contains(name, "cinnamon"):
		return "reddish-brown"
	default:
		return "warm amber"
	}
}
