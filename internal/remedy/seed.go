package remedy

// SeedCatalog is the built-in remedy set. It doubles as the seed payload
// for an empty database and as the local fallback when the database is
// unreachable, so the library pages always have content.
var SeedCatalog = []Remedy{
	{
		ID:               "ginger-turmeric-tea",
		Name:             "Ginger Turmeric Tea",
		TraditionalName:  "Haldi Adrak Chai",
		Category:         "Anti-inflammatory",
		Tags:             []string{"Pain Relief", "Inflammation", "Immunity", "Fever"},
		ConditionTreated: []string{"Fever", "Body aches", "Cold", "Inflammation"},
		Ingredients: []string{
			"1 inch fresh ginger (grated)",
			"1 tsp turmeric powder",
			"1 cup water",
			"Honey to taste",
			"Pinch of black pepper",
		},
		PreparationSteps: []string{
			"Boil water in a pan",
			"Add grated ginger and turmeric",
			"Simmer for 5-7 minutes",
			"Strain into a cup",
			"Add honey and black pepper, serve warm",
		},
		Dosage:            "1 cup, 2-3 times daily",
		Frequency:         "Morning and evening",
		Duration:          "5-7 days",
		WhyItHelps:        "Ginger contains gingerol and turmeric contains curcumin, both powerful anti-inflammatory compounds that reduce pain and fever naturally.",
		HowItWorks:        "Inhibits inflammatory enzymes and modulates immune response. Black pepper enhances curcumin absorption by 2000%.",
		EvidenceLevel:     "Research-Backed",
		SafetyWarnings:    []string{"May cause heartburn in some people", "Avoid if on blood thinners"},
		Contraindications: []string{"Bleeding disorders", "Gallstones", "Upcoming surgery"},
		PregnancySafe:     true,
		Region:            "Pan-India",
		Rating:            4.5,
	},
	{
		ID:               "echinacea-tincture",
		Name:             "Echinacea Tincture",
		Category:         "Immune Support",
		Tags:             []string{"Immunity", "Cold", "Flu", "Prevention"},
		ConditionTreated: []string{"Common cold", "Flu", "Upper respiratory infections"},
		Ingredients: []string{
			"Echinacea root or flowers",
			"High-proof alcohol (vodka or brandy)",
			"Glass jar with lid",
		},
		PreparationSteps: []string{
			"Fill jar 1/3 with dried echinacea or 2/3 with fresh",
			"Cover with alcohol, leaving 1 inch headspace",
			"Seal and store in dark place for 4-6 weeks",
			"Shake daily",
			"Strain and store in dark bottles",
		},
		Dosage:            "30-60 drops in water",
		Frequency:         "3 times daily at first sign of illness",
		Duration:          "7-10 days maximum",
		WhyItHelps:        "Echinacea stimulates the immune system and has antiviral properties that help fight off infections.",
		HowItWorks:        "Increases white blood cell production and activates immune cells to fight pathogens.",
		EvidenceLevel:     "Modern Research",
		SafetyWarnings:    []string{"Not for autoimmune conditions", "May cause allergic reactions in those allergic to daisies"},
		Contraindications: []string{"Autoimmune diseases", "HIV/AIDS", "Tuberculosis"},
		PregnancySafe:     false,
		Region:            "North America, Europe",
		Rating:            4.0,
	},
	{
		ID:               "peppermint-oil",
		Name:             "Peppermint Oil Roll-On",
		Category:         "Headache Relief",
		Tags:             []string{"Pain Relief", "Headache", "Tension", "Cooling"},
		ConditionTreated: []string{"Tension headache", "Migraine", "Muscle tension"},
		Ingredients: []string{
			"10 drops peppermint essential oil",
			"1 oz carrier oil (jojoba or coconut)",
			"Roll-on bottle",
		},
		PreparationSteps: []string{
			"Add carrier oil to roll-on bottle",
			"Add peppermint essential oil",
			"Shake gently to mix",
			"Apply to temples and back of neck",
			"Avoid eye area",
		},
		Dosage:            "Apply diluted oil to temples",
		Frequency:         "As needed, up to 4 times daily",
		Duration:          "Use as symptoms occur",
		WhyItHelps:        "Menthol in peppermint provides cooling sensation and relaxes tense muscles that contribute to headaches.",
		HowItWorks:        "Menthol activates cold receptors, increases blood flow, and relaxes smooth muscle.",
		EvidenceLevel:     "Research-Backed",
		SafetyWarnings:    []string{"Always dilute before skin application", "Keep away from eyes and mucous membranes"},
		Contraindications: []string{"G6PD deficiency", "Children under 6"},
		PregnancySafe:     false,
		Region:            "Worldwide",
		Rating:            5.0,
	},
	{
		ID:               "chamomile-tea",
		Name:             "Chamomile Sleep Tea",
		Category:         "Sleep Aid",
		Tags:             []string{"Sleep", "Relaxation", "Anxiety", "Calming"},
		ConditionTreated: []string{"Insomnia", "Anxiety", "Restlessness", "Stress"},
		Ingredients: []string{
			"2 tbsp dried chamomile flowers",
			"1 cup boiling water",
			"Honey to taste",
			"Optional: lavender buds",
		},
		PreparationSteps: []string{
			"Place chamomile in a teapot or cup",
			"Pour boiling water over flowers",
			"Cover and steep for 5-10 minutes",
			"Strain and add honey if desired",
			"Drink 30 minutes before bed",
		},
		Dosage:            "1-2 cups",
		Frequency:         "Before bedtime",
		Duration:          "Ongoing as needed",
		WhyItHelps:        "Chamomile contains apigenin, a compound that binds to brain receptors promoting relaxation and sleep.",
		HowItWorks:        "Apigenin binds to GABA receptors in the brain, producing mild sedative effects.",
		EvidenceLevel:     "Research-Backed",
		SafetyWarnings:    []string{"May cause drowsiness", "Possible allergic reaction if allergic to ragweed"},
		Contraindications: []string{"Ragweed allergy", "Before driving or operating machinery"},
		PregnancySafe:     true,
		Region:            "Worldwide",
		Rating:            4.2,
	},
	{
		ID:               "honey-lemon-water",
		Name:             "Honey Lemon Water",
		Category:         "Immunity",
		Tags:             []string{"Immunity", "Digestion", "Detox", "Sore Throat"},
		ConditionTreated: []string{"Sore throat", "Cold symptoms", "Digestive issues"},
		Ingredients: []string{
			"1 cup warm water",
			"1 tbsp raw honey",
			"Juice of half a lemon",
		},
		PreparationSteps: []string{
			"Heat water to warm (not boiling)",
			"Squeeze lemon juice into water",
			"Add raw honey and stir well",
			"Drink while warm",
		},
		Dosage:            "1 cup",
		Frequency:         "Morning on empty stomach",
		Duration:          "Daily for best results",
		WhyItHelps:        "Honey has antibacterial properties while lemon provides vitamin C and aids digestion.",
		HowItWorks:        "Honey soothes throat tissue, lemon alkalizes the body and supports immune function.",
		EvidenceLevel:     "Traditional Use",
		SafetyWarnings:    []string{"Not for children under 1 year (honey)", "May affect tooth enamel if taken frequently"},
		Contraindications: []string{"Infants under 1 year", "Citrus allergy"},
		PregnancySafe:     true,
		Region:            "Worldwide",
		Rating:            4.8,
	},
	{
		ID:               "tulsi-steam",
		Name:             "Tulsi Steam Inhalation",
		Category:         "Respiratory",
		Tags:             []string{"Respiratory", "Congestion", "Cold", "Sinus"},
		ConditionTreated: []string{"Nasal congestion", "Sinus issues", "Cold", "Cough"},
		Ingredients: []string{
			"Handful of fresh tulsi (holy basil) leaves",
			"4 cups boiling water",
			"Large bowl",
			"Towel",
		},
		PreparationSteps: []string{
			"Boil water and pour into large bowl",
			"Add fresh tulsi leaves",
			"Lean over bowl with towel over head",
			"Inhale steam for 10-15 minutes",
			"Keep eyes closed during treatment",
		},
		Dosage:            "10-15 minutes inhalation",
		Frequency:         "2-3 times daily",
		Duration:          "Until congestion clears",
		WhyItHelps:        "Tulsi has antimicrobial properties and the steam helps loosen mucus and open airways.",
		HowItWorks:        "Essential oils in tulsi have antibacterial and antiviral properties; steam moisturizes and clears passages.",
		EvidenceLevel:     "Traditional Use",
		SafetyWarnings:    []string{"Be careful with hot steam to avoid burns", "Not recommended for children without supervision"},
		Contraindications: []string{"Asthma (may trigger in some)", "Very young children"},
		PregnancySafe:     true,
		Region:            "India",
		Rating:            4.6,
	},
	{
		ID:               "triphala-powder",
		Name:             "Triphala Powder",
		Category:         "Digestion",
		Tags:             []string{"Digestion", "Detox", "Gut Health", "Constipation"},
		ConditionTreated: []string{"Constipation", "Digestive issues", "Detoxification"},
		Ingredients: []string{
			"1/2 tsp Triphala powder",
			"1 cup warm water",
			"Optional: honey",
		},
		PreparationSteps: []string{
			"Add Triphala powder to warm water",
			"Stir well until dissolved",
			"Add honey if desired for taste",
			"Drink on empty stomach",
		},
		Dosage:            "1/2 to 1 tsp powder in water",
		Frequency:         "Once daily, before bed or morning",
		Duration:          "2-4 weeks, then take a break",
		WhyItHelps:        "Triphala is a combination of three fruits that gently cleanse the digestive tract and support gut health.",
		HowItWorks:        "Acts as a mild laxative, supports healthy gut bacteria, and has antioxidant properties.",
		EvidenceLevel:     "Research-Backed",
		SafetyWarnings:    []string{"May cause loose stools initially", "Start with smaller dose"},
		Contraindications: []string{"Pregnancy", "Diarrhea", "Inflammatory bowel disease"},
		PregnancySafe:     false,
		Region:            "India",
		Rating:            4.3,
	},
	{
		ID:               "ashwagandha-milk",
		Name:             "Ashwagandha Milk",
		Category:         "Stress Relief",
		Tags:             []string{"Stress", "Anxiety", "Sleep", "Energy"},
		ConditionTreated: []string{"Stress", "Anxiety", "Fatigue", "Insomnia"},
		Ingredients: []string{
			"1 cup warm milk (dairy or plant-based)",
			"1/2 tsp Ashwagandha powder",
			"1/4 tsp cinnamon",
			"Honey to taste",
		},
		PreparationSteps: []string{
			"Warm milk in a pan",
			"Add Ashwagandha powder and cinnamon",
			"Stir well and simmer for 2 minutes",
			"Remove from heat and add honey",
			"Drink warm before bed",
		},
		Dosage:            "1 cup with 300-500mg Ashwagandha",
		Frequency:         "Once daily, preferably at night",
		Duration:          "6-8 weeks for full benefits",
		WhyItHelps:        "Ashwagandha is an adaptogen that helps the body manage stress and promotes restful sleep.",
		HowItWorks:        "Reduces cortisol levels, modulates stress response, and promotes GABA activity for relaxation.",
		EvidenceLevel:     "Research-Backed",
		SafetyWarnings:    []string{"May cause drowsiness", "Not for thyroid conditions without doctor's approval"},
		Contraindications: []string{"Pregnancy", "Autoimmune thyroid disease", "Before surgery"},
		PregnancySafe:     false,
		Region:            "India",
		Rating:            4.4,
	},
}
