package kb

// Builtin returns the curated ingredient dataset. Safety calls and concern
// text are written for melanin-rich skin, where irritation carries the
// added risk of post-inflammatory hyperpigmentation (PIH).
//
// Aliases favour INCI names first, then common label names.
func Builtin() []Profile {
	allSkin := SkinCompat{Oily: true, Combination: true, Normal: true, Dry: true, Sensitive: true}

	return []Profile{
		{
			CanonicalName: "Water",
			Aliases:       []string{"Aqua", "Eau", "Purified Water", "Distilled Water"},
			Category:      "solvent",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Universal solvent and the base of most water-phase formulas.",
			Benefits:      "Hydration carrier; dissolves and delivers water-soluble actives.",
		},
		{
			CanonicalName: "Glycerin",
			Aliases:       []string{"Glycerol", "Glycerine", "Vegetable Glycerin"},
			Category:      "humectant",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Humectant that draws water into the stratum corneum.",
			Benefits:      "Deep hydration, barrier support, improves product spread.",
			Concentration: "2-10%",
		},
		{
			CanonicalName: "Hyaluronic Acid",
			Aliases:       []string{"Sodium Hyaluronate", "Hydrolyzed Hyaluronic Acid", "HA"},
			Category:      "humectant",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Large sugar molecule holding up to 1000x its weight in water.",
			Benefits:      "Plumping hydration without heaviness; suits all skin types.",
			Concentration: "0.1-2%",
		},
		{
			CanonicalName: "Niacinamide",
			Aliases:       []string{"Vitamin B3", "Nicotinamide", "Niacin Amide"},
			Category:      "vitamin",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Form of vitamin B3 that regulates sebum and evens tone.",
			Benefits:      "Fades dark spots, strengthens barrier, reduces pore appearance. A first-line active for hyperpigmentation on deeper skin tones.",
			Concentration: "2-10%",
		},
		{
			CanonicalName: "Ceramide NP",
			Aliases:       []string{"Ceramide 3", "Ceramides"},
			Category:      "emollient",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Skin-identical lipid that rebuilds the moisture barrier.",
			Benefits:      "Barrier repair, reduced transepidermal water loss.",
		},
		{
			CanonicalName: "Squalane",
			Aliases:       []string{"Hydrogenated Squalene", "Olive Squalane", "Sugarcane Squalane"},
			Category:      "emollient",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Stable, lightweight lipid mimicking skin's own sebum.",
			Benefits:      "Non-comedogenic softening and moisture sealing.",
		},
		{
			CanonicalName: "Shea Butter",
			Aliases:       []string{"Butyrospermum Parkii Butter", "Karite Butter"},
			Category:      "emollient",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    SkinCompat{Oily: false, Combination: true, Normal: true, Dry: true, Sensitive: true},
			Concerns:      []string{"May feel heavy or clog pores on very oily skin"},
			Description:   "Rich plant butter from the shea tree, a staple for dry and textured skin.",
			Benefits:      "Intense emolliency, soothes ashiness, supports barrier lipids.",
		},
		{
			CanonicalName: "Cocoa Butter",
			Aliases:       []string{"Theobroma Cacao Seed Butter"},
			Category:      "emollient",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    SkinCompat{Oily: false, Combination: false, Normal: true, Dry: true, Sensitive: true},
			Concerns:      []string{"Comedogenic on acne-prone skin"},
			Description:   "Occlusive plant butter traditionally used on deeper skin tones.",
			Benefits:      "Softens rough patches and scars, long-lasting moisture.",
		},
		{
			CanonicalName: "Aloe Vera",
			Aliases:       []string{"Aloe Barbadensis Leaf Juice", "Aloe Barbadensis Leaf Extract", "Aloe"},
			Category:      "soothing agent",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Succulent leaf juice with anti-inflammatory polysaccharides.",
			Benefits:      "Calms irritation and sunburn, lightweight hydration.",
		},
		{
			CanonicalName: "Centella Asiatica",
			Aliases:       []string{"Centella Asiatica Extract", "Cica", "Gotu Kola", "Madecassoside"},
			Category:      "soothing agent",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Herbal extract rich in madecassoside, used to calm reactive skin.",
			Benefits:      "Reduces redness and irritation; helps prevent PIH after flare-ups.",
		},
		{
			CanonicalName: "Panthenol",
			Aliases:       []string{"Pro-Vitamin B5", "Provitamin B5", "Dexpanthenol"},
			Category:      "humectant",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Provitamin B5 humectant with soothing properties.",
			Benefits:      "Hydrates, softens, supports wound healing.",
		},
		{
			CanonicalName: "Zinc Oxide",
			Aliases:       []string{"CI 77947", "Non-Nano Zinc Oxide"},
			Category:      "mineral sunscreen",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Concerns:      []string{"Untinted formulas can leave a white cast on deeper skin tones"},
			Description:   "Broad-spectrum physical UV filter.",
			Benefits:      "Daily UV protection, the single most effective step against dark-spot formation.",
			Concentration: "10-25%",
		},
		{
			CanonicalName: "Titanium Dioxide",
			Aliases:       []string{"CI 77891", "TiO2"},
			Category:      "mineral sunscreen",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Concerns:      []string{"Visible white cast is common on melanin-rich skin"},
			Description:   "Physical UV filter, mostly UVB and short UVA.",
			Benefits:      "Gentle sun protection suitable for sensitive skin.",
		},
		{
			CanonicalName: "Vitamin C",
			Aliases:       []string{"Ascorbic Acid", "L-Ascorbic Acid", "Sodium Ascorbyl Phosphate", "Ascorbyl Glucoside"},
			Category:      "antioxidant",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: true, Sensitive: false},
			Concerns:      []string{"Low-pH formats can tingle on sensitive skin"},
			Description:   "Antioxidant that inhibits tyrosinase, the enzyme behind excess melanin production.",
			Benefits:      "Brightens dull tone, fades hyperpigmentation, boosts sunscreen efficacy.",
			Concentration: "5-20%",
		},
		{
			CanonicalName: "Vitamin E",
			Aliases:       []string{"Tocopherol", "Tocopheryl Acetate"},
			Category:      "antioxidant",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Lipid-soluble antioxidant, often paired with vitamin C.",
			Benefits:      "Protects skin lipids from oxidation, conditions skin.",
		},
		{
			CanonicalName: "Green Tea Extract",
			Aliases:       []string{"Camellia Sinensis Leaf Extract", "EGCG"},
			Category:      "antioxidant",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Polyphenol-rich extract with antioxidant and anti-inflammatory action.",
			Benefits:      "Calms, protects against free-radical damage.",
		},
		{
			CanonicalName: "Licorice Root Extract",
			Aliases:       []string{"Glycyrrhiza Glabra Root Extract", "Licorice Extract", "Glabridin"},
			Category:      "brightening agent",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Botanical tyrosinase inhibitor, a gentle alternative to hydroquinone.",
			Benefits:      "Fades dark marks without irritation; well tolerated on deep skin tones.",
		},
		{
			CanonicalName: "Kojic Acid",
			Aliases:       []string{"Kojic Dipalmitate"},
			Category:      "brightening agent",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Can sensitize with prolonged use", "Contact dermatitis reported"},
			AllergenPotential: true,
			IrritantPotential: false,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: true, Sensitive: false},
			Description:   "Fungal-derived tyrosinase inhibitor used for stubborn dark spots.",
			Benefits:      "Evens tone, fades melasma and PIH.",
			Concentration: "1-2%",
		},
		{
			CanonicalName: "Azelaic Acid",
			Aliases:       []string{"Azelaic Acid 10%", "Potassium Azeloyl Diglycinate"},
			Category:      "multifunctional acid",
			SafetyRating:  RatingSafe,
			ChildSafe:     false,
			SkinCompat:    allSkin,
			Concerns:      []string{"Mild transient tingling at higher strengths"},
			Description:   "Grain-derived acid treating acne, rosacea, and hyperpigmentation at once.",
			Benefits:      "One of the safest actives for PIH on melanin-rich skin; pregnancy compatible.",
			Concentration: "10-20%",
		},
		{
			CanonicalName: "Salicylic Acid",
			Aliases:       []string{"Beta Hydroxy Acid", "BHA", "2-Hydroxybenzoic Acid", "Willow Bark Extract"},
			Category:      "exfoliant",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Over-exfoliation can trigger PIH on deeper skin tones", "Drying at high strength"},
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: false, Sensitive: false},
			Description:   "Oil-soluble beta hydroxy acid that exfoliates inside the pore.",
			Benefits:      "Clears blackheads and congestion, smooths texture.",
			Concentration: "0.5-2%",
		},
		{
			CanonicalName: "Glycolic Acid",
			Aliases:       []string{"Alpha Hydroxy Acid", "AHA", "Hydroxyacetic Acid"},
			Category:      "exfoliant",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"High strengths risk burns and rebound hyperpigmentation", "Increases sun sensitivity"},
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: true, Sensitive: false},
			Description:   "Smallest alpha hydroxy acid; strong surface exfoliant.",
			Benefits:      "Renews surface, softens fine lines, fades superficial marks.",
			Concentration: "5-10%",
		},
		{
			CanonicalName: "Lactic Acid",
			Aliases:       []string{"Sodium Lactate", "L-Lactic Acid"},
			Category:      "exfoliant",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Milder than glycolic but still photosensitizing"},
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: true, Sensitive: false},
			Description:   "Gentler AHA that exfoliates while hydrating.",
			Benefits:      "Smooths and brightens with less sting than glycolic acid.",
			Concentration: "5-10%",
		},
		{
			CanonicalName: "Mandelic Acid",
			Aliases:       []string{"Amygdalic Acid"},
			Category:      "exfoliant",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Mild irritation possible when layered with other acids"},
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: true, Sensitive: true},
			Description:   "Large-molecule AHA that penetrates slowly; the AHA of choice for deeper skin tones.",
			Benefits:      "Exfoliates with minimal PIH risk, helps acne and tone.",
			Concentration: "5-10%",
		},
		{
			CanonicalName: "Retinol",
			Aliases:       []string{"Vitamin A", "Retinyl Palmitate", "Retinyl Acetate"},
			Category:      "retinoid",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Retinization period causes peeling and irritation", "Irritation can trigger PIH", "Not for use during pregnancy"},
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: false, Sensitive: false},
			Description:   "Gold-standard vitamin A derivative for aging and acne.",
			Benefits:      "Boosts cell turnover, fades marks, builds collagen.",
			Concentration: "0.25-1%",
		},
		{
			CanonicalName: "Retinal",
			Aliases:       []string{"Retinaldehyde"},
			Category:      "retinoid",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Faster acting than retinol with comparable irritation", "Not for use during pregnancy"},
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: false, Sensitive: false},
			Description:   "Retinaldehyde, one conversion step from retinoic acid.",
			Benefits:      "Stronger turnover boost than retinol.",
			Concentration: "0.05-0.1%",
		},
		{
			CanonicalName: "Adapalene",
			Aliases:       []string{"Differin"},
			Category:      "retinoid",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Dryness and peeling in first weeks", "Not for use during pregnancy"},
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: false, Sensitive: false},
			Description:   "Third-generation synthetic retinoid for acne.",
			Benefits:      "Comedolytic with better photostability than retinol.",
			Concentration: "0.1-0.3%",
		},
		{
			CanonicalName: "Benzoyl Peroxide",
			Aliases:       []string{"BPO", "Benzoperoxide"},
			Category:      "antimicrobial",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Bleaches fabric and can lighten skin unevenly", "Very drying", "Irritation-induced PIH risk"},
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: false, Dry: false, Sensitive: false},
			Description:   "Antibacterial acne treatment that kills C. acnes.",
			Benefits:      "Fast-acting against inflammatory acne.",
			Concentration: "2.5-5%",
		},
		{
			CanonicalName: "Hydroquinone",
			Aliases:       []string{"HQ", "1,4-Dihydroxybenzene", "Quinol"},
			Category:      "skin lightener",
			SafetyRating:  RatingAvoid,
			ChildSafe:     false,
			Concerns: []string{
				"Prolonged use can cause exogenous ochronosis (paradoxical blue-black darkening) on melanin-rich skin",
				"Banned or restricted over-the-counter in many countries",
				"Rebound hyperpigmentation on discontinuation",
			},
			AllergenPotential: true,
			IrritantPotential: true,
			SkinCompat:    SkinCompat{},
			Description:   "Potent melanin-synthesis inhibitor; prescription-only in most markets.",
			Benefits:      "Rapidly fades severe hyperpigmentation under medical supervision.",
			Concentration: "prescription only",
		},
		{
			CanonicalName: "Mercury",
			Aliases:       []string{"Mercurous Chloride", "Calomel", "Mercuric Ammonium Chloride"},
			Category:      "skin lightener",
			SafetyRating:  RatingAvoid,
			ChildSafe:     false,
			Concerns: []string{
				"Neurotoxic and nephrotoxic; accumulates in the body",
				"Illegal in cosmetics yet still found in unregulated bleaching creams",
			},
			AllergenPotential: false,
			IrritantPotential: true,
			SkinCompat:    SkinCompat{},
			Description:   "Toxic heavy metal found in illegal skin-bleaching products.",
			Benefits:      "None that justify the risk; avoid entirely.",
		},
		{
			CanonicalName: "Topical Steroids",
			Aliases:       []string{"Clobetasol Propionate", "Betamethasone", "Corticosteroids"},
			Category:      "skin lightener",
			SafetyRating:  RatingAvoid,
			ChildSafe:     false,
			Concerns: []string{
				"Skin thinning, stretch marks, and steroid dependency with cosmetic misuse",
				"Common undeclared additive in bleaching creams",
			},
			IrritantPotential: false,
			SkinCompat:    SkinCompat{},
			Description:   "Prescription anti-inflammatories misused as lighteners in unregulated products.",
			Benefits:      "Legitimate only under dermatological care.",
		},
		{
			CanonicalName: "Fragrance",
			Aliases:       []string{"Parfum", "Perfume", "Aroma", "Fragrance Oil"},
			Category:      "fragrance",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Leading cause of cosmetic contact dermatitis", "Undisclosed mixture of up to hundreds of compounds"},
			AllergenPotential: true,
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: false, Sensitive: false},
			Description:   "Umbrella term for scent blends; composition is proprietary.",
			Benefits:      "Sensory only; no skin benefit.",
		},
		{
			CanonicalName: "Essential Oil Blend",
			Aliases:       []string{"Lavender Oil", "Tea Tree Oil", "Peppermint Oil", "Citrus Oil", "Linalool", "Limonene"},
			Category:      "fragrance",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Natural does not mean non-sensitizing", "Citrus oils are phototoxic"},
			AllergenPotential: true,
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: false, Sensitive: false},
			Description:   "Concentrated plant volatiles used for scent and marketing claims.",
			Benefits:      "Aromatic; tea tree has mild antimicrobial evidence.",
		},
		{
			CanonicalName: "Denatured Alcohol",
			Aliases:       []string{"Alcohol Denat", "SD Alcohol 40", "Ethanol", "Isopropyl Alcohol"},
			Category:      "solvent",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Disrupts the lipid barrier with repeated use", "Drying"},
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: false, Dry: false, Sensitive: false},
			Description:   "Quick-evaporating solvent giving a weightless finish.",
			Benefits:      "Improves spread and penetration of actives.",
		},
		{
			CanonicalName: "Witch Hazel",
			Aliases:       []string{"Hamamelis Virginiana Extract", "Hamamelis Water"},
			Category:      "astringent",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Tannins and added alcohol can over-dry reactive skin"},
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: false, Sensitive: false},
			Description:   "Botanical astringent common in toners.",
			Benefits:      "Temporary oil control and pore tightening.",
		},
		{
			CanonicalName: "Sodium Lauryl Sulfate",
			Aliases:       []string{"SLS", "Sodium Dodecyl Sulfate"},
			Category:      "surfactant",
			SafetyRating:  RatingCaution,
			ChildSafe:     false,
			Concerns:      []string{"Harsh cleanser known to strip barrier lipids", "Standard positive control in irritation testing"},
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: false, Normal: false, Dry: false, Sensitive: false},
			Description:   "Strong anionic surfactant producing rich foam.",
			Benefits:      "Effective cleansing; cheap.",
		},
		{
			CanonicalName: "Sodium Laureth Sulfate",
			Aliases:       []string{"SLES"},
			Category:      "surfactant",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			Concerns:      []string{"Milder than SLS but can still dry very reactive skin"},
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: false, Sensitive: false},
			Description:   "Ethoxylated, gentler cousin of SLS.",
			Benefits:      "Foaming cleanser with acceptable mildness.",
		},
		{
			CanonicalName: "Cocamidopropyl Betaine",
			Aliases:       []string{"CAPB", "Coco Betaine"},
			Category:      "surfactant",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			Concerns:      []string{"Impurities (amidoamine) occasionally sensitize"},
			AllergenPotential: true,
			SkinCompat:    allSkin,
			Description:   "Mild amphoteric surfactant from coconut oil.",
			Benefits:      "Gentle cleansing and foam boosting.",
		},
		{
			CanonicalName: "Phenoxyethanol",
			Aliases:       []string{"2-Phenoxyethanol", "Euxyl PE"},
			Category:      "preservative",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			Concerns:      []string{"Rare stinging at the 1% regulatory ceiling"},
			SkinCompat:    allSkin,
			Description:   "Broad-spectrum preservative, the mainstream paraben alternative.",
			Benefits:      "Keeps formulas microbially safe.",
			Concentration: "≤1%",
		},
		{
			CanonicalName: "Parabens",
			Aliases:       []string{"Methylparaben", "Propylparaben", "Butylparaben", "Ethylparaben"},
			Category:      "preservative",
			SafetyRating:  RatingCaution,
			ChildSafe:     true,
			Concerns:      []string{"Weak estrogenic activity debated; longer-chain esters restricted in the EU"},
			AllergenPotential: true,
			SkinCompat:    allSkin,
			Description:   "Long-used preservative family with ongoing safety debate.",
			Benefits:      "Extremely effective preservation at low doses.",
		},
		{
			CanonicalName: "Methylisothiazolinone",
			Aliases:       []string{"MIT", "MI", "Methylchloroisothiazolinone", "Kathon CG"},
			Category:      "preservative",
			SafetyRating:  RatingAvoid,
			ChildSafe:     false,
			Concerns:      []string{"Epidemic-level contact allergy rates; banned in EU leave-on products"},
			AllergenPotential: true,
			IrritantPotential: true,
			SkinCompat:    SkinCompat{Oily: true, Combination: false, Normal: false, Dry: false, Sensitive: false},
			Description:   "Potent preservative behind a wave of contact-allergy cases.",
			Benefits:      "Preservation; safer options exist.",
		},
		{
			CanonicalName: "Formaldehyde Releasers",
			Aliases:       []string{"DMDM Hydantoin", "Quaternium-15", "Imidazolidinyl Urea", "Diazolidinyl Urea"},
			Category:      "preservative",
			SafetyRating:  RatingAvoid,
			ChildSafe:     false,
			Concerns:      []string{"Slowly release formaldehyde, a known sensitizer and carcinogen"},
			AllergenPotential: true,
			IrritantPotential: true,
			SkinCompat:    SkinCompat{},
			Description:   "Preservatives that work by releasing trace formaldehyde.",
			Benefits:      "Preservation; modern systems avoid them.",
		},
		{
			CanonicalName: "Dimethicone",
			Aliases:       []string{"Polydimethylsiloxane", "Silicone"},
			Category:      "occlusive",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Silicone polymer forming a breathable protective film.",
			Benefits:      "Smooth slip, blurs texture, protects compromised skin.",
		},
		{
			CanonicalName: "Petrolatum",
			Aliases:       []string{"Petroleum Jelly", "Vaseline", "Mineral Jelly"},
			Category:      "occlusive",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    SkinCompat{Oily: false, Combination: true, Normal: true, Dry: true, Sensitive: true},
			Concerns:      []string{"Too occlusive for acne-prone areas"},
			Description:   "The most effective occlusive known; reduces water loss ~99%.",
			Benefits:      "Slugging, barrier protection, heals cracked skin.",
		},
		{
			CanonicalName: "Mineral Oil",
			Aliases:       []string{"Paraffinum Liquidum", "Liquid Paraffin", "White Mineral Oil"},
			Category:      "occlusive",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    SkinCompat{Oily: false, Combination: true, Normal: true, Dry: true, Sensitive: true},
			Description:   "Highly refined, inert hydrocarbon emollient.",
			Benefits:      "Non-sensitizing moisture seal.",
		},
		{
			CanonicalName: "Caffeine",
			Aliases:       []string{"1,3,7-Trimethylxanthine"},
			Category:      "antioxidant",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Vasoconstricting antioxidant common in eye products.",
			Benefits:      "Temporarily reduces puffiness and dark-circle appearance.",
		},
		{
			CanonicalName: "Urea",
			Aliases:       []string{"Carbamide", "Hydroxyethyl Urea"},
			Category:      "humectant",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			Concerns:      []string{"Keratolytic above 10%; can sting on broken skin"},
			SkinCompat:    SkinCompat{Oily: true, Combination: true, Normal: true, Dry: true, Sensitive: false},
			Description:   "Natural moisturizing factor component; humectant at low dose, exfoliant at high.",
			Benefits:      "Softens rough, scaly skin.",
			Concentration: "2-10%",
		},
		{
			CanonicalName: "Allantoin",
			Aliases:       []string{"Aluminum Dihydroxy Allantoinate"},
			Category:      "soothing agent",
			SafetyRating:  RatingSafe,
			ChildSafe:     true,
			SkinCompat:    allSkin,
			Description:   "Comfrey-derived skin protectant.",
			Benefits:      "Soothes and promotes smooth healing.",
		},
		{
			CanonicalName: "Tranexamic Acid",
			Aliases:       []string{"TXA", "Trans-4-Aminomethylcyclohexanecarboxylic Acid"},
			Category:      "brightening agent",
			SafetyRating:  RatingSafe,
			ChildSafe:     false,
			SkinCompat:    allSkin,
			Description:   "Plasmin inhibitor repurposed as a pigmentation treatment.",
			Benefits:      "Strong evidence against melasma and PIH, gentle on deep skin tones.",
			Concentration: "2-5%",
		},
		{
			CanonicalName: "Arbutin",
			Aliases:       []string{"Alpha-Arbutin", "Beta-Arbutin", "Bearberry Extract"},
			Category:      "brightening agent",
			SafetyRating:  RatingSafe,
			ChildSafe:     false,
			Concerns:      []string{"Degrades to trace hydroquinone in low-quality formulas"},
			SkinCompat:    allSkin,
			Description:   "Glycosylated hydroquinone derivative with a far gentler profile.",
			Benefits:      "Gradual, low-irritation brightening.",
			Concentration: "1-2%",
		},
	}
}
