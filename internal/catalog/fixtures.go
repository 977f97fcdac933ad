package catalog

// Sample data for the demo brand "Willow & Wick Home", a fictitious
// home-goods store. Everything below is authored by hand; the character
// counts on ad records were taken at authoring time.

// SampleData is the full fixture set the dashboard renders. It is built by
// NewSampleData and passed to consumers explicitly; there is no package
// singleton to mutate.
type SampleData struct {
	BrandName     string
	Ads           []AdVariation
	Scripts       []UGCScript
	Rollups       []PlatformRollup
	ProductCounts []ProductCount
	Weekly        []WeekOutput
	Quality       []QualityTally
	Exports       []ExportFile
}

// NewSampleData constructs a fresh copy of the sample catalogue. Each call
// returns independent slices so a caller (the script board in particular)
// can mutate its copy without bleeding into other pages.
func NewSampleData() *SampleData {
	return &SampleData{
		BrandName:     "Willow & Wick Home",
		Ads:           sampleAds(),
		Scripts:       sampleScripts(),
		Rollups:       sampleRollups(),
		ProductCounts: sampleProductCounts(),
		Weekly:        sampleWeekly(),
		Quality:       sampleQuality(),
		Exports:       sampleExports(),
	}
}

func sampleAds() []AdVariation {
	return []AdVariation{
		{
			ID: "ad-001", ProductName: "Linen Waffle Throw", SKU: "WW-THR-014",
			Platform: PlatformMeta,
			Headline: "The Throw Your Couch Is Missing",
			Body:     "Stonewashed linen that gets softer every wash. Breathable in summer, warm in winter. 4,200+ homes already made the swap.",
			Description: "Free shipping over $75.",
			CTA:         "Shop Now",
			HeadlineChars: 31, BodyChars: 124, DescriptionChars: 23,
			Status: StatusReady, Angle: AngleSocialProof, Created: "2 days ago",
		},
		{
			ID: "ad-002", ProductName: "Linen Waffle Throw", SKU: "WW-THR-014",
			Platform: PlatformGoogle,
			Headline: "Stonewashed Linen Throws",
			Body:     "Breathable waffle-weave linen, pre-washed for softness. Four colorways.",
			Description: "Machine washable. Ships free over $75. 60-night home trial.",
			CTA:         "",
			HeadlineChars: 24, BodyChars: 71, DescriptionChars: 59,
			Status: StatusReady, Angle: AngleBenefit, Created: "2 days ago",
		},
		{
			ID: "ad-003", ProductName: "Stoneware Dinner Set", SKU: "WW-DIN-031",
			Platform: PlatformMeta,
			Headline: "Dinner Parties, Minus the Stress",
			Body:     "16-piece reactive-glaze stoneware. Every plate slightly different, all of them dishwasher safe. Your table, finally finished.",
			Description: "Sets for 4 back in stock.",
			CTA:         "Shop Now",
			HeadlineChars: 32, BodyChars: 124, DescriptionChars: 25,
			Status: StatusReview, Angle: AngleProblem, Created: "3 days ago",
		},
		{
			ID: "ad-004", ProductName: "Stoneware Dinner Set", SKU: "WW-DIN-031",
			Platform: PlatformPinterest,
			Headline: "Reactive Glaze Stoneware Dinner Set",
			Body:     "A 16-piece set in speckled sand. Built for slow Sunday dinners and everyday use alike — oven, microwave, and dishwasher safe. Pair with linen napkins for an effortless autumn table.",
			Description: "",
			CTA:         "Save",
			HeadlineChars: 35, BodyChars: 179, DescriptionChars: 0,
			Status: StatusDraft, Angle: AngleLifestyle, Created: "3 days ago",
		},
		{
			ID: "ad-005", ProductName: "Walnut Serving Board", SKU: "WW-SRV-008",
			Platform: PlatformTikTok,
			Headline: "POV: your charcuterie board is the main character",
			Body:     "Solid American walnut, oiled and ready. #homefinds",
			Description: "",
			CTA:         "Shop Now",
			HeadlineChars: 49, BodyChars: 50, DescriptionChars: 0,
			Status: StatusExported, Angle: AngleCuriosity, Created: "1 week ago",
		},
		{
			ID: "ad-006", ProductName: "Soy Candle Trio", SKU: "WW-CND-022",
			Platform: PlatformMeta,
			Headline: "Three Scents. Sixty Hours Each.",
			Body:     "Cedar + amber, sea salt, and fig. Hand-poured soy wax with cotton wicks. The trio is $12 cheaper than buying them apart.",
			Description: "Limited fall pour.",
			CTA:         "Get Offer",
			HeadlineChars: 31, BodyChars: 119, DescriptionChars: 18,
			Status: StatusReady, Angle: AngleUrgency, Created: "5 days ago",
		},
		{
			ID: "ad-007", ProductName: "Soy Candle Trio", SKU: "WW-CND-022",
			Platform: PlatformGoogle,
			Headline: "Hand-Poured Soy Candle Set",
			Body:     "Three 60-hour candles: cedar amber, sea salt, fig. Save 20% on the trio.",
			Description: "Clean-burning soy wax. Cotton wicks. Ships in 2 days.",
			CTA:         "",
			HeadlineChars: 26, BodyChars: 72, DescriptionChars: 53,
			Status: StatusExported, Angle: AngleBenefit, Created: "1 week ago",
		},
		{
			ID: "ad-008", ProductName: "Organic Cotton Duvet", SKU: "WW-BED-047",
			Platform: PlatformMeta,
			Headline: "Hotel Bed. Your House.",
			Body:     "400-thread-count organic cotton, garment-washed so it never feels stiff. If you don't sleep better in 60 nights, send it back.",
			Description: "60-night sleep trial.",
			CTA:         "Learn More",
			HeadlineChars: 22, BodyChars: 125, DescriptionChars: 21,
			Status: StatusReview, Angle: AngleBenefit, Created: "4 days ago",
		},
		{
			ID: "ad-009", ProductName: "Organic Cotton Duvet", SKU: "WW-BED-047",
			Platform: PlatformTikTok,
			Headline: "I washed this duvet 30 times so you don't have to",
			Body:     "Still soft. Still crisp. Receipts in the video. #sleeptok",
			Description: "",
			CTA:         "Learn More",
			HeadlineChars: 49, BodyChars: 57, DescriptionChars: 0,
			Status: StatusDraft, Angle: AngleCuriosity, Created: "4 days ago",
		},
		{
			ID: "ad-010", ProductName: "Cast Iron Dutch Oven", SKU: "WW-KIT-055",
			Platform: PlatformPinterest,
			Headline: "The Dutch Oven That Outlives Trends",
			Body:     "Enameled cast iron in four kitchen-neutral colors. From no-knead bread to braises, one pot does the season's cooking. A registry favorite for a reason.",
			Description: "",
			CTA:         "Save",
			HeadlineChars: 35, BodyChars: 150, DescriptionChars: 0,
			Status: StatusReady, Angle: AngleSocialProof, Created: "6 days ago",
		},
	}
}

func sampleScripts() []UGCScript {
	return []UGCScript{
		{
			ID: "ugc-001", ProductName: "Linen Waffle Throw", Type: ScriptReview,
			Duration: Duration45,
			Hook:     "I bought the throw blanket everyone's mom has saved on Pinterest.",
			Scenes: []Scene{
				{Timestamp: "0:00-0:05", Direction: "Creator on couch, blanket still in packaging", Voiceover: "Okay, it finally came. Let's see if it's worth the hype."},
				{Timestamp: "0:05-0:18", Direction: "Close-up unfolding, hand running over waffle texture", Voiceover: "First thing — it's way heavier than it looks. The waffle weave is actually thick."},
				{Timestamp: "0:18-0:32", Direction: "Draped over couch, then creator wrapped in it", Voiceover: "It's been three weeks and two washes. Softer now than day one, which never happens."},
				{Timestamp: "0:32-0:45", Direction: "Final shot, blanket styled on couch corner", Voiceover: "If your living room needs one upgrade this fall, honestly, it's this."},
			},
			CTA:    "Link's in my bio — the oat color sells out first.",
			Status: StatusReady,
		},
		{
			ID: "ugc-002", ProductName: "Stoneware Dinner Set", Type: ScriptUnboxing,
			Duration: Duration60,
			Hook:     "My entire dinnerware cabinet was mismatched hand-me-downs. Until today.",
			Scenes: []Scene{
				{Timestamp: "0:00-0:08", Direction: "Box on kitchen counter, creator opening flaps", Voiceover: "This is the 16-piece set from Willow and Wick. I've been waiting all week."},
				{Timestamp: "0:08-0:25", Direction: "Lifting each plate out, showing glaze variation to camera", Voiceover: "Look at the glaze — every single plate is a little different. That's the reactive glaze thing."},
				{Timestamp: "0:25-0:40", Direction: "Stacking the full set in open cabinet", Voiceover: "Four dinner plates, four salad, four bowls, four mugs. My cabinet looks like an adult lives here."},
				{Timestamp: "0:40-0:55", Direction: "Table set for dinner, candles lit", Voiceover: "First dinner on them tonight. Zero regrets."},
			},
			CTA:    "They restock sets for four on Mondays — go.",
			Status: StatusReview,
		},
		{
			ID: "ugc-003", ProductName: "Organic Cotton Duvet", Type: ScriptProblem,
			Duration: Duration45,
			Hook:     "I kept waking up sweating at 3am. It wasn't the thermostat.",
			Scenes: []Scene{
				{Timestamp: "0:00-0:07", Direction: "Creator talking to camera in bedroom, frustrated", Voiceover: "It was my polyester duvet cover. Polyester doesn't breathe. At all."},
				{Timestamp: "0:07-0:15", Direction: "Holding up old duvet, then the new one", Voiceover: "I tried a fan, I tried kicking one leg out. Then I just replaced the cover."},
				{Timestamp: "0:15-0:33", Direction: "Making the bed with the organic cotton duvet", Voiceover: "This one's 400-thread-count organic cotton, garment-washed. It actually moves air."},
				{Timestamp: "0:33-0:45", Direction: "Morning shot, creator stretching, sunlight", Voiceover: "First full night of sleep in months. That's the whole review."},
			},
			CTA:    "They give you 60 nights to test it. Worst case you return it.",
			Status: StatusReady,
		},
		{
			ID: "ugc-004", ProductName: "Cast Iron Dutch Oven", Type: ScriptTutorial,
			Duration: Duration45,
			Hook:     "Here's the no-knead bread that made me look like a baker, in one pot.",
			Scenes: []Scene{
				{Timestamp: "0:00-0:10", Direction: "Flour, water, yeast, salt on counter; quick mixing shot", Voiceover: "Step one: mix four ingredients tonight. Don't knead anything. Go to bed."},
				{Timestamp: "0:10-0:20", Direction: "Dough risen next morning, folding onto parchment", Voiceover: "Step two: next morning, fold it twice. That's it, that's the technique."},
				{Timestamp: "0:20-0:30", Direction: "Loading dough into preheated dutch oven, lid on", Voiceover: "Step three: into the screaming-hot dutch oven. The lid traps the steam — that's the secret."},
				{Timestamp: "0:30-0:45", Direction: "Lid off reveal, golden loaf, crackling audio", Voiceover: "Listen to that crust. One pot, zero skill, bakery bread."},
			},
			CTA:    "Dutch oven linked below — the sage green is the one in this video.",
			Status: StatusDraft,
		},
		{
			ID: "ugc-005", ProductName: "Walnut Serving Board", Type: ScriptComparison,
			Duration: Duration30,
			Hook:     "I compared my $18 bamboo board to this walnut one. It's not close.",
			Scenes: []Scene{
				{Timestamp: "0:00-0:10", Direction: "Both boards side by side on counter", Voiceover: "Left: bamboo, two years old, splitting at the seams. Right: solid American walnut."},
				{Timestamp: "0:10-0:22", Direction: "Knife test and water-bead close-ups on each board", Voiceover: "The walnut's end grain barely marks, and the oil finish just beads water off."},
				{Timestamp: "0:22-0:30", Direction: "Cheese and fruit styled on the walnut board", Voiceover: "One of these gets handed down. The other one's compost. Easy call."},
			},
			CTA:    "Walnut board's linked — they engrave initials for free right now.",
			Status: StatusExported,
		},
		{
			ID: "ugc-006", ProductName: "Soy Candle Trio", Type: ScriptLifestyle,
			Duration: Duration30,
			Hook:     "5pm Sunday. Reset routine starts now.",
			Scenes: []Scene{
				{Timestamp: "0:00-0:08", Direction: "Tidying living room montage, warm light", Voiceover: "Blankets folded, dishes done, phone on the shelf."},
				{Timestamp: "0:08-0:20", Direction: "Lighting the cedar amber candle, flame close-up", Voiceover: "Then the cedar amber one gets lit and the whole apartment changes."},
				{Timestamp: "0:20-0:30", Direction: "Creator reading on couch, candle in foreground", Voiceover: "Sixty hours a candle means this routine lasts all season."},
			},
			CTA:    "The trio's cheaper than buying them separately — linked.",
			Status: StatusDraft,
		},
	}
}

func sampleRollups() []PlatformRollup {
	return []PlatformRollup{
		{Platform: PlatformMeta, Campaigns: 3, AdSets: 8, Ads: 24, Reach: 182000, Budget: 3600, ReadyPct: 71},
		{Platform: PlatformGoogle, Campaigns: 2, AdSets: 6, Ads: 18, Reach: 95400, Budget: 2400, ReadyPct: 83},
		{Platform: PlatformTikTok, Campaigns: 2, AdSets: 4, Ads: 12, Reach: 240800, Budget: 1800, ReadyPct: 58},
		{Platform: PlatformPinterest, Campaigns: 1, AdSets: 3, Ads: 9, Reach: 41200, Budget: 900, ReadyPct: 66},
	}
}

func sampleProductCounts() []ProductCount {
	return []ProductCount{
		{Product: "Linen Waffle Throw", Ads: 14},
		{Product: "Stoneware Dinner Set", Ads: 12},
		{Product: "Organic Cotton Duvet", Ads: 11},
		{Product: "Soy Candle Trio", Ads: 10},
		{Product: "Cast Iron Dutch Oven", Ads: 9},
		{Product: "Walnut Serving Board", Ads: 7},
	}
}

func sampleWeekly() []WeekOutput {
	return []WeekOutput{
		{Week: "Jul 14", Ads: 6, Scripts: 2},
		{Week: "Jul 21", Ads: 9, Scripts: 3},
		{Week: "Jul 28", Ads: 7, Scripts: 4},
		{Week: "Aug 04", Ads: 12, Scripts: 4},
		{Week: "Aug 11", Ads: 10, Scripts: 6},
		{Week: "Aug 18", Ads: 15, Scripts: 5},
	}
}

func sampleQuality() []QualityTally {
	return []QualityTally{
		{Check: "Character limits", Passed: 58, Failed: 5},
		{Check: "Banned words", Passed: 61, Failed: 2},
		{Check: "CTA present", Passed: 55, Failed: 8},
		{Check: "Tone match", Passed: 49, Failed: 14},
	}
}

func sampleExports() []ExportFile {
	return []ExportFile{
		{Name: "ads_meta_20250818_091402.csv", Format: "csv", Records: 24, Created: "Aug 18"},
		{Name: "ads_google_20250818_091402.csv", Format: "csv", Records: 18, Created: "Aug 18"},
		{Name: "ugc_scripts_20250815_164210.csv", Format: "csv", Records: 11, Created: "Aug 15"},
		{Name: "content_20250811_080003.json", Format: "json", Records: 63, Created: "Aug 11"},
	}
}
