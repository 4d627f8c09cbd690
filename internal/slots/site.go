package slots

// siteConfigurations returns the slot layouts for the designed marketing
// pages. Slugs without an entry here fall back to the generic body editor.
func siteConfigurations() map[string]*SlotConfiguration {
	return map[string]*SlotConfiguration{
		"home": {
			ComponentPath: "components/pages/HomePage",
			Slots: []ContentSlot{
				{ID: "heroTitle", Label: "Hero title", Type: TypeText, DefaultValue: "Turn Customers Into Your Growth Engine", Section: "Hero"},
				{ID: "heroSubtitle", Label: "Hero subtitle", Type: TypeParagraph, DefaultValue: "The Loop Revenue System compounds every win into the next one.", Section: "Hero"},
				{ID: "heroCTA", Label: "Hero call to action", Type: TypeText, DefaultValue: "See how the loop works", Section: "Hero"},
				{ID: "loopIntro", Label: "Loop introduction", Type: TypeRichText, DefaultValue: "<p>Most teams run their revenue as a straight line. We run it as a loop.</p>", Section: "The Loop"},
				{ID: "loopPillars", Label: "Loop pillars", Type: TypeList, DefaultList: []string{"Attract", "Convert", "Deliver", "Multiply"}, Section: "The Loop"},
				{ID: "proofHeading", Label: "Proof heading", Type: TypeText, DefaultValue: "Teams running the loop", Section: "Proof"},
			},
		},
		"overview/stages": {
			ComponentPath: "components/pages/StagesPage",
			Slots: []ContentSlot{
				{ID: "heroTitle", Label: "Hero title", Type: TypeText, DefaultValue: "The Four Stages", Section: "Hero"},
				{ID: "heroSubtitle", Label: "Hero subtitle", Type: TypeParagraph, DefaultValue: "Every revenue loop moves through four compounding stages.", Section: "Hero"},
				{ID: "stageNames", Label: "Stage names", Type: TypeList, DefaultList: []string{"Attract", "Convert", "Deliver", "Multiply"}, Section: "Stages"},
				{ID: "stagesOverview", Label: "Stages overview", Type: TypeRichText, DefaultValue: "<p>Each stage feeds the next. Skipping one breaks the loop.</p>", Section: "Stages"},
				{ID: "diagramCaption", Label: "Diagram caption", Type: TypeText, DefaultValue: "The loop in motion", Section: "Stages", Description: "Shown under the stage diagram"},
				{ID: "nextStepCTA", Label: "Next step call to action", Type: TypeText, DefaultValue: "Map your own loop", Section: "Next Steps"},
			},
		},
		"system": {
			ComponentPath: "components/pages/SystemPage",
			Slots: []ContentSlot{
				{ID: "heroTitle", Label: "Hero title", Type: TypeText, DefaultValue: "The Loop Revenue System", Section: "Hero"},
				{ID: "systemSummary", Label: "System summary", Type: TypeParagraph, DefaultValue: "A practical operating system for compounding revenue.", Section: "Hero"},
				{ID: "methodBody", Label: "Methodology body", Type: TypeRichText, DefaultValue: "<p>The system pairs each stage with a weekly operating cadence.</p>", Section: "Methodology"},
				{ID: "principles", Label: "Operating principles", Type: TypeList, DefaultList: []string{"Measure the loop, not the funnel", "Every customer is a channel", "Ship learning weekly"}, Section: "Methodology"},
			},
		},
		"resources/workshops": {
			ComponentPath: "components/pages/WorkshopsPage",
			Slots: []ContentSlot{
				{ID: "heroTitle", Label: "Hero title", Type: TypeText, DefaultValue: "Workshops", Section: "Hero"},
				{ID: "workshopPitch", Label: "Workshop pitch", Type: TypeParagraph, DefaultValue: "Hands-on sessions that install the loop in your team.", Section: "Hero"},
				{ID: "agendaIntro", Label: "Agenda introduction", Type: TypeRichText, DefaultValue: "<p>Every workshop follows the same arc: diagnose, design, commit.</p>", Section: "Agenda"},
			},
		},
	}
}
