package deck

import "fmt"

type demoGroup struct {
	title string
	intro string
	cards []string
}

var demoGroups = []demoGroup{
	{"Discover", "Where the work starts: listening before building.", []string{"Interviews", "Field notes", "Problem map"}},
	{"Define", "Turning what we heard into something we can commit to.", []string{"Goals", "Constraints", "Success signals"}},
	{"Design", "Sketching the shape of the answer.", []string{"Flows", "Prototypes", "Critique"}},
	{"Build", "Small slices, shipped behind flags.", []string{"Spikes", "Slices", "Reviews", "Hardening"}},
	{"Launch", "Getting it into hands without drama.", []string{"Beta", "Rollout", "Support"}},
	{"Learn", "Closing the loop so the next lap is shorter.", []string{"Metrics", "Retro"}},
}

// Demo returns the built-in deck used when no deck file is configured.
// Cards inside a group are joined by connectors.
func Demo() *Deck {
	d := &Deck{
		Title: "popup-deck",
		Start: "A scroll-less deck. Use ←/→ or space to step through it, / to jump.",
		End:   "That's the tour. Press → to start over or q to leave.",
	}
	for _, spec := range demoGroups {
		group := Group{Title: spec.title, Intro: spec.intro}
		for i, card := range spec.cards {
			if i > 0 {
				group.Slots = append(group.Slots, Slot{Type: SlotTypeConnector})
			}
			group.Slots = append(group.Slots, Slot{
				Type:  SlotTypeCard,
				Title: card,
				Body:  fmt.Sprintf("%s, step %d of %d in %s.", card, i+1, len(spec.cards), spec.title),
			})
		}
		d.Groups = append(d.Groups, group)
	}
	return d
}
