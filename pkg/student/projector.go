package student

// DisplaySlot is one projected photo card. It is derived from a Record on
// every render and never stored.
type DisplaySlot struct {
	Label      string `json:"label"`
	ImageURL   string `json:"imageUrl,omitempty"`
	PersonName string `json:"personName,omitempty"`
	PersonID   string `json:"personId,omitempty"`
	Visible    bool   `json:"visible"`
}

// HasImage reports whether the card carries an image URL. Cards without one
// render a "No Image" placeholder.
func (s DisplaySlot) HasImage() bool {
	return s.ImageURL != ""
}

// Project resolves every slot against record, in slot order. A slot is
// visible iff at least one of its image, name or id resolves to a non-empty
// value. Values are copied verbatim.
//
// Callers gate on record presence; a nil record yields only suppressed slots.
func Project(record Record, slots []SlotDefinition) []DisplaySlot {
	out := make([]DisplaySlot, 0, len(slots))
	for _, def := range slots {
		slot := DisplaySlot{
			Label:      def.Label,
			ImageURL:   record.Get(def.ImageField),
			PersonName: record.Get(def.NameField),
			PersonID:   record.Get(def.IDField),
		}
		slot.Visible = slot.ImageURL != "" || slot.PersonName != "" || slot.PersonID != ""
		out = append(out, slot)
	}
	return out
}

// Visible drops suppressed slots, keeping order.
func Visible(slots []DisplaySlot) []DisplaySlot {
	out := make([]DisplaySlot, 0, len(slots))
	for _, s := range slots {
		if s.Visible {
			out = append(out, s)
		}
	}
	return out
}

// Cards is Visible(Project(record, slots)).
func Cards(record Record, slots []SlotDefinition) []DisplaySlot {
	return Visible(Project(record, slots))
}
