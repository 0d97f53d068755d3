package student

import (
	"errors"
	"fmt"
)

// SlotDefinition maps one labeled display unit onto record fields. An empty
// field name means the slot has no such field.
type SlotDefinition struct {
	Label      string `json:"label"`
	ImageField string `json:"imageField,omitempty"`
	NameField  string `json:"nameField,omitempty"`
	IDField    string `json:"idField,omitempty"`
}

// DefaultSlots is the fixed set of photo cards shown for every student, in
// display order.
var DefaultSlots = []SlotDefinition{
	{Label: "Student", ImageField: FieldStudentPhoto, NameField: FieldStudentName},
	{Label: "Father", ImageField: "Father's Photograph", NameField: FieldFatherName},
	{Label: "Mother", ImageField: "Mother's Photograph", NameField: FieldMotherName},
	{Label: "Guardian", ImageField: "Guardian's Photo", NameField: "Guardian's Name"},
	{Label: "Grandfather", ImageField: "Grandfather's Photograph", NameField: "Grandfather's Name"},
	{Label: "Grandmother", ImageField: "Grandmother's Photograph", NameField: "Grandmother's Name"},
	{
		Label:      "Sibling 1",
		ImageField: "Sibling-1 Photograph (Real brother/sister)",
		NameField:  "Sibling-1 Name",
		IDField:    "Sibling-1 Scholar ID",
	},
	{
		Label:      "Sibling 2",
		ImageField: "Sibling-2 Photograph (Real brother/sister)",
		NameField:  "Sibling-2 Name",
		IDField:    "Sibling-2 Scholar ID",
	},
	{Label: "Sibling 1 Aadhar", ImageField: "Aadhar Card Of Sibling 1"},
	{Label: "Sibling 2 Aadhar", ImageField: "Aadhar Card Of Sibling 2"},
}

// SlotByLabel returns the default slot with the given label.
func SlotByLabel(label string) (SlotDefinition, bool) {
	for _, def := range DefaultSlots {
		if def.Label == label {
			return def, true
		}
	}
	return SlotDefinition{}, false
}

var ErrInvalidSlot = errors.New("invalid slot definition")

// ValidateSlots rejects definitions without a label or without any field.
func ValidateSlots(slots []SlotDefinition) error {
	var errs error
	for i, def := range slots {
		if def.Label == "" {
			errs = errors.Join(errs, fmt.Errorf("%w: slot %d has no label", ErrInvalidSlot, i))
			continue
		}
		if def.ImageField == "" && def.NameField == "" && def.IDField == "" {
			errs = errors.Join(errs, fmt.Errorf("%w: slot %q maps no fields", ErrInvalidSlot, def.Label))
		}
	}
	return errs
}
