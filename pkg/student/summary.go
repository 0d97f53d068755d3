package student

import "github.com/okiedokie/student-image-finder/pkg/choice"

const (
	FieldStudentPhoto = "Student's Photograph"
	FieldStudentName  = "Student Name"
	FieldScholarID    = "Scholar ID"
	FieldCourse       = "Course"
	FieldStream       = "Stream"
	FieldSection      = "Section"
	FieldFatherName   = "Father Name"
	FieldMotherName   = "Mother Name"
)

// Placeholder stands in for missing header text.
const Placeholder = "—"

// Summary is the header card shown above the photo cards.
type Summary struct {
	PhotoURL  string `json:"photoUrl,omitempty"`
	HasPhoto  bool   `json:"hasPhoto"`
	Name      string `json:"name"`
	ScholarID string `json:"scholarId"`
	Course    string `json:"course"`
	Stream    string `json:"stream"`
	Section   string `json:"section"`
	Father    string `json:"father"`
	Mother    string `json:"mother"`
}

func Summarize(record Record) Summary {
	text := func(field string) string {
		return choice.Coalesce(record.Get(field), Placeholder)
	}

	photo := record.Get(FieldStudentPhoto)

	return Summary{
		PhotoURL:  photo,
		HasPhoto:  photo != "",
		Name:      text(FieldStudentName),
		ScholarID: text(FieldScholarID),
		Course:    text(FieldCourse),
		Stream:    text(FieldStream),
		Section:   text(FieldSection),
		Father:    text(FieldFatherName),
		Mother:    text(FieldMotherName),
	}
}
