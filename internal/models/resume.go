package models

import "time"

// ResumeRecord is the structured output of parsing an uploaded resume PDF.
// It is returned by the upload endpoint and passed back verbatim by the
// client when requesting an analysis.
type ResumeRecord struct {
	Metadata    ResumeMetadata    `json:"metadata"`
	ContactInfo ContactInfo       `json:"contact_info"`
	Sections    map[string]string `json:"sections"`
	RawText     string            `json:"raw_text"`
}

type ResumeMetadata struct {
	DocumentID string    `json:"document_id"`
	Filename   string    `json:"filename"`
	PageCount  int       `json:"page_count"`
	ParsedAt   time.Time `json:"parsed_at"`
}

type ContactInfo struct {
	Email string   `json:"email,omitempty"`
	Phone string   `json:"phone,omitempty"`
	Links []string `json:"links,omitempty"`
}

// Section names produced by the resume parser. Anything that does not fall
// under a recognized header lands in SectionOthers.
const (
	SectionEducation      = "education"
	SectionExperience     = "experience"
	SectionSkills         = "skills"
	SectionProjects       = "projects"
	SectionCertifications = "certifications"
	SectionOthers         = "others"
)

// SkillList splits the skills section into individual skill strings.
func (r *ResumeRecord) SkillList() []string {
	return SplitSkills(r.Sections[SectionSkills])
}
