package services

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"resumeai/reviewer/internal/models"
)

// ResumeParserService turns a resume PDF into the structured record the
// analyze endpoint consumes: contact info plus text segmented into
// education/experience/skills/projects/certifications sections.
type ResumeParserService interface {
	Parse(filePath, originalFilename string) (*models.ResumeRecord, error)
}

type resumeParserService struct {
	pdfParser PDFParserService
}

func NewResumeParserService(pdfParser PDFParserService) ResumeParserService {
	return &resumeParserService{pdfParser: pdfParser}
}

var sectionPatterns = map[string][]*regexp.Regexp{
	models.SectionEducation: {
		regexp.MustCompile(`(?m)^\s*(EDUCATION|Education|ACADEMIC BACKGROUND|Academic Background|QUALIFICATIONS)\b`),
	},
	models.SectionExperience: {
		regexp.MustCompile(`(?m)^\s*(EXPERIENCE|Experience|WORK EXPERIENCE|Work Experience|PROFESSIONAL EXPERIENCE|EMPLOYMENT HISTORY)\b`),
	},
	models.SectionSkills: {
		regexp.MustCompile(`(?m)^\s*(SKILLS|Skills|TECHNICAL SKILLS|Technical Skills|CORE COMPETENCIES|TECHNOLOGIES)\b`),
	},
	models.SectionProjects: {
		regexp.MustCompile(`(?m)^\s*(PROJECTS|Projects|ACADEMIC PROJECTS|PERSONAL PROJECTS|Key Projects)\b`),
	},
	models.SectionCertifications: {
		regexp.MustCompile(`(?m)^\s*(CERTIFICATIONS|Certifications|CERTIFICATES|Certificates|COURSES)\b`),
	},
}

var (
	emailPattern = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?(\(?\d{3}\)?[-.\s]?)?\d{3}[-.\s]?\d{4}`)
	urlPattern   = regexp.MustCompile(`\b(?:https?://|www\.)[^\s]+\b`)
)

func (s *resumeParserService) Parse(filePath, originalFilename string) (*models.ResumeRecord, error) {
	content, err := s.pdfParser.ExtractText(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to extract resume text: %w", err)
	}

	cleaned := CleanText(content.Text)

	record := &models.ResumeRecord{
		Metadata: models.ResumeMetadata{
			Filename:  originalFilename,
			PageCount: content.PageCount,
			ParsedAt:  time.Now(),
		},
		ContactInfo: extractContactInfo(cleaned),
		Sections:    segmentSections(cleaned),
		RawText:     cleaned,
	}

	return record, nil
}

func extractContactInfo(text string) models.ContactInfo {
	info := models.ContactInfo{
		Email: emailPattern.FindString(text),
		Phone: strings.TrimSpace(phonePattern.FindString(text)),
	}

	for _, link := range urlPattern.FindAllString(text, -1) {
		if link != info.Email {
			info.Links = append(info.Links, link)
		}
	}

	return info
}

type sectionMark struct {
	offset int
	name   string
}

// segmentSections slices the resume text into named sections based on the
// first plausible header line found for each section. A header is only
// accepted when its line is short; long lines that merely mention the word
// are body text.
func segmentSections(text string) map[string]string {
	sections := map[string]string{
		models.SectionEducation:      "",
		models.SectionExperience:     "",
		models.SectionSkills:         "",
		models.SectionProjects:       "",
		models.SectionCertifications: "",
		models.SectionOthers:         "",
	}

	var marks []sectionMark
	for name, patterns := range sectionPatterns {
		for _, pattern := range patterns {
			for _, loc := range pattern.FindAllStringIndex(text, -1) {
				if isHeaderLine(text, loc[0]) {
					marks = append(marks, sectionMark{offset: loc[0], name: name})
					break
				}
			}
		}
	}

	if len(marks) == 0 {
		sections[models.SectionOthers] = text
		return sections
	}

	sort.Slice(marks, func(i, j int) bool { return marks[i].offset < marks[j].offset })

	for i, mark := range marks {
		end := len(text)
		if i+1 < len(marks) {
			end = marks[i+1].offset
		}

		content := text[mark.offset:end]
		// Drop the header line itself
		if nl := strings.Index(content, "\n"); nl != -1 {
			content = content[nl+1:]
		} else {
			content = ""
		}

		sections[mark.name] = strings.TrimSpace(content)
	}

	return sections
}

func isHeaderLine(text string, offset int) bool {
	lineStart := strings.LastIndex(text[:offset], "\n") + 1
	lineEnd := strings.Index(text[offset:], "\n")
	if lineEnd == -1 {
		lineEnd = len(text)
	} else {
		lineEnd += offset
	}

	return len(strings.TrimSpace(text[lineStart:lineEnd])) < 50
}
