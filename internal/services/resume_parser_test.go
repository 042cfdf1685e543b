package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resumeai/reviewer/internal/models"
)

type fakePDFParser struct {
	content *PDFContent
	err     error
}

func (f *fakePDFParser) ExtractText(filePath string) (*PDFContent, error) {
	return f.content, f.err
}

const sampleResumeText = `John Doe
john.doe@example.com | +1 555-123-4567
https://github.com/johndoe

EXPERIENCE
Software Engineer at Acme Corp
Built Python services with Flask and PostgreSQL

EDUCATION
BSc Computer Science, State University

SKILLS
Python, SQL, Docker, Git

PROJECTS
Inventory tracker built with FastAPI and Redis

CERTIFICATIONS
AWS Certified Developer`

func TestResumeParserService_Parse(t *testing.T) {
	t.Run("segments sections and extracts contact info", func(t *testing.T) {
		parser := NewResumeParserService(&fakePDFParser{
			content: &PDFContent{Text: sampleResumeText, PageCount: 1},
		})

		record, err := parser.Parse("/tmp/resume_abc.pdf", "resume.pdf")
		require.NoError(t, err)

		assert.Equal(t, "resume.pdf", record.Metadata.Filename)
		assert.Equal(t, 1, record.Metadata.PageCount)
		assert.False(t, record.Metadata.ParsedAt.IsZero())

		assert.Equal(t, "john.doe@example.com", record.ContactInfo.Email)
		assert.NotEmpty(t, record.ContactInfo.Phone)
		assert.Contains(t, record.ContactInfo.Links, "https://github.com/johndoe")

		assert.Contains(t, record.Sections[models.SectionExperience], "Acme Corp")
		assert.Contains(t, record.Sections[models.SectionEducation], "State University")
		assert.Equal(t, "Python, SQL, Docker, Git", record.Sections[models.SectionSkills])
		assert.Contains(t, record.Sections[models.SectionProjects], "Inventory tracker")
		assert.Contains(t, record.Sections[models.SectionCertifications], "AWS Certified Developer")
	})

	t.Run("skill list splits the skills section", func(t *testing.T) {
		parser := NewResumeParserService(&fakePDFParser{
			content: &PDFContent{Text: sampleResumeText, PageCount: 1},
		})

		record, err := parser.Parse("/tmp/resume_abc.pdf", "resume.pdf")
		require.NoError(t, err)

		assert.Equal(t, []string{"Python", "SQL", "Docker", "Git"}, record.SkillList())
	})

	t.Run("text without headers lands in others", func(t *testing.T) {
		parser := NewResumeParserService(&fakePDFParser{
			content: &PDFContent{Text: "Just a plain paragraph of text with no headers at all.", PageCount: 1},
		})

		record, err := parser.Parse("/tmp/x.pdf", "x.pdf")
		require.NoError(t, err)

		assert.Empty(t, record.Sections[models.SectionSkills])
		assert.Contains(t, record.Sections[models.SectionOthers], "plain paragraph")
	})

	t.Run("long lines mentioning a header word are body text", func(t *testing.T) {
		text := "SKILLS\nGo, SQL\n\nEXPERIENCE related work across many different teams and this line is far too long to be a section header at all"
		parser := NewResumeParserService(&fakePDFParser{
			content: &PDFContent{Text: text, PageCount: 1},
		})

		record, err := parser.Parse("/tmp/x.pdf", "x.pdf")
		require.NoError(t, err)

		assert.Equal(t, "", record.Sections[models.SectionExperience])
		assert.Contains(t, record.Sections[models.SectionSkills], "Go, SQL")
	})

	t.Run("propagates extraction errors", func(t *testing.T) {
		parser := NewResumeParserService(&fakePDFParser{err: errors.New("broken pdf")})

		_, err := parser.Parse("/tmp/x.pdf", "x.pdf")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken pdf")
	})
}

func TestCleanText(t *testing.T) {
	t.Run("strips non-ascii and empty lines", func(t *testing.T) {
		input := "  Hello •World  \n\n\n  second line\t!  \n"
		assert.Equal(t, "Hello  World\nsecond line\t!", CleanText(input))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Equal(t, "", CleanText("   \n \n "))
	})
}
