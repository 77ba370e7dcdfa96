package summarizer

import (
	"strings"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// Notes bundles the text artifacts that go into the meeting notes document.
type Notes struct {
	Summary     string
	Highlights  string
	ActionItems []string
	Topics      []string
}

// WriteNotes renders the meeting artifacts into a styled docx file.
func WriteNotes(outputPath, title string, notes Notes) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addStyledRun(doc.AddParagraph(""), title, true, 16)
	doc.AddParagraph("")

	if notes.Summary != "" {
		addStyledRun(doc.AddParagraph(""), "Summary", true, 15)
		for _, line := range strings.Split(notes.Summary, "\n") {
			if trimmed := strings.TrimSpace(line); trimmed != "" {
				addPlainText(doc.AddParagraph(""), trimmed)
			}
		}
		doc.AddParagraph("")
	}

	if notes.Highlights != "" {
		addStyledRun(doc.AddParagraph(""), "Highlights", true, 15)
		for _, line := range strings.Split(notes.Highlights, "\n") {
			trimmed := strings.TrimSpace(line)
			if trimmed == "" || isRuleLine(trimmed) {
				continue
			}
			addPlainText(doc.AddParagraph(""), trimmed)
		}
		doc.AddParagraph("")
	}

	if len(notes.ActionItems) > 0 {
		addStyledRun(doc.AddParagraph(""), "Action Items", true, 15)
		for _, item := range notes.ActionItems {
			text := strings.TrimSpace(strings.TrimPrefix(item, "-"))
			addPlainText(doc.AddParagraph(""), "• "+text)
		}
		doc.AddParagraph("")
	}

	if len(notes.Topics) > 0 {
		addStyledRun(doc.AddParagraph(""), "Main Topics", true, 15)
		addPlainText(doc.AddParagraph(""), strings.Join(notes.Topics, ", "))
	}

	return doc.SaveTo(outputPath)
}

// isRuleLine reports whether a line is a "=" or "-" separator rule from
// the plain-text highlight report.
func isRuleLine(line string) bool {
	if len(line) < 3 {
		return false
	}
	for _, r := range line {
		if r != '=' && r != '-' {
			return false
		}
	}
	return true
}

func addStyledRun(p *docx.Paragraph, text string, bold bool, size uint64) {
	run := p.AddText(text).Font(fontName).Size(size).Color("000000")
	if bold {
		run.Bold(true)
	}
}

func addPlainText(p *docx.Paragraph, text string) {
	p.AddText(text).Font(fontName).Size(fontSize).Color("000000")
}
