package ui

import (
	"fmt"
	"strings"
)

// documentSections is the number of sections in the generated demo document
const documentSections = 24

var sectionLines = []string{
	"Scroll down and the tab bar slides away; reverse past the",
	"threshold and it comes back. The header fades with the raw",
	"offset through a clamped interpolation range.",
	"",
	"The direction text in the status line updates through the",
	"low-frequency event tier, so it only changes on discrete",
	"transitions rather than on every scrolled row.",
	"",
	"Press i to enable idle detection and stop scrolling for a",
	"moment: the direction drops back to idle and the tab bar",
	"returns.",
	"",
}

// renderDocument produces the scrollable demo content
func renderDocument(styles *Styles, width int) string {
	var b strings.Builder
	for s := 1; s <= documentSections; s++ {
		b.WriteString(styles.Title.Render(fmt.Sprintf("Section %d", s)))
		b.WriteString("\n")
		for _, line := range sectionLines {
			if line == "" {
				b.WriteString("\n")
				continue
			}
			b.WriteString(styles.Document.Render(line))
			b.WriteString("\n")
		}
	}
	return b.String()
}
