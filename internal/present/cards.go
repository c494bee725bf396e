package present

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/amishk599/jobharvester/internal/model"
)

const (
	cardColumns  = 2
	minCardWidth = 30
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	cardLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	cardMutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true)

	cardApplyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("25")).
			Padding(0, 1)
)

// Cards renders jobs as a two-column grid of cards fitted to width.
func Cards(w io.Writer, jobs []model.Job, width int) error {
	cardWidth := max((width-1)/cardColumns-2, minCardWidth)

	for i := 0; i < len(jobs); i += cardColumns {
		var row []string
		for c := 0; c < cardColumns && i+c < len(jobs); c++ {
			if c > 0 {
				row = append(row, " ")
			}
			row = append(row, renderCard(jobs[i+c], cardWidth))
		}
		if _, err := fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, row...)); err != nil {
			return err
		}
	}
	return nil
}

func renderCard(j model.Job, width int) string {
	var b strings.Builder
	field := func(label, value string) {
		b.WriteString(cardLabelStyle.Render(label+":") + " " + value + "\n")
	}

	b.WriteString(cardTitleStyle.Render(orDefault(j.Title, noTitle)) + "\n")
	field("Company", orDefault(j.Company, notAvailable)+"  ·  "+cardLabelStyle.Render("Source:")+" "+string(j.Source))
	field("Location", orDefault(j.Location, notAvailable))
	field("Posted", orDefault(j.Created, notAvailable))

	if exp := experienceText(j); exp != "" {
		field("Experience (parsed)", exp)
	} else {
		b.WriteString(cardMutedStyle.Render("Experience: Not clearly mentioned") + "\n")
	}

	if s := skills(j); len(s) > 0 {
		field("Skills (detected)", strings.Join(s, ", "))
	} else {
		b.WriteString(cardMutedStyle.Render("Skills: Not auto-detected") + "\n")
	}

	b.WriteString("\n" + cardLabelStyle.Render("Description (preview):") + "\n")
	b.WriteString(wordWrap(preview(j.Description), width-2) + "\n\n")

	b.WriteString(cardApplyStyle.Render("Apply Now ➜") + " " + orDefault(j.ApplyURL, "#"))

	return cardStyle.Width(width).Render(b.String())
}
