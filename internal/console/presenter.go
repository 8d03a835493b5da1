// Package console prints roadmaps and collects job details from a terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/spigell/prep-roadmap/internal/roadmap"
)

const ruleWidth = 50

// Presenter renders roadmaps for humans.
type Presenter struct {
	out     io.Writer
	title   lipgloss.Style
	heading lipgloss.Style
	label   lipgloss.Style
	muted   lipgloss.Style
}

// NewPresenter creates a Presenter writing to out. Colors are used only when
// out is a terminal.
func NewPresenter(out io.Writer) *Presenter {
	r := lipgloss.NewRenderer(out)

	return &Presenter{
		out:     out,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("205")),
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		label:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Summary prints the short human readable form of the roadmap.
func (p *Presenter) Summary(r *roadmap.Roadmap) {
	var b strings.Builder

	b.WriteString("\n" + p.title.Render("INTERVIEW PREPARATION ROADMAP") + "\n")
	b.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	p.field(&b, "Company", r.Company)
	p.field(&b, "Role", r.Role)
	p.field(&b, "Difficulty", r.Difficulty)
	p.field(&b, "Timeline", r.PreparationTimeline)

	b.WriteString("\n" + p.heading.Render(fmt.Sprintf("INTERVIEW ROUNDS (%d rounds)", len(r.Rounds))) + "\n")
	for i, round := range r.Rounds {
		fmt.Fprintf(&b, "%d. %s\n", i+1, round.Type)
		fmt.Fprintf(&b, "   %s %s\n", p.muted.Render("Topics:"), strings.Join(round.Topics, ", "))
		if round.Duration != nil && *round.Duration != "" {
			fmt.Fprintf(&b, "   %s %s\n", p.muted.Render("Duration:"), *round.Duration)
		}
	}

	b.WriteString("\n" + p.heading.Render("KEY SKILLS:") + " " + strings.Join(r.KeySkills, ", ") + "\n")
	b.WriteString("\n" + p.heading.Render("PREP ORDER:") + " " + strings.Join(r.RecommendedOrder, " → ") + "\n")

	fmt.Fprint(p.out, b.String())
}

// JSON prints the stored form of the roadmap under a header naming its file.
func (p *Presenter) JSON(path string, r *roadmap.Roadmap) error {
	data, err := roadmap.Marshal(r)
	if err != nil {
		return err
	}

	fmt.Fprintf(p.out, "\n%s %s\n", p.heading.Render("Roadmap JSON:"), path)
	fmt.Fprintln(p.out, strings.Repeat("-", ruleWidth))
	_, err = p.out.Write(data)
	return err
}

// Banner prints a section header.
func (p *Presenter) Banner(text string) {
	fmt.Fprintf(p.out, "\n%s\n%s\n", p.title.Render(text), strings.Repeat("=", ruleWidth))
}

// Notice prints a single informational line.
func (p *Presenter) Notice(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Presenter) field(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "%s %s\n", p.label.Render(name+":"), value)
}
