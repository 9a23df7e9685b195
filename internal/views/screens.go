package views

import (
	"fmt"
	"strings"
)

type TaskPanelData struct {
	ViewName  string
	TableView string
	Visible   int
	Total     int
}

type ResultPanelData struct {
	LastInput   string
	Body        string
	IsError     bool
	Busy        bool
	SpinnerView string
}

type SemesterPanelData struct {
	FirstDay     string
	LastDay      string
	WeekLabel    string
	WeekNumber   int
	Weeks        int
	ProgressView string
}

type HelpPanelData struct {
	Body    string
	KeyHelp string
}

func RenderTaskPanel(data TaskPanelData) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("tasks: %s (%d of %d)\n", data.ViewName, data.Visible, data.Total))
	if data.Visible == 0 {
		b.WriteString("(no tasks to show)\n")
	}
	b.WriteString(data.TableView)
	return strings.TrimSpace(b.String())
}

func RenderResultPanel(data ResultPanelData) string {
	var b strings.Builder
	b.WriteString("result:\n")
	if data.LastInput != "" {
		b.WriteString("> " + data.LastInput + "\n")
	}
	switch {
	case data.Busy:
		b.WriteString(data.SpinnerView + " running...")
	case data.IsError:
		b.WriteString(errorStyle.Render(data.Body))
	case data.Body == "":
		b.WriteString("(type a command and press enter; help lists them all)")
	default:
		b.WriteString(data.Body)
	}
	return strings.TrimSpace(b.String())
}

func RenderSemesterPanel(data SemesterPanelData) string {
	var b strings.Builder
	b.WriteString("\nsemester:\n")
	if data.FirstDay == "" {
		b.WriteString("(no semester stored; use firstday DDMMYY)")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("%s -> %s\n", data.FirstDay, data.LastDay))
	if data.WeekLabel == "" {
		b.WriteString("today is outside the semester")
		return b.String()
	}
	b.WriteString(fmt.Sprintf("current: %s (%d/%d)\n", data.WeekLabel, data.WeekNumber, data.Weeks))
	b.WriteString(data.ProgressView)
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n\n%s", data.Body, data.KeyHelp)
}

// HelpMarkdown is the command reference shown by the help command.
const HelpMarkdown = "# Schedule Planner\n\n" +
	"| Command | Format |\n" +
	"|---|---|\n" +
	"| add | `add n/NAME d/DDMMYY p/PRIORITY v/VENUE [t/TAG]...` |\n" +
	"| edit | `edit INDEX [n/NAME] [d/DDMMYY] [p/PRIORITY] [v/VENUE] [t/TAG]...` |\n" +
	"| delete | `delete INDEX` |\n" +
	"| list | `list` |\n" +
	"| listday | `listday` |\n" +
	"| listweek | `listweek` |\n" +
	"| find | `find KEYWORD [MORE_KEYWORDS]...` |\n" +
	"| firstday | `firstday DDMMYY` |\n" +
	"| clear | `clear` |\n" +
	"| help | `help` |\n" +
	"| exit | `exit` |\n\n" +
	"INDEX refers to the number shown in the task table. " +
	"`t/` with no value clears all tags when editing.\n\n" +
	"`firstday` takes the Monday the semester starts on and lays out " +
	"17 weeks: Week 1 to 6, Recess Week, Week 7 to 13, Study Week and two " +
	"Examination Weeks.\n"
