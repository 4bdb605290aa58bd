package cli

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arminhz/taskban/internal/models"
	"github.com/olekukonko/tablewriter"
)

func (p *prompter) renderProjectsTable(title string, projects []*models.Project) {
	fmt.Fprintln(p.out, title)
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"ID", "Title"})
	for _, project := range projects {
		table.Append([]string{project.ID, project.Title})
	}
	table.Render()
}

func (p *prompter) renderTasksTable(project *models.Project) {
	fmt.Fprintf(p.out, "Tasks in Project: %s\n", project.Title)
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"ID", "Title", "Priority", "Status", "Assignees", "Description"})
	for _, t := range project.Tasks {
		table.Append([]string{
			t.ID,
			t.Title,
			string(t.Priority),
			string(t.Status),
			strings.Join(t.Assignees, ", "),
			t.Description,
		})
	}
	table.Render()
}

func (p *prompter) renderTaskDetails(t *models.Task) {
	fmt.Fprintln(p.out, "Task Details")
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Attribute", "Value"})
	table.Append([]string{"ID", t.ID})
	table.Append([]string{"Title", t.Title})
	table.Append([]string{"Assignees", strings.Join(t.Assignees, ", ")})
	table.Append([]string{"Priority", string(t.Priority)})
	table.Append([]string{"Status", string(t.Status)})
	table.Append([]string{"Start Date", t.StartTime.Format(time.RFC3339)})
	table.Append([]string{"End Date", t.EndDate.Format(time.RFC3339)})
	table.Append([]string{"Description", t.Description})
	table.Render()
}

func (p *prompter) renderCommentsTable(t *models.Task) {
	fmt.Fprintln(p.out, "Comments")
	table := tablewriter.NewWriter(p.out)
	table.SetHeader([]string{"Index", "Author", "Time", "Content"})
	for _, c := range t.Comments {
		table.Append([]string{
			fmt.Sprintf("%d", c.Index),
			c.Author,
			c.Time.Format(time.RFC3339),
			c.Content,
		})
	}
	table.Render()
}

func renderUsersTable(out io.Writer, users []*models.User) {
	fmt.Fprintln(out, "Users")
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Username", "Email", "Active"})
	for _, u := range users {
		active := "No"
		if u.Activated {
			active = "Yes"
		}
		table.Append([]string{u.Username, u.Email, active})
	}
	table.Render()
}
