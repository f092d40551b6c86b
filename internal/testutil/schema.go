// Package testutil provides shared fixtures for tests: canned database
// schemas and property builders.
package testutil

import "github.com/lcampos/quill/internal/workspace"

// TaskSchema returns a schema resembling a typical task-tracker database:
// title, status with common options, assignee, due date, priority, and tags.
func TaskSchema() *workspace.Schema {
	return workspace.NewSchema(
		workspace.Property{Name: "Name", Type: workspace.TypeTitle},
		workspace.Property{Name: "Status", Type: workspace.TypeStatus, Options: []workspace.Option{
			{ID: "opt-todo", Name: "Not Started", Group: "To-do"},
			{ID: "opt-doing", Name: "In Progress", Group: "In progress"},
			{ID: "opt-done", Name: "Done", Group: "Complete"},
		}},
		workspace.Property{Name: "Assignee", Type: workspace.TypePeople},
		workspace.Property{Name: "Due Date", Type: workspace.TypeDate},
		workspace.Property{Name: "Priority", Type: workspace.TypeSelect, Options: []workspace.Option{
			{Name: "High"}, {Name: "Medium"}, {Name: "Low"},
		}},
		workspace.Property{Name: "Tags", Type: workspace.TypeMultiSelect, Options: []workspace.Option{
			{Name: "bug"}, {Name: "urgent"}, {Name: "feature"},
		}},
		workspace.Property{Name: "Estimate", Type: workspace.TypeNumber},
		workspace.Property{Name: "Blocked", Type: workspace.TypeCheckbox},
		workspace.Property{Name: "Last Edited", Type: workspace.TypeLastEditedTime},
		workspace.Property{Name: "Created", Type: workspace.TypeCreatedTime},
	)
}

// SelectOnly returns a schema whose only enumerated column is a select with
// the given name and options.
func SelectOnly(name string, options ...string) *workspace.Schema {
	opts := make([]workspace.Option, len(options))
	for i, o := range options {
		opts[i] = workspace.Option{Name: o}
	}
	return workspace.NewSchema(
		workspace.Property{Name: "Name", Type: workspace.TypeTitle},
		workspace.Property{Name: name, Type: workspace.TypeSelect, Options: opts},
	)
}
