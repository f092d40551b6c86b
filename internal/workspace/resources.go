package workspace

import (
	"encoding/json"
	"strconv"
	"strings"
)

// RichText is one span of formatted text as the service represents it.
type RichText struct {
	Type      string       `json:"type,omitempty"`
	PlainText string       `json:"plain_text,omitempty"`
	Href      string       `json:"href,omitempty"`
	Text      *TextContent `json:"text,omitempty"`
}

// TextContent is the literal content of a text span.
type TextContent struct {
	Content string `json:"content"`
	Link    *Link  `json:"link,omitempty"`
}

// Link is a URL attached to a text span.
type Link struct {
	URL string `json:"url"`
}

// Text builds a plain rich-text span.
func Text(content string) RichText {
	return RichText{Type: "text", PlainText: content, Text: &TextContent{Content: content}}
}

// JoinRichText concatenates the plain text of a rich-text array.
func JoinRichText(spans []RichText) string {
	var b strings.Builder
	for _, s := range spans {
		if s.PlainText != "" {
			b.WriteString(s.PlainText)
		} else if s.Text != nil {
			b.WriteString(s.Text.Content)
		}
	}
	return b.String()
}

// Parent identifies where a page or block lives.
type Parent struct {
	Type       string `json:"type,omitempty"`
	DatabaseID string `json:"database_id,omitempty"`
	PageID     string `json:"page_id,omitempty"`
	Workspace  bool   `json:"workspace,omitempty"`
}

// Page is one record of a database, or a standalone page.
type Page struct {
	ID             string                     `json:"id"`
	CreatedTime    string                     `json:"created_time,omitempty"`
	LastEditedTime string                     `json:"last_edited_time,omitempty"`
	Archived       bool                       `json:"archived,omitempty"`
	URL            string                     `json:"url,omitempty"`
	Parent         Parent                     `json:"parent,omitempty"`
	Properties     map[string]json.RawMessage `json:"properties,omitempty"`
}

// Title extracts the page's title text from its properties. The title
// property's wire value is {"type":"title","title":[...rich text...]}.
func (p *Page) Title() string {
	for _, raw := range p.Properties {
		var probe struct {
			Type  string     `json:"type"`
			Title []RichText `json:"title"`
		}
		if err := json.Unmarshal(raw, &probe); err != nil {
			continue
		}
		if probe.Type == "title" {
			return JoinRichText(probe.Title)
		}
	}
	return ""
}

// PropertyText renders one property value as display text, best effort.
func (p *Page) PropertyText(name string) string {
	raw, ok := p.Properties[name]
	if !ok {
		return ""
	}
	return renderPropertyValue(raw)
}

// Database is a database resource with its schema attached.
type Database struct {
	ID             string     `json:"id"`
	CreatedTime    string     `json:"created_time,omitempty"`
	LastEditedTime string     `json:"last_edited_time,omitempty"`
	Title          []RichText `json:"title,omitempty"`
	URL            string     `json:"url,omitempty"`
	Parent         Parent     `json:"parent,omitempty"`
	Properties     *Schema    `json:"properties,omitempty"`
}

// TitleText returns the database title as plain text.
func (d *Database) TitleText() string {
	return JoinRichText(d.Title)
}

// Block is one content block of a page.
type Block struct {
	ID             string          `json:"id"`
	Type           string          `json:"type"`
	HasChildren    bool            `json:"has_children,omitempty"`
	CreatedTime    string          `json:"created_time,omitempty"`
	LastEditedTime string          `json:"last_edited_time,omitempty"`
	Content        json.RawMessage `json:"-"`
}

// blockAlias avoids recursion in Block marshalling.
type blockAlias Block

// UnmarshalJSON keeps the type-keyed payload as raw JSON alongside the
// common fields, since block payload shapes vary per type.
func (b *Block) UnmarshalJSON(data []byte) error {
	var a blockAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*b = Block(a)

	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return err
	}
	if raw, ok := all[b.Type]; ok {
		b.Content = raw
	}
	return nil
}

// PlainText extracts the block's text content, if it has any.
func (b *Block) PlainText() string {
	if len(b.Content) == 0 {
		return ""
	}
	var probe struct {
		RichText []RichText `json:"rich_text"`
	}
	if err := json.Unmarshal(b.Content, &probe); err != nil {
		return ""
	}
	return JoinRichText(probe.RichText)
}

// User is a workspace member or bot.
type User struct {
	ID        string `json:"id"`
	Type      string `json:"type,omitempty"`
	Name      string `json:"name,omitempty"`
	AvatarURL string `json:"avatar_url,omitempty"`
	Person    *struct {
		Email string `json:"email,omitempty"`
	} `json:"person,omitempty"`
}

// Comment is one discussion comment on a page or block.
type Comment struct {
	ID           string     `json:"id"`
	DiscussionID string     `json:"discussion_id,omitempty"`
	CreatedTime  string     `json:"created_time,omitempty"`
	CreatedBy    User       `json:"created_by,omitempty"`
	RichText     []RichText `json:"rich_text,omitempty"`
	Parent       Parent     `json:"parent,omitempty"`
}

// Text returns the comment body as plain text.
func (c *Comment) Text() string {
	return JoinRichText(c.RichText)
}

// renderPropertyValue turns a page property wire value into display text.
func renderPropertyValue(raw json.RawMessage) string {
	var probe struct {
		Type        string     `json:"type"`
		Title       []RichText `json:"title"`
		RichText    []RichText `json:"rich_text"`
		Number      *float64   `json:"number"`
		Checkbox    *bool      `json:"checkbox"`
		URL         string     `json:"url"`
		Email       string     `json:"email"`
		PhoneNumber string     `json:"phone_number"`
		Select      *Option    `json:"select"`
		Status      *Option    `json:"status"`
		MultiSelect []Option   `json:"multi_select"`
		Date        *struct {
			Start string `json:"start"`
			End   string `json:"end,omitempty"`
		} `json:"date"`
		People []User `json:"people"`
	}
	if err := json.Unmarshal(raw, &probe); err != nil {
		return ""
	}

	switch probe.Type {
	case "title":
		return JoinRichText(probe.Title)
	case "rich_text":
		return JoinRichText(probe.RichText)
	case "number":
		if probe.Number == nil {
			return ""
		}
		return trimFloat(*probe.Number)
	case "checkbox":
		if probe.Checkbox != nil && *probe.Checkbox {
			return "true"
		}
		return "false"
	case "url":
		return probe.URL
	case "email":
		return probe.Email
	case "phone_number":
		return probe.PhoneNumber
	case "select":
		if probe.Select != nil {
			return probe.Select.Name
		}
	case "status":
		if probe.Status != nil {
			return probe.Status.Name
		}
	case "multi_select":
		names := make([]string, len(probe.MultiSelect))
		for i, o := range probe.MultiSelect {
			names[i] = o.Name
		}
		return strings.Join(names, ", ")
	case "date":
		if probe.Date != nil {
			if probe.Date.End != "" {
				return probe.Date.Start + " → " + probe.Date.End
			}
			return probe.Date.Start
		}
	case "people":
		names := make([]string, 0, len(probe.People))
		for _, u := range probe.People {
			if u.Name != "" {
				names = append(names, u.Name)
			}
		}
		return strings.Join(names, ", ")
	}
	return ""
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
