package models

// Category is the semantic kind of a flash message.
type Category string

const (
	CategoryPrimary   Category = "primary"
	CategorySecondary Category = "secondary"
	CategorySuccess   Category = "success"
	CategoryDanger    Category = "danger"
	CategoryWarning   Category = "warning"
	CategoryInfo      Category = "info"
	CategoryLight     Category = "light"
	CategoryDark      Category = "dark"
)

// Flash is a transient status message shown once until dismissed or
// replaced by the next one.
type Flash struct {
	Message  string
	Category Category
}

// Empty reports whether there is nothing to show.
func (f Flash) Empty() bool {
	return f.Message == ""
}
