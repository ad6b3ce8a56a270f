package domain

// Theme is the colour scheme selected in the UI
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// CategoryAll is the catalog filter value that selects every category
const CategoryAll = "all"
