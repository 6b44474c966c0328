package models

type Badge struct {
	Src string
	Alt string
}

// PageMeta holds the document-level tags rendered into <head>.
type PageMeta struct {
	Lang        string
	Title       string
	Description string
	OGTitle     string
}

type TechnologiesPage struct {
	Meta       PageMeta
	Heading    string
	Subheading string
	Badges     []Badge
}
