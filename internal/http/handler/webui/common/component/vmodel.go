package component

import "github.com/a-h/templ"

type LayoutVModel struct {
	Title string
}

type LinkItem struct {
	Label string
	URL   templ.SafeURL
}

type ErrorPageVModel struct {
	Message string
	Links   []LinkItem
}
