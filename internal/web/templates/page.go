package templates

import "net/url"

// PageContext carries shared layout context for page components.
type PageContext struct {
	// Lang is the BCP 47 code of the resolved UI language ("en" or "ko").
	Lang string
	// Loc translates message keys for the resolved language.
	Loc Localizer
	// AppName is the display name used in the page title.
	AppName string
	// CurrentPath and CurrentQuery reproduce the request URL so navigation
	// links can preserve the visitor's state.
	CurrentPath  string
	CurrentQuery string
}

// LanguageOption is one entry in the language switcher.
type LanguageOption struct {
	Code   string
	Label  string
	URL    string
	Active bool
}

// LanguageOptions builds the switcher entries for the current page.
func LanguageOptions(page PageContext) []LanguageOption {
	return []LanguageOption{
		{
			Code:   "en",
			Label:  T(page.Loc, "nav.lang_en"),
			URL:    languageURL(page, "en"),
			Active: page.Lang == "en",
		},
		{
			Code:   "ko",
			Label:  T(page.Loc, "nav.lang_ko"),
			URL:    languageURL(page, "ko"),
			Active: page.Lang == "ko",
		},
	}
}

// languageURL rewrites the current URL with the lang parameter replaced.
func languageURL(page PageContext, code string) string {
	values, err := url.ParseQuery(page.CurrentQuery)
	if err != nil {
		values = url.Values{}
	}
	values.Set("lang", code)

	path := page.CurrentPath
	if path == "" {
		path = "/"
	}
	return path + "?" + values.Encode()
}
