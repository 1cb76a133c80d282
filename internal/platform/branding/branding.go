// Package branding centralizes user-visible product naming.
package branding

// AppName is the display name used in page titles and chrome.
const AppName = "Judgement Archive"
