package ui

import (
	"fyne.io/fyne/v2"
)

const (
	AppIcon = "mindvora.png"
)

// LoadLogoResource loads the launcher icon from file path
func LoadLogoResource() (fyne.Resource, error) {
	return fyne.LoadResourceFromPath(AppIcon)
}
