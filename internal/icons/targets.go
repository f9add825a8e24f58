package icons

import "image/color"

// Target describes one generated icon asset: a square edge length and the
// file name written under the public directory.
type Target struct {
	Size     int
	Filename string
}

// Targets is the fixed set of icon assets the web app references from its
// manifest and index.html.
var Targets = []Target{
	{Size: 192, Filename: "icon-192.png"},
	{Size: 512, Filename: "icon-512.png"},
	{Size: 180, Filename: "apple-touch-icon.png"},
	{Size: 32, Filename: "favicon.png"},
}

// SourceName is the logo file read from the public directory.
const SourceName = "logo.png"

// Background fills the canvas behind transparent logo regions
// (navy-950, #0a0f1a - the app's page background).
var Background = color.NRGBA{R: 10, G: 15, B: 26, A: 255}
