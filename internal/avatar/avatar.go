// Package avatar renders placeholder avatars as SVG data URIs at
// provisioning time. Everything downstream treats avatar values as opaque
// strings.
package avatar

import (
	"encoding/base64"
	"fmt"
)

const svgTemplate = `<svg xmlns="http://www.w3.org/2000/svg" width="50" height="50" viewBox="0 0 50 50"><rect width="50" height="50" fill="%s"/><text x="50%%" y="50%%" dy=".1em" fill="white" font-family="Arial" font-size="20" text-anchor="middle" dominant-baseline="middle">%s</text></svg>`

// Generate returns a deterministic SVG data URI for name: a colored square
// with up to the first three characters of the name overlaid. The color is
// derived from the first character, so the same name always renders the
// same avatar.
func Generate(name string) string {
	runes := []rune(name)
	var first rune
	if len(runes) > 0 {
		first = runes[0]
	}
	color := fmt.Sprintf("#%06x", (int(first)*12345)&0xffffff)

	initials := runes
	if len(initials) > 3 {
		initials = initials[:3]
	}

	svg := fmt.Sprintf(svgTemplate, color, string(initials))
	return "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))
}
