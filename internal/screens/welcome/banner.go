package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/studyhub/internal/ui/theme"
)

const bannerArt = `
 ███████╗████████╗██╗   ██╗██████╗ ██╗   ██╗
 ██╔════╝╚══██╔══╝██║   ██║██╔══██╗╚██╗ ██╔╝
 ███████╗   ██║   ██║   ██║██║  ██║ ╚████╔╝
 ╚════██║   ██║   ██║   ██║██║  ██║  ╚██╔╝
 ███████║   ██║   ╚██████╔╝██████╔╝   ██║
 ╚══════╝   ╚═╝    ╚═════╝ ╚═════╝    ╚═╝  H U B`

const bannerCompact = "S T U D Y H U B"

// RenderBanner returns the banner styled in the primary color, with a
// compact fallback for terminals narrower than 52 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 52 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
