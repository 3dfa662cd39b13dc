package ui

import (
	"fmt"

	"github.com/pterm/pterm"
)

var (
	sectionStyle    = pterm.NewStyle(pterm.BgCyan, pterm.FgBlack, pterm.Bold)
	subsectionStyle = pterm.NewStyle(pterm.FgCyan, pterm.Bold)

	// LockedStyle marks rows of accounts frozen by a chargeback.
	LockedStyle = pterm.NewStyle(pterm.FgRed)
	// HeldStyle marks balances with funds under dispute.
	HeldStyle = pterm.NewStyle(pterm.FgYellow)
)

// L1Title renders a banner heading for a report section.
func L1Title(format string, a ...any) string {
	return sectionStyle.Sprintln(fmt.Sprintf(" %s   ", fmt.Sprintf(format, a...)))
}

func L2Title(format string, a ...any) string {
	return subsectionStyle.Sprintln("# " + fmt.Sprintf(format, a...))
}
