package console

import "strings"

const (
	ansiReset  = "\033[0m"
	ansiRed    = "\033[91m"
	ansiGreen  = "\033[92m"
	ansiYellow = "\033[93m"
	ansiCyan   = "\033[96m"
)

const dividerWidth = 76

const bannerArt = `
██████╗ ██╗   ██╗███████╗███████╗██╗     ███████╗ ██████╗ ██████╗  ██████╗ ███████╗
██╔══██╗██║   ██║╚══███╔╝╚══███╔╝██║     ██╔════╝██╔═══██╗██╔══██╗██╔════╝ ██╔════╝
██████╔╝██║   ██║  ███╔╝   ███╔╝ ██║     █████╗  ██║   ██║██████╔╝██║  ███╗█████╗
██╔═══╝ ██║   ██║ ███╔╝   ███╔╝  ██║     ██╔══╝  ██║   ██║██╔══██╗██║   ██║██╔══╝
██║     ╚██████╔╝███████╗███████╗███████╗███████╗╚██████╔╝██║  ██║╚██████╔╝███████╗
╚═╝      ╚═════╝ ╚══════╝╚══════╝╚══════╝╚══════╝ ╚═════╝ ╚═╝  ╚═╝ ╚═════╝ ╚══════╝
`

func (c *Console) paint(code, s string) string {
	if !c.color {
		return s
	}
	return code + s + ansiReset
}

// Success renders s in green.
func (c *Console) Success(s string) string { return c.paint(ansiGreen, s) }

// Error renders s in red.
func (c *Console) Error(s string) string { return c.paint(ansiRed, s) }

// Info renders s in cyan.
func (c *Console) Info(s string) string { return c.paint(ansiCyan, s) }

// Warning renders s in yellow.
func (c *Console) Warning(s string) string { return c.paint(ansiYellow, s) }

// Banner prints the logo with title centred beneath it.
func (c *Console) Banner(title string) {
	c.Println(c.Info(bannerArt))
	pad := max(0, (dividerWidth-len([]rune(title)))/2)
	c.Println(strings.Repeat(" ", pad) + title)
	c.Println()
}

// Divider prints a horizontal rule of ch.
func (c *Console) Divider(ch string) {
	c.Println(strings.Repeat(ch, dividerWidth))
}

// Bell rings the terminal bell.
func (c *Console) Bell() {
	c.print("\a")
}
