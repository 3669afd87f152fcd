package display

import (
	"fmt"
	"os"

	"github.com/cazcaz/image-mover/internal/term"
)

// PrintBanner prints the ASCII art banner; uses bold magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, "\033[1;95m")
	}
	fmt.Fprint(os.Stdout, ` ___                                __  __
|_ _|_ __ ___   __ _  __ _  ___    |  \/  | _____   _____ _ __
 | || '_ ` + "`" + ` _ \ / _` + "`" + ` |/ _` + "`" + ` |/ _ \   | |\/| |/ _ \ \ / / _ \ '__|
 | || | | | | | (_| | (_| |  __/   | |  | | (_) \ V /  __/ |
|___|_| |_| |_|\__,_|\__, |\___|   |_|  |_|\___/ \_/ \___|_|
                     |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
