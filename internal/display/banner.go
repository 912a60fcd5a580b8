package display

import (
	"fmt"
	"os"

	"github.com/backmassage/splitscreen/internal/logging"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if logging.Magenta != "" {
		fmt.Fprint(os.Stdout, "\033[1;95m")
	}
	fmt.Fprint(os.Stdout, ` ____        _ _ _
/ ___| _ __ | (_) |_ ___  ___ _ __ ___  ___ _ __
\___ \| '_ \| | | __/ __|/ __| '__/ _ \/ _ \ '_ \
 ___) | |_) | | | |_\__ \ (__| | |  __/  __/ | | |
|____/| .__/|_|_|\__|___/\___|_|  \___|\___|_| |_|
      |_|
`)
	if logging.Magenta != "" {
		fmt.Fprintln(os.Stdout, logging.NC)
	}
}
