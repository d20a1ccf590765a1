// Sumclean - Session Summary Cleaner
//
// Sumclean is a batch tool that removes noise lines from agent session
// summary markdown files: blank lines, Bash tool invocation lines, and
// tool result lines. Surviving lines are written back byte-for-byte.
package main

import (
	"os"

	"sumclean/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
