package app

import (
	"fmt"
	"io"
)

const helpText = `
Usage: pm <command>

Options:
  -V, --version                output the version number
  -h, --help                   output usage information

Commands:
  open|o [projectName]         Open one of your saved projects
  add|save [projectDirectory]  Save current directory as a project
  remove [projectName]         Remove the project
  seteditor [commandToOpen]    Set text editor to use
  edit                         Edit settings.json
  list|ls                      List saved projects
  config                       Show or change pm preferences
`

// Help writes the command summary. It never reads the settings file.
func Help(w io.Writer) {
	fmt.Fprint(w, helpText)
}

// CommandNotFound reports an unknown subcommand followed by the summary.
func CommandNotFound(w io.Writer, name string) {
	fmt.Fprintln(w, failure.Sprintf("Command '%s' not found", name))
	Help(w)
}
