// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

type Id int

const (
	LauncherFetchFailedId Id = iota + 1
	InterpreterNotFoundId
	LauncherWriteFailedId
	LauncherDirFailedId
)

type MarkdownMsg string

type HttpLink string

type Issue struct {
	id       Id          // ID used to lookup the issue
	mdMsg    MarkdownMsg // Markdown text that will be rendered
	extLinks []HttpLink  // external links that might be useful for the user
}

func (i *Issue) Id() Id {
	return i.id
}

func (i *Issue) MarkdownMsg() MarkdownMsg {
	return i.mdMsg
}

func (i *Issue) ExtLinks() []HttpLink {
	return slices.Clone(i.extLinks)
}

func (i *Issue) Render(stylePath string) (string, error) {
	extraMd := ""
	if len(i.extLinks) > 0 {
		extraMd += "\n\n"
		extraMd += "## See also: "
		for _, link := range i.extLinks {
			extraMd += "- [" + string(link) + "]"
		}
	}
	return render(string(i.mdMsg)+extraMd, stylePath)
}

var (
	render = glamour.Render

	launcherFetchFailedIssue = &Issue{
		id: LauncherFetchFailedId,
		mdMsg: `
# Could not download the launcher!

omniboot tried to fetch ` + "`launcher/start.py`" + ` and the download failed.

## Things you can try:
- Check your network connection and any proxy settings
- Retry in a minute; the file host may be briefly unavailable
- If you are offline, copy ` + "`launcher/start.py`" + ` from another install
  into the ` + "`launcher/`" + ` directory next to the omniboot binary —
  an existing file is used as-is and skips the download entirely`,
		extLinks: []HttpLink{
			"https://github.com/Ner-Kun/Omni-trans",
		},
	}

	interpreterNotFoundIssue = &Issue{
		id: InterpreterNotFoundId,
		mdMsg: `
# Python interpreter not found!

The launcher is a Python program, and no interpreter was found on PATH.

## Interpreters we look for:
- Linux/macOS: ` + "`python3`" + `, ` + "`python`" + `
- Windows: ` + "`py`" + `, ` + "`python`" + `, ` + "`python3`" + `

## Things you can try:
- Install Python 3.10 or newer from https://www.python.org/downloads/
- Make sure the interpreter is on your PATH
- Point omniboot at a specific interpreter in your config file:
~~~cue
interpreter: {
	path: "/usr/local/bin/python3.12"
}
~~~`,
	}

	launcherWriteFailedIssue = &Issue{
		id: LauncherWriteFailedId,
		mdMsg: `
# Could not save the launcher!

The download succeeded but ` + "`launcher/start.py`" + ` could not be written.

## Common causes:
- Disk full
- The install directory is not writable by your user

## Things you can try:
- Free up disk space
- Check the permissions of the directory containing the omniboot binary
- Reinstall into a directory you own`,
	}

	launcherDirFailedIssue = &Issue{
		id: LauncherDirFailedId,
		mdMsg: `
# Could not create the launcher directory!

The ` + "`launcher/`" + ` directory next to the omniboot binary could not be
created.

## Things you can try:
- Check the permissions of the directory containing the omniboot binary
- Create the directory yourself and re-run:
~~~
$ mkdir launcher
~~~`,
	}

	issues = map[Id]*Issue{
		launcherFetchFailedIssue.Id(): launcherFetchFailedIssue,
		interpreterNotFoundIssue.Id(): interpreterNotFoundIssue,
		launcherWriteFailedIssue.Id(): launcherWriteFailedIssue,
		launcherDirFailedIssue.Id():   launcherDirFailedIssue,
	}
)

func Values() []*Issue {
	return maps.Values(issues)
}

func Get(id Id) *Issue {
	return issues[id]
}
