package interpreter

import (
	"fmt"

	"github.com/aretw0/vfsh/pkg/domain"
)

// Command describes a shell verb for help output.
type Command struct {
	Name    string
	Usage   string
	Summary string
}

var builtinCommands = []Command{
	{Name: "ls", Usage: "ls [path]", Summary: "Show the contents of a directory."},
	{Name: "cd", Usage: "cd [path]", Summary: "Change to another directory."},
	{Name: "cat", Usage: "cat <file>", Summary: "Show the contents of a file."},
	{Name: "chmod", Usage: "chmod <file> <mode>", Summary: "Change file permissions (octal mode)."},
	{Name: "tree", Usage: "tree [path]", Summary: "Show the directory structure as a tree."},
	{Name: "return", Usage: "return", Summary: "Return to the root directory."},
	{Name: "pwd", Usage: "pwd", Summary: "Print the current directory."},
	{Name: "help", Usage: "help", Summary: "List the available commands."},
	{Name: "exit", Usage: "exit", Summary: "Leave the shell."},
}

// Commands returns the verb catalog in display order.
func Commands() []Command {
	out := make([]Command, len(builtinCommands))
	copy(out, builtinCommands)
	return out
}

func (i *Interpreter) help(_ domain.Session, _ []string) domain.CommandResult {
	var res domain.CommandResult
	for _, c := range builtinCommands {
		res.Print(fmt.Sprintf("%s - %s", c.Name, c.Summary))
	}
	return res
}

func (i *Interpreter) pwd(sess domain.Session, _ []string) domain.CommandResult {
	var res domain.CommandResult
	res.Print(sess.CurrentDir)
	return res
}

func (i *Interpreter) exit(_ domain.Session, _ []string) domain.CommandResult {
	res := domain.CommandResult{Exit: true}
	res.Print(msgExit)
	return res
}
