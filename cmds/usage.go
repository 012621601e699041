package cmds

import (
	"fmt"
	"maps"
	"os"
	"slices"
)

func (p *Executor) PrintUsage() {
	fmt.Fprintln(os.Stderr, "commands:")
	printCommands(os.Stderr, "  ", p.commands)
}

func printCommands(w *os.File, indent string, commands map[string]*Command) {
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil {
			continue
		}
		if command.Description != "" {
			fmt.Fprintf(w, "%s%s\t%s\n", indent, name, command.Description)
		} else {
			fmt.Fprintf(w, "%s%s\n", indent, name)
		}
		if len(command.Subs) > 0 {
			printCommands(w, indent+"  ", command.Subs)
		}
	}
}
