/*
Package domain contains the core models shared by the shell components.

It is kept free of I/O so that the interpreter, the facade and the adapters can
all depend on it without pulling in one another.

# Key Entities

  - Session: the mutable state of one shell (current virtual directory, sandbox root).
  - CommandResult: the output lines and state changes produced by one command line.
  - CommandError: the classified failure of a command (usage, not found, bad mode...).
  - Hooks: observability callbacks fired once per executed command.
*/
package domain
