/*
Package interpreter parses shell command lines and dispatches them to the
command handlers (ls, cd, cat, chmod, tree, return, exit, help, pwd).

Handlers never fail the session: every problem is recovered into a formatted
error line inside the returned domain.CommandResult and classified through
domain.CommandError. The interpreter does not hold the session either; it
receives a copy and reports the new directory in the result, leaving the caller
to commit it with Session.Apply.

All paths go through the vpath package before any filesystem access, and all
filesystem access goes through an afero.Fs (the host filesystem by default).
*/
package interpreter
