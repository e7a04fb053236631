package interpreter

import "fmt"

const (
	hintLs   = "# Use 'cd <dir>' to change directory."
	hintCat  = "# You can read another file with 'cat <file>'."
	hintTree = "# This is the directory structure. Use 'cd <dir>' to navigate."

	msgExit       = "# Exiting..."
	msgUsageCat   = "Usage: cat <file>"
	msgUsageChmod = "Usage: chmod <file> <mode>"
	msgBadMode    = "Error: invalid mode format. Use an octal value (e.g. 755)."
)

func hintCd(dir string) string {
	return fmt.Sprintf("# Current directory: %s. Type 'ls' to list its contents.", dir)
}

func msgDirNotFound(raw string) string {
	return fmt.Sprintf("Error: directory '%s' not found.", raw)
}

func msgCdNotFound(raw string) string {
	return fmt.Sprintf("Error: directory '%s' not found or access denied.", raw)
}

func msgListFailed(raw string, err error) string {
	return fmt.Sprintf("Error listing directory '%s': %v", raw, err)
}

func msgFileNotFound(raw string) string {
	return fmt.Sprintf("Error: file '%s' not found.", raw)
}

func msgReadFailed(raw string, err error) string {
	return fmt.Sprintf("Error reading file '%s': %v", raw, err)
}

func msgChmodNotFound(raw string) string {
	return fmt.Sprintf("Error: file or directory '%s' not found.", raw)
}

func msgChmodFailed(raw string, err error) string {
	return fmt.Sprintf("Error changing mode of '%s': %v", raw, err)
}

func msgChmodDone(raw, mode string) string {
	return fmt.Sprintf("Mode of '%s' changed to %s.", raw, mode)
}

func msgUnknownCommand(verb string) string {
	return fmt.Sprintf("Unknown command: %s", verb)
}
