/*
Package runner implements the read-eval-print loop around a shell.

It acts as the bridge between a Shell (lines in, CommandResult out) and the outside
world. The runner owns no state of its own: the Shell holds the Session and the
IOHandler decides how results are presented.

# Key Components

  - Runner: loops Input -> Exec -> Output until exit, EOF or cancellation.
  - IOHandler: decouples how lines are read and results are shown.
  - TextHandler: the interactive terminal implementation (prompt, styling).
  - JSONHandler: one JSON object per result for scripted use.

# Usage

	sh, err := vfsh.Open(ctx, "filesystem.zip")
	if err != nil {
		log.Fatal(err)
	}
	defer sh.Close()

	r := runner.NewRunner(
		runner.WithInputHandler(runner.NewTextHandler(os.Stdin, os.Stdout, runner.WithInteractive(true))),
	)
	if err := r.Run(ctx, sh); err != nil {
		log.Fatal(err)
	}
*/
package runner
