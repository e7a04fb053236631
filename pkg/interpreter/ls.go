package interpreter

import (
	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/spf13/afero"
)

// ls lists the immediate entries of a directory, sorted by name.
func (i *Interpreter) ls(sess domain.Session, args []string) domain.CommandResult {
	var res domain.CommandResult
	raw := restArg(args, ".")

	_, hostPath, err := i.resolve(sess, raw)
	if err != nil {
		res.Fail(i.notFound("ls", raw, err, msgDirNotFound(raw)))
		return res
	}
	if ok, _ := afero.IsDir(i.fs, hostPath); !ok {
		res.Fail(i.notFound("ls", raw, nil, msgDirNotFound(raw)))
		return res
	}

	entries, err := afero.ReadDir(i.fs, hostPath)
	if err != nil {
		res.Fail(domain.NewCommandError(domain.ErrIO, err, msgListFailed(raw, err)))
		return res
	}
	for _, entry := range entries {
		res.Print(entry.Name())
	}
	i.hint(&res, hintLs)
	return res
}
