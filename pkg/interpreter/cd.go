package interpreter

import (
	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/aretw0/vfsh/pkg/vpath"
	"github.com/spf13/afero"
)

// cd moves to a directory. The canonical virtual path is committed, never the
// host path. return is dispatched here with "/".
func (i *Interpreter) cd(sess domain.Session, args []string) domain.CommandResult {
	var res domain.CommandResult
	raw := restArg(args, vpath.Root)

	virtual, hostPath, err := i.resolve(sess, raw)
	if err != nil {
		res.Fail(i.notFound("cd", raw, err, msgCdNotFound(raw)))
		return res
	}
	if ok, _ := afero.IsDir(i.fs, hostPath); !ok {
		res.Fail(i.notFound("cd", raw, nil, msgCdNotFound(raw)))
		return res
	}

	res.Dir = virtual
	i.hint(&res, hintCd(virtual))
	return res
}
