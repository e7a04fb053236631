package interpreter

import (
	"errors"
	"unicode/utf8"

	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/spf13/afero"
)

var errNotText = errors.New("content is not valid UTF-8 text")

// cat prints the whole content of a regular file.
func (i *Interpreter) cat(sess domain.Session, args []string) domain.CommandResult {
	var res domain.CommandResult
	if len(args) == 0 {
		res.Fail(domain.NewCommandError(domain.ErrUsage, nil, msgUsageCat))
		return res
	}
	raw := restArg(args, "")

	_, hostPath, err := i.resolve(sess, raw)
	if err != nil {
		res.Fail(i.notFound("cat", raw, err, msgFileNotFound(raw)))
		return res
	}
	info, err := i.fs.Stat(hostPath)
	if err != nil || !info.Mode().IsRegular() {
		res.Fail(i.notFound("cat", raw, nil, msgFileNotFound(raw)))
		return res
	}

	data, err := afero.ReadFile(i.fs, hostPath)
	if err == nil && !utf8.Valid(data) {
		err = errNotText
	}
	if err != nil {
		res.Fail(domain.NewCommandError(domain.ErrIO, err, msgReadFailed(raw, err)))
		return res
	}

	res.Print(string(data))
	i.hint(&res, hintCat)
	return res
}
