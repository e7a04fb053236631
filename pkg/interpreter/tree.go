package interpreter

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/vfsh/pkg/domain"
	"github.com/spf13/afero"
)

const treeIndent = "    "

// tree prints every directory and file below a directory in pre-order:
// a directory header, then its files, then its subdirectories.
func (i *Interpreter) tree(sess domain.Session, args []string) domain.CommandResult {
	var res domain.CommandResult
	raw := restArg(args, ".")

	_, hostPath, err := i.resolve(sess, raw)
	if err != nil {
		res.Fail(i.notFound("tree", raw, err, msgDirNotFound(raw)))
		return res
	}
	if ok, _ := afero.IsDir(i.fs, hostPath); !ok {
		res.Fail(i.notFound("tree", raw, nil, msgDirNotFound(raw)))
		return res
	}

	i.walkTree(&res, hostPath, 0)
	i.hint(&res, hintTree)
	return res
}

// walkTree skips directories it cannot read, like a plain depth-first walk.
func (i *Interpreter) walkTree(res *domain.CommandResult, dir string, level int) {
	entries, err := afero.ReadDir(i.fs, dir)
	if err != nil {
		i.logger.Debug("Tree skipped directory", "dir", dir, "err", err)
		return
	}

	indent := strings.Repeat(treeIndent, level)
	var subdirs []os.FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			subdirs = append(subdirs, entry)
			continue
		}
		res.Print(indent + entry.Name())
	}
	for _, sub := range subdirs {
		res.Print(indent + sub.Name() + "/")
		i.walkTree(res, filepath.Join(dir, sub.Name()), level+1)
	}
}
