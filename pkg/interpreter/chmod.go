package interpreter

import (
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/vfsh/pkg/domain"
)

// chmod relays a permission change to the host filesystem.
// Existence is checked before the mode is parsed.
func (i *Interpreter) chmod(sess domain.Session, args []string) domain.CommandResult {
	var res domain.CommandResult
	if len(args) != 2 {
		res.Fail(domain.NewCommandError(domain.ErrUsage, nil, msgUsageChmod))
		return res
	}
	raw, modeArg := args[0], args[1]

	_, hostPath, err := i.resolve(sess, raw)
	if err != nil {
		res.Fail(i.notFound("chmod", raw, err, msgChmodNotFound(raw)))
		return res
	}
	if _, err := i.fs.Stat(hostPath); err != nil {
		res.Fail(i.notFound("chmod", raw, nil, msgChmodNotFound(raw)))
		return res
	}

	mode, err := ParseMode(modeArg)
	if err != nil {
		res.Fail(domain.NewCommandError(domain.ErrBadMode, err, msgBadMode))
		return res
	}
	if err := i.fs.Chmod(hostPath, mode); err != nil {
		res.Fail(domain.NewCommandError(domain.ErrIO, err, msgChmodFailed(raw, err)))
		return res
	}

	res.Print(msgChmodDone(raw, modeArg))
	return res
}

// ParseMode parses an octal permission string such as "644", "0755" or "0o4755"
// into an os.FileMode, mapping the setuid, setgid and sticky bits.
func ParseMode(s string) (os.FileMode, error) {
	digits := s
	if len(digits) > 2 && digits[0] == '0' && (digits[1] == 'o' || digits[1] == 'O') {
		digits = digits[2:]
	}
	v, err := strconv.ParseUint(digits, 8, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid octal mode %q", s)
	}
	if v > 0o7777 {
		return 0, fmt.Errorf("mode %q out of range", s)
	}

	mode := os.FileMode(v & 0o777)
	if v&0o4000 != 0 {
		mode |= os.ModeSetuid
	}
	if v&0o2000 != 0 {
		mode |= os.ModeSetgid
	}
	if v&0o1000 != 0 {
		mode |= os.ModeSticky
	}
	return mode, nil
}
