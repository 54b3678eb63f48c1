package explore

import (
	"strconv"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/armkit/a64x/isa"
)

// ParseLocks parses "field=value" lock specifications. A value is a plain
// integer in any base, or a compile-time expression ("imm12=0x40*4")
// evaluated to an integer.
func ParseLocks(specs []string) (locks isa.Locks, err error) {
	locks = isa.Locks{}

	for _, spec := range specs {
		name, expr, found := strings.Cut(spec, "=")
		name = strings.TrimSpace(name)
		expr = strings.TrimSpace(expr)
		if !found || len(name) == 0 || len(expr) == 0 {
			err = ErrLockSyntax(spec)
			return
		}

		var value uint32
		value, err = evalLockValue(expr)
		if err != nil {
			return
		}
		locks[name] = value
	}

	return
}

// evalLockValue evaluates a lock-value expression. Plain integers are
// parsed directly; anything else goes through a starlark evaluation.
func evalLockValue(expr string) (value uint32, err error) {
	v64, nerr := strconv.ParseInt(expr, 0, 64)
	if nerr == nil {
		if v64 < 0 {
			err = ErrLockValue(expr)
			return
		}
		value = uint32(v64)
		return
	}

	thread := starlark.Thread{}
	opts := syntax.FileOptions{}
	prog := "rc=" + expr + "\n"
	dict, serr := starlark.ExecFileOptions(&opts, &thread, "lock", prog, starlark.StringDict{})
	if serr != nil {
		err = ErrLockValue(expr)
		return
	}
	st_rc, ok := dict["rc"]
	if !ok {
		err = ErrLockValue(expr)
		return
	}
	st_int, ok := st_rc.(starlark.Int)
	if !ok {
		err = ErrLockValue(expr)
		return
	}
	st_int64, ok := st_int.Int64()
	if !ok || st_int64 < 0 {
		// Lock values are unsigned field contents; a negative would
		// silently wrap.
		err = ErrLockValue(expr)
		return
	}
	value = uint32(st_int64)

	return
}
