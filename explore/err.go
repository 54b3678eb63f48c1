package explore

import (
	"github.com/armkit/a64x/translate"
)

var f = translate.From

// ErrLockSyntax reports a lock specification that is not "field=value".
type ErrLockSyntax string

func (err ErrLockSyntax) Error() string {
	return f("lock '%v' is not field=value", string(err))
}

func (err ErrLockSyntax) Is(target error) (ok bool) {
	_, ok = target.(ErrLockSyntax)
	return
}

// ErrLockValue reports a lock value that is neither an integer nor a valid
// expression.
type ErrLockValue string

func (err ErrLockValue) Error() string {
	return f("'%v' is not a lock value or expression", string(err))
}

func (err ErrLockValue) Is(target error) (ok bool) {
	_, ok = target.(ErrLockValue)
	return
}
