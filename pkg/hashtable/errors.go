package hashtable

import (
	"errors"

	"golang.org/x/xerrors"

	"github.com/scottcagno/strtable/pkg/diag"
)

var (
	ErrInvalidCapacity     = errors.New("hashtable: invalid capacity")
	ErrCapacityExceeded    = errors.New("hashtable: capacity exceeded")
	ErrDuplicateNullKey    = errors.New("hashtable: duplicate null key")
	ErrDuplicateKey        = errors.New("hashtable: duplicate key")
	ErrMaxCapacityExceeded = errors.New("hashtable: max capacity exceeded")
	ErrTableDestroyed      = errors.New("hashtable: table has been destroyed")
)

// fail wraps err with the operation name, hands a report to the table's
// handler and returns the wrapped error
func (t *Table) fail(sev diag.Severity, op string, err error, msg, action string) error {
	var h diag.Handler
	if t != nil {
		h = t.handler
	}
	return report(h, sev, op, err, msg, action)
}

func report(h diag.Handler, sev diag.Severity, op string, err error, msg, action string) error {
	werr := xerrors.Errorf("%s: %w", op, err)
	if h != nil {
		h.Handle(&diag.Report{
			Err:      werr,
			Severity: sev,
			Op:       op,
			Message:  msg,
			Action:   action,
		})
	}
	return werr
}
