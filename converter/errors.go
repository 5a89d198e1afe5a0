package converter

import (
	"fmt"

	ethCommon "github.com/ethereum/go-ethereum/common"
)

// CallerError carries the offending caller identity along with the sentinel
// error, for diagnostics on rejected access-controlled operations.
type CallerError struct {
	Err    error
	Caller ethCommon.Address
}

func (e CallerError) Error() string {
	return fmt.Sprintf("%v (caller %v)", e.Err, e.Caller.Hex())
}

// Unwrap returns the sentinel error
func (e CallerError) Unwrap() error {
	return e.Err
}

// ErrCaller wraps err with the caller identity
func ErrCaller(err error, caller ethCommon.Address) error {
	return CallerError{Err: err, Caller: caller}
}
