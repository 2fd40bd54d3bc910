package testutil

import "github.com/pkg/errors"

// SameErrorString reports whether err and target carry the same message.
func SameErrorString(err, target error) bool {
	if err == nil && target == nil {
		return true
	}
	if err == nil || target == nil {
		return false
	}
	return err.Error() == target.Error()
}

// SameCause reports whether err was caused by target.
func SameCause(err, target error) bool {
	return errors.Cause(err) == target
}
