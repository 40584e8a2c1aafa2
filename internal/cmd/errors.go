package cmd

import (
	oerrors "github.com/opmodel/icongen/internal/errors"
	"github.com/opmodel/icongen/internal/output"
)

// reportError logs err once and wraps it with the exit code for its
// category. The returned error is marked as printed so main does not
// print it again.
func reportError(err error) error {
	if err == nil {
		return nil
	}
	output.Error(err.Error())
	return &oerrors.ExitError{
		Err:     err,
		Code:    oerrors.ExitCodeFromError(err),
		Printed: true,
	}
}

// missingPackage is returned when a command needs a package argument.
func missingPackage() error {
	return oerrors.NewConfigError("missing package argument", "specify a package: react, vue")
}
