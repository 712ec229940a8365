// Package errors provides the classified error type used across docsite.
//
// Errors carry a category (config, validation, filesystem, hugo, ...), a
// severity and structured context. The CLI adapter maps categories to
// process exit codes.
//
//	err := errors.WrapError(cause, errors.CategoryHugo, "hugo run failed").
//		WithContext("dir", siteDir).
//		Build()
package errors
