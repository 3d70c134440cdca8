// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Lattice Authors

package abac

import "github.com/samber/oops"

// Error code constants name the error taxonomy. They are stable strings
// so callers can branch on oops.AsOops(err).Code() rather than string
// matching messages.
const (
	CodeInvalidArgument      = "INVALID_ARGUMENT"
	CodeExists               = "EXISTS"
	CodeNotFound             = "NOT_FOUND"
	CodeTypeError            = "TYPE_ERROR"
	CodeStorageError         = "STORAGE_ERROR"
	CodePolicyEvaluationError = "POLICY_EVALUATION_ERROR"
)

// NewInvalidArgument reports bad constructor input: mixed policy dialects,
// negative pagination, malformed regex/CIDR, an empty effect, and similar.
func NewInvalidArgument(format string, args ...any) error {
	return oops.Code(CodeInvalidArgument).Errorf(format, args...)
}

// NewExists reports that Storage.Add was called with a uid already present.
func NewExists(uid string) error {
	return oops.Code(CodeExists).With("uid", uid).Errorf("policy %q already exists", uid)
}

// NewNotFound reports that Get or Update was called with a missing uid.
func NewNotFound(uid string) error {
	return oops.Code(CodeNotFound).With("uid", uid).Errorf("policy %q not found", uid)
}

// NewTypeError reports a JSON deserialization failure: an unknown rule
// discriminator or a malformed shape.
func NewTypeError(format string, args ...any) error {
	return oops.Code(CodeTypeError).Errorf(format, args...)
}

// NewStorageError wraps an adapter I/O failure with its underlying cause.
func NewStorageError(cause error) error {
	return oops.Code(CodeStorageError).Wrap(cause)
}

// NewPolicyEvaluationError wraps a runtime failure inside a rule or checker
// during Guard evaluation. The Guard catches this kind itself; it never
// surfaces to a caller of IsAllowed.
func NewPolicyEvaluationError(cause error) error {
	return oops.Code(CodePolicyEvaluationError).Wrap(cause)
}

// hasCode reports whether err is an oops error carrying the given code.
func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return false
	}
	return oopsErr.Code() == code
}

// IsInvalidArgument reports whether err carries CodeInvalidArgument.
func IsInvalidArgument(err error) bool { return hasCode(err, CodeInvalidArgument) }

// IsExists reports whether err carries CodeExists.
func IsExists(err error) bool { return hasCode(err, CodeExists) }

// IsNotFound reports whether err carries CodeNotFound.
func IsNotFound(err error) bool { return hasCode(err, CodeNotFound) }

// IsTypeError reports whether err carries CodeTypeError.
func IsTypeError(err error) bool { return hasCode(err, CodeTypeError) }

// IsStorageError reports whether err carries CodeStorageError.
func IsStorageError(err error) bool { return hasCode(err, CodeStorageError) }

// IsPolicyEvaluationError reports whether err carries CodePolicyEvaluationError.
func IsPolicyEvaluationError(err error) bool { return hasCode(err, CodePolicyEvaluationError) }
