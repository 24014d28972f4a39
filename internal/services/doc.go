// Package services defines the shared error taxonomy for pipeline steps and
// external-tool integrations.
//
// Steps tag failures with one of the exported sentinel markers through Wrap
// so callers can classify them with errors.Is: configuration problems and
// invalid input are user-fixable, external-tool failures point at the
// environment, and transient failures may be retried.
package services
