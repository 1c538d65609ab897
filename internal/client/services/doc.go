// Package services contains the application services of the legacykeeper
// client: the asset store and the heartbeat scheduler.
//
// Both services sit between the presentation layer (CLI) and the
// repositories. They contain every storage fault: failures are logged and
// returned as errors wrapping one of the common outcome classes
// (ErrStorageUnavailable, ErrWriteFailure, ErrReadFailure, ErrorNotFound),
// never as panics. Nothing is retried; every call is a single attempt.
package services
