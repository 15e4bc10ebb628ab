// Package domain defines core data models, interfaces and error kinds shared
// across the app. It contains plain types and contracts only.
//
// Errors are sentinels matched with errors.Is; KindOf folds any wrapped error
// into an ErrorKind so transports can map outcomes without a type switch.
package domain
