package ui

//go:generate go run go.uber.org/mock/mockgen -source=./ui.go -destination=./mocks/ui_mock.go -package=mocks

// Navigator receives navigation instructions from the view-models. The
// presentation layer decides what following a route means; view-models only
// ever name the target.
type Navigator interface {
	Navigate(target string)
}

// Confirmer is the explicit yes/no acknowledgment gate in front of
// destructive actions. No network call may be issued unless it returns true.
type Confirmer interface {
	Confirm(prompt string) bool
}
