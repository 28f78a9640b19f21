package cli

import "fmt"

type notLoggedInError struct{}

func (notLoggedInError) Error() string {
	return "not logged in; run `taskdash login`"
}

func errNotLoggedIn() error {
	return notLoggedInError{}
}

type taskNotFoundError struct {
	id int
}

func (e taskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %d", e.id)
}

func errTaskNotFound(id int) error {
	return taskNotFoundError{id: id}
}
