package driver

// LinkError reports a problem resolving or absorbing a linked STEP
// file during a compose run.
type LinkError struct {
	Kind    string // "Cycle", "Resolve"
	Link    string
	Message string
}

func (e LinkError) Error() string {
	return e.Kind + " on link " + e.Link + ": " + e.Message
}
