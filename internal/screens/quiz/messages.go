package quiz

// attemptSavedMsg reports the outcome of recording a completed attempt.
type attemptSavedMsg struct {
	ID  string
	Err error
}
