package timer

import "github.com/xuxu777xu/random-prompt-focus-app/internal/apperr"

var (
	// ErrAlreadyRunning is returned when a session start is attempted
	// while another session is still live. The active session keeps
	// running; callers must stop it first.
	ErrAlreadyRunning = &apperr.Error{
		Message: "a session is already in progress",
	}

	errNotRunning = &apperr.Error{
		Message: "no session is currently running",
	}

	errNotPaused = &apperr.Error{
		Message: "no session is currently paused",
	}

	errSessionActive = &apperr.Error{
		Message: "cannot reset while a session is active",
	}

	errInvalidSoundFormat = &apperr.Error{
		Message: "sound file must be in mp3, ogg, flac, or wav format",
	}
)
