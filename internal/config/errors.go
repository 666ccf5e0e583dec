package config

import "github.com/xuxu777xu/random-prompt-focus-app/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error",
	}

	errReadConfig = &apperr.Error{
		Message: "reading config file failed",
	}

	errWriteConfig = &apperr.Error{
		Message: "writing default config failed",
	}

	errInvalidDuration = &apperr.Error{
		Message: "%s duration must be between %v and %v",
	}

	errInvalidDurationValue = &apperr.Error{
		Message: "invalid duration value: %s",
	}

	errInvalidCLIDuration = &apperr.Error{
		Message: "invalid --%s duration: %v",
	}

	errEmptyMsg = &apperr.Error{
		Message: "%s message cannot be empty",
	}

	errInvalidColor = &apperr.Error{
		Message: "%s color must be a valid hex color code (e.g. #FF0000), got %s",
	}

	errInvalidLambda = &apperr.Error{
		Message: "monitor lambda (%v) must be between %v and %v",
	}

	errInvalidLambdaValue = &apperr.Error{
		Message: "invalid --lambda value: %s",
	}

	errInvalidPromptTimeout = &apperr.Error{
		Message: "prompt timeout (%v) must be between %v and %v",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the start time must be earlier than the end time",
	}
)
