package planner

import (
	"errors"
	"strings"

	"github.com/sandeepkv93/scheduleplanner/internal/commands"
	"github.com/sandeepkv93/scheduleplanner/internal/model"
)

const (
	MessageAddSuccess         = "New task added: %s"
	MessageEditSuccess        = "Edited Task: %s"
	MessageDeleteSuccess      = "Deleted Task: %s"
	MessageListAll            = "Listed all tasks"
	MessageTasksListed        = "%d tasks listed!"
	MessageClearSuccess       = "Schedule planner has been cleared!"
	MessageHelpOpened         = "Opened help window."
	MessageDuplicateTask      = "This task already exists in the schedule planner"
	MessageInvalidIndex       = "The task index provided is invalid"
	MessageSaveFailed         = "Unable to save the schedule planner; the change was not applied"
	MessageFirstDaySuccess    = "First day of semester saved successfully"
	MessageCurrentWeek        = "Current week: %s"
	MessageInvalidDate        = "Invalid date or date format\nDate should be in ddmmyy format\nExample: firstday 130818"
	MessageNotMonday          = "Date given is not a Monday"
	MessageFileMissing        = "Unable to save range of dates of semester as default file is missing"
	MessageDataUnconverted    = "Data unable to convert from saved file"
	MessageSemesterUnreadable = "Unable to read the saved range of dates of semester"
	MessageTaskFileLocked     = "Data unable to convert from saved file; run clear to start a new schedule planner"
	DefaultTitle              = "Schedule Planner"
)

// Error is a failure whose Message is fit to show the user as is.
type Error struct {
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func userError(msg string, err error) *Error {
	return &Error{Message: msg, Err: err}
}

// UserMessage turns any error returned by Execute into display text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		lines := make([]string, 0, len(joined.Unwrap()))
		for _, e := range joined.Unwrap() {
			lines = append(lines, UserMessage(e))
		}
		return strings.Join(lines, "\n")
	}
	var pe *Error
	if errors.As(err, &pe) {
		return pe.Message
	}
	var ce *commands.CommandError
	if errors.As(err, &ce) {
		return ce.Message
	}
	var ve *model.ValidationError
	if errors.As(err, &ve) {
		return ve.Message
	}
	return err.Error()
}
