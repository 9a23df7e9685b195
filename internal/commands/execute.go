package commands

import "fmt"

// Result is the feedback shown to the user. Help asks the UI to open the
// help screen and Exit asks it to quit.
type Result struct {
	Message string
	Help    bool
	Exit    bool
}

type Handlers struct {
	Add      func(AddArgs) (Result, error)
	Edit     func(EditArgs) (Result, error)
	Delete   func(DeleteArgs) (Result, error)
	List     func() (Result, error)
	ListDay  func() (Result, error)
	ListWeek func() (Result, error)
	Find     func(FindArgs) (Result, error)
	FirstDay func(FirstDayArgs) (Result, error)
	Clear    func() (Result, error)
	Help     func() (Result, error)
	Exit     func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Add(*cmd.Add)
	case TypeEdit:
		if handlers.Edit == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Edit(*cmd.Edit)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Delete(*cmd.Delete)
	case TypeFind:
		if handlers.Find == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Find(*cmd.Find)
	case TypeFirstDay:
		if handlers.FirstDay == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.FirstDay(*cmd.FirstDay)
	case TypeList:
		return callNoArgs(cmd.Type, handlers.List)
	case TypeListDay:
		return callNoArgs(cmd.Type, handlers.ListDay)
	case TypeListWeek:
		return callNoArgs(cmd.Type, handlers.ListWeek)
	case TypeClear:
		return callNoArgs(cmd.Type, handlers.Clear)
	case TypeHelp:
		return callNoArgs(cmd.Type, handlers.Help)
	case TypeExit:
		if handlers.Exit == nil {
			return Result{Message: "Exiting Schedule Planner as requested ...", Exit: true}, nil
		}
		return handlers.Exit()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}

func callNoArgs(t Type, fn func() (Result, error)) (Result, error) {
	if fn == nil {
		return Result{}, missing(t)
	}
	return fn()
}

func missing(t Type) *CommandError {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}
