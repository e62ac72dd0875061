package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	Add     func(AddArgs) (Result, error)
	Subject func(SubjectArgs) (Result, error)
	Show    func(ShowArgs) (Result, error)
	Reset   func() (Result, error)
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeAdd:
		if handlers.Add == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "add handler not configured"}
		}
		return handlers.Add(*cmd.Add)
	case TypeSubject:
		if handlers.Subject == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "subject handler not configured"}
		}
		return handlers.Subject(*cmd.Subject)
	case TypeShow:
		if handlers.Show == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "show handler not configured"}
		}
		return handlers.Show(*cmd.Show)
	case TypeReset:
		if handlers.Reset == nil {
			return Result{}, &CommandError{Code: ErrCodeHandlerMissing, Message: "reset handler not configured"}
		}
		return handlers.Reset()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
