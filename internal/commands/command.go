package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeAdd     Type = "add"
	TypeSubject Type = "subject"
	TypeShow    Type = "show"
	TypeReset   Type = "reset"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type AddArgs struct {
	Text string
}

type SubjectArgs struct {
	Name string
}

// Screen names accepted by the show command.
const (
	ScreenHome     = "home"
	ScreenCalendar = "calendar"
	ScreenSubjects = "subjects"
)

type ShowArgs struct {
	Screen string
}

type Command struct {
	Type    Type
	Raw     string
	Add     *AddArgs
	Subject *SubjectArgs
	Show    *ShowArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeAdd:
		return parseAdd(input, args)
	case TypeSubject:
		return parseSubject(input, args)
	case TypeShow:
		return parseShow(input, args)
	case TypeReset:
		if len(args) != 0 {
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "reset takes no arguments"}
		}
		return Command{Type: TypeReset, Raw: input}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseAdd(raw string, args []string) (Command, error) {
	text := strings.TrimSpace(strings.Join(args, " "))
	if text == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "add requires task text"}
	}
	return Command{Type: TypeAdd, Raw: raw, Add: &AddArgs{Text: text}}, nil
}

func parseSubject(raw string, args []string) (Command, error) {
	name := strings.TrimSpace(strings.Join(args, " "))
	if name == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "subject requires a name"}
	}
	return Command{Type: TypeSubject, Raw: raw, Subject: &SubjectArgs{Name: name}}, nil
}

func parseShow(raw string, args []string) (Command, error) {
	if len(args) == 0 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "show requires a screen name"}
	}
	screen := strings.ToLower(args[0])
	switch screen {
	case ScreenHome, ScreenCalendar, ScreenSubjects:
		return Command{Type: TypeShow, Raw: raw, Show: &ShowArgs{Screen: screen}}, nil
	default:
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown screen: %s", screen)}
	}
}
