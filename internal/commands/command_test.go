package commands

import (
	"errors"
	"testing"
)

func TestParseAdd(t *testing.T) {
	cmd, err := Parse("/add buy oat milk")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeAdd || cmd.Add == nil || cmd.Add.Text != "buy oat milk" {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

func TestParseSubject(t *testing.T) {
	cmd, err := Parse("subject Deep Work")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeSubject || cmd.Subject == nil || cmd.Subject.Name != "Deep Work" {
		t.Fatalf("unexpected command: %#v", cmd)
	}
}

func TestParseShowScreens(t *testing.T) {
	for _, screen := range []string{ScreenHome, ScreenCalendar, ScreenSubjects} {
		cmd, err := Parse("show " + screen)
		if err != nil {
			t.Fatalf("parse show %s: %v", screen, err)
		}
		if cmd.Show == nil || cmd.Show.Screen != screen {
			t.Fatalf("unexpected command: %#v", cmd)
		}
	}

	_, err := Parse("show nonsense")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestParseReset(t *testing.T) {
	cmd, err := Parse("reset")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cmd.Type != TypeReset {
		t.Fatalf("unexpected command: %#v", cmd)
	}

	_, err = Parse("reset everything")
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeInvalidArgument {
		t.Fatalf("expected invalid_argument, got %v", err)
	}
}

func TestParseRejectsEmptyAndUnknown(t *testing.T) {
	cases := map[string]ErrorCode{
		"":         ErrCodeEmptyInput,
		"   ":      ErrCodeEmptyInput,
		"/":        ErrCodeEmptyInput,
		"add   ":   ErrCodeInvalidArgument,
		"frobnish": ErrCodeUnknownCommand,
	}
	for input, want := range cases {
		_, err := Parse(input)
		var cmdErr *CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Code != want {
			t.Fatalf("input %q: expected %s, got %v", input, want, err)
		}
	}
}

func TestExecuteDispatchesToHandler(t *testing.T) {
	cmd, err := Parse("add write outline")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	var gotText string
	res, err := Execute(cmd, Handlers{
		Add: func(args AddArgs) (Result, error) {
			gotText = args.Text
			return Result{Message: "added"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute: %v", err)
	}
	if gotText != "write outline" || res.Message != "added" {
		t.Fatalf("unexpected dispatch: text=%q result=%#v", gotText, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("reset")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected handler_missing, got %v", err)
	}
}
