package console

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func testMenu(input string) (*Menu, *bytes.Buffer, *[]string) {
	out := &bytes.Buffer{}
	menu := NewMenu("What do you want to do?", NewPrompter(strings.NewReader(input), out), zap.NewNop())
	calls := &[]string{}
	return menu, out, calls
}

func record(calls *[]string, name string) Handler {
	return func(ctx context.Context) error {
		*calls = append(*calls, name)
		return nil
	}
}

func TestMenuDispatchesByNumber(t *testing.T) {
	menu, _, calls := testMenu("2\n1\n3\n")
	menu.Register("first", record(calls, "first"))
	menu.Register("second", record(calls, "second"))
	menu.RegisterExit("exit", record(calls, "exit"))

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	want := []string{"second", "first", "exit"}
	if len(*calls) != len(want) {
		t.Fatalf("calls = %v, want %v", *calls, want)
	}
	for i := range want {
		if (*calls)[i] != want[i] {
			t.Fatalf("calls = %v, want %v", *calls, want)
		}
	}
}

func TestMenuRejectsInvalidChoice(t *testing.T) {
	menu, out, calls := testMenu("9\n0\n1\n")
	menu.RegisterExit("exit", record(calls, "exit"))

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "Invalid option.") {
		t.Fatalf("operator was not told the option is invalid, output: %q", out.String())
	}
	if len(*calls) != 1 {
		t.Fatalf("calls = %v, want only the exit handler", *calls)
	}
}

func TestMenuKeepsLoopingAfterHandlerError(t *testing.T) {
	menu, out, calls := testMenu("1\n2\n")
	menu.Register("boom", func(ctx context.Context) error {
		return errors.New("boom")
	})
	menu.RegisterExit("exit", record(calls, "exit"))

	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !strings.Contains(out.String(), "boom") {
		t.Fatalf("handler failure was not reported, output: %q", out.String())
	}
	if len(*calls) != 1 || (*calls)[0] != "exit" {
		t.Fatalf("calls = %v, want the exit handler after the failure", *calls)
	}
}

func TestMenuStopsWhenInputEnds(t *testing.T) {
	menu, _, calls := testMenu("")
	menu.RegisterExit("exit", record(calls, "exit"))

	if err := menu.Run(context.Background()); err == nil {
		t.Fatal("Run succeeded on exhausted input")
	}
	if len(*calls) != 0 {
		t.Fatalf("calls = %v, want none", *calls)
	}
}

func TestMenuHonorsContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	menu, _, calls := testMenu("1\n")
	menu.RegisterExit("exit", record(calls, "exit"))

	if err := menu.Run(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("Run returned %v, want context.Canceled", err)
	}
}
