package store

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/antocd/clubman-go/internal/domain"
	apperrors "github.com/antocd/clubman-go/pkg/errors"
)

func testPlayer(dni, name string, pos domain.Position) domain.Player {
	return domain.Player{DNI: dni, Name: name, Position: pos, Height: 1.80}
}

func TestRosterListOrderedByJersey(t *testing.T) {
	roster := NewRoster(zap.NewNop())
	roster.Add(9, testPlayer("111A", "Leo", domain.Forward))
	roster.Add(1, testPlayer("222B", "Iker", domain.Goalkeeper))
	roster.Add(4, testPlayer("333C", "Sergio", domain.Defender))

	entries := roster.List()
	if len(entries) != 3 {
		t.Fatalf("List returned %d entries, want 3", len(entries))
	}
	for i, want := range []int{1, 4, 9} {
		if entries[i].Number != want {
			t.Fatalf("entry %d has jersey %d, want %d", i, entries[i].Number, want)
		}
	}
}

func TestRosterAddOverwritesJersey(t *testing.T) {
	roster := NewRoster(zap.NewNop())
	roster.Add(10, testPlayer("111A", "Old", domain.Midfielder))
	roster.Add(10, testPlayer("222B", "New", domain.Forward))

	if roster.Len() != 1 {
		t.Fatalf("Len = %d, want 1", roster.Len())
	}
	p, ok := roster.Get(10)
	if !ok || p.DNI != "222B" {
		t.Fatalf("Get(10) = %v, %v; want the later player", p, ok)
	}
}

func TestRosterRemove(t *testing.T) {
	roster := NewRoster(zap.NewNop())
	roster.Add(7, testPlayer("111A", "Andres", domain.Midfielder))

	removed, err := roster.Remove(7)
	if err != nil {
		t.Fatalf("Remove(7) failed: %v", err)
	}
	if removed.DNI != "111A" {
		t.Fatalf("Remove returned %v, want the player at jersey 7", removed)
	}
	if roster.Len() != 0 {
		t.Fatalf("Len = %d after removal, want 0", roster.Len())
	}
}

func TestRosterRemoveAbsentJersey(t *testing.T) {
	roster := NewRoster(zap.NewNop())
	roster.Add(7, testPlayer("111A", "Andres", domain.Midfielder))

	_, err := roster.Remove(99)
	if err == nil {
		t.Fatal("Remove(99) succeeded, want not-found")
	}
	var notFound *apperrors.NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("Remove returned %T, want *NotFoundError", err)
	}
	if roster.Len() != 1 {
		t.Fatalf("Len = %d after failed removal, want 1", roster.Len())
	}
}

func TestRosterFilterByPosition(t *testing.T) {
	roster := NewRoster(zap.NewNop())
	roster.Add(9, testPlayer("111A", "Leo", domain.Forward))
	roster.Add(1, testPlayer("222B", "Iker", domain.Goalkeeper))
	roster.Add(11, testPlayer("333C", "Kylian", domain.Forward))

	forwards := roster.FilterByPosition(domain.Forward)
	if len(forwards) != 2 {
		t.Fatalf("FilterByPosition returned %d entries, want 2", len(forwards))
	}
	if forwards[0].Number != 9 || forwards[1].Number != 11 {
		t.Fatalf("forwards = %v, want jerseys 9 and 11 in order", forwards)
	}

	if defenders := roster.FilterByPosition(domain.Defender); len(defenders) != 0 {
		t.Fatalf("FilterByPosition(Defender) returned %d entries, want 0", len(defenders))
	}
}
