package agent

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/findash/findash"
)

func TestAnalyzeRefusesEmptyJournal(t *testing.T) {
	// no client is needed: the refusal happens before any network call
	analyst := &Analyst{}

	var empty *findash.EmptyInputError
	if _, err := analyst.Analyze(context.Background(), nil); !errors.As(err, &empty) {
		t.Errorf("expected an EmptyInputError, got %v", err)
	}

	// a journal of only open trades is refused the same way
	open := []findash.FuturesTrade{
		findash.NewFuturesTrade("f1", findash.NewDate(2024, time.June, 1), "BTC/USDT", findash.Long, findash.M(64000), findash.Q(0.5)),
	}
	if _, err := analyst.Analyze(context.Background(), open); !errors.As(err, &empty) {
		t.Errorf("expected an EmptyInputError, got %v", err)
	}
}

func TestBuildPrompt(t *testing.T) {
	trade := findash.NewFuturesTrade("f1", findash.NewDate(2024, time.June, 1), "BTC/USDT", findash.Long, findash.M(64000), findash.Q(0.5))
	closed, err := trade.Close(findash.M(65000))
	if err != nil {
		t.Fatalf("Close error = %v", err)
	}
	got := buildPrompt([]findash.FuturesTrade{closed})
	for _, want := range []string{"BTC/USDT", "LONG", "entry 64000", "exit 65000", "pnl 500"} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt missing %q:\n%s", want, got)
		}
	}
}
