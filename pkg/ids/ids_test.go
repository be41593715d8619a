package ids

import (
	"strings"
	"testing"
	"time"
)

func TestNextFormatsPrefixedSixDigits(t *testing.T) {
	frozen := time.UnixMilli(1714000123456)
	gen := NewGeneratorAt(func() time.Time { return frozen })

	id := gen.Next("TX-")
	if !strings.HasPrefix(id, "TX-") {
		t.Fatalf("missing prefix: %s", id)
	}
	if len(id) != len("TX-")+6 {
		t.Fatalf("expected 6 digit body, got %s", id)
	}
	if id != "TX-123456" {
		t.Fatalf("unexpected body: %s", id)
	}
}

func TestNextNeverRepeatsOnFrozenClock(t *testing.T) {
	frozen := time.UnixMilli(1714000123456)
	gen := NewGeneratorAt(func() time.Time { return frozen })

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		id := gen.Next("CMD-")
		if seen[id] {
			t.Fatalf("duplicate id minted: %s", id)
		}
		seen[id] = true
	}
}

func TestNextDistinctPrefixesShareClock(t *testing.T) {
	gen := NewGenerator()
	tx := gen.Next("TX-")
	cmd := gen.Next("CMD-")
	if tx == cmd {
		t.Fatalf("prefixes should differ: %s vs %s", tx, cmd)
	}
}
