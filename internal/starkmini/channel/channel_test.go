package channel

import "testing"

func TestNewChannelIsDeterministic(t *testing.T) {
	a, b := New(), New()
	if a.Digest() != b.Digest() {
		t.Error("two fresh channels should start with the same digest")
	}
}

func TestCommitSequenceDeterminesState(t *testing.T) {
	a, b := New(), New()
	a.Commit([]byte("root-1"))
	b.Commit([]byte("root-1"))
	if a.Digest() != b.Digest() {
		t.Error("channels receiving the same commit should reach the same digest")
	}

	a.Commit([]byte("root-2"))
	if a.Digest() == b.Digest() {
		t.Error("channels should diverge after diverging commit sequences")
	}
}

func TestRandomElementNeverZero(t *testing.T) {
	c := New()
	c.Commit([]byte("seed"))
	for i := 0; i < 200; i++ {
		if c.RandomElement().IsZero() {
			t.Fatal("RandomElement must never return 0")
		}
	}
}

func TestRandomElementDeterministicReplay(t *testing.T) {
	a, b := New(), New()
	a.Commit([]byte("root"))
	b.Commit([]byte("root"))

	for i := 0; i < 10; i++ {
		x := a.RandomElement()
		y := b.RandomElement()
		if !x.Equal(y) {
			t.Fatalf("draw %d diverged: %s vs %s", i, x, y)
		}
	}
}

func TestRandomElementVaries(t *testing.T) {
	c := New()
	c.Commit([]byte("seed"))
	r1 := c.RandomElement()
	r2 := c.RandomElement()
	r3 := c.RandomElement()
	if r1.Equal(r2) && r2.Equal(r3) {
		t.Error("successive draws collapsing to the same value 3 times in a row is suspicious")
	}
}

func TestRandomIntegerWithinBound(t *testing.T) {
	c := New()
	c.Commit([]byte("seed"))
	for i := 0; i < 100; i++ {
		v := c.RandomInteger(8)
		if v >= 8 {
			t.Fatalf("RandomInteger(8) returned %d, out of range", v)
		}
	}
}

func TestRandomIntegerCanBeZero(t *testing.T) {
	// Unlike RandomElement, 0 is a legitimate query index and must not
	// be rejected - draw until we see one to confirm no rejection logic
	// is silently filtering it out.
	c := New()
	c.Commit([]byte("seed"))
	sawZero := false
	for i := 0; i < 1000; i++ {
		if c.RandomInteger(8) == 0 {
			sawZero = true
			break
		}
	}
	if !sawZero {
		t.Error("RandomInteger(8) never returned 0 in 1000 draws; rejection sampling may have leaked in")
	}
}

func TestCommitmentsAccumulatesOnlyDigestCommits(t *testing.T) {
	c := New()
	root1 := [32]byte{1}
	root2 := [32]byte{2}
	c.CommitDigest(root1)
	c.Commit([]byte{9}) // a short, non-digest commit (e.g. a terminal scalar)
	c.CommitDigest(root2)

	got := c.Commitments()
	if len(got) != 2 {
		t.Fatalf("Commitments() has %d entries, want 2: %v", len(got), got)
	}
	if got[0] != root1 || got[1] != root2 {
		t.Errorf("Commitments() = %v, want [%x %x]", got, root1, root2)
	}
}

func TestCommitmentsIsACopy(t *testing.T) {
	c := New()
	c.CommitDigest([32]byte{7})
	got := c.Commitments()
	got[0][0] = 0xff
	if c.Commitments()[0][0] == 0xff {
		t.Error("Commitments() should return an independent copy, not the internal slice")
	}
}

func TestTranscriptRecordsEveryCall(t *testing.T) {
	c := New()
	c.Commit([]byte("a"))
	c.RandomElement()
	c.RandomInteger(4)

	transcript := c.Transcript()
	if len(transcript) < 4 { // init + commit + random_element + random_integer (at least)
		t.Errorf("transcript has %d entries, expected at least 4: %v", len(transcript), transcript)
	}
}
