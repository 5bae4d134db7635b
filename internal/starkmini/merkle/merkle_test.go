package merkle

import (
	"testing"

	"github.com/plafer/stark-102/internal/starkmini/field17"
)

func leaves(vals ...int64) []field17.Element {
	out := make([]field17.Element, len(vals))
	for i, v := range vals {
		out[i] = field17.New(v)
	}
	return out
}

func TestCommitRejectsEmpty(t *testing.T) {
	if _, err := Commit(nil); err == nil {
		t.Error("Commit(nil) should fail")
	}
}

func TestCommitRejectsNonPowerOfTwo(t *testing.T) {
	if _, err := Commit(leaves(1, 2, 3)); err == nil {
		t.Error("Commit with 3 leaves should fail: not a power of two")
	}
}

func TestRoundTripEveryIndex(t *testing.T) {
	l := leaves(3, 10, 5, 11, 14, 7, 12, 6)
	tree, err := Commit(l)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	root := tree.Root()

	for i, v := range l {
		path, err := tree.Open(i)
		if err != nil {
			t.Fatalf("Open(%d) failed: %v", i, err)
		}
		if !Verify(root, i, v, path) {
			t.Errorf("Verify failed for index %d", i)
		}
	}
}

func TestVerifyRejectsWrongValue(t *testing.T) {
	l := leaves(3, 10, 5, 11)
	tree, err := Commit(l)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	path, _ := tree.Open(0)
	if Verify(tree.Root(), 0, field17.New(9), path) {
		t.Error("Verify should reject a value that does not match the committed leaf")
	}
}

func TestVerifyRejectsTamperedRoot(t *testing.T) {
	l := leaves(3, 10, 5, 11)
	tree, err := Commit(l)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	path, _ := tree.Open(0)
	badRoot := tree.Root()
	badRoot[0] ^= 0xFF
	if Verify(badRoot, 0, l[0], path) {
		t.Error("Verify should reject a tampered root")
	}
}

func TestVerifyRejectsOutOfOrderPath(t *testing.T) {
	l := leaves(3, 10, 5, 11, 14, 7, 12, 6)
	tree, err := Commit(l)
	if err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	path, _ := tree.Open(1)
	if Verify(tree.Root(), 3, l[1], path) {
		t.Error("Verify should reject a path opened against the wrong index")
	}
}

func TestOpenOutOfRangeFails(t *testing.T) {
	tree, _ := Commit(leaves(1, 2))
	if _, err := tree.Open(5); err == nil {
		t.Error("Open(5) on a 2-leaf tree should fail")
	}
	if _, err := tree.Open(-1); err == nil {
		t.Error("Open(-1) should fail")
	}
}

func TestTwoIdenticalLeavesHaveDeterministicRoot(t *testing.T) {
	t1, _ := Commit(leaves(13, 13))
	t2, _ := Commit(leaves(13, 13))
	if t1.Root() != t2.Root() {
		t.Error("two commits of the same leaves should produce the same root")
	}
}
