package vars

import "testing"

func TestDerefOrZero(t *testing.T) {
	if DerefOrZero[int](nil) != 0 {
		t.Fatal()
	}
	n := 42
	if DerefOrZero(&n) != 42 {
		t.Fatal()
	}
}

func TestFirstNonZero(t *testing.T) {
	if FirstNonZero(0, 0, 3, 4) != 3 {
		t.Fatal()
	}
	if FirstNonZero("", "foo") != "foo" {
		t.Fatal()
	}
	if FirstNonZero(0, 0) != 0 {
		t.Fatal()
	}
}

func TestStrToBool(t *testing.T) {
	for _, str := range []string{"true", "T", "yes", "Y"} {
		if !StrToBool(str) {
			t.Fatalf("got false for %q", str)
		}
	}
	for _, str := range []string{"false", "f", "no", "N", "whatever"} {
		if StrToBool(str) {
			t.Fatalf("got true for %q", str)
		}
	}
}
