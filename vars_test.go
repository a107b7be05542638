package calc

import "testing"

func TestVars(t *testing.T) {
	var v Vars
	for c := byte('A'); c <= 'Z'; c++ {
		if x := v.Get(c); x != 0 {
			t.Errorf("zero Vars has %c = %g", c, x)
		}
	}
	v.Set('a', 1)
	v.Set('Z', 26)
	if x := v.Get('A'); x != 1 {
		t.Errorf("A should be 1 but is %g", x)
	}
	if x := v.Get('z'); x != 26 {
		t.Errorf("z should be 26 but is %g", x)
	}
	if v[0] != 1 || v[25] != 26 {
		t.Errorf("wrong slots: %v", v)
	}
}

func TestVarsBadName(t *testing.T) {
	for _, c := range []byte{'0', '@', '[', '`', '{', ' ', 0, 0xc1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic for name %q", c)
				}
			}()
			var v Vars
			v.Get(c)
		}()
	}
}
