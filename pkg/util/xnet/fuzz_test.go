package xnet

import "testing"

// =============================================================================
// 字面量分类模糊测试
// =============================================================================

func FuzzClassify(f *testing.F) {
	f.Add("192.168.1.1")
	f.Add("10.20.30.123/24")
	f.Add("128.128.0.0/255.255.0.0")
	f.Add("::ffff:10.0.0.1/127")
	f.Add("fd4e:3732:3033::1/64")
	f.Add("1.2.3.4:443")
	f.Add("0.0.0.0/0.0.0.0")

	all := NewAcceptSet(FormIP, FormNet, FormOldnet, FormIface)
	f.Fuzz(func(t *testing.T, s string) {
		for _, mode := range []InterfaceMode{IfaceIP, IfaceNet, IfaceComplain} {
			n, form, err := Classify(s, all, mode)
			if err != nil {
				continue
			}
			if !n.IsValid() || n.Bits() > n.Addr().BitLen() {
				t.Fatalf("Classify(%q) produced invalid network %v", s, n)
			}
			if form != FormIface && !n.IsCanonical() {
				t.Fatalf("Classify(%q) form %v returned host bits: %v", s, form, n)
			}
			if mode == IfaceComplain && !n.IsCanonical() {
				t.Fatalf("Classify(%q) complain mode returned host bits: %v", s, n)
			}
			c := n.Canonical()
			if c.Canonical() != c || !c.Equal(n) {
				t.Fatalf("canonicalization not idempotent for %v", n)
			}
		}
	})
}

// =============================================================================
// 包含关系对偶性模糊测试
// =============================================================================

func FuzzContainsDuality(f *testing.F) {
	f.Add(uint32(0x0a000000), uint8(8), uint32(0x0a000001), uint8(32))
	f.Add(uint32(0xc0a80300), uint8(30), uint32(0xc0a80303), uint8(32))
	f.Add(uint32(0), uint8(0), uint32(0xffffffff), uint8(1))

	f.Fuzz(func(t *testing.T, a uint32, ap uint8, b uint32, bp uint8) {
		na, err := NetworkFrom(AddrFromUint32(a), int(ap%33))
		if err != nil {
			t.Fatal(err)
		}
		nb, err := NetworkFrom(AddrFromUint32(b), int(bp%33))
		if err != nil {
			t.Fatal(err)
		}
		if na.Overlaps(nb) != nb.Overlaps(na) {
			t.Fatalf("overlaps not symmetric for %v, %v", na, nb)
		}
		if na.Contains(nb) && nb.Contains(na) && !na.Equal(nb) {
			t.Fatalf("mutual containment without equality for %v, %v", na, nb)
		}
		if !na.Contains(na) {
			t.Fatalf("%v does not contain itself", na)
		}
	})
}
