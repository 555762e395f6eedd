package xnet_test

import (
	"fmt"

	"github.com/ossobv/ipgrep/pkg/util/xnet"
)

func ExampleClassify() {
	n, form, _ := xnet.Classify("10.0.0.7/24", xnet.DefaultAccept, xnet.IfaceIP)
	fmt.Println(n, form)

	n, form, _ = xnet.Classify("10.0.0.7/24", xnet.DefaultAccept, xnet.IfaceNet)
	fmt.Println(n, form)

	_, _, err := xnet.Classify("10.0.0.7/24", xnet.DefaultAccept, xnet.IfaceComplain)
	fmt.Println(err)
	// Output:
	// 10.0.0.7/32 iface
	// 10.0.0.0/24 iface
	// xnet: host bits set
}

func ExampleNetwork_Contains() {
	haystack := xnet.MustParseNetwork("192.168.0.0/16")
	needle := xnet.MustParseNetwork("192.168.1.1")
	fmt.Println(haystack.Contains(needle))
	fmt.Println(needle.Contains(haystack))
	// Output:
	// true
	// false
}
