package xneedle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ossobv/ipgrep/pkg/util/xnet"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "comma list", args: []string{"192.168.1.1,172.17.1.2"}, want: []string{"192.168.1.1", "172.17.1.2"}},
		{name: "spaces and empties", args: []string{" 10.0.0.1 ,, ::1\t2001:db8::/32 "}, want: []string{"10.0.0.1", "::1", "2001:db8::/32"}},
		{name: "several args", args: []string{"1.1.1.1", "2.2.2.2,3.3.3.3"}, want: []string{"1.1.1.1", "2.2.2.2", "3.3.3.3"}},
		{name: "only separators", args: []string{" , "}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Split(tt.args...))
		})
	}
}

func TestParse(t *testing.T) {
	s, err := Parse(Split("192.168.1.1,172.17.1.2,2001:db8::/32"), xnet.DefaultAccept, xnet.IfaceIP)
	require.NoError(t, err)
	require.Equal(t, 3, s.Len())

	needles := s.Needles()
	assert.Equal(t, "192.168.1.1", needles[0].Text)
	assert.True(t, needles[0].IsAddr())
	assert.Equal(t, xnet.FormIP, needles[0].Form)
	assert.False(t, needles[2].IsAddr())
	assert.Equal(t, xnet.FormNet, needles[2].Form)

	assert.Len(t, s.Networks(xnet.V4), 2)
	assert.Len(t, s.Networks(xnet.V6), 1)
	assert.Nil(t, s.Networks(xnet.V0))
	assert.True(t, s.HasVersion(xnet.V6))
}

func TestParse_AlwaysAcceptsIPAndNet(t *testing.T) {
	// haystack 只接受 net 与 oldnet，但裸地址 needle 仍然合法
	accept := xnet.NewAcceptSet(xnet.FormNet, xnet.FormOldnet)
	s, err := Parse([]string{"192.168.2.5", "10.0.0.0/8", "172.16.0.0/255.240.0.0"}, accept, xnet.IfaceIP)
	require.NoError(t, err)
	assert.Equal(t, 3, s.Len())
}

func TestParse_InterfaceModeIsShared(t *testing.T) {
	s, err := Parse([]string{"127.0.0.1/8"}, xnet.DefaultAccept, xnet.IfaceIP)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1/32", s.Needles()[0].Network.String())

	s, err = Parse([]string{"127.0.0.1/8"}, xnet.DefaultAccept, xnet.IfaceNet)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.0/8", s.Needles()[0].Network.String())

	_, err = Parse([]string{"127.0.0.1/8"}, xnet.DefaultAccept, xnet.IfaceComplain)
	require.ErrorIs(t, err, ErrInvalidNeedle)
	assert.ErrorIs(t, err, xnet.ErrHostBitsSet)
	assert.Contains(t, err.Error(), "127.0.0.1/8")
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse(nil, xnet.DefaultAccept, xnet.IfaceIP)
	assert.ErrorIs(t, err, ErrEmpty)

	_, err = Parse([]string{"10.0.0.1", "example.com"}, xnet.DefaultAccept, xnet.IfaceIP)
	require.ErrorIs(t, err, ErrInvalidNeedle)
	assert.ErrorIs(t, err, xnet.ErrInvalidAddress)
}

func TestParse_Dedup(t *testing.T) {
	s, err := Parse([]string{"10.0.0.1", "10.0.0.1/24", "10.0.0.1/32"}, xnet.DefaultAccept, xnet.IfaceIP)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, "10.0.0.1", s.Needles()[0].Text)
}

func TestSet_MayMatch(t *testing.T) {
	s, err := Parse([]string{"10.0.0.0/24", "2001:db8::1"}, xnet.DefaultAccept, xnet.IfaceIP)
	require.NoError(t, err)

	tests := []struct {
		item string
		want bool
	}{
		{"10.0.0.7", true},
		{"10.0.0.0/8", true},
		{"10.0.1.0/24", false},
		{"2001:db8::/32", true},
		{"2001:db8::2", false},
		{"::ffff:10.0.0.7", false},
	}
	for _, tt := range tests {
		t.Run(tt.item, func(t *testing.T) {
			assert.Equal(t, tt.want, s.MayMatch(xnet.MustParseNetwork(tt.item)))
		})
	}
	assert.False(t, s.MayMatch(xnet.Network{}))
}
