package xfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type visited struct {
	path string
	err  error
}

func collect(t *testing.T, roots []string, rec Recursion) []visited {
	t.Helper()
	var out []visited
	err := Walk(roots, rec, func(path string, err error) error {
		out = append(out, visited{path: path, err: err})
		return nil
	})
	require.NoError(t, err)
	return out
}

func paths(vs []visited) []string {
	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.path)
	}
	return out
}

// makeTree 创建：
//
//	root/a.txt
//	root/b/c.txt
//	root/b/d/e.txt
//	root/link.txt -> a.txt
//	root/linkdir -> b/d
func makeTree(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "b", "d"), 0o755))
	for _, f := range []string{"a.txt", "b/c.txt", "b/d/e.txt"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte(f+"\n"), 0o600))
	}
	require.NoError(t, os.Symlink("a.txt", filepath.Join(root, "link.txt")))
	require.NoError(t, os.Symlink(filepath.Join("b", "d"), filepath.Join(root, "linkdir")))
	return root
}

// =============================================================================
// 递归策略
// =============================================================================

func TestWalk_Recursion(t *testing.T) {
	root := makeTree(t)
	j := func(p string) string { return root + string(os.PathSeparator) + filepath.FromSlash(p) }

	tests := []struct {
		name string
		rec  Recursion
		want []string
	}{
		{"none", RecurseNone, []string{root}},
		{"dirs skips symlinks", RecurseDirs, []string{j("a.txt"), j("b/c.txt"), j("b/d/e.txt")}},
		{"symlinks followed", RecurseSymlinks, []string{
			j("a.txt"), j("b/c.txt"), j("b/d/e.txt"), j("link.txt"), j("linkdir/e.txt"),
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := collect(t, []string{root}, tt.rec)
			assert.Equal(t, tt.want, paths(got))
			if tt.rec == RecurseNone {
				assert.ErrorIs(t, got[0].err, ErrIsDirectory)
			} else {
				for _, v := range got {
					assert.NoError(t, v.err, v.path)
				}
			}
		})
	}
}

func TestWalk_RootSymlinkFollowed(t *testing.T) {
	root := makeTree(t)
	link := filepath.Join(root, "link.txt")
	got := collect(t, []string{link}, RecurseDirs)
	assert.Equal(t, []visited{{path: link}}, got)
}

func TestWalk_OrderAndStdin(t *testing.T) {
	root := makeTree(t)
	a := filepath.Join(root, "a.txt")
	c := filepath.Join(root, "b", "c.txt")
	got := collect(t, []string{c, StdinName, a}, RecurseNone)
	assert.Equal(t, []string{c, StdinName, a}, paths(got))
}

func TestWalk_Errors(t *testing.T) {
	root := t.TempDir()
	missing := filepath.Join(root, "missing")
	got := collect(t, []string{missing, "", "bad\x00name"}, RecurseDirs)
	require.Len(t, got, 3)

	var pe *os.PathError
	assert.ErrorAs(t, got[0].err, &pe)
	assert.ErrorIs(t, got[0].err, os.ErrNotExist)
	assert.ErrorIs(t, got[1].err, ErrEmptyPath)
	assert.ErrorIs(t, got[2].err, ErrNullByte)
}

func TestWalk_Loop(t *testing.T) {
	root := t.TempDir()
	sub := filepath.Join(root, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "f.txt"), nil, 0o600))
	require.NoError(t, os.Symlink("..", filepath.Join(sub, "up")))

	got := collect(t, []string{root}, RecurseSymlinks)
	require.Len(t, got, 2)
	assert.Equal(t, filepath.Join(sub, "f.txt"), got[0].path)
	assert.NoError(t, got[0].err)
	assert.Equal(t, filepath.Join(sub, "up"), got[1].path)
	assert.ErrorIs(t, got[1].err, ErrDirectoryLoop)

	// -r 不跟随链接，也就不会成环
	got = collect(t, []string{root}, RecurseDirs)
	assert.Equal(t, []string{filepath.Join(sub, "f.txt")}, paths(got))
}

func TestWalk_VisitErrorStops(t *testing.T) {
	root := makeTree(t)
	stop := errors.New("stop")
	n := 0
	err := Walk([]string{root}, RecurseDirs, func(string, error) error {
		n++
		return stop
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, n)

	assert.ErrorIs(t, Walk(nil, RecurseDirs, nil), ErrNilVisitor)
}

func TestRecursion_String(t *testing.T) {
	assert.Equal(t, "none", RecurseNone.String())
	assert.Equal(t, "dirs", RecurseDirs.String())
	assert.Equal(t, "symlinks", RecurseSymlinks.String())
}
