package guard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, dir, name string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o644))
}

func TestCheck(t *testing.T) {
	tests := []struct {
		name   string
		files  []string
		dirs   []string
		digits int
		want   Result
	}{
		{
			name:   "empty directory",
			digits: 3,
			want:   Result{Status: Clear},
		},
		{
			name:   "numbered png",
			files:  []string{"042.png"},
			digits: 3,
			want:   Result{Status: Collision, Path: "042.png"},
		},
		{
			name:   "archive wins over numbered files",
			files:  []string{"001.jpeg", "Pepper_and_Carrot.cbr"},
			digits: 3,
			want:   Result{Status: Collision, Path: "Pepper_and_Carrot.cbr"},
		},
		{
			name:   "lowest index first",
			files:  []string{"900.jpeg", "007.png", "010.jpeg"},
			digits: 3,
			want:   Result{Status: Collision, Path: "007.png"},
		},
		{
			name:   "jpeg before png at same index",
			files:  []string{"005.png", "005.jpeg"},
			digits: 3,
			want:   Result{Status: Collision, Path: "005.jpeg"},
		},
		{
			name:   "wrong width ignored",
			files:  []string{"0042.png", "42.png"},
			digits: 3,
			want:   Result{Status: Clear},
		},
		{
			name:   "zero index ignored",
			files:  []string{"000.png"},
			digits: 3,
			want:   Result{Status: Clear},
		},
		{
			name:   "other types ignored",
			files:  []string{"001.gif", "001.jpg", "001.PNG", "notes.txt"},
			digits: 3,
			want:   Result{Status: Clear},
		},
		{
			name:   "directory named like a page",
			dirs:   []string{"003.png"},
			digits: 3,
			want:   Result{Status: Clear},
		},
		{
			name:   "archive directory is not a file",
			dirs:   []string{"Pepper_and_Carrot.cbr"},
			digits: 3,
			want:   Result{Status: Clear},
		},
		{
			name:   "two digit width",
			files:  []string{"99.jpeg", "001.png"},
			digits: 2,
			want:   Result{Status: Collision, Path: "99.jpeg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			for _, f := range tt.files {
				touch(t, dir, f)
			}
			for _, d := range tt.dirs {
				require.NoError(t, os.Mkdir(filepath.Join(dir, d), 0o755))
			}

			got := Check(dir, "Pepper_and_Carrot", tt.digits)

			want := tt.want
			if want.Path != "" {
				want.Path = filepath.Join(dir, want.Path)
			}
			assert.Equal(t, want, got)
			assert.Equal(t, want.Status == Collision, got.Blocked())
		})
	}
}

func TestCheck_DoesNotModify(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "001.png")
	touch(t, dir, "readme.txt")

	before, err := os.ReadDir(dir)
	require.NoError(t, err)

	Check(dir, "comic", 3)

	after, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, len(before), len(after))
}

func TestCheck_MissingDirectory(t *testing.T) {
	got := Check(filepath.Join(t.TempDir(), "nope"), "comic", 3)
	assert.Equal(t, Clear, got.Status)
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "001.png")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub"), 0o755))

	assert.True(t, FileExists(dir, "001.png"))
	assert.False(t, FileExists(dir, "002.png"))
	assert.False(t, FileExists(dir, "sub"))
}

func TestResultString(t *testing.T) {
	assert.Equal(t, "clear", Result{}.String())
	assert.Equal(t, "collision: a/001.png", Result{Status: Collision, Path: "a/001.png"}.String())
}
