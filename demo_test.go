package main

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listDemoOutput = "Starting Names using for each loop:\n" +
	"Tamara | Lela | Daniel | Shane | \n" +
	"Test for find function:\n" +
	"Daniel | Tamara | Lela | Shane | \n" +
	"Display for inserting in front as well as a normal for loop:\n" +
	"Another new one | New Name | Daniel | Tamara | Lela | Shane | \n"

const arrayDemoOutput = "Starting list values using for loop:\n" +
	"45 | 23 | 12 | 10 | 13 | \n" +
	"Display after find function using for each loop:\n" +
	"12 | 45 | 23 | 10 | 13 | \n"

// newTestCLI 创建输出写入缓冲区的命令，并在测试结束时恢复默认日志
func newTestCLI(t *testing.T, args ...string) (cmd *cobra.Command, stdout, stderr *bytes.Buffer) {
	t.Helper()
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	stdout, stderr = new(bytes.Buffer), new(bytes.Buffer)
	cmd = NewCLI()
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	if args == nil {
		// cobra 在 args 为 nil 时会读取 os.Args
		args = []string{}
	}
	cmd.SetArgs(args)
	return cmd, stdout, stderr
}

func TestListDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ListDemo(&buf))
	assert.Equal(t, listDemoOutput, buf.String())
}

func TestArrayDemo(t *testing.T) {
	for _, capacity := range []int{0, 5, 100} {
		var buf bytes.Buffer
		require.NoError(t, ArrayDemo(&buf, capacity))
		assert.Equal(t, arrayDemoOutput, buf.String(), "capacity %d", capacity)
	}
}

func TestCacheDemo(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CacheDemo(&buf))

	out := buf.String()
	assert.Contains(t, out, "read file1.txt: content of file 1")
	assert.Contains(t, out, "=== after reading file5.txt ===\nkey: file5.txt\nkey: file1.txt\nkey: file4.txt\nkey: file3.txt\n")
	assert.Contains(t, out, "file2.txt is not cached (evicted)")
	assert.Contains(t, out, "skewed access (capacity=3, 60 reads): lru hits=29, fifo hits=")
}

func TestSkewedAccess(t *testing.T) {
	lruHits, fifoHits, err := skewedAccess(3, 60)
	require.NoError(t, err)
	assert.Equal(t, 29, lruHits)
	assert.Less(t, fifoHits, lruHits)

	_, _, err = skewedAccess(0, 10)
	assert.Error(t, err)
}

func TestCLI(t *testing.T) {
	cases := map[string]struct {
		args   []string
		expect string
	}{
		"root":  {args: nil, expect: listDemoOutput + arrayDemoOutput},
		"demo":  {args: []string{"demo"}, expect: listDemoOutput + arrayDemoOutput},
		"list":  {args: []string{"list"}, expect: listDemoOutput},
		"array": {args: []string{"array", "--capacity", "1"}, expect: arrayDemoOutput},
	}

	for name, tt := range cases {
		t.Run(name, func(t *testing.T) {
			cmd, stdout, _ := newTestCLI(t, tt.args...)

			require.NoError(t, cmd.Execute())
			assert.Equal(t, tt.expect, stdout.String())
		})
	}
}

func TestCLICache(t *testing.T) {
	cmd, stdout, stderr := newTestCLI(t, "cache", "--verbose")

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "lru hits=29")
	assert.Contains(t, stderr.String(), `msg="lru cache evict" key=file2.txt capacity=4`)
}

func TestCLIVerbose(t *testing.T) {
	t.Setenv("SELFADJUST_DEBUG", "")

	cmd, _, stderr := newTestCLI(t, "array", "-v")

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stderr.String(), `msg="array find" key=12 found=true`)
}

func TestCLINegativeCapacity(t *testing.T) {
	cmd, _, _ := newTestCLI(t, "array", "--capacity=-1")

	assert.ErrorContains(t, cmd.Execute(), "capacity must not be negative")
}

func TestCLICapacityBounds(t *testing.T) {
	cmd, _, _ := newTestCLI(t, "array", "--capacity=1048577")
	assert.ErrorContains(t, cmd.Execute(), "capacity must not exceed 1048576")

	t.Setenv("SELFADJUST_CAPACITY", "18446744073709551615")
	cmd, stdout, _ := newTestCLI(t, "array")
	require.NoError(t, cmd.Execute())
	assert.Equal(t, arrayDemoOutput, stdout.String())
}

func TestCLIHelpListsEnvironment(t *testing.T) {
	cmd, stdout, _ := newTestCLI(t, "--help")

	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), "SELFADJUST_CAPACITY")
	assert.Contains(t, stdout.String(), "SELFADJUST_DEBUG")
}
