// SPDX-License-Identifier: MIT

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/docopt/docopt-go"
	"github.com/stretchr/testify/require"
)

func runArgs(t *testing.T, stdin string, argv ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	if argv == nil {
		argv = []string{} // docopt substitutes os.Args[1:] (the test binary's flags) for nil
	}
	parser := &docopt.Parser{HelpHandler: docopt.NoHelpHandler, OptionsFirst: true}
	code := run(parser, argv, false, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_OneShot(t *testing.T) {
	t.Parallel()
	code, out, errOut := runArgs(t, "", "add", "2", "3+4i")
	require.Equal(t, 0, code, errOut)
	require.Equal(t, "5 + 4i\n", out)

	code, out, _ = runArgs(t, "", "-k", "multiply", "2", "5 cm")
	require.Equal(t, 0, code)
	require.Equal(t, "10 cm\tUnit\n", out)

	code, out, _ = runArgs(t, "", "subtract", "1", "-2")
	require.Equal(t, 0, code)
	require.Equal(t, "3\n", out)
}

func TestRun_Batch(t *testing.T) {
	t.Parallel()
	input := strings.Join([]string{
		"# comment",
		"",
		"multiply([[1, 2], [3, 4]], [[1, 2], [3, 4]])",
		"dotMultiply([[1, 2], [3, 4]], [[1, 2], [3, 4]])",
		"add(1/3, 1/6)",
		"noSuchOp(1)",
		"equal(1.5d, 1.5)",
		"add(1.5d, 3/2)",
	}, "\n")
	code, out, errOut := runArgs(t, input)
	require.Equal(t, 1, code)
	require.Equal(t, "[[7, 10], [15, 22]]\n[[1, 4], [9, 16]]\n1/2\ntrue\n", out)
	require.Contains(t, errOut, "noSuchOp")
	require.Contains(t, errOut, "add: unsupported type")
}

func TestRun_Options(t *testing.T) {
	t.Parallel()
	code, out, _ := runArgs(t, "", "--predictable", "sqrt", "-4")
	require.Equal(t, 0, code)
	require.Equal(t, "NaN\n", out)

	code, out, _ = runArgs(t, "", "sqrt", "-4")
	require.Equal(t, 0, code)
	require.Equal(t, "2i\n", out)

	code, _, errOut := runArgs(t, "", "--digits=40", "add", "1", "2")
	require.Equal(t, 2, code)
	require.Contains(t, errOut, "--digits")

	code, out, _ = runArgs(t, "", "--list")
	require.Equal(t, 0, code)
	require.Contains(t, strings.Split(out, "\n"), "bitAnd")
}
