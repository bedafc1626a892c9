package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akalin/gfnum/errorcode"
)

func runForTest(t *testing.T, stdin string, args ...string) (errorcode.Errorcode, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	code := run(context.Background(), append([]string{"gfnum"}, args...), strings.NewReader(stdin), &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestPair(t *testing.T) {
	code, out, _ := runForTest(t, "12 13 1\n4 13 1\n")
	require.Equal(t, errorcode.Success, code)
	require.Equal(t, strings.Join([]string{
		"3 GF(13**1)",
		"8 GF(13**1)",
		"5 GF(13**1)",
		"9 GF(13**1)",
		"12=2*2*3",
		"4=2*2",
		"",
	}, "\n"), out)
}

func TestPairExplicitCommand(t *testing.T) {
	code, out, _ := runForTest(t, "4 5 1 4 5 1", "pair", "-log-level", "error")
	require.Equal(t, errorcode.Success, code)
	require.True(t, strings.HasPrefix(out, "3 GF(5**1)\n0 GF(5**1)\n0 GF(5**1)\n1 GF(5**1)\n"), out)
	require.True(t, strings.HasSuffix(out, "4=2*2\n4=2*2\n"), out)
}

func TestPairFieldMismatch(t *testing.T) {
	code, out, errOut := runForTest(t, "3 5 1\n3 5 2\n")
	require.Equal(t, errorcode.FieldMismatch, code)
	require.Empty(t, out)
	require.Contains(t, errOut, "Field mismatch")
}

func TestPairInvalidField(t *testing.T) {
	code, _, _ := runForTest(t, "3 4 1\n3 5 1\n")
	require.Equal(t, errorcode.InvalidField, code)
}

func TestPairBadInput(t *testing.T) {
	code, _, _ := runForTest(t, "3 five 1\n")
	require.Equal(t, errorcode.InvalidInput, code)

	code, _, _ = runForTest(t, "3 5\n")
	require.Equal(t, errorcode.InvalidInput, code)
}

func TestFactor(t *testing.T) {
	code, out, _ := runForTest(t, "", "factor", "-workers", "2", "-seed", "3", "12", "13", "1", "1024")
	require.Equal(t, errorcode.Success, code)
	require.Equal(t, "12=2*2*3\n13=13*1\n1=1*1\n1024=2*2*2*2*2*2*2*2*2*2\n", out)
}

func TestFactorBadArguments(t *testing.T) {
	code, _, errOut := runForTest(t, "", "factor")
	require.Equal(t, errorcode.InvalidCommandLineArguments, code)
	require.Contains(t, errOut, "Usage:")

	code, _, _ = runForTest(t, "", "f", "twelve")
	require.Equal(t, errorcode.InvalidInput, code)

	code, _, _ = runForTest(t, "", "factor", "-log-level", "loud", "12")
	require.Equal(t, errorcode.InvalidCommandLineArguments, code)
}

func TestUnknownCommand(t *testing.T) {
	code, _, errOut := runForTest(t, "", "bogus")
	require.Equal(t, errorcode.InvalidCommandLineArguments, code)
	require.Contains(t, errOut, "Usage:")
}

func TestFormatFactors(t *testing.T) {
	require.Equal(t, "15=3*5", formatFactors(15, []int64{3, 5}))
	require.Equal(t, "-4=-4*1", formatFactors(-4, []int64{}))
}
