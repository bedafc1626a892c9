package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	logging "github.com/ipfs/go-log/v2"

	"github.com/akalin/gfnum/errorcode"
	"github.com/akalin/gfnum/factor"
	"github.com/akalin/gfnum/gf"
)

var log = logging.Logger("gfnum")

func usage(name string) string {
	name = filepath.Base(name)
	return fmt.Sprintf(`
Usage:
  %s [p(air)] [-log-level L]
      reads two elements "v p l" from stdin and prints their sum,
      differences, product and factorizations
  %s f(actor) [-workers N] [-seed S] [-log-level L] n...
      prints the factorization of each n

`, name, name)
}

func setLogLevel(level string) error {
	for _, name := range []string{"gfnum", "factor"} {
		if err := logging.SetLogLevel(name, level); err != nil {
			return err
		}
	}
	return nil
}

// runPair reads two elements and prints a+b, a-b, b-a, a*b and both
// factorization lines.
func runPair(args []string, stdin io.Reader, stdout, stderr io.Writer) errorcode.Errorcode {
	flags := flag.NewFlagSet("pair", flag.ContinueOnError)
	flags.SetOutput(stderr)
	logLevel := flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil || flags.NArg() != 0 {
		return errorcode.InvalidCommandLineArguments
	}
	if err := setLogLevel(*logLevel); err != nil {
		fmt.Fprintf(stderr, "Invalid log level: %s\n", err)
		return errorcode.InvalidCommandLineArguments
	}

	var a, b gf.Element
	if _, err := fmt.Fscan(stdin, &a, &b); err != nil {
		fmt.Fprintf(stderr, "Read error: %s\n", err)
		if code := errorcode.FromError(err); code != errorcode.LogicError {
			return code
		}
		return errorcode.InvalidInput
	}
	log.Debugf("read %v and %v", a, b)

	if !a.Field().Equal(b.Field()) {
		fmt.Fprintf(stderr, "Field mismatch: %v vs %v\n", a.Field(), b.Field())
		return errorcode.FieldMismatch
	}

	results := make([]gf.Element, 0, 4)
	for _, op := range []func() (gf.Element, error){
		func() (gf.Element, error) { return a.Plus(b) },
		func() (gf.Element, error) { return a.Minus(b) },
		func() (gf.Element, error) { return b.Minus(a) },
		func() (gf.Element, error) { return a.Times(b) },
	} {
		r, err := op()
		if err != nil {
			fmt.Fprintf(stderr, "Arithmetic error: %s\n", err)
			return errorcode.FromError(err)
		}
		results = append(results, r)
	}
	for _, r := range results {
		fmt.Fprintln(stdout, r)
	}
	fmt.Fprintln(stdout, a.FactorString())
	fmt.Fprintln(stdout, b.FactorString())
	return errorcode.Success
}

// runFactor factors its arguments concurrently and prints one line
// per argument, in argument order.
func runFactor(ctx context.Context, args []string, stdout, stderr io.Writer) errorcode.Errorcode {
	flags := flag.NewFlagSet("factor", flag.ContinueOnError)
	flags.SetOutput(stderr)
	workers := flags.Int("workers", factor.DefaultWorkers(), "number of concurrent factorizations")
	seed := flags.Int64("seed", 0, "random seed for the cycle search (0 means time-seeded)")
	logLevel := flags.String("log-level", "warn", "log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil || flags.NArg() == 0 {
		return errorcode.InvalidCommandLineArguments
	}
	if err := setLogLevel(*logLevel); err != nil {
		fmt.Fprintf(stderr, "Invalid log level: %s\n", err)
		return errorcode.InvalidCommandLineArguments
	}

	nums := make([]int64, flags.NArg())
	for i, arg := range flags.Args() {
		n, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(stderr, "Invalid number %q: %s\n", arg, err)
			return errorcode.InvalidInput
		}
		nums[i] = n
	}

	var opts []factor.Option
	if *seed != 0 {
		opts = append(opts, factor.WithSeed(*seed))
	}
	results, err := factor.New(opts...).FactorAll(ctx, nums, *workers)
	if err != nil {
		fmt.Fprintf(stderr, "Factor error: %s\n", err)
		return errorcode.FromError(err)
	}
	for i, n := range nums {
		fmt.Fprintln(stdout, formatFactors(n, results[i]))
	}
	return errorcode.Success
}

// formatFactors matches gf.Element.FactorString for raw integers,
// which may fall outside any field.
func formatFactors(n int64, factors []int64) string {
	parts := make([]string, len(factors))
	for i, p := range factors {
		parts[i] = strconv.FormatInt(p, 10)
	}
	if len(parts) == 0 {
		parts = []string{strconv.FormatInt(n, 10), "1"}
	}
	return strconv.FormatInt(n, 10) + "=" + strings.Join(parts, "*")
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) errorcode.Errorcode {
	name := args[0]
	args = args[1:]

	cmd := "pair"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd = args[0]
		args = args[1:]
	}

	switch strings.ToLower(cmd) {
	case "p":
		fallthrough
	case "pair":
		return runPair(args, stdin, stdout, stderr)

	case "f":
		fallthrough
	case "factor":
		code := runFactor(ctx, args, stdout, stderr)
		if code == errorcode.InvalidCommandLineArguments {
			fmt.Fprint(stderr, usage(name))
		}
		return code

	default:
		fmt.Fprint(stderr, usage(name))
		return errorcode.InvalidCommandLineArguments
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args, os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(int(code))
}
