package commands

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/josephlewis42/coin/core/vos"
)

var (
	unescapeOctal   = regexp.MustCompile(`\\0[0-7][0-7]?[0-7]?`)
	unescapeHex     = regexp.MustCompile(`\\x[0-9a-fA-F][0-9a-fA-F]?`)
	unescapeReplace = strings.NewReplacer(
		`\n`, "\n", // newline
		`\r`, "\r", // carriage return
		`\t`, "\t", // horizontal tab
		`\\`, `\`, // backslash literal
		`\b`, "\b", // backspace
		`\a`, "\a", // alert
		`\f`, "\f", // form feed
		`\v`, "\v", // vertical tab
	)
)

func unescape(s string) string {
	s = unescapeReplace.Replace(s)
	s = unescapeOctal.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 8, 16)
		if err != nil || out > 0x7f {
			return arg
		}
		return string(rune(out))
	})
	s = unescapeHex.ReplaceAllStringFunc(s, func(arg string) string {
		out, err := strconv.ParseInt(arg[2:], 16, 16)
		if err != nil || out > 0x7f {
			return arg
		}
		return string(rune(out))
	})
	return s
}

// echoText builds what echo prints for args. With escapes on, "\c" ends
// the output right there, trailing newline included.
func echoText(args []string, escapes, newline bool) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteByte(' ')
		}

		if escapes {
			if before, _, found := strings.Cut(arg, `\c`); found {
				sb.WriteString(unescape(before))
				return sb.String()
			}
			arg = unescape(arg)
		}
		sb.WriteString(arg)
	}

	if newline {
		sb.WriteByte('\n')
	}
	return sb.String()
}

// Echo prints its arguments. The interpreter answers "echo $?" itself, every
// other echo line runs this program.
func Echo(proc *vos.Proc) int {
	cmd := &SimpleCommand{
		Use:   "echo [-en] [ARG] ...",
		Short: "Write arguments to standard output.",
	}

	opt := cmd.Flags()
	escapes := opt.Bool('e', "interpret backslash escapes, \\c stops output")
	noNewline := opt.Bool('n', "omit the trailing newline")

	return cmd.Run(proc, func() int {
		fmt.Fprint(proc.Stdout(), echoText(opt.Args(), *escapes, !*noNewline))
		return 0
	})
}

var _ vos.ProcessFunc = Echo

func init() {
	addBinCmd("echo", Echo)
}
