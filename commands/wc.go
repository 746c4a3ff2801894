package commands

import (
	"fmt"
	"io"
	"strconv"
	"unicode"

	"github.com/josephlewis42/coin/core/vos"
)

type wcCount struct {
	bytes int
	lines int
	chars int
	words int
	name  string

	inWord bool
}

func (w *wcCount) Write(data []byte) (int, error) {
	for _, c := range data {
		w.bytes++

		// Continuation bytes of a UTF-8 sequence start with 0b10.
		if c&0b11000000 != 0b10000000 {
			w.chars++
		}

		if c == '\n' {
			w.lines++
		}

		if unicode.IsSpace(rune(c)) {
			w.inWord = false
		} else if !w.inWord {
			w.words++
			w.inWord = true
		}
	}

	return len(data), nil
}

func newWcCount(name string, fd io.Reader) (*wcCount, error) {
	out := &wcCount{name: name}
	if _, err := io.Copy(out, fd); err != nil {
		return nil, err
	}
	return out, nil
}

func (w *wcCount) add(other *wcCount) {
	w.bytes += other.bytes
	w.chars += other.chars
	w.lines += other.lines
	w.words += other.words
}

// Wc implements the POSIX command by the same name.
// https://pubs.opengroup.org/onlinepubs/009695399/utilities/wc.html
func Wc(proc *vos.Proc) int {
	cmd := &SimpleCommand{
		Use:   "wc [-c|-m] [-lw] [FILE...]",
		Short: "Write the number of newlines, words, and bytes contained in each input file to the standard output.",
	}

	opts := cmd.Flags()
	writeLines := opts.Bool('l', "write the number of newlines in each file")
	writeWords := opts.Bool('w', "write the number of words in each file")
	writeBytes := opts.Bool('c', "write the number of bytes in each file")
	writeChars := opts.Bool('m', "write the number of characters in each file")

	return cmd.RunE(proc, func() error {
		args := opts.Args()
		nonePicked := !(*writeLines || *writeWords || *writeBytes || *writeChars)

		var cols []func(*wcCount) string
		if *writeLines || nonePicked {
			cols = append(cols, func(w *wcCount) string { return strconv.Itoa(w.lines) })
		}
		if *writeWords || nonePicked {
			cols = append(cols, func(w *wcCount) string { return strconv.Itoa(w.words) })
		}
		if *writeBytes || nonePicked {
			cols = append(cols, func(w *wcCount) string { return strconv.Itoa(w.bytes) })
		}
		if *writeChars {
			cols = append(cols, func(w *wcCount) string { return strconv.Itoa(w.chars) })
		}
		if len(args) > 0 {
			cols = append(cols, func(w *wcCount) string { return w.name })
		}

		display := func(count *wcCount) {
			for i, col := range cols {
				if i != 0 {
					fmt.Fprint(proc.Stdout(), " ")
				}
				fmt.Fprint(proc.Stdout(), col(count))
			}
			fmt.Fprintln(proc.Stdout())
		}

		if len(args) == 0 {
			count, err := newWcCount("", proc.Stdin())
			if err != nil {
				return err
			}
			display(count)
			return nil
		}

		total := &wcCount{name: "total"}
		for _, name := range args {
			fd, err := proc.Fs.Open(resolve(proc, name))
			if err != nil {
				return err
			}

			count, err := newWcCount(name, fd)
			fd.Close()
			if err != nil {
				return err
			}

			total.add(count)
			display(count)
		}

		if len(args) > 1 {
			display(total)
		}
		return nil
	})
}

var _ vos.ProcessFunc = Wc

func init() {
	addBinCmd("wc", Wc)
}
