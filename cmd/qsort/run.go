package main

import (
	"bufio"
	"cmp"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/convox/logger"
	"github.com/ddirect/sequence/arraylist"
	"github.com/ddirect/sequence/quicksort"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

const maxLineSize = 1 << 20

type line struct {
	text string
	key  string
	num  float64
}

func run(o options, in io.Reader, out, logOut io.Writer) error {
	log := logger.NewWriter("ns=qsort", logOut)

	l, err := arraylist.NewWithCapacity[line](o.capacity)
	if err != nil {
		return log.Error(err)
	}

	if err := load(l, o, in); err != nil {
		return log.At("load").Error(err)
	}
	log.At("load").Logf("lines=%s capacity=%s", humanize.Comma(int64(l.Len())), humanize.Comma(int64(l.Cap())))

	sortLog := log.At("sort").Start()
	if err := quicksort.Func(l, compareFunc(o), 0, l.Len()-1); err != nil {
		return sortLog.Error(err)
	}
	sortLog.Logf("lines=%s numeric=%t reverse=%t", humanize.Comma(int64(l.Len())), o.numeric, o.reverse)

	w := bufio.NewWriter(out)
	for v := range l.Values() {
		if _, err := fmt.Fprintln(w, v.text); err != nil {
			return log.At("write").Error(errors.WithStack(err))
		}
	}
	if err := w.Flush(); err != nil {
		return log.At("write").Error(errors.WithStack(err))
	}

	log.Success()
	return nil
}

func load(l *arraylist.List[line], o options, in io.Reader) error {
	sc := bufio.NewScanner(in)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for n := 1; sc.Scan(); n++ {
		v := line{text: sc.Text()}
		v.key = field(v.text, o.key)
		if o.numeric {
			num, err := strconv.ParseFloat(v.key, 64)
			if err != nil {
				return errors.Errorf("line %d: invalid number %q", n, v.key)
			}
			v.num = num
		}
		l.Append(v)
	}
	return errors.WithStack(sc.Err())
}

// field returns the n-th whitespace separated field of s, counting from 1, or s itself when n is 0.
func field(s string, n int) string {
	if n == 0 {
		return s
	}
	f := strings.Fields(s)
	if n > len(f) {
		return ""
	}
	return f[n-1]
}

func compareFunc(o options) func(a, b line) int {
	var c func(a, b line) int
	if o.numeric {
		c = func(a, b line) int {
			return cmp.Compare(a.num, b.num)
		}
	} else {
		c = func(a, b line) int {
			return strings.Compare(a.key, b.key)
		}
	}
	if o.reverse {
		return func(a, b line) int {
			return c(b, a)
		}
	}
	return c
}
