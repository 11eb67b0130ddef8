package tors

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/BurntSushi/torsmatch/selection"
	"github.com/BurntSushi/torsmatch/torsion"
)

// Write writes sel as a torsion angle table with one column for each of the
// angle types given.
func Write(w io.Writer, sel *selection.Selection, types []torsion.AngleType) error {
	buf := bufio.NewWriter(w)

	header := append([]string(nil), fixedColumns...)
	for _, t := range types {
		header = append(header, t.Name())
	}
	fmt.Fprintf(buf, "# %s\n", sel.Label())
	fmt.Fprintln(buf, strings.Join(header, "\t"))

	fields := make([]string, len(header))
	for i := 0; i < sel.Len(); i++ {
		res := sel.At(i)
		icode := "-"
		if res.ICode != 0 && res.ICode != ' ' {
			icode = string(res.ICode)
		}
		fields[0] = res.Chain
		fields[1] = strconv.Itoa(res.Number)
		fields[2] = icode
		fields[3] = res.Name
		fields[4] = res.Angles.Class().String()
		for k, t := range types {
			v := res.Angles.Get(t)
			if v.Defined {
				fields[len(fixedColumns)+k] = strconv.FormatFloat(v.Degrees, 'f', 3, 64)
			} else {
				fields[len(fixedColumns)+k] = "-"
			}
		}
		fmt.Fprintln(buf, strings.Join(fields, "\t"))
	}
	return buf.Flush()
}
