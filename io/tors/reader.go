package tors

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/BurntSushi/torsmatch/selection"
	"github.com/BurntSushi/torsmatch/torsion"
)

var fixedColumns = []string{"chain", "number", "icode", "name", "class"}

// Reader reads a torsion angle table.
type Reader struct {
	buf     *bufio.Scanner
	catalog torsion.Catalog
	line    int
}

// NewReader creates a reader that resolves angle column names with the
// default catalog.
func NewReader(r io.Reader) *Reader {
	return NewCatalogReader(r, torsion.DefaultCatalog())
}

// NewCatalogReader creates a reader that resolves angle column names with
// the catalog given. Columns naming angles outside the catalog are an error.
func NewCatalogReader(r io.Reader, cat torsion.Catalog) *Reader {
	return &Reader{
		buf:     bufio.NewScanner(r),
		catalog: cat,
	}
}

func (r *Reader) errorf(format string, v ...interface{}) error {
	return fmt.Errorf("Line %d: %s", r.line, fmt.Sprintf(format, v...))
}

// next returns the fields of the next non-empty, non-comment line, or nil
// at the end of the input.
func (r *Reader) next() ([]string, error) {
	for r.buf.Scan() {
		r.line++
		line := strings.TrimSpace(r.buf.Text())
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if strings.ContainsRune(line, '\t') {
			fields := strings.Split(line, "\t")
			for i := range fields {
				fields[i] = strings.TrimSpace(fields[i])
			}
			return fields, nil
		}
		return strings.Fields(line), nil
	}
	return nil, r.buf.Err()
}

// ReadSelection reads the whole table as a selection with the given name.
func (r *Reader) ReadSelection(name string) (*selection.Selection, error) {
	header, err := r.next()
	if err != nil {
		return nil, err
	}
	if header == nil {
		return nil, fmt.Errorf("No header found in torsion table '%s'.", name)
	}
	types, err := r.parseHeader(header)
	if err != nil {
		return nil, err
	}

	var residues []selection.Residue
	for {
		fields, err := r.next()
		if err != nil {
			return nil, err
		}
		if fields == nil {
			break
		}
		res, err := r.parseResidue(fields, types)
		if err != nil {
			return nil, err
		}
		residues = append(residues, res)
	}
	return selection.New(name, residues)
}

func (r *Reader) parseHeader(fields []string) ([]torsion.AngleType, error) {
	if len(fields) < len(fixedColumns) {
		return nil, r.errorf("Expected at least %d header columns but got %d.",
			len(fixedColumns), len(fields))
	}
	for i, col := range fixedColumns {
		if strings.ToLower(fields[i]) != col {
			return nil, r.errorf("Expected column %d to be '%s' but got '%s'.",
				i+1, col, fields[i])
		}
	}

	types := make([]torsion.AngleType, 0, len(fields)-len(fixedColumns))
	for _, col := range fields[len(fixedColumns):] {
		t, ok := r.catalog.Lookup(col)
		if !ok {
			return nil, r.errorf("Unknown torsion angle column '%s'.", col)
		}
		types = append(types, t)
	}
	return types, nil
}

func (r *Reader) parseResidue(
	fields []string, types []torsion.AngleType) (selection.Residue, error) {

	var res selection.Residue
	if want := len(fixedColumns) + len(types); len(fields) != want {
		return res, r.errorf("Expected %d columns but got %d.",
			want, len(fields))
	}

	num, err := strconv.ParseInt(fields[1], 10, 32)
	if err != nil {
		return res, r.errorf("Could not parse residue number '%s'.", fields[1])
	}
	var icode byte
	switch icodeStr := fields[2]; {
	case icodeStr == "-":
	case len(icodeStr) == 1:
		icode = icodeStr[0]
	default:
		return res, r.errorf("Invalid insertion code '%s'.", icodeStr)
	}
	class, err := torsion.ParseClass(fields[4])
	if err != nil {
		return res, r.errorf("%s", err)
	}

	values := make(map[torsion.AngleType]float64, len(types))
	for i, t := range types {
		deg, err := parseAngle(fields[len(fixedColumns)+i])
		if err != nil {
			return res, r.errorf("Could not parse %s value '%s'.",
				t, fields[len(fixedColumns)+i])
		}
		values[t] = deg
	}

	res.ResidueID = selection.ResidueID{
		Chain:  fields[0],
		Number: int(num),
		ICode:  icode,
		Name:   fields[3],
	}
	res.Angles = torsion.NewResidueAngles(class, values)
	return res, nil
}

func parseAngle(s string) (float64, error) {
	if s == "-" || strings.EqualFold(s, "nan") {
		return math.NaN(), nil
	}
	return strconv.ParseFloat(s, 64)
}
