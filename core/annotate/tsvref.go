// core/annotate/tsvref.go
package annotate

import (
	"bufio"
	"fmt"
	"strings"

	"crypticsj-core/junction"
	"crypticsj-core/table"
)

// LoadTSV reads a reference junction list: one junction per line as
// "chrom donor acceptor strand" (whitespace separated, '#' comments).
func LoadTSV(path string) ([]junction.Key, error) {
	rc, err := table.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rc.Close() }()

	var list []junction.Key
	sc := bufio.NewScanner(rc)
	sc.Buffer(make([]byte, 0, 64<<10), 1<<20)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		f := strings.Fields(line)
		if len(f) != 4 {
			return nil, fmt.Errorf("%s:%d expected 4 fields (chrom donor acceptor strand), got %d", path, ln, len(f))
		}
		var donor, acceptor int
		if _, err := fmt.Sscan(f[1], &donor); err != nil {
			return nil, fmt.Errorf("%s:%d bad donor: %v", path, ln, err)
		}
		if _, err := fmt.Sscan(f[2], &acceptor); err != nil {
			return nil, fmt.Errorf("%s:%d bad acceptor: %v", path, ln, err)
		}
		strand, ok := junction.ParseStrand(f[3])
		if !ok {
			return nil, fmt.Errorf("%s:%d bad strand %q", path, ln, f[3])
		}
		list = append(list, junction.Key{Chrom: f[0], Donor: donor, Acceptor: acceptor, Strand: strand})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return list, nil
}
