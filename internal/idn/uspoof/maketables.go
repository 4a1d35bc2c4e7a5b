//go:build ignore

// maketables generates tables.go from the Unicode security data files
// IdentifierStatus.txt and IdentifierType.txt.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"io"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

var (
	version = flag.String("version", "15.0.0", "Unicode security data version")
	baseURL = flag.String("url", "https://www.unicode.org/Public/security/", "data location; a local directory also works")
	output  = flag.String("output", "tables.go", "output file")
)

func main() {
	flag.Parse()

	allowed := map[rune]bool{}
	parse("IdentifierStatus.txt", func(lo, hi rune, value string) {
		if value == "Allowed" {
			for r := lo; r <= hi; r++ {
				allowed[r] = true
			}
		}
	})

	inclusion := map[rune]bool{}
	parse("IdentifierType.txt", func(lo, hi rune, value string) {
		for _, t := range strings.Fields(value) {
			if t == "Inclusion" {
				for r := lo; r <= hi; r++ {
					inclusion[r] = true
				}
			}
		}
	})

	// Joiners are only valid in context (RFC 5892 CONTEXTJ); keep them out
	// of both sets.
	for _, r := range []rune{0x200C, 0x200D} {
		delete(allowed, r)
		delete(inclusion, r)
	}

	var recommended, included []rune
	for r := range allowed {
		if !inclusion[r] {
			recommended = append(recommended, r)
		}
	}
	for r := range inclusion {
		included = append(included, r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by maketables.go; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package uspoof\n\nimport \"unicode\"\n\n")
	fmt.Fprintf(&buf, "// SecurityDataVersion is the version of the Unicode security data the tables were built from.\n")
	fmt.Fprintf(&buf, "const SecurityDataVersion = %q\n\n", *version)
	writeTable(&buf, "recommendedTable", "holds Identifier_Status=Allowed scalars outside the Inclusion type.", recommended)
	writeTable(&buf, "inclusionTable", "holds scalars of Identifier_Type=Inclusion.", included)

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatalf("format: %v", err)
	}
	if err := os.WriteFile(*output, src, 0o644); err != nil {
		log.Fatal(err)
	}
}

func open(name string) io.ReadCloser {
	loc := strings.TrimSuffix(*baseURL, "/") + "/" + *version + "/" + name
	if !strings.HasPrefix(loc, "http://") && !strings.HasPrefix(loc, "https://") {
		f, err := os.Open(loc)
		if err != nil {
			log.Fatal(err)
		}
		return f
	}
	resp, err := http.Get(loc)
	if err != nil {
		log.Fatal(err)
	}
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("%s: %s", loc, resp.Status)
	}
	return resp.Body
}

// parse calls fn for every "XXXX[..YYYY] ; value # comment" line of name.
func parse(name string, fn func(lo, hi rune, value string)) {
	rc := open(name)
	defer rc.Close()

	scanner := bufio.NewScanner(rc)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		fields := strings.SplitN(line, ";", 2)
		if len(fields) != 2 {
			continue
		}
		lo, hi := parseRange(strings.TrimSpace(fields[0]))
		fn(lo, hi, strings.TrimSpace(fields[1]))
	}
	if err := scanner.Err(); err != nil {
		log.Fatalf("%s: %v", name, err)
	}
}

func parseRange(s string) (rune, rune) {
	lo, hi, found := strings.Cut(s, "..")
	if !found {
		hi = lo
	}
	a, err := strconv.ParseUint(lo, 16, 32)
	if err != nil {
		log.Fatalf("bad code point %q", s)
	}
	b, err := strconv.ParseUint(hi, 16, 32)
	if err != nil {
		log.Fatalf("bad code point %q", s)
	}
	return rune(a), rune(b)
}

func writeTable(w io.Writer, name, doc string, runes []rune) {
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })

	type rng struct{ lo, hi rune }
	var ranges []rng
	for _, r := range runes {
		if n := len(ranges); n > 0 && ranges[n-1].hi+1 == r {
			ranges[n-1].hi = r
			continue
		}
		ranges = append(ranges, rng{r, r})
	}

	var r16, r32 []rng
	for _, rg := range ranges {
		switch {
		case rg.hi <= 0xFFFF:
			r16 = append(r16, rg)
		case rg.lo > 0xFFFF:
			r32 = append(r32, rg)
		default:
			r16 = append(r16, rng{rg.lo, 0xFFFF})
			r32 = append(r32, rng{0x10000, rg.hi})
		}
	}

	latinOffset := 0
	for _, rg := range r16 {
		if rg.hi <= unicode.MaxLatin1 {
			latinOffset++
		}
	}

	fmt.Fprintf(w, "// %s %s\n", name, doc)
	fmt.Fprintf(w, "var %s = &unicode.RangeTable{\n", name)
	fmt.Fprintf(w, "R16: []unicode.Range16{\n")
	for _, rg := range r16 {
		fmt.Fprintf(w, "{0x%04x, 0x%04x, 1},\n", rg.lo, rg.hi)
	}
	fmt.Fprintf(w, "},\n")
	if len(r32) > 0 {
		fmt.Fprintf(w, "R32: []unicode.Range32{\n")
		for _, rg := range r32 {
			fmt.Fprintf(w, "{0x%x, 0x%x, 1},\n", rg.lo, rg.hi)
		}
		fmt.Fprintf(w, "},\n")
	}
	fmt.Fprintf(w, "LatinOffset: %d,\n", latinOffset)
	fmt.Fprintf(w, "}\n\n")
}
