package xmldoc

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNoAssemblyName marks a document whose root lacks an assembly/name element.
var ErrNoAssemblyName = errors.New("missing assembly/name element")

// Assembly holds every member parsed from one XML documentation export.
// Each file is processed independently; there are no cross-file relationships.
type Assembly struct {
	Name    string
	Members []Member // document order
}

type xmlDoc struct {
	XMLName  xml.Name `xml:"doc"`
	Assembly struct {
		Name string `xml:"name"`
	} `xml:"assembly"`
	Members []xmlMember `xml:"members>member"`
}

type xmlMember struct {
	Name       string         `xml:"name,attr"`
	Summary    *xmlText       `xml:"summary"`
	Remarks    *xmlText       `xml:"remarks"`
	Example    *xmlFragment   `xml:"example"`
	Params     []xmlParam     `xml:"param"`
	Returns    *xmlText       `xml:"returns"`
	Exceptions []xmlException `xml:"exception"`
}

// xmlText captures the direct character data of an element.
type xmlText struct {
	Text string `xml:",chardata"`
}

// xmlFragment keeps the raw inner XML so nested markup (inline code markers,
// fenced code regions) can be recovered.
type xmlFragment struct {
	Inner string `xml:",innerxml"`
}

type xmlParam struct {
	Name string `xml:"name,attr"`
	Text string `xml:",chardata"`
}

type xmlException struct {
	Cref string `xml:"cref,attr"`
	Text string `xml:",chardata"`
}

// ParseFile loads one XML documentation export. A file that is not well-formed
// XML, or whose root lacks assembly/name, is rejected as a whole; the caller
// counts it as failed and continues with the next file.
func ParseFile(path string) (*Assembly, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse parses XML documentation bytes into an Assembly.
func Parse(data []byte) (*Assembly, error) {
	var doc xmlDoc
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("malformed XML: %w", err)
	}
	if strings.TrimSpace(doc.Assembly.Name) == "" {
		return nil, ErrNoAssemblyName
	}

	asm := &Assembly{Name: strings.TrimSpace(doc.Assembly.Name)}
	for _, xm := range doc.Members {
		kind, qualified, ok := ParseRef(xm.Name)
		if !ok {
			continue
		}
		asm.Members = append(asm.Members, newMember(kind, qualified, &xm))
	}
	return asm, nil
}

func newMember(kind Kind, qualified string, xm *xmlMember) Member {
	m := Member{Kind: kind, Name: qualified}

	if xm.Summary != nil {
		m.rawSummaryLen = len(strings.TrimSpace(xm.Summary.Text))
		m.Summary = cleanSummary(xm.Summary.Text)
	} else {
		m.Summary = NoDescription
	}
	if xm.Remarks != nil {
		m.Remarks = CleanText(xm.Remarks.Text)
	}
	if xm.Example != nil {
		m.Example = CleanText(flattenXML(xm.Example.Inner)) + ExtractCodeBlocks(xm.Example.Inner)
	}
	if xm.Returns != nil {
		m.Returns = CleanText(xm.Returns.Text)
	}
	for _, p := range xm.Params {
		if p.Name == "" {
			continue
		}
		m.Params = append(m.Params, Param{Name: p.Name, Description: CleanText(p.Text)})
	}
	for _, e := range xm.Exceptions {
		typ := strings.TrimPrefix(e.Cref, "T:")
		desc := CleanText(e.Text)
		if typ == "" || desc == "" {
			continue
		}
		m.Exceptions = append(m.Exceptions, Exception{Type: typ, Description: desc})
	}
	return m
}

// QualityStats summarizes the documentation density of one assembly.
type QualityStats struct {
	Total      int
	Documented int
}

// Quality counts members whose summary exceeds minSummaryLen characters.
func (a *Assembly) Quality(minSummaryLen int) QualityStats {
	q := QualityStats{Total: len(a.Members)}
	for i := range a.Members {
		if a.Members[i].SubstantiallyDocumented(minSummaryLen) {
			q.Documented++
		}
	}
	return q
}

// LowQuality reports whether the documented ratio falls below minRatio.
// The boundary is strict: 29/100 at a 0.30 threshold is low quality, 30/100
// is not. Empty files are not flagged.
func (q QualityStats) LowQuality(minRatio float64) bool {
	if q.Total == 0 {
		return false
	}
	return float64(q.Documented)/float64(q.Total) < minRatio
}
