package compare

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"sigs.k8s.io/yaml"

	"pagedlist.dev/listdiff/bindings/go/diff"
	"pagedlist.dev/listdiff/cli/internal/snapshot"
)

type EncodingType string

const (
	EncodingTable  EncodingType = "table"
	EncodingYAML   EncodingType = "yaml"
	EncodingJSON   EncodingType = "json"
	EncodingNDJSON EncodingType = "ndjson"
)

var allEncodings = []EncodingType{
	EncodingTable,
	EncodingYAML,
	EncodingJSON,
	EncodingNDJSON,
}

func Encodings[T string | EncodingType]() []T {
	out := make([]T, len(allEncodings))
	for i, e := range allEncodings {
		out[i] = T(e)
	}
	return out
}

// Report is the machine readable result of a comparison.
type Report struct {
	OldSize    int               `json:"oldSize"`
	NewSize    int               `json:"newSize"`
	Edits      []EditRecord      `json:"edits"`
	Operations []OperationRecord `json:"operations"`
}

// EditRecord is an edit with the slots it refers to.
type EditRecord struct {
	Op       string `json:"op"`
	OldIndex int    `json:"oldIndex"`
	NewIndex int    `json:"newIndex"`
	Changed  bool   `json:"changed,omitempty"`
	Old      string `json:"old,omitempty"`
	New      string `json:"new,omitempty"`
}

type OperationRecord struct {
	Op       string `json:"op"`
	Position int    `json:"position"`
	Count    int    `json:"count"`
	To       *int   `json:"to,omitempty"`
}

func newReport(res *diff.Result, oldSlots, newSlots []snapshot.Slot) Report {
	report := Report{
		OldSize:    res.OldSize(),
		NewSize:    res.NewSize(),
		Edits:      []EditRecord{},
		Operations: []OperationRecord{},
	}
	for _, e := range res.Edits() {
		rec := EditRecord{Op: e.Op.String(), OldIndex: e.OldIndex, NewIndex: e.NewIndex, Changed: e.Changed}
		if e.OldIndex >= 0 {
			rec.Old = oldSlots[e.OldIndex].String()
		}
		if e.NewIndex >= 0 {
			rec.New = newSlots[e.NewIndex].String()
		}
		report.Edits = append(report.Edits, rec)
	}
	for _, op := range res.Operations() {
		rec := OperationRecord{Op: op.Op.String(), Position: op.Position, Count: op.Count}
		if op.Op == diff.Move {
			to := op.To
			rec.To = &to
		}
		report.Operations = append(report.Operations, rec)
	}
	return report
}

func encodeReport(output EncodingType, report Report) (io.Reader, error) {
	var data []byte
	var err error
	switch output {
	case EncodingJSON:
		data, err = json.MarshalIndent(report, "", "  ")
		data = append(data, '\n')
	case EncodingNDJSON:
		data, err = encodeOperationsAsNDJSON(report.Operations)
	case EncodingYAML:
		data, err = yaml.Marshal(report)
	case EncodingTable:
		data = encodeEditsAsTable(report.Edits)
	default:
		err = fmt.Errorf("unknown output format: %q", output)
	}
	if err != nil {
		return nil, fmt.Errorf("encoding comparison as %q failed: %w", output, err)
	}
	return bytes.NewReader(data), nil
}

// encodeOperationsAsNDJSON writes one operation per line.
func encodeOperationsAsNDJSON(ops []OperationRecord) ([]byte, error) {
	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	for _, op := range ops {
		if err := encoder.Encode(op); err != nil {
			return nil, fmt.Errorf("encoding operation failed: %w", err)
		}
	}
	return buf.Bytes(), nil
}

func encodeEditsAsTable(edits []EditRecord) []byte {
	var buf bytes.Buffer
	t := table.NewWriter()
	t.SetOutputMirror(&buf)
	t.AppendHeader(table.Row{"Op", "Old", "New", "Old Item", "New Item"})
	index := func(i int) string {
		if i < 0 {
			return "-"
		}
		return strconv.Itoa(i)
	}
	for _, e := range edits {
		t.AppendRow(table.Row{e.Op, index(e.OldIndex), index(e.NewIndex), e.Old, e.New})
	}
	style := table.StyleLight
	style.Options.DrawBorder = false
	t.SetStyle(style)
	t.Render()
	return buf.Bytes()
}
