// Package emit serializes an entity.Model back to Part 21 text.
package emit

import (
	"bufio"
	"io"
	"strconv"

	"github.com/arolek/stepfuse/internal/entity"
)

// Write serializes m as Part 21 text to w: header, then DATA in
// ascending id order, then the trailer. Emission is deterministic —
// two calls on an equal Model produce byte-identical output.
func Write(m *entity.Model, w io.Writer) error {
	bw := bufio.NewWriter(w)

	if _, err := bw.WriteString("ISO-10303-21;\nHEADER;\n"); err != nil {
		return wrapIOError(err, "writing header preamble")
	}
	for _, h := range m.Header {
		if _, err := bw.WriteString(formatValue(h) + ";\n"); err != nil {
			return wrapIOError(err, "writing header entry")
		}
	}
	if _, err := bw.WriteString("ENDSEC;\nDATA;\n"); err != nil {
		return wrapIOError(err, "writing data preamble")
	}

	for _, id := range m.SortedIDs() {
		rec := m.Data[id]
		line, err := formatRecord(rec)
		if err != nil {
			return err
		}
		if _, err := bw.WriteString(line + "\n"); err != nil {
			return wrapIOError(err, "writing record")
		}
	}

	if _, err := bw.WriteString("ENDSEC;\nEND-ISO-10303-21;\n"); err != nil {
		return wrapIOError(err, "writing trailer")
	}

	if err := bw.Flush(); err != nil {
		return wrapIOError(err, "flushing output")
	}
	return nil
}

func formatRecord(rec entity.Record) (string, error) {
	idStr := "#" + strconv.FormatInt(int64(rec.ID), 10)

	if rec.Complex {
		// rec.Args[0] is a List of Typed constructors with no outer
		// type name: "#id=(T1(...)T2(...)...);"
		var b []byte
		b = append(b, idStr...)
		b = append(b, "=("...)
		for _, t := range rec.Args[0].List {
			b = append(b, formatValue(t)...)
		}
		b = append(b, ");"...)
		return string(b), nil
	}

	return idStr + "=" + rec.Type + "(" + formatArgs(rec.Args) + ");", nil
}
