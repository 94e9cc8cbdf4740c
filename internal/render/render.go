// Package render turns decoded command payloads into text, JSON, YAML or
// CBOR for the command line.
package render

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/tturner/pmbus/internal/pmbus"
	"github.com/tturner/pmbus/internal/units"
)

// Format selects an output encoding.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
	FormatCBOR Format = "cbor"
)

// ParseFormat validates an output format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatText, FormatJSON, FormatYAML, FormatCBOR:
		return f, nil
	case "":
		return FormatText, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want text, json, yaml or cbor)", s)
	}
}

// Field is one decoded field.
type Field struct {
	Name  string   `json:"name" yaml:"name" cbor:"1,keyasint"`
	Desc  string   `json:"desc,omitempty" yaml:"desc,omitempty" cbor:"2,keyasint,omitempty"`
	Pos   int      `json:"pos" yaml:"pos" cbor:"3,keyasint"`
	Width int      `json:"width" yaml:"width" cbor:"4,keyasint"`
	Kind  string   `json:"kind" yaml:"kind" cbor:"5,keyasint"`
	Raw   uint64   `json:"raw" yaml:"raw" cbor:"6,keyasint"`
	Value string   `json:"value" yaml:"value" cbor:"7,keyasint"`
	Real  *float32 `json:"real,omitempty" yaml:"real,omitempty" cbor:"8,keyasint,omitempty"`
	Unit  string   `json:"unit,omitempty" yaml:"unit,omitempty" cbor:"9,keyasint,omitempty"`
}

// Decoded is a command payload with every field interpreted.
type Decoded struct {
	Command string  `json:"command" yaml:"command" cbor:"1,keyasint"`
	Code    string  `json:"code" yaml:"code" cbor:"2,keyasint"`
	Payload string  `json:"payload" yaml:"payload" cbor:"3,keyasint"`
	Fields  []Field `json:"fields" yaml:"fields" cbor:"4,keyasint"`

	raw  uint64
	bits int
}

// Build interprets d into a Decoded record.
func Build(d *pmbus.Data, p pmbus.Provider) (*Decoded, error) {
	cmd := d.Command()
	out := &Decoded{
		Command: cmd.Name,
		Code:    fmt.Sprintf("0x%02X", cmd.Code),
		Payload: hex.EncodeToString(d.Bytes()),
	}
	out.raw, out.bits = d.Raw()

	err := d.Interpret(p, func(f *pmbus.Field, v pmbus.Value) {
		rf := Field{
			Name:  f.Name,
			Pos:   int(f.Pos),
			Width: int(f.Width),
			Kind:  f.Kind.String(),
			Raw:   v.Raw(),
			Value: v.String(),
		}
		if f.Desc != "" {
			rf.Desc = f.Desc
		}
		if v.Kind() == pmbus.ValueFloat {
			x := v.Float()
			rf.Real = &x
			if v.Unit() != units.None {
				rf.Unit = v.Unit().Symbol()
			}
		}
		out.Fields = append(out.Fields, rf)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Write encodes d in the given format.
func Write(w io.Writer, d *Decoded, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	case FormatCBOR:
		return encMode.NewEncoder(w).Encode(d)
	default:
		return Text(w, d)
	}
}

var encMode cbor.EncMode

func init() {
	var err error
	opts := cbor.EncOptions{
		Sort:        cbor.SortCanonical,
		IndefLength: cbor.IndefLengthForbidden,
	}
	encMode, err = opts.EncMode()
	if err != nil {
		panic(fmt.Sprintf("failed to create CBOR encoder mode: %v", err))
	}
}

// DecodeCBOR reads back a record written with FormatCBOR.
func DecodeCBOR(data []byte) (*Decoded, error) {
	var d Decoded
	if err := cbor.Unmarshal(data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
