package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

// PollutantReading is a single pollutant concentration.
type PollutantReading struct {
	Code  string
	Value float64
}

// Pollutants is a pollutant-code to concentration mapping that keeps the order
// its entries were recorded in. Dominant-pollutant tie-breaking depends on it.
type Pollutants []PollutantReading

// PollutantsFromMap builds Pollutants from an unordered map, sorting by code so
// the result is the same on every run.
func PollutantsFromMap(m map[string]float64) Pollutants {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	p := make(Pollutants, 0, len(codes))
	for _, code := range codes {
		p = append(p, PollutantReading{Code: code, Value: m[code]})
	}
	return p
}

// Get returns the concentration for code.
func (p Pollutants) Get(code string) (float64, bool) {
	for _, r := range p {
		if r.Code == code {
			return r.Value, true
		}
	}
	return 0, false
}

// MarshalJSON encodes the readings as a JSON object in recorded order.
func (p Pollutants) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, r := range p {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(r.Code)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(r.Value)
		if err != nil {
			return nil, fmt.Errorf("pollutant %q: %w", r.Code, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping its key order. A repeated key
// overwrites the earlier value in its original position.
func (p *Pollutants) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode pollutants: %w", err)
	}
	if tok == nil {
		*p = nil
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return errors.New("decode pollutants: expected object")
	}

	out := Pollutants{}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode pollutants: %w", err)
		}
		code, ok := keyTok.(string)
		if !ok {
			return errors.New("decode pollutants: expected string key")
		}
		var value float64
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode pollutant %q: %w", code, err)
		}
		out = out.set(code, value)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode pollutants: %w", err)
	}

	*p = out
	return nil
}

// UnmarshalYAML decodes a YAML mapping, keeping its key order.
func (p *Pollutants) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("decode pollutants: line %d: expected mapping", node.Line)
	}

	out := make(Pollutants, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		code := node.Content[i].Value
		var value float64
		if err := node.Content[i+1].Decode(&value); err != nil {
			return fmt.Errorf("decode pollutant %q: %w", code, err)
		}
		out = out.set(code, value)
	}

	*p = out
	return nil
}

func (p Pollutants) set(code string, value float64) Pollutants {
	for i := range p {
		if p[i].Code == code {
			p[i].Value = value
			return p
		}
	}
	return append(p, PollutantReading{Code: code, Value: value})
}
