// Package yamlbon converts between YAML documents and bon values.  YAML is
// the human-readable side of the bon command and of the codec golden tests.
//
// Nodes map to values as follows:
//
//	!!int, !!float   Int, Float
//	!!str            String
//	!!binary         Binary (base64)
//	!!bool, !!null   the atoms true, false and null
//	!atom name       Atom
//	!!seq            Array
//	!list [...]      List
//	!tuple [...]     Tuple
//	!set [...]       Set
//	!!map            Object if every key is a string, otherwise Map
//	!map {...}       Map
package yamlbon

import (
	"bytes"
	"encoding/base64"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/brimdata/bon"
	"github.com/brimdata/bon/bonerr"
	"gopkg.in/yaml.v3"
)

const (
	TagAtom  = "!atom"
	TagList  = "!list"
	TagTuple = "!tuple"
	TagSet   = "!set"
	TagMap   = "!map"
)

var ErrEmptyDocument = errors.New("empty YAML document")

// Unmarshal converts the single YAML document in b to a value.
func Unmarshal(b []byte) (bon.Value, error) {
	var n yaml.Node
	if err := yaml.Unmarshal(b, &n); err != nil {
		return nil, bonerr.E(bonerr.BadSyntax, err)
	}
	if n.Kind == 0 {
		return nil, ErrEmptyDocument
	}
	return FromNode(&n)
}

// UnmarshalAll converts each document of a YAML stream to a value.
func UnmarshalAll(r io.Reader) ([]bon.Value, error) {
	dec := yaml.NewDecoder(r)
	var vals []bon.Value
	for {
		var n yaml.Node
		if err := dec.Decode(&n); err != nil {
			if err == io.EOF {
				return vals, nil
			}
			return nil, bonerr.E(bonerr.BadSyntax, err)
		}
		v, err := FromNode(&n)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
}

// FromNode converts a YAML node tree to a value.
func FromNode(n *yaml.Node) (bon.Value, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		return FromNode(n.Content[0])
	case yaml.AliasNode:
		return FromNode(n.Alias)
	case yaml.ScalarNode:
		return fromScalar(n)
	case yaml.SequenceNode:
		vals, err := fromNodes(n.Content)
		if err != nil {
			return nil, err
		}
		switch n.ShortTag() {
		case "!!seq":
			return bon.Array(vals), nil
		case TagList:
			return bon.NewList(vals...), nil
		case TagTuple:
			return bon.NewTuple(vals...), nil
		case TagSet:
			return bon.NewSet(vals...), nil
		}
	case yaml.MappingNode:
		return fromMapping(n)
	}
	return nil, unknownTag(n)
}

func fromNodes(nodes []*yaml.Node) ([]bon.Value, error) {
	vals := make([]bon.Value, 0, len(nodes))
	for _, n := range nodes {
		v, err := FromNode(n)
		if err != nil {
			return nil, err
		}
		vals = append(vals, v)
	}
	return vals, nil
}

func fromScalar(n *yaml.Node) (bon.Value, error) {
	switch n.ShortTag() {
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 0, 64)
		if err != nil {
			return nil, bonerr.E(bonerr.BadSyntax, "line %d: %w", n.Line, err)
		}
		return bon.Int(i), nil
	case "!!float":
		return parseFloat(n)
	case "!!str", "!!timestamp":
		return bon.String(n.Value), nil
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(n.Value), ""))
		if err != nil {
			return nil, bonerr.E(bonerr.BadSyntax, "line %d: %w", n.Line, err)
		}
		return bon.NewBinary(b), nil
	case "!!bool":
		return bon.NewAtom(strings.ToLower(n.Value)), nil
	case "!!null":
		return bon.NewAtom("null"), nil
	case TagAtom:
		return bon.NewAtom(n.Value), nil
	}
	return nil, unknownTag(n)
}

func parseFloat(n *yaml.Node) (bon.Value, error) {
	var f float64
	switch strings.ToLower(strings.TrimLeft(n.Value, "+")) {
	case ".inf":
		f = math.Inf(1)
	case "-.inf":
		f = math.Inf(-1)
	case ".nan":
		f = math.NaN()
	default:
		var err error
		f, err = strconv.ParseFloat(strings.ReplaceAll(n.Value, "_", ""), 64)
		if err != nil {
			return nil, bonerr.E(bonerr.BadSyntax, "line %d: %w", n.Line, err)
		}
	}
	v, err := bon.NewFloat(f)
	if err != nil {
		return nil, bonerr.E(bonerr.NotANumber, "line %d: %s is not a finite number", n.Line, n.Value)
	}
	return v, nil
}

func fromMapping(n *yaml.Node) (bon.Value, error) {
	tag := n.ShortTag()
	if tag != "!!map" && tag != TagMap {
		return nil, unknownTag(n)
	}
	entries := make([]bon.Entry, 0, len(n.Content)/2)
	stringKeys := true
	for k := 0; k+1 < len(n.Content); k += 2 {
		key, err := FromNode(n.Content[k])
		if err != nil {
			return nil, err
		}
		val, err := FromNode(n.Content[k+1])
		if err != nil {
			return nil, err
		}
		if _, ok := key.(bon.String); !ok {
			stringKeys = false
		}
		entries = append(entries, bon.Entry{Key: key, Value: val})
	}
	if tag == TagMap || !stringKeys {
		return bon.NewMap(entries...), nil
	}
	obj := make(bon.Object, len(entries))
	for _, e := range entries {
		obj[string(e.Key.(bon.String))] = e.Value
	}
	return obj, nil
}

func unknownTag(n *yaml.Node) error {
	return bonerr.E(bonerr.UnknownType, "line %d: no value for YAML tag %q", n.Line, n.ShortTag())
}

// Marshal returns v as a YAML document.
func Marshal(v bon.Value) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Write writes v to w as a YAML document.  Successive calls on the same
// writer do not separate documents; use an Encoder for streams.
func Write(w io.Writer, v bon.Value) error {
	enc := NewEncoder(w)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

// Encoder writes values as a stream of YAML documents.
type Encoder struct {
	enc *yaml.Encoder
}

func NewEncoder(w io.Writer) *Encoder {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	return &Encoder{enc}
}

func (e *Encoder) Encode(v bon.Value) error {
	n, err := ToNode(v)
	if err != nil {
		return err
	}
	return e.enc.Encode(n)
}

func (e *Encoder) Close() error {
	return e.enc.Close()
}

// ToNode converts a value to a YAML node tree that FromNode converts back
// to an equal value.
func ToNode(v bon.Value) (*yaml.Node, error) {
	switch v := v.(type) {
	case bon.Int:
		return scalar("!!int", strconv.FormatInt(int64(v), 10)), nil
	case bon.Float:
		return scalar("!!float", strconv.FormatFloat(v.Float64(), 'g', -1, 64)), nil
	case bon.Atom:
		return scalar(TagAtom, v.Name()), nil
	case bon.String:
		return scalar("!!str", string(v)), nil
	case bon.Binary:
		return scalar("!!binary", base64.StdEncoding.EncodeToString(v.Bytes())), nil
	case bon.Tuple:
		return sequence(TagTuple, v.Fields(), yaml.FlowStyle)
	case *bon.List:
		return sequence(TagList, v.Values(), 0)
	case bon.Array:
		return sequence("!!seq", v, 0)
	case *bon.Set:
		return sequence(TagSet, v.Values(), 0)
	case bon.Object:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, key := range v.Keys() {
			val, err := ToNode(v[key])
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, scalar("!!str", key), val)
		}
		return n, nil
	case *bon.Map:
		n := &yaml.Node{Kind: yaml.MappingNode, Tag: TagMap}
		for _, e := range v.Entries() {
			key, err := ToNode(e.Key)
			if err != nil {
				return nil, err
			}
			val, err := ToNode(e.Value)
			if err != nil {
				return nil, err
			}
			n.Content = append(n.Content, key, val)
		}
		return n, nil
	}
	return nil, bonerr.E(bonerr.UnknownType, "cannot convert %T to YAML", v)
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func sequence(tag string, vals []bon.Value, style yaml.Style) (*yaml.Node, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Tag: tag, Style: style}
	for _, v := range vals {
		child, err := ToNode(v)
		if err != nil {
			return nil, err
		}
		n.Content = append(n.Content, child)
	}
	return n, nil
}
