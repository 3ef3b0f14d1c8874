package ljparse

import (
	"github.com/latticeforge/ljson/ljerr"
	"github.com/latticeforge/ljson/ljvalue"
)

// parseArray recognizes a JSON array (spec §4.5). Elements are staged
// in a plain Go slice rather than the scratch buffer (see package doc);
// on success the array is finalized with capacity 2x its size, matching
// the reference implementation's "one size's worth of headroom" choice
// (spec §9).
func (p *parser) parseArray() (*ljvalue.Value, error) {
	p.pos++ // consume '['
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		return nil, ljerr.New(ljerr.InvalidValue, p.pos, "nesting depth exceeds limit")
	}
	defer func() { p.depth-- }()

	p.skipWhitespace()
	v := &ljvalue.Value{}
	if p.pos < len(p.data) && p.data[p.pos] == ']' {
		p.pos++
		v.SetArray(0)
		return v, nil
	}

	var elems []ljvalue.Value
	for {
		e, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		elems = append(elems, *e)

		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, ljerr.New(ljerr.MissCommaOrSquareBracket, p.pos, "missing comma or ']'")
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
			p.skipWhitespace()
		case ']':
			p.pos++
			v.SetArray(len(elems) * 2)
			for i := range elems {
				*v.PushBack() = elems[i]
			}
			return v, nil
		default:
			return nil, ljerr.New(ljerr.MissCommaOrSquareBracket, p.pos, "missing comma or ']'")
		}
	}
}

// parseObject recognizes a JSON object (spec §4.6). Members are staged
// in a plain Go slice. Duplicate keys are not deduplicated on parse —
// every member is kept in order, matching the reference's verbatim
// memcpy of staged members (spec §3); FindIndex/FindValue resolve a
// duplicate key to its first occurrence at lookup time.
func (p *parser) parseObject() (*ljvalue.Value, error) {
	p.pos++ // consume '{'
	p.depth++
	if p.depth > p.maxDepth {
		p.depth--
		return nil, ljerr.New(ljerr.InvalidValue, p.pos, "nesting depth exceeds limit")
	}
	defer func() { p.depth-- }()

	p.skipWhitespace()
	v := &ljvalue.Value{}
	if p.pos < len(p.data) && p.data[p.pos] == '}' {
		p.pos++
		v.SetObject(0)
		return v, nil
	}

	var members []ljvalue.Member
	for {
		if p.pos >= len(p.data) || p.data[p.pos] != '"' {
			return nil, ljerr.New(ljerr.MissKey, p.pos, "expected member key")
		}
		key, err := p.parseStringRaw()
		if err != nil {
			return nil, ljerr.New(ljerr.MissKey, p.pos, "invalid member key")
		}

		p.skipWhitespace()
		if p.pos >= len(p.data) || p.data[p.pos] != ':' {
			return nil, ljerr.New(ljerr.MissColon, p.pos, "expected ':' after member key")
		}
		p.pos++
		p.skipWhitespace()

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		members = append(members, ljvalue.Member{Key: key, Val: *val})

		p.skipWhitespace()
		if p.pos >= len(p.data) {
			return nil, ljerr.New(ljerr.MissCommaOrCurlyBracket, p.pos, "missing comma or '}'")
		}
		switch p.data[p.pos] {
		case ',':
			p.pos++
			p.skipWhitespace()
		case '}':
			p.pos++
			v.SetObject(len(members) * 2)
			for i := range members {
				v.AppendMember(members[i].Key, members[i].Val)
			}
			return v, nil
		default:
			return nil, ljerr.New(ljerr.MissCommaOrCurlyBracket, p.pos, "missing comma or '}'")
		}
	}
}
