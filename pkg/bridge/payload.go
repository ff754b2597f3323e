package bridge

import (
	json "github.com/nspcc-dev/go-ordered-json"
)

// Payload is a request body for the engine. Keys are serialized in the order
// they were first set; a key that was never set is absent from the wire.
type Payload struct {
	fields json.OrderedObject
}

func NewPayload() *Payload {
	return &Payload{}
}

// Set adds the key or replaces its value in place.
func (p *Payload) Set(key string, value interface{}) *Payload {
	for i := range p.fields {
		if p.fields[i].Key == key {
			p.fields[i].Value = value
			return p
		}
	}

	p.fields = append(p.fields, json.Member{Key: key, Value: value})
	return p
}

func (p *Payload) Get(key string) (interface{}, bool) {
	for _, member := range p.fields {
		if member.Key == key {
			return member.Value, true
		}
	}

	return nil, false
}

func (p *Payload) Has(key string) bool {
	_, ok := p.Get(key)
	return ok
}

func (p *Payload) Keys() []string {
	keys := make([]string, 0, len(p.fields))
	for _, member := range p.fields {
		keys = append(keys, member.Key)
	}

	return keys
}

func (p *Payload) Len() int {
	return len(p.fields)
}

func (p *Payload) MarshalJSON() ([]byte, error) {
	if len(p.fields) == 0 {
		return []byte("{}"), nil
	}

	return json.Marshal(p.fields)
}
