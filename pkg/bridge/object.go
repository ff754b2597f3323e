package bridge

import (
	"bytes"
	"fmt"
	"io"

	json "github.com/nspcc-dev/go-ordered-json"
)

// Object is a decoded engine response. It preserves the field order of the
// response and is never modified after decoding: accessors hand out copies.
// Nested objects are kept as json.OrderedObject and numbers as json.Number.
type Object struct {
	members json.OrderedObject
}

func NewObject(members json.OrderedObject) Object {
	return Object{members: cloneMembers(members)}
}

// DecodeObject parses raw JSON which must hold an object.
func DecodeObject(raw []byte) (Object, error) {
	d := json.NewDecoder(bytes.NewReader(raw))
	d.UseOrderedObject()
	d.UseNumber()

	var v interface{}
	if err := d.Decode(&v); err != nil {
		return Object{}, NewDecodeError("", err.Error())
	}

	var trailing interface{}
	if err := d.Decode(&trailing); err != io.EOF {
		return Object{}, NewDecodeError("", "trailing data after the result")
	}

	members, ok := v.(json.OrderedObject)
	if !ok {
		return Object{}, NewDecodeError("", fmt.Sprintf("expected object, got %s", kind(v)))
	}

	return Object{members: members}, nil
}

// Get returns a copy of the value of the key. Duplicated keys resolve to the last one.
func (o Object) Get(key string) (interface{}, bool) {
	for i := len(o.members) - 1; i >= 0; i-- {
		if o.members[i].Key == key {
			return cloneValue(o.members[i].Value), true
		}
	}

	return nil, false
}

func (o Object) Keys() []string {
	keys := make([]string, 0, len(o.members))
	for _, member := range o.members {
		keys = append(keys, member.Key)
	}

	return keys
}

func (o Object) Len() int {
	return len(o.members)
}

func (o Object) MarshalJSON() ([]byte, error) {
	if len(o.members) == 0 {
		return []byte("{}"), nil
	}

	return json.Marshal(o.members)
}

// Require returns the value of a required key.
func (o Object) Require(key string) (interface{}, error) {
	v, ok := o.Get(key)
	if !ok {
		return nil, NewDecodeError(key, "missing")
	}

	return v, nil
}

func (o Object) GetString(key string) (string, error) {
	v, err := o.Require(key)
	if err != nil {
		return "", err
	}

	s, ok := v.(string)
	if !ok {
		return "", NewDecodeError(key, fmt.Sprintf("expected string, got %s", kind(v)))
	}

	return s, nil
}

func (o Object) GetObject(key string) (Object, error) {
	v, err := o.Require(key)
	if err != nil {
		return Object{}, err
	}

	return asObject(key, v)
}

// GetOptionalObject is like GetObject but treats a missing or null key as absent.
func (o Object) GetOptionalObject(key string) (Object, bool, error) {
	v, ok := o.Get(key)
	if !ok || v == nil {
		return Object{}, false, nil
	}

	obj, err := asObject(key, v)
	if err != nil {
		return Object{}, false, err
	}

	return obj, true, nil
}

func (o Object) GetArray(key string) ([]interface{}, error) {
	v, err := o.Require(key)
	if err != nil {
		return nil, err
	}

	arr, ok := v.([]interface{})
	if !ok {
		return nil, NewDecodeError(key, fmt.Sprintf("expected array, got %s", kind(v)))
	}

	return arr, nil
}

func (o Object) GetStringSlice(key string) ([]string, error) {
	arr, err := o.GetArray(key)
	if err != nil {
		return nil, err
	}

	res := make([]string, 0, len(arr))
	for i, item := range arr {
		s, ok := item.(string)
		if !ok {
			return nil, NewDecodeError(fmt.Sprintf("%s[%d]", key, i), fmt.Sprintf("expected string, got %s", kind(item)))
		}
		res = append(res, s)
	}

	return res, nil
}

func asObject(key string, v interface{}) (Object, error) {
	members, ok := v.(json.OrderedObject)
	if !ok {
		return Object{}, NewDecodeError(key, fmt.Sprintf("expected object, got %s", kind(v)))
	}

	return Object{members: members}, nil
}

func kind(v interface{}) string {
	switch v.(type) {
	case nil:
		return "null"
	case json.OrderedObject:
		return "object"
	case []interface{}:
		return "array"
	case string:
		return "string"
	case json.Number, float64:
		return "number"
	case bool:
		return "bool"
	default:
		return fmt.Sprintf("%T", v)
	}
}

func cloneMembers(members json.OrderedObject) json.OrderedObject {
	if members == nil {
		return nil
	}

	res := make(json.OrderedObject, len(members))
	for i, member := range members {
		res[i] = json.Member{Key: member.Key, Value: cloneValue(member.Value)}
	}

	return res
}

func cloneValue(v interface{}) interface{} {
	switch v := v.(type) {
	case json.OrderedObject:
		return cloneMembers(v)
	case []interface{}:
		res := make([]interface{}, len(v))
		for i, item := range v {
			res[i] = cloneValue(item)
		}
		return res
	default:
		return v
	}
}
