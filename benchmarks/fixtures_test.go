package benchmarks_test

import (
	"bytes"
	"fmt"
	"strconv"
)

const (
	hugeN = 10000
	hugeK = 8
)

// generateHugeJSONArray returns a JSON array of objects of the form:
// [{"id":"obj_0","name":"n0","age":0,"active":true,"meta":{"score":0.5},"k0":"v0_0",...}, ...]
func generateHugeJSONArray(numObjects int, extraFields int) []byte {
	var buf bytes.Buffer
	buf.Grow(numObjects * (64 + extraFields*16))
	buf.WriteByte('[')
	for i := 0; i < numObjects; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `{"id":"obj_%d","name":"n%d","age":%d,"active":%t,"meta":{"score":%d.5}`, i, i, i, i%2 == 0, i)
		for k := 0; k < extraFields; k++ {
			fmt.Fprintf(&buf, `,"k%d":"v%d_%d"`, k, i, k)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return buf.Bytes()
}

// generateWideSchema returns a draft-07 schema with numProps properties, each
// referencing one of a handful of definitions, plus a tuple and a dependency
// for every tenth property.
func generateWideSchema(numProps int) []byte {
	var buf bytes.Buffer
	buf.WriteString(`{"$schema":"http://json-schema.org/draft-07/schema#","$id":"https://example.com/wide.json","type":"object","properties":{`)
	for i := 0; i < numProps; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		name := "p" + strconv.Itoa(i)
		switch i % 4 {
		case 0:
			fmt.Fprintf(&buf, `%q:{"type":"string","minLength":1,"pattern":"^[a-z]+$","format":"email"}`, name)
		case 1:
			fmt.Fprintf(&buf, `%q:{"type":["integer","null"],"minimum":0,"exclusiveMaximum":1e6}`, name)
		case 2:
			fmt.Fprintf(&buf, `%q:{"$ref":"#/definitions/d%d"}`, name, i%5)
		default:
			fmt.Fprintf(&buf, `%q:{"items":[{"type":"string"},{"enum":[1,"a",null]}],"additionalItems":false}`, name)
		}
	}
	buf.WriteString(`},"dependencies":{`)
	for i := 0; i < numProps; i += 10 {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `"p%d":["p%d"]`, i, i+1)
	}
	buf.WriteString(`},"definitions":{`)
	for i := 0; i < 5; i++ {
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, `"d%d":{"type":"object","required":["id"],"properties":{"id":{"type":"string"}},"additionalProperties":{"not":{"type":"null"}}}`, i)
	}
	buf.WriteString(`},"required":["p0"]}`)
	return buf.Bytes()
}

func smallObjectJSON() []byte { return []byte(`{"id":"u_1","name":"alice","tags":["a","b"],"score":1.5}`) }
