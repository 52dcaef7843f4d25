// Package schemadoc models JSON values and decodes them with the checks a
// document loader needs.
//
// - Value is an immutable JSON value. Objects keep member order and numbers
// keep their literal text, so a decoded document re-encodes byte for byte.
// Equality is structural: object order is ignored and numbers compare exactly.
// - Issues is the error model: every failure carries a JSON Pointer, a stable
// code and a translated message (see package i18n).
// - Source abstracts the token stream. JSON comes from a swappable driver
// (encoding/json by default, go-json after importing package source); YAML
// comes from package source/yaml. Duplicate keys, depth and size are enforced
// the same way for every Source.
//
// The JSON Schema document model lives in package jsonschema.
//
// Typical usage:
//
//	v, err := schemadoc.ParseJSON(data, schemadoc.ParseOpt{
//		Strictness: schemadoc.Strictness{OnDuplicateKey: schemadoc.Error},
//	})
//	if iss, ok := schemadoc.AsIssues(err); ok {
//		for _, is := range iss {
//			fmt.Println(is.Path, is.Code, is.Message)
//		}
//	}
package schemadoc
