package jsonschema

import (
	"bytes"
	"context"
	"io"

	"github.com/reoring/schemadoc"
	"github.com/reoring/schemadoc/source/yaml"
)

// Parse reads one document from src and shape-validates it. Parse-level
// warnings (duplicate keys under Warn) are reported through Diag together
// with the decoder's own warnings.
func Parse(ctx context.Context, src schemadoc.Source, opts ...DecodeOpt) (*Schema, Diag, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	opt := lastOpt(opts)
	d := newDecoder(ctx, opt)
	v, warnings, err := schemadoc.DecodeValueWithWarnings(ctx, src, opt.Parse)
	d.diag.add(warnings...)
	if err != nil {
		return nil, d.diag, err
	}
	return d.run(v)
}

// ParseBytes parses a JSON schema document held in memory.
func ParseBytes(data []byte, opts ...DecodeOpt) (*Schema, Diag, error) {
	return Parse(context.Background(), schemadoc.JSONBytes(data), opts...)
}

// ParseReader parses a JSON schema document from r. Parse.MaxBytes, when set,
// caps how much of r is read.
func ParseReader(ctx context.Context, r io.Reader, opts ...DecodeOpt) (*Schema, Diag, error) {
	opt := lastOpt(opts)
	if max := opt.Parse.MaxBytes; max > 0 {
		data, err := io.ReadAll(io.LimitReader(r, max+1))
		if err != nil {
			return nil, &simpleDiag{}, schemadoc.AppendIssues(nil, schemadoc.Issue{Code: schemadoc.CodeParseError, Message: err.Error(), Cause: err, Offset: -1})
		}
		if int64(len(data)) > max {
			return nil, &simpleDiag{}, schemadoc.AppendIssues(nil, schemadoc.Issue{Code: schemadoc.CodeTruncated, Message: "max bytes exceeded", Offset: max})
		}
		r = bytes.NewReader(data)
	}
	return Parse(ctx, schemadoc.JSONReader(r), opts...)
}

// ParseYAML parses a single-document YAML schema. Issues from the YAML layer
// carry line and column numbers.
func ParseYAML(data []byte, opts ...DecodeOpt) (*Schema, Diag, error) {
	return Parse(context.Background(), yaml.NewBytes(data), opts...)
}
