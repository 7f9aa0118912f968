// Package gogocodec provides a gRPC codec that routes messages generated by
// gogo protoc through the gogo runtime and everything else through the
// standard protobuf runtime. Both produce identical wire bytes, the split
// only exists because the two runtimes do not share a message interface.
package gogocodec

import (
	"fmt"
	"reflect"
	"strings"

	gogoproto "github.com/gogo/protobuf/proto"
	"google.golang.org/grpc/encoding"
	"google.golang.org/protobuf/proto"
)

const dispatchProtoGenPkgPath = "github.com/parcelops/dispatch/pkg/dispatchpb"

var _ encoding.Codec = (*gogoCodec)(nil)

type gogoCodec struct{}

// NewCodec returns a new gRPC codec.
func NewCodec() encoding.Codec {
	return &gogoCodec{}
}

// Name implements encoding.Codec.
func (c *gogoCodec) Name() string {
	return "proto"
}

// Marshal implements encoding.Codec.
func (c *gogoCodec) Marshal(v any) ([]byte, error) {
	if useGogo(v) {
		return gogoproto.Marshal(v.(gogoproto.Message))
	}
	if msg, ok := v.(proto.Message); ok {
		return proto.Marshal(msg)
	}
	return nil, fmt.Errorf("unsupported marshal type %T", v)
}

// Unmarshal implements encoding.Codec.
func (c *gogoCodec) Unmarshal(data []byte, v any) error {
	if useGogo(v) {
		return gogoproto.Unmarshal(data, v.(gogoproto.Message))
	}
	if msg, ok := v.(proto.Message); ok {
		return proto.Unmarshal(data, msg)
	}
	return fmt.Errorf("unsupported unmarshal type %T", v)
}

// useGogo reports whether the message was generated by gogo protoc, which is
// the case for everything under pkg/dispatchpb. Generated code from either
// runtime satisfies the gogo Message interface, so the package path is the
// only reliable discriminator.
func useGogo(v any) bool {
	t := reflect.TypeOf(v)
	if t == nil || t.Kind() != reflect.Ptr {
		return false
	}
	return strings.HasPrefix(t.Elem().PkgPath(), dispatchProtoGenPkgPath)
}
