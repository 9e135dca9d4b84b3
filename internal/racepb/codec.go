package racepb

import (
	proto "github.com/golang/protobuf/proto"
	"google.golang.org/grpc/encoding"
)

// legacyCodec marshals messages via github.com/golang/protobuf/proto, which
// resolves a message's wire layout from its "protobuf:..." struct tags at
// first use (the same legacy-message reflection path that lets code written
// before protoc-gen-go's APIv2 rewrite keep working). Registering it under
// the name "proto" overrides grpc-go's built-in codec of the same name,
// which otherwise requires the newer ProtoReflect-based proto.Message.
type legacyCodec struct{}

func (legacyCodec) Marshal(v any) ([]byte, error) {
	m, ok := v.(proto.Message)
	if !ok {
		return nil, errNotProtoMessage{v}
	}
	return proto.Marshal(m)
}

func (legacyCodec) Unmarshal(data []byte, v any) error {
	m, ok := v.(proto.Message)
	if !ok {
		return errNotProtoMessage{v}
	}
	return proto.Unmarshal(data, m)
}

func (legacyCodec) Name() string { return "proto" }

type errNotProtoMessage struct{ v any }

func (e errNotProtoMessage) Error() string {
	return "racepb: value does not implement the legacy proto.Message interface"
}

func init() {
	encoding.RegisterCodec(legacyCodec{})
}
