package flagserde

import (
	"context"
	"reflect"
	"time"
)

// Codec provides content-type aware marshaling of whole documents.
// Flag fields inside a document reach the bridge through the per-format
// Field wrappers.
type Codec interface {
	// ContentType returns the MIME type for this codec (e.g., "application/json").
	ContentType() string

	// Marshal encodes v into bytes.
	Marshal(v any) ([]byte, error)

	// Unmarshal decodes data into v.
	Unmarshal(data []byte, v any) error
}

// Encode marshals v with c, wrapping failures in a CodecError.
func Encode[T any](ctx context.Context, c Codec, v T) ([]byte, error) {
	contentType := c.ContentType()
	typeName := reflect.TypeFor[T]().String()

	emitEncodeStart(ctx, contentType, typeName)
	start := time.Now()

	data, err := c.Marshal(v)
	if err != nil {
		err = newCodecError(ErrMarshal, err)
		emitEncodeComplete(ctx, contentType, typeName, 0, time.Since(start), err)
		return nil, err
	}

	emitEncodeComplete(ctx, contentType, typeName, len(data), time.Since(start), nil)
	return data, nil
}

// Decode unmarshals data into a new T with c, wrapping failures in a CodecError.
func Decode[T any](ctx context.Context, c Codec, data []byte) (T, error) {
	contentType := c.ContentType()
	typeName := reflect.TypeFor[T]().String()

	emitDecodeStart(ctx, contentType, typeName, len(data))
	start := time.Now()

	var v T
	if err := c.Unmarshal(data, &v); err != nil {
		err = newCodecError(ErrUnmarshal, err)
		emitDecodeComplete(ctx, contentType, typeName, time.Since(start), err)
		var zero T
		return zero, err
	}

	emitDecodeComplete(ctx, contentType, typeName, time.Since(start), nil)
	return v, nil
}
