// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"fmt"
	"reflect"

	"github.com/near/borsh-go"
)

// Marshal encodes [value] using the borsh layout: fixed width integers are
// little-endian and struct fields are written in declaration order.
//
// [value] must not be a pointer. borsh encodes pointers as optional values
// and would prepend a presence byte.
func Marshal[T any](value T) ([]byte, error) {
	if reflect.ValueOf(value).Kind() == reflect.Ptr {
		return nil, fmt.Errorf("%w: cannot marshal %T", ErrPointerValue, value)
	}
	return borsh.Serialize(value)
}

// UnmarshalPrefix decodes the first [size] bytes of [data] into a new T.
// Anything after [size] is ignored.
func UnmarshalPrefix[T any](data []byte, size int) (*T, error) {
	if len(data) < size {
		return nil, fmt.Errorf("%w: need %d bytes, have %d", ErrInsufficientLength, size, len(data))
	}
	result := new(T)
	if err := borsh.Deserialize(result, data[:size]); err != nil {
		return nil, err
	}
	return result, nil
}
