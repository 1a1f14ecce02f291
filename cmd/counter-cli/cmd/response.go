// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
)

type Response struct {
	// The index of the step that generated this response.
	ID int `json:"id"`
	// The counter after the step has completed.
	Result *Result `json:"result,omitempty"`
	// The error message if available.
	Error string `json:"error,omitempty"`
}

type Result struct {
	Name    string `json:"name"`
	Counter uint32 `json:"counter"`
	Msg     string `json:"msg,omitempty"`
}

func (r *Response) Print(w io.Writer) {
	jsonBytes, err := json.Marshal(r)
	if err != nil {
		fmt.Fprintln(w, `{"error": "failed to marshal response"}`)
		return
	}
	fmt.Fprintln(w, string(jsonBytes))
}

// Err prints [r] with [err] attached and hands [err] back so the command
// exits non-zero.
func (r *Response) Err(w io.Writer, err error) error {
	r.Error = err.Error()
	r.Print(w)
	return err
}
