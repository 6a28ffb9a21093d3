package iohttp

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/privacyui/pupdb/pkg/errcode"
)

// StartError creates an error for a server that failed to listen.
func StartError(addr string, err error) error {
	msg := "Cannot start API server on <em>%s</em>"
	vars := []any{addr}

	return &gn.Error{
		Code: errcode.ServerStartError,
		Msg:  msg,
		Vars: vars,
		Err:  fmt.Errorf("cannot start server on %s: %w", addr, err),
	}
}
