package main

import (
	// Packages
	mcpserver "github.com/fia-training/fia-mcp/pkg/mcpserver"
	version "github.com/fia-training/fia-mcp/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type RunCmd struct {
	Addr string `name:"addr" default:":8080" help:"Address to listen on"`
}

type StdioCmd struct{}

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	serviceName = "FIA MCP Server"
)

////////////////////////////////////////////////////////////////////////////////
// COMMANDS

func (cmd *RunCmd) Run(globals *Globals) error {
	server, err := mcpserver.New(serviceName, version.Version(), globals.toolkit)
	if err != nil {
		return err
	}
	return server.ListenAndServe(globals.ctx, cmd.Addr)
}

func (cmd *StdioCmd) Run(globals *Globals) error {
	server, err := mcpserver.New(serviceName, version.Version(), globals.toolkit)
	if err != nil {
		return err
	}
	return server.RunStdio(globals.ctx)
}
