package main

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	// Packages
	kong "github.com/alecthomas/kong"
	client "github.com/mutablelogic/go-client"
	log "github.com/sirupsen/logrus"

	axcelerate "github.com/fia-training/fia-mcp/pkg/axcelerate"
	tool "github.com/fia-training/fia-mcp/pkg/tool"
	version "github.com/fia-training/fia-mcp/pkg/version"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

type Globals struct {
	// Debugging
	Debug   bool `name:"debug" help:"Enable debug output"`
	Verbose bool `name:"verbose" help:"Enable verbose output"`

	// Configuration
	Axcelerate `embed:"" help:"aXcelerate configuration"`
	Timeout    time.Duration `name:"timeout" help:"Outbound request timeout"`

	// Version
	Version kong.VersionFlag `name:"version" help:"Print version and exit"`

	// Context
	ctx     context.Context
	toolkit *tool.Toolkit
}

type Axcelerate struct {
	BaseURL  string `name:"base-url" env:"AXCELERATE_BASE_URL" required:"" help:"aXcelerate API base URL"`
	WSToken  string `name:"wstoken" env:"AXCELERATE_WSTOKEN" required:"" help:"aXcelerate web service token"`
	APIToken string `name:"apitoken" env:"AXCELERATE_APITOKEN" required:"" help:"aXcelerate API token"`
}

type CLI struct {
	Globals

	// Commands
	Run   RunCmd   `cmd:"" help:"Serve tools over streamable HTTP"`
	Stdio StdioCmd `cmd:"" help:"Serve tools over stdio"`
	Tools ToolsCmd `cmd:"" help:"Return a list of tools"`
}

////////////////////////////////////////////////////////////////////////////////
// MAIN

func main() {
	// Create a cli parser
	cli := CLI{}
	cmd := kong.Parse(&cli,
		kong.Name(execName()),
		kong.Description("MCP server for the aXcelerate training-management API"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Vars{"version": version.Version()},
	)

	// Create a context which cancels on interrupt
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	cli.Globals.ctx = ctx

	// Client options
	opts := []client.ClientOpt{}
	if cli.Debug {
		log.SetLevel(log.DebugLevel)
		opts = append(opts, client.OptTrace(os.Stderr, cli.Verbose))
	}
	if cli.Timeout != 0 {
		opts = append(opts, client.OptTimeout(cli.Timeout))
	}

	// Create the tools and the toolkit
	tools, err := axcelerate.NewTools(cli.BaseURL, cli.WSToken, cli.APIToken, opts...)
	cmd.FatalIfErrorf(err)
	toolkit, err := tool.NewToolkit(tools...)
	cmd.FatalIfErrorf(err)
	cli.Globals.toolkit = toolkit

	// Run the command
	cmd.FatalIfErrorf(cmd.Run(&cli.Globals))
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

func execName() string {
	// The name of the executable
	name, err := os.Executable()
	if err != nil {
		panic(err)
	}
	return filepath.Base(name)
}
