// Command docxedit edits the text of DOCX files from the command line.
package main

import (
	"github.com/alecthomas/kong"

	"github.com/benjaminschreck/go-docxedit/pkg/docxedit"
)

const version = "0.1.0"

// CLI defines the command-line interface for docxedit.
var CLI struct {
	Config   string `name:"config" short:"c" help:"TOML or YAML configuration file" type:"existingfile"`
	LogLevel string `name:"log-level" help:"Log level (debug, info, warn, error, off)"`

	Text    TextCmd    `cmd:"" help:"Print the plain text of a document"`
	Indent  IndentCmd  `cmd:"" help:"Print the indented document body"`
	Info    InfoCmd    `cmd:"" help:"Show runs, text nodes and a digest of the body"`
	Query   QueryCmd   `cmd:"" help:"Print the text of nodes matching an XPath expression"`
	Grep    GrepCmd    `cmd:"" help:"Find pattern matches inside text nodes"`
	Clean   CleanCmd   `cmd:"" help:"Remove noise markup and optionally unlink fields"`
	Merge   MergeCmd   `cmd:"" help:"Merge adjacent runs with identical formatting"`
	Replace ReplaceCmd `cmd:"" help:"Replace pattern matches, optionally as tracked changes"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

func loadConfig() (*docxedit.Config, error) {
	config := docxedit.ConfigFromEnvironment()
	if CLI.Config != "" {
		loaded, err := docxedit.LoadConfig(CLI.Config)
		if err != nil {
			return nil, err
		}
		config = loaded
	}
	if CLI.LogLevel != "" {
		config.LogLevel = CLI.LogLevel
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	docxedit.SetGlobalConfig(config)
	return config, nil
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("docxedit"),
		kong.Description("Edit the text of DOCX files without touching anything else"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
	)
	config, err := loadConfig()
	ctx.FatalIfErrorf(err)
	err = ctx.Run(config)
	ctx.FatalIfErrorf(err)
}
